// Package utils tests pin down the zero-alloc formatters the boundary and
// diagnostic paths depend on.
package utils

import "testing"

// -----------------------------------------------------------------------------
// ░░ Decimal & Hex Formatting ░░
// -----------------------------------------------------------------------------

func TestItoa(t *testing.T) {
	cases := map[int]string{
		0:                    "0",
		7:                    "7",
		42:                   "42",
		-1:                   "-1",
		1 << 27:              "134217728",
		-9223372036854775808: "-9223372036854775808",
	}
	for in, want := range cases {
		if got := Itoa(in); got != want {
			t.Fatalf("Itoa(%d) = %q, want %q", in, got, want)
		}
	}
}

func TestUtoa(t *testing.T) {
	cases := map[uint64]string{
		0:                    "0",
		90:                   "90",
		18446744073709551615: "18446744073709551615",
	}
	for in, want := range cases {
		if got := Utoa(in); got != want {
			t.Fatalf("Utoa(%d) = %q, want %q", in, got, want)
		}
	}
}

func TestUtox(t *testing.T) {
	cases := map[uint64]string{
		0:          "0",
		10:         "a",
		0xdeadbeef: "deadbeef",
		1 << 32:    "100000000",
	}
	for in, want := range cases {
		if got := Utox(in); got != want {
			t.Fatalf("Utox(%#x) = %q, want %q", in, got, want)
		}
	}
}

// -----------------------------------------------------------------------------
// ░░ Scaled Byte Counts ░░
// -----------------------------------------------------------------------------

func TestFormatBytes(t *testing.T) {
	cases := map[uint64]string{
		0:           "0B",
		512:         "512B",
		1024:        "1KB",
		16 << 20:    "16MB",
		32 << 20:    "32MB",
		1 << 30:     "1GB",
		1 << 40:     "1TB",
		1025:        "1025B", // not a whole multiple: stays exact
		3 * 1 << 40: "3TB",
	}
	for in, want := range cases {
		if got := FormatBytes(in); got != want {
			t.Fatalf("FormatBytes(%d) = %q, want %q", in, got, want)
		}
	}
}
