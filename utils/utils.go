// utils.go — low-level helpers shared by the solver, reporter & stores.
package utils

import "syscall"

///////////////////////////////////////////////////////////////////////////////
// Zero-Alloc Number Formatting
///////////////////////////////////////////////////////////////////////////////

// Itoa converts an int to its decimal string without fmt.
// Handles the full signed range including the minimum value.
//
//go:nosplit
//go:inline
func Itoa(v int) string {
	if v == 0 {
		return "0"
	}
	var buf [20]byte
	i := len(buf)
	neg := v < 0
	u := uint64(v)
	if neg {
		u = uint64(-(int64(v)))
	}
	for u > 0 {
		i--
		buf[i] = byte('0' + u%10)
		u /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}

// Utoa converts a uint64 to its decimal string without fmt.
//
//go:nosplit
//go:inline
func Utoa(v uint64) string {
	if v == 0 {
		return "0"
	}
	var buf [20]byte
	i := len(buf)
	for v > 0 {
		i--
		buf[i] = byte('0' + v%10)
		v /= 10
	}
	return string(buf[i:])
}

// Utox converts a uint64 to lowercase hex without fmt or a "0x" prefix.
// Used for solution nonce output, which is conventionally hexadecimal.
//
//go:nosplit
//go:inline
func Utox(v uint64) string {
	const digits = "0123456789abcdef"
	if v == 0 {
		return "0"
	}
	var buf [16]byte
	i := len(buf)
	for v > 0 {
		i--
		buf[i] = digits[v&0xf]
		v >>= 4
	}
	return string(buf[i:])
}

///////////////////////////////////////////////////////////////////////////////
// Memory Footprint Formatting — K/M/G/T Scaled Byte Counts
///////////////////////////////////////////////////////////////////////////////

// FormatBytes renders a byte count with a binary K/M/G/T suffix, dividing
// down while the count stays a whole multiple of 1024. Exact power-of-2
// buffer sizes (the only sizes this solver allocates) render losslessly.
//
//go:nosplit
//go:inline
func FormatBytes(n uint64) string {
	const suffix = "KMGT"
	s := -1
	for n >= 1024 && n&1023 == 0 && s < len(suffix)-1 {
		n >>= 10
		s++
	}
	if s < 0 {
		return Utoa(n) + "B"
	}
	return Utoa(n) + string(suffix[s]) + "B"
}

///////////////////////////////////////////////////////////////////////////////
// Direct FD Writers — No Buffering, No Locking, No Allocation Beyond msg
///////////////////////////////////////////////////////////////////////////////

// PrintWarning writes a diagnostic string straight to stderr (fd 2),
// bypassing any buffered writer. Used only on cold paths.
//
//go:nosplit
//go:inline
func PrintWarning(msg string) {
	syscall.Write(2, []byte(msg))
}

// PrintLine writes result output straight to stdout (fd 1). Reserved for
// the boundary's consumable output (solution lines), never diagnostics.
//
//go:nosplit
//go:inline
func PrintLine(msg string) {
	syscall.Write(1, []byte(msg))
}
