// Package alive tests cover the shrinking edge bitmap: initial state,
// one-directional idempotent kills, word-granular reads, tail masking, and
// the snapshot ownership boundary.
package alive

import "testing"

// -----------------------------------------------------------------------------
// ░░ Initial State ░░
// -----------------------------------------------------------------------------

func TestNewSetAllAlive(t *testing.T) {
	s := NewSet(96)
	if got := s.Count(); got != 96 {
		t.Fatalf("fresh set counts %d alive, want 96", got)
	}
	for nonce := uint32(0); nonce < 96; nonce++ {
		if !s.Test(nonce) {
			t.Fatalf("nonce %d dead in a fresh set", nonce)
		}
	}
}

func TestNewSetTailMasked(t *testing.T) {
	// 40 edges span two words; the second word's top 24 bits are padding
	// and must never count as alive.
	s := NewSet(40)
	if got := s.Count(); got != 40 {
		t.Fatalf("tail padding leaked into count: %d, want 40", got)
	}
	if s.Block(39) != 0xff {
		t.Fatalf("tail word = %#x, want 0xff", s.Block(39))
	}
}

// -----------------------------------------------------------------------------
// ░░ Kill Semantics ░░
// -----------------------------------------------------------------------------

func TestResetMonotonicIdempotent(t *testing.T) {
	s := NewSet(64)
	s.Reset(17)
	if s.Test(17) {
		t.Fatal("nonce 17 alive after Reset")
	}
	if got := s.Count(); got != 63 {
		t.Fatalf("count %d after one kill, want 63", got)
	}
	// Redundant kill is a no-op, never a revival or a double count.
	s.Reset(17)
	if s.Test(17) || s.Count() != 63 {
		t.Fatal("redundant Reset changed state")
	}
}

func TestResetLeavesNeighbors(t *testing.T) {
	s := NewSet(64)
	s.Reset(33)
	for nonce := uint32(0); nonce < 64; nonce++ {
		if nonce == 33 {
			continue
		}
		if !s.Test(nonce) {
			t.Fatalf("kill of 33 bled into nonce %d", nonce)
		}
	}
}

// -----------------------------------------------------------------------------
// ░░ Word-Granular Reads ░░
// -----------------------------------------------------------------------------

func TestBlockReflectsKills(t *testing.T) {
	s := NewSet(64)
	s.Reset(32)
	s.Reset(35)
	want := ^uint32(0) &^ (1 | 1<<3)
	if got := s.Block(40); got != want {
		t.Fatalf("Block(40) = %#x, want %#x", got, want)
	}
	if got := s.Block(0); got != ^uint32(0) {
		t.Fatalf("Block(0) = %#x, want all alive", got)
	}
}

// -----------------------------------------------------------------------------
// ░░ Snapshot Ownership Boundary ░░
// -----------------------------------------------------------------------------

func TestSnapshotIndependence(t *testing.T) {
	s := NewSet(64)
	s.Reset(5)
	snap := s.Snapshot()
	s.Reset(6)
	if !snap.Test(6) {
		t.Fatal("mutation after Snapshot leaked into the copy")
	}
	if snap.Test(5) {
		t.Fatal("snapshot lost a kill made before the copy")
	}
	if snap.Edges() != 64 || snap.Count() != 63 {
		t.Fatalf("snapshot shape wrong: edges=%d count=%d", snap.Edges(), snap.Count())
	}
}
