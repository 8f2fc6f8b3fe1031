// ─────────────────────────────────────────────────────────────────────────────
// [Filename]: alive.go — Shrinking Edge Bitmap (one bit per nonce)
//
// Purpose:
//   - Tracks which candidate edges are still alive during trimming and
//     feeds the surviving set to cycle detection.
//
// Invariants:
//   - Transitions are one-directional: alive → dead, never back.
//   - Reset is idempotent; re-killing a dead edge is a no-op.
//
// Threading model:
//   - Writes use plain stores, no atomics. Safe because the trimmer hands
//     each worker exclusive ownership of disjoint 32-edge-aligned words;
//     two workers never touch the same word within a phase, and phases are
//     separated by a full barrier.
//   - Reads during cycle detection are single-threaded after copy-out.
//
// ⚠️ Footgun: violating word ownership silently corrupts the edge set.
// ─────────────────────────────────────────────────────────────────────────────

package alive

import "math/bits"

// Set is the per-nonce liveness bitmap, 32 edges per word.
type Set struct {
	bits  []uint32 // liveness words, bit i of word w = nonce 32*w+i
	edges uint64   // number of candidate edges tracked
}

// NewSet returns a bitmap of the given edge count with every edge alive.
// A trailing partial word is masked so dead padding never counts as alive.
func NewSet(edges uint64) *Set {
	words := (edges + 31) / 32
	s := &Set{bits: make([]uint32, words), edges: edges}
	for i := range s.bits {
		s.bits[i] = ^uint32(0)
	}
	if tail := edges & 31; tail != 0 {
		s.bits[words-1] = uint32(1)<<tail - 1
	}
	return s
}

// Reset destructively marks the edge dead. Safe to call redundantly.
// Plain store: the caller must own the containing 32-edge word.
//
//go:nosplit
//go:inline
func (s *Set) Reset(nonce uint32) {
	s.bits[nonce>>5] &^= uint32(1) << (nonce & 31)
}

// Test reports whether the edge is still alive.
//
//go:nosplit
//go:inline
func (s *Set) Test(nonce uint32) bool {
	return s.bits[nonce>>5]>>(nonce&31)&1 != 0
}

// Block fetches the 32-edge word containing nonce, bit i holding the
// liveness of edge (nonce &^ 31) + i. Lets the trim kernels batch their
// scans one word at a time.
//
//go:nosplit
//go:inline
func (s *Set) Block(nonce uint32) uint32 {
	return s.bits[nonce>>5]
}

// Count returns the number of edges still alive. Used for the post-trim
// load-factor guard and footprint diagnostics, never inside kernels.
func (s *Set) Count() uint64 {
	var n uint64
	for _, w := range s.bits {
		n += uint64(bits.OnesCount32(w))
	}
	return n
}

// Edges returns the number of candidate edges the set was sized for.
//
//go:nosplit
//go:inline
func (s *Set) Edges() uint64 {
	return s.edges
}

// Words returns a copy of the raw liveness words, for byte-level
// determinism checks.
func (s *Set) Words() []uint32 {
	out := make([]uint32, len(s.bits))
	copy(out, s.bits)
	return out
}

// Snapshot copies the set. The copy is the explicit ownership boundary
// between trimming and cycle detection: the trimmer's buffer can be
// discarded while the finder scans the snapshot read-only.
func (s *Set) Snapshot() *Set {
	return &Set{bits: s.Words(), edges: s.edges}
}
