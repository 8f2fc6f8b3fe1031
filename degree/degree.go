// ─────────────────────────────────────────────────────────────────────────────
// [Filename]: degree.go — Saturating 2-Bit Node Degree Counters
//
// Purpose:
//   - Distinguishes nodes seen 0 / 1 / ≥2 times within one trim half-round.
//     Only the ≥2 ("non-leaf") outcome is ever consumed: edges whose
//     endpoint never reaches 2 are provably not on any surviving cycle.
//
// Layout:
//   - Two bits per node, 16 nodes per uint32 word. Low bit = seen once,
//     high bit = seen twice (saturated).
//
// Threading model:
//   - Mark races are legal: workers processing different edges may target
//     the same node. Two conditional atomic ORs make the counter converge
//     to the correct saturated value under any interleaving — the once-bit
//     observer that finds the once-bit already set is, by that very
//     observation, at least the second marker.
//   - Reset and NonLeaf run only between barriers, never beside Mark.
// ─────────────────────────────────────────────────────────────────────────────

package degree

import "sync/atomic"

// Table holds one trim half-round's 2-bit counters. State is transient:
// reset, populated, consumed, then reset again — never carried across
// rounds.
type Table struct {
	bits  []uint32 // 2-bit counters, 16 per word
	nodes uint64   // counter count (one per node in the current partition)
}

// NewTable sizes a counter table for the given node count.
func NewTable(nodes uint64) *Table {
	return &Table{bits: make([]uint32, (nodes+15)/16), nodes: nodes}
}

// Reset zeroes every counter. Called once per half-round pass, strictly
// between kernel barriers.
func (t *Table) Reset() {
	clear(t.bits)
}

// Mark increments node's counter, saturating at 2. Safe under concurrent
// calls targeting any mix of nodes.
//
// The first OR publishes the once-bit. An observer whose fetched word
// already held the once-bit but not the twice-bit has proof of a prior
// mark and publishes the twice-bit; duplicate or reordered calls can only
// re-assert bits, never regress the count.
//
//go:nosplit
//go:inline
func (t *Table) Mark(node uint32) {
	idx := node >> 4
	once := uint32(1) << (2 * (node & 15))
	old := atomic.OrUint32(&t.bits[idx], once)
	twice := once << 1
	if old&(once|twice) == once {
		atomic.OrUint32(&t.bits[idx], twice)
	}
}

// NonLeaf reports whether node's counter saturated (seen at least twice).
//
//go:nosplit
//go:inline
func (t *Table) NonLeaf(node uint32) bool {
	return t.bits[node>>4]>>(2*(node&15))&2 != 0
}

// Nodes returns the counter count the table was sized for.
//
//go:nosplit
//go:inline
func (t *Table) Nodes() uint64 {
	return t.nodes
}
