// ════════════════════════════════════════════════════════════════════════════════════════════════
// ⚡ OPEN-ADDRESSED PATH TABLE
// ────────────────────────────────────────────────────────────────────────────────────────────────
// Component: Fixed-Capacity Node→Node Pointer Map
//
// Description:
//   Zero-allocation open-addressed table backing the cycle finder's
//   pseudo-forest. Each entry maps one node to its outgoing pointer target;
//   linear probing from a node's natural slot with a hard drift bound turns
//   capacity misplanning into a typed failure instead of an unbounded crawl.
//
// Design Principles:
//   - Fixed power-of-2 capacity, mask arithmetic only
//   - One uint64 per slot: key in the high word, value in the low word
//   - Zero slot word = empty; node id 0 is the "no pointer" sentinel and
//     never a legal lookup key
//   - Plain linear probing, no displacement: cycle detection depends on
//     insertion-stable behavior
//
// ════════════════════════════════════════════════════════════════════════════════════════════════

package pathtable

import "errors"

// ErrDriftExceeded signals a probe chain longer than the configured bound.
// This is a capacity-planning violation, not a runtime-recoverable state:
// the table was sized for a sparser survivor set than it received.
var ErrDriftExceeded = errors.New("pathtable: linear-probe drift bound exceeded")

// ═══════════════════════════════════════════════════════════════════════════════════════════════
// TYPE DEFINITIONS
// ═══════════════════════════════════════════════════════════════════════════════════════════════

// Table is the fixed-capacity pointer map. Entries are inserted or
// overwritten, never individually removed; the whole table lives exactly
// as long as one cycle-detection phase.
type Table struct {
	slots    []uint64 // key<<32 | value; zero word = empty slot
	mask     uint32   // capacity - 1
	idxShift uint32   // node id → natural slot divisor
	maxDrift uint32   // probe-chain bound
}

// New builds a table of 2^tableShift slots. A node's natural slot is its
// id right-shifted by idxShift; a node space of 2^(idxShift+tableShift)
// ids spreads natural slots across the whole ring. maxDrift of 0 defaults
// to capacity>>4, floored at 4 probes.
func New(tableShift, idxShift, maxDrift uint32) *Table {
	capacity := uint32(1) << tableShift
	if maxDrift == 0 {
		maxDrift = capacity >> 4
		if maxDrift < 4 {
			maxDrift = 4 // keep toy-sized tables probeable
		}
	}
	return &Table{
		slots:    make([]uint64, capacity),
		mask:     capacity - 1,
		idxShift: idxShift,
		maxDrift: maxDrift,
	}
}

// ═══════════════════════════════════════════════════════════════════════════════════════════════
// CORE OPERATIONS
// ═══════════════════════════════════════════════════════════════════════════════════════════════

// Set inserts or overwrites the mapping from → to. Probing starts at
// from's natural slot; an occupied slot with a matching key is overwritten
// in place, anything else advances with wraparound. Exceeding the drift
// bound returns ErrDriftExceeded.
//
//go:nosplit
//go:inline
func (t *Table) Set(from, to uint32) error {
	entry := uint64(from)<<32 | uint64(to)
	i := (from >> t.idxShift) & t.mask
	for drift := uint32(0); drift < t.maxDrift; drift++ {
		old := t.slots[i]
		if old == 0 || uint32(old>>32) == from {
			t.slots[i] = entry
			return nil
		}
		i = (i + 1) & t.mask
	}
	return ErrDriftExceeded
}

// Lookup returns from's pointer target, or 0 (the sentinel) when no
// mapping exists. The probe sequence mirrors Set, including the drift
// bound.
//
//go:nosplit
//go:inline
func (t *Table) Lookup(from uint32) (uint32, error) {
	i := (from >> t.idxShift) & t.mask
	for drift := uint32(0); drift < t.maxDrift; drift++ {
		cu := t.slots[i]
		if cu == 0 {
			return 0, nil
		}
		if uint32(cu>>32) == from {
			return uint32(cu), nil
		}
		i = (i + 1) & t.mask
	}
	return 0, ErrDriftExceeded
}

// Capacity returns the slot count, the denominator of the post-trim load
// factor guard.
//
//go:nosplit
//go:inline
func (t *Table) Capacity() uint64 {
	return uint64(t.mask) + 1
}
