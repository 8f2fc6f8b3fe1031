// ─────────────────────────────────────────────────────────────────────────────
// [Filename]: cycle.go — Sequential Cycle Detection over Surviving Edges
//
// Purpose:
//   - Scans the post-trim alive set in ascending nonce order, growing a
//     pseudo-forest of node pointers one edge at a time and reporting every
//     closed cycle it encounters. Proof-length closures are assembled
//     into full solutions; all others are diagnostics.
//
// Per-edge state machine:
//   1. TRACE  — follow pointers from both endpoints into bounded trails
//               until the no-pointer sentinel.
//   2. JOIN   — same terminal node on both trails closes a cycle; strip the
//               shared tail to find its true length.
//   3. UNION  — otherwise graft the shorter trail onto the longer (reverse
//               its pointers, then bridge the origins) to keep future
//               trails short.
//
// Threading model:
//   - Strictly single-threaded: pointer insertion order determines forest
//     shape, so concurrency here would break correctness, not just speed.
//
// Fatal conditions:
//   - Trail overrun with a rediscovered node   → pre-existing cycle in a
//     structure that is acyclic by construction.
//   - Trail overrun without one                → undersized trail bound.
//   - Assembled solution ≠ target length       → internal inconsistency.
//   All three abort the run; none is retried.
// ─────────────────────────────────────────────────────────────────────────────

package cycle

import (
	"errors"

	"github.com/programmerTim/cuckoo/alive"
	"github.com/programmerTim/cuckoo/debug"
	"github.com/programmerTim/cuckoo/pathtable"
	"github.com/programmerTim/cuckoo/types"
	"github.com/programmerTim/cuckoo/utils"
)

// ═══════════════════════════════════════════════════════════════════════════
// ERROR TAXONOMY
// ═══════════════════════════════════════════════════════════════════════════

var (
	// ErrIllegalCycle: a trail overran its bound and the next step was
	// already on the trail — the pointer forest held a cycle it must not.
	ErrIllegalCycle = errors.New("cycle: illegal pre-existing cycle in pointer forest")

	// ErrPathBound: a trail overran its bound without terminating or
	// closing — the configured trail capacity was too small.
	ErrPathBound = errors.New("cycle: maximum path length exceeded")

	// ErrSolutionMismatch: cycle-edge matching emitted a nonce count other
	// than the target length.
	ErrSolutionMismatch = errors.New("cycle: assembled solution does not match proof size")
)

// ═══════════════════════════════════════════════════════════════════════════
// FINDER
// ═══════════════════════════════════════════════════════════════════════════

// Finder owns the path table and trail buffers for one detection phase.
type Finder struct {
	tab       *pathtable.Table
	node      types.EdgeFn
	us, vs    []uint32 // bounded trails, explicit lengths kept in locals
	halfsize  uint32
	proofSize int
}

// NewFinder assembles a finder over the given pointer table and endpoint
// generator, with trails of maxPathLen entries.
func NewFinder(tab *pathtable.Table, node types.EdgeFn, halfsize uint32, proofSize, maxPathLen int) *Finder {
	return &Finder{
		tab:       tab,
		node:      node,
		us:        make([]uint32, maxPathLen),
		vs:        make([]uint32, maxPathLen),
		halfsize:  halfsize,
		proofSize: proofSize,
	}
}

// Solve scans the surviving edges once, in ascending nonce order, and
// returns every target-length solution encountered. The scan reports each
// closed cycle's length and runs to input exhaustion; finding a solution
// does not stop it. Edges whose side-0 endpoint is the reserved sentinel 0
// are skipped entirely; a side-1 endpoint of 0 is legal input and only
// ever unions.
func (f *Finder) Solve(edges *alive.Set) ([]types.Solution, error) {
	var solutions []types.Solution
	for nonce := uint32(0); nonce < f.halfsize; nonce++ {
		if !edges.Test(nonce) {
			continue
		}
		u0 := f.node(nonce, 0)
		if u0 == 0 {
			continue
		}
		v0 := f.node(nonce, 1)

		// TRACE both endpoints down to their roots.
		nu, err := f.path(u0, f.us)
		if err != nil {
			return solutions, err
		}
		nv, err := f.path(v0, f.vs)
		if err != nil {
			return solutions, err
		}

		// JOIN: shared root means inserting (u0,v0) closes a cycle.
		if f.us[nu] == f.vs[nv] {
			m := min(nu, nv)
			nu -= m
			nv -= m
			for f.us[nu] != f.vs[nv] {
				nu++
				nv++
			}
			length := nu + nv + 1
			pct := int(uint64(nonce) * 100 / uint64(f.halfsize))
			debug.DropMessage("CYCLE", utils.Itoa(length)+"-cycle found at "+utils.Itoa(pct)+"%")
			if length == f.proofSize {
				sol, err := f.solution(edges, nu, nv)
				if err != nil {
					return solutions, err
				}
				solutions = append(solutions, sol)
			}
			continue
		}

		// UNION: no closure. Reverse the shorter trail's pointers back
		// toward its origin, then bridge the origin to the other trail.
		if nu < nv {
			for nu > 0 {
				nu--
				if err := f.tab.Set(f.us[nu+1], f.us[nu]); err != nil {
					return solutions, err
				}
			}
			if err := f.tab.Set(u0, v0); err != nil {
				return solutions, err
			}
		} else {
			for nv > 0 {
				nv--
				if err := f.tab.Set(f.vs[nv+1], f.vs[nv]); err != nil {
					return solutions, err
				}
			}
			if err := f.tab.Set(v0, u0); err != nil {
				return solutions, err
			}
		}
	}
	return solutions, nil
}

// ═══════════════════════════════════════════════════════════════════════════
// PATH TRACING
// ═══════════════════════════════════════════════════════════════════════════

// path follows pointers from u into trail until the sentinel, returning
// the index of the trail's last (root) node. Overrunning the trail is
// fatal: if the next node already sits on the trail the forest held an
// illegal cycle (its length is logged), otherwise the bound itself was
// too small.
func (f *Finder) path(u uint32, trail []uint32) (int, error) {
	// The reserved node 0 carries no pointer: a zero origin is its own
	// length-0 trail, rooted at 0. Real roots are always nonzero, so
	// such a trail never joins and the edge simply unions.
	if u == 0 {
		trail[0] = 0
		return 0, nil
	}
	nu := 0
	for ; u != 0; nu++ {
		if nu >= len(trail) {
			k := nu
			for k--; k >= 0 && trail[k] != u; k-- {
			}
			if k < 0 {
				return 0, ErrPathBound
			}
			debug.DropMessage("CYCLE", "illegal "+utils.Itoa(len(trail)-k)+"-cycle in pointer forest")
			return 0, ErrIllegalCycle
		}
		trail[nu] = u
		next, err := f.tab.Lookup(u)
		if err != nil {
			return 0, err
		}
		u = next
	}
	return nu - 1, nil
}

// ═══════════════════════════════════════════════════════════════════════════
// SOLUTION ASSEMBLY
// ═══════════════════════════════════════════════════════════════════════════

// solution reconstructs the closed cycle's edge set from the two trails
// (positions 0..nu and 0..nv end on the matching tails) plus the joining
// edge, then re-scans the alive nonces in order, emitting every nonce
// whose regenerated endpoints match a pending cycle edge. Matched edges
// leave the pending set so the degenerate 2-cycle, where one undirected
// pair appears twice, cannot double-match a single nonce pair.
func (f *Finder) solution(edges *alive.Set, nu, nv int) (types.Solution, error) {
	pending := make(map[uint64]struct{}, f.proofSize)
	pending[edgeKey(f.us[0], f.vs[0])] = struct{}{}
	for nu > 0 {
		nu--
		// Side-0 nodes occupy even trail positions, side-1 nodes odd.
		pending[edgeKey(f.us[(nu+1)&^1], f.us[nu|1])] = struct{}{}
	}
	for nv > 0 {
		nv--
		// The v trail starts on side 1, so the parity flips.
		pending[edgeKey(f.vs[nv|1], f.vs[(nv+1)&^1])] = struct{}{}
	}

	sol := make(types.Solution, 0, f.proofSize)
	for nonce := uint32(0); nonce < f.halfsize; nonce++ {
		if !edges.Test(nonce) {
			continue
		}
		key := edgeKey(f.node(nonce, 0), f.node(nonce, 1))
		if _, ok := pending[key]; ok {
			delete(pending, key)
			sol = append(sol, nonce)
		}
	}
	if len(sol) != f.proofSize {
		return nil, ErrSolutionMismatch
	}
	return sol, nil
}

// edgeKey packs an undirected edge as (side-0 node, side-1 node).
//
//go:nosplit
//go:inline
func edgeKey(u, v uint32) uint64 {
	return uint64(u)<<32 | uint64(v)
}
