// Package cycle tests drive the sequential finder over hand-built graphs:
// the planted 4-cycle happy path, solution shape validation, sentinel-edge
// skipping, the report-all scan policy, and the fatal anomaly paths.
package cycle

import (
	"errors"
	"testing"

	"github.com/programmerTim/cuckoo/alive"
	"github.com/programmerTim/cuckoo/pathtable"
	"github.com/programmerTim/cuckoo/types"
)

// tableFn turns an explicit edge list into an EdgeFn.
func tableFn(edges [][2]uint32) types.EdgeFn {
	return func(nonce, side uint32) uint32 {
		return edges[nonce][side]
	}
}

func newToyFinder(edges [][2]uint32, proofSize int) (*Finder, *alive.Set) {
	tab := pathtable.New(6, 0, 0) // 64 slots, ample for toys
	fn := tableFn(edges)
	return NewFinder(tab, fn, uint32(len(edges)), proofSize, 16), alive.NewSet(uint64(len(edges)))
}

// -----------------------------------------------------------------------------
// ░░ Planted 4-Cycle ░░
// -----------------------------------------------------------------------------

func TestFindsPlantedFourCycle(t *testing.T) {
	// 1-5-2-6-1 alternating, nonces 0..3, plus a dangling chain 3-7.
	edges := [][2]uint32{{1, 5}, {2, 5}, {2, 6}, {1, 6}, {3, 7}}
	f, al := newToyFinder(edges, 4)
	sols, err := f.Solve(al)
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if len(sols) != 1 {
		t.Fatalf("found %d solutions, want 1", len(sols))
	}
	want := []uint32{0, 1, 2, 3}
	for i, nonce := range sols[0] {
		if nonce != want[i] {
			t.Fatalf("solution = %v, want %v", sols[0], want)
		}
	}
}

func TestSolutionNoncesStrictlyAscending(t *testing.T) {
	edges := [][2]uint32{{3, 4}, {1, 5}, {2, 5}, {2, 6}, {1, 6}, {3, 7}}
	f, al := newToyFinder(edges, 4)
	sols, err := f.Solve(al)
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if len(sols) != 1 {
		t.Fatalf("found %d solutions, want 1", len(sols))
	}
	prev := int64(-1)
	for _, nonce := range sols[0] {
		if int64(nonce) <= prev {
			t.Fatalf("solution %v not strictly ascending", sols[0])
		}
		prev = int64(nonce)
	}
}

func TestSolutionChainsIntoClosedCycle(t *testing.T) {
	edges := [][2]uint32{{1, 5}, {2, 5}, {2, 6}, {1, 6}}
	f, al := newToyFinder(edges, 4)
	sols, err := f.Solve(al)
	if err != nil || len(sols) != 1 {
		t.Fatalf("Solve = %v, %v; want one solution", sols, err)
	}
	// Regenerate the edges and walk the cycle: from each side-0 node there
	// must be exactly two incident edges, and the walk must visit every
	// edge once before closing.
	incident := map[uint32][]uint32{}
	for _, nonce := range sols[0] {
		u, v := edges[nonce][0], edges[nonce][1]
		incident[u] = append(incident[u], v)
		incident[v] = append(incident[v], u)
	}
	for node, peers := range incident {
		if len(peers) != 2 {
			t.Fatalf("node %d has %d cycle edges, want 2", node, len(peers))
		}
	}
}

// -----------------------------------------------------------------------------
// ░░ Negative Outcomes ░░
// -----------------------------------------------------------------------------

func TestNoCycleNoSolution(t *testing.T) {
	// A tree: traces join nowhere, unions only.
	edges := [][2]uint32{{1, 5}, {2, 5}, {3, 5}, {4, 6}}
	f, al := newToyFinder(edges, 4)
	sols, err := f.Solve(al)
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if len(sols) != 0 {
		t.Fatalf("tree produced solutions: %v", sols)
	}
}

func TestWrongLengthCycleReportedNotEmitted(t *testing.T) {
	// A 6-cycle with target 4: closure is diagnosed, not a solution.
	edges := [][2]uint32{{1, 5}, {2, 5}, {2, 6}, {3, 6}, {3, 7}, {1, 7}}
	f, al := newToyFinder(edges, 4)
	sols, err := f.Solve(al)
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if len(sols) != 0 {
		t.Fatalf("6-cycle emitted as 4-proof: %v", sols)
	}
}

func TestDeadEdgesSkipped(t *testing.T) {
	// Kill one cycle edge: the remaining three cannot close.
	edges := [][2]uint32{{1, 5}, {2, 5}, {2, 6}, {1, 6}}
	f, al := newToyFinder(edges, 4)
	al.Reset(2)
	sols, err := f.Solve(al)
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if len(sols) != 0 {
		t.Fatalf("broken cycle still solved: %v", sols)
	}
}

func TestSentinelEndpointSkipped(t *testing.T) {
	// Node 0 on side 0 is the reserved no-pointer sentinel; such edges
	// must be ignored entirely, here one that would otherwise close a
	// second cycle through node 5.
	edges := [][2]uint32{{0, 5}, {1, 5}, {2, 5}, {2, 6}, {1, 6}}
	f, al := newToyFinder(edges, 4)
	sols, err := f.Solve(al)
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if len(sols) != 1 {
		t.Fatalf("found %d solutions, want the one 4-cycle", len(sols))
	}
	for _, nonce := range sols[0] {
		if nonce == 0 {
			t.Fatal("sentinel-endpoint edge leaked into a solution")
		}
	}
}

func TestZeroSideOneEndpointIsLegal(t *testing.T) {
	// Only side 0 reserves node 0; a side-1 endpoint of 0 is valid input.
	// Its trace is a length-0 trail rooted at 0, which joins nothing, so
	// the edge unions and the scan moves on.
	edges := [][2]uint32{{1, 0}}
	f, al := newToyFinder(edges, 4)
	sols, err := f.Solve(al)
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if len(sols) != 0 {
		t.Fatalf("lone edge produced solutions: %v", sols)
	}
}

func TestZeroSideOneEndpointDoesNotDisturbCycle(t *testing.T) {
	// Two edges anchored at side-1 node 0 precede the planted 4-cycle;
	// they must union quietly and leave the cycle intact.
	edges := [][2]uint32{{1, 0}, {2, 0}, {1, 5}, {2, 5}, {2, 6}, {1, 6}}
	f, al := newToyFinder(edges, 4)
	sols, err := f.Solve(al)
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if len(sols) != 1 {
		t.Fatalf("found %d solutions, want the one 4-cycle", len(sols))
	}
	want := []uint32{2, 3, 4, 5}
	for i, nonce := range sols[0] {
		if nonce != want[i] {
			t.Fatalf("solution = %v, want %v", sols[0], want)
		}
	}
}

// -----------------------------------------------------------------------------
// ░░ Report-All Scan Policy ░░
// -----------------------------------------------------------------------------

func TestScanContinuesPastFirstSolution(t *testing.T) {
	// Two disjoint 4-cycles; both must be collected.
	edges := [][2]uint32{
		{1, 8}, {2, 8}, {2, 9}, {1, 9}, // first cycle
		{3, 10}, {4, 10}, {4, 11}, {3, 11}, // second cycle
	}
	f, al := newToyFinder(edges, 4)
	sols, err := f.Solve(al)
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if len(sols) != 2 {
		t.Fatalf("found %d solutions, want 2", len(sols))
	}
}

// -----------------------------------------------------------------------------
// ░░ Fatal Anomalies ░░
// -----------------------------------------------------------------------------

func TestPathBoundExceededFatal(t *testing.T) {
	// A 12-node chain against a 4-entry trail bound: tracing from the
	// chain's head must overrun without rediscovering a node.
	edges := [][2]uint32{
		{1, 2}, {3, 2}, {3, 4}, {5, 4}, {5, 6}, {7, 6},
		{7, 8}, {9, 8}, {9, 10}, {11, 10}, {11, 12},
	}
	tab := pathtable.New(6, 0, 0)
	f := NewFinder(tab, tableFn(edges), uint32(len(edges)), 42, 4)
	al := alive.NewSet(uint64(len(edges)))
	_, err := f.Solve(al)
	if !errors.Is(err, ErrPathBound) {
		t.Fatalf("Solve returned %v, want ErrPathBound", err)
	}
}

func TestPreExistingLoopInForestFatal(t *testing.T) {
	// A pointer loop planted directly in the table: the trace overruns
	// its bound and rediscovers a node already on the trail, which must
	// be diagnosed as a corrupted forest, not an undersized bound.
	tab := pathtable.New(6, 0, 0)
	if err := tab.Set(1, 2); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := tab.Set(2, 1); err != nil {
		t.Fatalf("Set: %v", err)
	}
	f := NewFinder(tab, tableFn(nil), 0, 42, 4)
	_, err := f.path(1, f.us)
	if !errors.Is(err, ErrIllegalCycle) {
		t.Fatalf("path returned %v, want ErrIllegalCycle", err)
	}
}

func TestDriftFailurePropagates(t *testing.T) {
	// A drift bound of 1 makes the second colliding insert fail; the
	// finder must surface the table's typed error untouched.
	edges := [][2]uint32{{8, 9}, {10, 9}, {10, 11}}
	tab := pathtable.New(3, 3, 1) // ids 8..11 all share natural slot 1
	f := NewFinder(tab, tableFn(edges), uint32(len(edges)), 42, 16)
	al := alive.NewSet(uint64(len(edges)))
	_, err := f.Solve(al)
	if !errors.Is(err, pathtable.ErrDriftExceeded) {
		t.Fatalf("Solve returned %v, want ErrDriftExceeded", err)
	}
}
