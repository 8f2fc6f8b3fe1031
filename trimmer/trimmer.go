// ─────────────────────────────────────────────────────────────────────────────
// [Filename]: trimmer.go — Parallel Leaf-Edge Trimming Rounds
//
// Purpose:
//   - Runs the configured number of trim rounds over both graph sides and
//     every counter partition, shrinking the alive edge set toward the
//     survivors that can still sit on a cycle.
//
// Round structure (per side, per partition):
//   1. Reset the degree counters.
//   2. COUNT kernel  — parallel over alive edges: mark each endpoint that
//      falls in the current partition.
//   3. Full barrier  — the kill kernel must observe complete counts.
//   4. KILL kernel   — parallel over the same edges: reset any edge whose
//      endpoint's counter never saturated.
//
// Threading model:
//   - Kernels fork one goroutine per configured thread; each strides the
//     nonce space in 32-edge words so every alive-bitmap word has exactly
//     one owner. Counter marks are the only cross-worker writes and go
//     through the atomic saturating path.
//   - sync.WaitGroup provides the count→kill barrier; rounds themselves
//     run sequentially on the host goroutine.
//
// Correctness:
//   - Greedy least-fixed-point approximation: more rounds trim further at
//     diminishing returns. Edges on a genuine target-length cycle keep
//     true degree ≥2 at both endpoints every round, so they are never
//     killed regardless of round count.
// ─────────────────────────────────────────────────────────────────────────────

package trimmer

import (
	"math/bits"
	"sync"

	"github.com/programmerTim/cuckoo/alive"
	"github.com/programmerTim/cuckoo/degree"
	"github.com/programmerTim/cuckoo/types"
)

// ═══════════════════════════════════════════════════════════════════════════
// TRIMMER
// ═══════════════════════════════════════════════════════════════════════════

// Trimmer owns the alive bitmap and degree counters for the duration of
// the trimming phase. Ownership of the surviving edge set transfers to the
// caller via alive.Set.Snapshot after Run returns.
type Trimmer struct {
	edges    *alive.Set    // per-nonce liveness, exclusively owned here
	deg      *degree.Table // per-partition node counters, transient
	node     types.EdgeFn  // keyed endpoint generator
	halfsize uint32        // candidate edge count
	partBits uint32        // counter partition exponent
	threads  uint32        // kernel parallelism width
}

// New assembles a trimmer over halfsize candidate edges with 2^partBits
// counter partitions and the given kernel width. The degree table is sized
// for one partition's node range; it is recycled across every pass.
func New(node types.EdgeFn, halfsize uint32, partBits uint32, threads uint32) *Trimmer {
	if threads == 0 {
		threads = 1
	}
	return &Trimmer{
		edges:    alive.NewSet(uint64(halfsize)),
		deg:      degree.NewTable(uint64(halfsize) >> partBits),
		node:     node,
		halfsize: halfsize,
		partBits: partBits,
		threads:  threads,
	}
}

// Edges exposes the alive set. Callers other than the trim kernels must
// treat it as read-only; Snapshot it for the cycle-detection handoff.
func (t *Trimmer) Edges() *alive.Set {
	return t.edges
}

// Run executes rounds trim rounds to completion. There is no cancellation
// path: a run either finishes its configured rounds or the process aborts
// on a fatal condition elsewhere.
func (t *Trimmer) Run(rounds uint32) {
	partMask := uint32(1)<<t.partBits - 1
	for round := uint32(0); round < rounds; round++ {
		for side := uint32(0); side < 2; side++ {
			for part := uint32(0); part <= partMask; part++ {
				t.deg.Reset()
				t.dispatch(side, part, partMask, t.countKernel)
				t.dispatch(side, part, partMask, t.killKernel)
			}
		}
	}
}

// ═══════════════════════════════════════════════════════════════════════════
// KERNEL DISPATCH — FORK-JOIN WITH FULL BARRIER
// ═══════════════════════════════════════════════════════════════════════════

// dispatch forks one goroutine per thread over the striped nonce range and
// joins them all before returning. The join is the phase barrier: the kill
// kernel is only dispatched once every count worker has finished.
func (t *Trimmer) dispatch(side, part, partMask uint32, kernel func(id, side, part, partMask uint32)) {
	var wg sync.WaitGroup
	for id := uint32(0); id < t.threads; id++ {
		wg.Add(1)
		go func(id uint32) {
			defer wg.Done()
			kernel(id, side, part, partMask)
		}(id)
	}
	wg.Wait()
}

// countKernel marks the side-endpoint of every alive edge whose node falls
// in the current partition. Strides in 32-edge words: worker id owns words
// id, id+threads, id+2*threads, ...
func (t *Trimmer) countKernel(id, side, part, partMask uint32) {
	for block := id * 32; block < t.halfsize; block += t.threads * 32 {
		for w := t.edges.Block(block); w != 0; w &= w - 1 {
			nonce := block + uint32(bits.TrailingZeros32(w))
			u := t.node(nonce, side)
			if u&partMask == part {
				t.deg.Mark(u >> t.partBits)
			}
		}
	}
}

// killKernel recomputes the same endpoints and kills every edge whose node
// sits in the current partition without a saturated counter. Word
// ownership matches countKernel, so the bitmap writes need no atomics.
func (t *Trimmer) killKernel(id, side, part, partMask uint32) {
	for block := id * 32; block < t.halfsize; block += t.threads * 32 {
		for w := t.edges.Block(block); w != 0; w &= w - 1 {
			nonce := block + uint32(bits.TrailingZeros32(w))
			u := t.node(nonce, side)
			if u&partMask == part && !t.deg.NonLeaf(u>>t.partBits) {
				t.edges.Reset(nonce)
			}
		}
	}
}
