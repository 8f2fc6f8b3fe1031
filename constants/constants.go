// ─────────────────────────────────────────────────────────────────────────────
// [Filename]: constants.go — Graph Geometry & Solver Tunables
//
// Purpose:
//   - Defines the compile-time shape of the cuckoo graph and every tunable
//     the trimming and cycle-detection phases size themselves from.
//   - Includes derived masks and capacity formulas used across packages.
//
// Notes:
//   - Memory footprint scales directly with SizeShift: the edge bitmap is
//     2^(SizeShift-1) bits and the node counters 2^SizeShift bits.
//   - Power-of-2 sizing throughout so every modulo is a mask.
//
// ⚠️ No runtime logic here beyond MaxPathLen — values are compile-time sizes
// ─────────────────────────────────────────────────────────────────────────────

package constants

// ───────────────────────────── Graph Geometry ──────────────────────────────

const (
	// SizeShift fixes the graph size: 2^SizeShift node slots split evenly
	// across the two sides, 2^(SizeShift-1) candidate edges (nonces).
	// Tuned for:
	// - 16 MiB edge bitmap at shift 28 (L3-resident on server parts)
	// - 32 MiB node counters with zero partitions
	// - Full trim round well under a second on 8 cores
	SizeShift = 28

	// ProofSize is the target cycle length defining a valid solution.
	// 42 is the canonical proof length: long enough that cycles of that
	// exact length are rare, short enough to verify cheaply.
	ProofSize = 42

	// PartBits splits node-degree counting into 2^PartBits partitions.
	// Each extra bit halves counter memory at the cost of one more
	// count+kill sweep per side per round. 0 = fastest, most memory.
	PartBits = 0
)

// ───────────────────────────── Derived Sizes ───────────────────────────────

const (
	// HalfSize is the number of candidate edges, one nonce each.
	// It is also the per-side node-id space.
	HalfSize = 1 << (SizeShift - 1)

	// NodeMask reduces a 64-bit hash fold to a node id in [0, HalfSize).
	NodeMask = HalfSize - 1

	// PartMask selects the partition bits of a node id.
	PartMask = (1 << PartBits) - 1
)

// ───────────────────────────── Pointer Table ───────────────────────────────

const (
	// TableShift is the pointer-table capacity exponent:
	// capacity = 2^(SizeShift-IdxShift) slots of 8 bytes each. At shift 28
	// this is a 16 MiB table, sized on the trimmer keeping survivors to a
	// small percentage of the original edge set.
	IdxShift   = 7
	TableShift = SizeShift - IdxShift

	// MaxDriftShift bounds linear-probe displacement to capacity>>4.
	// A probe chain longer than that means the table was sized for a far
	// sparser survivor set than the trimmer delivered — a planning bug,
	// surfaced as a typed failure rather than an unbounded crawl.
	MaxDriftShift = 4

	// MaxLoadPct aborts the run when surviving edges reach this percent of
	// pointer-table capacity. Beyond 90% the drift bound above can no
	// longer be honored.
	MaxLoadPct = 90
)

// ───────────────────────────── Solver Defaults ─────────────────────────────

const (
	// DefaultTrims derives the trim-round count from the partition count.
	// Partitioned counting trims less of the graph per sweep (each pass
	// only credits 1/2^PartBits of the nodes), so rounds grow with
	// PartBits to reach a comparable survivor density.
	DefaultTrims = 8 + (PartBits+3)*(PartBits+4)/2

	// DefaultThreads is the trimming parallelism when the boundary
	// supplies none. Cycle detection is always single-threaded.
	DefaultThreads = 1
)

// MaxPathLen bounds the cycle-detection trail length for a given graph
// exponent. Trail length grows with the cube root of graph size;
// 8<<(shift/3) leaves generous slack over observed maxima.
func MaxPathLen(sizeShift uint32) int {
	return 8 << (sizeShift / 3)
}
