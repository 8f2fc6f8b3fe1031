// ════════════════════════════════════════════════════════════════════════════════════════════════
// Cuckoo Cycle Solver - Phase Orchestration
// ────────────────────────────────────────────────────────────────────────────────────────────────
// Component: Solve Pipeline & Resource Ownership
//
// Description:
//   Drives the full solving pipeline over one keyed graph: footprint
//   report → parallel trimming → overload guard → sequential cycle
//   detection. Buffer ownership transfers explicitly at each boundary:
//   the trimmer owns the alive set and counters while trimming, the
//   finder receives a read-only snapshot plus its own pointer table.
//
// ════════════════════════════════════════════════════════════════════════════════════════════════

package solver

import (
	"errors"

	"github.com/programmerTim/cuckoo/constants"
	"github.com/programmerTim/cuckoo/cycle"
	"github.com/programmerTim/cuckoo/debug"
	"github.com/programmerTim/cuckoo/pathtable"
	"github.com/programmerTim/cuckoo/sipnode"
	"github.com/programmerTim/cuckoo/trimmer"
	"github.com/programmerTim/cuckoo/types"
	"github.com/programmerTim/cuckoo/utils"
)

// ErrOverloaded: the trimmer left more surviving edges than the pointer
// table was planned for. Proceeding would risk drift-bound violations, so
// the run aborts before any cycle-detection work.
var ErrOverloaded = errors.New("solver: surviving edge set overloads pointer table")

// ═══════════════════════════════════════════════════════════════════════════════════════════════
// CONFIGURATION
// ═══════════════════════════════════════════════════════════════════════════════════════════════

// Config carries one run's parameters. Zero values fall back to the
// compile-time defaults in constants; tests shrink the graph and tighten
// the guards through the same fields.
type Config struct {
	Header     string // keying header, default empty
	SizeShift  uint32 // graph size exponent
	ProofSize  int    // target cycle length
	PartBits   uint32 // counter partition exponent
	Trims      uint32 // trim rounds, default derived from PartBits
	Threads    uint32 // trim kernel width, default 1
	TableShift uint32 // pointer-table capacity exponent
	MaxLoadPct uint64 // overload abort threshold
	MaxDrift   uint32 // probe-chain bound, 0 = capacity>>4
}

func (c *Config) defaults() {
	if c.SizeShift == 0 {
		c.SizeShift = constants.SizeShift
	}
	if c.ProofSize == 0 {
		c.ProofSize = constants.ProofSize
	}
	if c.Trims == 0 {
		c.Trims = 8 + (c.PartBits+3)*(c.PartBits+4)/2
	}
	if c.Threads == 0 {
		c.Threads = constants.DefaultThreads
	}
	if c.TableShift == 0 {
		if c.SizeShift > constants.IdxShift {
			c.TableShift = c.SizeShift - constants.IdxShift
		} else {
			c.TableShift = c.SizeShift // toy graphs: table as large as the node space
		}
	}
	if c.MaxLoadPct == 0 {
		c.MaxLoadPct = constants.MaxLoadPct
	}
}

// Result is the boundary-consumable outcome of one run. An empty Solutions
// slice is the normal negative outcome, not an error.
type Result struct {
	Solutions []types.Solution // every target-length cycle, scan order
	Alive     uint64           // surviving edge count after trimming
	LoadPct   uint64           // survivors as a percent of table capacity
}

// ═══════════════════════════════════════════════════════════════════════════════════════════════
// PIPELINE
// ═══════════════════════════════════════════════════════════════════════════════════════════════

// Solve runs the full pipeline for one header. Uses the production
// SipHash generator; SolveWith exists for callers injecting a graph.
func Solve(cfg Config) (*Result, error) {
	cfg.defaults()
	gen := sipnode.New(cfg.Header, cfg.SizeShift)
	return SolveWith(cfg, gen.Node)
}

// SolveWith runs the pipeline over an explicit edge function.
func SolveWith(cfg Config, node types.EdgeFn) (*Result, error) {
	cfg.defaults()
	halfsize := uint32(1) << (cfg.SizeShift - 1)

	// PHASE 1: Footprint report, then parallel trimming.
	reportFootprint(cfg, halfsize)
	debug.DropMessage("TRIM", utils.Utoa(uint64(cfg.Trims))+" rounds, "+
		utils.Utoa(uint64(cfg.Threads))+" threads")
	tr := trimmer.New(node, halfsize, cfg.PartBits, cfg.Threads)
	tr.Run(cfg.Trims)

	// PHASE 2: Copy-out boundary and overload guard.
	edges := tr.Edges().Snapshot()
	// Natural slots must spread the per-side node space, 2^(SizeShift-1)
	// ids, across the whole slot ring; shifting by one more would leave
	// the upper half empty and double the local load.
	var idxShift uint32
	if cfg.TableShift < cfg.SizeShift-1 {
		idxShift = cfg.SizeShift - 1 - cfg.TableShift
	}
	tab := pathtable.New(cfg.TableShift, idxShift, cfg.MaxDrift)
	res := &Result{Alive: edges.Count()}
	res.LoadPct = res.Alive * 100 / tab.Capacity()
	debug.DropMessage("TRIM", utils.Utoa(res.Alive)+" edges alive, load "+
		utils.Utoa(res.LoadPct)+"%")
	if res.LoadPct >= cfg.MaxLoadPct {
		return res, ErrOverloaded
	}

	// PHASE 3: Sequential cycle detection over the snapshot.
	finder := cycle.NewFinder(tab, node, halfsize, cfg.ProofSize,
		constants.MaxPathLen(cfg.SizeShift))
	sols, err := finder.Solve(edges)
	res.Solutions = sols
	return res, err
}

// reportFootprint logs the K/M/G/T-scaled sizes of the two trimming-phase
// buffers before they are allocated.
func reportFootprint(cfg Config, halfsize uint32) {
	bitmapBytes := uint64(halfsize) / 8
	counterBytes := (uint64(halfsize) >> cfg.PartBits) / 4 // 2 bits per node
	debug.DropMessage("GRAPH", "2^"+utils.Utoa(uint64(cfg.SizeShift))+" nodes, "+
		utils.FormatBytes(bitmapBytes)+" edge bitmap, "+
		utils.FormatBytes(counterBytes)+" node counters")
}
