// ════════════════════════════════════════════════════════════════════════════════════════════════
// Cuckoo Cycle Solver - Main Entry Point
// ────────────────────────────────────────────────────────────────────────────────────────────────
// Component: Boundary Orchestration
//
// Description:
//   Thin boundary around the solve pipeline: load run configuration,
//   execute, emit solutions on stdout, persist them, and exit with a
//   status the caller can branch on.
//
// Exit codes:
//   0 — at least one target-length cycle found
//   1 — exhaustive scan, no solution (the normal negative outcome)
//   2 — fatal abort (overload, drift, trace anomaly, assembly mismatch)
//
// ════════════════════════════════════════════════════════════════════════════════════════════════

package main

import (
	"os"

	"github.com/programmerTim/cuckoo/config"
	"github.com/programmerTim/cuckoo/constants"
	"github.com/programmerTim/cuckoo/debug"
	"github.com/programmerTim/cuckoo/solver"
	"github.com/programmerTim/cuckoo/store"
	"github.com/programmerTim/cuckoo/types"
	"github.com/programmerTim/cuckoo/utils"
)

// main orchestrates one run: configuration, solve, output, persistence.
func main() {
	// PHASE 0: Boundary configuration. A single optional argument names a
	// JSON config file; anything richer than that is out of scope here.
	run := config.Defaults()
	if len(os.Args) > 1 {
		loaded, err := config.Load(os.Args[1])
		if err != nil {
			debug.DropError("CONFIG", err)
			os.Exit(2)
		}
		run = loaded
	}
	debug.DropMessage("INIT", "header \""+run.Header+"\"")

	// PHASE 1-3: Full solve pipeline (footprint report, trimming with the
	// overload guard, sequential cycle detection).
	res, err := solver.Solve(solverConfig(run))
	if err != nil {
		debug.DropError("FATAL", err)
		os.Exit(2)
	}

	// PHASE 4: Emit and persist.
	for _, sol := range res.Solutions {
		printSolution(sol)
	}
	if run.Database != "" && len(res.Solutions) > 0 {
		persist(run.Database, run.Header, res.Solutions)
	}
	if len(res.Solutions) == 0 {
		os.Exit(1)
	}
}

// solverConfig maps the boundary configuration onto one run's parameters.
// The compile-time partition count rides along so the counter layout and
// the trim-round default stay in step.
func solverConfig(run config.Run) solver.Config {
	return solver.Config{
		Header:   run.Header,
		PartBits: constants.PartBits,
		Trims:    run.Trims,
		Threads:  run.Threads,
	}
}

// printSolution writes the success marker and the proof's nonces, hex,
// ascending, space-separated, to stdout.
func printSolution(sol types.Solution) {
	line := "Solution"
	for _, nonce := range sol {
		line += " " + utils.Utox(uint64(nonce))
	}
	utils.PrintLine(line + "\n")
}

// persist records every found solution in the configured SQLite store.
// Persistence failures are reported but do not change the exit status:
// the proof was already emitted.
func persist(path, header string, sols []types.Solution) {
	db, err := store.Open(path)
	if err != nil {
		debug.DropError("STORE", err)
		return
	}
	defer db.Close()
	for _, sol := range sols {
		if err := db.Save(header, sol); err != nil {
			debug.DropError("STORE", err)
			return
		}
	}
	debug.DropMessage("STORE", utils.Itoa(len(sols))+" solutions recorded")
}
