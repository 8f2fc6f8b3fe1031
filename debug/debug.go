// ─────────────────────────────────────────────────────────────────────────────
// [Filename]: debug.go — Cold-path diagnostic logging helper (zero-alloc)
//
// Purpose:
//   - Logs phase transitions, per-cycle diagnostics and fatal aborts
//     without introducing heap pressure in the surrounding code.
//
// Notes:
//   - Avoids fmt.Sprintf to minimize footprint and latency.
//   - Writes directly to stderr; stdout stays reserved for solutions.
//
// ⚠️ Never invoke inside trim kernels — use only at phase granularity.
// ─────────────────────────────────────────────────────────────────────────────

package debug

import "github.com/programmerTim/cuckoo/utils"

// DropError logs error messages with a custom alloc-free print strategy.
// It writes directly to stderr (file descriptor 2), bypassing any heap
// allocations beyond the concatenated message itself.
//
//go:nosplit
//go:inline
func DropError(prefix string, err error) {
	if err != nil {
		msg := prefix + ": " + err.Error() + "\n"
		utils.PrintWarning(msg)
	} else {
		msg := prefix + "\n"
		utils.PrintWarning(msg)
	}
}

// DropMessage logs diagnostic messages with a zero-allocation print
// strategy. Used for phase boundaries, footprint reports, and per-cycle
// length lines during the sequential scan.
//
//go:nosplit
//go:inline
func DropMessage(prefix, message string) {
	msg := prefix + ": " + message + "\n"
	utils.PrintWarning(msg)
}
