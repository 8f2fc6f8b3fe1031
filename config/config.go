// ─────────────────────────────────────────────────────────────────────────────
// [Filename]: config.go — Runtime Boundary Configuration
//
// Purpose:
//   - Decodes the optional JSON run configuration: keying header, trim
//     rounds, kernel width, solution-database path.
//   - Compile-time graph parameters stay in constants; this file only
//     carries what varies run to run.
//
// Notes:
//   - Absent file or absent fields fall back to defaults; a present but
//     malformed file is an error, never silently defaulted.
// ─────────────────────────────────────────────────────────────────────────────

package config

import (
	"os"

	"github.com/sugawarayuuta/sonnet"

	"github.com/programmerTim/cuckoo/constants"
)

// Run is one run's boundary-supplied configuration.
type Run struct {
	Header   string `json:"header"`   // keying header, default empty
	Trims    uint32 `json:"trims"`    // trim rounds, 0 = derive from PartBits
	Threads  uint32 `json:"threads"`  // trim kernel width, 0 = 1
	Database string `json:"database"` // solution store path, "" = no persistence
}

// Defaults returns the configuration used when no file is supplied.
func Defaults() Run {
	return Run{
		Trims:   constants.DefaultTrims,
		Threads: constants.DefaultThreads,
	}
}

// Load reads and decodes a JSON configuration file, filling absent numeric
// fields from the defaults.
func Load(path string) (Run, error) {
	run := Run{}
	raw, err := os.ReadFile(path)
	if err != nil {
		return run, err
	}
	if err := sonnet.Unmarshal(raw, &run); err != nil {
		return run, err
	}
	if run.Trims == 0 {
		run.Trims = constants.DefaultTrims
	}
	if run.Threads == 0 {
		run.Threads = constants.DefaultThreads
	}
	return run, nil
}
