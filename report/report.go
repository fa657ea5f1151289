// Package report consolidates sub-test outcomes into operator-facing output.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"golang.org/x/term"

	"github.com/beneills/quantharness/harness"
)

// Summary aggregates a suite run.
type Summary struct {
	Total      int   `json:"total"`
	Passed     int   `json:"passed"`
	Failed     int   `json:"failed"`
	Skipped    int   `json:"skipped"`
	DurationMS int64 `json:"duration_ms"`
}

// Success reports whether the run as a whole succeeded: no outcome is FAIL.
// Skipped sub-tests do not fail the run.
func (s Summary) Success() bool { return s.Failed == 0 }

// Report is the consolidated result of one suite run.
type Report struct {
	Suite    string            `json:"suite"`
	Outcomes []harness.Outcome `json:"outcomes"`
	Summary  Summary           `json:"summary"`
}

// New builds a Report from the outcomes of a run.
func New(suite string, outcomes []harness.Outcome) Report {
	var s Summary
	var total time.Duration
	for _, o := range outcomes {
		s.Total++
		total += o.Duration
		switch o.Status {
		case harness.StatusPass:
			s.Passed++
		case harness.StatusFail:
			s.Failed++
		case harness.StatusSkipped:
			s.Skipped++
		}
	}
	s.DurationMS = total.Milliseconds()
	return Report{Suite: suite, Outcomes: outcomes, Summary: s}
}

// WriteJSON emits the machine-readable report.
func WriteJSON(w io.Writer, rep Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(rep); err != nil {
		return fmt.Errorf("encoding report: %w", err)
	}
	return nil
}

// IsTTY reports whether f is attached to a terminal. Styled rendering is only
// used on terminals; piped output stays plain.
func IsTTY(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
