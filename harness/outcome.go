package harness

import "time"

// Status is the terminal state of a sub-test.
type Status string

const (
	StatusPass    Status = "PASS"
	StatusFail    Status = "FAIL"
	StatusSkipped Status = "SKIPPED"
)

// Outcome records the result of a single sub-test. Every configured sub-test
// produces exactly one Outcome per run.
type Outcome struct {
	Subtest    string        `json:"subtest"`
	Tool       string        `json:"tool"`
	Status     Status        `json:"status"`
	ExitCode   *int          `json:"exit_code,omitempty"`
	Message    string        `json:"message,omitempty"`
	Stdout     string        `json:"stdout,omitempty"`
	Stderr     string        `json:"stderr,omitempty"`
	Duration   time.Duration `json:"-"`
	DurationMS int64         `json:"duration_ms"`
}

func exitCode(c int) *int { return &c }
