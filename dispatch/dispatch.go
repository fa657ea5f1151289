// Package dispatch builds concrete command lines from templates and executes
// them synchronously, capturing output and exit status.
package dispatch

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"syscall"
	"time"
)

const defaultMaxOutputBytes = 1048576 // 1MB per stream

// Options configures a Runner.
type Options struct {
	Timeout        time.Duration // zero means no timeout
	MaxOutputBytes int           // per captured stream, default 1MB
	EnvPassthrough []string      // extra environment variables to forward
}

// Result holds the captured outcome of one external process run.
type Result struct {
	ExitCode  int
	Stdout    string
	Stderr    string
	Truncated bool
	Duration  time.Duration
}

// Runner executes external commands without a shell, with an isolated
// environment, bounded output capture, and an optional timeout.
type Runner struct {
	opts Options
}

// NewRunner creates a Runner with the given options.
func NewRunner(opts Options) *Runner {
	if opts.MaxOutputBytes <= 0 {
		opts.MaxOutputBytes = defaultMaxOutputBytes
	}
	return &Runner{opts: opts}
}

// Run executes bin with args in dir and blocks until it terminates. A nonzero
// exit status is reported through Result.ExitCode, never through err; err is
// reserved for processes that could not be started or ran out of time.
func (r *Runner) Run(ctx context.Context, bin string, args []string, dir string) (Result, error) {
	runCtx := ctx
	if r.opts.Timeout > 0 {
		var cancel context.CancelFunc
		runCtx, cancel = context.WithTimeout(ctx, r.opts.Timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(runCtx, bin, args...)
	cmd.Dir = dir
	cmd.Env = r.buildEnv()

	// On timeout, ask the process to stop before killing it.
	cmd.Cancel = func() error {
		return cmd.Process.Signal(syscall.SIGTERM)
	}
	cmd.WaitDelay = 5 * time.Second

	stdout := newLimitedWriter(r.opts.MaxOutputBytes)
	stderr := newLimitedWriter(r.opts.MaxOutputBytes)
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	start := time.Now()
	err := cmd.Run()
	res := Result{
		Stdout:    stdout.String(),
		Stderr:    stderr.String(),
		Truncated: stdout.overflow || stderr.overflow,
		Duration:  time.Since(start),
	}

	if err != nil {
		if runCtx.Err() == context.DeadlineExceeded {
			return res, fmt.Errorf("command timed out after %s", r.opts.Timeout)
		}
		if exitErr, ok := err.(*exec.ExitError); ok {
			res.ExitCode = exitErr.ExitCode()
			return res, nil
		}
		return res, fmt.Errorf("running %s: %w", bin, err)
	}

	return res, nil
}

// buildEnv constructs an isolated environment with only PATH, HOME, LANG and
// explicitly configured passthrough variables.
func (r *Runner) buildEnv() []string {
	env := []string{
		"PATH=" + os.Getenv("PATH"),
		"HOME=" + os.Getenv("HOME"),
		"LANG=" + os.Getenv("LANG"),
	}
	for _, key := range r.opts.EnvPassthrough {
		if val, ok := os.LookupEnv(key); ok {
			env = append(env, key+"="+val)
		}
	}
	return env
}

// limitedWriter wraps a bytes.Buffer and silently drops bytes after the limit.
// It always returns len(p) to avoid broken pipe errors from subprocesses.
type limitedWriter struct {
	buf      bytes.Buffer
	limit    int
	overflow bool
}

func newLimitedWriter(limit int) *limitedWriter {
	return &limitedWriter{limit: limit}
}

func (w *limitedWriter) Write(p []byte) (int, error) {
	remaining := w.limit - w.buf.Len()
	if remaining <= 0 {
		w.overflow = true
		return len(p), nil
	}
	if len(p) > remaining {
		w.buf.Write(p[:remaining])
		w.overflow = true
		return len(p), nil
	}
	w.buf.Write(p)
	return len(p), nil
}

func (w *limitedWriter) String() string {
	return w.buf.String()
}
