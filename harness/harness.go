// Package harness runs a suite's sub-tests sequentially and aggregates their
// outcomes.
package harness

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/beneills/quantharness/dispatch"
	"github.com/beneills/quantharness/fixture"
	"github.com/beneills/quantharness/locate"
	"github.com/beneills/quantharness/types"
)

// Preparer stages the reference fixture into the working directory.
type Preparer interface {
	Prepare(reference, workdir string) error
}

// Dispatcher executes one external command synchronously.
type Dispatcher interface {
	Run(ctx context.Context, bin string, args []string, dir string) (dispatch.Result, error)
}

// RunnerConfig holds configuration for the Runner.
type RunnerConfig struct {
	Suite         *types.Suite
	Locator       locate.Locator
	Preparer      Preparer
	Dispatcher    Dispatcher
	Logger        Logger
	FailOnMissing bool // treat a missing tool as FAIL instead of SKIPPED
}

// Runner orchestrates a suite run: locate tool, stage fixture, dispatch the
// driver, one sub-test at a time in declaration order.
type Runner struct {
	cfg RunnerConfig
}

// NewRunner creates a Runner from the given config, filling in the real
// locator, preparer, and dispatcher where none are injected.
func NewRunner(cfg RunnerConfig) (*Runner, error) {
	if cfg.Suite == nil {
		return nil, fmt.Errorf("suite is required")
	}
	if cfg.Locator == nil {
		cfg.Locator = locate.NewPathLocator()
	}
	if cfg.Preparer == nil {
		cfg.Preparer = fixture.NewPreparer()
	}
	if cfg.Dispatcher == nil {
		cfg.Dispatcher = dispatch.NewRunner(dispatch.Options{
			Timeout: time.Duration(cfg.Suite.TimeoutSeconds) * time.Second,
		})
	}
	if cfg.Logger == nil {
		cfg.Logger = NewJSONLogger(os.Stderr, false)
	}
	return &Runner{cfg: cfg}, nil
}

// Workdir returns the suite working directory, defaulting to the current one.
func (r *Runner) Workdir() string {
	if r.cfg.Suite.Workdir != "" {
		return r.cfg.Suite.Workdir
	}
	return "."
}

// RunAll runs every configured sub-test and returns one Outcome per sub-test,
// in declaration order. Only configuration-level problems (an unrunnable
// driver) abort the run; per-sub-test failures are recorded and the remaining
// sub-tests still execute.
func (r *Runner) RunAll(ctx context.Context) ([]Outcome, error) {
	return r.Run(ctx, nil)
}

// Run behaves like RunAll restricted to the named sub-tests. An empty names
// slice selects all of them.
func (r *Runner) Run(ctx context.Context, names []string) ([]Outcome, error) {
	suite := r.cfg.Suite

	selected, err := r.selectSubtests(names)
	if err != nil {
		return nil, err
	}

	driver, err := r.resolveDriver()
	if err != nil {
		return nil, err
	}

	r.cfg.Logger.Info("starting suite", map[string]any{
		"suite":    suite.Name,
		"driver":   driver,
		"subtests": len(selected),
	})

	outcomes := make([]Outcome, 0, len(selected))
	for _, st := range selected {
		outcomes = append(outcomes, r.runSubtest(ctx, driver, st))
	}
	return outcomes, nil
}

func (r *Runner) selectSubtests(names []string) ([]types.SubTest, error) {
	suite := r.cfg.Suite
	if len(names) == 0 {
		return suite.Subtests, nil
	}
	selected := make([]types.SubTest, 0, len(names))
	for _, name := range names {
		st := suite.Subtest(name)
		if st == nil {
			return nil, fmt.Errorf("unknown subtest %q", name)
		}
		selected = append(selected, *st)
	}
	return selected, nil
}

// resolveDriver verifies the driver is runnable before any sub-test executes:
// a path-like driver must exist relative to the working directory, a bare name
// must be on the search path.
func (r *Runner) resolveDriver() (string, error) {
	driver := r.cfg.Suite.Driver

	if strings.ContainsRune(driver, '/') || filepath.IsAbs(driver) {
		resolved := driver
		if !filepath.IsAbs(driver) {
			resolved = filepath.Join(r.Workdir(), driver)
		}
		if _, err := os.Stat(resolved); err != nil {
			return "", fmt.Errorf("driver %s: %w", driver, err)
		}
		return driver, nil
	}

	if _, ok := r.cfg.Locator.Locate(driver); !ok {
		return "", fmt.Errorf("driver %q not found on PATH", driver)
	}
	return driver, nil
}

func (r *Runner) runSubtest(ctx context.Context, driver string, st types.SubTest) Outcome {
	suite := r.cfg.Suite
	out := Outcome{Subtest: st.Name, Tool: st.Tool}

	if _, ok := r.cfg.Locator.Locate(st.Tool); !ok {
		out.Message = fmt.Sprintf("tool %q not found on PATH", st.Tool)
		if r.cfg.FailOnMissing {
			out.Status = StatusFail
			r.cfg.Logger.Error("required tool missing", map[string]any{
				"subtest": st.Name, "tool": st.Tool,
			})
		} else {
			out.Status = StatusSkipped
			r.cfg.Logger.Warn("tool missing, skipping subtest", map[string]any{
				"subtest": st.Name, "tool": st.Tool,
			})
		}
		return out
	}

	if err := r.cfg.Preparer.Prepare(suite.Transcripts, r.Workdir()); err != nil {
		out.Status = StatusFail
		out.Message = err.Error()
		r.cfg.Logger.Error("fixture preparation failed", map[string]any{
			"subtest": st.Name, "error": err.Error(),
		})
		return out
	}

	args := dispatch.Resolve(suite.Template(), suite.Substitutions(st))
	args = append(args, st.ExtraArgs...)

	r.cfg.Logger.Debug("dispatching driver", map[string]any{
		"subtest": st.Name, "driver": driver, "args": args,
	})

	start := time.Now()
	res, err := r.cfg.Dispatcher.Run(ctx, driver, args, r.Workdir())
	out.Duration = time.Since(start)
	out.DurationMS = out.Duration.Milliseconds()
	out.Stdout = res.Stdout
	out.Stderr = res.Stderr

	if err != nil {
		out.Status = StatusFail
		out.Message = err.Error()
		r.cfg.Logger.Error("driver did not run", map[string]any{
			"subtest": st.Name, "error": err.Error(),
		})
		return out
	}

	out.ExitCode = exitCode(res.ExitCode)
	if res.ExitCode == 0 {
		out.Status = StatusPass
		r.cfg.Logger.Info("subtest passed", map[string]any{
			"subtest": st.Name, "duration_ms": out.DurationMS,
		})
	} else {
		out.Status = StatusFail
		out.Message = fmt.Sprintf("driver exited with code %d", res.ExitCode)
		r.cfg.Logger.Error("subtest failed", map[string]any{
			"subtest": st.Name, "exit_code": res.ExitCode,
		})
	}
	return out
}
