package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/beneills/quantharness/dispatch"
	"github.com/beneills/quantharness/harness"
	"github.com/beneills/quantharness/internal/tui"
	"github.com/beneills/quantharness/report"
	"github.com/beneills/quantharness/validate"
)

var (
	runTimeout       time.Duration
	runFailOnMissing bool
	runJSON          bool
)

var runCmd = &cobra.Command{
	Use:   "run [subtest...]",
	Short: "Run the suite's sub-tests and report PASS/FAIL/SKIPPED",
	RunE:  runRun,
}

func init() {
	runCmd.Flags().DurationVar(&runTimeout, "timeout", 0, "per-subtest timeout, e.g. 10m (overrides suite timeout_seconds)")
	runCmd.Flags().BoolVar(&runFailOnMissing, "fail-on-missing", false, "treat a missing backend tool as FAIL instead of SKIPPED")
	runCmd.Flags().BoolVar(&runJSON, "json", false, "emit a machine-readable JSON report to stdout")
}

func runRun(cmd *cobra.Command, args []string) error {
	suite, err := loadSuite()
	if err != nil {
		return err
	}

	result := validate.ValidateSuite(suite)
	if !result.IsValid() {
		for _, e := range result.Errors {
			fmt.Fprintf(os.Stderr, "ERROR: %s\n", e)
		}
		return fmt.Errorf("suite validation failed: %d error(s)", len(result.Errors))
	}

	timeout := time.Duration(suite.TimeoutSeconds) * time.Second
	if runTimeout > 0 {
		timeout = runTimeout
	}

	runner, err := harness.NewRunner(harness.RunnerConfig{
		Suite:         suite,
		Dispatcher:    dispatch.NewRunner(dispatch.Options{Timeout: timeout}),
		Logger:        harness.NewJSONLogger(os.Stderr, verbose),
		FailOnMissing: runFailOnMissing,
	})
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	outcomes, err := runner.Run(ctx, args)
	if err != nil {
		return err
	}

	rep := report.New(suite.Name, outcomes)

	if runJSON {
		if err := report.WriteJSON(os.Stdout, rep); err != nil {
			return err
		}
	} else {
		styles := tui.NewStyleSet(tui.DetectTheme(themeOverride))
		renderer := report.NewRenderer(styles, report.IsTTY(os.Stdout))
		renderer.Render(os.Stdout, rep)
	}

	if !rep.Summary.Success() {
		return fmt.Errorf("suite failed: %d subtest(s) failed", rep.Summary.Failed)
	}
	return nil
}
