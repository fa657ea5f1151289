package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/beneills/quantharness/internal/tui"
	"github.com/beneills/quantharness/internal/tui/steps"
	"github.com/beneills/quantharness/report"
	"github.com/beneills/quantharness/types"
)

// initOptions holds the collected options for suite scaffolding.
type initOptions struct {
	Name        string
	Driver      string
	Transcripts string
	Backends    []string
}

var allBackends = []string{"rsem", "express", "kallisto", "salmon"}

var initCmd = &cobra.Command{
	Use:   "init [name]",
	Short: "Scaffold a suite.yaml",
	Long:  "Create a suite.yaml covering the selected estimation backends, interactively on a terminal or from flags.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runInit,
}

func init() {
	initCmd.Flags().String("driver", "./align_and_estimate_abundance.pl", "quantification driver (script path or PATH binary)")
	initCmd.Flags().String("transcripts", "../test_data/Trinity.fasta", "reference transcripts FASTA")
	initCmd.Flags().StringSlice("backends", allBackends, "backends to configure (rsem,express,kallisto,salmon)")
	initCmd.Flags().Bool("non-interactive", false, "run without interactive prompts")
	initCmd.Flags().Bool("force", false, "overwrite an existing suite file")
}

func runInit(cmd *cobra.Command, args []string) error {
	opts := &initOptions{}
	if len(args) > 0 {
		opts.Name = args[0]
	}
	opts.Driver, _ = cmd.Flags().GetString("driver")
	opts.Transcripts, _ = cmd.Flags().GetString("transcripts")
	opts.Backends, _ = cmd.Flags().GetStringSlice("backends")
	nonInteractive, _ := cmd.Flags().GetBool("non-interactive")
	force, _ := cmd.Flags().GetBool("force")

	if nonInteractive || !report.IsTTY(os.Stdin) || !report.IsTTY(os.Stdout) {
		if opts.Name == "" {
			opts.Name = "align-and-estimate"
		}
	} else if err := collectWizard(opts); err != nil {
		return err
	}

	suite, err := buildSuite(opts)
	if err != nil {
		return err
	}

	outPath, err := resolveConfigPath()
	if err != nil {
		return err
	}
	if _, err := os.Stat(outPath); err == nil && !force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", outPath)
	}

	data, err := yaml.Marshal(suite)
	if err != nil {
		return fmt.Errorf("encoding suite: %w", err)
	}
	if err := os.WriteFile(outPath, data, 0644); err != nil {
		return fmt.Errorf("writing suite file: %w", err)
	}

	fmt.Printf("Wrote %s with %d subtest(s).\n", filepath.Base(outPath), len(suite.Subtests))
	return nil
}

// collectWizard gathers the options through the interactive wizard.
func collectWizard(opts *initOptions) error {
	theme := tui.DetectTheme(themeOverride)
	styleSet := tui.NewStyleSet(theme)

	wizardSteps := []tui.Step{
		steps.NewNameStep(styleSet, opts.Name),
		steps.NewDriverStep(styleSet),
		steps.NewTranscriptsStep(styleSet),
		steps.NewBackendsStep(styleSet),
		steps.NewReviewStep(styleSet),
	}

	model := tui.NewWizardModel(theme, wizardSteps, appVersion)
	p := tea.NewProgram(model)
	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("running wizard: %w", err)
	}

	m, ok := final.(tui.WizardModel)
	if !ok {
		return fmt.Errorf("unexpected wizard model type %T", final)
	}
	if m.Err() != nil {
		return m.Err()
	}
	if !m.Done() {
		return fmt.Errorf("wizard did not complete")
	}

	ctx := m.Context()
	opts.Name = ctx.Name
	opts.Driver = ctx.Driver
	opts.Transcripts = ctx.Transcripts
	opts.Backends = ctx.Backends
	return nil
}

// buildSuite assembles the scaffolded suite with the historical backend
// pairings: RSEM over bowtie, eXpress over bowtie2, and the alignment-free
// kallisto and salmon.
func buildSuite(opts *initOptions) (*types.Suite, error) {
	suite := &types.Suite{
		Name:        opts.Name,
		Driver:      opts.Driver,
		Transcripts: opts.Transcripts,
		Defaults: map[string]string{
			"seq_type":     "fq",
			"samples_file": "samples.txt",
			"ss_lib_type":  "RF",
		},
	}

	for _, b := range opts.Backends {
		switch b {
		case "rsem":
			suite.Subtests = append(suite.Subtests, types.SubTest{
				Name: "rsem", Tool: "rsem-calculate-expression",
				Params: map[string]string{"est_method": "RSEM", "aln_method": "bowtie"},
			})
		case "express":
			suite.Subtests = append(suite.Subtests, types.SubTest{
				Name: "express", Tool: "express",
				Params: map[string]string{"est_method": "express", "aln_method": "bowtie2"},
			})
		case "kallisto":
			suite.Subtests = append(suite.Subtests, types.SubTest{
				Name: "kallisto", Tool: "kallisto",
				Params: map[string]string{"est_method": "kallisto"},
			})
		case "salmon":
			suite.Subtests = append(suite.Subtests, types.SubTest{
				Name: "salmon", Tool: "salmon",
				Params:    map[string]string{"est_method": "salmon"},
				ExtraArgs: []string{"--salmon_idx_type", "salmon-quasi"},
			})
		default:
			return nil, fmt.Errorf("unknown backend %q (known: rsem, express, kallisto, salmon)", b)
		}
	}

	if len(suite.Subtests) == 0 {
		return nil, fmt.Errorf("at least one backend is required")
	}
	return suite, nil
}
