// Package cmd implements the quantharness CLI commands.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	cfgFile       string
	verbose       bool
	themeOverride string

	appVersion = "dev"
)

var rootCmd = &cobra.Command{
	Use:   "quantharness",
	Short: "Conditional test runner for abundance-estimation pipelines",
	Long: "quantharness drives an external quantification driver against a suite of\n" +
		"estimation backends (RSEM, eXpress, kallisto, salmon), skipping sub-tests\n" +
		"whose backend binary is not installed and reporting a consolidated result.",
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "suite.yaml", "suite file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVar(&themeOverride, "theme", "", "color theme: dark, light, or auto")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(cleanCmd)
	rootCmd.AddCommand(initCmd)
}

// SetVersionInfo sets the version and commit for display.
func SetVersionInfo(version, commit string) {
	appVersion = version
	rootCmd.Version = version
	rootCmd.SetVersionTemplate(fmt.Sprintf("quantharness %s (commit: %s)\n", version, commit))
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
