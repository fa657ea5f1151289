package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/beneills/quantharness/fixture"
)

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Remove artifacts left in the working directory by previous runs",
	Long: "Removes the staged reference link, generated indices, and backend output\n" +
		"directories matched by the suite's artifact globs. Cleanup never runs\n" +
		"automatically so failing outputs stay available for inspection.",
	RunE: runClean,
}

func runClean(cmd *cobra.Command, args []string) error {
	suite, err := loadSuite()
	if err != nil {
		return err
	}

	globs := suite.ArtifactGlobs()
	if err := fixture.Clean(suite.Workdir, globs); err != nil {
		return fmt.Errorf("cleaning %s: %w", suite.Workdir, err)
	}

	fmt.Printf("Cleaned %s (%d pattern(s)).\n", suite.Workdir, len(globs))
	return nil
}
