package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/beneills/quantharness/types"
	"github.com/beneills/quantharness/validate"
)

var strict bool

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the suite file against its schema and field rules",
	RunE:  runValidate,
}

func init() {
	validateCmd.Flags().BoolVar(&strict, "strict", false, "treat warnings as errors")
}

func runValidate(cmd *cobra.Command, args []string) error {
	cfgPath, err := resolveConfigPath()
	if err != nil {
		return err
	}

	data, err := os.ReadFile(cfgPath)
	if err != nil {
		return fmt.Errorf("reading suite file: %w", err)
	}

	result := &validate.ValidationResult{}

	schemaErrs, err := validate.ValidateSuiteFile(data)
	if err != nil {
		return fmt.Errorf("schema validation: %w", err)
	}
	for _, e := range schemaErrs {
		result.Errors = append(result.Errors, fmt.Sprintf("schema: %s", e))
	}

	// Field rules only apply to a parseable suite.
	if suite, parseErr := types.ParseSuite(data); parseErr != nil {
		result.Errors = append(result.Errors, parseErr.Error())
	} else {
		fieldResult := validate.ValidateSuite(suite)
		result.Errors = append(result.Errors, fieldResult.Errors...)
		result.Warnings = append(result.Warnings, fieldResult.Warnings...)
	}

	for _, w := range result.Warnings {
		fmt.Fprintf(os.Stderr, "WARNING: %s\n", w)
	}
	for _, e := range result.Errors {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", e)
	}

	if strict && len(result.Warnings) > 0 {
		return fmt.Errorf("validation failed: %d warning(s) treated as errors in strict mode", len(result.Warnings))
	}

	if !result.IsValid() {
		return fmt.Errorf("validation failed: %d error(s)", len(result.Errors))
	}

	fmt.Println("Validation passed.")
	return nil
}
