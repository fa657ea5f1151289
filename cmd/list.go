package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/beneills/quantharness/locate"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List configured sub-tests and backend tool availability",
	RunE:  runList,
}

func runList(cmd *cobra.Command, args []string) error {
	suite, err := loadSuite()
	if err != nil {
		return err
	}

	// Availability is probed fresh on every invocation; installs between
	// runs are picked up immediately.
	loc := locate.NewPathLocator()

	w := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, "SUBTEST\tTOOL\tSTATUS\tPATH")
	for _, st := range suite.Subtests {
		path, ok := loc.Locate(st.Tool)
		status := "available"
		if !ok {
			status = "missing"
			path = "-"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", st.Name, st.Tool, status, path)
	}
	return w.Flush()
}
