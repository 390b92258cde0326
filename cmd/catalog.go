package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/designlab/internal/catalog"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Work with lesson catalog files",
}

var catalogValidateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Check a YAML catalog against the schema and the lesson graph rules",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := catalog.Load(args[0])
		if err != nil {
			return err
		}
		roots := make([]string, 0, len(cat.Roots()))
		for _, l := range cat.Roots() {
			roots = append(roots, l.ID)
		}
		printf(cmd, "%s: ok (version %s, %d lessons, roots: %s)\n",
			args[0], cat.Version(), cat.Len(), strings.Join(roots, ", "))
		return nil
	},
}

var catalogOrderCmd = &cobra.Command{
	Use:   "order [file]",
	Short: "Print lessons in prerequisite order",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cat := catalog.Default()
		if len(args) == 1 {
			var err error
			if cat, err = catalog.Load(args[0]); err != nil {
				return err
			}
		}
		for i, l := range cat.TopologicalOrder() {
			line := l.ID
			if len(l.Prerequisites) > 0 {
				line += "  <- " + strings.Join(l.Prerequisites, ", ")
			}
			printf(cmd, "%2d. %s\n", i+1, line)
		}
		return nil
	},
}

func init() {
	catalogCmd.AddCommand(catalogValidateCmd)
	catalogCmd.AddCommand(catalogOrderCmd)
}
