package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/designlab/internal/catalog"
)

// version is set via -ldflags at build time.
var version = "(devel)"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the program and built-in catalog versions",
	Run: func(cmd *cobra.Command, args []string) {
		printf(cmd, "designlab %s (catalog %s)\n", version, catalog.DefaultVersion)
	},
}
