package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/designlab/internal/app"
)

var rootCmd = &cobra.Command{
	Use:   "designlab",
	Short: "Interactive system design lessons",
	Long: "designlab walks you through system design lessons one stage at a time.\n" +
		"Lessons unlock as you complete their prerequisites; progress is saved per learner.",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		// The TUI owns the terminal, so logs only go to the log file.
		return withEnv(cmd, false, func(env *cmdEnv) error {
			return app.Run(env.sess)
		})
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.String("db", "", "Path to SQLite database file (overrides DESIGNLAB_DB)")
	pf.String("learner", "", "Learner ID to load and save progress for (overrides DESIGNLAB_LEARNER)")
	pf.String("catalog", "", "YAML lesson catalog to use instead of the built-in one")
	pf.String("config", "", "Config file (default $XDG_CONFIG_HOME/designlab/config.yaml)")
	pf.String("log-level", "", "Log level: debug, info, warn, error")
	pf.String("log-file", "", "Append JSON logs to this file")

	rootCmd.AddCommand(lessonsCmd)
	rootCmd.AddCommand(startCmd)
	rootCmd.AddCommand(nextCmd)
	rootCmd.AddCommand(backCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(catalogCmd)
	rootCmd.AddCommand(versionCmd)
}
