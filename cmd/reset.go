package cmd

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/designlab/internal/store"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete all saved progress for the learner",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		yes, _ := cmd.Flags().GetBool("yes")

		cfg, err := resolveConfig(cmd)
		if err != nil {
			return err
		}

		if !yes {
			printf(cmd, "Delete all progress for learner %q? [y/N] ", cfg.LearnerID)
			answer, _ := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
			if a := strings.ToLower(strings.TrimSpace(answer)); a != "y" && a != "yes" {
				printf(cmd, "Aborted.\n")
				return nil
			}
		}

		// Opened directly: a learner session would checkpoint the old
		// progress again on close.
		dbPath, err := resolveDBPath(cfg)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		if err := st.ResetLearner(commandContext(cmd), cfg.LearnerID); err != nil {
			return err
		}
		printf(cmd, "Progress for learner %q reset.\n", cfg.LearnerID)
		return nil
	},
}

func init() {
	resetCmd.Flags().BoolP("yes", "y", false, "Skip the confirmation prompt")
}
