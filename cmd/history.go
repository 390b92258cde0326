package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/designlab/internal/store"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent progress events and per-lesson activity",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		summary, _ := cmd.Flags().GetBool("summary")

		return withEnv(cmd, true, func(env *cmdEnv) error {
			ctx := commandContext(cmd)
			if summary {
				activity, err := env.sess.Activity(ctx)
				if err != nil {
					return err
				}
				if len(activity) == 0 {
					printf(cmd, "No activity yet.\n")
					return nil
				}
				printf(cmd, "%-18s  %6s  %6s  %6s  %6s\n", "Lesson", "Starts", "Stages", "Backs", "Done")
				for _, a := range activity {
					printf(cmd, "%-18s  %6d  %6d  %6d  %6d\n",
						a.LessonID, a.Selections, a.StagesCompleted, a.Retreats, a.Completions)
				}
				return nil
			}

			events, err := env.sess.History(ctx, limit)
			if err != nil {
				return err
			}
			if len(events) == 0 {
				printf(cmd, "No activity yet.\n")
				return nil
			}
			for _, ev := range events {
				printf(cmd, "%6d  %s  %-16s  %s\n",
					ev.Sequence, ev.Timestamp.Local().Format("2006-01-02 15:04:05"), ev.Kind, eventTarget(ev))
			}
			return nil
		})
	},
}

func eventTarget(ev store.ProgressEventRecord) string {
	if ev.StageID == "" {
		return ev.LessonID
	}
	return ev.LessonID + "/" + ev.StageID
}

func init() {
	historyCmd.Flags().Int("limit", 20, "Maximum number of events to show (0 for all)")
	historyCmd.Flags().Bool("summary", false, "Show per-lesson totals instead of individual events")
}
