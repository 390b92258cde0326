package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/designlab/internal/catalog"
	"github.com/abhisek/designlab/internal/progress"
)

var startCmd = &cobra.Command{
	Use:   "start <lesson-id>",
	Short: "Start (or restart) a lesson at its first stage",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withEnv(cmd, true, func(env *cmdEnv) error {
			pos, err := env.sess.Engine.SelectLesson(args[0])
			if err != nil {
				return guide(err)
			}
			printPosition(cmd, env.sess.Engine, pos)
			return nil
		})
	},
}

var nextCmd = &cobra.Command{
	Use:   "next",
	Short: "Complete the current stage and move to the next",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withEnv(cmd, true, func(env *cmdEnv) error {
			e := env.sess.Engine
			adv, err := e.AdvanceStage()
			if err != nil {
				return guide(err)
			}
			printf(cmd, "Completed stage %q.\n", adv.CompletedStage)

			switch {
			case adv.Next.LessonID != "":
				printPosition(cmd, e, adv.Next)
			case adv.LessonCompleted:
				printf(cmd, "Lesson %q complete!\n", adv.LessonID)
				if len(adv.Unlocked) > 0 {
					printf(cmd, "Now available: %s\n", strings.Join(adv.Unlocked, ", "))
				}
			default:
				printf(cmd, "Reached the end of %q, but some stages are still incomplete. Run `designlab lessons show %s`.\n",
					adv.LessonID, adv.LessonID)
			}
			return nil
		})
	},
}

var backCmd = &cobra.Command{
	Use:   "back",
	Short: "Go back one stage in the current lesson",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withEnv(cmd, true, func(env *cmdEnv) error {
			pos, err := env.sess.Engine.RetreatStage()
			if err != nil {
				return guide(err)
			}
			printPosition(cmd, env.sess.Engine, pos)
			return nil
		})
	},
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the current lesson and overall progress",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withEnv(cmd, true, func(env *cmdEnv) error {
			e := env.sess.Engine
			cat := e.Catalog()
			state := e.State()

			printf(cmd, "Learner:   %s\n", env.sess.LearnerID)
			printf(cmd, "Catalog:   %s\n", cat.Version())
			printf(cmd, "Completed: %d/%d lessons\n\n", len(state.CompletedLessons), cat.Len())

			if pos, ok := e.Current(); ok {
				printPosition(cmd, e, pos)
			} else {
				printf(cmd, "No active lesson.\n")
			}

			if avail := cat.Available(state.CompletedLessons); len(avail) > 0 {
				printf(cmd, "\nAvailable:\n")
				for _, l := range avail {
					printf(cmd, "  %-18s %3.0f%%  %s\n", l.ID, e.ProgressFor(l.ID)*100, l.Title)
				}
			}

			if locked := cat.Blocked(state.CompletedLessons); len(locked) > 0 {
				printf(cmd, "\nLocked:\n")
				for _, l := range locked {
					printf(cmd, "  %-18s needs %s\n", l.ID,
						strings.Join(cat.MissingPrerequisites(l.ID, state.CompletedLessons), ", "))
				}
			}
			return nil
		})
	},
}

func printPosition(cmd *cobra.Command, e *progress.Engine, pos progress.Position) {
	l, err := e.Catalog().Lesson(pos.LessonID)
	if err != nil {
		return
	}
	s := l.Stages[pos.StageIndex]
	printf(cmd, "%s: stage %d of %d\n", l.Title, pos.StageIndex+1, l.StageCount())
	printStage(cmd, s)
}

func printStage(cmd *cobra.Command, s catalog.Stage) {
	printf(cmd, "\n%s %s  %s\n", s.Type.Icon(), strings.ToUpper(string(s.Type)), s.Title)
	if s.Body != "" {
		printf(cmd, "\n%s\n", s.Body)
	}
}
