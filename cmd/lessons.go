package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/designlab/internal/catalog"
	"github.com/abhisek/designlab/internal/progress"
)

var lessonsCmd = &cobra.Command{
	Use:   "lessons",
	Short: "Browse the lesson catalog",
}

var lessonsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List lessons in prerequisite order (optionally filtered by category or difficulty)",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		category, _ := cmd.Flags().GetString("category")
		difficulty, _ := cmd.Flags().GetString("difficulty")

		return withEnv(cmd, true, func(env *cmdEnv) error {
			e := env.sess.Engine
			cat := e.Catalog()

			var lessons []catalog.Lesson
			switch {
			case category != "" && difficulty != "":
				return fmt.Errorf("use --category or --difficulty, not both")
			case category != "":
				lessons = cat.ByCategory(catalog.Category(category))
				if len(lessons) == 0 {
					return fmt.Errorf("no lessons found for category %q", category)
				}
			case difficulty != "":
				lessons = cat.ByDifficulty(catalog.Difficulty(difficulty))
				if len(lessons) == 0 {
					return fmt.Errorf("no lessons found for difficulty %q", difficulty)
				}
			default:
				lessons = cat.TopologicalOrder()
			}

			printf(cmd, "%-18s  %-34s  %-16s  %-12s  %6s  %s\n",
				"ID", "Title", "Category", "Difficulty", "Done", "State")
			printf(cmd, "%s\n", strings.Repeat("─", 104))

			for _, l := range lessons {
				title := l.Title
				if len(title) > 34 {
					title = title[:31] + "..."
				}
				printf(cmd, "%-18s  %-34s  %-16s  %-12s  %5.0f%%  %s\n",
					l.ID, title, catalog.CategoryDisplayName(l.Category), l.Difficulty,
					e.ProgressFor(l.ID)*100, e.LessonState(l.ID).Label())
			}

			printf(cmd, "\n%d lessons\n", len(lessons))
			return nil
		})
	},
}

var lessonsShowCmd = &cobra.Command{
	Use:   "show <lesson-id>",
	Short: "Show a lesson's stages, prerequisites and what it unlocks",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withEnv(cmd, true, func(env *cmdEnv) error {
			e := env.sess.Engine
			cat := e.Catalog()
			l, err := cat.Lesson(args[0])
			if err != nil {
				return err
			}
			state := e.State()

			printf(cmd, "%s  %s\n", l.Title, "("+l.ID+")")
			if l.Summary != "" {
				printf(cmd, "%s\n", l.Summary)
			}
			printf(cmd, "\nCategory:    %s\n", catalog.CategoryDisplayName(l.Category))
			printf(cmd, "Difficulty:  %s\n", l.Difficulty)
			if l.EstimatedMins > 0 {
				printf(cmd, "Time:        ~%d min\n", l.EstimatedMins)
			}
			printf(cmd, "State:       %s\n", e.LessonState(l.ID).Label())

			printf(cmd, "\nStages:\n")
			for i, s := range l.Stages {
				mark := " "
				if state.CompletedStages[progress.StageKey(l.ID, s.ID)] {
					mark = "x"
				}
				printf(cmd, "  [%s] %d. %-10s %s\n", mark, i+1, s.Type, s.Title)
			}

			if prereqs := cat.Prerequisites(l.ID); len(prereqs) > 0 {
				printf(cmd, "\nPrerequisites:\n")
				for _, p := range prereqs {
					mark := " "
					if state.CompletedLessons[p.ID] {
						mark = "x"
					}
					printf(cmd, "  [%s] %s\n", mark, p.ID)
				}
			}
			if deps := cat.Dependents(l.ID); len(deps) > 0 {
				printf(cmd, "\nUnlocks:\n")
				for _, d := range deps {
					printf(cmd, "  %s\n", d.ID)
				}
			}
			return nil
		})
	},
}

func init() {
	lessonsListCmd.Flags().String("category", "", "Filter by category (e.g. storage)")
	lessonsListCmd.Flags().String("difficulty", "", "Filter by difficulty (beginner, intermediate, advanced)")

	lessonsCmd.AddCommand(lessonsListCmd)
	lessonsCmd.AddCommand(lessonsShowCmd)
}
