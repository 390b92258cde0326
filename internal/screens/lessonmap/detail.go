package lessonmap

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/designlab/internal/catalog"
	"github.com/abhisek/designlab/internal/learner"
	"github.com/abhisek/designlab/internal/progress"
	"github.com/abhisek/designlab/internal/router"
	"github.com/abhisek/designlab/internal/screen"
	"github.com/abhisek/designlab/internal/screens/player"
	"github.com/abhisek/designlab/internal/ui/keys"
	"github.com/abhisek/designlab/internal/ui/layout"
	"github.com/abhisek/designlab/internal/ui/theme"
)

// LessonDetailScreen describes one lesson and starts it.
type LessonDetailScreen struct {
	sess   *learner.Session
	lesson catalog.Lesson
	errMsg string
}

var _ screen.Screen = (*LessonDetailScreen)(nil)
var _ screen.KeyHintProvider = (*LessonDetailScreen)(nil)

func newLessonDetail(sess *learner.Session, l catalog.Lesson) *LessonDetailScreen {
	return &LessonDetailScreen{sess: sess, lesson: l}
}

func (d *LessonDetailScreen) Init() tea.Cmd { return nil }
func (d *LessonDetailScreen) Title() string { return d.lesson.Title }

func (d *LessonDetailScreen) KeyHints() []layout.KeyHint {
	start := keys.Start
	start.SetEnabled(d.sess.Engine.IsLessonUnlocked(d.lesson.ID))
	return keys.Hints(start, keys.Close)
}

func (d *LessonDetailScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok || !key.Matches(kmsg, keys.Start) {
		return d, nil
	}
	if _, err := d.sess.Engine.SelectLesson(d.lesson.ID); err != nil {
		d.errMsg = progress.Guidance(err)
		return d, nil
	}
	p := player.New(d.sess)
	return d, func() tea.Msg { return router.ReplaceScreenMsg{Screen: p} }
}

func (d *LessonDetailScreen) View(width, height int) string {
	l := d.lesson
	e := d.sess.Engine
	cat := e.Catalog()
	state := e.LessonState(l.ID)
	contentWidth := min(width-8, 72)

	var b strings.Builder
	b.WriteString(theme.Title.Render(fmt.Sprintf("  %s  %s", state.Icon(), l.Title)))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.StateColor(state)).Render("  " + state.Label()))
	b.WriteString("\n\n")

	if l.Summary != "" {
		b.WriteString(theme.Body.Width(contentWidth).PaddingLeft(2).Render(l.Summary))
		b.WriteString("\n\n")
	}

	b.WriteString(theme.Dim.Render("  Category:    ") + theme.Body.Render(catalog.CategoryDisplayName(l.Category)) + "\n")
	b.WriteString(theme.Dim.Render("  Difficulty:  ") + theme.Body.Render(string(l.Difficulty)) + "\n")
	if l.EstimatedMins > 0 {
		b.WriteString(theme.Dim.Render("  Time:        ") + theme.Body.Render(fmt.Sprintf("~%d min", l.EstimatedMins)) + "\n")
	}
	b.WriteString("\n")

	b.WriteString(theme.Section.Render("  Stages"))
	b.WriteString("\n")
	completed := e.State().CompletedStages
	for _, s := range l.Stages {
		mark, style := "○", theme.Dim
		if completed[progress.StageKey(l.ID, s.ID)] {
			mark, style = "●", lipgloss.NewStyle().Foreground(theme.Success)
		}
		b.WriteString(style.Render(fmt.Sprintf("  %s %s %s", mark, s.Type.Icon(), s.Title)))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if prereqs := cat.Prerequisites(l.ID); len(prereqs) > 0 {
		b.WriteString(theme.Section.Render("  Prerequisites"))
		b.WriteString("\n")
		for _, p := range prereqs {
			mark, style := "○", theme.Dim
			if e.IsLessonCompleted(p.ID) {
				mark, style = "●", lipgloss.NewStyle().Foreground(theme.Success)
			}
			b.WriteString(style.Render(fmt.Sprintf("  %s %s", mark, p.Title)))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	if deps := cat.Dependents(l.ID); len(deps) > 0 {
		b.WriteString(theme.Section.Render("  Unlocks"))
		b.WriteString("\n")
		for _, dep := range deps {
			b.WriteString(theme.Dim.Render("  → " + dep.Title))
			b.WriteString("\n")
		}
	}

	if d.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(theme.ErrorText.Render("  " + d.errMsg))
	}

	return lipgloss.Place(width, height, lipgloss.Left, lipgloss.Top, "\n"+b.String())
}
