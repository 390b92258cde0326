package summary

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
	"github.com/abhisek/designlab/internal/ui/keys"
	"github.com/abhisek/designlab/internal/ui/layout"
	"github.com/abhisek/designlab/internal/ui/theme"
)

var continueKey = key.NewBinding(
	key.WithKeys("enter"),
	key.WithHelp("Enter", "Continue"),
)

// SummaryScreen is shown when the learner steps past a lesson's last stage.
type SummaryScreen struct {
	sess      *learner.Session
	lesson    catalog.Lesson
	completed bool
	unlocked  []catalog.Lesson
	missing   []catalog.Stage
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a SummaryScreen for the advance that ended a lesson. A
// completed lesson lists the lessons it newly unlocked; otherwise the stages
// still missing are listed.
func New(sess *learner.Session, adv progress.Advance) *SummaryScreen {
	e := sess.Engine
	s := &SummaryScreen{sess: sess, completed: adv.LessonCompleted}

	l, err := e.Catalog().Lesson(adv.LessonID)
	if err != nil {
		return s
	}
	s.lesson = l

	if adv.LessonCompleted {
		for _, id := range adv.Unlocked {
			if dep, err := e.Catalog().Lesson(id); err == nil {
				s.unlocked = append(s.unlocked, dep)
			}
		}
		return s
	}

	done := e.State().CompletedStages
	for _, st := range l.Stages {
		if !done[progress.StageKey(l.ID, st.ID)] {
			s.missing = append(s.missing, st)
		}
	}
	return s
}

func (s *SummaryScreen) Init() tea.Cmd { return nil }

func (s *SummaryScreen) Title() string {
	return "Lesson Summary"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return keys.Hints(continueKey, keys.Close)
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		if key.Matches(kmsg, continueKey, keys.Close) {
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString("\n\n")

	if s.completed {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Success).Bold(true).
			Render(fmt.Sprintf("✅  %s complete!", s.lesson.Title)))
		b.WriteString("\n\n")
		b.WriteString(theme.Dim.Render(fmt.Sprintf("%d stages finished", s.lesson.StageCount())))
		b.WriteString("\n\n")

		if len(s.unlocked) > 0 {
			b.WriteString(theme.Section.Render("Now available"))
			b.WriteString("\n")
			for _, l := range s.unlocked {
				b.WriteString(theme.Body.Render("🔓 " + l.Title))
				b.WriteString("\n")
			}
		}
	} else {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).
			Render(fmt.Sprintf("%s reached its end", s.lesson.Title)))
		b.WriteString("\n\n")
		b.WriteString(theme.Dim.Render("Finish these stages to complete the lesson:"))
		b.WriteString("\n")
		for _, st := range s.missing {
			b.WriteString(theme.Body.Render(fmt.Sprintf("○ %s %s", st.Type.Icon(), st.Title)))
			b.WriteString("\n")
		}
	}

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center).
		Render(b.String())
}
