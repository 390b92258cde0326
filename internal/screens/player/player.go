package player

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
	"github.com/abhisek/designlab/internal/screens/summary"
	"github.com/abhisek/designlab/internal/ui/components"
	"github.com/abhisek/designlab/internal/ui/keys"
	"github.com/abhisek/designlab/internal/ui/layout"
	"github.com/abhisek/designlab/internal/ui/theme"
)

// PlayerScreen steps through the stages of the session's active lesson.
type PlayerScreen struct {
	sess   *learner.Session
	errMsg string
}

var _ screen.Screen = (*PlayerScreen)(nil)
var _ screen.KeyHintProvider = (*PlayerScreen)(nil)

// New creates a PlayerScreen. The session's engine should already have an
// active lesson; otherwise the screen shows guidance.
func New(sess *learner.Session) *PlayerScreen {
	return &PlayerScreen{sess: sess}
}

func (p *PlayerScreen) Init() tea.Cmd { return nil }

func (p *PlayerScreen) Title() string {
	if pos, ok := p.sess.Engine.Current(); ok {
		if l, err := p.sess.Engine.Catalog().Lesson(pos.LessonID); err == nil {
			return l.Title
		}
	}
	return "Lesson"
}

func (p *PlayerScreen) KeyHints() []layout.KeyHint {
	back := keys.Back
	pos, ok := p.sess.Engine.Current()
	back.SetEnabled(ok && pos.StageIndex > 0)
	return keys.Hints(keys.Next, back, keys.Close)
}

func (p *PlayerScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return p, nil
	}

	switch {
	case key.Matches(kmsg, keys.Back):
		_, err := p.sess.Engine.RetreatStage()
		p.errMsg = progress.Guidance(err)

	case key.Matches(kmsg, keys.Next):
		adv, err := p.sess.Engine.AdvanceStage()
		if err != nil {
			p.errMsg = progress.Guidance(err)
			return p, nil
		}
		p.errMsg = ""
		if adv.Next.LessonID == "" {
			done := summary.New(p.sess, adv)
			return p, func() tea.Msg { return router.ReplaceScreenMsg{Screen: done} }
		}
	}
	return p, nil
}

func (p *PlayerScreen) View(width, height int) string {
	e := p.sess.Engine
	pos, ok := e.Current()
	if !ok {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).
			Render("\n\n" + theme.Hint.Render(progress.Guidance(progress.ErrNoActiveLesson)))
	}
	lesson, err := e.Catalog().Lesson(pos.LessonID)
	if err != nil {
		return theme.ErrorText.Render(err.Error())
	}
	stage := lesson.Stages[pos.StageIndex]
	contentWidth := min(width-6, 90)

	completed := make(map[string]bool)
	for _, s := range lesson.Stages {
		if e.State().CompletedStages[progress.StageKey(lesson.ID, s.ID)] {
			completed[s.ID] = true
		}
	}
	track := components.StageTrack{Stages: lesson.Stages, Current: pos.StageIndex, Completed: completed}

	var b strings.Builder
	b.WriteString("\n  ")
	b.WriteString(track.View())
	b.WriteString(theme.Dim.Render(fmt.Sprintf("   stage %d of %d", pos.StageIndex+1, lesson.StageCount())))
	b.WriteString("\n\n")
	b.WriteString(renderStage(stage, contentWidth))

	if p.errMsg != "" {
		b.WriteString("\n\n")
		b.WriteString(theme.ErrorText.Render("  " + p.errMsg))
	}

	return lipgloss.Place(width, height, lipgloss.Left, lipgloss.Top, b.String())
}

func renderStage(s catalog.Stage, width int) string {
	kind := lipgloss.NewStyle().
		Foreground(theme.StageColor(s.Type)).
		Bold(true).
		Render(fmt.Sprintf("%s  %s", s.Type.Icon(), strings.ToUpper(string(s.Type))))

	title := theme.Title.Render(s.Title)

	body := s.Body
	if body == "" {
		body = theme.Hint.Render("No content for this stage.")
	}

	card := theme.Card.
		Width(width).
		BorderForeground(theme.StageColor(s.Type)).
		Render(kind + "\n\n" + title + "\n\n" + theme.Body.Render(body))

	return lipgloss.NewStyle().PaddingLeft(2).Render(card)
}
