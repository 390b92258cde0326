package history

import (
	"context"
	"fmt"
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/designlab/internal/learner"
	"github.com/abhisek/designlab/internal/screen"
	"github.com/abhisek/designlab/internal/store"
	"github.com/abhisek/designlab/internal/ui/keys"
	"github.com/abhisek/designlab/internal/ui/layout"
	"github.com/abhisek/designlab/internal/ui/theme"
)

const eventLimit = 200

type historyLoadedMsg struct {
	Activity []store.LessonActivity
	Events   []store.ProgressEventRecord
	Err      error
}

// HistoryScreen shows per-lesson activity and the recent progress journal.
type HistoryScreen struct {
	sess     *learner.Session
	activity []store.LessonActivity
	events   []store.ProgressEventRecord
	offset   int
	loaded   bool
	errMsg   string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a HistoryScreen for sess.
func New(sess *learner.Session) *HistoryScreen {
	return &HistoryScreen{sess: sess}
}

func (s *HistoryScreen) Init() tea.Cmd {
	sess := s.sess
	return func() tea.Msg {
		ctx := context.Background()
		activity, err := sess.Activity(ctx)
		if err != nil {
			return historyLoadedMsg{Err: err}
		}
		events, err := sess.History(ctx, eventLimit)
		if err != nil {
			return historyLoadedMsg{Err: err}
		}
		return historyLoadedMsg{Activity: activity, Events: events}
	}
}

func (s *HistoryScreen) Title() string {
	return "History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return keys.Hints(keys.Up, keys.Down, keys.Close)
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.activity = msg.Activity
			s.events = msg.Events
		}
		s.loaded = true

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Up):
			if s.offset > 0 {
				s.offset--
			}
		case key.Matches(msg, keys.Down):
			if s.offset < len(s.events)-1 {
				s.offset++
			}
		}
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)
	switch {
	case s.errMsg != "":
		return center.Foreground(theme.Error).Render("\n\nError: " + s.errMsg)
	case !s.loaded:
		return center.Foreground(theme.TextDim).Render("\n\nLoading history...")
	case len(s.events) == 0:
		return center.Foreground(theme.TextDim).Italic(true).Render("\n\nNo activity yet. Pick a lesson to begin!")
	}

	titles := make(map[string]string)
	for _, l := range s.sess.Engine.Catalog().All() {
		titles[l.ID] = l.Title
	}
	title := func(id string) string {
		if t, ok := titles[id]; ok {
			return t
		}
		return id
	}

	var lines []string
	lines = append(lines, "", theme.Section.Render("  Lessons"))
	for _, a := range s.activity {
		lines = append(lines, theme.Body.Render(fmt.Sprintf("  %-32s  %2d starts  %3d stages  %2d back  %d done",
			title(a.LessonID), a.Selections, a.StagesCompleted, a.Retreats, a.Completions)))
	}
	lines = append(lines, "", theme.Section.Render("  Recent"))

	remaining := height - len(lines)
	for i := s.offset; i < len(s.events) && remaining > 0; i++ {
		lines = append(lines, renderEvent(s.events[i], title(s.events[i].LessonID)))
		remaining--
	}
	return strings.Join(lines, "\n")
}

func renderEvent(ev store.ProgressEventRecord, lessonTitle string) string {
	icon, color := "•", theme.Text
	switch ev.Kind {
	case store.EventLessonSelected:
		icon, color = "▶", theme.Primary
	case store.EventStageCompleted:
		icon, color = "●", theme.Secondary
	case store.EventStageRetreated:
		icon, color = "◀", theme.TextDim
	case store.EventLessonCompleted:
		icon, color = "✓", theme.Success
	}

	what := lessonTitle
	if ev.StageID != "" {
		what += " / " + ev.StageID
	}
	return theme.Dim.Render("  "+ev.Timestamp.Local().Format("Jan 02 15:04")+"  ") +
		lipgloss.NewStyle().Foreground(color).Render(fmt.Sprintf("%s %-16s %s", icon, ev.Kind, what))
}
