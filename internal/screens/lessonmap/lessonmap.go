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
	"github.com/abhisek/designlab/internal/screens/history"
	"github.com/abhisek/designlab/internal/screens/player"
	"github.com/abhisek/designlab/internal/ui/components"
	"github.com/abhisek/designlab/internal/ui/keys"
	"github.com/abhisek/designlab/internal/ui/layout"
	"github.com/abhisek/designlab/internal/ui/theme"
)

type rowKind int

const (
	rowCategoryHeader rowKind = iota
	rowLesson
)

type row struct {
	kind     rowKind
	category catalog.Category
	lesson   *catalog.Lesson
}

// LessonMapScreen lists the catalog grouped by category with each lesson's
// lock state and stage progress.
type LessonMapScreen struct {
	sess         *learner.Session
	rows         []row
	cursor       int
	scrollOffset int
	errMsg       string
}

var _ screen.Screen = (*LessonMapScreen)(nil)
var _ screen.KeyHintProvider = (*LessonMapScreen)(nil)

// New creates a LessonMapScreen for sess.
func New(sess *learner.Session) *LessonMapScreen {
	cat := sess.Engine.Catalog()

	var rows []row
	for _, c := range catalog.AllCategories() {
		lessons := cat.ByCategory(c)
		if len(lessons) == 0 {
			continue
		}
		rows = append(rows, row{kind: rowCategoryHeader, category: c})
		for i := range lessons {
			rows = append(rows, row{kind: rowLesson, category: c, lesson: &lessons[i]})
		}
	}

	s := &LessonMapScreen{sess: sess, rows: rows}
	for i, r := range s.rows {
		if r.kind == rowLesson {
			s.cursor = i
			break
		}
	}
	return s
}

// Init runs whenever the map becomes the active screen again.
func (s *LessonMapScreen) Init() tea.Cmd {
	s.errMsg = ""
	return nil
}

func (s *LessonMapScreen) Title() string {
	return "Lessons"
}

func (s *LessonMapScreen) KeyHints() []layout.KeyHint {
	resume := keys.Resume
	_, active := s.sess.Engine.Current()
	resume.SetEnabled(active)
	return keys.Hints(keys.Up, keys.Down, keys.NextCategory, keys.Select, resume, keys.History, keys.Quit)
}

func (s *LessonMapScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}
	s.errMsg = ""

	switch {
	case key.Matches(kmsg, keys.Up):
		s.moveCursor(-1)
	case key.Matches(kmsg, keys.Down):
		s.moveCursor(1)
	case key.Matches(kmsg, keys.NextCategory):
		s.jumpCategory(1)
	case key.Matches(kmsg, keys.PrevCategory):
		s.jumpCategory(-1)
	case key.Matches(kmsg, keys.Select):
		return s, s.openDetail()
	case key.Matches(kmsg, keys.Resume):
		if _, ok := s.sess.Engine.Current(); !ok {
			s.errMsg = progress.Guidance(progress.ErrNoActiveLesson)
			return s, nil
		}
		return s, push(player.New(s.sess))
	case key.Matches(kmsg, keys.History):
		return s, push(history.New(s.sess))
	}
	return s, nil
}

func (s *LessonMapScreen) View(width, height int) string {
	if len(s.rows) == 0 {
		return ""
	}

	listHeight := height
	if s.errMsg != "" {
		listHeight -= 2
	}
	s.adjustScroll(listHeight)

	var lines []string
	for i := s.scrollOffset; i < len(s.rows) && len(lines) < listHeight; i++ {
		r := s.rows[i]
		switch r.kind {
		case rowCategoryHeader:
			lines = append(lines, s.renderCategoryHeader(r.category, width))
		case rowLesson:
			lines = append(lines, s.renderLessonRow(r, i == s.cursor, width))
		}
	}

	out := strings.Join(lines, "\n")
	if s.errMsg != "" {
		out += "\n\n" + theme.ErrorText.Render("  "+s.errMsg)
	}
	return out
}

// Selected returns the lesson under the cursor.
func (s *LessonMapScreen) Selected() (catalog.Lesson, bool) {
	if s.cursor < 0 || s.cursor >= len(s.rows) || s.rows[s.cursor].lesson == nil {
		return catalog.Lesson{}, false
	}
	return *s.rows[s.cursor].lesson, true
}

func (s *LessonMapScreen) moveCursor(delta int) {
	for next := s.cursor + delta; next >= 0 && next < len(s.rows); next += delta {
		if s.rows[next].kind == rowLesson {
			s.cursor = next
			return
		}
	}
}

// jumpCategory moves to the first lesson of the next or previous category.
func (s *LessonMapScreen) jumpCategory(dir int) {
	current := s.rows[s.cursor].category
	target := -1
	for i := s.cursor + dir; i >= 0 && i < len(s.rows); i += dir {
		if s.rows[i].kind == rowLesson && s.rows[i].category != current {
			target = i
			break
		}
	}
	if target < 0 {
		return
	}
	// Walk back to the first lesson of the target category.
	c := s.rows[target].category
	for target > 0 && s.rows[target-1].kind == rowLesson && s.rows[target-1].category == c {
		target--
	}
	s.cursor = target
}

func (s *LessonMapScreen) adjustScroll(height int) {
	if height <= 0 {
		return
	}
	top := s.cursor
	for top > 0 && s.rows[top-1].kind == rowCategoryHeader {
		top--
	}
	if top < s.scrollOffset {
		s.scrollOffset = top
	}
	if s.cursor >= s.scrollOffset+height {
		s.scrollOffset = s.cursor - height + 1
	}
}

func (s *LessonMapScreen) openDetail() tea.Cmd {
	l, ok := s.Selected()
	if !ok {
		return nil
	}
	return push(newLessonDetail(s.sess, l))
}

func (s *LessonMapScreen) renderCategoryHeader(c catalog.Category, width int) string {
	return theme.Section.
		Width(width).
		Padding(1, 0, 0, 2).
		Render(strings.ToUpper(catalog.CategoryDisplayName(c)))
}

func (s *LessonMapScreen) renderLessonRow(r row, selected bool, width int) string {
	l := r.lesson
	e := s.sess.Engine
	state := e.LessonState(l.ID)

	const (
		indent     = 4
		iconWidth  = 3
		diffWidth  = 13
		barWidth   = 14
		labelWidth = 12
	)
	nameWidth := max(width-indent-iconWidth-diffWidth-barWidth-labelWidth-6, 10)

	name := l.Title
	if lipgloss.Width(name) > nameWidth {
		name = string([]rune(name)[:nameWidth-1]) + "…"
	}

	nameStyle := lipgloss.NewStyle().Foreground(theme.Text)
	if state == catalog.StateLocked {
		nameStyle = theme.Dim
	}
	cursor := "  "
	if selected {
		nameStyle = theme.Selected
		cursor = "▸ "
	}

	bar := components.NewProgressBar("", e.ProgressFor(l.ID), false, barWidth).View()
	label := lipgloss.NewStyle().Foreground(theme.StateColor(state)).Render(fmt.Sprintf("%*s", labelWidth, state.Label()))

	return fmt.Sprintf("  %s%s %s  %s  %s  %s",
		cursor,
		state.Icon(),
		nameStyle.Render(fmt.Sprintf("%-*s", nameWidth, name)),
		theme.Dim.Render(fmt.Sprintf("%-*s", diffWidth, l.Difficulty)),
		bar,
		label,
	)
}

func push(s screen.Screen) tea.Cmd {
	return func() tea.Msg { return router.PushScreenMsg{Screen: s} }
}
