package app

import (
	"fmt"
	"os"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/designlab/internal/learner"
	"github.com/abhisek/designlab/internal/router"
	"github.com/abhisek/designlab/internal/screen"
	"github.com/abhisek/designlab/internal/screens/lessonmap"
	"github.com/abhisek/designlab/internal/screens/welcome"
	"github.com/abhisek/designlab/internal/ui/keys"
	"github.com/abhisek/designlab/internal/ui/layout"
)

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	sess   *learner.Session
	width  int
	height int
}

// newAppModel opens on the lesson map, preceded by the welcome splash for a
// learner with no progress yet.
func newAppModel(sess *learner.Session) AppModel {
	var first screen.Screen = lessonmap.New(sess)
	if len(sess.Engine.State().CompletedStages) == 0 {
		if _, active := sess.Engine.Current(); !active {
			first = welcome.New(func() screen.Screen { return lessonmap.New(sess) })
		}
	}
	return AppModel{
		router: router.New(first),
		sess:   sess,
	}
}

func (m AppModel) Init() tea.Cmd {
	return m.router.Active().Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, keys.Close):
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			if msg.String() == "q" {
				return m, tea.Quit
			}
			return m, nil
		}
	}

	return m, m.router.Update(msg)
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true
	if m.width == 0 || m.height == 0 {
		return v
	}
	v.SetContent(m.render())
	return v
}

// render draws the header, active screen and footer.
func (m AppModel) render() string {
	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	active := m.router.Active()
	title := ""
	var hints []layout.KeyHint
	if active != nil {
		title = active.Title()
		if hp, ok := active.(screen.KeyHintProvider); ok {
			hints = hp.KeyHints()
		}
	}
	if hints == nil {
		hints = keys.Hints(keys.Close, keys.Quit)
	}

	state := m.sess.Engine.State()
	header := layout.RenderHeader(title, len(state.CompletedLessons), m.sess.Engine.Catalog().Len(), m.width)
	footer := layout.RenderFooter(hints, m.width)

	contentHeight := max(m.height-lipgloss.Height(header)-lipgloss.Height(footer), 0)
	content := m.router.View(m.width, contentHeight)

	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

// Run starts the lesson player for sess and blocks until the user quits.
func Run(sess *learner.Session) error {
	p := tea.NewProgram(newAppModel(sess))
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
