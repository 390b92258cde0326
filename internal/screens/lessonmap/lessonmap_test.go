package lessonmap

import (
	"context"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/designlab/internal/catalog"
	"github.com/abhisek/designlab/internal/learner"
	"github.com/abhisek/designlab/internal/router"
	"github.com/abhisek/designlab/internal/screens/player"
	"github.com/abhisek/designlab/internal/store"
)

func newTestSession(t *testing.T) *learner.Session {
	t.Helper()
	st, err := store.Open("file:" + t.Name() + "?mode=memory&cache=shared")
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { st.Close() })

	sess, err := learner.Open(context.Background(), catalog.Default(), st.EventRepo(), st.SnapshotRepo(), "tester", nil)
	if err != nil {
		t.Fatalf("open session: %v", err)
	}
	return sess
}

func pushedScreen(t *testing.T, cmd tea.Cmd) any {
	t.Helper()
	if cmd == nil {
		t.Fatal("expected a command")
	}
	msg, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatalf("expected PushScreenMsg, got %T", cmd())
	}
	return msg.Screen
}

func TestCursorStartsOnFirstLesson(t *testing.T) {
	s := New(newTestSession(t))
	l, ok := s.Selected()
	if !ok {
		t.Fatal("no lesson selected")
	}
	if l.ID != "intro" {
		t.Errorf("selected = %q, want intro", l.ID)
	}
}

func TestNavigationSkipsHeaders(t *testing.T) {
	s := New(newTestSession(t))
	for i := 0; i < 20; i++ {
		s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
		if _, ok := s.Selected(); !ok {
			t.Fatalf("cursor landed on a header after %d moves", i+1)
		}
	}
	s.Update(tea.KeyPressMsg{Code: tea.KeyTab, Mod: tea.ModShift})
	if _, ok := s.Selected(); !ok {
		t.Fatal("cursor landed on a header after shift+tab")
	}
}

func TestCategoryJump(t *testing.T) {
	s := New(newTestSession(t))
	first, _ := s.Selected()
	s.Update(tea.KeyPressMsg{Code: tea.KeyTab})
	next, _ := s.Selected()
	if next.Category == first.Category {
		t.Errorf("tab stayed in category %q", first.Category)
	}
}

func TestSelectOpensDetail(t *testing.T) {
	s := New(newTestSession(t))
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if _, ok := pushedScreen(t, cmd).(*LessonDetailScreen); !ok {
		t.Error("expected lesson detail screen")
	}
}

func TestResumeWithoutActiveLesson(t *testing.T) {
	s := New(newTestSession(t))
	_, cmd := s.Update(tea.KeyPressMsg{Code: 'r', Text: "r"})
	if cmd != nil {
		t.Error("resume without an active lesson should not navigate")
	}
	if !strings.Contains(s.View(100, 40), "Select a lesson to begin.") {
		t.Error("expected guidance in view")
	}
	if s.Init(); s.errMsg != "" {
		t.Error("Init should clear the error")
	}
}

func TestResumeActiveLesson(t *testing.T) {
	sess := newTestSession(t)
	if _, err := sess.Engine.SelectLesson("intro"); err != nil {
		t.Fatalf("select: %v", err)
	}
	s := New(sess)
	_, cmd := s.Update(tea.KeyPressMsg{Code: 'r', Text: "r"})
	if _, ok := pushedScreen(t, cmd).(*player.PlayerScreen); !ok {
		t.Error("expected player screen")
	}
}

func TestViewShowsLockState(t *testing.T) {
	s := New(newTestSession(t))
	view := s.View(120, 60)
	if !strings.Contains(view, "Available") || !strings.Contains(view, "Locked") {
		t.Error("expected both available and locked lessons in the map")
	}
}

func TestDetailStartLockedLesson(t *testing.T) {
	sess := newTestSession(t)
	l, err := sess.Engine.Catalog().Lesson("caching")
	if err != nil {
		t.Fatalf("lesson: %v", err)
	}
	d := newLessonDetail(sess, l)

	_, cmd := d.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd != nil {
		t.Error("starting a locked lesson should not navigate")
	}
	if !strings.HasPrefix(d.errMsg, "Complete prerequisite lessons first: ") {
		t.Errorf("errMsg = %q", d.errMsg)
	}
	for _, h := range d.KeyHints() {
		if h.Description == "Start" {
			t.Error("Start hint shown for a locked lesson")
		}
	}
}

func TestDetailStartUnlockedLesson(t *testing.T) {
	sess := newTestSession(t)
	l, _ := sess.Engine.Catalog().Lesson("intro")
	d := newLessonDetail(sess, l)

	_, cmd := d.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected navigation")
	}
	msg, ok := cmd().(router.ReplaceScreenMsg)
	if !ok {
		t.Fatalf("expected ReplaceScreenMsg, got %T", cmd())
	}
	if _, ok := msg.Screen.(*player.PlayerScreen); !ok {
		t.Error("expected player screen")
	}
	if pos, ok := sess.Engine.Current(); !ok || pos.LessonID != "intro" {
		t.Errorf("current = %+v, %v; want intro", pos, ok)
	}
	if !strings.Contains(d.View(100, 40), "Unlocks") {
		t.Error("detail should list dependents")
	}
}
