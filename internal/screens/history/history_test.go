package history

import (
	"context"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/designlab/internal/catalog"
	"github.com/abhisek/designlab/internal/learner"
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

// load runs Init and feeds the result back, as the router would.
func load(t *testing.T, s *HistoryScreen) {
	t.Helper()
	cmd := s.Init()
	if cmd == nil {
		t.Fatal("Init returned nil cmd")
	}
	s.Update(cmd())
}

func TestViewBeforeLoad(t *testing.T) {
	s := New(newTestSession(t))
	if !strings.Contains(s.View(100, 30), "Loading history") {
		t.Error("expected loading message")
	}
}

func TestEmptyHistory(t *testing.T) {
	s := New(newTestSession(t))
	load(t, s)
	if !strings.Contains(s.View(100, 30), "No activity yet") {
		t.Error("expected empty message")
	}
}

func TestShowsJournal(t *testing.T) {
	sess := newTestSession(t)
	if _, err := sess.Engine.SelectLesson("intro"); err != nil {
		t.Fatalf("select: %v", err)
	}
	if _, err := sess.Engine.AdvanceStage(); err != nil {
		t.Fatalf("advance: %v", err)
	}

	s := New(sess)
	load(t, s)
	if len(s.events) != 2 {
		t.Fatalf("events = %d, want 2", len(s.events))
	}
	if len(s.activity) != 1 || s.activity[0].LessonID != "intro" {
		t.Fatalf("activity = %+v", s.activity)
	}

	lesson, _ := sess.Engine.Catalog().Lesson("intro")
	view := s.View(120, 30)
	for _, want := range []string{lesson.Title, store.EventLessonSelected, store.EventStageCompleted, "theory"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestScrollStaysInRange(t *testing.T) {
	sess := newTestSession(t)
	if _, err := sess.Engine.SelectLesson("intro"); err != nil {
		t.Fatalf("select: %v", err)
	}
	s := New(sess)
	load(t, s)

	up := tea.KeyPressMsg{Code: tea.KeyUp}
	down := tea.KeyPressMsg{Code: tea.KeyDown}

	s.Update(up)
	if s.offset != 0 {
		t.Errorf("offset after up at top = %d, want 0", s.offset)
	}
	s.Update(down)
	if s.offset != 0 {
		t.Errorf("offset after down with one event = %d, want 0", s.offset)
	}
}
