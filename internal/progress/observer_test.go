package progress

import (
	"testing"
)

type recorder struct {
	got []Transition
}

func (r *recorder) OnTransition(t Transition) { r.got = append(r.got, t) }

func TestSubscribe_ReceivesTransitions(t *testing.T) {
	e := NewEngine(testCatalog(t))
	rec := &recorder{}
	e.Subscribe(rec)

	if _, err := e.SelectLesson("C"); err != nil {
		t.Fatalf("select: %v", err)
	}
	if _, err := e.AdvanceStage(); err != nil {
		t.Fatalf("advance: %v", err)
	}

	if len(rec.got) != 2 {
		t.Fatalf("got %d transitions, want 2", len(rec.got))
	}
	if rec.got[0].Op != OpSelect || rec.got[0].StageID != "c1" {
		t.Errorf("first transition = %+v, want select c1", rec.got[0])
	}
	adv := rec.got[1]
	if adv.Op != OpAdvance || !adv.LessonCompleted {
		t.Errorf("second transition = %+v, want completed advance", adv)
	}
	if !adv.State.Idle() || !adv.State.CompletedLessons["C"] {
		t.Errorf("transition state = %+v, want idle with C completed", adv.State)
	}
}

func TestSubscribe_NoTransitionOnFailure(t *testing.T) {
	e := NewEngine(testCatalog(t))
	rec := &recorder{}
	e.Subscribe(rec)

	_, _ = e.SelectLesson("B")
	_, _ = e.AdvanceStage()
	_, _ = e.RetreatStage()

	if len(rec.got) != 0 {
		t.Errorf("got %d transitions for failed operations, want 0", len(rec.got))
	}
}

func TestUnsubscribe(t *testing.T) {
	e := NewEngine(testCatalog(t))
	first := &recorder{}
	second := &recorder{}
	unsubscribe := e.Subscribe(first)
	e.Subscribe(second)

	if _, err := e.SelectLesson("A"); err != nil {
		t.Fatalf("select: %v", err)
	}
	unsubscribe()
	if _, err := e.AdvanceStage(); err != nil {
		t.Fatalf("advance: %v", err)
	}

	if len(first.got) != 1 {
		t.Errorf("unsubscribed observer got %d transitions, want 1", len(first.got))
	}
	if len(second.got) != 2 {
		t.Errorf("second observer got %d transitions, want 2", len(second.got))
	}
}

func TestObserverFunc(t *testing.T) {
	e := NewEngine(testCatalog(t))
	calls := 0
	e.Subscribe(ObserverFunc(func(Transition) { calls++ }))

	if _, err := e.SelectLesson("A"); err != nil {
		t.Fatalf("select: %v", err)
	}
	if _, err := e.AdvanceStage(); err != nil {
		t.Fatalf("advance: %v", err)
	}
	if _, err := e.RetreatStage(); err != nil {
		t.Fatalf("retreat: %v", err)
	}
	if calls != 3 {
		t.Errorf("calls = %d, want 3", calls)
	}
}

func TestObserverCannotMutateEngine(t *testing.T) {
	e := NewEngine(testCatalog(t))
	e.Subscribe(ObserverFunc(func(tr Transition) {
		tr.State.CompletedLessons["A"] = true
	}))

	if _, err := e.SelectLesson("C"); err != nil {
		t.Fatalf("select: %v", err)
	}
	if e.IsLessonUnlocked("B") {
		t.Error("observer mutation leaked into engine state")
	}
}
