package progress

import (
	"fmt"
	"log/slog"

	"github.com/abhisek/designlab/internal/catalog"
	"github.com/abhisek/designlab/internal/logging"
)

// Engine tracks one learner's position in a lesson catalog.
//
// The engine has two states: Idle (no active lesson) and InLesson(lesson,
// stage). It is synchronous and single-owner: every call completes before the
// next and it takes no locks. Each learner session owns its own Engine.
type Engine struct {
	cat *catalog.Catalog

	completedStages  map[string]bool
	completedLessons map[string]bool
	active           string
	index            int

	observers []subscription
	nextSubID int
	logger    *slog.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger used for transition debug output.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// NewEngine creates an idle engine with no progress over cat.
func NewEngine(cat *catalog.Catalog, opts ...Option) *Engine {
	e := &Engine{
		cat:              cat,
		completedStages:  make(map[string]bool),
		completedLessons: make(map[string]bool),
		logger:           logging.Discard(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Catalog returns the catalog the engine walks.
func (e *Engine) Catalog() *catalog.Catalog {
	return e.cat
}

// SelectLesson makes id the active lesson at stage 0. It fails with
// ErrUnknownLesson or ErrPrerequisiteNotMet and leaves state unchanged.
// Selecting an already completed lesson restarts it without clearing its
// completion.
func (e *Engine) SelectLesson(id string) (Position, error) {
	lesson, err := e.cat.Lesson(id)
	if err != nil {
		return Position{}, &TransitionError{Op: OpSelect, LessonID: id, Err: ErrUnknownLesson}
	}
	if missing := e.cat.MissingPrerequisites(id, e.completedLessons); len(missing) > 0 {
		return Position{}, &TransitionError{Op: OpSelect, LessonID: id, Missing: missing, Err: ErrPrerequisiteNotMet}
	}

	e.active = id
	e.index = 0

	pos := Position{LessonID: id, StageIndex: 0, StageID: lesson.Stages[0].ID}
	e.logger.Debug("lesson selected", "lesson", id, "stages", lesson.StageCount())
	e.notify(Transition{Op: OpSelect, LessonID: id, StageID: pos.StageID, StageIndex: 0})
	return pos, nil
}

// AdvanceStage completes the current stage. On the last stage it also
// completes the lesson and returns the engine to Idle.
func (e *Engine) AdvanceStage() (Advance, error) {
	if e.active == "" {
		return Advance{}, &TransitionError{Op: OpAdvance, Err: ErrNoActiveLesson}
	}
	lesson := e.activeLesson()

	stageID := lesson.Stages[e.index].ID
	e.completedStages[StageKey(lesson.ID, stageID)] = true

	result := Advance{LessonID: lesson.ID, CompletedStage: stageID}
	t := Transition{Op: OpAdvance, LessonID: lesson.ID, StageID: stageID, StageIndex: e.index}

	if e.index == lesson.StageCount()-1 {
		// Every earlier stage was completed on the way here unless the
		// learner restored into the middle of the lesson.
		if e.allStagesCompleted(lesson) {
			var locked []string
			for _, d := range e.cat.Dependents(lesson.ID) {
				if !e.IsLessonUnlocked(d.ID) {
					locked = append(locked, d.ID)
				}
			}
			e.completedLessons[lesson.ID] = true
			for _, id := range locked {
				if e.IsLessonUnlocked(id) {
					result.Unlocked = append(result.Unlocked, id)
				}
			}
			result.LessonCompleted = true
			t.LessonCompleted = true
		}
		e.active = ""
		e.index = 0
		e.logger.Debug("lesson finished", "lesson", lesson.ID, "completed", result.LessonCompleted)
	} else {
		e.index++
		result.Next = Position{LessonID: lesson.ID, StageIndex: e.index, StageID: lesson.Stages[e.index].ID}
		e.logger.Debug("stage completed", "lesson", lesson.ID, "stage", stageID, "next", e.index)
	}

	e.notify(t)
	return result, nil
}

// RetreatStage moves back one stage. Completion is never undone.
func (e *Engine) RetreatStage() (Position, error) {
	if e.active == "" {
		return Position{}, &TransitionError{Op: OpRetreat, Err: ErrNoActiveLesson}
	}
	if e.index == 0 {
		return Position{}, &TransitionError{Op: OpRetreat, LessonID: e.active, Err: ErrAtFirstStage}
	}
	lesson := e.activeLesson()

	e.index--
	pos := Position{LessonID: lesson.ID, StageIndex: e.index, StageID: lesson.Stages[e.index].ID}
	e.logger.Debug("stage retreated", "lesson", lesson.ID, "stage", pos.StageID)
	e.notify(Transition{Op: OpRetreat, LessonID: lesson.ID, StageID: pos.StageID, StageIndex: e.index})
	return pos, nil
}

// IsLessonUnlocked reports whether every prerequisite of id is completed.
func (e *Engine) IsLessonUnlocked(id string) bool {
	return e.cat.IsUnlocked(id, e.completedLessons)
}

// ProgressFor returns the fraction of the lesson's stages completed, in [0, 1].
// Unknown lessons report 0.
func (e *Engine) ProgressFor(id string) float64 {
	lesson, err := e.cat.Lesson(id)
	if err != nil || lesson.StageCount() == 0 {
		return 0
	}
	done := 0
	for _, s := range lesson.Stages {
		if e.completedStages[StageKey(id, s.ID)] {
			done++
		}
	}
	return float64(done) / float64(lesson.StageCount())
}

// IsLessonCompleted reports whether id is in the completed-lesson set.
func (e *Engine) IsLessonCompleted(id string) bool {
	return e.completedLessons[id]
}

// LessonState classifies a lesson for list views.
func (e *Engine) LessonState(id string) catalog.LessonState {
	switch {
	case e.completedLessons[id]:
		return catalog.StateCompleted
	case !e.IsLessonUnlocked(id):
		return catalog.StateLocked
	case e.active == id || e.ProgressFor(id) > 0:
		return catalog.StateInProgress
	default:
		return catalog.StateAvailable
	}
}

// Current returns the active position, or false when idle.
func (e *Engine) Current() (Position, bool) {
	if e.active == "" {
		return Position{}, false
	}
	lesson := e.activeLesson()
	return Position{LessonID: e.active, StageIndex: e.index, StageID: lesson.Stages[e.index].ID}, true
}

// CurrentStage returns the active stage content, or false when idle.
func (e *Engine) CurrentStage() (catalog.Stage, bool) {
	if e.active == "" {
		return catalog.Stage{}, false
	}
	return e.activeLesson().Stages[e.index], true
}

// State returns a copy of the current progress.
func (e *Engine) State() State {
	return State{
		CompletedStages:  e.completedStages,
		CompletedLessons: e.completedLessons,
		ActiveLesson:     e.active,
		StageIndex:       e.index,
	}.clone()
}

// Snapshot returns the persisted form of the current progress.
func (e *Engine) Snapshot() Snapshot {
	return Snapshot{
		CatalogVersion:   e.cat.Version(),
		CompletedStages:  sortedKeys(e.completedStages),
		CompletedLessons: sortedKeys(e.completedLessons),
		ActiveLesson:     e.active,
		StageIndex:       e.index,
	}
}

// Restore replaces the engine's progress with snap.
//
// Entries that no longer exist in the catalog are dropped, as are lesson
// completions whose stages are not all completed. An active position that is
// out of range or whose lesson is locked is discarded and the engine restores
// to Idle. A snapshot from an incompatible catalog major version is rejected
// and state is left unchanged.
func (e *Engine) Restore(snap Snapshot) error {
	if snap.CatalogVersion != "" && !catalog.Compatible(snap.CatalogVersion, e.cat.Version()) {
		return &TransitionError{
			Op:  OpRestore,
			Err: fmt.Errorf("%w: catalog %s, snapshot %s", ErrIncompatibleSnapshot, e.cat.Version(), snap.CatalogVersion),
		}
	}

	validStages := make(map[string]bool)
	for _, l := range e.cat.All() {
		for _, s := range l.Stages {
			validStages[StageKey(l.ID, s.ID)] = true
		}
	}

	stages := make(map[string]bool, len(snap.CompletedStages))
	dropped := 0
	for _, key := range snap.CompletedStages {
		if validStages[key] {
			stages[key] = true
		} else {
			dropped++
		}
	}

	lessons := make(map[string]bool, len(snap.CompletedLessons))
	for _, id := range snap.CompletedLessons {
		l, err := e.cat.Lesson(id)
		if err != nil {
			dropped++
			continue
		}
		complete := true
		for _, s := range l.Stages {
			if !stages[StageKey(id, s.ID)] {
				complete = false
				break
			}
		}
		if complete {
			lessons[id] = true
		} else {
			dropped++
		}
	}

	active, index := "", 0
	if snap.ActiveLesson != "" {
		l, err := e.cat.Lesson(snap.ActiveLesson)
		switch {
		case err != nil:
			e.logger.Warn("restore: dropping unknown active lesson", "lesson", snap.ActiveLesson)
		case snap.StageIndex < 0 || snap.StageIndex >= l.StageCount():
			e.logger.Warn("restore: dropping out-of-range stage index",
				"lesson", snap.ActiveLesson, "index", snap.StageIndex, "stages", l.StageCount())
		case len(e.cat.MissingPrerequisites(l.ID, lessons)) > 0:
			e.logger.Warn("restore: dropping locked active lesson", "lesson", snap.ActiveLesson)
		default:
			active, index = l.ID, snap.StageIndex
		}
	}

	if dropped > 0 {
		e.logger.Warn("restore: dropped entries not matching catalog", "count", dropped)
	}

	e.completedStages = stages
	e.completedLessons = lessons
	e.active = active
	e.index = index

	t := Transition{Op: OpRestore, LessonID: active, StageIndex: index}
	if active != "" {
		t.StageID = e.activeLesson().Stages[index].ID
	}
	e.notify(t)
	return nil
}

func (e *Engine) activeLesson() catalog.Lesson {
	// active is only ever set to ids present in the catalog.
	l, _ := e.cat.Lesson(e.active)
	return l
}

func (e *Engine) allStagesCompleted(l catalog.Lesson) bool {
	for _, s := range l.Stages {
		if !e.completedStages[StageKey(l.ID, s.ID)] {
			return false
		}
	}
	return true
}
