package progress

import (
	"maps"
	"slices"
)

// StageKey qualifies a stage id with its lesson id. Stage ids are unique only
// within a lesson, so completion is tracked by key.
func StageKey(lessonID, stageID string) string {
	return lessonID + "/" + stageID
}

// Position is an active lesson and stage.
type Position struct {
	LessonID   string
	StageIndex int
	StageID    string
}

// Advance is the result of a successful AdvanceStage.
type Advance struct {
	LessonID       string
	CompletedStage string
	// LessonCompleted is set when the completed stage was the last one; the
	// engine is then idle and Next is the zero Position.
	LessonCompleted bool
	// Unlocked lists the dependents that this completion unlocked. Lessons
	// that were already unlocked, for example when a completed lesson is
	// replayed, are not included.
	Unlocked []string
	Next     Position
}

// State is a copy of a learner's progress. Mutating it does not affect the engine.
type State struct {
	CompletedStages  map[string]bool // keyed by StageKey
	CompletedLessons map[string]bool
	ActiveLesson     string // empty when idle
	StageIndex       int
}

// Idle reports whether no lesson is active.
func (s State) Idle() bool {
	return s.ActiveLesson == ""
}

func (s State) clone() State {
	return State{
		CompletedStages:  maps.Clone(s.CompletedStages),
		CompletedLessons: maps.Clone(s.CompletedLessons),
		ActiveLesson:     s.ActiveLesson,
		StageIndex:       s.StageIndex,
	}
}

// Snapshot is the persisted form of a learner's progress.
type Snapshot struct {
	CatalogVersion   string   `json:"catalog_version"`
	CompletedStages  []string `json:"completed_stages"`
	CompletedLessons []string `json:"completed_lessons"`
	ActiveLesson     string   `json:"active_lesson,omitempty"`
	StageIndex       int      `json:"stage_index"`
}

func sortedKeys(m map[string]bool) []string {
	keys := make([]string, 0, len(m))
	for k, v := range m {
		if v {
			keys = append(keys, k)
		}
	}
	slices.Sort(keys)
	return keys
}
