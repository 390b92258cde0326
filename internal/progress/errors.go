package progress

import (
	"errors"
	"fmt"
	"strings"
)

// Failure conditions of engine operations. Every failed operation leaves the
// engine state unchanged and returns one of these wrapped in a *TransitionError.
var (
	// ErrPrerequisiteNotMet: the lesson has prerequisites not yet completed.
	ErrPrerequisiteNotMet = errors.New("prerequisite not met")

	// ErrAtFirstStage: retreat requested on the first stage.
	ErrAtFirstStage = errors.New("already at first stage")

	// ErrNoActiveLesson: advance or retreat requested while idle.
	ErrNoActiveLesson = errors.New("no active lesson")

	// ErrUnknownLesson: the lesson id is not in the catalog.
	ErrUnknownLesson = errors.New("unknown lesson")

	// ErrIncompatibleSnapshot: the snapshot was taken against a catalog
	// with a different major version.
	ErrIncompatibleSnapshot = errors.New("incompatible snapshot")
)

// Op names an engine operation.
type Op string

const (
	OpSelect  Op = "select"
	OpAdvance Op = "advance"
	OpRetreat Op = "retreat"
	OpRestore Op = "restore"
)

// TransitionError reports a rejected engine operation.
type TransitionError struct {
	Op       Op
	LessonID string
	// Missing lists uncompleted prerequisite ids for ErrPrerequisiteNotMet.
	Missing []string
	Err     error
}

func (e *TransitionError) Error() string {
	var b strings.Builder
	b.WriteString(string(e.Op))
	if e.LessonID != "" {
		fmt.Fprintf(&b, " %q", e.LessonID)
	}
	b.WriteString(": ")
	b.WriteString(e.Err.Error())
	if len(e.Missing) > 0 {
		fmt.Fprintf(&b, " (complete %s first)", strings.Join(e.Missing, ", "))
	}
	return b.String()
}

func (e *TransitionError) Unwrap() error { return e.Err }

// Guidance returns a short learner-facing message for a failed operation,
// or the error text for errors outside the engine taxonomy.
func Guidance(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrPrerequisiteNotMet):
		var te *TransitionError
		if errors.As(err, &te) && len(te.Missing) > 0 {
			return "Complete prerequisite lessons first: " + strings.Join(te.Missing, ", ")
		}
		return "Complete prerequisite lessons first."
	case errors.Is(err, ErrAtFirstStage):
		return "You are already on the first stage."
	case errors.Is(err, ErrNoActiveLesson):
		return "Select a lesson to begin."
	case errors.Is(err, ErrUnknownLesson):
		return "That lesson does not exist."
	default:
		return err.Error()
	}
}
