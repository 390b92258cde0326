package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// Progress event kinds.
const (
	EventLessonSelected  = "lesson-selected"
	EventStageCompleted  = "stage-completed"
	EventLessonCompleted = "lesson-completed"
	EventStageRetreated  = "stage-retreated"
)

// ProgressEventData captures a single engine transition.
type ProgressEventData struct {
	LearnerID  string
	SessionID  string
	Kind       string
	LessonID   string
	StageID    string // empty for lesson-level events
	StageIndex int
}

// ProgressEventRecord is a stored progress event.
type ProgressEventRecord struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	ProgressEventData
}

// LessonActivity aggregates a learner's events for one lesson.
type LessonActivity struct {
	LessonID        string
	Selections      int
	StagesCompleted int
	Retreats        int
	Completions     int
	LastSequence    int64
}

// EventRepo provides append and query access to progress events.
type EventRepo interface {
	// AppendProgressEvent records an engine transition.
	AppendProgressEvent(ctx context.Context, data ProgressEventData) error

	// QueryProgressEvents returns a learner's events, newest first.
	QueryProgressEvents(ctx context.Context, learnerID string, opts QueryOpts) ([]ProgressEventRecord, error)

	// LessonActivity returns per-lesson event counts for a learner,
	// most recently active lesson first.
	LessonActivity(ctx context.Context, learnerID string) ([]LessonActivity, error)

	// CurrentSequence returns the last sequence number assigned to any event.
	CurrentSequence(ctx context.Context) (int64, error)
}

// SnapshotData captures a learner's full progress at a point in time.
type SnapshotData struct {
	Version          int      `json:"version"`
	CatalogVersion   string   `json:"catalog_version"`
	CompletedStages  []string `json:"completed_stages"`
	CompletedLessons []string `json:"completed_lessons"`
	ActiveLesson     string   `json:"active_lesson,omitempty"`
	StageIndex       int      `json:"stage_index"`
}

// SnapshotVersion is the current SnapshotData layout version.
const SnapshotVersion = 1

// Snapshot represents a point-in-time capture of learner state.
type Snapshot struct {
	ID        int
	LearnerID string
	Sequence  int64
	Timestamp time.Time
	Data      SnapshotData
}

// SnapshotRepo manages learner state snapshots.
type SnapshotRepo interface {
	// Save stores a new snapshot.
	Save(ctx context.Context, snap *Snapshot) error

	// Latest returns the learner's most recent snapshot, or nil if none exist.
	Latest(ctx context.Context, learnerID string) (*Snapshot, error)

	// Prune deletes all but the learner's N most recent snapshots.
	Prune(ctx context.Context, learnerID string, keep int) error
}
