// Package learner binds a progress engine to persistent storage for a single
// learner: it restores the latest snapshot, journals every transition as a
// progress event and checkpoints new snapshots.
package learner

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/designlab/internal/catalog"
	"github.com/abhisek/designlab/internal/logging"
	"github.com/abhisek/designlab/internal/progress"
	"github.com/abhisek/designlab/internal/store"
)

// KeepSnapshots is how many snapshots per learner survive a checkpoint.
const KeepSnapshots = 5

// journalTimeout bounds each event write made from inside an observer.
const journalTimeout = 5 * time.Second

// ErrUnsupportedSnapshot is returned for stored snapshot data written in a
// layout this build does not understand.
var ErrUnsupportedSnapshot = errors.New("unsupported snapshot layout")

// Session is one learner's live progress.
type Session struct {
	ID        string
	LearnerID string
	Engine    *progress.Engine

	events      store.EventRepo
	snapshots   store.SnapshotRepo
	logger      *slog.Logger
	unsubscribe func()

	// dirty is set by any transition not yet covered by a checkpoint.
	dirty bool
}

// Open creates a Session for learnerID against cat. The latest stored
// snapshot, if any, is restored first; a snapshot from an incompatible
// catalog is skipped and the learner starts fresh.
func Open(ctx context.Context, cat *catalog.Catalog, events store.EventRepo, snapshots store.SnapshotRepo, learnerID string, logger *slog.Logger) (*Session, error) {
	if logger == nil {
		logger = logging.Discard()
	}
	logger = logger.With("learner", learnerID)

	s := &Session{
		ID:        uuid.New().String(),
		LearnerID: learnerID,
		Engine:    progress.NewEngine(cat, progress.WithLogger(logger)),
		events:    events,
		snapshots: snapshots,
		logger:    logger,
	}

	snap, err := snapshots.Latest(ctx, learnerID)
	if err != nil {
		return nil, fmt.Errorf("load snapshot: %w", err)
	}
	if snap != nil {
		if err := s.restore(snap); err != nil {
			if !errors.Is(err, progress.ErrIncompatibleSnapshot) && !errors.Is(err, ErrUnsupportedSnapshot) {
				return nil, fmt.Errorf("restore snapshot: %w", err)
			}
			logger.Warn("ignoring incompatible snapshot", "sequence", snap.Sequence, "error", err)
		} else {
			logger.Debug("restored snapshot", "sequence", snap.Sequence)
		}
	}

	// Subscribed after restore so the restore itself is not journaled.
	s.unsubscribe = s.Engine.Subscribe(progress.ObserverFunc(s.journal))
	return s, nil
}

// Checkpoint stores the engine's current progress as a new snapshot and
// prunes older ones.
func (s *Session) Checkpoint(ctx context.Context) error {
	seq, err := s.events.CurrentSequence(ctx)
	if err != nil {
		return fmt.Errorf("current sequence: %w", err)
	}
	err = s.snapshots.Save(ctx, &store.Snapshot{
		LearnerID: s.LearnerID,
		Sequence:  seq,
		Timestamp: time.Now().UTC(),
		Data:      ToSnapshotData(s.Engine.Snapshot()),
	})
	if err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	s.dirty = false
	if err := s.snapshots.Prune(ctx, s.LearnerID, KeepSnapshots); err != nil {
		return fmt.Errorf("prune snapshots: %w", err)
	}
	return nil
}

// Close detaches the journal from the engine and checkpoints any progress
// made since the last checkpoint.
func (s *Session) Close(ctx context.Context) error {
	if s.unsubscribe != nil {
		s.unsubscribe()
		s.unsubscribe = nil
	}
	if !s.dirty {
		return nil
	}
	return s.Checkpoint(ctx)
}

func (s *Session) restore(snap *store.Snapshot) error {
	data, err := FromSnapshotData(snap.Data)
	if err != nil {
		return err
	}
	return s.Engine.Restore(data)
}

// History returns the learner's most recent progress events, newest first.
func (s *Session) History(ctx context.Context, limit int) ([]store.ProgressEventRecord, error) {
	return s.events.QueryProgressEvents(ctx, s.LearnerID, store.QueryOpts{Limit: limit})
}

// Activity returns per-lesson event counts, most recently active first.
func (s *Session) Activity(ctx context.Context) ([]store.LessonActivity, error) {
	return s.events.LessonActivity(ctx, s.LearnerID)
}

func (s *Session) journal(t progress.Transition) {
	s.dirty = true

	var kinds []string
	switch t.Op {
	case progress.OpSelect:
		kinds = []string{store.EventLessonSelected}
	case progress.OpAdvance:
		kinds = []string{store.EventStageCompleted}
		if t.LessonCompleted {
			kinds = append(kinds, store.EventLessonCompleted)
		}
	case progress.OpRetreat:
		kinds = []string{store.EventStageRetreated}
	default:
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), journalTimeout)
	defer cancel()

	for _, kind := range kinds {
		data := store.ProgressEventData{
			LearnerID:  s.LearnerID,
			SessionID:  s.ID,
			Kind:       kind,
			LessonID:   t.LessonID,
			StageID:    t.StageID,
			StageIndex: t.StageIndex,
		}
		if kind == store.EventLessonCompleted {
			data.StageID = ""
		}
		// Progress is already applied in memory; a lost event only affects history.
		if err := s.events.AppendProgressEvent(ctx, data); err != nil {
			s.logger.Error("failed to journal progress event", "kind", kind, "lesson", t.LessonID, "error", err)
		}
	}

	if t.LessonCompleted {
		if err := s.Checkpoint(ctx); err != nil {
			s.logger.Error("failed to checkpoint after lesson completion", "lesson", t.LessonID, "error", err)
		}
	}
}

// ToSnapshotData converts engine progress to its stored form.
func ToSnapshotData(snap progress.Snapshot) store.SnapshotData {
	return store.SnapshotData{
		Version:          store.SnapshotVersion,
		CatalogVersion:   snap.CatalogVersion,
		CompletedStages:  snap.CompletedStages,
		CompletedLessons: snap.CompletedLessons,
		ActiveLesson:     snap.ActiveLesson,
		StageIndex:       snap.StageIndex,
	}
}

// FromSnapshotData converts stored progress back to engine form. Data in any
// layout other than store.SnapshotVersion fails with ErrUnsupportedSnapshot.
func FromSnapshotData(data store.SnapshotData) (progress.Snapshot, error) {
	if data.Version != store.SnapshotVersion {
		return progress.Snapshot{}, fmt.Errorf("%w: version %d, want %d", ErrUnsupportedSnapshot, data.Version, store.SnapshotVersion)
	}
	return progress.Snapshot{
		CatalogVersion:   data.CatalogVersion,
		CompletedStages:  data.CompletedStages,
		CompletedLessons: data.CompletedLessons,
		ActiveLesson:     data.ActiveLesson,
		StageIndex:       data.StageIndex,
	}, nil
}
