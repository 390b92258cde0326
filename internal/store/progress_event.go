package store

import (
	"context"
	"database/sql"
	"fmt"
	"sort"
	"time"

	entsql "entgo.io/ent/dialect/sql"
)

// eventRepo implements EventRepo on top of the progress_events table.
type eventRepo struct {
	db  *sql.DB
	seq *sequenceCounter
}

func (r *eventRepo) AppendProgressEvent(ctx context.Context, data ProgressEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	var stageID any
	if data.StageID != "" {
		stageID = data.StageID
	}

	query, args := builder().Insert(progressEventsTable.Name).
		Columns(colSequence, colTimestamp, colLearnerID, colSessionID, colKind, colLessonID, colStageID, colStageIndex).
		Values(seqNum, time.Now().UTC(), data.LearnerID, data.SessionID, data.Kind, data.LessonID, stageID, data.StageIndex).
		Query()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("save progress event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryProgressEvents(ctx context.Context, learnerID string, opts QueryOpts) ([]ProgressEventRecord, error) {
	preds := []*entsql.Predicate{entsql.EQ(colLearnerID, learnerID)}
	if opts.After > 0 {
		preds = append(preds, entsql.GT(colSequence, opts.After))
	}
	if opts.Before > 0 {
		preds = append(preds, entsql.LT(colSequence, opts.Before))
	}
	if !opts.From.IsZero() {
		preds = append(preds, entsql.GTE(colTimestamp, opts.From.UTC()))
	}
	if !opts.To.IsZero() {
		preds = append(preds, entsql.LTE(colTimestamp, opts.To.UTC()))
	}

	sel := builder().
		Select(colID, colSequence, colTimestamp, colLearnerID, colSessionID, colKind, colLessonID, colStageID, colStageIndex).
		From(builder().Table(progressEventsTable.Name)).
		Where(entsql.And(preds...)).
		OrderBy(entsql.Desc(colSequence))
	if opts.Limit > 0 {
		sel = sel.Limit(opts.Limit)
	}

	query, args := sel.Query()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query progress events: %w", err)
	}
	defer rows.Close()

	var records []ProgressEventRecord
	for rows.Next() {
		var (
			rec     ProgressEventRecord
			stageID sql.NullString
		)
		if err := rows.Scan(&rec.ID, &rec.Sequence, &rec.Timestamp, &rec.LearnerID, &rec.SessionID,
			&rec.Kind, &rec.LessonID, &stageID, &rec.StageIndex); err != nil {
			return nil, fmt.Errorf("scan progress event: %w", err)
		}
		rec.StageID = stageID.String
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate progress events: %w", err)
	}
	return records, nil
}

func (r *eventRepo) LessonActivity(ctx context.Context, learnerID string) ([]LessonActivity, error) {
	query, args := builder().
		Select(colLessonID, colKind, entsql.Count("*"), entsql.Max(colSequence)).
		From(builder().Table(progressEventsTable.Name)).
		Where(entsql.EQ(colLearnerID, learnerID)).
		GroupBy(colLessonID, colKind).
		Query()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query lesson activity: %w", err)
	}
	defer rows.Close()

	byLesson := make(map[string]*LessonActivity)
	var order []string
	for rows.Next() {
		var (
			lessonID, kind string
			count          int
			lastSeq        int64
		)
		if err := rows.Scan(&lessonID, &kind, &count, &lastSeq); err != nil {
			return nil, fmt.Errorf("scan lesson activity: %w", err)
		}
		a, ok := byLesson[lessonID]
		if !ok {
			a = &LessonActivity{LessonID: lessonID}
			byLesson[lessonID] = a
			order = append(order, lessonID)
		}
		switch kind {
		case EventLessonSelected:
			a.Selections = count
		case EventStageCompleted:
			a.StagesCompleted = count
		case EventStageRetreated:
			a.Retreats = count
		case EventLessonCompleted:
			a.Completions = count
		}
		if lastSeq > a.LastSequence {
			a.LastSequence = lastSeq
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate lesson activity: %w", err)
	}

	result := make([]LessonActivity, 0, len(order))
	for _, id := range order {
		result = append(result, *byLesson[id])
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].LastSequence > result[j].LastSequence
	})
	return result, nil
}

func (r *eventRepo) CurrentSequence(ctx context.Context) (int64, error) {
	return r.seq.Current(ctx)
}
