package store

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

// Column names shared by the tables below.
const (
	colID         = "id"
	colSequence   = "sequence"
	colTimestamp  = "timestamp"
	colLearnerID  = "learner_id"
	colSessionID  = "session_id"
	colKind       = "kind"
	colLessonID   = "lesson_id"
	colStageID    = "stage_id"
	colStageIndex = "stage_index"
	colData       = "data"
)

var (
	progressEventsColumns = []*schema.Column{
		{Name: colID, Type: field.TypeInt, Increment: true},
		{Name: colSequence, Type: field.TypeInt64, Unique: true},
		{Name: colTimestamp, Type: field.TypeTime},
		{Name: colLearnerID, Type: field.TypeString},
		{Name: colSessionID, Type: field.TypeString},
		{Name: colKind, Type: field.TypeString},
		{Name: colLessonID, Type: field.TypeString},
		{Name: colStageID, Type: field.TypeString, Nullable: true},
		{Name: colStageIndex, Type: field.TypeInt, Default: 0},
	}
	// progressEventsTable is the append-only log of engine transitions.
	progressEventsTable = &schema.Table{
		Name:       "progress_events",
		Columns:    progressEventsColumns,
		PrimaryKey: []*schema.Column{progressEventsColumns[0]},
		Indexes: []*schema.Index{
			{Name: "progressevent_sequence", Columns: []*schema.Column{progressEventsColumns[1]}},
			{Name: "progressevent_timestamp", Columns: []*schema.Column{progressEventsColumns[2]}},
			{Name: "progressevent_learner_id", Columns: []*schema.Column{progressEventsColumns[3]}},
			{Name: "progressevent_learner_id_lesson_id", Columns: []*schema.Column{progressEventsColumns[3], progressEventsColumns[6]}},
		},
	}

	snapshotsColumns = []*schema.Column{
		{Name: colID, Type: field.TypeInt, Increment: true},
		{Name: colLearnerID, Type: field.TypeString},
		{Name: colSequence, Type: field.TypeInt64},
		{Name: colTimestamp, Type: field.TypeTime},
		{Name: colData, Type: field.TypeJSON},
	}
	// snapshotsTable holds full learner progress captures for fast restore.
	snapshotsTable = &schema.Table{
		Name:       "snapshots",
		Columns:    snapshotsColumns,
		PrimaryKey: []*schema.Column{snapshotsColumns[0]},
		Indexes: []*schema.Index{
			{Name: "snapshot_learner_id", Columns: []*schema.Column{snapshotsColumns[1]}},
			{Name: "snapshot_timestamp", Columns: []*schema.Column{snapshotsColumns[3]}},
		},
	}

	tables = []*schema.Table{
		progressEventsTable,
		snapshotsTable,
	}
)

// migrate creates or updates the tables above.
func migrate(ctx context.Context, drv dialect.Driver) error {
	m, err := schema.NewMigrate(drv)
	if err != nil {
		return fmt.Errorf("new migrate: %w", err)
	}
	if err := m.Create(ctx, tables...); err != nil {
		return fmt.Errorf("create tables: %w", err)
	}
	return nil
}

// builder returns a SQL builder for the SQLite dialect.
func builder() *entsql.DialectBuilder {
	return entsql.Dialect(dialect.SQLite)
}
