package catalog

import (
	"strings"
	"testing"
)

func stages(ids ...string) []Stage {
	out := make([]Stage, len(ids))
	for i, id := range ids {
		out[i] = Stage{ID: id, Type: StageConcept}
	}
	return out
}

func TestValidate_SeedCatalogPasses(t *testing.T) {
	if err := validateLessons(seedLessons()); err != nil {
		t.Fatalf("seed catalog validation failed: %v", err)
	}
}

func TestValidateLessons(t *testing.T) {
	tests := []struct {
		name    string
		lessons []Lesson
		wantErr string
	}{
		{
			name:    "empty catalog",
			lessons: nil,
			wantErr: "no lessons",
		},
		{
			name: "cycle",
			lessons: []Lesson{
				{ID: "root", Stages: stages("s")},
				{ID: "a", Prerequisites: []string{"b"}, Stages: stages("s")},
				{ID: "b", Prerequisites: []string{"a"}, Stages: stages("s")},
			},
			wantErr: "cycle",
		},
		{
			name: "dangling prerequisite",
			lessons: []Lesson{
				{ID: "a", Stages: stages("s")},
				{ID: "b", Prerequisites: []string{"nonexistent"}, Stages: stages("s")},
			},
			wantErr: "nonexistent",
		},
		{
			name: "self prerequisite",
			lessons: []Lesson{
				{ID: "root", Stages: stages("s")},
				{ID: "a", Prerequisites: []string{"a"}, Stages: stages("s")},
			},
			wantErr: "itself",
		},
		{
			name: "duplicate lesson",
			lessons: []Lesson{
				{ID: "a", Stages: stages("s")},
				{ID: "a", Stages: stages("s")},
			},
			wantErr: "duplicate lesson ID",
		},
		{
			name: "duplicate stage",
			lessons: []Lesson{
				{ID: "a", Stages: stages("s", "s")},
			},
			wantErr: "duplicate stage ID",
		},
		{
			name: "no stages",
			lessons: []Lesson{
				{ID: "a"},
			},
			wantErr: "has no stages",
		},
		{
			name: "unknown stage type",
			lessons: []Lesson{
				{ID: "a", Stages: []Stage{{ID: "s", Type: "video"}}},
			},
			wantErr: "unknown stage type",
		},
		{
			name: "slash in stage id",
			lessons: []Lesson{
				{ID: "a", Stages: stages("x/y")},
			},
			wantErr: "must not contain",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateLessons(tt.lessons)
			if err == nil {
				t.Fatalf("expected error containing %q, got nil", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error should mention %q, got: %v", tt.wantErr, err)
			}
		})
	}
}

func TestValidateLessons_ReportsAllProblems(t *testing.T) {
	lessons := []Lesson{
		{ID: "a", Stages: stages("s", "s")},
		{ID: "b", Prerequisites: []string{"ghost"}},
	}
	err := validateLessons(lessons)
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	for _, want := range []string{"duplicate stage ID", "ghost", `"b" has no stages`} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error should mention %q, got: %v", want, err)
		}
	}
}

func TestStageType_Valid(t *testing.T) {
	for _, st := range []StageType{StageConcept, StageDemo, StageSimulate, StageBreak,
		StageDecision, StageQuiz, StagePractice, StageSummary} {
		if !st.Valid() {
			t.Errorf("%q should be valid", st)
		}
	}
	if StageType("canvas").Valid() {
		t.Error("unknown stage type reported valid")
	}
}
