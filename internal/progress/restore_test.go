package progress

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshotRoundTrip(t *testing.T) {
	cat := testCatalog(t)
	e := NewEngine(cat)
	_, err := e.SelectLesson("A")
	require.NoError(t, err)
	advanceN(t, e, 3)
	_, err = e.SelectLesson("B")
	require.NoError(t, err)
	advanceN(t, e, 1)

	snap := e.Snapshot()
	assert.Equal(t, "v1.0.0", snap.CatalogVersion)
	assert.Equal(t, []string{"A/a1", "A/a2", "A/a3", "B/b1"}, snap.CompletedStages)
	assert.Equal(t, []string{"A"}, snap.CompletedLessons)
	assert.Equal(t, "B", snap.ActiveLesson)
	assert.Equal(t, 1, snap.StageIndex)

	restored := NewEngine(cat)
	require.NoError(t, restored.Restore(snap))
	assert.Equal(t, e.State(), restored.State())
}

func TestRestore_DropsUnknownEntries(t *testing.T) {
	e := NewEngine(testCatalog(t))
	err := e.Restore(Snapshot{
		CompletedStages:  []string{"A/a1", "A/gone", "Z/z1"},
		CompletedLessons: []string{"Z"},
	})
	require.NoError(t, err)

	s := e.State()
	assert.Equal(t, map[string]bool{"A/a1": true}, s.CompletedStages)
	assert.Empty(t, s.CompletedLessons)
}

func TestRestore_DropsLessonWithIncompleteStages(t *testing.T) {
	e := NewEngine(testCatalog(t))
	require.NoError(t, e.Restore(Snapshot{
		CompletedStages:  []string{"A/a1", "A/a2"},
		CompletedLessons: []string{"A"},
	}))
	assert.False(t, e.IsLessonCompleted("A"))
	assert.False(t, e.IsLessonUnlocked("B"))
}

func TestRestore_InvalidActivePosition(t *testing.T) {
	tests := []struct {
		name string
		snap Snapshot
	}{
		{"unknown lesson", Snapshot{ActiveLesson: "Z"}},
		{"index too large", Snapshot{ActiveLesson: "A", StageIndex: 3}},
		{"negative index", Snapshot{ActiveLesson: "A", StageIndex: -1}},
		{"locked lesson", Snapshot{ActiveLesson: "B", StageIndex: 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := NewEngine(testCatalog(t))
			require.NoError(t, e.Restore(tt.snap))
			assert.True(t, e.State().Idle())
		})
	}
}

func TestRestore_MidLessonDoesNotCompleteWithGaps(t *testing.T) {
	e := NewEngine(testCatalog(t))
	require.NoError(t, e.Restore(Snapshot{ActiveLesson: "A", StageIndex: 2}))

	adv, err := e.AdvanceStage()
	require.NoError(t, err)
	assert.False(t, adv.LessonCompleted, "a1 and a2 were never completed")
	assert.False(t, e.IsLessonCompleted("A"))
	assert.True(t, e.State().Idle())
	assert.InDelta(t, 1.0/3.0, e.ProgressFor("A"), 1e-9)
}

func TestRestore_IncompatibleVersion(t *testing.T) {
	e := NewEngine(testCatalog(t))
	_, err := e.SelectLesson("A")
	require.NoError(t, err)
	before := e.State()

	err = e.Restore(Snapshot{CatalogVersion: "v2.0.0", CompletedLessons: []string{"A"}})
	require.ErrorIs(t, err, ErrIncompatibleSnapshot)
	assert.Equal(t, before, e.State())
}
