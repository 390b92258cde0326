package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleCatalog = `
version: v1.2.0
lessons:
  - id: basics
    title: Basics
    category: fundamentals
    difficulty: beginner
    estimated_mins: 5
    stages:
      - id: theory
        type: concept
        title: Theory
        body: Some text.
      - id: recap
        type: summary
  - id: queues
    title: Queues
    category: messaging
    difficulty: intermediate
    prerequisites: [basics]
    stages:
      - id: theory
        type: concept
`

func TestParse_Valid(t *testing.T) {
	c, err := Parse([]byte(sampleCatalog))
	require.NoError(t, err)

	assert.Equal(t, "v1.2.0", c.Version())
	assert.Equal(t, 2, c.Len())

	l, err := c.Lesson("queues")
	require.NoError(t, err)
	assert.Equal(t, CategoryMessaging, l.Category)
	assert.Equal(t, []string{"basics"}, l.Prerequisites)
	assert.Equal(t, []string{"theory"}, l.StageIDs())

	b, err := c.Lesson("basics")
	require.NoError(t, err)
	assert.Equal(t, 5, b.EstimatedMins)
	assert.Equal(t, StageSummary, b.Stages[1].Type)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr string
	}{
		{"bad yaml", "version: [", "parse yaml"},
		{"missing lessons", "version: v1.0.0\n", "schema validation"},
		{"unknown field", "version: v1.0.0\nlessons:\n  - id: a\n    title: A\n    category: scaling\n    difficulty: beginner\n    colour: red\n    stages: [{id: s, type: concept}]\n", "schema validation"},
		{"bad stage type", "version: v1.0.0\nlessons:\n  - id: a\n    title: A\n    category: scaling\n    difficulty: beginner\n    stages: [{id: s, type: video}]\n", "schema validation"},
		{"unsupported major", "version: v2.0.0\nlessons:\n  - id: a\n    title: A\n    category: scaling\n    difficulty: beginner\n    stages: [{id: s, type: concept}]\n", "unsupported catalog version"},
		{"dangling prereq", "version: v1.0.0\nlessons:\n  - id: a\n    title: A\n    category: scaling\n    difficulty: beginner\n    stages: [{id: s, type: concept}]\n  - id: b\n    title: B\n    category: scaling\n    difficulty: beginner\n    prerequisites: [zzz]\n    stages: [{id: s, type: concept}]\n", "nonexistent prerequisite"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.input))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleCatalog), 0o644))

	c, err := Load(path)
	require.NoError(t, err)
	assert.True(t, c.Has("basics"))
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read catalog")
}

func TestCompatible(t *testing.T) {
	tests := []struct {
		a, b string
		want bool
	}{
		{"v1.0.0", "v1.4.2", true},
		{"v1.0.0", "v2.0.0", false},
		{"", "v1.0.0", false},
		{"v1.0.0", "garbage", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Compatible(tt.a, tt.b), "Compatible(%q, %q)", tt.a, tt.b)
	}
}
