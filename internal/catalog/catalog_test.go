package catalog

import (
	"testing"
)

func TestDefault_Builds(t *testing.T) {
	c := Default()
	if c.Len() != 9 {
		t.Errorf("got %d lessons, want 9", c.Len())
	}
	if c.Version() != DefaultVersion {
		t.Errorf("Version() = %q, want %q", c.Version(), DefaultVersion)
	}
}

func TestLesson_Exists(t *testing.T) {
	c := Default()
	l, err := c.Lesson("caching")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if l.Category != CategoryStorage {
		t.Errorf("got category %q, want %q", l.Category, CategoryStorage)
	}
	if l.StageCount() != 5 {
		t.Errorf("got %d stages, want 5", l.StageCount())
	}
}

func TestLesson_NotFound(t *testing.T) {
	c := Default()
	if _, err := c.Lesson("nonexistent"); err == nil {
		t.Fatal("expected error for nonexistent lesson, got nil")
	}
	if c.Has("nonexistent") {
		t.Error("Has(nonexistent) = true, want false")
	}
}

func TestRoots(t *testing.T) {
	roots := Default().Roots()
	if len(roots) != 1 || roots[0].ID != "intro" {
		t.Fatalf("roots = %v, want [intro]", lessonIDs(roots))
	}
}

func TestTopologicalOrder_PrereqsFirst(t *testing.T) {
	c := Default()
	order := c.TopologicalOrder()
	if len(order) != c.Len() {
		t.Fatalf("topological order has %d lessons, want %d", len(order), c.Len())
	}
	pos := make(map[string]int, len(order))
	for i, l := range order {
		pos[l.ID] = i
	}
	for _, l := range order {
		for _, p := range l.Prerequisites {
			if pos[p] >= pos[l.ID] {
				t.Errorf("prerequisite %q (pos %d) not before %q (pos %d)", p, pos[p], l.ID, pos[l.ID])
			}
		}
	}
}

func TestByCategory(t *testing.T) {
	c := Default()
	tests := []struct {
		cat  Category
		want []string
	}{
		{CategoryFundamentals, []string{"intro"}},
		{CategoryScaling, []string{"scaling-basics", "load-balancing"}},
		{CategoryStorage, []string{"caching", "sharding"}},
		{CategoryCaseStudy, []string{"url-shortener"}},
	}
	for _, tt := range tests {
		got := lessonIDs(c.ByCategory(tt.cat))
		if !equalIDs(got, tt.want) {
			t.Errorf("ByCategory(%q) = %v, want %v", tt.cat, got, tt.want)
		}
	}
}

func TestByDifficulty(t *testing.T) {
	c := Default()
	total := 0
	for _, d := range []Difficulty{DifficultyBeginner, DifficultyIntermediate, DifficultyAdvanced} {
		for _, l := range c.ByDifficulty(d) {
			if l.Difficulty != d {
				t.Errorf("ByDifficulty(%q) contains %q with %q", d, l.ID, l.Difficulty)
			}
			total++
		}
	}
	if total != c.Len() {
		t.Errorf("difficulty groups cover %d lessons, want %d", total, c.Len())
	}
}

func TestPrerequisitesAndDependents(t *testing.T) {
	c := Default()

	prereqs := lessonIDs(c.Prerequisites("rate-limiting"))
	if !equalIDs(prereqs, []string{"load-balancing", "caching"}) {
		t.Errorf("Prerequisites(rate-limiting) = %v", prereqs)
	}

	deps := c.Dependents("scaling-basics")
	found := map[string]bool{}
	for _, d := range deps {
		found[d.ID] = true
	}
	for _, want := range []string{"load-balancing", "caching", "message-queues"} {
		if !found[want] {
			t.Errorf("Dependents(scaling-basics) missing %q", want)
		}
	}

	if got := c.Prerequisites("nonexistent"); got != nil {
		t.Errorf("Prerequisites(nonexistent) = %v, want nil", got)
	}
}

func TestIsUnlocked(t *testing.T) {
	c := Default()
	completed := map[string]bool{}

	if !c.IsUnlocked("intro", completed) {
		t.Error("root lesson should be unlocked with no progress")
	}
	if c.IsUnlocked("scaling-basics", completed) {
		t.Error("scaling-basics should be locked before intro is completed")
	}

	completed["intro"] = true
	if !c.IsUnlocked("scaling-basics", completed) {
		t.Error("scaling-basics should be unlocked after intro is completed")
	}
	if c.IsUnlocked("nonexistent", completed) {
		t.Error("unknown lesson should never be unlocked")
	}
}

func TestMissingPrerequisites(t *testing.T) {
	c := Default()
	missing := c.MissingPrerequisites("rate-limiting", map[string]bool{"caching": true})
	if !equalIDs(missing, []string{"load-balancing"}) {
		t.Errorf("MissingPrerequisites = %v, want [load-balancing]", missing)
	}
}

func TestAvailableAndBlocked(t *testing.T) {
	c := Default()
	completed := map[string]bool{"intro": true}

	available := lessonIDs(c.Available(completed))
	if !equalIDs(available, []string{"scaling-basics"}) {
		t.Errorf("Available = %v, want [scaling-basics]", available)
	}

	blocked := c.Blocked(completed)
	if len(blocked) != c.Len()-2 {
		t.Errorf("Blocked has %d lessons, want %d", len(blocked), c.Len()-2)
	}
}

func TestNew_CopiesInput(t *testing.T) {
	lessons := []Lesson{
		{ID: "a", Stages: []Stage{{ID: "s1", Type: StageConcept}}},
	}
	c, err := New(lessons)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	lessons[0].Stages[0].ID = "mutated"

	l, _ := c.Lesson("a")
	if l.Stages[0].ID != "s1" {
		t.Errorf("catalog saw caller mutation: stage id %q", l.Stages[0].ID)
	}
}

func TestStageIDs(t *testing.T) {
	l := Lesson{Stages: []Stage{{ID: "x"}, {ID: "y"}}}
	if got := l.StageIDs(); !equalIDs(got, []string{"x", "y"}) {
		t.Errorf("StageIDs() = %v", got)
	}
}

func lessonIDs(ls []Lesson) []string {
	ids := make([]string, len(ls))
	for i, l := range ls {
		ids[i] = l.ID
	}
	return ids
}

func equalIDs(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
