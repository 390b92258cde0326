package catalog

import (
	"fmt"
	"slices"
	"sort"
)

// Catalog holds an immutable lesson DAG with precomputed indices.
type Catalog struct {
	version      string
	lessons      []Lesson
	byID         map[string]*Lesson
	byCategory   map[Category][]Lesson
	byDifficulty map[Difficulty][]Lesson
	roots        []Lesson
	dependents   map[string][]string
	topoOrder    []Lesson
	topoIndex    map[string]int
}

// New validates lessons and builds a catalog from them. The input slice is
// copied; later changes to it do not affect the catalog.
func New(lessons []Lesson) (*Catalog, error) {
	return newVersioned(DefaultVersion, lessons)
}

func newVersioned(version string, lessons []Lesson) (*Catalog, error) {
	if err := validateLessons(lessons); err != nil {
		return nil, err
	}
	owned := make([]Lesson, len(lessons))
	for i := range lessons {
		owned[i] = cloneLesson(lessons[i])
	}
	c := build(owned)
	c.version = version
	return c, nil
}

// build constructs all indices including topological order (Kahn's algorithm).
// Lessons must already be validated.
func build(lessons []Lesson) *Catalog {
	c := &Catalog{
		lessons:      lessons,
		byID:         make(map[string]*Lesson, len(lessons)),
		byCategory:   make(map[Category][]Lesson),
		byDifficulty: make(map[Difficulty][]Lesson),
		dependents:   make(map[string][]string),
		topoIndex:    make(map[string]int, len(lessons)),
	}

	for i := range c.lessons {
		c.byID[c.lessons[i].ID] = &c.lessons[i]
	}

	for i := range c.lessons {
		for _, prereqID := range c.lessons[i].Prerequisites {
			c.dependents[prereqID] = append(c.dependents[prereqID], c.lessons[i].ID)
		}
	}

	inDegree := make(map[string]int, len(lessons))
	for i := range lessons {
		inDegree[lessons[i].ID] = len(lessons[i].Prerequisites)
	}

	var queue []string
	for id, deg := range inDegree {
		if deg == 0 {
			queue = append(queue, id)
		}
	}
	// Sort initial queue for deterministic ordering
	sort.Strings(queue)

	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]

		c.topoOrder = append(c.topoOrder, *c.byID[id])

		sorted := slices.Clone(c.dependents[id])
		sort.Strings(sorted)
		for _, depID := range sorted {
			inDegree[depID]--
			if inDegree[depID] == 0 {
				queue = append(queue, depID)
			}
		}
	}
	for i, l := range c.topoOrder {
		c.topoIndex[l.ID] = i
	}

	for i := range c.lessons {
		l := c.lessons[i]
		if len(l.Prerequisites) == 0 {
			c.roots = append(c.roots, l)
		}
		c.byCategory[l.Category] = append(c.byCategory[l.Category], l)
		c.byDifficulty[l.Difficulty] = append(c.byDifficulty[l.Difficulty], l)
	}

	// Groups follow topological order so list views never show a lesson
	// before its prerequisites.
	for _, group := range c.byCategory {
		c.sortTopo(group)
	}
	for _, group := range c.byDifficulty {
		c.sortTopo(group)
	}

	return c
}

func (c *Catalog) sortTopo(lessons []Lesson) {
	sort.SliceStable(lessons, func(i, j int) bool {
		return c.topoIndex[lessons[i].ID] < c.topoIndex[lessons[j].ID]
	})
}

// Version returns the semantic version of the catalog content.
func (c *Catalog) Version() string {
	return c.version
}

// Len returns the number of lessons.
func (c *Catalog) Len() int {
	return len(c.lessons)
}

// Lesson returns a lesson by ID, or error if not found.
func (c *Catalog) Lesson(id string) (Lesson, error) {
	l, ok := c.byID[id]
	if !ok {
		return Lesson{}, fmt.Errorf("lesson not found: %q", id)
	}
	return *l, nil
}

// Has reports whether the catalog contains a lesson with the given ID.
func (c *Catalog) Has(id string) bool {
	_, ok := c.byID[id]
	return ok
}

// All returns all lessons in declaration order.
func (c *Catalog) All() []Lesson {
	return slices.Clone(c.lessons)
}

// ByCategory returns the lessons of a category in topological order.
func (c *Catalog) ByCategory(cat Category) []Lesson {
	return slices.Clone(c.byCategory[cat])
}

// ByDifficulty returns the lessons of a difficulty in topological order.
func (c *Catalog) ByDifficulty(d Difficulty) []Lesson {
	return slices.Clone(c.byDifficulty[d])
}

// Roots returns all lessons with no prerequisites.
func (c *Catalog) Roots() []Lesson {
	return slices.Clone(c.roots)
}

// Prerequisites returns the direct prerequisite lessons for a given lesson ID.
func (c *Catalog) Prerequisites(id string) []Lesson {
	l, ok := c.byID[id]
	if !ok {
		return nil
	}
	result := make([]Lesson, 0, len(l.Prerequisites))
	for _, prereqID := range l.Prerequisites {
		if p, ok := c.byID[prereqID]; ok {
			result = append(result, *p)
		}
	}
	return result
}

// Dependents returns lessons that directly depend on the given lesson ID.
func (c *Catalog) Dependents(id string) []Lesson {
	depIDs := c.dependents[id]
	result := make([]Lesson, 0, len(depIDs))
	for _, depID := range depIDs {
		if l, ok := c.byID[depID]; ok {
			result = append(result, *l)
		}
	}
	return result
}

// TopologicalOrder returns all lessons in a valid topological order.
func (c *Catalog) TopologicalOrder() []Lesson {
	return slices.Clone(c.topoOrder)
}

// IsUnlocked returns true if all prerequisites for the given lesson are in
// the completed set. Unknown lessons are never unlocked.
func (c *Catalog) IsUnlocked(id string, completed map[string]bool) bool {
	return len(c.MissingPrerequisites(id, completed)) == 0 && c.Has(id)
}

// MissingPrerequisites returns the prerequisite IDs of a lesson that are not
// in the completed set, in declaration order.
func (c *Catalog) MissingPrerequisites(id string, completed map[string]bool) []string {
	l, ok := c.byID[id]
	if !ok {
		return nil
	}
	var missing []string
	for _, prereqID := range l.Prerequisites {
		if !completed[prereqID] {
			missing = append(missing, prereqID)
		}
	}
	return missing
}

// Available returns all lessons that are unlocked but not yet completed.
func (c *Catalog) Available(completed map[string]bool) []Lesson {
	var result []Lesson
	for _, l := range c.topoOrder {
		if !completed[l.ID] && c.IsUnlocked(l.ID, completed) {
			result = append(result, l)
		}
	}
	return result
}

// Blocked returns all lessons that have at least one uncompleted prerequisite.
func (c *Catalog) Blocked(completed map[string]bool) []Lesson {
	var result []Lesson
	for _, l := range c.topoOrder {
		if !c.IsUnlocked(l.ID, completed) {
			result = append(result, l)
		}
	}
	return result
}
