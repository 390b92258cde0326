package catalog

import (
	"fmt"
	"strings"
)

// validateLessons performs all structural checks on the given lesson set.
// Returns a combined error describing all problems found, or nil if valid.
func validateLessons(lessons []Lesson) error {
	var errs []string

	if len(lessons) == 0 {
		return fmt.Errorf("catalog validation failed:\n  catalog has no lessons")
	}

	idSet := make(map[string]bool, len(lessons))

	for _, l := range lessons {
		if l.ID == "" {
			errs = append(errs, "lesson with empty ID")
			continue
		}
		if idSet[l.ID] {
			errs = append(errs, fmt.Sprintf("duplicate lesson ID: %q", l.ID))
		}
		idSet[l.ID] = true
	}

	// Stages: every lesson needs at least one, ids unique within the lesson.
	for _, l := range lessons {
		if len(l.Stages) == 0 {
			errs = append(errs, fmt.Sprintf("lesson %q has no stages", l.ID))
		}
		stageIDs := make(map[string]bool, len(l.Stages))
		for i, s := range l.Stages {
			prefix := fmt.Sprintf("lesson %q stage %d", l.ID, i)
			if s.ID == "" {
				errs = append(errs, prefix+": empty stage ID")
				continue
			}
			if stageIDs[s.ID] {
				errs = append(errs, fmt.Sprintf("%s: duplicate stage ID %q", prefix, s.ID))
			}
			stageIDs[s.ID] = true
			if strings.Contains(s.ID, "/") {
				errs = append(errs, fmt.Sprintf("%s: stage ID %q must not contain '/'", prefix, s.ID))
			}
			if !s.Type.Valid() {
				errs = append(errs, fmt.Sprintf("%s: unknown stage type %q", prefix, s.Type))
			}
		}
	}

	// Check for dangling prerequisites
	for _, l := range lessons {
		for _, prereqID := range l.Prerequisites {
			if prereqID == l.ID {
				errs = append(errs, fmt.Sprintf("lesson %q lists itself as a prerequisite", l.ID))
				continue
			}
			if !idSet[prereqID] {
				errs = append(errs, fmt.Sprintf("lesson %q references nonexistent prerequisite %q", l.ID, prereqID))
			}
		}
	}

	// Check for cycles using Kahn's algorithm
	inDegree := make(map[string]int, len(lessons))
	adjList := make(map[string][]string)
	for _, l := range lessons {
		inDegree[l.ID] = len(l.Prerequisites)
		for _, prereqID := range l.Prerequisites {
			adjList[prereqID] = append(adjList[prereqID], l.ID)
		}
	}

	var queue []string
	for _, l := range lessons {
		if inDegree[l.ID] == 0 {
			queue = append(queue, l.ID)
		}
	}

	visited := 0
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		visited++
		for _, depID := range adjList[id] {
			inDegree[depID]--
			if inDegree[depID] == 0 {
				queue = append(queue, depID)
			}
		}
	}

	if visited < len(lessons) {
		var cycleNodes []string
		for _, l := range lessons {
			if inDegree[l.ID] > 0 {
				cycleNodes = append(cycleNodes, l.ID)
			}
		}
		errs = append(errs, fmt.Sprintf("cycle detected involving lessons: %s", strings.Join(cycleNodes, ", ")))
	}

	hasRoot := false
	for _, l := range lessons {
		if len(l.Prerequisites) == 0 {
			hasRoot = true
			break
		}
	}
	if !hasRoot {
		errs = append(errs, "no root lessons found (at least one lesson must have no prerequisites)")
	}

	if len(errs) > 0 {
		return fmt.Errorf("catalog validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}
