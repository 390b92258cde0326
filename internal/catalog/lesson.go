package catalog

// Category groups lessons by system design topic.
type Category string

const (
	CategoryFundamentals Category = "fundamentals"
	CategoryScaling      Category = "scaling"
	CategoryStorage      Category = "storage"
	CategoryMessaging    Category = "messaging"
	CategoryReliability  Category = "reliability"
	CategoryCaseStudy    Category = "case-study"
)

// AllCategories returns all categories in display order.
func AllCategories() []Category {
	return []Category{
		CategoryFundamentals,
		CategoryScaling,
		CategoryStorage,
		CategoryMessaging,
		CategoryReliability,
		CategoryCaseStudy,
	}
}

// CategoryDisplayName returns a human-readable name for a category.
func CategoryDisplayName(c Category) string {
	switch c {
	case CategoryFundamentals:
		return "Fundamentals"
	case CategoryScaling:
		return "Scaling"
	case CategoryStorage:
		return "Storage & Data"
	case CategoryMessaging:
		return "Messaging"
	case CategoryReliability:
		return "Reliability"
	case CategoryCaseStudy:
		return "Case Studies"
	default:
		return string(c)
	}
}

// Difficulty is the difficulty tag of a lesson.
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

// StageType is the kind of content a stage presents.
type StageType string

const (
	StageConcept  StageType = "concept"  // Theory explanation
	StageDemo     StageType = "demo"     // Walkthrough of a worked example
	StageSimulate StageType = "simulate" // Interactive simulation
	StageBreak    StageType = "break"    // Failure injection: something breaks
	StageDecision StageType = "decision" // Learner picks a design trade-off
	StageQuiz     StageType = "quiz"     // Knowledge check
	StagePractice StageType = "practice" // Canvas or exercise practice
	StageSummary  StageType = "summary"  // Recap
)

// Valid reports whether t is one of the known stage types.
func (t StageType) Valid() bool {
	switch t {
	case StageConcept, StageDemo, StageSimulate, StageBreak,
		StageDecision, StageQuiz, StagePractice, StageSummary:
		return true
	}
	return false
}

// Icon returns the display icon for a stage type.
func (t StageType) Icon() string {
	switch t {
	case StageConcept:
		return "📘"
	case StageDemo:
		return "🎬"
	case StageSimulate:
		return "⚙"
	case StageBreak:
		return "💥"
	case StageDecision:
		return "⚖"
	case StageQuiz:
		return "❓"
	case StagePractice:
		return "✏"
	case StageSummary:
		return "📌"
	default:
		return "?"
	}
}

// Stage is one unit of content within a lesson. Title and Body are opaque
// to the progress engine; only ID and Type carry meaning.
type Stage struct {
	ID    string
	Type  StageType
	Title string
	Body  string
}

// Lesson is a catalog entry: an ordered list of stages gated by prerequisite lessons.
type Lesson struct {
	ID            string
	Title         string
	Summary       string
	Category      Category
	Difficulty    Difficulty
	EstimatedMins int
	Prerequisites []string
	Stages        []Stage
}

// StageCount returns the number of stages in the lesson.
func (l Lesson) StageCount() int {
	return len(l.Stages)
}

// StageIDs returns the lesson's stage ids in order.
func (l Lesson) StageIDs() []string {
	ids := make([]string, len(l.Stages))
	for i, s := range l.Stages {
		ids[i] = s.ID
	}
	return ids
}

// LessonState represents a lesson's state relative to the learner.
type LessonState int

const (
	StateLocked     LessonState = iota // One or more prerequisites not yet completed
	StateAvailable                     // Unlocked; no stage completed yet
	StateInProgress                    // Some stages completed
	StateCompleted                     // Every stage completed
)

// Icon returns the display icon for a lesson state.
func (s LessonState) Icon() string {
	switch s {
	case StateLocked:
		return "🔒"
	case StateAvailable:
		return "🔓"
	case StateInProgress:
		return "📖"
	case StateCompleted:
		return "✅"
	default:
		return "?"
	}
}

// Label returns the display label for a lesson state.
func (s LessonState) Label() string {
	switch s {
	case StateLocked:
		return "Locked"
	case StateAvailable:
		return "Available"
	case StateInProgress:
		return "In progress"
	case StateCompleted:
		return "Completed"
	default:
		return "Unknown"
	}
}

func cloneLesson(l Lesson) Lesson {
	out := l
	out.Prerequisites = append([]string(nil), l.Prerequisites...)
	out.Stages = append([]Stage(nil), l.Stages...)
	return out
}
