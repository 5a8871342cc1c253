package api

// ExperienceLevel describes the learner's self-reported familiarity with
// the subject. The backend uses it to tune generation difficulty.
type ExperienceLevel string

const (
	LevelBeginner     ExperienceLevel = "beginner"
	LevelIntermediate ExperienceLevel = "intermediate"
	LevelAdvanced     ExperienceLevel = "advanced"
)

// Levels lists the selectable experience levels in display order.
var Levels = []ExperienceLevel{LevelBeginner, LevelIntermediate, LevelAdvanced}

// RoadmapRequest carries the collected roadmap-wizard form data.
type RoadmapRequest struct {
	Goal         string          `json:"goal"`
	Level        ExperienceLevel `json:"level"`
	HoursPerWeek int             `json:"hours_per_week"`
}

// Milestone is one stage of a learning roadmap.
type Milestone struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Weeks       int    `json:"weeks"`
}

// Roadmap is a generated learning roadmap.
type Roadmap struct {
	ID         string      `json:"id"`
	Title      string      `json:"title"`
	Milestones []Milestone `json:"milestones"`
}

// SimilarCourse is a candidate match returned from the similarity lookup
// that runs before course generation.
type SimilarCourse struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Level       ExperienceLevel `json:"level"`
}

// PreviewRequest asks the backend to sketch a course outline without
// generating full content.
type PreviewRequest struct {
	Prompt     string          `json:"prompt"`
	Level      ExperienceLevel `json:"level"`
	NumModules int             `json:"num_modules"`
}

// CoursePreview is the lightweight outline shown before full generation.
type CoursePreview struct {
	Title             string   `json:"title"`
	Description       string   `json:"description"`
	ModuleTitles      []string `json:"module_titles"`
	EstimatedDuration string   `json:"estimated_duration"`
}

// GenerateRequest asks the backend to generate a complete course.
type GenerateRequest struct {
	Prompt           string          `json:"prompt"`
	Level            ExperienceLevel `json:"level"`
	NumModules       int             `json:"num_modules"`
	LessonsPerModule int             `json:"lessons_per_module"`
}

// CourseStats summarizes the size of a generated course.
type CourseStats struct {
	Modules   int `json:"modules"`
	Lessons   int `json:"lessons"`
	Exercises int `json:"exercises"`
}

// Course is a fully generated course.
type Course struct {
	ID          string      `json:"id"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Stats       CourseStats `json:"statistics"`
}

// Card is a single flashcard served for review.
type Card struct {
	ID    string   `json:"id"`
	Deck  string   `json:"deck_name"`
	Front string   `json:"front"`
	Back  string   `json:"back"`
	Tags  []string `json:"tags"`
}

// Quality rating bounds for card reviews. 0 is a complete blank, 4 is an
// effortless recall. Ratings at or above QualityPass count as correct.
const (
	QualityMin  = 0
	QualityMax  = 4
	QualityPass = 3
)

// ReviewSubmission reports one card review to the backend scheduler.
// ResponseTimeSecs is elapsed wall-clock seconds since the card's front
// was shown, not since the session started.
type ReviewSubmission struct {
	CardID           string `json:"card_id"`
	Quality          int    `json:"quality"`
	ResponseTimeSecs int    `json:"response_time_seconds"`
}
