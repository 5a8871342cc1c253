package api

import "context"

// Backend is the remote tutor service contract. Every method is a fallible
// remote operation: failures are returned as *Error so callers can branch
// on Kind. Implementations must honor context cancellation; sessions
// cancel their context on teardown.
type Backend interface {
	// GenerateRoadmap creates a learning roadmap from the wizard form data.
	GenerateRoadmap(ctx context.Context, req RoadmapRequest) (*Roadmap, error)

	// CheckSimilar returns zero or more existing courses resembling the
	// prompt. An empty result lets the course wizard skip straight to the
	// preview step.
	CheckSimilar(ctx context.Context, prompt string, level ExperienceLevel) ([]SimilarCourse, error)

	// GeneratePreview sketches a course outline without generating content.
	GeneratePreview(ctx context.Context, req PreviewRequest) (*CoursePreview, error)

	// GenerateFull generates a complete course.
	GenerateFull(ctx context.Context, req GenerateRequest) (*Course, error)

	// Publish makes a generated course visible to other learners.
	Publish(ctx context.Context, courseID string) error

	// Enroll enrolls the learner in a course.
	Enroll(ctx context.Context, courseID string) error

	// GetDueCards returns up to limit cards due for review. An empty deck
	// name selects all decks.
	GetDueCards(ctx context.Context, deck string, limit int) ([]Card, error)

	// ReviewCard feeds one review result to the scheduler. The scheduling
	// algorithm is entirely server-side; clients only report outcomes.
	ReviewCard(ctx context.Context, sub ReviewSubmission) error
}
