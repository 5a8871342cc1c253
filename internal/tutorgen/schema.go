package tutorgen

import "mentora/internal/llm"

// RoadmapSchema defines the JSON schema for learning roadmap generation.
var RoadmapSchema = &llm.Schema{
	Name:        "learning-roadmap",
	Description: "A personalized learning roadmap broken into ordered milestones",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"title": map[string]any{
				"type":        "string",
				"description": "Short title for the roadmap (3-8 words)",
			},
			"milestones": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"title": map[string]any{
							"type":        "string",
							"description": "What this milestone covers",
						},
						"description": map[string]any{
							"type":        "string",
							"description": "2-3 sentences on what the learner will be able to do",
						},
						"weeks": map[string]any{
							"type":        "integer",
							"description": "Estimated weeks to complete at the stated pace",
						},
					},
					"required":             []any{"title", "description", "weeks"},
					"additionalProperties": false,
				},
				"description": "4-8 milestones ordered from fundamentals to goal",
			},
		},
		"required":             []any{"title", "milestones"},
		"additionalProperties": false,
	},
}

// PreviewSchema defines the JSON schema for course outline generation.
var PreviewSchema = &llm.Schema{
	Name:        "course-preview",
	Description: "A course outline with title, description and module titles",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"title": map[string]any{
				"type":        "string",
				"description": "Course title (3-8 words)",
			},
			"description": map[string]any{
				"type":        "string",
				"description": "2-4 sentence course description",
			},
			"module_titles": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "One title per module, in teaching order",
			},
			"estimated_hours": map[string]any{
				"type":        "integer",
				"description": "Estimated total hours to complete the course",
			},
		},
		"required":             []any{"title", "description", "module_titles", "estimated_hours"},
		"additionalProperties": false,
	},
}

// DeckSchema defines the JSON schema for flashcard deck generation.
var DeckSchema = &llm.Schema{
	Name:        "flashcard-deck",
	Description: "A deck of flashcards covering the key facts of a course",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"cards": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"front": map[string]any{
							"type":        "string",
							"description": "Question or prompt side",
						},
						"back": map[string]any{
							"type":        "string",
							"description": "Answer side, concise",
						},
						"tags": map[string]any{
							"type":        "array",
							"items":       map[string]any{"type": "string"},
							"description": "0-3 topic tags",
						},
					},
					"required":             []any{"front", "back", "tags"},
					"additionalProperties": false,
				},
				"description": "10-20 flashcards",
			},
		},
		"required":             []any{"cards"},
		"additionalProperties": false,
	},
}
