package tutorgen

import (
	"fmt"
	"strings"

	"mentora/internal/api"
)

const roadmapSystemPrompt = `You are a curriculum designer for an adult learning platform. You turn a learner's goal into a realistic, ordered roadmap of milestones.`

func buildRoadmapUserMessage(req api.RoadmapRequest) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Goal: %s\n", req.Goal))
	b.WriteString(fmt.Sprintf("Experience level: %s\n", req.Level))
	b.WriteString(fmt.Sprintf("Available time: %d hours per week\n", req.HoursPerWeek))

	b.WriteString(`
Instructions:
Design a roadmap with 4-8 milestones:
1. Order milestones from fundamentals toward the goal. Each must build on the previous ones.
2. Match the starting point to the learner's experience level. A beginner needs foundations an advanced learner can skip.
3. Estimate weeks per milestone honestly for the stated weekly hours. Do not compress the timeline to look appealing.
4. Each description says what the learner will be able to DO after the milestone, not what topics it mentions.`)

	return b.String()
}

const previewSystemPrompt = `You are a curriculum designer for an adult learning platform. You outline complete courses from a short prompt.`

func buildPreviewUserMessage(req api.PreviewRequest) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Course prompt: %s\n", req.Prompt))
	b.WriteString(fmt.Sprintf("Difficulty level: %s\n", req.Level))
	b.WriteString(fmt.Sprintf("Number of modules: %d\n", req.NumModules))

	b.WriteString(`
Instructions:
Outline the course:
1. Produce exactly the requested number of module titles, in teaching order.
2. The description states who the course is for and what they will build or be able to do.
3. Estimate total hours for a learner at the stated level, counting reading, exercises and practice.`)

	return b.String()
}

const deckSystemPrompt = `You are writing spaced-repetition flashcards for a course. Cards test one fact each and are answerable in under thirty seconds.`

func buildDeckUserMessage(title, description string, moduleTitles []string) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Course: %s\n", title))
	b.WriteString(fmt.Sprintf("Description: %s\n", description))
	b.WriteString("Modules:\n")
	for _, m := range moduleTitles {
		b.WriteString(fmt.Sprintf("- %s\n", m))
	}

	b.WriteString(`
Instructions:
Write 10-20 flashcards covering the course's key facts and definitions:
1. One fact per card. Never combine two questions on a front.
2. Fronts are questions or cloze prompts. Backs are short, a sentence at most.
3. Spread cards across all modules rather than exhausting the first one.
4. Plain ASCII text only.`)

	return b.String()
}
