package generator

import (
	"fmt"

	"github.com/vidyasetu/backend/internal/models"
)

// FallbackLessonPlan is the deterministic plan body substituted when the
// model reply cannot be decoded. It is schema-valid and user-presentable,
// not a placeholder error.
func FallbackLessonPlan(req models.GenerateLessonPlanRequest) models.LessonPlanFields {
	days := req.Days
	if days <= 0 {
		days = 5
	}

	topic := req.Topic
	if topic == "" {
		topic = req.Subject
	}

	sessions := make([]models.LessonSession, days)
	for i := range sessions {
		sessions[i] = models.LessonSession{
			Day:   i + 1,
			Focus: fmt.Sprintf("%s practice and review", topic),
			Activities: []string{
				"Recap the previous session with the whole class",
				fmt.Sprintf("Guided practice on %s", topic),
				"Short exit quiz and doubts",
			},
		}
	}

	return models.LessonPlanFields{
		Title:      fmt.Sprintf("%s plan for grade %s", req.Subject, req.Grade),
		Objectives: []string{fmt.Sprintf("Build grade %s understanding of %s", req.Grade, topic)},
		Materials:  []string{"Blackboard and chalk", "Textbook", "Notebook"},
		Sessions:   sessions,
	}
}

// FallbackWorksheets is the fixed three-variant worksheet set used when the
// model reply lacks a usable variants list.
func FallbackWorksheets() []models.WorksheetVariant {
	return []models.WorksheetVariant{
		{
			Grade:        "3",
			Difficulty:   "Easy",
			Instructions: "Read the page with your teacher, then answer in your own words.",
			Questions: []models.WorksheetQuestion{
				{Text: "Write two things you learned from this page.", Type: "open_ended"},
			},
		},
		{
			Grade:        "4",
			Difficulty:   "Medium",
			Instructions: "Read the page on your own, then answer in full sentences.",
			Questions: []models.WorksheetQuestion{
				{Text: "Explain the main idea of this page to a younger student.", Type: "open_ended"},
			},
		},
		{
			Grade:        "5",
			Difficulty:   "Hard",
			Instructions: "Read the page carefully and support your answer with examples.",
			Questions: []models.WorksheetQuestion{
				{Text: "How would you apply what this page teaches outside the classroom?", Type: "open_ended"},
			},
		},
	}
}
