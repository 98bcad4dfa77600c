package generator

import (
	"fmt"
	"strings"

	"github.com/vidyasetu/backend/internal/models"
)

// All prompt construction lives in this file so that interpolation of
// caller-supplied fields into model prompts happens behind one auditable
// boundary.

func ContentSystemPrompt() string {
	return `You are an educational content generator for multi-grade classrooms in rural schools.
You write stories, poems, explanations, and examples that a single teacher can read aloud or copy to a blackboard.
Keep vocabulary at the requested grade level and stay culturally grounded in the requested language's region.
Respond with the content only. No preamble, no markdown headings.`
}

func BuildContentPrompt(req models.GenerateContentRequest, examples string) string {
	return fmt.Sprintf(`You are generating educational content in %s for grade %s.
Generate a %s on the topic: %s

Here are some examples of good content:
%s

The content should be:
- Culturally appropriate for %s speakers
- At grade %s comprehension level
- Engaging and educational
- In proper %s with correct grammar`,
		req.Language, req.Grade, req.ContentType, req.Prompt,
		examples,
		req.Language, req.Grade, req.Language)
}

func LessonPlanSystemPrompt() string {
	return `You are an experienced teacher planning lessons for a multi-grade classroom with minimal resources.
You must respond with valid JSON only. No markdown, no explanation outside the JSON.`
}

func BuildLessonPlanPrompt(req models.GenerateLessonPlanRequest, examples string) string {
	days := req.Days
	if days <= 0 {
		days = 5
	}
	topic := req.Topic
	if topic == "" {
		topic = req.Subject
	}
	language := req.Language
	if language == "" {
		language = "English"
	}

	return fmt.Sprintf(`Create a %d-day lesson plan for %s, grade %s, on the topic: %s
The plan will be delivered in %s.

Reference material from past plans:
%s

Respond with this exact JSON structure:
{
  "title": "...",
  "objectives": ["..."],
  "materials": ["..."],
  "sessions": [
    {"day": 1, "focus": "...", "activities": ["...", "..."]}
  ]
}

Requirements:
- Exactly %d sessions, one per day
- Activities must work with blackboard, chalk, and locally available material
- Objectives must be observable and checkable by the teacher`,
		days, req.Subject, req.Grade, topic, language, examples, days)
}

func WorksheetSystemPrompt() string {
	return `You are a teacher preparing differentiated worksheets from a single textbook page for a multi-grade classroom.
Every variant must be answerable using only that page.
You must respond with valid JSON only. No markdown, no explanation outside the JSON.`
}

func BuildWorksheetPrompt(req models.GenerateWorksheetsRequest) string {
	grades := strings.Join(req.Grades, ", ")
	if grades == "" {
		grades = "3, 4, 5"
	}

	source := "the attached textbook page image"
	if req.TextbookText != "" {
		source = "this textbook text:\n" + req.TextbookText
	}

	return fmt.Sprintf(`Create differentiated worksheets for grades %s from %s

Subject: %s

Respond with this exact JSON structure:
{
  "variants": [
    {
      "grade": "3",
      "difficulty": "Easy",
      "instructions": "...",
      "questions": [
        {"text": "...", "type": "multiple_choice", "options": ["...", "..."], "answer": "..."},
        {"text": "...", "type": "open_ended"}
      ]
    }
  ]
}

Requirements:
- One variant per requested grade, difficulty rising with grade (Easy, Medium, Hard)
- 3-5 questions per variant
- question type is one of: multiple_choice, fill_in_blank, short_answer, open_ended
- multiple_choice questions need 3-4 options and the answer`,
		grades, source, req.Subject)
}

func ChatSystemPrompt() string {
	return `You are a patient teaching companion answering a student's question.
Answer in short, simple lines that a teacher can read aloud, one idea per line.
Include one or two everyday analogies from village or small-town life.
Do not use markdown formatting.`
}

func BuildChatPrompt(req models.ChatRequest) string {
	language := req.Language
	if language == "" {
		language = "English"
	}
	grade := req.Grade
	if grade == "" {
		grade = "5"
	}
	return fmt.Sprintf(`Answer this question in %s, at a grade %s comprehension level:
%s`, language, grade, req.Question)
}

func ReadingFeedbackSystemPrompt() string {
	return `You are a reading coach giving encouraging feedback to a young student after an oral reading assessment.
Respond with 3 to 5 short feedback lines, one per line. No numbering, no markdown.`
}

func BuildReadingFeedbackPrompt(result models.ReadingAssessmentResult) string {
	return fmt.Sprintf(`Student %s (grade %s) read the passage "%s".
Words per minute: %.1f
Accuracy score: %.1f out of 100
Fluency score: %.1f out of 100

Give specific, encouraging feedback the teacher can share with the student.`,
		result.StudentName, result.Grade, result.PassageTitle,
		result.WordsPerMinute, result.Accuracy, result.Fluency)
}

func VisualAidSystemPrompt() string {
	return `You are helping a teacher draw a diagram on a blackboard with only chalk.
Describe step-by-step drawing instructions: simple shapes, labels, and where to place them.
Respond with plain text instructions only.`
}

func BuildVisualAidPrompt(req models.GenerateVisualAidRequest) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Describe how to draw a simple blackboard diagram of: %s\n", req.Description)
	if req.Subject != "" {
		fmt.Fprintf(&b, "Subject: %s\n", req.Subject)
	}
	if req.Grade != "" {
		fmt.Fprintf(&b, "The drawing is for grade %s students.\n", req.Grade)
	}
	b.WriteString("Keep it drawable in under five minutes.")
	return b.String()
}
