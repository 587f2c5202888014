package models

import "time"

// QuizQuestion is one entry of the static question bank
type QuizQuestion struct {
	ID            string   `json:"id"`
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correctAnswer"`
}

// Quiz groups questions with the score needed to pass
type Quiz struct {
	ID               string         `json:"id"`
	EventID          string         `json:"eventId,omitempty"`
	Title            string         `json:"title"`
	PassingScore     int            `json:"passingScore"`
	TimeLimitMinutes int            `json:"timeLimitMinutes"`
	Questions        []QuizQuestion `json:"questions"`
}

// WithoutAnswers returns a copy of the quiz safe to hand to participants
func (q Quiz) WithoutAnswers() Quiz {
	questions := make([]QuizQuestion, len(q.Questions))
	for i, question := range q.Questions {
		question.CorrectAnswer = -1
		questions[i] = question
	}
	q.Questions = questions
	return q
}

// QuizSubmission carries the chosen option index per question id
type QuizSubmission struct {
	UserID  string         `json:"userId"`
	Answers map[string]int `json:"answers" validate:"required"`
}

// QuizResult is computed when a quiz is submitted
type QuizResult struct {
	ID             string    `json:"id"`
	QuizID         string    `json:"quizId"`
	UserID         string    `json:"userId"`
	Score          int       `json:"score"`
	CorrectAnswers int       `json:"correctAnswers"`
	TotalQuestions int       `json:"totalQuestions"`
	Passed         bool      `json:"passed"`
	SubmittedAt    time.Time `json:"submittedAt"`
}
