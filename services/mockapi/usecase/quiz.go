package usecase

import (
	"context"
	"math"

	"github.com/jackmarvels/platform/internal/pkg/apperrors"
	"github.com/jackmarvels/platform/internal/pkg/logger"
	"github.com/jackmarvels/platform/internal/pkg/models"
	"github.com/jackmarvels/platform/internal/pkg/nsq"
)

// GetQuiz returns the quiz with correct answers hidden
func (u *MockAPIUC) GetQuiz(ctx context.Context, quizID string) (models.Quiz, error) {
	if err := u.wait(ctx); err != nil {
		return models.Quiz{}, err
	}

	quiz, ok := u.store.FindQuizByID(quizID)
	if !ok {
		return models.Quiz{}, apperrors.NotFound("Quiz")
	}
	return quiz.WithoutAnswers(), nil
}

// SubmitQuiz scores the answers and records the result
func (u *MockAPIUC) SubmitQuiz(ctx context.Context, quizID string, submission models.QuizSubmission) (models.QuizResult, error) {
	if err := u.wait(ctx); err != nil {
		return models.QuizResult{}, err
	}

	quiz, ok := u.store.FindQuizByID(quizID)
	if !ok {
		return models.QuizResult{}, apperrors.NotFound("Quiz")
	}
	if _, ok := u.store.FindUserByID(submission.UserID); !ok {
		return models.QuizResult{}, apperrors.NotFound("User")
	}

	correct, score := Score(quiz, submission.Answers)
	result := u.store.AddQuizResult(models.QuizResult{
		QuizID:         quiz.ID,
		UserID:         submission.UserID,
		Score:          score,
		CorrectAnswers: correct,
		TotalQuestions: len(quiz.Questions),
		Passed:         score >= quiz.PassingScore,
	})
	u.publish(ctx, nsq.TopicQuizSubmitted, result)

	logger.Info("Quiz submitted",
		logger.String("quiz_id", quiz.ID),
		logger.UserID(submission.UserID),
		logger.Int("score", score),
		logger.Bool("passed", result.Passed))
	return result, nil
}

// Score counts correct answers and returns the rounded percentage
func Score(quiz models.Quiz, answers map[string]int) (correct, score int) {
	for _, q := range quiz.Questions {
		if answer, ok := answers[q.ID]; ok && answer == q.CorrectAnswer {
			correct++
		}
	}
	if len(quiz.Questions) == 0 {
		return 0, 0
	}
	score = int(math.Round(float64(correct) / float64(len(quiz.Questions)) * 100))
	return correct, score
}
