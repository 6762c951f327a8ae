package service

import (
	"context"
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/lshigami/edulearn/internal/apperror"
	"github.com/lshigami/edulearn/internal/dto"
	"github.com/lshigami/edulearn/internal/model"
	"github.com/lshigami/edulearn/internal/repository"
	"github.com/rs/zerolog/log"
)

// QuizGrader scores one user's submission against the stored correct answers
// and persists every graded answer.
type QuizGrader interface {
	Grade(ctx context.Context, quizID, userID uint, answers []dto.SubmittedAnswerDTO) (*dto.GradeResultDTO, error)
}

type quizGrader struct {
	quizRepo   repository.QuizRepository
	answerRepo repository.AnswerRepository
	now        func() time.Time
}

func NewQuizGrader(quizRepo repository.QuizRepository, answerRepo repository.AnswerRepository) QuizGrader {
	return &quizGrader{
		quizRepo:   quizRepo,
		answerRepo: answerRepo,
		now:        time.Now,
	}
}

// Grade runs one grading pass. Answers for question ids outside the quiz are
// skipped. Upserts are not wrapped in a transaction: the first store error
// stops the pass and answers already written stay written.
func (g *quizGrader) Grade(ctx context.Context, quizID, userID uint, answers []dto.SubmittedAnswerDTO) (*dto.GradeResultDTO, error) {
	if err := validateSubmission(userID, answers); err != nil {
		return nil, err
	}

	questions, err := g.quizRepo.FindQuestionsByQuizID(ctx, quizID)
	if err != nil {
		log.Error().Err(err).Uint("quizID", quizID).Msg("Grade: Failed to load quiz questions")
		return nil, apperror.Store("failed to load quiz questions", err)
	}
	if len(questions) == 0 {
		return nil, apperror.NotFound("Quiz not found or has no questions")
	}

	questionMap := make(map[uint]model.QuizQuestion, len(questions))
	for _, q := range questions {
		questionMap[q.ID] = q
	}

	// A question answered twice in one submission is graded once, with the
	// later answer, matching what the (user, question) upsert leaves stored.
	lastIndex := make(map[uint]int, len(answers))
	for i, a := range answers {
		lastIndex[a.QuestionID] = i
	}

	result := &dto.GradeResultDTO{TotalQuestions: len(questions)}
	answeredAt := g.now()

	for i, submitted := range answers {
		question, exists := questionMap[submitted.QuestionID]
		if !exists {
			log.Warn().Uint("questionID", submitted.QuestionID).Uint("quizID", quizID).Msg("Grade: Answer for a question not part of this quiz, skipping.")
			result.IgnoredQuestionIDs = append(result.IgnoredQuestionIDs, submitted.QuestionID)
			continue
		}
		if lastIndex[submitted.QuestionID] != i {
			continue
		}

		isCorrect := AnswersMatch(submitted.UserAnswer, question.CorrectAnswer)
		pointsEarned := 0
		if isCorrect {
			pointsEarned = question.Points
			result.CorrectAnswers++
			result.TotalScore += pointsEarned
		}

		answer := model.QuizAnswer{
			UserID:       userID,
			QuizID:       quizID,
			QuestionID:   question.ID,
			UserAnswer:   submitted.UserAnswer,
			IsCorrect:    isCorrect,
			PointsEarned: pointsEarned,
			AnsweredAt:   answeredAt,
		}
		if err := g.answerRepo.Upsert(ctx, &answer); err != nil {
			log.Error().Err(err).Uint("quizID", quizID).Uint("userID", userID).Uint("questionID", question.ID).Msg("Grade: Failed to save answer, aborting grading pass")
			return nil, apperror.Store("failed to save quiz answer", err)
		}
	}

	result.Percentage = Percentage(result.CorrectAnswers, result.TotalQuestions)

	log.Info().
		Uint("quizID", quizID).
		Uint("userID", userID).
		Int("correct", result.CorrectAnswers).
		Int("total", result.TotalQuestions).
		Int("score", result.TotalScore).
		Msg("Grade: Quiz graded")
	return result, nil
}

// validateSubmission applies the QuizSubmitDTO binding tags for callers that
// do not come through the HTTP binder.
func validateSubmission(userID uint, answers []dto.SubmittedAnswerDTO) error {
	err := binding.Validator.ValidateStruct(dto.QuizSubmitDTO{UserID: userID, Answers: answers})
	if err != nil {
		return apperror.Validation(dto.ValidationMessage(err, dto.MsgInvalidRequest, nil))
	}
	return nil
}
