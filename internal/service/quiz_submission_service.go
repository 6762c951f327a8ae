package service

import (
	"context"

	"github.com/lshigami/edulearn/internal/dto"
	"github.com/rs/zerolog/log"
)

// QuizSubmissionService grades a submission and then records the user's
// progress for the quiz.
type QuizSubmissionService interface {
	Submit(ctx context.Context, quizID uint, req dto.QuizSubmitDTO) (*dto.GradeResultDTO, error)
}

type quizSubmissionService struct {
	grader   QuizGrader
	recorder ProgressRecorder
}

func NewQuizSubmissionService(grader QuizGrader, recorder ProgressRecorder) QuizSubmissionService {
	return &quizSubmissionService{grader: grader, recorder: recorder}
}

func (s *quizSubmissionService) Submit(ctx context.Context, quizID uint, req dto.QuizSubmitDTO) (*dto.GradeResultDTO, error) {
	result, err := s.grader.Grade(ctx, quizID, req.UserID, req.Answers)
	if err != nil {
		return nil, err
	}

	// Graded answers are already committed; a progress failure leaves them as is.
	if err := s.recorder.RecordQuizProgress(ctx, req.UserID, quizID, result); err != nil {
		log.Warn().Err(err).Uint("quizID", quizID).Uint("userID", req.UserID).Msg("Submit: Quiz graded but progress was not recorded")
	}
	return result, nil
}
