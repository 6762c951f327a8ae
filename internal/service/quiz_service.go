package service

import (
	"context"
	"errors"

	"github.com/lshigami/edulearn/internal/apperror"
	"github.com/lshigami/edulearn/internal/dto"
	"github.com/lshigami/edulearn/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// QuizService serves quizzes to learners. Correct answers stay server side.
type QuizService interface {
	GetQuiz(ctx context.Context, quizID uint) (*dto.QuizDetailDTO, error)
}

type quizService struct {
	quizRepo repository.QuizRepository
}

func NewQuizService(quizRepo repository.QuizRepository) QuizService {
	return &quizService{quizRepo: quizRepo}
}

func (s *quizService) GetQuiz(ctx context.Context, quizID uint) (*dto.QuizDetailDTO, error) {
	quiz, err := s.quizRepo.FindByIDWithCourse(ctx, quizID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("Quiz not found")
		}
		log.Error().Err(err).Uint("quizID", quizID).Msg("GetQuiz: Failed to load quiz")
		return nil, apperror.Store("error fetching quiz", err)
	}

	questions, err := s.quizRepo.FindQuestionsByQuizID(ctx, quizID)
	if err != nil {
		log.Error().Err(err).Uint("quizID", quizID).Msg("GetQuiz: Failed to load questions")
		return nil, apperror.Store("error fetching quiz questions", err)
	}

	resp := &dto.QuizDetailDTO{
		ID:               quiz.Quiz.ID,
		CourseID:         quiz.Quiz.CourseID,
		CourseTitle:      quiz.CourseTitle,
		Title:            quiz.Quiz.Title,
		Description:      quiz.Quiz.Description,
		TotalQuestions:   quiz.Quiz.TotalQuestions,
		TimeLimitMinutes: quiz.Quiz.TimeLimitMinutes,
		CreatedAt:        quiz.Quiz.CreatedAt,
		Questions:        make([]dto.QuestionResponseDTO, 0, len(questions)),
	}
	for i := range questions {
		q := &questions[i]
		opts, err := q.OptionList()
		if err != nil {
			log.Warn().Err(err).Uint("questionID", q.ID).Msg("GetQuiz: Stored options are not a JSON string list, omitting them")
			opts = nil
		}
		resp.Questions = append(resp.Questions, dto.QuestionResponseDTO{
			ID:            q.ID,
			QuestionText:  q.QuestionText,
			QuestionType:  q.QuestionType,
			Options:       opts,
			Points:        q.Points,
			QuestionOrder: q.QuestionOrder,
		})
	}
	return resp, nil
}
