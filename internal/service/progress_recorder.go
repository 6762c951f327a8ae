package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jinzhu/copier"
	"github.com/lshigami/edulearn/internal/apperror"
	"github.com/lshigami/edulearn/internal/dto"
	"github.com/lshigami/edulearn/internal/model"
	"github.com/lshigami/edulearn/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// QuizCompletionPercentage is recorded for every graded quiz regardless of
// the score: a submitted quiz counts as fully attempted.
const QuizCompletionPercentage = 100.0

type ProgressRecorder interface {
	RecordQuizProgress(ctx context.Context, userID, quizID uint, result *dto.GradeResultDTO) error
	ListCourseProgress(ctx context.Context, userID, courseID uint) ([]dto.ProgressResponseDTO, error)
}

type progressRecorder struct {
	quizRepo     repository.QuizRepository
	progressRepo repository.ProgressRepository
	now          func() time.Time
}

func NewProgressRecorder(quizRepo repository.QuizRepository, progressRepo repository.ProgressRepository) ProgressRecorder {
	return &progressRecorder{
		quizRepo:     quizRepo,
		progressRepo: progressRepo,
		now:          time.Now,
	}
}

func (r *progressRecorder) RecordQuizProgress(ctx context.Context, userID, quizID uint, result *dto.GradeResultDTO) error {
	if result == nil {
		return apperror.Validation("grade result is required")
	}

	quiz, err := r.quizRepo.FindByID(ctx, quizID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperror.NotFound(fmt.Sprintf("quiz %d not found", quizID))
		}
		return apperror.Store("failed to load quiz", err)
	}

	qid := quiz.ID
	progress := model.UserProgress{
		UserID:               userID,
		CourseID:             quiz.CourseID,
		QuizID:               &qid,
		ProgressType:         model.ProgressQuizCompleted,
		CompletionPercentage: QuizCompletionPercentage,
		Score:                result.TotalScore,
		CompletedAt:          r.now(),
	}
	if err := r.progressRepo.UpsertQuizProgress(ctx, &progress); err != nil {
		log.Error().Err(err).Uint("userID", userID).Uint("quizID", quizID).Msg("RecordQuizProgress: Failed to upsert progress")
		return apperror.Store("failed to record quiz progress", err)
	}
	return nil
}

func (r *progressRecorder) ListCourseProgress(ctx context.Context, userID, courseID uint) ([]dto.ProgressResponseDTO, error) {
	rows, err := r.progressRepo.FindByUserAndCourse(ctx, userID, courseID)
	if err != nil {
		log.Error().Err(err).Uint("userID", userID).Uint("courseID", courseID).Msg("ListCourseProgress: Failed to load progress")
		return nil, apperror.Store("failed to load user progress", err)
	}

	dtos := make([]dto.ProgressResponseDTO, 0, len(rows))
	for _, row := range rows {
		var p dto.ProgressResponseDTO
		if err := copier.Copy(&p, &row); err != nil {
			return nil, fmt.Errorf("error preparing progress response: %w", err)
		}
		p.ProgressType = string(row.ProgressType)
		dtos = append(dtos, p)
	}
	return dtos, nil
}
