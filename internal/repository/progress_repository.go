package repository

import (
	"context"
	"errors"

	"github.com/lshigami/edulearn/internal/model"
	"gorm.io/gorm"
)

type ProgressWithLesson struct {
	model.UserProgress
	LessonTitle *string
	LessonOrder *int
}

type ProgressRepository interface {
	UpsertQuizProgress(ctx context.Context, progress *model.UserProgress) error
	FindByUserAndCourse(ctx context.Context, userID, courseID uint) ([]ProgressWithLesson, error)
}

type progressRepository struct {
	db *gorm.DB
}

func NewProgressRepository(db *gorm.DB) ProgressRepository {
	return &progressRepository{db: db}
}

// UpsertQuizProgress keys on (user, course, quiz, lesson IS NULL). A NULL
// lesson_id defeats a unique index, so this is a lookup followed by an update
// or insert; concurrent callers race and the last write wins.
func (r *progressRepository) UpsertQuizProgress(ctx context.Context, progress *model.UserProgress) error {
	db := r.db.WithContext(ctx)

	var existing model.UserProgress
	err := db.Where("user_id = ? AND course_id = ? AND quiz_id = ? AND lesson_id IS NULL",
		progress.UserID, progress.CourseID, progress.QuizID).
		First(&existing).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return db.Create(progress).Error
	case err != nil:
		return err
	}

	progress.ID = existing.ID
	return db.Model(&existing).Updates(map[string]interface{}{
		"progress_type":         progress.ProgressType,
		"completion_percentage": progress.CompletionPercentage,
		"score":                 progress.Score,
		"completed_at":          progress.CompletedAt,
	}).Error
}

func (r *progressRepository) FindByUserAndCourse(ctx context.Context, userID, courseID uint) ([]ProgressWithLesson, error) {
	var results []ProgressWithLesson
	err := r.db.WithContext(ctx).Model(&model.UserProgress{}).
		Select("user_progress.*, lessons.title AS lesson_title, lessons.lesson_order AS lesson_order").
		Joins("LEFT JOIN lessons ON lessons.id = user_progress.lesson_id").
		Where("user_progress.user_id = ? AND user_progress.course_id = ?", userID, courseID).
		Order("lessons.lesson_order ASC, user_progress.id ASC").
		Scan(&results).Error
	return results, err
}
