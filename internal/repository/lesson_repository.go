package repository

import (
	"context"

	"github.com/lshigami/edulearn/internal/model"
	"gorm.io/gorm"
)

type LessonWithCourse struct {
	model.Lesson
	CourseTitle string
}

type LessonRepository interface {
	FindByIDWithCourse(ctx context.Context, id uint) (*LessonWithCourse, error)
	FindByCourseID(ctx context.Context, courseID uint) ([]model.Lesson, error)
}

type lessonRepository struct {
	db *gorm.DB
}

func NewLessonRepository(db *gorm.DB) LessonRepository {
	return &lessonRepository{db: db}
}

func (r *lessonRepository) FindByIDWithCourse(ctx context.Context, id uint) (*LessonWithCourse, error) {
	var results []LessonWithCourse
	err := r.db.WithContext(ctx).Model(&model.Lesson{}).
		Select("lessons.*, courses.title AS course_title").
		Joins("JOIN courses ON courses.id = lessons.course_id").
		Where("lessons.id = ?", id).
		Limit(1).
		Scan(&results).Error
	if err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &results[0], nil
}

func (r *lessonRepository) FindByCourseID(ctx context.Context, courseID uint) ([]model.Lesson, error) {
	var lessons []model.Lesson
	err := r.db.WithContext(ctx).
		Where("course_id = ?", courseID).
		Order("lesson_order ASC").
		Find(&lessons).Error
	return lessons, err
}
