package repository

import (
	"context"

	"github.com/lshigami/edulearn/internal/model"
	"gorm.io/gorm"
)

type CourseWithCounts struct {
	model.Course
	LessonCount int
	QuizCount   int
}

type CourseRepository interface {
	Create(ctx context.Context, course *model.Course) error
	FindByID(ctx context.Context, id uint) (*model.Course, error)
	FindAllWithCounts(ctx context.Context) ([]CourseWithCounts, error)
}

type courseRepository struct {
	db *gorm.DB
}

func NewCourseRepository(db *gorm.DB) CourseRepository {
	return &courseRepository{db: db}
}

func (r *courseRepository) Create(ctx context.Context, course *model.Course) error {
	// Lessons and Quizzes (with their Questions) populated on the course are created with it.
	return r.db.WithContext(ctx).Create(course).Error
}

func (r *courseRepository) FindByID(ctx context.Context, id uint) (*model.Course, error) {
	var course model.Course
	if err := r.db.WithContext(ctx).First(&course, id).Error; err != nil {
		return nil, err
	}
	return &course, nil
}

func (r *courseRepository) FindAllWithCounts(ctx context.Context) ([]CourseWithCounts, error) {
	var results []CourseWithCounts
	err := r.db.WithContext(ctx).Model(&model.Course{}).
		Select("courses.*, " +
			"(SELECT COUNT(*) FROM lessons WHERE lessons.course_id = courses.id) AS lesson_count, " +
			"(SELECT COUNT(*) FROM quizzes WHERE quizzes.course_id = courses.id) AS quiz_count").
		Order("courses.created_at DESC").
		Scan(&results).Error
	return results, err
}
