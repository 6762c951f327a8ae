package repository

import (
	"context"

	"github.com/lshigami/edulearn/internal/model"
	"gorm.io/gorm"
)

type QuizWithCourse struct {
	model.Quiz
	CourseTitle string
}

type QuizWithQuestionCount struct {
	model.Quiz
	QuestionCount int
}

type QuizRepository interface {
	FindByID(ctx context.Context, id uint) (*model.Quiz, error)
	FindByIDWithCourse(ctx context.Context, id uint) (*QuizWithCourse, error)
	FindByCourseIDWithQuestionCount(ctx context.Context, courseID uint) ([]QuizWithQuestionCount, error)
	FindQuestionsByQuizID(ctx context.Context, quizID uint) ([]model.QuizQuestion, error)
}

type quizRepository struct {
	db *gorm.DB
}

func NewQuizRepository(db *gorm.DB) QuizRepository {
	return &quizRepository{db: db}
}

func (r *quizRepository) FindByID(ctx context.Context, id uint) (*model.Quiz, error) {
	var quiz model.Quiz
	if err := r.db.WithContext(ctx).First(&quiz, id).Error; err != nil {
		return nil, err
	}
	return &quiz, nil
}

func (r *quizRepository) FindByIDWithCourse(ctx context.Context, id uint) (*QuizWithCourse, error) {
	var results []QuizWithCourse
	err := r.db.WithContext(ctx).Model(&model.Quiz{}).
		Select("quizzes.*, courses.title AS course_title").
		Joins("JOIN courses ON courses.id = quizzes.course_id").
		Where("quizzes.id = ?", id).
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

func (r *quizRepository) FindByCourseIDWithQuestionCount(ctx context.Context, courseID uint) ([]QuizWithQuestionCount, error) {
	var results []QuizWithQuestionCount
	err := r.db.WithContext(ctx).Model(&model.Quiz{}).
		Select("quizzes.*, (SELECT COUNT(*) FROM quiz_questions WHERE quiz_questions.quiz_id = quizzes.id) AS question_count").
		Where("quizzes.course_id = ?", courseID).
		Order("quizzes.created_at ASC").
		Scan(&results).Error
	return results, err
}

// FindQuestionsByQuizID returns the authoritative question rows, correct
// answers included, in display order.
func (r *quizRepository) FindQuestionsByQuizID(ctx context.Context, quizID uint) ([]model.QuizQuestion, error) {
	var questions []model.QuizQuestion
	err := r.db.WithContext(ctx).
		Where("quiz_id = ?", quizID).
		Order("question_order ASC").
		Find(&questions).Error
	return questions, err
}
