package repository

import (
	"context"

	"github.com/lshigami/edulearn/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type AnswerRepository interface {
	Upsert(ctx context.Context, answer *model.QuizAnswer) error
}

type answerRepository struct {
	db *gorm.DB
}

func NewAnswerRepository(db *gorm.DB) AnswerRepository {
	return &answerRepository{db: db}
}

// Upsert inserts the answer or, when the (user, question) pair already has a
// row, overwrites the answer text, correctness, points and timestamp.
func (r *answerRepository) Upsert(ctx context.Context, answer *model.QuizAnswer) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "question_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"user_answer", "is_correct", "points_earned", "answered_at"}),
	}).Create(answer).Error
}
