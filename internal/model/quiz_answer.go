package model

import "time"

// QuizAnswer is a user's latest answer to one question. The unique index on
// (user_id, question_id) is what makes repeated submissions overwrite.
type QuizAnswer struct {
	ID           uint      `gorm:"primarykey" json:"id"`
	UserID       uint      `json:"user_id" gorm:"not null;uniqueIndex:idx_quiz_answers_user_question,priority:1"`
	QuizID       uint      `json:"quiz_id" gorm:"not null;index"`
	QuestionID   uint      `json:"question_id" gorm:"not null;uniqueIndex:idx_quiz_answers_user_question,priority:2"`
	UserAnswer   string    `json:"user_answer" gorm:"type:text"`
	IsCorrect    bool      `json:"is_correct" gorm:"not null"`
	PointsEarned int       `json:"points_earned" gorm:"not null"`
	AnsweredAt   time.Time `json:"answered_at"`
}
