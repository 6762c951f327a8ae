package model

import "time"

type Quiz struct {
	ID               uint           `gorm:"primarykey" json:"id"`
	CourseID         uint           `json:"course_id" gorm:"not null;index"`
	Title            string         `json:"title" gorm:"not null"`
	Description      string         `json:"description,omitempty" gorm:"type:text"`
	TotalQuestions   int            `json:"total_questions" gorm:"default:0"`
	TimeLimitMinutes int            `json:"time_limit_minutes" gorm:"default:30"`
	Questions        []QuizQuestion `json:"questions,omitempty" gorm:"foreignKey:QuizID;constraint:OnDelete:CASCADE;"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
}

func (Quiz) TableName() string { return "quizzes" }
