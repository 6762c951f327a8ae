package model

import "time"

const (
	DifficultyBeginner     = "Beginner"
	DifficultyIntermediate = "Intermediate"
	DifficultyAdvanced     = "Advanced"
)

type Course struct {
	ID              uint      `gorm:"primarykey" json:"id"`
	Title           string    `json:"title" gorm:"not null"`
	Description     string    `json:"description,omitempty" gorm:"type:text"`
	DifficultyLevel string    `json:"difficulty_level" gorm:"default:'Beginner'"`
	DurationHours   int       `json:"duration_hours" gorm:"default:0"`
	ImageURL        *string   `json:"image_url,omitempty"`
	Lessons         []Lesson  `json:"lessons,omitempty" gorm:"foreignKey:CourseID;constraint:OnDelete:CASCADE;"`
	Quizzes         []Quiz    `json:"quizzes,omitempty" gorm:"foreignKey:CourseID;constraint:OnDelete:CASCADE;"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
