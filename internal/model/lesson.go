package model

import "time"

type Lesson struct {
	ID              uint      `gorm:"primarykey" json:"id"`
	CourseID        uint      `json:"course_id" gorm:"not null;index"`
	Title           string    `json:"title" gorm:"not null"`
	Content         string    `json:"content,omitempty" gorm:"type:text"`
	LessonOrder     int       `json:"lesson_order" gorm:"not null"`
	DurationMinutes int       `json:"duration_minutes" gorm:"default:0"`
	VideoURL        *string   `json:"video_url,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
