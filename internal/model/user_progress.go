package model

import "time"

type ProgressType string

const (
	ProgressLessonCompleted ProgressType = "lesson_completed"
	ProgressQuizCompleted   ProgressType = "quiz_completed"
	ProgressCourseStarted   ProgressType = "course_started"
	ProgressCourseCompleted ProgressType = "course_completed"
)

type UserProgress struct {
	ID                   uint         `gorm:"primarykey" json:"id"`
	UserID               uint         `json:"user_id" gorm:"not null;index:idx_user_progress_user_course,priority:1"`
	CourseID             uint         `json:"course_id" gorm:"not null;index:idx_user_progress_user_course,priority:2"`
	LessonID             *uint        `json:"lesson_id,omitempty"`
	QuizID               *uint        `json:"quiz_id,omitempty"`
	ProgressType         ProgressType `json:"progress_type" gorm:"type:varchar(32);not null"`
	CompletionPercentage float64      `json:"completion_percentage" gorm:"default:0"`
	Score                int          `json:"score" gorm:"default:0"`
	CompletedAt          time.Time    `json:"completed_at"`
}

func (UserProgress) TableName() string { return "user_progress" }
