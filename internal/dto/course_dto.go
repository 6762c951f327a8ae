package dto

import "time"

type CourseSummaryDTO struct {
	ID              uint      `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description,omitempty"`
	DifficultyLevel string    `json:"difficulty_level"`
	DurationHours   int       `json:"duration_hours"`
	ImageURL        *string   `json:"image_url,omitempty"`
	LessonCount     int       `json:"lesson_count"`
	QuizCount       int       `json:"quiz_count"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type LessonResponseDTO struct {
	ID              uint      `json:"id"`
	CourseID        uint      `json:"course_id"`
	CourseTitle     string    `json:"course_title,omitempty"`
	Title           string    `json:"title"`
	Content         string    `json:"content,omitempty"`
	LessonOrder     int       `json:"lesson_order"`
	DurationMinutes int       `json:"duration_minutes"`
	VideoURL        *string   `json:"video_url,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type QuizSummaryDTO struct {
	ID               uint      `json:"id"`
	CourseID         uint      `json:"course_id"`
	Title            string    `json:"title"`
	Description      string    `json:"description,omitempty"`
	TotalQuestions   int       `json:"total_questions"`
	TimeLimitMinutes int       `json:"time_limit_minutes"`
	QuestionCount    int       `json:"question_count"`
	CreatedAt        time.Time `json:"created_at"`
}

type CourseDetailDTO struct {
	ID              uint                `json:"id"`
	Title           string              `json:"title"`
	Description     string              `json:"description,omitempty"`
	DifficultyLevel string              `json:"difficulty_level"`
	DurationHours   int                 `json:"duration_hours"`
	ImageURL        *string             `json:"image_url,omitempty"`
	CreatedAt       time.Time           `json:"created_at"`
	UpdatedAt       time.Time           `json:"updated_at"`
	Lessons         []LessonResponseDTO `json:"lessons"`
	Quizzes         []QuizSummaryDTO    `json:"quizzes"`
}

type ProgressResponseDTO struct {
	ID                   uint      `json:"id"`
	UserID               uint      `json:"user_id"`
	CourseID             uint      `json:"course_id"`
	LessonID             *uint     `json:"lesson_id"`
	QuizID               *uint     `json:"quiz_id"`
	ProgressType         string    `json:"progress_type"`
	CompletionPercentage float64   `json:"completion_percentage"`
	Score                int       `json:"score"`
	CompletedAt          time.Time `json:"completed_at"`
	LessonTitle          *string   `json:"lesson_title"`
	LessonOrder          *int      `json:"lesson_order"`
}
