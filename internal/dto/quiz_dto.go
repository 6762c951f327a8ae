package dto

import "time"

// QuestionResponseDTO is what a learner sees: the correct answer is never included.
type QuestionResponseDTO struct {
	ID            uint     `json:"id"`
	QuestionText  string   `json:"question_text"`
	QuestionType  string   `json:"question_type"`
	Options       []string `json:"options"`
	Points        int      `json:"points"`
	QuestionOrder int      `json:"question_order"`
}

type QuizDetailDTO struct {
	ID               uint                  `json:"id"`
	CourseID         uint                  `json:"course_id"`
	CourseTitle      string                `json:"course_title"`
	Title            string                `json:"title"`
	Description      string                `json:"description,omitempty"`
	TotalQuestions   int                   `json:"total_questions"`
	TimeLimitMinutes int                   `json:"time_limit_minutes"`
	CreatedAt        time.Time             `json:"created_at"`
	Questions        []QuestionResponseDTO `json:"questions"`
}

// SubmittedAnswerDTO is one entry of a quiz submission.
type SubmittedAnswerDTO struct {
	QuestionID uint   `json:"questionId" binding:"required"`
	UserAnswer string `json:"userAnswer"`
}

// QuizSubmitDTO is the body of POST /quizzes/{quizId}/submit.
type QuizSubmitDTO struct {
	UserID  uint                 `json:"userId" binding:"required"`
	Answers []SubmittedAnswerDTO `json:"answers" binding:"required,min=1,dive"`
}

// GradeResultDTO is the aggregate outcome of one grading pass.
// IgnoredQuestionIDs lists submitted ids that are not part of the quiz.
type GradeResultDTO struct {
	TotalQuestions     int     `json:"totalQuestions"`
	CorrectAnswers     int     `json:"correctAnswers"`
	TotalScore         int     `json:"totalScore"`
	Percentage         float64 `json:"percentage"`
	IgnoredQuestionIDs []uint  `json:"ignoredQuestionIds,omitempty"`
}
