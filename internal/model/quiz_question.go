package model

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
)

const (
	QuestionTypeMultipleChoice = "multiple_choice"
	QuestionTypeTrueFalse      = "true_false"
	QuestionTypeShortAnswer    = "short_answer"
)

type QuizQuestion struct {
	ID            uint           `gorm:"primarykey" json:"id"`
	QuizID        uint           `json:"quiz_id" gorm:"not null;uniqueIndex:idx_quiz_questions_quiz_order,priority:1"`
	QuestionText  string         `json:"question_text" gorm:"type:text;not null"`
	QuestionType  string         `json:"question_type" gorm:"not null;default:'multiple_choice'"`
	Options       datatypes.JSON `json:"options,omitempty"` // ordered []string, NULL for short answers
	CorrectAnswer string         `json:"-" gorm:"type:text;not null"`
	Points        int            `json:"points" gorm:"not null;default:1"`
	QuestionOrder int            `json:"question_order" gorm:"not null;uniqueIndex:idx_quiz_questions_quiz_order,priority:2"`
	CreatedAt     time.Time      `json:"created_at"`
}

// OptionList decodes the stored option set. A NULL or empty column yields nil.
func (q *QuizQuestion) OptionList() ([]string, error) {
	if len(q.Options) == 0 || string(q.Options) == "null" {
		return nil, nil
	}
	var opts []string
	if err := json.Unmarshal(q.Options, &opts); err != nil {
		return nil, err
	}
	return opts, nil
}

// SetOptions encodes opts into the JSON column; nil clears it.
func (q *QuizQuestion) SetOptions(opts []string) error {
	if opts == nil {
		q.Options = nil
		return nil
	}
	raw, err := json.Marshal(opts)
	if err != nil {
		return err
	}
	q.Options = datatypes.JSON(raw)
	return nil
}
