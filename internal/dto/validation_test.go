package dto

import (
	"errors"
	"testing"

	"github.com/gin-gonic/gin/binding"
)

func TestValidationMessage_Register(t *testing.T) {
	valid := RegisterRequest{FirstName: "Ada", LastName: "Lovelace", Username: "ada", Email: "ada@example.com", Password: "secret1"}

	cases := map[string]struct {
		mutate func(r *RegisterRequest)
		want   string
	}{
		"missing last name": {func(r *RegisterRequest) { r.LastName = "" }, MsgRegisterRequired},
		"invalid email":     {func(r *RegisterRequest) { r.Email = "ada.example.com" }, MsgRegisterEmail},
		"short password":    {func(r *RegisterRequest) { r.Password = "12345" }, MsgRegisterPassword},
		"missing beats format": {func(r *RegisterRequest) {
			r.Username = ""
			r.Email = "nope"
		}, MsgRegisterRequired},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			req := valid
			tc.mutate(&req)
			err := binding.Validator.ValidateStruct(req)
			if err == nil {
				t.Fatal("expected a validation error")
			}
			if got := ValidationMessage(err, MsgRegisterRequired, RegisterMessages); got != tc.want {
				t.Fatalf("got %q, want %q", got, tc.want)
			}
		})
	}

	if err := binding.Validator.ValidateStruct(valid); err != nil {
		t.Fatalf("valid request rejected: %v", err)
	}
}

func TestValidationMessage_Submission(t *testing.T) {
	cases := map[string]QuizSubmitDTO{
		"zero user":        {UserID: 0, Answers: []SubmittedAnswerDTO{{QuestionID: 1}}},
		"nil answers":      {UserID: 1},
		"empty answers":    {UserID: 1, Answers: []SubmittedAnswerDTO{}},
		"zero question id": {UserID: 1, Answers: []SubmittedAnswerDTO{{QuestionID: 0, UserAnswer: "x"}}},
	}
	for name, req := range cases {
		t.Run(name, func(t *testing.T) {
			err := binding.Validator.ValidateStruct(req)
			if err == nil {
				t.Fatal("expected a validation error")
			}
			if got := ValidationMessage(err, MsgInvalidRequest, nil); got != MsgInvalidRequest {
				t.Fatalf("got %q", got)
			}
		})
	}
}

func TestValidationMessage_NonValidationError(t *testing.T) {
	if got := ValidationMessage(errors.New("unexpected EOF"), MsgLoginRequired, nil); got != MsgInvalidRequest {
		t.Fatalf("got %q", got)
	}
}
