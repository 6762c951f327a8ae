package dto

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

const (
	MsgInvalidRequest   = "Invalid request data"
	MsgRegisterRequired = "Please fill all required fields"
	MsgRegisterEmail    = "Please enter a valid email address"
	MsgRegisterPassword = "Password must be at least 6 characters long"
	MsgLoginRequired    = "Please provide email and password"
)

// RegisterMessages keys a failed "Field.tag" of RegisterRequest to its message.
var RegisterMessages = map[string]string{
	"Email.email":  MsgRegisterEmail,
	"Password.min": MsgRegisterPassword,
}

// ValidationMessage turns a binding error into a client message. Tag failures
// listed in messages win; any other tag failure gets fallback. Errors that are
// not validation failures, such as malformed JSON, get MsgInvalidRequest.
func ValidationMessage(err error, fallback string, messages map[string]string) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return MsgInvalidRequest
	}
	// Missing fields are reported before format problems.
	for _, fe := range verrs {
		if fe.Tag() == "required" {
			return fallback
		}
	}
	for _, fe := range verrs {
		if msg, ok := messages[fe.Field()+"."+fe.Tag()]; ok {
			return msg
		}
	}
	return fallback
}
