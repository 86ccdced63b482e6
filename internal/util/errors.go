package util

import "errors"

var (
	ErrNotFound          = errors.New("not found")
	ErrValidation        = errors.New("validation failed")
	ErrUnauthorized      = errors.New("unauthorized")
	ErrPermissionDenied  = errors.New("permission denied")
	ErrTransactionFailed = errors.New("transaction failed")
	ErrConflict          = errors.New("already exists")

	ErrUserNotFound     = NotFound("user")
	ErrModuleNotFound   = NotFound("module")
	ErrLessonNotFound   = NotFound("lesson")
	ErrActivityNotFound = NotFound("activity")
	ErrQuestionNotFound = NotFound("question")
	ErrChoiceNotFound   = NotFound("choice")
	ErrHistoryNotFound  = NotFound("activity history")
	ErrFeedbackNotFound = NotFound("feedback")

	ErrInvalidCredentials = &wrapped{msg: "invalid username or password", err: ErrUnauthorized}
	ErrEmailRegistered    = &wrapped{msg: "email already registered", err: ErrConflict}
	ErrUsernameTaken      = &wrapped{msg: "username already taken", err: ErrConflict}
)

type wrapped struct {
	msg string
	err error
}

func (w *wrapped) Error() string { return w.msg }
func (w *wrapped) Unwrap() error { return w.err }

// NotFound builds an error that reads "<entity> not found" and matches ErrNotFound.
func NotFound(entity string) error {
	return &wrapped{msg: entity + " not found", err: ErrNotFound}
}

// Invalid builds a validation error carrying a user-facing message.
func Invalid(msg string) error {
	return &wrapped{msg: msg, err: ErrValidation}
}

// Denied builds an authentication error carrying a user-facing message.
func Denied(msg string) error {
	return &wrapped{msg: msg, err: ErrUnauthorized}
}
