package task

import "errors"

var ErrValidation = errors.New("validation failed")

// FieldError reports an invalid value for a single task attribute. It
// matches ErrValidation under errors.Is.
type FieldError struct {
	Field string
	Msg   string
}

func (e *FieldError) Error() string {
	return e.Msg
}

func (e *FieldError) Unwrap() error {
	return ErrValidation
}

var ErrTitleRequired = &FieldError{Field: "title", Msg: "Title is required"}
