package domain

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidPrompt     = errors.New("invalid prompt")
	ErrUnsupportedMode   = errors.New("unsupported mode")
	ErrNoObjectGenerated = errors.New("no object generated")
	ErrNoTextGenerated   = errors.New("no text generated")
)

type ErrorKind string

const (
	ErrorKindAuth           ErrorKind = "auth"
	ErrorKindTransport      ErrorKind = "transport"
	ErrorKindValidation     ErrorKind = "validation"
	ErrorKindProvider       ErrorKind = "provider"
	ErrorKindInvalidRequest ErrorKind = "invalid_request"
	ErrorKindUnknown        ErrorKind = "unknown"
)

// GenerationError tags a failed generation call with its category.
// The underlying error is kept as is and stays reachable through errors.As.
type GenerationError struct {
	Kind ErrorKind
	Op   string
	Err  error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("%s: %s error: %v", e.Op, e.Kind, e.Err)
}

func (e *GenerationError) Unwrap() error { return e.Err }

// KindOf reports the category of err, or ErrorKindUnknown when err does not
// carry one.
func KindOf(err error) ErrorKind {
	var genErr *GenerationError
	if errors.As(err, &genErr) {
		return genErr.Kind
	}
	return ErrorKindUnknown
}
