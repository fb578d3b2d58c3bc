package svo

// UnparsableError is returned when non-blank input does not satisfy
// the grammar of a value object. Attempted is the input as given,
// not a partially normalized form.
type UnparsableError struct {
	Attempted string
	Message   string

	kind error
}

// NewUnparsable builds an UnparsableError. kind is the sentinel that
// errors.Is matches against (for example domain.ErrInvalidEmail).
func NewUnparsable(attempted, message string, kind error) *UnparsableError {
	return &UnparsableError{Attempted: attempted, Message: message, kind: kind}
}

func (e *UnparsableError) Error() string {
	return e.Message
}

func (e *UnparsableError) Unwrap() error {
	return e.kind
}
