package search

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is matched by every argument validation failure.
var ErrInvalidArgument = errors.New("invalid argument")

// ArgumentError describes a rejected narrowing argument.
type ArgumentError struct {
	msg string
}

func (e *ArgumentError) Error() string { return e.msg }

func (e *ArgumentError) Is(target error) bool {
	return target == ErrInvalidArgument
}

func invalidArgument(format string, args ...any) *ArgumentError {
	return &ArgumentError{msg: fmt.Sprintf(format, args...)}
}

// ValidateIndex checks that index is a 1-based position within a word.
func ValidateIndex(index int) error {
	if index < 1 || index > Positions {
		return invalidArgument("index=%d must be between 1 and %d", index, Positions)
	}
	return nil
}
