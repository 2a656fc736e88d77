package words

import (
	"errors"
	"fmt"
)

// ErrIO is matched by every failure to read a word source.
var ErrIO = errors.New("word source unreadable")

var errEmpty = errors.New("no valid five-letter words")

// LoadError reports which source could not be read.
type LoadError struct {
	Source string
	Err    error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load words from %s: %v", e.Source, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

func (e *LoadError) Is(target error) bool {
	return target == ErrIO
}
