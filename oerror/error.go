package oerror

import "fmt"

// TraverseError is raised for broken programmer invariants, such as a malformed sector layout.
type TraverseError struct {
	Err string
}

// New formats a TraverseError according to a format specifier.
func New(format string, args ...any) *TraverseError {
	return &TraverseError{Err: fmt.Sprintf(format, args...)}
}

func (e *TraverseError) Error() string {
	return e.Err
}
