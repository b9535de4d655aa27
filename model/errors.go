package model

import "fmt"

// ParseError reports notation text that could not be read as a note,
// interval, chord symbol or expression.
type ParseError struct {
	Kind   string
	Input  string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("cannot parse %s %q: %s", e.Kind, e.Input, e.Reason)
}

// InvalidQualityError reports a quality that is not admissible for a degree,
// or a lookup outside the domain of the interval tables.
type InvalidQualityError struct {
	Number  int
	Quality string
	Reason  string
}

func (e *InvalidQualityError) Error() string {
	if e.Quality == "" {
		return fmt.Sprintf("invalid interval degree %d: %s", e.Number, e.Reason)
	}
	return fmt.Sprintf("invalid quality %q for degree %d: %s", e.Quality, e.Number, e.Reason)
}

type TypeMismatchError struct {
	Op    string
	Left  string
	Right string
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("cannot apply %s to %s and %s", e.Op, e.Left, e.Right)
}
