package fragment

import "fmt"

// IOError reports a failed filesystem operation on a fragment, directory or
// aggregate file.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

// ParseError reports malformed JSON in a file.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// MissingFieldError reports a field required to derive data that is absent
// or has the wrong type.
type MissingFieldError struct {
	Source string
	Field  string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("%s: missing field %q", e.Source, e.Field)
}

// InvalidFieldError reports a field whose value cannot be used.
type InvalidFieldError struct {
	Source string
	Field  string
	Reason string
}

func (e *InvalidFieldError) Error() string {
	return fmt.Sprintf("%s: invalid field %q: %s", e.Source, e.Field, e.Reason)
}

// CollisionError reports a filename whose collision suffix cannot advance.
type CollisionError struct {
	Name string
}

func (e *CollisionError) Error() string {
	return fmt.Sprintf("cannot resolve filename collision for %q", e.Name)
}
