// Package operation defines the closed set of operations the tool can run.
package operation

import (
	"fmt"
	"strings"
)

// Kind identifies one operation.
type Kind string

const (
	Build   Kind = "build"
	Split   Kind = "split"
	Scan    Kind = "scan"
	Migrate Kind = "fix1"
	Index   Kind = "index"
)

// kinds lists every operation in help order.
var kinds = []Kind{Build, Split, Scan, Migrate, Index}

// Kinds returns every operation kind.
func Kinds() []Kind {
	return append([]Kind(nil), kinds...)
}

// String returns the command name of the kind.
func (k Kind) String() string { return string(k) }

// Summary returns a one-line description of the kind.
func (k Kind) Summary() string {
	switch k {
	case Build:
		return "Merge fragment files into the aggregate document"
	case Split:
		return "Explode the aggregate's episodes back into fragment files"
	case Scan:
		return "Report episodes missing budget or prefecture"
	case Migrate:
		return "Split composite titles into name and name:zh"
	case Index:
		return "Load episode fragments into the SQLite index"
	}
	return ""
}

// UnknownCommandError reports an operation name outside the known set.
type UnknownCommandError struct {
	Name string
}

func (e *UnknownCommandError) Error() string {
	if e.Name == "" {
		return fmt.Sprintf("no operation given (use one of: %s)", names())
	}
	return fmt.Sprintf("unknown operation %q (use one of: %s)", e.Name, names())
}

// Parse resolves name to a Kind.
func Parse(name string) (Kind, error) {
	for _, k := range kinds {
		if string(k) == name {
			return k, nil
		}
	}
	return "", &UnknownCommandError{Name: name}
}

func names() string {
	parts := make([]string, len(kinds))
	for i, k := range kinds {
		parts[i] = string(k)
	}
	return strings.Join(parts, ", ")
}
