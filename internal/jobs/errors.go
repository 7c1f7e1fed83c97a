package jobs

import (
	"errors"
	"fmt"

	"github.com/projkit-labs/projkit/internal/tools"
)

// Kind classifies how far a failure propagates.
type Kind int

const (
	// KindFatal aborts the whole run before any job starts.
	KindFatal Kind = iota
	// KindPerJob fails one tool's job; the others still run.
	KindPerJob
	// KindConflict is informational: a file was left untouched.
	KindConflict
)

func (k Kind) String() string {
	switch k {
	case KindFatal:
		return "fatal"
	case KindPerJob:
		return "job"
	case KindConflict:
		return "conflict"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Error is a classified failure. Tool is empty for fatal errors.
type Error struct {
	Kind Kind
	Tool tools.ToolName
	Err  error
}

func (e *Error) Error() string {
	if e.Tool == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: %v", e.Tool, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// KindOf returns the kind of the first *Error in err's chain.
func KindOf(err error) (Kind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return 0, false
}

// IsFatal reports whether err aborts the run.
func IsFatal(err error) bool {
	k, ok := KindOf(err)
	return ok && k == KindFatal
}
