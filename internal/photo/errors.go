package photo

import (
	"errors"
	"fmt"
)

// Kind classifies why a file could not be organized.
type Kind int

const (
	KindInputDirNotFound      Kind = iota + 1 // Input directory missing or unreadable (fatal).
	KindPatternMismatch                       // Filename is not IMG_YYYYMMDD_*.jpg.
	KindInvalidDate                           // Digits do not form a calendar date.
	KindDirectoryCreateFailed                 // Destination tree could not be created.
	KindCopyFailed                            // Reading the source or writing the copy failed.
)

// String returns the kind name used in log fields.
func (k Kind) String() string {
	switch k {
	case KindInputDirNotFound:
		return "InputDirNotFound"
	case KindPatternMismatch:
		return "PatternMismatch"
	case KindInvalidDate:
		return "InvalidDate"
	case KindDirectoryCreateFailed:
		return "DirectoryCreateFailed"
	case KindCopyFailed:
		return "CopyFailed"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Sentinels for errors.Is checks; they match any *Error of the same kind.
var (
	ErrInputDirNotFound      = &Error{Kind: KindInputDirNotFound}
	ErrPatternMismatch       = &Error{Kind: KindPatternMismatch}
	ErrInvalidDate           = &Error{Kind: KindInvalidDate}
	ErrDirectoryCreateFailed = &Error{Kind: KindDirectoryCreateFailed}
	ErrCopyFailed            = &Error{Kind: KindCopyFailed}
)

// Error is a classified failure for one path. Msg is the human-readable
// description; Err, when set, is the underlying cause.
type Error struct {
	Kind Kind
	Path string
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	switch {
	case e.Msg != "" && e.Err != nil:
		return e.Msg + ": " + e.Err.Error()
	case e.Msg != "":
		return e.Msg
	case e.Err != nil:
		return e.Err.Error()
	default:
		return e.Kind.String()
	}
}

func (e *Error) Unwrap() error { return e.Err }

// Is reports whether target is an *Error with the same Kind.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return t.Kind == e.Kind
}

// KindOf returns the Kind of the first *Error in err's chain, or 0.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}
