package feedback

import (
	"errors"
	"fmt"
)

// Kind classifies every failure the handler can report.
type Kind int

const (
	KindUnknown Kind = iota
	KindMethodNotAllowed
	KindMissingField
	KindAnalysisFailure
	KindStorageFailure
)

func (k Kind) String() string {
	switch k {
	case KindMethodNotAllowed:
		return "method_not_allowed"
	case KindMissingField:
		return "missing_field"
	case KindAnalysisFailure:
		return "analysis_failure"
	case KindStorageFailure:
		return "storage_failure"
	default:
		return "unknown"
	}
}

// Public messages for the two client errors.
const (
	MsgMethodNotAllowed = "Method Not Allowed"
	MsgMissingField     = "Missing 'message' field"
)

var (
	ErrMethodNotAllowed = &Error{Kind: KindMethodNotAllowed, Err: errors.New(MsgMethodNotAllowed)}
	ErrMissingField     = &Error{Kind: KindMissingField, Err: errors.New(MsgMissingField)}
)

// Error carries a Kind alongside the underlying cause.
type Error struct {
	Kind Kind
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return e.Kind.String()
	}
	return e.Err.Error()
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches any *Error of the same Kind, so errors.Is(err, ErrMissingField) works
// for wrapped copies.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

// AnalysisFailure wraps a completion or parsing error.
func AnalysisFailure(err error) error {
	return &Error{Kind: KindAnalysisFailure, Err: err}
}

// StorageFailure wraps a connect, insert, or commit error.
func StorageFailure(err error) error {
	return &Error{Kind: KindStorageFailure, Err: err}
}

// AnalysisFailuref formats a new analysis failure.
func AnalysisFailuref(format string, args ...any) error {
	return AnalysisFailure(fmt.Errorf(format, args...))
}

// KindOf reports the Kind of err, or KindUnknown.
func KindOf(err error) Kind {
	var fe *Error
	if errors.As(err, &fe) {
		return fe.Kind
	}
	return KindUnknown
}
