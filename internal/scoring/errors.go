package scoring

import (
	"errors"
	"fmt"
)

// Kind discriminates engine failures so boundary layers can map each one
// to a transport status deterministically.
type Kind int

const (
	// KindInvalidInput covers malformed dates, start after end, ratings
	// outside [1,5] and nil/empty ratings maps. Detected before any
	// persistence call.
	KindInvalidInput Kind = iota + 1
	// KindNoData marks a period with zero rows where the caller's
	// semantics require data to exist. Distinct from a zero-valued score.
	KindNoData
	// KindUpstream wraps a persistence or directory failure.
	KindUpstream
)

func (k Kind) String() string {
	switch k {
	case KindInvalidInput:
		return "invalid input"
	case KindNoData:
		return "no data"
	case KindUpstream:
		return "upstream failure"
	default:
		return "unknown"
	}
}

// Error carries a kind, a message and an optional cause.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	switch {
	case e.Msg != "" && e.Err != nil:
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Msg, e.Err)
	case e.Msg != "":
		return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Kind, e.Err)
	default:
		return e.Kind.String()
	}
}

func (e *Error) Unwrap() error { return e.Err }

// InvalidInputf builds a KindInvalidInput error.
func InvalidInputf(format string, args ...any) *Error {
	return &Error{Kind: KindInvalidInput, Msg: fmt.Sprintf(format, args...)}
}

// NoDataf builds a KindNoData error.
func NoDataf(format string, args ...any) *Error {
	return &Error{Kind: KindNoData, Msg: fmt.Sprintf(format, args...)}
}

// Upstream wraps a collaborator failure.
func Upstream(msg string, err error) *Error {
	return &Error{Kind: KindUpstream, Msg: msg, Err: err}
}

// IsKind reports whether err (or anything it wraps) is an engine error of
// the given kind.
func IsKind(err error, k Kind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == k
}
