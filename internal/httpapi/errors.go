package httpapi

import (
	"errors"
	"fmt"
)

// Kind classifies a lookup failure
type Kind int

const (
	KindTransport     Kind = iota + 1 // network or connection error
	KindHTTPStatus                    // non-2xx response
	KindParse                         // malformed or unexpected JSON
	KindNoCandidate                   // geocoder returned zero results
	KindIndexMismatch                 // hourly arrays disagree in length
	KindInvalidInput                  // rejected before any request was issued
)

func (k Kind) String() string {
	switch k {
	case KindTransport:
		return "transport failure"
	case KindHTTPStatus:
		return "http status failure"
	case KindParse:
		return "parse failure"
	case KindNoCandidate:
		return "no candidate"
	case KindIndexMismatch:
		return "index mismatch"
	case KindInvalidInput:
		return "invalid input"
	}
	return "unknown failure"
}

// Sentinels for errors.Is. They match any *Error of the same kind.
var (
	ErrTransport     = &Error{Kind: KindTransport}
	ErrHTTPStatus    = &Error{Kind: KindHTTPStatus}
	ErrParse         = &Error{Kind: KindParse}
	ErrNoCandidate   = &Error{Kind: KindNoCandidate}
	ErrIndexMismatch = &Error{Kind: KindIndexMismatch}
	ErrInvalidInput  = &Error{Kind: KindInvalidInput}
)

// Error is a classified failure from a lookup step
type Error struct {
	Kind       Kind
	Op         string // e.g. "geocode", "forecast", "extract"
	StatusCode int    // set for KindHTTPStatus
	Message    string
	Err        error
}

func (e *Error) Error() string {
	msg := e.Kind.String()
	if e.Op != "" {
		msg = e.Op + ": " + msg
	}
	if e.StatusCode != 0 {
		msg += fmt.Sprintf(" (status %d)", e.StatusCode)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is an *Error of the same kind
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// KindOf returns the kind of the first *Error in err's chain, or 0
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}

// UserMessage returns a short message for the given failure, distinct per kind
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	var e *Error
	if !errors.As(err, &e) {
		return "Something went wrong: " + err.Error()
	}
	switch e.Kind {
	case KindTransport:
		return "Could not reach the weather service. Check your network connection."
	case KindHTTPStatus:
		if e.StatusCode != 0 {
			return fmt.Sprintf("The weather service returned an error (HTTP %d).", e.StatusCode)
		}
		return "The weather service returned an error."
	case KindParse:
		return "The weather service sent a response that could not be read."
	case KindNoCandidate:
		return "No matching location found. Try a different place name."
	case KindIndexMismatch:
		return "The forecast data was incomplete."
	case KindInvalidInput:
		return "Enter a place name to search."
	}
	return "Something went wrong: " + err.Error()
}
