package domain

import (
	"errors"
	"fmt"
)

// ErrorKind classifies failures crossing the connector boundary.
type ErrorKind int

const (
	KindOther ErrorKind = iota
	KindNotFound
	KindConnector
	KindInvalidArg
	KindUnsupported
	KindData
)

func (k ErrorKind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindConnector:
		return "connector"
	case KindInvalidArg:
		return "invalid_arg"
	case KindUnsupported:
		return "unsupported"
	case KindData:
		return "data"
	default:
		return "other"
	}
}

// Error is the canonical error value returned by connectors. Values are built
// fresh per call and never mutated afterwards.
type Error struct {
	Kind ErrorKind
	// Connector names the provider that failed; set only for KindConnector.
	Connector string
	Message   string
}

// Sentinels for errors.Is. A sentinel matches any Error of the same kind.
var (
	ErrNotFound    = &Error{Kind: KindNotFound}
	ErrConnector   = &Error{Kind: KindConnector}
	ErrInvalidArg  = &Error{Kind: KindInvalidArg}
	ErrUnsupported = &Error{Kind: KindUnsupported}
	ErrData        = &Error{Kind: KindData}
	ErrOther       = &Error{Kind: KindOther}
)

func (e *Error) Error() string {
	switch e.Kind {
	case KindNotFound:
		return "not found: " + e.Message
	case KindConnector:
		return fmt.Sprintf("connector %s: %s", e.Connector, e.Message)
	case KindInvalidArg:
		return "invalid argument: " + e.Message
	case KindUnsupported:
		return "unsupported: " + e.Message
	case KindData:
		return "data error: " + e.Message
	default:
		return e.Message
	}
}

// Is reports whether target is the sentinel for e's kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind && t.Connector == "" && t.Message == ""
}

func NotFound(what string) *Error {
	return &Error{Kind: KindNotFound, Message: what}
}

func ConnectorError(connector, msg string) *Error {
	return &Error{Kind: KindConnector, Connector: connector, Message: msg}
}

func InvalidArg(msg string) *Error {
	return &Error{Kind: KindInvalidArg, Message: msg}
}

func Unsupported(msg string) *Error {
	return &Error{Kind: KindUnsupported, Message: msg}
}

func DataError(msg string) *Error {
	return &Error{Kind: KindData, Message: msg}
}

func OtherError(msg string) *Error {
	return &Error{Kind: KindOther, Message: msg}
}

// AsError unwraps err to a canonical *Error if it carries one.
func AsError(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// KindOf returns the canonical kind of err. Errors outside the taxonomy are
// KindOther.
func KindOf(err error) ErrorKind {
	if e, ok := AsError(err); ok {
		return e.Kind
	}
	return KindOther
}
