// Package apperrors defines the error kinds returned across the service and
// storage layers. Callers branch on Kind rather than on concrete store or
// library error types.
package apperrors

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Kind classifies an error.
type Kind int

const (
	KindInternal Kind = iota
	KindInvalidArgument
	KindValidation
	KindNotFound
	KindUnauthorized
	KindAlreadyExists
)

func (k Kind) String() string {
	switch k {
	case KindInvalidArgument:
		return "INVALID_ARGUMENT"
	case KindValidation:
		return "VALIDATION_ERROR"
	case KindNotFound:
		return "NOT_FOUND"
	case KindUnauthorized:
		return "UNAUTHORIZED"
	case KindAlreadyExists:
		return "ALREADY_EXISTS"
	default:
		return "INTERNAL_ERROR"
	}
}

// Error is the concrete error type for every Kind.
type Error struct {
	Kind    Kind
	Message string
	// Fields holds field -> messages for KindValidation.
	Fields map[string][]string

	cause string
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(e.Kind.String())
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	if len(e.Fields) > 0 {
		keys := make([]string, 0, len(e.Fields))
		for k := range e.Fields {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Fprintf(&b, "; %s: %s", k, strings.Join(e.Fields[k], ", "))
		}
	}
	if e.cause != "" {
		b.WriteString(": ")
		b.WriteString(e.cause)
	}
	return b.String()
}

// Is matches another *Error of the same Kind, so errors.Is(err, ErrNotFound)
// works for any not-found error.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

var (
	ErrInvalidArgument = &Error{Kind: KindInvalidArgument}
	ErrValidation      = &Error{Kind: KindValidation}
	ErrNotFound        = &Error{Kind: KindNotFound}
	ErrUnauthorized    = &Error{Kind: KindUnauthorized}
	ErrAlreadyExists   = &Error{Kind: KindAlreadyExists}
	ErrInternal        = &Error{Kind: KindInternal}
)

func InvalidArgument(format string, args ...any) *Error {
	return &Error{Kind: KindInvalidArgument, Message: fmt.Sprintf(format, args...)}
}

// Validation carries every violated rule, keyed by field.
func Validation(fields map[string][]string) *Error {
	return &Error{Kind: KindValidation, Message: "one or more validation errors occurred", Fields: fields}
}

func NotFound(entity, id string) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf("%s with id %q was not found", entity, id)}
}

func Unauthorized(message string) *Error {
	return &Error{Kind: KindUnauthorized, Message: message}
}

func AlreadyExists(message string) *Error {
	return &Error{Kind: KindAlreadyExists, Message: message}
}

// Internal records the cause text without keeping the cause itself, so
// driver error types never escape through errors.As.
func Internal(op string, cause error) *Error {
	e := &Error{Kind: KindInternal, Message: op}
	if cause != nil {
		e.cause = cause.Error()
	}
	return e
}

// KindOf returns the Kind of err, or KindInternal when err is not an *Error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// Is reports whether err carries the given Kind.
func Is(err error, kind Kind) bool {
	if err == nil {
		return false
	}
	return KindOf(err) == kind
}

// FieldsOf returns the validation fields of err, if any.
func FieldsOf(err error) map[string][]string {
	var e *Error
	if errors.As(err, &e) {
		return e.Fields
	}
	return nil
}
