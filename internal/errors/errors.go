// Package errors provides structured error types for the Tally application.
// These errors provide context about what operation failed and where.
package errors

import (
	"errors"
	"fmt"
)

// Op describes an operation, usually as "package.function".
type Op string

// Kind categorizes the type of error.
type Kind int

const (
	KindUnknown Kind = iota
	KindTooLong
	KindEmptyExpression
	KindInvalidFormat
	KindMalformed
	KindDivisionByZero
	KindInvalidOperand
	KindNonFinite
	KindConfig
	KindIO
)

func (k Kind) String() string {
	switch k {
	case KindTooLong:
		return "expression too long"
	case KindEmptyExpression:
		return "empty expression"
	case KindInvalidFormat:
		return "invalid format"
	case KindMalformed:
		return "malformed expression"
	case KindDivisionByZero:
		return "division by zero"
	case KindInvalidOperand:
		return "invalid operand"
	case KindNonFinite:
		return "non-finite result"
	case KindConfig:
		return "configuration error"
	case KindIO:
		return "I/O error"
	default:
		return "unknown error"
	}
}

// Error is the structured error type for Tally.
type Error struct {
	Op      Op     // Operation that failed
	Kind    Kind   // Category of error
	Err     error  // Underlying error
	Context string // Additional context
}

// Error returns the error message.
func (e *Error) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s: %s: %s", e.Op, e.Context, e.Err)
	}
	if e.Op != "" {
		return fmt.Sprintf("%s: %s", e.Op, e.Err)
	}
	return e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// E creates a new Error. Arguments can be:
// - Op: the operation name
// - Kind: the error kind
// - string: context message
// - error: the underlying error
func E(args ...interface{}) error {
	e := &Error{}
	for _, arg := range args {
		switch a := arg.(type) {
		case Op:
			e.Op = a
		case Kind:
			e.Kind = a
		case string:
			e.Context = a
		case error:
			e.Err = a
		}
	}
	if e.Err == nil {
		e.Err = errors.New(e.Context)
		e.Context = ""
	}
	return e
}

// Is reports whether err is of the given Kind.
func Is(err error, kind Kind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// Message returns the human-readable message without the operation prefix,
// suitable for showing to the user.
func Message(err error) string {
	var e *Error
	if errors.As(err, &e) {
		if e.Context != "" {
			return e.Context
		}
		return e.Err.Error()
	}
	return err.Error()
}

// GetKind returns the Kind of an error.
func GetKind(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// Engine errors
func ExpressionTooLong(max int) error {
	return E(Op("engine.Append"), KindTooLong, fmt.Sprintf("expression exceeds %d characters", max))
}

func EmptyExpression() error {
	return E(Op("engine.Calculate"), KindEmptyExpression, "no expression to calculate")
}

func InvalidFormat(expr string) error {
	return E(Op("engine.Validate"), KindInvalidFormat, fmt.Sprintf("expression %q contains disallowed characters", expr))
}

func MalformedExpression(detail string) error {
	return E(Op("engine.Evaluate"), KindMalformed, detail)
}

func DivisionByZero() error {
	return E(Op("engine.Evaluate"), KindDivisionByZero, "division by zero")
}

func InvalidOperand(expr string) error {
	return E(Op("engine.Percentage"), KindInvalidOperand, fmt.Sprintf("%q is not a numeric value", expr))
}

func NonFiniteResult() error {
	return E(Op("engine.Evaluate"), KindNonFinite, "result is not a finite number")
}

// Config errors
func ConfigLoadFailed(path string, err error) error {
	return E(Op("config.Load"), KindConfig, fmt.Sprintf("failed to load config from %s", path), err)
}

func ConfigSaveFailed(path string, err error) error {
	return E(Op("config.Save"), KindConfig, fmt.Sprintf("failed to save config to %s", path), err)
}
