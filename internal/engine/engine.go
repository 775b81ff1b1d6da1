// Package engine implements the calculator expression engine: a bounded
// input buffer, a character-class validator, a restricted arithmetic
// evaluator, and a canonical result formatter.
//
// The engine is the only stateful piece of the calculator. It is
// single-threaded by design; concurrent callers must serialize access.
package engine

import (
	"log/slog"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/zhubert/tally/internal/errors"
)

// MaxExpressionLength bounds the in-progress expression buffer.
const MaxExpressionLength = 20

// Buffer is the in-progress expression text, stored with display glyphs.
// Transition methods return a new Buffer instead of mutating, so callers can
// keep or discard candidate states freely.
type Buffer string

// Append concatenates token onto the buffer. It fails when the buffer is
// already at MaxExpressionLength; the receiver is returned unchanged then.
func (b Buffer) Append(token string) (Buffer, error) {
	if utf8.RuneCountInString(string(b)) >= MaxExpressionLength {
		return b, errors.ExpressionTooLong(MaxExpressionLength)
	}
	return b + Buffer(token), nil
}

// Backspace removes the last character. Empty buffers are a no-op, not an
// error.
func (b Buffer) Backspace() Buffer {
	if b == "" {
		return b
	}
	runes := []rune(string(b))
	return Buffer(runes[:len(runes)-1])
}

// ToggleSign adds or removes a leading minus. It operates on the leading
// character only: toggling "5+3" yields "-5+3", not "5+-3".
func (b Buffer) ToggleSign() Buffer {
	if b == "" {
		return b
	}
	if strings.HasPrefix(string(b), "-") {
		return b[1:]
	}
	return "-" + b
}

// State describes what the buffer currently holds.
type State int

const (
	StateEmpty        State = iota // Nothing entered yet
	StateAccumulating              // Expression under construction
	StateResult                    // Buffer holds a formatted result
)

// String returns a human-readable name for the state
func (s State) String() string {
	switch s {
	case StateEmpty:
		return "Empty"
	case StateAccumulating:
		return "Accumulating"
	case StateResult:
		return "Result"
	default:
		return "Unknown"
	}
}

// Engine owns one expression buffer and reports structured events to the
// injected logger. A nil logger discards events.
type Engine struct {
	buf   Buffer
	state State
	log   *slog.Logger
}

// New creates an engine with an empty buffer.
func New(log *slog.Logger) *Engine {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Engine{log: log}
}

// Expression returns the current buffer contents.
func (e *Engine) Expression() string {
	return string(e.buf)
}

// State returns the buffer-level state.
func (e *Engine) State() State {
	return e.state
}

// Press appends a digit or operator token and returns the new buffer
// contents. The buffer is unchanged on failure.
func (e *Engine) Press(token string) (string, error) {
	next, err := e.buf.Append(token)
	if err != nil {
		e.log.Warn("append rejected", "expression", string(e.buf), "token", token)
		return "", err
	}
	e.buf = next
	e.state = StateAccumulating
	e.log.Debug("append", "expression", string(e.buf))
	return string(e.buf), nil
}

// Backspace removes the last character and returns the new buffer contents.
func (e *Engine) Backspace() string {
	e.buf = e.buf.Backspace()
	if e.buf == "" {
		e.state = StateEmpty
	} else {
		e.state = StateAccumulating
	}
	return string(e.buf)
}

// Clear resets the buffer to empty.
func (e *Engine) Clear() string {
	e.buf = ""
	e.state = StateEmpty
	e.log.Debug("cleared")
	return ""
}

// ToggleSign toggles a leading minus and returns the new buffer contents.
func (e *Engine) ToggleSign() string {
	e.buf = e.buf.ToggleSign()
	if e.buf == "" {
		e.state = StateEmpty
	} else {
		e.state = StateAccumulating
	}
	e.log.Debug("sign toggled", "expression", string(e.buf))
	return string(e.buf)
}

// Calculate validates, evaluates, and formats the buffered expression. On
// success the formatted result replaces the buffer so further input chains
// onto it. On failure the buffer is left untouched and the engine remains
// usable.
func (e *Engine) Calculate() (string, error) {
	if e.buf == "" {
		return "", errors.EmptyExpression()
	}

	normalized := Normalize(string(e.buf))
	if !Validate(normalized) {
		e.log.Warn("validation failed", "expression", normalized)
		return "", errors.InvalidFormat(normalized)
	}

	result, err := Evaluate(normalized)
	if err != nil {
		e.log.Warn("evaluation failed", "expression", normalized, "error", err)
		return "", err
	}

	formatted := FormatResult(result)
	e.buf = Buffer(formatted)
	e.state = StateResult
	e.log.Info("calculation", "expression", normalized, "result", formatted)
	return formatted, nil
}

// Percentage divides the buffered value by 100 and replaces the buffer with
// the formatted result. The buffer must hold a single numeric literal; a
// pending expression like "5+3" is an InvalidOperand.
func (e *Engine) Percentage() (string, error) {
	if e.buf == "" {
		return "", errors.EmptyExpression()
	}

	value, err := strconv.ParseFloat(string(e.buf), 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		e.log.Warn("percentage rejected", "expression", string(e.buf))
		return "", errors.InvalidOperand(string(e.buf))
	}

	formatted := FormatResult(value / 100)
	e.buf = Buffer(formatted)
	e.state = StateResult
	e.log.Info("percentage", "result", formatted)
	return formatted, nil
}
