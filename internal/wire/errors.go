package wire

import (
	"fmt"
	"strings"
)

// ErrorKind classifies a diagnostic by the pipeline stage that produced it.
type ErrorKind uint8

const (
	LexError      ErrorKind = iota // unscannable character
	SyntaxError                    // unexpected token at a grammar position
	SemanticError                  // duplicate id, unknown style, bad attribute value
	RenderError                    // no visual recipe for a node kind
)

// String returns the kind's diagnostic label.
func (k ErrorKind) String() string {
	switch k {
	case LexError:
		return "lex"
	case SyntaxError:
		return "syntax"
	case SemanticError:
		return "semantic"
	case RenderError:
		return "render"
	default:
		return "unknown"
	}
}

// Error is a positioned diagnostic. No pipeline stage aborts on one; errors
// accumulate and a best-effort result is still produced.
type Error struct {
	Kind    ErrorKind
	Pos     Position
	Message string
	Hint    string // optional suggestion for fixing the problem
}

// Error implements the error interface.
func (e *Error) Error() string {
	var sb strings.Builder
	sb.WriteString(e.Pos.String())
	sb.WriteString(": ")
	sb.WriteString(e.Kind.String())
	sb.WriteString(" error: ")
	sb.WriteString(e.Message)
	if e.Hint != "" {
		sb.WriteString(" (")
		sb.WriteString(e.Hint)
		sb.WriteString(")")
	}
	return sb.String()
}

// NewError creates an Error with the given kind, position, and message.
func NewError(kind ErrorKind, pos Position, message string) *Error {
	return &Error{Kind: kind, Pos: pos, Message: message}
}

// NewErrorf creates an Error with a formatted message.
func NewErrorf(kind ErrorKind, pos Position, format string, args ...any) *Error {
	return &Error{Kind: kind, Pos: pos, Message: fmt.Sprintf(format, args...)}
}

// ErrorList collects diagnostics across compilation stages.
type ErrorList struct {
	errors []*Error
}

// NewErrorList creates an empty error list.
func NewErrorList() *ErrorList {
	return &ErrorList{}
}

// Add appends an error to the list.
func (el *ErrorList) Add(err *Error) {
	el.errors = append(el.errors, err)
}

// AddError creates and adds an error with the given kind, position, and message.
func (el *ErrorList) AddError(kind ErrorKind, pos Position, message string) {
	el.errors = append(el.errors, NewError(kind, pos, message))
}

// AddErrorf creates and adds an error with a formatted message.
func (el *ErrorList) AddErrorf(kind ErrorKind, pos Position, format string, args ...any) {
	el.errors = append(el.errors, NewErrorf(kind, pos, format, args...))
}

// Merge appends all errors from other.
func (el *ErrorList) Merge(other *ErrorList) {
	if other == nil {
		return
	}
	el.errors = append(el.errors, other.errors...)
}

// Len returns the number of errors.
func (el *ErrorList) Len() int {
	return len(el.errors)
}

// HasErrors returns true if there are any errors.
func (el *ErrorList) HasErrors() bool {
	return len(el.errors) > 0
}

// Errors returns a copy of the error slice.
func (el *ErrorList) Errors() []*Error {
	result := make([]*Error, len(el.errors))
	copy(result, el.errors)
	return result
}

// Error implements the error interface, returning all errors joined by newlines.
func (el *ErrorList) Error() string {
	if len(el.errors) == 0 {
		return ""
	}
	var sb strings.Builder
	for i, err := range el.errors {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(err.Error())
	}
	return sb.String()
}

// Err returns nil if the list is empty, otherwise the list itself.
func (el *ErrorList) Err() error {
	if len(el.errors) == 0 {
		return nil
	}
	return el
}
