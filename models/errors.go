package models

import "fmt"

// ErrorKind identifies the class of a render failure
type ErrorKind string

const (
	KindInvalidBoatClass     ErrorKind = "invalid_boat_class"
	KindRosterMismatch       ErrorKind = "roster_mismatch"
	KindUnknownTemplate      ErrorKind = "unknown_template"
	KindEmblemInvalid        ErrorKind = "emblem_invalid"
	KindSerializationFailure ErrorKind = "serialization_failure"
	KindInvalidDimensions    ErrorKind = "invalid_dimensions"
	KindInvalidColor         ErrorKind = "invalid_color"
	KindPresetNotFound       ErrorKind = "preset_not_found"
	KindInvalidFormat        ErrorKind = "invalid_format"
)

// RenderError is the typed failure returned by the render pipeline.
// Expected and Actual carry counts for roster mismatches and are zero otherwise.
type RenderError struct {
	Kind     ErrorKind
	Message  string
	Expected int
	Actual   int
	Err      error
}

// Sentinels for errors.Is. Only the Kind is compared.
var (
	ErrInvalidBoatClass     = &RenderError{Kind: KindInvalidBoatClass}
	ErrRosterMismatch       = &RenderError{Kind: KindRosterMismatch}
	ErrUnknownTemplate      = &RenderError{Kind: KindUnknownTemplate}
	ErrEmblemInvalid        = &RenderError{Kind: KindEmblemInvalid}
	ErrSerializationFailure = &RenderError{Kind: KindSerializationFailure}
	ErrInvalidDimensions    = &RenderError{Kind: KindInvalidDimensions}
	ErrInvalidColor         = &RenderError{Kind: KindInvalidColor}
	ErrPresetNotFound       = &RenderError{Kind: KindPresetNotFound}
	ErrInvalidFormat        = &RenderError{Kind: KindInvalidFormat}
)

func (e *RenderError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = string(e.Kind)
	}
	if e.Kind == KindRosterMismatch && (e.Expected != 0 || e.Actual != 0) {
		msg = fmt.Sprintf("%s (expected %d, got %d)", msg, e.Expected, e.Actual)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *RenderError) Unwrap() error {
	return e.Err
}

// Is reports whether target is a RenderError of the same kind
func (e *RenderError) Is(target error) bool {
	t, ok := target.(*RenderError)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// Structural reports whether the error stems from caller-supplied data
func (e *RenderError) Structural() bool {
	switch e.Kind {
	case KindSerializationFailure:
		return false
	default:
		return true
	}
}

// NewRenderError creates a RenderError of the given kind
func NewRenderError(kind ErrorKind, format string, args ...interface{}) *RenderError {
	return &RenderError{
		Kind:    kind,
		Message: fmt.Sprintf(format, args...),
	}
}

// NewRosterMismatch creates a RosterMismatch error carrying expected vs actual counts
func NewRosterMismatch(message string, expected, actual int) *RenderError {
	return &RenderError{
		Kind:     KindRosterMismatch,
		Message:  message,
		Expected: expected,
		Actual:   actual,
	}
}
