package svgicon

import (
	"errors"
	"fmt"
	"log"
)

// ErrorKind classifies the reasons an icon may be rejected.
type ErrorKind uint8

const (
	// MalformedSource indicates the input is not usable SVG markup
	// (broken XML, truncated file, invalid attribute values).
	MalformedSource ErrorKind = iota
	// UnsupportedElement indicates valid SVG relying on features
	// outside the supported subset (gradients, filters, text, ...).
	UnsupportedElement
	// EmptyGeometry indicates a valid document containing no
	// drawable geometry.
	EmptyGeometry
)

func (k ErrorKind) String() string {
	switch k {
	case MalformedSource:
		return "malformed source"
	case UnsupportedElement:
		return "unsupported element"
	case EmptyGeometry:
		return "empty geometry"
	default:
		return fmt.Sprintf("ErrorKind(%d)", k)
	}
}

// Error is the error type returned for a rejected icon. Callers may
// inspect Kind (via errors.As) to distinguish broken inputs from
// unsupported ones.
type Error struct {
	Cause error
	Msg   string
	Kind  ErrorKind
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %s", e.Kind, e.Msg, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

func (e *Error) Unwrap() error { return e.Cause }

func malformed(cause error, format string, args ...interface{}) *Error {
	return &Error{Kind: MalformedSource, Msg: fmt.Sprintf(format, args...), Cause: cause}
}

func unsupported(format string, args ...interface{}) *Error {
	return &Error{Kind: UnsupportedElement, Msg: fmt.Sprintf(format, args...)}
}

func emptyGeometry(format string, args ...interface{}) *Error {
	return &Error{Kind: EmptyGeometry, Msg: fmt.Sprintf(format, args...)}
}

// asIconError keeps classified errors as they are and treats anything
// else surfacing from attribute or path parsing as a malformed source.
func asIconError(err error) error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return err
	}
	return malformed(err, "invalid svg content")
}

// ErrorMode controls how the parser reacts to unsupported SVG features.
type ErrorMode uint8

const (
	// IgnoreErrorMode skips unsupported features silently.
	IgnoreErrorMode ErrorMode = iota
	// WarnErrorMode skips unsupported features with a log message.
	WarnErrorMode
	// StrictErrorMode aborts the parse on unsupported features.
	StrictErrorMode
)

// handleUnsupported applies the error mode to an unsupported feature,
// returning a non nil error only in strict mode.
func (c *iconCursor) handleUnsupported(format string, args ...interface{}) error {
	switch c.errorMode {
	case StrictErrorMode:
		return unsupported(format, args...)
	case WarnErrorMode:
		log.Printf(format, args...)
	}
	return nil
}

var errParamMismatch = errors.New("param mismatch")
