package jscanerr

import (
	"errors"
	"fmt"
)

// Sentinel errors. Wrap with fmt.Errorf("%w: ...", ...) and unwrap with
// errors.Is/errors.As.
var (
	// ErrMissingField indicates a scanner extractor returned absent where
	// a schema-declared field was required.
	ErrMissingField = errors.New("missing field")
	// ErrParse indicates a span could not be converted to its target type.
	ErrParse = errors.New("parse error")
	// ErrOther is a catchall reserved for callers; the core never raises it.
	ErrOther = errors.New("other error")
)

// MissingField wraps [ErrMissingField] with the schema-declared field name
// that could not be extracted from the input.
func MissingField(name string) error {
	return fmt.Errorf("%w: %s", ErrMissingField, name)
}

// Parse wraps [ErrParse] with the offending text and the underlying
// conversion error.
func Parse(text string, cause error) error {
	return fmt.Errorf("%w: %q: %w", ErrParse, text, cause)
}

// Other wraps [ErrOther] with a message. Within this module only
// jscanrt.UnmarshalText returns it, for a target type that does not
// implement encoding.TextUnmarshaler; otherwise it is provided for host
// applications that want a uniform error type across this taxonomy and
// their own.
func Other(msg string) error {
	return fmt.Errorf("%w: %s", ErrOther, msg)
}
