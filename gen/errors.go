package gen

import "errors"

// Sentinel errors returned by the generator. Wrap with fmt.Errorf and %w;
// unwrap with errors.Is.
var (
	// ErrUnknownDirective indicates a struct tag directive key
	// outside the enumerated set (spec.md §6: "Unrecognized directive keys
	// are a compile-time error").
	ErrUnknownDirective = errors.New("unknown directive")
	// ErrUnresolvedType indicates a declared Go type has no JSON category
	// and no ty override (spec.md §4.3.2).
	ErrUnresolvedType = errors.New("only primitives, text strings, and sequences are allowed")
	// ErrInvalidElement indicates an array field's element type is neither
	// marked with the decoder directive nor resolvable as a tuple struct.
	ErrInvalidElement = errors.New("invalid array element type")
	// ErrInvalidSchema indicates a YAML schema document failed validation
	// against the schema-language meta-schema.
	ErrInvalidSchema = errors.New("invalid schema document")
	// ErrReadSchema indicates a schema source could not be read or parsed.
	ErrReadSchema = errors.New("read schema")
)
