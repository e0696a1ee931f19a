package lazyfield

import (
	"unsafe"

	"go.quantedge.dev/jscan/jscanerr"
)

// Field binds a byte span to a target type T. Use [From] to construct one
// from a span and a conversion function; use [Field.AsSlice] or
// [Field.AsStr] for zero-cost access to the raw bytes, or [Field.Get] /
// [Field.GetRef] to parse (once) and read the typed value.
type Field[T any] struct {
	bytes    []byte
	parse    func([]byte) (T, error)
	parsed   T
	isParsed bool
}

// From constructs a Field over bytes, deferring any parsing until the first
// call to [Field.Get] or [Field.GetRef]. parse converts the raw span into T;
// it is called at most once per Field.
func From[T any](bytes []byte, parse func([]byte) (T, error)) Field[T] {
	return Field[T]{bytes: bytes, parse: parse}
}

// AsSlice returns the field's raw byte span without parsing it. The
// returned slice aliases the buffer the Field was constructed over.
func (f *Field[T]) AsSlice() []byte {
	return f.bytes
}

// AsStr returns the field's raw span as a string without parsing it, and
// without copying the underlying bytes. Callers must not mutate the bytes
// backing the Field's buffer through any other reference while holding this
// string; the input is assumed to be valid UTF-8 (ASCII for the market-data
// feeds this module targets) and is not validated.
func (f *Field[T]) AsStr() string {
	if len(f.bytes) == 0 {
		return ""
	}

	return unsafe.String(&f.bytes[0], len(f.bytes))
}

// GetRef parses the field's span into T if it has not already been parsed,
// memoizes the result, and returns a pointer to it. Subsequent calls return
// the same memoized value without reparsing. Returns a [jscanerr.ErrParse]
// error, carrying the offending text, if parsing fails.
func (f *Field[T]) GetRef() (*T, error) {
	if !f.isParsed {
		v, err := f.parse(f.bytes)
		if err != nil {
			return nil, jscanerr.Parse(string(f.bytes), err)
		}

		f.parsed = v
		f.isParsed = true
	}

	return &f.parsed, nil
}

// Get is [Field.GetRef] returning a copy of the parsed value rather than a
// pointer to it.
func (f *Field[T]) Get() (T, error) {
	ref, err := f.GetRef()
	if err != nil {
		var zero T

		return zero, err
	}

	return *ref, nil
}
