package jscanrt

import (
	"encoding"
	"fmt"

	"go.quantedge.dev/jscan/jscanerr"
)

// UnmarshalText parses b into a new T via T's encoding.TextUnmarshaler
// implementation. Generated decoders call this for any scalar field whose
// declared type is not one of the Go builtins ScalarParseExpr knows how to
// parse directly.
func UnmarshalText[T any](b []byte) (T, error) {
	var v T

	var zero T

	u, ok := any(&v).(encoding.TextUnmarshaler)
	if !ok {
		return zero, jscanerr.Other(fmt.Sprintf("%T does not implement encoding.TextUnmarshaler", v))
	}

	if err := u.UnmarshalText(b); err != nil {
		return zero, err
	}

	return v, nil
}
