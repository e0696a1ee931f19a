// Package jscanerr defines the error taxonomy shared by [lazyfield] and
// generated decoders: a missing required field, a value
// that failed to parse into its target type, and a catchall reserved for
// callers embedding this module in a larger application.
//
// Errors are sentinel values wrapped with [fmt.Errorf] and %w, so callers
// use [errors.Is] to classify them:
//
//	view, err := NewTradeDecoder(bytes)
//	if errors.Is(err, jscanerr.ErrMissingField) {
//	    // a required field was absent from the input
//	}
package jscanerr
