// Package scanner implements a stateful, allocation-free cursor over a
// borrowed byte buffer that extracts span coordinates for the next JSON
// value of a declared kind, without building an AST.
//
// Scanner is deliberately not a tokenizer: it exposes one primitive per JSON
// value kind (string, number, boolean, tuple, object, array), and correctness
// depends on the caller invoking the right primitive at the right cursor
// position. Generated decoders are the intended caller; see the [gen]
// package. Every primitive returns ok=false on buffer exhaustion instead of
// panicking, and never allocates.
//
// Scanner assumes the buffer is well-formed JSON conforming to a known
// schema: canonical key order, no backslash escapes inside declared string
// values, and no whitespace beyond what a field's Offset
// directive accounts for. Behavior on input that violates these assumptions
// is unspecified -- a primitive may return ok=false, or may return a span
// that does not correspond to any sensible JSON value.
package scanner
