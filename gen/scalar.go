package gen

import "fmt"

// builtinParsers maps a builtin Go scalar type to the strconv expression
// template used to parse it from a []byte holding its JSON text span (minus
// surrounding quotes for strings). "%s" is replaced with the raw-bytes
// expression at render time.
//
// This stands in for Rust's blanket FromStr bound (original_source's
// sje::LazyField<T: FromStr>): Go has no such generic dispatch, so the
// generator emits the right strconv/UnmarshalText call per concrete type
// instead of reflecting at runtime.
var builtinParsers = map[string]string{
	"string":  "string(%s), error(nil)",
	"bool":    "strconv.ParseBool(string(%s))",
	"int":     "strconv.Atoi(string(%s))",
	"int8":    "jscanrt.ParseInt8(%s)",
	"int16":   "jscanrt.ParseInt16(%s)",
	"int32":   "jscanrt.ParseInt32(%s)",
	"int64":   "strconv.ParseInt(string(%s), 10, 64)",
	"uint":    "jscanrt.ParseUint(%s)",
	"uint8":   "jscanrt.ParseUint8(%s)",
	"uint16":  "jscanrt.ParseUint16(%s)",
	"uint32":  "jscanrt.ParseUint32(%s)",
	"uint64":  "strconv.ParseUint(string(%s), 10, 64)",
	"float32": "jscanrt.ParseFloat32(%s)",
	"float64": "strconv.ParseFloat(string(%s), 64)",
}

// ScalarParseExpr returns the Go expression (as source text, with %s already
// substituted for rawExpr) that parses a field's text span into its declared
// Go type. Builtins get an inline strconv- or jscanrt-based expression; for
// any other type it returns ok=false, and the caller emits a
// jscanrt.UnmarshalText call instead (see buildFieldContext).
func ScalarParseExpr(goType, rawExpr string) (string, bool) {
	tmpl, ok := builtinParsers[goType]
	if !ok {
		return "", false
	}

	return fmt.Sprintf(tmpl, rawExpr), true
}

// IsBuiltinScalar reports whether goType is one of the builtin kinds
// ScalarParseExpr knows how to parse directly, as opposed to a named type
// expected to implement encoding.TextUnmarshaler.
func IsBuiltinScalar(goType string) bool {
	_, ok := builtinParsers[goType]

	return ok
}
