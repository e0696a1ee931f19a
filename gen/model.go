package gen

// JSONCategory is the JSON value kind a field's declared type resolves to
// (spec.md §4.3.2): string, number, boolean, array, or object.
type JSONCategory string

// Recognized JSON categories.
const (
	CategoryString  JSONCategory = "string"
	CategoryNumber  JSONCategory = "number"
	CategoryBoolean JSONCategory = "boolean"
	CategoryArray   JSONCategory = "array"
	CategoryObject  JSONCategory = "object"
)

// ElementKind distinguishes the two array-element shapes the generator
// knows how to iterate (spec.md §4.3.6).
type ElementKind string

const (
	// ElementTuple is a fixed-width tuple of scalars, e.g. (Price, Quantity).
	ElementTuple ElementKind = "tuple"
	// ElementDecoder is another record with its own generated decoder.
	ElementDecoder ElementKind = "decoder"
)

// TupleMember is one position of a tuple array element.
type TupleMember struct {
	// Name is used to label the member in the generated tuple struct
	// (e.g. "Price", "Quantity").
	Name string
	// GoType is the member's Go type, e.g. "Price" or "string".
	GoType string
}

// Element describes the element type of an array field.
type Element struct {
	Kind ElementKind

	// Tuple holds the member descriptors when Kind == ElementTuple.
	Tuple []TupleMember

	// DecoderType names the nested record type when Kind == ElementDecoder.
	// Its generated decoder is <DecoderType>Decoder.
	DecoderType string
}

// Field is one resolved field of a [Record].
type Field struct {
	// Name is the exported Go field name on the owned record type.
	Name string
	// JSONKey is the field's key in the JSON document (the rename target,
	// or Name if no rename directive was given).
	JSONKey string
	// GoType is the field's declared Go type as source text, e.g.
	// "uint64", "string", "bool", "[]BidAsk".
	GoType string
	// Category is the field's resolved JSON value kind.
	Category JSONCategory

	// Len is the value's fixed byte length, if declared. HasLen reports
	// whether Len should be used (0 is a valid declared length for "").
	Len    int
	HasLen bool

	// Offset is the number of extra leading bytes before the value,
	// absorbing e.g. a single space after the colon.
	Offset int

	// AlsoAs, if non-empty, is the type that a secondary `<Field>As<Type>`
	// accessor parses the raw text into. The accessor name uses AlsoAs
	// verbatim, so a package-qualified type such as "pkg.Type" does not form
	// a valid method name and Generate fails for it.
	AlsoAs string

	// IsDecoder marks an array field whose element type is itself a
	// generated decoder, rather than a tuple of scalars.
	IsDecoder bool

	// Element describes the array element shape. Non-nil iff
	// Category == CategoryArray.
	Element *Element
}

// SkipDistance is the precomputed number of bytes between the end of the
// previous field's value terminator and the first byte of this field's
// value (spec.md §4.3.3): len(key) + 4 structural bytes + Offset.
func (f Field) SkipDistance() int {
	return len(f.JSONKey) + 4 + f.Offset
}

// Record is one schema-driven record declaration: a Go type name and its
// ordered fields, ready for [Generate].
type Record struct {
	// Package is the Go package the generated decoder belongs to.
	Package string
	// Name is the owned record's Go type name, e.g. "Trade". The generated
	// view type is named Name+"Decoder".
	Name   string
	Fields []Field
}

// DecoderName is the generated view struct's Go type name.
func (r Record) DecoderName() string {
	return r.Name + "Decoder"
}

// Schema is one or more records resolved from a single source (a Go file or
// a YAML schema document).
type Schema struct {
	Records []Record
}
