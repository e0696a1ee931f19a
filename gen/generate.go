package gen

import (
	"bytes"
	"fmt"
	"go/format"
	"text/template"
)

// Generate renders a Record into a formatted Go source file implementing its
// decoder, following the layout spec.md §4.3 describes: a <Name>Decoder
// struct holding one lazyfield.Field per scalar, a decode entry point that
// walks the schema's precomputed skip distances, a set of accessor methods
// per field (plus a secondary <Field>As<Type> accessor where the schema
// declares also_as), and a To<Name> owned conversion.
func Generate(r Record) (string, error) {
	ctx, err := buildRecordContext(r)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := decoderTemplate.Execute(&buf, ctx); err != nil {
		return "", fmt.Errorf("render %s: %w", r.Name, err)
	}

	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		return "", fmt.Errorf("format generated source for %s: %w", r.Name, err)
	}

	return string(formatted), nil
}

var decoderTemplate = template.Must(template.New("decoder").Funcs(funcMap()).Parse(`// Code generated by jscangen. DO NOT EDIT.

package {{.Package}}

import (
	"iter"

	"go.quantedge.dev/jscan/jscanerr"
	"go.quantedge.dev/jscan/lazyfield"
	"go.quantedge.dev/jscan/scanner"
{{if .NeedsStrconv}}	"strconv"
{{end -}}
{{if .NeedsRuntime}}	"go.quantedge.dev/jscan/jscanrt"
{{end -}}
)

{{range .Fields}}{{if .IsArray}}{{if eq .Element.Kind "tuple"}}
// {{.Element.TupleName}} is one element of {{$.DecoderName}}.{{.Name}}.
type {{.Element.TupleName}} struct {
{{range .Element.Tuple}}	{{.Name}} {{.GoType}}
{{end}}}
{{end}}{{end}}{{end}}

// {{.DecoderName}} is a zero-copy view over a {{.RecordName}}-shaped JSON
// object. Scalar fields are parsed lazily and memoized on first access;
// constructing a {{.DecoderName}} never allocates beyond the struct itself.
type {{.DecoderName}} struct {
	buf []byte

{{range .Fields}}{{if .IsArray}}	{{.Storage}}Span  scanner.Span
	{{.Storage}}Count int
{{else}}	{{.Storage}} lazyfield.Field[{{.GoType}}]
{{end}}{{end}}}

// New{{.DecoderName}} scans buf field-by-field according to the schema's
// precomputed skip distances and returns a decoder view over it. buf must
// outlive the returned decoder and everything read from it. Keys must appear
// in the schema's declared order with no whitespace beyond each field's
// declared offset; the result for any other layout is undefined.
func New{{.DecoderName}}(buf []byte) (*{{.DecoderName}}, error) {
	d := &{{.DecoderName}}{buf: buf}

	s := scanner.Wrap(buf)

{{range $i, $f := .Fields}}	s.Skip({{$f.SkipDistance}})
{{if $f.IsArray}}	{{$f.Storage}}Span, {{$f.Storage}}Count, ok := s.NextArray()
	if !ok {
		return nil, jscanerr.MissingField({{printf "%q" $f.JSONKey}})
	}

	d.{{$f.Storage}}Span = {{$f.Storage}}Span
	d.{{$f.Storage}}Count = {{$f.Storage}}Count
{{else}}	{{$f.Storage}}Span, ok := s.{{$f.ScannerCall}}({{if ge $f.KnownLen 0}}{{$f.KnownLen}}{{end}})
	if !ok {
		return nil, jscanerr.MissingField({{printf "%q" $f.JSONKey}})
	}

	d.{{$f.Storage}} = lazyfield.From({{$f.Storage}}Span.Bytes(buf), func(b []byte) ({{$f.GoType}}, error) {
		return {{$f.ParseExpr}}
	})
{{end}}{{end}}
	return d, nil
}

{{range .Fields}}{{if not .IsArray}}
// {{.Name}} returns the parsed {{.JSONKey}} field, parsing and memoizing it
// on first call.
func (d *{{$.DecoderName}}) {{.Name}}() ({{.GoType}}, error) {
	return d.{{.Storage}}.Get()
}

// {{.Name}}Bytes returns the field's raw text span without parsing it.
func (d *{{$.DecoderName}}) {{.Name}}Bytes() []byte {
	return d.{{.Storage}}.AsSlice()
}

// {{.Name}}AsStr returns the field's raw span as a string without parsing
// it and without copying the underlying bytes.
func (d *{{$.DecoderName}}) {{.Name}}AsStr() string {
	return d.{{.Storage}}.AsStr()
}

// {{.Name}}AsLazyField returns the field's lazy wrapper itself.
func (d *{{$.DecoderName}}) {{.Name}}AsLazyField() *lazyfield.Field[{{.GoType}}] {
	return &d.{{.Storage}}
}
{{if .AlsoAs}}
// {{.Name}}As{{.AlsoAs}} parses the same raw span as {{.AlsoAs}}, independently
// of the {{.Name}} accessor's own memoized value.
func (d *{{$.DecoderName}}) {{.Name}}As{{.AlsoAs}}() ({{.AlsoAs}}, error) {
	b := d.{{.Storage}}.AsSlice()
	return {{.AlsoAsParse}}
}
{{end}}{{end}}{{end}}

{{range .Fields}}{{if .IsArray}}
// {{.Name}}Len returns the number of elements in the {{.JSONKey}} array
// without parsing any of them.
func (d *{{$.DecoderName}}) {{.Name}}Len() int {
	return d.{{.Storage}}Count
}

{{if eq .Element.Kind "tuple"}}
// {{.Name}} lazily iterates the {{.JSONKey}} array's elements, each itself a
// bracketed tuple, parsing each member in turn. Iteration stops early if a
// member fails to parse; the caller observes the error in the yielded pair
// and should stop consuming.
func (d *{{$.DecoderName}}) {{.Name}}() iter.Seq2[{{.Element.TupleName}}, error] {
	return func(yield func({{.Element.TupleName}}, error) bool) {
		outer := d.{{.Storage}}Span.Bytes(d.buf)
		if len(outer) < 2 {
			return
		}

		body := outer[1 : len(outer)-1]
		es := scanner.Wrap(body)

		for es.Position() < len(body) {
			var elem {{.Element.TupleName}}

			elemSpan, ok := es.NextTuple()
			if !ok {
				return
			}

			elemBody := elemSpan.Bytes(body)
			inner := elemBody[1 : len(elemBody)-1]
			ms := scanner.Wrap(inner)

{{range $j, $m := .Element.Tuple}}{{if $j}}			ms.Skip(1)
{{end}}			{{$m.Name}}Span, ok := ms.{{memberScannerCall $m.GoType}}()
			if !ok {
				if !yield(elem, jscanerr.MissingField({{printf "%q" $m.Name}})) {
					return
				}

				return
			}

			{{$m.Name}}Bytes := {{$m.Name}}Span.Bytes(inner)
			{{$m.Name}}Val, err := {{memberParseExpr $m.GoType (printf "%sBytes" $m.Name)}}
			if err != nil {
				if !yield(elem, err) {
					return
				}

				return
			}

			elem.{{$m.Name}} = {{$m.Name}}Val
{{end}}
			if !yield(elem, nil) {
				return
			}

			if es.Position() < len(body) {
				es.Skip(1)
			}
		}
	}
}

// {{.Name}}Collect parses every element of the {{.JSONKey}} array into a
// []{{.Element.OwnedType}}, stopping at the first error.
func (d *{{$.DecoderName}}) {{.Name}}Collect() ([]{{.Element.OwnedType}}, error) {
	out := make([]{{.Element.OwnedType}}, 0, d.{{.Storage}}Count)

	for elem, err := range d.{{.Name}}() {
		if err != nil {
			return nil, err
		}

		out = append(out, {{.Element.OwnedType}}{
{{range .Element.Tuple}}			{{.Name}}: elem.{{.Name}},
{{end}}		})
	}

	return out, nil
}
{{else}}
// {{.Name}} lazily iterates the {{.JSONKey}} array's elements, constructing a
// nested {{.Element.DecoderType}}Decoder view over each one.
func (d *{{$.DecoderName}}) {{.Name}}() iter.Seq2[*{{.Element.DecoderType}}Decoder, error] {
	return func(yield func(*{{.Element.DecoderType}}Decoder, error) bool) {
		inner := d.{{.Storage}}Span.Bytes(d.buf)
		if len(inner) < 2 {
			return
		}

		es := scanner.Wrap(inner[1 : len(inner)-1])

		for es.Position() < len(inner[1:len(inner)-1]) {
			span, ok := es.NextObject()
			if !ok {
				return
			}

			elemBuf := span.Bytes(inner[1 : len(inner)-1])

			nested, err := New{{.Element.DecoderType}}Decoder(elemBuf)
			if !yield(nested, err) {
				return
			}

			if err != nil {
				return
			}

			if es.Position() < len(inner[1:len(inner)-1]) {
				es.Skip(1)
			}
		}
	}
}

// {{.Name}}Collect parses every element of the {{.JSONKey}} array into a
// []{{.Element.OwnedType}}, converting each nested decoder to its owned
// record, stopping at the first error.
func (d *{{$.DecoderName}}) {{.Name}}Collect() ([]{{.Element.OwnedType}}, error) {
	out := make([]{{.Element.OwnedType}}, 0, d.{{.Storage}}Count)

	for elem, err := range d.{{.Name}}() {
		if err != nil {
			return nil, err
		}

		owned, err := elem.To{{.Element.DecoderType}}()
		if err != nil {
			return nil, err
		}

		out = append(out, owned)
	}

	return out, nil
}
{{end}}{{end}}{{end}}

// To{{.RecordName}} converts d into an owned {{.RecordName}}, parsing every
// field. The first error encountered, from any field in declaration order,
// is returned immediately.
func (d *{{.DecoderName}}) To{{.RecordName}}() ({{.RecordName}}, error) {
	var (
		v   {{.RecordName}}
		err error
	)

{{range .Fields}}{{if .IsArray}}	v.{{.Name}}, err = d.{{.Name}}Collect()
{{else}}	v.{{.Name}}, err = d.{{.Name}}()
{{end}}	if err != nil {
		return {{$.RecordName}}{}, err
	}

{{end}}	return v, nil
}
`))

func funcMap() template.FuncMap {
	return template.FuncMap{
		"memberScannerCall": memberScannerCall,
		"memberParseExpr":   memberParseExpr,
	}
}

// memberScannerCall picks the Scanner call for a tuple member. Every member
// of a tuple array element is wire-quoted on these feeds regardless of its
// Go type (spec.md §8 scenario 2's literal input is
// [["2.6461","6404.9"],...] — the quantity is a quoted string, not a bare
// JSON number), matching sje_derive's iterator_next_impl, which always calls
// next_string() for tuple members.
func memberScannerCall(string) string {
	return "NextString"
}

func memberParseExpr(goType, rawExpr string) string {
	if expr, ok := ScalarParseExpr(goType, rawExpr); ok {
		return expr
	}

	return fmt.Sprintf("jscanrt.UnmarshalText[%s](%s)", goType, rawExpr)
}
