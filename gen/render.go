package gen

import (
	"fmt"
	"unicode"
	"unicode/utf8"
)

// lowerFirst lower-cases a field's leading rune, turning an exported Go
// field name into the unexported storage name backing its accessor method.
func lowerFirst(s string) string {
	if s == "" {
		return s
	}

	r, size := utf8.DecodeRuneInString(s)

	return string(unicode.ToLower(r)) + s[size:]
}

// recordContext is the template data for one generated decoder.
type recordContext struct {
	Package      string
	RecordName   string
	DecoderName  string
	Fields       []fieldContext
	NeedsStrconv bool
	NeedsRuntime bool
}

// fieldContext is the template data for one field of a generated decoder.
type fieldContext struct {
	Name string
	// Storage is the unexported struct field name backing this field's
	// lazyfield.Field (or array span/count), distinct from Name so the
	// exported accessor method of the same Name doesn't collide with it.
	Storage      string
	JSONKey      string
	GoType       string
	Category     JSONCategory
	SkipDistance int

	// ScannerCall is the Scanner method invocation used to extract this
	// field's span, e.g. "NextString" or "NextNumberKnownLen".
	ScannerCall string
	// KnownLen is the Scanner call's argument when the field
	// declares a fixed len, else -1 (omitted from the call).
	KnownLen int

	// ParseExpr parses a raw []byte span ("b") into the field's Go type.
	// Builtins: an inline strconv/jscanrt expression. Named scalar types:
	// a call through encoding.TextUnmarshaler.
	ParseExpr    string
	IsTextScalar bool

	AlsoAs       string
	AlsoAsParse  string
	IsTextAlsoAs bool

	IsArray   bool
	Element   *elementContext
}

type elementContext struct {
	Kind        ElementKind
	TupleName   string
	Tuple       []TupleMember
	DecoderType string

	// OwnedType is the element type Collect returns: the record's own
	// declared element struct (e.g. "BidAsk") for a tuple array, or the
	// nested record's name (e.g. "Level") for a decoder array — either
	// way, elementGoType(Field.GoType).
	OwnedType string
}

// buildRecordContext precomputes everything generate.go's templates need
// from a resolved Record, so the templates themselves stay free of control
// flow beyond ranging over slices.
func buildRecordContext(r Record) (recordContext, error) {
	ctx := recordContext{
		Package:     r.Package,
		RecordName:  r.Name,
		DecoderName: r.DecoderName(),
	}

	for _, f := range r.Fields {
		fc, err := buildFieldContext(f)
		if err != nil {
			return recordContext{}, fmt.Errorf("field %s: %w", f.Name, err)
		}

		if !fc.IsTextScalar {
			if fc.Category == CategoryNumber && needsJscanrt(f.GoType) {
				ctx.NeedsRuntime = true
			}

			ctx.NeedsStrconv = ctx.NeedsStrconv || usesStrconv(f.GoType)
		} else {
			ctx.NeedsRuntime = true
		}

		if fc.IsTextAlsoAs {
			ctx.NeedsRuntime = true
		} else if fc.AlsoAs != "" {
			if needsJscanrt(fc.AlsoAs) {
				ctx.NeedsRuntime = true
			}

			ctx.NeedsStrconv = ctx.NeedsStrconv || usesStrconv(fc.AlsoAs)
		}

		if fc.IsArray && fc.Element != nil && fc.Element.Kind == ElementTuple {
			for _, m := range fc.Element.Tuple {
				if needsJscanrt(m.GoType) {
					ctx.NeedsRuntime = true
				}

				ctx.NeedsStrconv = ctx.NeedsStrconv || usesStrconv(m.GoType)

				if !IsBuiltinScalar(m.GoType) {
					ctx.NeedsRuntime = true
				}
			}
		}

		ctx.Fields = append(ctx.Fields, fc)
	}

	return ctx, nil
}

func usesStrconv(goType string) bool {
	switch goType {
	case "int", "int64", "uint64", "float64", "bool":
		return true
	default:
		return false
	}
}

func needsJscanrt(goType string) bool {
	switch goType {
	case "int8", "int16", "int32", "uint", "uint8", "uint16", "uint32", "float32":
		return true
	default:
		return false
	}
}

func buildFieldContext(f Field) (fieldContext, error) {
	fc := fieldContext{
		Name:         f.Name,
		Storage:      lowerFirst(f.Name),
		JSONKey:      f.JSONKey,
		GoType:       f.GoType,
		Category:     f.Category,
		SkipDistance: f.SkipDistance(),
		KnownLen:     -1,
		AlsoAs:       f.AlsoAs,
	}

	if f.HasLen {
		fc.KnownLen = f.Len
	}

	switch f.Category {
	case CategoryString:
		fc.ScannerCall = scannerCallName("NextString", f.HasLen)
	case CategoryNumber:
		fc.ScannerCall = scannerCallName("NextNumber", f.HasLen)
	case CategoryBoolean:
		fc.ScannerCall = scannerCallName("NextBoolean", f.HasLen)
	case CategoryArray:
		fc.ScannerCall = "NextArray"
		fc.IsArray = true
	case CategoryObject:
		fc.ScannerCall = "NextObject"
	default:
		return fieldContext{}, fmt.Errorf("%w: %s", ErrUnresolvedType, f.Category)
	}

	if f.Category != CategoryArray && f.Category != CategoryObject {
		if expr, ok := ScalarParseExpr(f.GoType, "b"); ok {
			fc.ParseExpr = expr
		} else {
			fc.IsTextScalar = true
			fc.ParseExpr = fmt.Sprintf("jscanrt.UnmarshalText[%s](b)", f.GoType)
		}
	}

	if f.AlsoAs != "" {
		if expr, ok := ScalarParseExpr(f.AlsoAs, "b"); ok {
			fc.AlsoAsParse = expr
		} else {
			fc.IsTextAlsoAs = true
			fc.AlsoAsParse = fmt.Sprintf("jscanrt.UnmarshalText[%s](b)", f.AlsoAs)
		}
	}

	if f.Element != nil {
		ec := &elementContext{
			Kind:        f.Element.Kind,
			DecoderType: f.Element.DecoderType,
			OwnedType:   elementGoType(f.GoType),
		}
		if f.Element.Kind == ElementTuple {
			ec.TupleName = f.Name + "Element"
			ec.Tuple = f.Element.Tuple
		}

		fc.Element = ec
	}

	return fc, nil
}

func scannerCallName(base string, hasLen bool) string {
	if hasLen {
		return base + "KnownLen"
	}

	return base
}
