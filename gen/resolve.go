package gen

import (
	"fmt"
	"strings"
)

// integerAndFloatGoTypes are the builtin Go kinds that resolve to the
// "number" JSON category (spec.md §4.3.2).
var integerAndFloatGoTypes = map[string]bool{
	"int": true, "int8": true, "int16": true, "int32": true, "int64": true,
	"uint": true, "uint8": true, "uint16": true, "uint32": true, "uint64": true,
	"float32": true, "float64": true,
}

// resolveCategory maps a declared Go type to a JSON category, or returns
// ErrUnresolvedType. A non-empty tyOverride always wins (spec.md §4.3.2).
func resolveCategory(goType string, tyOverride string) (JSONCategory, error) {
	if tyOverride != "" {
		return JSONCategory(tyOverride), nil
	}

	switch {
	case integerAndFloatGoTypes[goType]:
		return CategoryNumber, nil
	case goType == "string":
		return CategoryString, nil
	case goType == "bool":
		return CategoryBoolean, nil
	case strings.HasPrefix(goType, "[]"):
		return CategoryArray, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnresolvedType, goType)
	}
}

// elementGoType strips the leading slice notation from an array field's Go
// type, returning the element type's source text (e.g. "[]BidAsk" -> "BidAsk").
func elementGoType(goType string) string {
	return strings.TrimPrefix(goType, "[]")
}

// structRegistry maps a locally declared type name to its field list, used
// to resolve tuple-of-scalars array elements (spec.md §4.3.6) against plain
// (non-object) structs declared in the same source.
type structRegistry map[string][]structField

type structField struct {
	name   string
	goType string
}

// resolveElement determines an array field's element shape: a nested
// generated decoder when the field carries the decoder directive, otherwise
// a tuple of scalars resolved against reg (spec.md §4.3.6: "The schema marks
// such fields with an explicit decoder = true directive to disambiguate
// from the from-text path").
func resolveElement(goType string, isDecoder bool, reg structRegistry) (*Element, error) {
	elemType := elementGoType(goType)

	if isDecoder {
		return &Element{Kind: ElementDecoder, DecoderType: elemType}, nil
	}

	fields, ok := reg[elemType]
	if !ok {
		return nil, fmt.Errorf("%w: %s: not a locally declared tuple struct and not marked decoder", ErrInvalidElement, elemType)
	}

	members := make([]TupleMember, 0, len(fields))
	for _, f := range fields {
		members = append(members, TupleMember{Name: f.name, GoType: f.goType})
	}

	return &Element{Kind: ElementTuple, Tuple: members}, nil
}
