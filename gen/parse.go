package gen

import (
	"bytes"
	"fmt"
	"go/ast"
	"go/parser"
	"go/printer"
	"go/token"
	"reflect"
	"strconv"
	"strings"
)

// ParseGoFile parses a Go source file and resolves every struct type carrying
// a leading "jscan:object" doc-comment directive into a [Record], ready for
// [Generate]. Plain structs in the same file (no directive) are available as
// tuple-member definitions for array fields (spec.md §4.3.6).
func ParseGoFile(path string) ([]Record, error) {
	fset := token.NewFileSet()

	file, err := parser.ParseFile(fset, path, nil, parser.ParseComments)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrReadSchema, path, err)
	}

	structs := map[string]*ast.StructType{}
	objectTypes := []string{}

	for _, decl := range file.Decls {
		genDecl, ok := decl.(*ast.GenDecl)
		if !ok || genDecl.Tok != token.TYPE {
			continue
		}

		for _, spec := range genDecl.Specs {
			typeSpec, ok := spec.(*ast.TypeSpec)
			if !ok {
				continue
			}

			structType, ok := typeSpec.Type.(*ast.StructType)
			if !ok {
				continue
			}

			structs[typeSpec.Name.Name] = structType

			if hasObjectDirective(genDecl.Doc) || hasObjectDirective(typeSpec.Doc) {
				objectTypes = append(objectTypes, typeSpec.Name.Name)
			}
		}
	}

	reg := buildStructRegistry(structs, objectTypes, fset)

	records := make([]Record, 0, len(objectTypes))

	for _, name := range objectTypes {
		record, err := parseRecord(file.Name.Name, name, structs[name], fset, reg)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}

		records = append(records, record)
	}

	return records, nil
}

func hasObjectDirective(doc *ast.CommentGroup) bool {
	if doc == nil {
		return false
	}

	for _, c := range doc.List {
		if strings.TrimSpace(strings.TrimPrefix(c.Text, "//")) == "jscan:object" {
			return true
		}
	}

	return false
}

// buildStructRegistry collects the field lists of every plain (non-object)
// struct in the file, for resolution as array tuple-element types.
func buildStructRegistry(structs map[string]*ast.StructType, objectTypes []string, fset *token.FileSet) structRegistry {
	isObject := make(map[string]bool, len(objectTypes))
	for _, name := range objectTypes {
		isObject[name] = true
	}

	reg := structRegistry{}

	for name, st := range structs {
		if isObject[name] {
			continue
		}

		var fields []structField

		for _, f := range st.Fields.List {
			goType := exprString(fset, f.Type)
			for _, n := range f.Names {
				fields = append(fields, structField{name: n.Name, goType: goType})
			}
		}

		reg[name] = fields
	}

	return reg
}

func parseRecord(pkg, name string, st *ast.StructType, fset *token.FileSet, reg structRegistry) (Record, error) {
	record := Record{Name: name, Package: pkg}

	for _, f := range st.Fields.List {
		if len(f.Names) == 0 {
			continue // embedded fields are not part of the schema surface
		}

		goType := exprString(fset, f.Type)

		rawTag, err := fieldTag(f)
		if err != nil {
			return Record{}, err
		}

		d, err := parseDirectives(rawTag)
		if err != nil {
			return Record{}, fmt.Errorf("field %s: %w", f.Names[0].Name, err)
		}

		for _, ident := range f.Names {
			field, err := buildField(ident.Name, goType, d, reg)
			if err != nil {
				return Record{}, fmt.Errorf("field %s: %w", ident.Name, err)
			}

			record.Fields = append(record.Fields, field)
		}
	}

	return record, nil
}

func fieldTag(f *ast.Field) (string, error) {
	if f.Tag == nil {
		return "", nil
	}

	unquoted, err := strconv.Unquote(f.Tag.Value)
	if err != nil {
		return "", fmt.Errorf("invalid struct tag %s: %w", f.Tag.Value, err)
	}

	return reflect.StructTag(unquoted).Get("jscan"), nil
}

func buildField(name, goType string, d directives, reg structRegistry) (Field, error) {
	jsonKey := name
	if d.rename != "" {
		jsonKey = d.rename
	}

	category, err := resolveCategory(goType, d.ty)
	if err != nil {
		return Field{}, err
	}

	field := Field{
		Name:      name,
		JSONKey:   jsonKey,
		GoType:    goType,
		Category:  category,
		Len:       d.lenVal,
		HasLen:    d.hasLen,
		Offset:    d.offset,
		AlsoAs:    d.alsoAs,
		IsDecoder: d.isDecoder,
	}

	if category == CategoryArray {
		elem, err := resolveElement(goType, d.isDecoder, reg)
		if err != nil {
			return Field{}, err
		}

		field.Element = elem
	}

	return field, nil
}

// exprString renders a type expression back to Go source text, e.g. the
// *ast.ArrayType for "[]BidAsk" becomes the string "[]BidAsk".
func exprString(fset *token.FileSet, expr ast.Expr) string {
	var buf bytes.Buffer

	if err := printer.Fprint(&buf, fset, expr); err != nil {
		return fmt.Sprintf("%T", expr)
	}

	return buf.String()
}
