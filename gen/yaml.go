package gen

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
)

// yamlSchema is the on-disk shape of a YAML schema document: the same
// record/field model [ParseGoFile] resolves from Go struct tags, spelled out
// directly for pipelines that would rather not declare a placeholder Go
// type (spec.md §6).
type yamlSchema struct {
	Records []yamlRecord `yaml:"records"`
}

type yamlRecord struct {
	Package string      `yaml:"package"`
	Name    string       `yaml:"name"`
	Fields  []yamlField `yaml:"fields"`
}

type yamlField struct {
	Name    string `yaml:"name"`
	JSONKey string `yaml:"json_key"`
	GoType  string `yaml:"go_type"`
	Type    string `yaml:"type"`

	Len    *int   `yaml:"len"`
	Offset int    `yaml:"offset"`
	AlsoAs string `yaml:"also_as"`

	Decoder bool            `yaml:"decoder"`
	Element *yamlElement    `yaml:"element"`
}

type yamlElement struct {
	Kind        string            `yaml:"kind"`
	Tuple       []yamlTupleMember `yaml:"tuple"`
	DecoderType string            `yaml:"decoder_type"`
}

type yamlTupleMember struct {
	Name   string `yaml:"name"`
	GoType string `yaml:"go_type"`
}

// LoadSchemaFile reads a YAML schema document from path, validates it
// against the schema-language meta-schema, and resolves it into a slice of
// [Record].
func LoadSchemaFile(path string) ([]Record, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrReadSchema, path, err)
	}

	if err := ValidateSchemaDocument(raw); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidSchema, path, err)
	}

	var doc yamlSchema
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrReadSchema, path, err)
	}

	records := make([]Record, 0, len(doc.Records))

	for _, yr := range doc.Records {
		record, err := resolveYAMLRecord(yr)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", yr.Name, err)
		}

		records = append(records, record)
	}

	return records, nil
}

func resolveYAMLRecord(yr yamlRecord) (Record, error) {
	record := Record{Package: yr.Package, Name: yr.Name}

	// A YAML document declares every locally relevant tuple-element struct
	// inline on the array field itself, so unlike ParseGoFile there is no
	// cross-record registry to build first.
	for _, yf := range yr.Fields {
		field, err := resolveYAMLField(yf)
		if err != nil {
			return Record{}, fmt.Errorf("field %s: %w", yf.Name, err)
		}

		record.Fields = append(record.Fields, field)
	}

	return record, nil
}

func resolveYAMLField(yf yamlField) (Field, error) {
	jsonKey := yf.Name
	if yf.JSONKey != "" {
		jsonKey = yf.JSONKey
	}

	goType := yf.GoType
	if goType == "" {
		goType = yf.Type
	}

	category, err := resolveCategory(goType, "")
	if err != nil {
		return Field{}, err
	}

	field := Field{
		Name:      yf.Name,
		JSONKey:   jsonKey,
		GoType:    goType,
		Category:  category,
		Offset:    yf.Offset,
		AlsoAs:    yf.AlsoAs,
		IsDecoder: yf.Decoder,
	}

	if yf.Len != nil {
		field.Len = *yf.Len
		field.HasLen = true
	}

	if category == CategoryArray {
		if yf.Element == nil {
			return Field{}, fmt.Errorf("%w: array field %q has no element description", ErrInvalidElement, yf.Name)
		}

		elem, err := resolveYAMLElement(*yf.Element, yf.Decoder)
		if err != nil {
			return Field{}, err
		}

		field.Element = elem
	}

	return field, nil
}

func resolveYAMLElement(ye yamlElement, isDecoder bool) (*Element, error) {
	if isDecoder || ye.Kind == string(ElementDecoder) {
		return &Element{Kind: ElementDecoder, DecoderType: ye.DecoderType}, nil
	}

	members := make([]TupleMember, 0, len(ye.Tuple))
	for _, m := range ye.Tuple {
		members = append(members, TupleMember{Name: m.Name, GoType: m.GoType})
	}

	return &Element{Kind: ElementTuple, Tuple: members}, nil
}
