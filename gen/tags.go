package gen

import (
	"fmt"
	"strconv"
	"strings"
)

// directives holds the parsed contents of one field's `jscan:"..."` struct
// tag (spec.md §4.3.1 / §6): rename, len, ty, also_as, offset, decoder.
type directives struct {
	rename    string
	lenVal    int
	hasLen    bool
	ty        string
	alsoAs    string
	offset    int
	isDecoder bool
}

// parseDirectives parses the comma-separated "key=value" (or bare "decoder")
// contents of a jscan struct tag. An empty string is a valid, directive-free
// tag.
func parseDirectives(raw string) (directives, error) {
	var d directives

	if strings.TrimSpace(raw) == "" {
		return d, nil
	}

	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		key, value, hasValue := strings.Cut(part, "=")
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)

		switch key {
		case "rename":
			d.rename = value
		case "len":
			n, err := strconv.Atoi(value)
			if err != nil {
				return d, fmt.Errorf("len=%q: %w", value, err)
			}

			d.lenVal = n
			d.hasLen = true
		case "ty":
			d.ty = value
		case "also_as":
			d.alsoAs = value
		case "offset":
			n, err := strconv.Atoi(value)
			if err != nil {
				return d, fmt.Errorf("offset=%q: %w", value, err)
			}

			d.offset = n
		case "decoder":
			if !hasValue {
				d.isDecoder = true

				continue
			}

			b, err := strconv.ParseBool(value)
			if err != nil {
				return d, fmt.Errorf("decoder=%q: %w", value, err)
			}

			d.isDecoder = b
		default:
			return d, fmt.Errorf("%w: %q", ErrUnknownDirective, key)
		}
	}

	return d, nil
}
