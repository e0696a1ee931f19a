package jscanrt

import "strconv"

// ParseInt8 parses a sized signed integer from its JSON text span.
func ParseInt8(b []byte) (int8, error) {
	n, err := strconv.ParseInt(string(b), 10, 8)
	return int8(n), err
}

// ParseInt16 parses a sized signed integer from its JSON text span.
func ParseInt16(b []byte) (int16, error) {
	n, err := strconv.ParseInt(string(b), 10, 16)
	return int16(n), err
}

// ParseInt32 parses a sized signed integer from its JSON text span.
func ParseInt32(b []byte) (int32, error) {
	n, err := strconv.ParseInt(string(b), 10, 32)
	return int32(n), err
}

// ParseUint parses a platform-width unsigned integer from its JSON text span.
func ParseUint(b []byte) (uint, error) {
	n, err := strconv.ParseUint(string(b), 10, 64)
	return uint(n), err
}

// ParseUint8 parses a sized unsigned integer from its JSON text span.
func ParseUint8(b []byte) (uint8, error) {
	n, err := strconv.ParseUint(string(b), 10, 8)
	return uint8(n), err
}

// ParseUint16 parses a sized unsigned integer from its JSON text span.
func ParseUint16(b []byte) (uint16, error) {
	n, err := strconv.ParseUint(string(b), 10, 16)
	return uint16(n), err
}

// ParseUint32 parses a sized unsigned integer from its JSON text span.
func ParseUint32(b []byte) (uint32, error) {
	n, err := strconv.ParseUint(string(b), 10, 32)
	return uint32(n), err
}

// ParseFloat32 parses a sized float from its JSON text span.
func ParseFloat32(b []byte) (float32, error) {
	n, err := strconv.ParseFloat(string(b), 32)
	return float32(n), err
}
