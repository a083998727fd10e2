package decode

import (
	"bytes"
	"fmt"
)

const (
	presetMagic   = "8btp"
	resourceMagic = "8bim"

	// reserved bytes between the two header magics
	headerReserved = 8

	toolSectionMarker = "8BIMtptp"

	// marker plus an unparsed 8-byte length/type field
	toolSectionHeader = len(toolSectionMarker) + 8
)

// ValidateHeader checks the two fixed magic signatures at the start of
// a tool preset buffer and returns the offset past both. Comparison is
// case-insensitive.
func ValidateHeader(data []byte) (int, error) {
	d := &decoder{buf: data}
	magic, err := d.bytes(4)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidHeader, err)
	}
	if !bytes.EqualFold(magic, []byte(presetMagic)) {
		return 0, fmt.Errorf("%w: preset magic %q", ErrInvalidHeader, magic)
	}
	if err := d.skip(headerReserved); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidHeader, err)
	}
	magic, err = d.bytes(4)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidHeader, err)
	}
	if !bytes.EqualFold(magic, []byte(resourceMagic)) {
		return 0, fmt.Errorf("%w: resource magic %q", ErrInvalidHeader, magic)
	}
	return d.off, nil
}

// LocateToolSection returns the offset of the tool-data payload. The
// marker may occur earlier as metadata; only the last occurrence marks
// the payload, which starts past the marker and its length/type field.
func LocateToolSection(data []byte) (int, error) {
	i := bytes.LastIndex(data, []byte(toolSectionMarker))
	if i < 0 {
		return 0, ErrToolSectionNotFound
	}
	return i + toolSectionHeader, nil
}
