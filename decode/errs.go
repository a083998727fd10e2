package decode

import "errors"

var (
	// ErrInvalidHeader indicates one of the two fixed magic signatures
	// did not match. Decode returns an empty document alongside it.
	ErrInvalidHeader = errors.New("invalid tool preset header")

	// ErrToolSectionNotFound indicates the tool-data marker is absent.
	ErrToolSectionNotFound = errors.New("tool section not found")

	// ErrUnexpectedEOF indicates a fixed-width read requested more bytes
	// than remain in the buffer.
	ErrUnexpectedEOF = errors.New("unexpected end of buffer")

	// ErrUnrecoverableScan indicates the placeholder scan exhausted the
	// buffer without finding a known tag literal.
	ErrUnrecoverableScan = errors.New("unrecoverable placeholder scan")

	// ErrMaxDepth indicates nested value decoding exceeded the
	// configured depth limit.
	ErrMaxDepth = errors.New("max nesting depth exceeded")
)
