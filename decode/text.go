package decode

import (
	"bytes"

	"github.com/DavyJonesCodes/go-tpl/debug"
)

// extractText decodes a length-prefixed text field of UTF-16 style code
// units (2 bytes each, nulls stripped).
//
// A zero length prefix signals an indirect text field: the 4 zero bytes
// are really the zero label length of an embedded property that must be
// consumed before the true length. After consuming it, a nonzero
// candidate length is only accepted when the window it spans contains
// exactly length+1 zero bytes (the high bytes of ASCII code units plus
// the terminator); anything else is leftover padding and the recovery
// repeats. The heuristic is undocumented in the format; keep it as is.
func (d *decoder) extractText() (string, error) {
	length, err := d.u32()
	if err != nil {
		return "", err
	}
	for length == 0 {
		d.off -= 4
		if debug.Text() {
			debug.Logf("indirect text length at offset %d\n", d.off)
		}
		if _, err := d.extractProperty(); err != nil {
			return "", err
		}
		length, err = d.u32()
		if err != nil {
			return "", err
		}
		if length == 0 {
			continue
		}
		win, err := d.peek(int(length) * 2)
		if err != nil {
			return "", err
		}
		if bytes.Count(win, []byte{0}) != int(length)+1 {
			// spurious length, keep consuming embedded properties
			length = 0
		}
	}
	raw, err := d.bytes(int(length) * 2)
	if err != nil {
		return "", err
	}
	return stripNulls(raw), nil
}

func stripNulls(raw []byte) string {
	out := make([]byte, 0, len(raw)/2)
	for _, b := range raw {
		if b != 0 {
			out = append(out, b)
		}
	}
	return string(out)
}
