package decode

// extractLabel reads a length-prefixed label. A zero length is a
// documented special case meaning the label is exactly the next 4
// bytes, used for short fixed identifiers such as class IDs.
func (d *decoder) extractLabel() ([]byte, error) {
	n, err := d.u32()
	if err != nil {
		return nil, err
	}
	if n == 0 {
		n = 4
	}
	return d.bytes(int(n))
}
