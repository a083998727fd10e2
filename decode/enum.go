package decode

import "github.com/DavyJonesCodes/go-tpl/ir"

// extractEnum decodes an enum as a {classId, value} pair. Either length
// prefix may be zero, meaning exactly 4 bytes: identifiers are never
// actually empty in practice.
func (d *decoder) extractEnum() (*ir.Node, error) {
	classID, err := d.enumField()
	if err != nil {
		return nil, err
	}
	value, err := d.enumField()
	if err != nil {
		return nil, err
	}
	return ir.FromKeyVals([]ir.KeyVal{
		{Key: ir.FromString("classId"), Val: ir.FromString(classID)},
		{Key: ir.FromString("value"), Val: ir.FromString(value)},
	}), nil
}

func (d *decoder) enumField() (string, error) {
	n, err := d.u32()
	if err != nil {
		return "", err
	}
	if n == 0 {
		n = 4
	}
	b, err := d.bytes(int(n))
	if err != nil {
		return "", err
	}
	return string(b), nil
}
