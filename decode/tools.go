package decode

import (
	"strings"

	"github.com/DavyJonesCodes/go-tpl/debug"
	"github.com/DavyJonesCodes/go-tpl/ir"
)

// bytes between a tool's name field and its type label, undocumented
const toolRecordPadding = 10

// surrounding padding on type labels
const labelPadding = "\x00 \t\r\n"

// readTools iterates tool records until fewer than 4 bytes remain,
// grouping records under their type label in first-seen order.
func (d *decoder) readTools() (*ir.Node, error) {
	doc := &ir.Node{Type: ir.ObjectType}
	for d.remaining() >= 4 {
		rawName, err := d.extractText()
		if err != nil {
			return doc, err
		}
		name := rawName
		if i := strings.LastIndexByte(rawName, '='); i >= 0 {
			name = rawName[i+1:]
		}
		if err := d.skip(toolRecordPadding); err != nil {
			return doc, err
		}
		label, err := d.extractLabel()
		if err != nil {
			return doc, err
		}
		toolType := strings.Trim(string(label), labelPadding)
		count, err := d.u32()
		if err != nil {
			return doc, err
		}
		var props []*ir.Node
		for i := uint32(0); i < count; i++ {
			prop, err := d.extractProperty()
			if err != nil {
				return doc, err
			}
			props = append(props, prop)
		}
		if debug.Tools() {
			debug.Logf("tool %q type %q with %d properties, offset %d\n",
				name, toolType, count, d.off)
		}
		rec := ir.FromKeyVals([]ir.KeyVal{
			{Key: ir.FromString("name"), Val: ir.FromString(name)},
			{Key: ir.FromString("properties"), Val: ir.FromSlice(props)},
		})
		byType := ir.Get(doc, toolType)
		if byType == nil {
			byType = &ir.Node{Type: ir.ArrayType}
			ir.PutField(doc, toolType, byType)
		}
		ir.Append(byType, rec)
	}
	return doc, nil
}
