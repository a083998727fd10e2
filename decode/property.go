package decode

import (
	"fmt"
	"strconv"

	"github.com/DavyJonesCodes/go-tpl/ir"
)

// gradient descriptors embed their own name and always carry exactly
// this many properties; they have no count field.
const (
	gradientClass         = "Grad"
	gradientPropertyCount = 4
)

// extractProperty decodes one named property as a single-field object
// node {name: {type, value}}. A property named "null" is an explicitly
// absent value and decodes to an empty object without consuming further
// bytes. A property whose tag carries no representable value also
// decodes to an empty object, but keeps whatever the dispatcher
// consumed.
func (d *decoder) extractProperty() (*ir.Node, error) {
	label, err := d.extractLabel()
	if err != nil {
		return nil, err
	}
	name := string(label)
	prop := &ir.Node{Type: ir.ObjectType}
	if name == "null" {
		return prop, nil
	}
	tag, err := d.bytes(4)
	if err != nil {
		return nil, err
	}
	name, val, err := d.dispatch(name, string(tag))
	if err != nil {
		return nil, err
	}
	if val == nil {
		return prop, nil
	}
	inner := ir.FromKeyVals([]ir.KeyVal{
		{Key: ir.FromString("type"), Val: ir.FromString(val.Tag)},
		{Key: ir.FromString("value"), Val: val},
	})
	ir.PutField(prop, name, inner)
	return prop, nil
}

// dispatch routes a 4-byte type tag to its decoder. It returns the
// possibly rewritten property name (placeholder recovery embeds the
// true name ahead of the tag), and a nil node when the tag is
// recognized but carries no representable value.
func (d *decoder) dispatch(name, tag string) (string, *ir.Node, error) {
	switch tag {
	case tagObject, tagGlobalObj:
		// a global object has the same layout as an object
		props, err := d.nested(func() ([]*ir.Node, error) { return d.extractObjectClass(name) })
		if err != nil {
			return "", nil, err
		}
		return name, ir.FromSlice(props).WithTag(tag), nil
	case tagList:
		vals, err := d.nested(d.extractList)
		if err != nil {
			return "", nil, err
		}
		return name, ir.FromSlice(vals).WithTag(tag), nil
	case tagDouble:
		f, err := d.f64()
		if err != nil {
			return "", nil, err
		}
		return name, ir.FromFloat(f).WithTag(tag), nil
	case tagDoubleShort:
		// scan recovery stops one byte short of a full tagDouble
		if d.remaining() > 0 && d.buf[d.off] == 'b' {
			d.off++
		}
		f, err := d.f64()
		if err != nil {
			return "", nil, err
		}
		return name, ir.FromFloat(f).WithTag(tagDouble), nil
	case tagUnitFloat:
		unit, err := d.bytes(4)
		if err != nil {
			return "", nil, err
		}
		f, err := d.f64()
		if err != nil {
			return "", nil, err
		}
		val := ir.FromKeyVals([]ir.KeyVal{
			{Key: ir.FromString("unit"), Val: ir.FromString(string(unit))},
			{Key: ir.FromString("value"), Val: ir.FromFloat(f)},
		})
		return name, val.WithTag(tag), nil
	case tagText:
		s, err := d.extractText()
		if err != nil {
			return "", nil, err
		}
		return name, ir.FromString(s).WithTag(tag), nil
	case tagEnum:
		val, err := d.extractEnum()
		if err != nil {
			return "", nil, err
		}
		return name, val.WithTag(tag), nil
	case tagLong:
		v, err := d.u32()
		if err != nil {
			return "", nil, err
		}
		return name, ir.FromUint(uint64(v)).WithTag(tag), nil
	case tagComp:
		v, err := d.u64()
		if err != nil {
			return "", nil, err
		}
		return name, ir.FromUint(v).WithTag(tag), nil
	case tagBool:
		v, err := d.boolByte()
		if err != nil {
			return "", nil, err
		}
		return name, ir.FromBool(v).WithTag(tag), nil
	default:
		if opaqueTags[tag] {
			return name, nil, nil
		}
		prefix := make([]byte, 0, len(name)+len(tag))
		prefix = append(prefix, name...)
		prefix = append(prefix, tag...)
		rName, rTag, err := d.scanForTag(prefix)
		if err != nil {
			return "", nil, err
		}
		return d.dispatch(rName, rTag)
	}
}

// nested runs f under the depth guard for recursive Objc/VlLs decoding.
func (d *decoder) nested(f func() ([]*ir.Node, error)) ([]*ir.Node, error) {
	if d.depth >= d.opts.maxDepth {
		return nil, fmt.Errorf("%w: %d at offset %d", ErrMaxDepth, d.depth, d.off)
	}
	d.depth++
	res, err := f()
	d.depth--
	return res, err
}

// extractObjectClass decodes a nested object as an ordered property
// list. Gradient descriptors are a hardcoded exception: one embedded
// text field and a fixed property count instead of the usual reserved
// bytes, class-name label, and count field.
func (d *decoder) extractObjectClass(name string) ([]*ir.Node, error) {
	var count uint32
	if name == gradientClass {
		if _, err := d.extractText(); err != nil {
			return nil, err
		}
		count = gradientPropertyCount
	} else {
		if err := d.skip(6); err != nil {
			return nil, err
		}
		if _, err := d.extractLabel(); err != nil {
			return nil, err
		}
		var err error
		count, err = d.u32()
		if err != nil {
			return nil, err
		}
	}
	var props []*ir.Node
	for i := uint32(0); i < count; i++ {
		prop, err := d.extractProperty()
		if err != nil {
			return nil, err
		}
		props = append(props, prop)
	}
	return props, nil
}

// extractList decodes a counted list of tagged values. Each element is
// decoded with its index as a synthetic property name; only the value
// survives. A recognized no-value tag contributes a null so element
// positions stay aligned with the declared count.
func (d *decoder) extractList() ([]*ir.Node, error) {
	count, err := d.u32()
	if err != nil {
		return nil, err
	}
	var vals []*ir.Node
	for i := uint32(0); i < count; i++ {
		tag, err := d.bytes(4)
		if err != nil {
			return nil, err
		}
		_, val, err := d.dispatch(strconv.Itoa(int(i)), string(tag))
		if err != nil {
			return nil, err
		}
		if val == nil {
			val = ir.Null()
		}
		vals = append(vals, val)
	}
	return vals, nil
}
