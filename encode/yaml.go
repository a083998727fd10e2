package encode

import (
	"io"

	"github.com/DavyJonesCodes/go-tpl/ir"

	"github.com/goccy/go-yaml"
)

// encodeYAML renders a node via goccy/go-yaml, using MapSlice so field
// insertion order survives.
func encodeYAML(node *ir.Node, w io.Writer) error {
	d, err := yaml.Marshal(toYAML(node))
	if err != nil {
		return err
	}
	_, err = w.Write(d)
	return err
}

func toYAML(node *ir.Node) any {
	switch node.Type {
	case ir.ObjectType:
		ms := make(yaml.MapSlice, 0, len(node.Fields))
		for i, yField := range node.Fields {
			ms = append(ms, yaml.MapItem{
				Key:   yField.String,
				Value: toYAML(node.Values[i]),
			})
		}
		return ms
	case ir.ArrayType:
		vs := make([]any, 0, len(node.Values))
		for _, val := range node.Values {
			vs = append(vs, toYAML(val))
		}
		return vs
	case ir.StringType:
		return node.String
	case ir.NumberType:
		switch {
		case node.Int64 != nil:
			return *node.Int64
		case node.Float64 != nil:
			return *node.Float64
		default:
			return node.Number
		}
	case ir.BoolType:
		return node.Bool
	default:
		return nil
	}
}
