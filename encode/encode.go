package encode

import (
	"encoding/json"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/DavyJonesCodes/go-tpl/format"
	"github.com/DavyJonesCodes/go-tpl/ir"
)

type EncState struct {
	depth, indent int
	wire          bool

	format format.Format

	Color func(ir.Type, ColorAttr, string) string
}

func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{
		indent: 2,
	}
	for _, opt := range opts {
		opt(es)
	}
	if !es.format.IsJSON() {
		return encodeYAML(node, w)
	}
	if err := encode(node, w, es); err != nil {
		return err
	}
	return writeString(w, "\n")
}

// Helper functions for writing

func writeNL(w io.Writer, es *EncState) error {
	if es.wire {
		return nil
	}
	indentString := strings.Repeat(strings.Repeat(" ", es.indent), es.depth)
	return writeString(w, "\n"+indentString)
}

func writeString(w io.Writer, s string) error {
	_, err := w.Write([]byte(s))
	return err
}

func writeSep(w io.Writer, es *EncState, cType ir.Type, sep string) error {
	if es.Color != nil {
		sep = es.Color(cType, SepColor, sep)
	}
	return writeString(w, sep)
}

func writeField(w io.Writer, key string, es *EncState) error {
	v := quoteString(key)
	sep := ":"
	if es.Color != nil {
		v = es.Color(ir.ObjectType, FieldColor, v)
		sep = es.Color(ir.ObjectType, SepColor, sep)
	}
	if err := writeString(w, v+sep); err != nil {
		return err
	}
	if es.wire {
		return nil
	}
	return writeString(w, " ")
}

// quoteString produces a JSON string literal.
func quoteString(v string) string {
	d, err := json.Marshal(v)
	if err != nil {
		return strconv.Quote(v)
	}
	return string(d)
}

func applyValueColor(es *EncState, nodeType ir.Type, v string) string {
	if es.Color == nil {
		return v
	}
	return es.Color(nodeType, ValueColor, v)
}

// Main encode function

func encode(node *ir.Node, w io.Writer, es *EncState) error {
	switch node.Type {
	case ir.ObjectType:
		return encodeObject(node, w, es)
	case ir.ArrayType:
		return encodeArray(node, w, es)
	case ir.StringType:
		return encodeString(node, w, es)
	case ir.NumberType:
		return encodeNumber(node, w, es)
	case ir.BoolType:
		return encodeBool(node, w, es)
	case ir.NullType:
		return encodeNull(node, w, es)
	default:
		panic("type")
	}
}

func encodeObject(node *ir.Node, w io.Writer, es *EncState) error {
	n := len(node.Fields)
	if n == 0 {
		return writeSep(w, es, ir.ObjectType, "{}")
	}
	if err := writeSep(w, es, ir.ObjectType, "{"); err != nil {
		return err
	}
	es.depth++
	for i, yField := range node.Fields {
		if err := writeNL(w, es); err != nil {
			return err
		}
		if err := writeField(w, yField.String, es); err != nil {
			return err
		}
		if err := encode(node.Values[i], w, es); err != nil {
			return err
		}
		if i < n-1 {
			if err := writeSep(w, es, ir.ObjectType, ","); err != nil {
				return err
			}
		}
	}
	es.depth--
	if err := writeNL(w, es); err != nil {
		return err
	}
	return writeSep(w, es, ir.ObjectType, "}")
}

func encodeArray(node *ir.Node, w io.Writer, es *EncState) error {
	n := len(node.Values)
	if n == 0 {
		return writeSep(w, es, ir.ArrayType, "[]")
	}
	if err := writeSep(w, es, ir.ArrayType, "["); err != nil {
		return err
	}
	es.depth++
	for i, val := range node.Values {
		if err := writeNL(w, es); err != nil {
			return err
		}
		if err := encode(val, w, es); err != nil {
			return err
		}
		if i < n-1 {
			if err := writeSep(w, es, ir.ArrayType, ","); err != nil {
				return err
			}
		}
	}
	es.depth--
	if err := writeNL(w, es); err != nil {
		return err
	}
	return writeSep(w, es, ir.ArrayType, "]")
}

func encodeString(node *ir.Node, w io.Writer, es *EncState) error {
	return writeString(w, applyValueColor(es, ir.StringType, quoteString(node.String)))
}

func encodeNumber(node *ir.Node, w io.Writer, es *EncState) error {
	var v string
	switch {
	case node.Int64 != nil:
		v = strconv.FormatInt(*node.Int64, 10)
	case node.Float64 != nil:
		f := *node.Float64
		if math.IsNaN(f) || math.IsInf(f, 0) {
			// not representable in JSON
			return encodeNull(node, w, es)
		}
		v = strconv.FormatFloat(f, 'g', -1, 64)
	default:
		v = node.Number
	}
	return writeString(w, applyValueColor(es, ir.NumberType, v))
}

func encodeBool(node *ir.Node, w io.Writer, es *EncState) error {
	return writeString(w, applyValueColor(es, ir.BoolType, strconv.FormatBool(node.Bool)))
}

func encodeNull(node *ir.Node, w io.Writer, es *EncState) error {
	return writeString(w, applyValueColor(es, ir.NullType, "null"))
}
