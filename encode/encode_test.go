package encode

import (
	"bytes"
	"strings"
	"testing"

	"github.com/DavyJonesCodes/go-tpl/format"
	"github.com/DavyJonesCodes/go-tpl/ir"

	"github.com/google/go-cmp/cmp"
)

func sampleDoc() *ir.Node {
	return ir.FromKeyVals([]ir.KeyVal{
		{Key: ir.FromString("name"), Val: ir.FromString("MyBrush")},
		{Key: ir.FromString("count"), Val: ir.FromInt(2)},
		{Key: ir.FromString("opacity"), Val: ir.FromFloat(0.5)},
		{Key: ir.FromString("ok"), Val: ir.FromBool(true)},
		{Key: ir.FromString("none"), Val: ir.Null()},
		{Key: ir.FromString("list"), Val: ir.FromSlice([]*ir.Node{
			ir.FromInt(1),
			ir.FromString("two"),
		})},
		{Key: ir.FromString("empty"), Val: &ir.Node{Type: ir.ObjectType}},
	})
}

func TestEncodeJSON(t *testing.T) {
	want := `{
  "name": "MyBrush",
  "count": 2,
  "opacity": 0.5,
  "ok": true,
  "none": null,
  "list": [
    1,
    "two"
  ],
  "empty": {}
}
`
	buf := bytes.NewBuffer(nil)
	if err := Encode(sampleDoc(), buf); err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(want, buf.String()); d != "" {
		t.Errorf("unexpected output (-want +got):\n%s", d)
	}
}

func TestEncodeWire(t *testing.T) {
	doc := ir.FromKeyVals([]ir.KeyVal{
		{Key: ir.FromString("a"), Val: ir.FromInt(1)},
		{Key: ir.FromString("b"), Val: ir.FromSlice([]*ir.Node{
			ir.FromBool(true),
			ir.FromBool(false),
		})},
	})
	buf := bytes.NewBuffer(nil)
	if err := Encode(doc, buf, EncodeWire(true)); err != nil {
		t.Fatal(err)
	}
	want := `{"a":1,"b":[true,false]}` + "\n"
	if buf.String() != want {
		t.Errorf("got %q want %q", buf.String(), want)
	}
}

func TestEncodeIndent(t *testing.T) {
	doc := ir.FromKeyVals([]ir.KeyVal{
		{Key: ir.FromString("a"), Val: ir.FromInt(1)},
	})
	buf := bytes.NewBuffer(nil)
	if err := Encode(doc, buf, Indent(4)); err != nil {
		t.Fatal(err)
	}
	want := "{\n    \"a\": 1\n}\n"
	if buf.String() != want {
		t.Errorf("got %q want %q", buf.String(), want)
	}
}

func TestEncodeStringEscapes(t *testing.T) {
	doc := ir.FromString("a\"b\\c\n")
	buf := bytes.NewBuffer(nil)
	if err := Encode(doc, buf, EncodeWire(true)); err != nil {
		t.Fatal(err)
	}
	want := `"a\"b\\c\n"` + "\n"
	if buf.String() != want {
		t.Errorf("got %q want %q", buf.String(), want)
	}
}

func TestEncodeYAML(t *testing.T) {
	buf := bytes.NewBuffer(nil)
	if err := Encode(sampleDoc(), buf, EncodeFormat(format.YAMLFormat)); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.Contains(out, "name: MyBrush") {
		t.Errorf("missing name in %q", out)
	}
	// insertion order must survive
	if strings.Index(out, "name:") > strings.Index(out, "count:") {
		t.Errorf("field order lost in %q", out)
	}
}

func TestFormatFromOpts(t *testing.T) {
	if f := FormatFromOpts(EncodeFormat(format.YAMLFormat)); f != format.YAMLFormat {
		t.Errorf("got %s want yaml", f)
	}
	// the zero value is JSON, the default output format
	f := FormatFromOpts(EncodeWire(true))
	if !f.IsJSON() {
		t.Errorf("got %s want json", f)
	}
	if f.Suffix() != ".json" {
		t.Errorf("got suffix %q want .json", f.Suffix())
	}
}

func TestMustString(t *testing.T) {
	doc := ir.FromKeyVals([]ir.KeyVal{
		{Key: ir.FromString("a"), Val: ir.FromInt(1)},
	})
	got := MustString(doc)
	if strings.HasSuffix(got, "\n") {
		t.Errorf("got trailing newline in %q", got)
	}
}
