package decode

import (
	"errors"
	"testing"

	"github.com/DavyJonesCodes/go-tpl/ir"
)

func TestPlaceholderScanRecovery(t *testing.T) {
	// the 4 bytes at the tag position are really the head of a compound
	// field name; the true tag appears 6 bytes later
	d := testDecoder(cat(
		label("Size"), []byte("ABCD"), []byte("EFlong"), be32(7),
	))
	prop, err := d.extractProperty()
	if err != nil {
		t.Fatal(err)
	}
	inner := ir.Get(prop, "SizeABCDEF")
	if inner == nil {
		t.Fatalf("missing recovered field, got %v", prop.Fields)
	}
	if v := ir.Get(inner, "type"); v == nil || v.String != "long" {
		t.Errorf("got type %v want long", v)
	}
	if v := ir.Get(inner, "value"); v == nil || v.Int64 == nil || *v.Int64 != 7 {
		t.Errorf("got value %v want 7", v)
	}
	if d.remaining() != 0 {
		t.Errorf("got %d bytes remaining, want 0", d.remaining())
	}
}

func TestPlaceholderScanShortDouble(t *testing.T) {
	// "dou" is the only 3-byte literal; recovery stops one byte short
	// of the full doub tag and dispatch consumes the trailing b
	d := testDecoder(cat(
		label("Opct"), []byte("Q1!2"), []byte("xdoub"), f64bits(0.75),
	))
	prop, err := d.extractProperty()
	if err != nil {
		t.Fatal(err)
	}
	inner := ir.Get(prop, "OpctQ1!2x")
	if inner == nil {
		t.Fatalf("missing recovered field, got %v", prop.Fields)
	}
	if v := ir.Get(inner, "type"); v == nil || v.String != "doub" {
		t.Errorf("got type %v want doub", v)
	}
	if v := ir.Get(inner, "value"); v == nil || v.Float64 == nil || *v.Float64 != 0.75 {
		t.Errorf("got value %v want 0.75", v)
	}
	if d.remaining() != 0 {
		t.Errorf("got %d bytes remaining, want 0", d.remaining())
	}
}

func TestPlaceholderScanGlobalObject(t *testing.T) {
	// a recovered GlbO decodes as a nested object: a global object has
	// the same layout as an Objc descriptor
	d := testDecoder(cat(
		label("Tool"), []byte("Q1!2"), []byte("xyGlbO"),
		make([]byte, 6), label("brushTool"), be32(1),
		label("Size"), []byte("long"), be32(7),
	))
	prop, err := d.extractProperty()
	if err != nil {
		t.Fatal(err)
	}
	inner := ir.Get(prop, "ToolQ1!2xy")
	if inner == nil {
		t.Fatalf("missing recovered field, got %v", prop.Fields)
	}
	if v := ir.Get(inner, "type"); v == nil || v.String != "GlbO" {
		t.Errorf("got type %v want GlbO", v)
	}
	obj := ir.Get(inner, "value")
	if obj == nil || obj.Type != ir.ArrayType || len(obj.Values) != 1 {
		t.Fatalf("got %v want property list of 1", obj)
	}
	if v := ir.Get(ir.Get(obj.Values[0], "Size"), "value"); v == nil || v.Int64 == nil || *v.Int64 != 7 {
		t.Errorf("got nested Size %v want 7", v)
	}
	if d.remaining() != 0 {
		t.Errorf("got %d bytes remaining, want 0", d.remaining())
	}
}

func TestPlaceholderScanExhausted(t *testing.T) {
	d := testDecoder(cat(label("Xxxx"), []byte("!!!!"), []byte("zzzz")))
	if _, err := d.extractProperty(); !errors.Is(err, ErrUnrecoverableScan) {
		t.Errorf("got error %v want %v", err, ErrUnrecoverableScan)
	}
}
