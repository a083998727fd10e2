package decode

import "github.com/DavyJonesCodes/go-tpl/ir"

// Decode decodes a tool preset buffer into an object node keyed by
// tool-type label, each value an array of {name, properties} records.
//
// Header and section failures return the empty document together with
// ErrInvalidHeader or ErrToolSectionNotFound, so an empty-but-valid
// file remains distinguishable from a rejected one. Malformed tool data
// returns whatever decoded cleanly alongside the error.
func Decode(data []byte, opts ...Option) (*ir.Node, error) {
	dOpts := &decodeOpts{maxDepth: DefaultMaxDepth}
	for _, f := range opts {
		f(dOpts)
	}
	if _, err := ValidateHeader(data); err != nil {
		return &ir.Node{Type: ir.ObjectType}, err
	}
	start, err := LocateToolSection(data)
	if err != nil {
		return &ir.Node{Type: ir.ObjectType}, err
	}
	d := &decoder{buf: data, off: start, opts: dOpts}
	return d.readTools()
}
