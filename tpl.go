// Package tpl decodes Photoshop tool preset (.tpl) resources.
package tpl

import (
	"github.com/DavyJonesCodes/go-tpl/decode"
	"github.com/DavyJonesCodes/go-tpl/encode"
	"github.com/DavyJonesCodes/go-tpl/ir"
)

// Decode decodes a fully loaded tool preset buffer into an object node
// keyed by tool-type label. See the decode package for options and
// error semantics.
func Decode(data []byte) (*ir.Node, error) {
	return decode.Decode(data)
}

// Serialize renders a decoded document as pretty-printed JSON with
// two-space indentation and field insertion order preserved.
func Serialize(doc *ir.Node) string {
	return encode.MustString(doc)
}
