// Package decode decodes Photoshop tool preset (TPL) resources into IR nodes.
//
// # Usage
//
//	// Decode a fully loaded tool preset buffer
//	doc, err := decode.Decode(data)
//	if err != nil {
//	    return err
//	}
//
//	// Decode with options
//	doc, err := decode.Decode(data, decode.MaxDepth(32))
//
// The decoder is a single synchronous pass over an immutable byte buffer.
// The result is an object node keyed by tool-type label, each value an
// array of tool records in file order.
//
// # Related Packages
//
//   - github.com/DavyJonesCodes/go-tpl/ir - IR representation
//   - github.com/DavyJonesCodes/go-tpl/encode - Encode IR to text
package decode
