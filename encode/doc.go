// Package encode renders decoded IR nodes as text.
//
// # Usage
//
//	// Encode to pretty JSON (two-space indent, field insertion order)
//	err := encode.Encode(doc, os.Stdout)
//
//	// Encode compactly
//	err := encode.Encode(doc, w, encode.EncodeWire(true))
//
//	// Encode to YAML
//	err := encode.Encode(doc, w, encode.EncodeFormat(format.YAMLFormat))
//
// # Related Packages
//
//   - github.com/DavyJonesCodes/go-tpl/ir - IR representation
//   - github.com/DavyJonesCodes/go-tpl/decode - Decode TPL bytes to IR
package encode
