// Package ir provides the intermediate representation for decoded tool
// preset documents.
//
// # Overview
//
// A decoded tool preset is a tree of ir.Node values. The IR is a simple
// recursive structure that is readily representable in JSON and YAML,
// which makes it useful for consumers that only want the decoded data
// and not the binary grammar behind it.
//
// # Node Structure
//
// A Node represents a single decoded value. Nodes can be:
//
//   - Atomic types: null, boolean, number, string
//   - Composite types: object (key-value pairs), array (ordered list)
//
// The Tag field carries the 4-byte type tag a value was decoded from,
// when it came from a tagged position in the byte stream.
//
// # IR Structure Constraints
//
// For ObjectType nodes, Fields[i] is the key for the value at Values[i],
// so there will always be the same number of fields as values. Field
// order is insertion order and is preserved by encoding; tool preset
// property order is meaningful to consumers.
//
// Number values are placed under:
//   - Int64: if it fits in a 64-bit signed integer
//   - Float64: if it is a floating point number
//   - Number: as a decimal string fallback for unsigned values that
//     exceed the int64 range
//
// # Creating Nodes
//
// Use constructor functions to create nodes:
//
//	node := ir.FromString("sampledData")
//	num := ir.FromInt(42)
//	flag := ir.FromBool(true)
//	obj := ir.FromKeyVals([]ir.KeyVal{
//	    {Key: ir.FromString("unit"), Val: ir.FromString("#Pxl")},
//	    {Key: ir.FromString("value"), Val: ir.FromFloat(25)},
//	})
package ir
