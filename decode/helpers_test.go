package decode

import (
	"encoding/binary"
	"math"
)

func be32(n uint32) []byte {
	d := make([]byte, 4)
	binary.BigEndian.PutUint32(d, n)
	return d
}

func be64(n uint64) []byte {
	d := make([]byte, 8)
	binary.BigEndian.PutUint64(d, n)
	return d
}

func f64bits(f float64) []byte {
	return be64(math.Float64bits(f))
}

// label encodes a length-prefixed label.
func label(s string) []byte {
	return append(be32(uint32(len(s))), s...)
}

// utf16Text encodes s as a length-prefixed text field of UTF-16 style
// code units with a null terminator, the way preset files store names.
func utf16Text(s string) []byte {
	d := be32(uint32(len(s) + 1))
	for i := 0; i < len(s); i++ {
		d = append(d, 0, s[i])
	}
	return append(d, 0, 0)
}

func cat(parts ...[]byte) []byte {
	var d []byte
	for _, p := range parts {
		d = append(d, p...)
	}
	return d
}

func testDecoder(buf []byte) *decoder {
	return &decoder{
		buf:  buf,
		opts: &decodeOpts{maxDepth: DefaultMaxDepth},
	}
}
