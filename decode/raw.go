package decode

import (
	"encoding/binary"
	"fmt"
	"math"
)

// decoder is a cursor over an immutable tool preset buffer. Every read
// advances off; reads past the end of the buffer fail with
// ErrUnexpectedEOF rather than returning truncated slices.
type decoder struct {
	buf   []byte
	off   int
	depth int
	opts  *decodeOpts
}

func (d *decoder) remaining() int {
	return len(d.buf) - d.off
}

func (d *decoder) bytes(n int) ([]byte, error) {
	if n < 0 || d.remaining() < n {
		return nil, fmt.Errorf("%w: need %d bytes at offset %d, have %d",
			ErrUnexpectedEOF, n, d.off, d.remaining())
	}
	b := d.buf[d.off : d.off+n]
	d.off += n
	return b, nil
}

func (d *decoder) peek(n int) ([]byte, error) {
	if n < 0 || d.remaining() < n {
		return nil, fmt.Errorf("%w: need %d bytes at offset %d, have %d",
			ErrUnexpectedEOF, n, d.off, d.remaining())
	}
	return d.buf[d.off : d.off+n], nil
}

func (d *decoder) skip(n int) error {
	_, err := d.bytes(n)
	return err
}

func (d *decoder) u32() (uint32, error) {
	b, err := d.bytes(4)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(b), nil
}

func (d *decoder) u64() (uint64, error) {
	b, err := d.bytes(8)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint64(b), nil
}

func (d *decoder) f64() (float64, error) {
	v, err := d.u64()
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(v), nil
}

func (d *decoder) boolByte() (bool, error) {
	b, err := d.bytes(1)
	if err != nil {
		return false, err
	}
	return b[0] != 0, nil
}
