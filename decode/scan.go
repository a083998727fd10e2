package decode

import (
	"fmt"
	"strings"

	"github.com/DavyJonesCodes/go-tpl/debug"
)

// scanForTag recovers a (name, tag) pair when the 4 bytes at the tag
// position match no known tag. That happens when the true grammar
// element is a compound field whose actual type tag appears later in
// the stream. The bytes seen so far seed a growing prefix; the scan
// consumes one byte at a time until the prefix ends with a known tag
// literal, then splits the prefix into the embedded field name and the
// recovered tag. The scan is bounded by the buffer length.
func (d *decoder) scanForTag(prefix []byte) (string, string, error) {
	start := d.off
	for {
		if tag, ok := trailingTag(prefix); ok {
			if debug.Scan() {
				debug.Logf("scan recovered %q + %q after %d bytes\n",
					prefix[:len(prefix)-len(tag)], tag, d.off-start)
			}
			return string(prefix[:len(prefix)-len(tag)]), tag, nil
		}
		if d.remaining() == 0 {
			return "", "", fmt.Errorf("%w: no known tag after offset %d (prefix %q)",
				ErrUnrecoverableScan, start, prefix)
		}
		prefix = append(prefix, d.buf[d.off])
		d.off++
	}
}

func trailingTag(prefix []byte) (string, bool) {
	s := string(prefix)
	for _, tag := range scanTags {
		if strings.HasSuffix(s, tag) {
			return tag, true
		}
	}
	return "", false
}
