package sbw

import (
	"fmt"
)

// cursor is a bounds-checked reader over a fully buffered source. Every
// read reports truncation as a wrapped ErrParse instead of panicking, which
// keeps the short-read contract uniform across the fixed header, record
// blocks and length-prefixed fields.
type cursor struct {
	buf []byte
	pos int
}

func (c *cursor) take(n int, what string) ([]byte, error) {
	if n > len(c.buf)-c.pos {
		return nil, fmt.Errorf("%w: truncated %s at offset %d: need %d bytes, have %d",
			ErrParse, what, c.pos, n, len(c.buf)-c.pos)
	}
	b := c.buf[c.pos : c.pos+n]
	c.pos += n
	return b, nil
}

func (c *cursor) skip(n int, what string) error {
	_, err := c.take(n, what)
	return err
}

// lengthPrefixed reads a one-byte unsigned length followed by that many
// bytes. A zero length yields an empty slice with no further read.
func (c *cursor) lengthPrefixed(what string) ([]byte, error) {
	n, err := c.take(1, what+" length")
	if err != nil {
		return nil, err
	}
	return c.take(int(n[0]), what)
}
