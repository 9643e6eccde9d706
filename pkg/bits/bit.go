package bits

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidBitValue = errors.New("bits: invalid bit value")
	ErrUnexpectedEOF   = errors.New("bits: unexpected end of stream")
)

// Bit is a single binary digit. Its value is always 0 or 1.
type Bit uint8

const (
	Zero Bit = 0
	One  Bit = 1
)

// New validates v and returns the matching Bit.
// The character codes '0' and '1' are rejected like any other value.
func New(v int) (Bit, error) {
	switch v {
	case 0:
		return Zero, nil
	case 1:
		return One, nil
	case '0', '1':
		return Zero, fmt.Errorf("%w: character %q is not the number %d", ErrInvalidBitValue, rune(v), v-'0')
	}
	return Zero, fmt.Errorf("%w: %d", ErrInvalidBitValue, v)
}

// FromInts converts a literal 0/1 list, e.g. FromInts(1, 0, 1).
func FromInts(vs ...int) ([]Bit, error) {
	out := make([]Bit, 0, len(vs))
	for i, v := range vs {
		b, err := New(v)
		if err != nil {
			return nil, fmt.Errorf("index %d: %w", i, err)
		}
		out = append(out, b)
	}
	return out, nil
}

func (b Bit) String() string {
	if b == One {
		return "1"
	}
	return "0"
}

// Format renders a bit sequence as "1011...".
func Format(bs []Bit) string {
	buf := make([]byte, len(bs))
	for i, b := range bs {
		buf[i] = '0' + byte(b)
	}
	return string(buf)
}
