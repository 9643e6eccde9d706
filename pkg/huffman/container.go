package huffman

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"shrinkit_go/pkg/bits"
)

var (
	ErrBadFormat          = errors.New("huffman: not a compressed container")
	ErrTruncated          = errors.New("huffman: container truncated")
	ErrInvalidSymbolCount = errors.New("huffman: container needs at least two symbols")
)

// Magic is the container tag, stored little-endian.
const Magic uint32 = 0xC5106BA7

// Container layout:
//
//	magic      = uint32 little-endian (A7 6B 10 C5)
//	count      = uint8, number of leaves minus one
//	leaves     = count+1 bytes, flatten pre-order
//	finalBits  = uint8, valid bits in the last payload byte (1..8)
//	payload    = tree shape bits (2c-1) then message bits, LSB first
//
// The shape bit count is implied by the leaf count.
const headerBytes = 4 + 1

/*** ---------- 쓰기 ---------- ***/

// WriteTo serializes d. d is validated first and left unchanged.
func (d *EncodedData) WriteTo(w io.Writer) (int64, error) {
	if err := d.Validate(); err != nil {
		return 0, err
	}
	if len(d.TreeLeaves) > 256 {
		return 0, fmt.Errorf("%w: %d leaves do not fit a count byte", ErrMalformedTree, len(d.TreeLeaves))
	}

	var hdr [headerBytes]byte
	binary.LittleEndian.PutUint32(hdr[0:4], Magic)
	hdr[4] = byte(len(d.TreeLeaves) - 1)

	total := len(d.TreeShape) + len(d.MessageBits)
	finalBits := total % 8
	if finalBits == 0 {
		finalBits = 8
	}

	var buf bytes.Buffer
	buf.Grow(headerBytes + len(d.TreeLeaves) + 1 + (total+7)/8)
	buf.Write(hdr[:])
	buf.Write(d.TreeLeaves)
	buf.WriteByte(byte(finalBits))

	bw := bits.NewWriter(&buf)
	if err := bw.WriteBits(d.TreeShape); err != nil {
		return 0, err
	}
	if err := bw.WriteBits(d.MessageBits); err != nil {
		return 0, err
	}
	if err := bw.Flush(); err != nil {
		return 0, err
	}
	return buf.WriteTo(w)
}

func (d *EncodedData) MarshalBinary() ([]byte, error) {
	var buf bytes.Buffer
	if _, err := d.WriteTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

/*** ---------- 읽기 ---------- ***/

// ReadFrom reads a whole container from r, replacing the contents of d.
func (d *EncodedData) ReadFrom(r io.Reader) (int64, error) {
	data, err := io.ReadAll(r)
	n := int64(len(data))
	if err != nil {
		return n, err
	}
	return n, d.UnmarshalBinary(data)
}

func (d *EncodedData) UnmarshalBinary(data []byte) error {
	if len(data) < 4 {
		return fmt.Errorf("%w: %d bytes", ErrBadFormat, len(data))
	}
	if binary.LittleEndian.Uint32(data[0:4]) != Magic {
		return fmt.Errorf("%w: bad magic %x", ErrBadFormat, data[0:4])
	}
	if len(data) < headerBytes {
		return fmt.Errorf("%w: missing symbol count", ErrTruncated)
	}
	count := int(data[4]) + 1
	if count < 2 {
		return fmt.Errorf("%w: %d", ErrInvalidSymbolCount, count)
	}
	rest := data[headerBytes:]
	if len(rest) < count+1 {
		return fmt.Errorf("%w: want %d leaf bytes and bit count, have %d bytes", ErrTruncated, count, len(rest))
	}
	leaves := append([]byte(nil), rest[:count]...)
	finalBits := int(rest[count])
	payload := rest[count+1:]
	if finalBits < 1 || finalBits > 8 {
		return fmt.Errorf("%w: final byte bit count %d", ErrBadFormat, finalBits)
	}

	shapeLen := 2*count - 1
	br := bits.NewReader(bytes.NewReader(payload))
	shape, err := br.ReadBits(shapeLen)
	if err != nil {
		return fmt.Errorf("%w: tree shape needs %d bits, have %d: %v", ErrTruncated, shapeLen, len(shape), err)
	}
	msgLen := len(payload)*8 - (8 - finalBits) - shapeLen
	if msgLen < 0 {
		return fmt.Errorf("%w: final byte ends inside the tree shape", ErrTruncated)
	}
	msg, err := br.ReadBits(msgLen)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrTruncated, err)
	}

	out := EncodedData{TreeShape: shape, TreeLeaves: leaves, MessageBits: msg}
	if err := out.Validate(); err != nil {
		return err
	}
	*d = out
	return nil
}
