package bits

import (
	"bufio"
	"io"
)

/*** ---------- LSB-first 비트 라이터 ---------- ***/

// Writer packs bits into bytes, bit i of a byte at 1<<i.
// Call Flush to emit a partial final byte (zero padded).
type Writer struct {
	w     io.Writer
	buf   byte
	nbits uint8
	count int
}

func NewWriter(w io.Writer) *Writer { return &Writer{w: w} }

func (bw *Writer) WriteBit(b Bit) error {
	if b == One {
		bw.buf |= 1 << bw.nbits
	}
	bw.nbits++
	bw.count++
	if bw.nbits == 8 {
		return bw.emit()
	}
	return nil
}

func (bw *Writer) WriteBits(bs []Bit) error {
	for _, b := range bs {
		if err := bw.WriteBit(b); err != nil {
			return err
		}
	}
	return nil
}

// Flush writes any pending partial byte. It is a no-op on a byte boundary.
func (bw *Writer) Flush() error {
	if bw.nbits == 0 {
		return nil
	}
	return bw.emit()
}

// Count returns the number of bits accepted so far.
func (bw *Writer) Count() int { return bw.count }

func (bw *Writer) emit() error {
	_, err := bw.w.Write([]byte{bw.buf})
	bw.buf, bw.nbits = 0, 0
	return err
}

/*** ---------- LSB-first 비트 리더 ---------- ***/

// Reader yields bits in the order a Writer produced them.
type Reader struct {
	r     io.ByteReader
	buf   byte
	nbits uint8 // 남은 비트 수
	pos   uint8
}

func NewReader(r io.Reader) *Reader {
	br, ok := r.(io.ByteReader)
	if !ok {
		br = bufio.NewReader(r)
	}
	return &Reader{r: br}
}

func (br *Reader) ReadBit() (Bit, error) {
	if br.nbits == 0 {
		c, err := br.r.ReadByte()
		if err != nil {
			if err == io.EOF {
				return Zero, ErrUnexpectedEOF
			}
			return Zero, err
		}
		br.buf, br.nbits, br.pos = c, 8, 0
	}
	v := Bit((br.buf >> br.pos) & 1)
	br.pos++
	br.nbits--
	return v, nil
}

// ReadBits reads exactly n bits. On starvation it returns the bits read so
// far together with ErrUnexpectedEOF.
func (br *Reader) ReadBits(n int) ([]Bit, error) {
	out := make([]Bit, 0, n)
	for len(out) < n {
		b, err := br.ReadBit()
		if err != nil {
			return out, err
		}
		out = append(out, b)
	}
	return out, nil
}
