package huffman

import (
	"io"

	"github.com/pkg/errors"
)

// BitWriter packs branch decisions into bytes, least significant bit first.
// A Left decision sets its bit and a Right decision leaves it clear.
// Full bytes are written as soon as they are complete; Flush writes the
// trailing partial byte with its unused high bits zero.
type BitWriter struct {
	w       io.ByteWriter
	acc     byte  // pending bits
	n       uint8 // number of pending bits, 0-7 between calls
	written int64
}

// NewBitWriter returns a BitWriter emitting bytes to w.
func NewBitWriter(w io.ByteWriter) *BitWriter {
	return &BitWriter{w: w}
}

// WritePath appends the decisions of p to the stream.
func (bw *BitWriter) WritePath(p Path) error {
	for _, d := range p {
		if d == Left {
			bw.acc |= 1 << bw.n
		}
		bw.n++
		if bw.n == 8 {
			if err := bw.emit(); err != nil {
				return err
			}
		}
	}
	return nil
}

// Flush writes the pending partial byte, if any. It must be called once after
// the last WritePath.
func (bw *BitWriter) Flush() error {
	if bw.n == 0 {
		return nil
	}
	return bw.emit()
}

func (bw *BitWriter) emit() error {
	if err := bw.w.WriteByte(bw.acc); err != nil {
		return errors.Wrapf(err, "write payload byte %d", bw.written)
	}
	bw.written++
	bw.acc = 0
	bw.n = 0
	return nil
}

// Pending returns the number of bits held but not yet written.
func (bw *BitWriter) Pending() int {
	return int(bw.n)
}

// Written returns the number of bytes emitted so far.
func (bw *BitWriter) Written() int64 {
	return bw.written
}

// BitReader decodes a payload by walking the tree one bit at a time:
// a set bit descends Left, a clear bit descends Right.
// It stops after the configured number of symbols; the unused high bits of the
// final byte are never inspected.
type BitReader struct {
	r       io.ByteReader
	root    *Node
	size    uint64
	emitted uint64
	cur     byte
	pos     uint8 // bits of cur consumed; 8 forces a fresh source byte
}

// NewBitReader returns a reader that decodes size symbols from r using root.
func NewBitReader(r io.ByteReader, root *Node, size uint64) *BitReader {
	return &BitReader{r: r, root: root, size: size, pos: 8}
}

// ReadByte decodes the next symbol. It returns io.EOF once size symbols have
// been produced. With a single-leaf tree no source bits are consumed.
func (br *BitReader) ReadByte() (byte, error) {
	if br.emitted >= br.size {
		return 0, io.EOF
	}
	n := br.root
	for !n.IsLeaf() {
		if br.pos == 8 {
			b, err := br.r.ReadByte()
			if err == io.EOF {
				return 0, errors.Wrapf(ErrTruncatedPayload, "after %d of %d symbols", br.emitted, br.size)
			}
			if err != nil {
				return 0, errors.Wrap(err, "read payload byte")
			}
			br.cur, br.pos = b, 0
		}
		if br.cur>>br.pos&1 == 1 {
			n = n.Left
		} else {
			n = n.Right
		}
		br.pos++
	}
	br.emitted++
	return n.Symbol, nil
}

// Read decodes symbols into p.
func (br *BitReader) Read(p []byte) (int, error) {
	for i := range p {
		b, err := br.ReadByte()
		if err != nil {
			return i, err
		}
		p[i] = b
	}
	return len(p), nil
}

// Remaining returns the number of symbols still to be decoded.
func (br *BitReader) Remaining() uint64 {
	return br.size - br.emitted
}
