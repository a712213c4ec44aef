package huffman

import (
	"bufio"
	"bytes"
	"io"
	"math"

	"github.com/pkg/errors"
)

// maxContainerMessage bounds the message size Container.Decode allocates for.
const maxContainerMessage = 1 << 32

// Container is a Huffman container held in memory: the frequency table from
// the header and the bit-packed payload that follows it.
type Container struct {
	Table   *FrequencyTable
	Payload []byte
}

// NewContainer encodes data into a Container.
func NewContainer(data []byte) (*Container, error) {
	code, err := TrainCode(data)
	if err != nil {
		return nil, err
	}
	var payload bytes.Buffer
	payload.Grow(int(code.Stats().PayloadBytes()))
	bw := NewBitWriter(&payload)
	for _, b := range data {
		if err := bw.WritePath(code.symbols[b]); err != nil {
			return nil, err
		}
	}
	if err := bw.Flush(); err != nil {
		return nil, err
	}
	return &Container{Table: code.table, Payload: payload.Bytes()}, nil
}

// Len returns the decoded message length.
func (c *Container) Len() uint64 {
	return c.Table.Total()
}

// SpaceUsed returns the serialized size of the container in bytes.
func (c *Container) SpaceUsed() int {
	return HeaderSize(c.Table.Len()) + len(c.Payload)
}

// Decode returns the original message.
func (c *Container) Decode() ([]byte, error) {
	if err := validateContainer(c); err != nil {
		return nil, err
	}
	root, err := BuildTree(c.Table)
	if err != nil {
		return nil, err
	}
	if c.Table.Total() > maxContainerMessage {
		return nil, errors.Errorf("huffman: message of %d bytes too large to decode in memory", c.Table.Total())
	}
	out := make([]byte, c.Table.Total())
	br := NewBitReader(bytes.NewReader(c.Payload), root, c.Table.Total())
	if _, err := io.ReadFull(br, out); err != nil {
		return nil, err
	}
	return out, nil
}

func validateContainer(c *Container) error {
	if c.Table == nil || c.Table.Len() == 0 {
		return ErrEmptyInput
	}
	return nil
}

// expectedPayload returns the payload size implied by the table.
func expectedPayload(ft *FrequencyTable) (int, error) {
	code, err := NewCode(ft)
	if err != nil {
		return 0, err
	}
	payloadBits, ok := code.payloadBits()
	if !ok {
		return 0, errors.Wrap(ErrInvalidHeader, "payload size overflows 64 bits")
	}
	n := Stats{PayloadBits: payloadBits}.PayloadBytes()
	if n > math.MaxInt {
		return 0, errors.Wrapf(ErrInvalidHeader, "payload of %d bytes is not addressable", n)
	}
	return int(n), nil
}

// WriteTo serializes the container to w.
func (c *Container) WriteTo(w io.Writer) (int64, error) {
	if err := validateContainer(c); err != nil {
		return 0, errors.Wrap(err, "invalid container")
	}
	total, err := WriteHeader(w, c.Table)
	if err != nil {
		return total, err
	}
	n, err := w.Write(c.Payload)
	total += int64(n)
	if err != nil {
		return total, errors.Wrap(err, "write payload")
	}
	if n != len(c.Payload) {
		return total, io.ErrShortWrite
	}
	return total, nil
}

// ReadFrom reads a whole container from r; everything after the header is
// taken as payload and must match the size the header implies.
func (c *Container) ReadFrom(r io.Reader) (int64, error) {
	if _, ok := r.(io.ByteReader); !ok {
		r = bufio.NewReader(r)
	}
	ft, total, err := ReadHeader(r)
	if err != nil {
		return total, err
	}

	payload, err := io.ReadAll(r)
	total += int64(len(payload))
	if err != nil {
		return total, errors.Wrapf(err, "read payload at offset %d", HeaderSize(ft.Len()))
	}

	want, err := expectedPayload(ft)
	if err != nil {
		return total, err
	}
	switch {
	case len(payload) < want:
		return total, errors.Wrapf(ErrTruncatedPayload, "have %d of %d payload bytes", len(payload), want)
	case len(payload) > want:
		return total, errors.Errorf("huffman: %d unexpected bytes after payload", len(payload)-want)
	}

	c.Table = ft
	c.Payload = payload
	return total, nil
}
