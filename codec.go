// Package huffman implements a static Huffman codec for byte streams.
//
// Encoding scans the input once to build a byte histogram, derives a prefix
// code from it with a deterministic tie-break, writes the histogram as a header
// and then the bit-packed codewords. Decoding rebuilds the same tree from the
// header and walks it bit by bit.
package huffman

import (
	"bufio"
	"bytes"
	"io"
	"unicode/utf8"

	"github.com/op/go-logging"
	"github.com/pkg/errors"
)

var log = logging.MustGetLogger("huffman")

const defaultBufferSize = 64 * 1024

// Config holds configuration for encoders and decoders.
type Config struct {
	BufferSize int // Buffer size for source and sink I/O (0 = 64 KiB)
	TreeCache  int // Number of trees kept for reuse (0 = no cache)
}

// Option is a functional option for configuring an Encoder or Decoder.
type Option func(*Config)

// WithBufferSize sets the size of the buffers wrapped around source and sink.
func WithBufferSize(n int) Option {
	return func(c *Config) {
		c.BufferSize = n
	}
}

// WithTreeCache keeps up to n encoding trees, keyed by frequency table, so
// repeated messages with the same histogram skip tree construction.
func WithTreeCache(n int) Option {
	return func(c *Config) {
		c.TreeCache = n
	}
}

func newConfig(opts []Option) Config {
	var cfg Config
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.BufferSize <= 0 {
		cfg.BufferSize = defaultBufferSize
	}
	return cfg
}

// Encoder writes Huffman containers. It is safe for concurrent use.
type Encoder struct {
	config Config
	trees  *treeCache
}

// NewEncoder creates a new encoder with the given options.
func NewEncoder(opts ...Option) *Encoder {
	cfg := newConfig(opts)
	return &Encoder{config: cfg, trees: newTreeCache(cfg.TreeCache)}
}

// Encode reads src from its current offset to the end, then rewinds to that
// offset and writes the container to dst.
func (e *Encoder) Encode(src io.ReadSeeker, dst io.Writer) error {
	start, err := src.Seek(0, io.SeekCurrent)
	if err != nil {
		return errors.Wrap(err, "locate source offset")
	}
	ft, err := ScanFrequencies(src)
	if err != nil {
		return err
	}
	code, err := e.code(ft)
	if err != nil {
		return err
	}
	if _, err := src.Seek(start, io.SeekStart); err != nil {
		return errors.Wrap(err, "rewind source")
	}
	return e.encode(code, bufio.NewReaderSize(src, e.config.BufferSize), dst)
}

// EncodeBytes returns the container for data.
func (e *Encoder) EncodeBytes(data []byte) ([]byte, error) {
	code, err := e.code(NewFrequencyTable(data))
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	buf.Grow(int(code.Stats().EncodedBytes()))
	if err := e.encode(code, bytes.NewReader(data), &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (e *Encoder) code(ft *FrequencyTable) (*Code, error) {
	if ft.Len() == 0 {
		return nil, ErrEmptyInput
	}
	root, err := e.trees.tree(ft)
	if err != nil {
		return nil, err
	}
	return &Code{table: ft, root: root, symbols: NewSymbolTable(root)}, nil
}

// encode writes the header for code, then one codeword per byte of src.
// src must yield exactly the message the table was built from.
func (e *Encoder) encode(code *Code, src io.ByteReader, dst io.Writer) error {
	out := bufio.NewWriterSize(dst, e.config.BufferSize)
	headerBytes, err := WriteHeader(out, code.table)
	if err != nil {
		return err
	}

	bw := NewBitWriter(out)
	want := code.table.Total()
	var seen uint64
	for {
		b, err := src.ReadByte()
		if err == io.EOF {
			break
		}
		if err != nil {
			return errors.Wrapf(err, "read source byte %d", seen)
		}
		p, ok := code.symbols[b]
		if !ok || seen == want {
			return errors.Wrapf(ErrSourceChanged, "unexpected byte %#02x at offset %d", b, seen)
		}
		if err := bw.WritePath(p); err != nil {
			return err
		}
		seen++
	}
	if seen != want {
		return errors.Wrapf(ErrSourceChanged, "second pass read %d of %d bytes", seen, want)
	}
	if err := bw.Flush(); err != nil {
		return err
	}
	if err := out.Flush(); err != nil {
		return errors.Wrap(err, "flush output")
	}
	log.Debugf("encoded %d bytes over %d symbols: %d header + %d payload bytes",
		want, code.table.Len(), headerBytes, bw.Written())
	return nil
}

// Decoder reads Huffman containers. It is safe for concurrent use.
type Decoder struct {
	config Config
	trees  *treeCache
}

// NewDecoder creates a new decoder with the given options.
func NewDecoder(opts ...Option) *Decoder {
	cfg := newConfig(opts)
	return &Decoder{config: cfg, trees: newTreeCache(cfg.TreeCache)}
}

// Decode reads one container from src and writes the original bytes to dst.
// Bytes following the payload are not interpreted.
func (d *Decoder) Decode(src io.Reader, dst io.Writer) error {
	in := bufio.NewReaderSize(src, d.config.BufferSize)
	ft, headerBytes, err := ReadHeader(in)
	if err != nil {
		return err
	}
	root, err := d.trees.tree(ft)
	if err != nil {
		return err
	}

	out := bufio.NewWriterSize(dst, d.config.BufferSize)
	n, err := io.Copy(out, NewBitReader(in, root, ft.Total()))
	if err != nil {
		return err
	}
	if err := out.Flush(); err != nil {
		return errors.Wrap(err, "flush output")
	}
	log.Debugf("decoded %d bytes over %d symbols from %d header bytes", n, ft.Len(), headerBytes)
	return nil
}

// DecodeBytes decodes the container in data.
func (d *Decoder) DecodeBytes(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	if err := d.Decode(bytes.NewReader(data), &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// DecodeString decodes the container in data and checks the result is UTF-8 text.
func (d *Decoder) DecodeString(data []byte) (string, error) {
	out, err := d.DecodeBytes(data)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(out) {
		return "", ErrInvalidUTF8
	}
	return string(out), nil
}

// Encode writes the container for src to dst using default options.
func Encode(src io.ReadSeeker, dst io.Writer) error {
	return NewEncoder().Encode(src, dst)
}

// Decode reads a container from src and writes the original bytes to dst
// using default options.
func Decode(src io.Reader, dst io.Writer) error {
	return NewDecoder().Decode(src, dst)
}

// EncodeBytes returns the container for data using default options.
func EncodeBytes(data []byte) ([]byte, error) {
	return NewEncoder().EncodeBytes(data)
}

// DecodeBytes decodes the container in data using default options.
func DecodeBytes(data []byte) ([]byte, error) {
	return NewDecoder().DecodeBytes(data)
}
