package huffman

import (
	"bufio"
	"io"

	"github.com/icza/bitio"
	"github.com/pkg/errors"
)

// Wire format:
//
//	entries  = uint8, number of distinct symbols (0 stands for 256)
//	repeat entries times, ascending by symbol:
//	  symbol = uint8
//	  count  = uint64 big-endian
//	payload  = bit-packed codewords, one per input byte, in input order
//
// The message length is not stored; it is the sum of the counts.
const (
	headerEntrySize = 1 + 8
	countFieldBits  = 64
)

// HeaderSize returns the encoded header size for a table with distinct entries.
func HeaderSize(distinct int) int {
	return 1 + distinct*headerEntrySize
}

// WriteHeader writes the frequency header for ft to w and returns the number
// of bytes written.
func WriteHeader(w io.Writer, ft *FrequencyTable) (int64, error) {
	if ft == nil || ft.Len() == 0 {
		return 0, ErrEmptyInput
	}
	buf := bufio.NewWriter(w)
	bw := bitio.NewWriter(buf)

	var total int64
	// 256 entries wrap to 0; an empty table is never written.
	if err := bw.WriteByte(byte(ft.Len())); err != nil {
		return total, errors.Wrap(err, "write header length")
	}
	total++

	var werr error
	ft.Each(func(b byte, n uint64) {
		if werr != nil {
			return
		}
		if err := bw.WriteByte(b); err != nil {
			werr = errors.Wrapf(err, "write header symbol %#02x", b)
			return
		}
		if err := bw.WriteBits(n, countFieldBits); err != nil {
			werr = errors.Wrapf(err, "write header count for %#02x", b)
			return
		}
		total += headerEntrySize
	})
	if werr != nil {
		return total, werr
	}
	if err := buf.Flush(); err != nil {
		return total, errors.Wrap(err, "flush header")
	}
	return total, nil
}

// ReadHeader reads a frequency header from r and returns the table and the
// number of bytes consumed. If r does not implement io.ByteReader, bytes past
// the header may be buffered and lost to the caller.
func ReadHeader(r io.Reader) (*FrequencyTable, int64, error) {
	br := bitio.NewReader(r)

	var total int64
	n, err := br.ReadByte()
	if err != nil {
		return nil, total, headerReadError(err, "header length", total)
	}
	total++

	entries := int(n)
	if entries == 0 {
		entries = alphabetSize
	}

	ft := &FrequencyTable{}
	var sum uint64
	prev := -1
	for i := 0; i < entries; i++ {
		offset := total
		sym, err := br.ReadByte()
		if err != nil {
			return nil, total, headerReadError(err, "header symbol", offset)
		}
		total++
		count, err := br.ReadBits(countFieldBits)
		if err != nil {
			return nil, total, headerReadError(err, "header count", offset+1)
		}
		total += headerEntrySize - 1

		switch {
		case int(sym) <= prev:
			return nil, total, errors.Wrapf(ErrInvalidHeader, "symbol %#02x at offset %d is not ascending", sym, offset)
		case count == 0:
			return nil, total, errors.Wrapf(ErrInvalidHeader, "zero count for symbol %#02x at offset %d", sym, offset)
		case sum+count < sum:
			return nil, total, errors.Wrapf(ErrInvalidHeader, "total count overflows at offset %d", offset)
		}
		sum += count
		prev = int(sym)
		ft.Set(sym, count)
	}
	return ft, total, nil
}

func headerReadError(err error, what string, offset int64) error {
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		return errors.Wrapf(ErrTruncatedHeader, "read %s at offset %d", what, offset)
	}
	return errors.Wrapf(err, "read %s at offset %d", what, offset)
}
