package huffman

import (
	"encoding/binary"
	"io"

	"github.com/cespare/xxhash/v2"
	"github.com/pkg/errors"
)

const alphabetSize = 256 // distinct byte values

// FrequencyTable counts occurrences of each byte value.
// Only byte values with a positive count are entries of the table.
type FrequencyTable struct {
	counts   [alphabetSize]uint64
	distinct int
}

// NewFrequencyTable scans data once and returns its byte histogram.
func NewFrequencyTable(data []byte) *FrequencyTable {
	ft := &FrequencyTable{}
	ft.AddBytes(data)
	return ft
}

// ScanFrequencies reads r to the end and returns its byte histogram.
func ScanFrequencies(r io.Reader) (*FrequencyTable, error) {
	ft := &FrequencyTable{}
	buf := make([]byte, 32*1024)
	for {
		n, err := r.Read(buf)
		ft.AddBytes(buf[:n])
		if err == io.EOF {
			return ft, nil
		}
		if err != nil {
			return nil, errors.Wrap(err, "scan frequencies")
		}
	}
}

// Add counts one occurrence of b.
func (ft *FrequencyTable) Add(b byte) {
	if ft.counts[b] == 0 {
		ft.distinct++
	}
	ft.counts[b]++
}

// AddBytes counts every byte of p.
func (ft *FrequencyTable) AddBytes(p []byte) {
	for _, b := range p {
		ft.Add(b)
	}
}

// Set replaces the count for b. A zero count removes the entry.
func (ft *FrequencyTable) Set(b byte, n uint64) {
	switch {
	case ft.counts[b] == 0 && n != 0:
		ft.distinct++
	case ft.counts[b] != 0 && n == 0:
		ft.distinct--
	}
	ft.counts[b] = n
}

// Len returns the number of distinct byte values.
func (ft *FrequencyTable) Len() int {
	return ft.distinct
}

// Count returns the number of occurrences of b.
func (ft *FrequencyTable) Count(b byte) uint64 {
	return ft.counts[b]
}

// Total returns the sum of all counts, i.e. the message length in symbols.
func (ft *FrequencyTable) Total() uint64 {
	var total uint64
	for _, n := range ft.counts {
		total += n
	}
	return total
}

// Symbols returns the byte values present, ascending.
func (ft *FrequencyTable) Symbols() []byte {
	out := make([]byte, 0, ft.distinct)
	ft.Each(func(b byte, _ uint64) {
		out = append(out, b)
	})
	return out
}

// Each calls fn for every entry in ascending byte order.
func (ft *FrequencyTable) Each(fn func(b byte, n uint64)) {
	for i, n := range ft.counts {
		if n != 0 {
			fn(byte(i), n)
		}
	}
}

// Equal reports whether both tables hold the same entries.
func (ft *FrequencyTable) Equal(o *FrequencyTable) bool {
	if ft == nil || o == nil {
		return ft == o
	}
	return ft.counts == o.counts
}

// fingerprint hashes the entries in header order. Equal tables yield equal trees,
// so the hash keys the decoder's tree cache.
func (ft *FrequencyTable) fingerprint() uint64 {
	d := xxhash.New()
	var rec [9]byte
	ft.Each(func(b byte, n uint64) {
		rec[0] = b
		binary.BigEndian.PutUint64(rec[1:], n)
		_, _ = d.Write(rec[:])
	})
	return d.Sum64()
}
