package huffman

import "math"

// Stats summarizes what encoding a message with a Code costs.
type Stats struct {
	InputBytes  uint64  // message length in symbols
	Symbols     int     // distinct byte values
	HeaderBytes int     // serialized frequency table
	PayloadBits uint64  // codeword bits before padding
	MaxCodeLen  int     // longest codeword
	AvgCodeLen  float64 // payload bits per input byte
	Entropy     float64 // Shannon entropy in bits per input byte
}

// Stats computes the cost of encoding the message c was built from.
func (c *Code) Stats() Stats {
	s := Stats{
		InputBytes:  c.table.Total(),
		Symbols:     c.table.Len(),
		HeaderBytes: HeaderSize(c.table.Len()),
		PayloadBits: c.PayloadBits(),
		MaxCodeLen:  c.symbols.MaxLen(),
	}
	if s.InputBytes == 0 {
		return s
	}
	total := float64(s.InputBytes)
	s.AvgCodeLen = float64(s.PayloadBits) / total
	c.table.Each(func(_ byte, n uint64) {
		p := float64(n) / total
		s.Entropy -= p * math.Log2(p)
	})
	return s
}

// PayloadBytes returns the payload size after padding to a whole byte.
func (s Stats) PayloadBytes() uint64 {
	n := s.PayloadBits / 8
	if s.PayloadBits%8 != 0 {
		n++
	}
	return n
}

// EncodedBytes returns the full container size.
func (s Stats) EncodedBytes() uint64 {
	return uint64(s.HeaderBytes) + s.PayloadBytes()
}

// Ratio returns input size over container size.
func (s Stats) Ratio() float64 {
	enc := s.EncodedBytes()
	if enc == 0 {
		return 0
	}
	return float64(s.InputBytes) / float64(enc)
}
