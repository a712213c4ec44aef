package service

import (
	"bytes"
	"fmt"

	"github.com/pkg/errors"

	huffman "github.com/masonwr/huffman-encoding"
)

// ErrOutputTooLarge is returned when a container declares a message longer
// than the service is willing to produce.
var ErrOutputTooLarge = errors.New("decoded message exceeds limit")

type Logger interface {
	Infof(format string, v ...any)
	Errorf(format string, v ...any)
}

type CodecService struct {
	enc       *huffman.Encoder
	dec       *huffman.Decoder
	maxOutput uint64
	logger    Logger
}

func NewCodecService(treeCache int, maxOutput uint64, l Logger) *CodecService {
	return &CodecService{
		enc:       huffman.NewEncoder(huffman.WithTreeCache(treeCache)),
		dec:       huffman.NewDecoder(huffman.WithTreeCache(treeCache)),
		maxOutput: maxOutput,
		logger:    l,
	}
}

func (s *CodecService) Encode(data []byte) ([]byte, error) {
	out, err := s.enc.EncodeBytes(data)
	if err != nil {
		return nil, err
	}
	s.logger.Infof("encoded %d bytes into %d", len(data), len(out))
	return out, nil
}

func (s *CodecService) Decode(container []byte) ([]byte, error) {
	ft, _, err := huffman.ReadHeader(bytes.NewReader(container))
	if err != nil {
		return nil, err
	}
	if ft.Total() > s.maxOutput {
		return nil, errors.Wrapf(ErrOutputTooLarge, "%d > %d bytes", ft.Total(), s.maxOutput)
	}
	out, err := s.dec.DecodeBytes(container)
	if err != nil {
		return nil, err
	}
	s.logger.Infof("decoded %d bytes from %d", len(out), len(container))
	return out, nil
}

type StatsReport struct {
	InputBytes   uint64            `json:"input_bytes"`
	Symbols      int               `json:"symbols"`
	HeaderBytes  int               `json:"header_bytes"`
	PayloadBits  uint64            `json:"payload_bits"`
	EncodedBytes uint64            `json:"encoded_bytes"`
	Ratio        float64           `json:"ratio"`
	MaxCodeLen   int               `json:"max_code_len"`
	AvgCodeLen   float64           `json:"avg_code_len"`
	Entropy      float64           `json:"entropy"`
	Codes        map[string]string `json:"codes"`
}

// Stats reports the code that would be used for data, with codewords keyed
// by the symbol in hex.
func (s *CodecService) Stats(data []byte) (*StatsReport, error) {
	code, err := huffman.TrainCode(data)
	if err != nil {
		return nil, err
	}
	st := code.Stats()
	codes := make(map[string]string, st.Symbols)
	for b, p := range code.Symbols() {
		codes[fmt.Sprintf("0x%02x", b)] = p.String()
	}
	return &StatsReport{
		InputBytes:   st.InputBytes,
		Symbols:      st.Symbols,
		HeaderBytes:  st.HeaderBytes,
		PayloadBits:  st.PayloadBits,
		EncodedBytes: st.EncodedBytes(),
		Ratio:        st.Ratio(),
		MaxCodeLen:   st.MaxCodeLen,
		AvgCodeLen:   st.AvgCodeLen,
		Entropy:      st.Entropy,
		Codes:        codes,
	}, nil
}
