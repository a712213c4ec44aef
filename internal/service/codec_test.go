package service

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	huffman "github.com/masonwr/huffman-encoding"
)

type recordingLogger struct {
	infos  []string
	errors []string
}

func (l *recordingLogger) Infof(format string, v ...any) {
	l.infos = append(l.infos, fmt.Sprintf(format, v...))
}

func (l *recordingLogger) Errorf(format string, v ...any) {
	l.errors = append(l.errors, fmt.Sprintf(format, v...))
}

func TestCodecServiceRoundTrip(t *testing.T) {
	logs := &recordingLogger{}
	svc := NewCodecService(4, 1<<20, logs)

	container, err := svc.Encode([]byte("aaaabbbccd"))
	require.NoError(t, err)
	require.Len(t, container, 40)

	out, err := svc.Decode(container)
	require.NoError(t, err)
	require.Equal(t, "aaaabbbccd", string(out))

	require.Equal(t, []string{
		"encoded 10 bytes into 40",
		"decoded 10 bytes from 40",
	}, logs.infos)
}

func TestCodecServiceEmpty(t *testing.T) {
	svc := NewCodecService(0, 1<<20, &recordingLogger{})

	_, err := svc.Encode(nil)
	require.ErrorIs(t, err, huffman.ErrEmptyInput)

	_, err = svc.Stats(nil)
	require.ErrorIs(t, err, huffman.ErrEmptyInput)

	_, err = svc.Decode(nil)
	require.ErrorIs(t, err, huffman.ErrTruncatedHeader)
}

func TestCodecServiceOutputLimit(t *testing.T) {
	svc := NewCodecService(0, 100, &recordingLogger{})

	// One symbol repeated 2^40 times; decoding would need no payload at all.
	container := []byte{1, 'a', 0, 0, 0x01, 0, 0, 0, 0, 0}
	_, err := svc.Decode(container)
	require.ErrorIs(t, err, ErrOutputTooLarge)
}

func TestCodecServiceStats(t *testing.T) {
	svc := NewCodecService(0, 1<<20, &recordingLogger{})

	report, err := svc.Stats([]byte("aaaabbbccd"))
	require.NoError(t, err)
	require.Equal(t, uint64(10), report.InputBytes)
	require.Equal(t, 4, report.Symbols)
	require.Equal(t, uint64(19), report.PayloadBits)
	require.Equal(t, uint64(40), report.EncodedBytes)
	require.Equal(t, map[string]string{
		"0x61": "1",
		"0x62": "01",
		"0x63": "000",
		"0x64": "001",
	}, report.Codes)
}
