package huffman

import (
	"bytes"
	"math"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/require"
)

func TestContainerScenario(t *testing.T) {
	c, err := NewContainer([]byte("aaaabbbccd"))
	require.NoError(t, err)

	require.Equal(t, []byte{0xAF, 0x02, 0x04}, c.Payload)
	require.Equal(t, uint64(10), c.Len())
	require.Equal(t, 40, c.SpaceUsed())

	var buf bytes.Buffer
	n, err := c.WriteTo(&buf)
	require.NoError(t, err)
	require.Equal(t, int64(40), n)
	require.Equal(t, scenarioContainer, buf.Bytes())

	out, err := c.Decode()
	require.NoError(t, err)
	require.Equal(t, "aaaabbbccd", string(out))
}

func TestContainerReadFrom(t *testing.T) {
	data := randomBytes(5, 4000)
	encoded, err := EncodeBytes(data)
	require.NoError(t, err)

	var c Container
	n, err := c.ReadFrom(iotest.HalfReader(bytes.NewReader(encoded)))
	require.NoError(t, err)
	require.Equal(t, int64(len(encoded)), n)
	require.Equal(t, len(encoded), c.SpaceUsed())

	out, err := c.Decode()
	require.NoError(t, err)
	require.Equal(t, data, out)
}

func TestContainerReadFromDegenerate(t *testing.T) {
	var c Container
	_, err := c.ReadFrom(bytes.NewReader([]byte{1, 'a', 0, 0, 0, 0, 0, 0, 0, 4}))
	require.NoError(t, err)
	require.Empty(t, c.Payload)

	out, err := c.Decode()
	require.NoError(t, err)
	require.Equal(t, "aaaa", string(out))
}

func TestContainerReadFromTruncated(t *testing.T) {
	var c Container
	_, err := c.ReadFrom(bytes.NewReader(scenarioContainer[:len(scenarioContainer)-2]))
	require.ErrorIs(t, err, ErrTruncatedPayload)

	_, err = c.ReadFrom(bytes.NewReader(scenarioContainer[:5]))
	require.ErrorIs(t, err, ErrTruncatedHeader)
}

func TestContainerReadFromTrailingBytes(t *testing.T) {
	var c Container
	withTrailer := append(append([]byte{}, scenarioContainer...), 0x00)
	_, err := c.ReadFrom(bytes.NewReader(withTrailer))
	require.Error(t, err)
	require.Contains(t, err.Error(), "unexpected bytes after payload")
}

func TestContainerEmpty(t *testing.T) {
	_, err := NewContainer(nil)
	require.ErrorIs(t, err, ErrEmptyInput)

	var c Container
	_, err = c.Decode()
	require.ErrorIs(t, err, ErrEmptyInput)

	var buf bytes.Buffer
	_, err = c.WriteTo(&buf)
	require.ErrorIs(t, err, ErrEmptyInput)
}

func TestContainerDecodeShortPayload(t *testing.T) {
	c, err := NewContainer([]byte("aaaabbbccd"))
	require.NoError(t, err)
	c.Payload = c.Payload[:1]

	_, err = c.Decode()
	require.ErrorIs(t, err, ErrTruncatedPayload)
}

func TestContainerReadFromHugeMessage(t *testing.T) {
	// 2^63 + 2^63-1 symbols at one bit each: 2^64-1 payload bits, none present.
	header := []byte{
		2,
		'a', 0x80, 0, 0, 0, 0, 0, 0, 0,
		'b', 0x7f, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
	}
	ft, _, err := ReadHeader(bytes.NewReader(header))
	require.NoError(t, err)
	code, err := NewCode(ft)
	require.NoError(t, err)
	require.Equal(t, uint64(math.MaxUint64), code.PayloadBits())
	require.Equal(t, uint64(1)<<61, code.Stats().PayloadBytes())

	var c Container
	_, err = c.ReadFrom(bytes.NewReader(header))
	if math.MaxInt == math.MaxInt64 {
		require.ErrorIs(t, err, ErrTruncatedPayload)
	} else {
		require.ErrorIs(t, err, ErrInvalidHeader)
	}
}

func TestContainerReadFromPayloadBitsOverflow(t *testing.T) {
	// Sum 3*2^62 fits, but two of the symbols take two bits each.
	header := []byte{
		3,
		'a', 0x40, 0, 0, 0, 0, 0, 0, 0,
		'b', 0x40, 0, 0, 0, 0, 0, 0, 0,
		'c', 0x40, 0, 0, 0, 0, 0, 0, 0,
	}
	var c Container
	_, err := c.ReadFrom(bytes.NewReader(header))
	require.ErrorIs(t, err, ErrInvalidHeader)
}
