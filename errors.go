package huffman

import "github.com/pkg/errors"

var (
	// ErrEmptyInput indicates there were no bytes to build a frequency table from.
	ErrEmptyInput = errors.New("huffman: empty input")
	// ErrEmptyQueue indicates an extraction from an empty priority queue.
	ErrEmptyQueue = errors.New("huffman: extract from empty queue")
	// ErrTruncatedHeader indicates the stream ended inside the frequency header.
	ErrTruncatedHeader = errors.New("huffman: truncated header")
	// ErrInvalidHeader indicates a header that is complete but malformed.
	ErrInvalidHeader = errors.New("huffman: invalid header")
	// ErrTruncatedPayload indicates the payload ended before the declared message length.
	ErrTruncatedPayload = errors.New("huffman: truncated payload")
	// ErrSourceChanged indicates the second encoding pass did not match the first.
	ErrSourceChanged = errors.New("huffman: source changed between passes")
	// ErrInvalidUTF8 indicates decoded bytes are not valid UTF-8 text.
	ErrInvalidUTF8 = errors.New("huffman: decoded output is not valid utf-8")
)
