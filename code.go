package huffman

import "math/bits"

// Code is a Huffman code derived from a frequency table: the encoding tree and
// the codeword of each symbol.
type Code struct {
	table   *FrequencyTable
	root    *Node
	symbols SymbolTable
}

// NewCode builds the tree and symbol table for ft.
func NewCode(ft *FrequencyTable) (*Code, error) {
	root, err := BuildTree(ft)
	if err != nil {
		return nil, err
	}
	return &Code{
		table:   ft,
		root:    root,
		symbols: NewSymbolTable(root),
	}, nil
}

// TrainCode builds a code from the byte histogram of data.
func TrainCode(data []byte) (*Code, error) {
	return NewCode(NewFrequencyTable(data))
}

// Root returns the root of the encoding tree.
func (c *Code) Root() *Node {
	return c.root
}

// Table returns the frequency table the code was built from.
func (c *Code) Table() *FrequencyTable {
	return c.table
}

// Symbols returns the codeword table.
func (c *Code) Symbols() SymbolTable {
	return c.symbols
}

// Path returns the codeword for b.
func (c *Code) Path(b byte) (Path, bool) {
	p, ok := c.symbols[b]
	return p, ok
}

// PayloadBits returns the number of payload bits needed to encode the
// message the table was built from. The result is only meaningful when
// payloadBits reports no overflow.
func (c *Code) PayloadBits() uint64 {
	n, _ := c.payloadBits()
	return n
}

// payloadBits sums count times codeword length over the table and reports
// whether the total fits in a uint64.
func (c *Code) payloadBits() (uint64, bool) {
	var total uint64
	ok := true
	c.table.Each(func(b byte, n uint64) {
		hi, lo := bits.Mul64(n, uint64(len(c.symbols[b])))
		sum, carry := bits.Add64(total, lo, 0)
		if hi != 0 || carry != 0 {
			ok = false
		}
		total = sum
	})
	return total, ok
}
