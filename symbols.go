package huffman

import "strings"

// Direction is a single branch decision taken while descending the tree.
type Direction uint8

const (
	Left Direction = iota
	Right
)

func (d Direction) String() string {
	if d == Left {
		return "L"
	}
	return "R"
}

// Path is a codeword: the branch decisions from the root to a leaf.
type Path []Direction

// String renders the path as the bits the writer emits, first decision first:
// '1' for Left and '0' for Right.
func (p Path) String() string {
	var sb strings.Builder
	sb.Grow(len(p))
	for _, d := range p {
		if d == Left {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}

// SymbolTable maps each symbol of a tree to its codeword.
type SymbolTable map[byte]Path

// NewSymbolTable derives the codeword of every leaf with one depth-first walk.
// A root that is itself a leaf gets the empty path.
func NewSymbolTable(root *Node) SymbolTable {
	st := make(SymbolTable)
	if root == nil {
		return st
	}
	st.collect(root, make(Path, 0, 16))
	return st
}

func (st SymbolTable) collect(n *Node, prefix Path) {
	if n.IsLeaf() {
		st[n.Symbol] = append(Path{}, prefix...)
		return
	}
	st.collect(n.Left, append(prefix, Left))
	st.collect(n.Right, append(prefix, Right))
}

// MaxLen returns the length of the longest codeword.
func (st SymbolTable) MaxLen() int {
	longest := 0
	for _, p := range st {
		longest = max(longest, len(p))
	}
	return longest
}
