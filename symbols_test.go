package huffman

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSymbolTableScenario(t *testing.T) {
	st := NewSymbolTable(scenarioTree(t))

	require.Len(t, st, 4)
	require.Equal(t, Path{Left}, st['a'])
	require.Equal(t, Path{Right, Left}, st['b'])
	require.Equal(t, Path{Right, Right, Left}, st['d'])
	require.Equal(t, Path{Right, Right, Right}, st['c'])

	require.Equal(t, "1", st['a'].String())
	require.Equal(t, "01", st['b'].String())
	require.Equal(t, "001", st['d'].String())
	require.Equal(t, "000", st['c'].String())
	require.Equal(t, 3, st.MaxLen())
}

func TestSymbolTableSingleLeaf(t *testing.T) {
	root, err := BuildTree(NewFrequencyTable([]byte("zzz")))
	require.NoError(t, err)

	st := NewSymbolTable(root)
	require.Len(t, st, 1)
	p, ok := st['z']
	require.True(t, ok)
	require.Empty(t, p)
	require.Equal(t, 0, st.MaxLen())
}

func TestSymbolTableNilRoot(t *testing.T) {
	require.Empty(t, NewSymbolTable(nil))
}

func TestDirectionString(t *testing.T) {
	require.Equal(t, "L", Left.String())
	require.Equal(t, "R", Right.String())
}

func isPrefix(p, q Path) bool {
	if len(p) > len(q) {
		return false
	}
	for i := range p {
		if p[i] != q[i] {
			return false
		}
	}
	return true
}

func TestSymbolTablePrefixFree(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	data := make([]byte, 5000)
	for i := range data {
		// Skewed distribution so codeword lengths vary.
		data[i] = byte(int(rng.ExpFloat64() * 12))
	}
	root, err := BuildTree(NewFrequencyTable(data))
	require.NoError(t, err)
	st := NewSymbolTable(root)
	require.Equal(t, root.Leaves(), len(st))

	for a, pa := range st {
		for b, pb := range st {
			if a != b {
				require.False(t, isPrefix(pa, pb), "%#02x=%s is a prefix of %#02x=%s", a, pa, b, pb)
			}
		}
	}

	// Following each path from the root ends at the leaf carrying its symbol.
	for b, p := range st {
		n := root
		for _, d := range p {
			if d == Left {
				n = n.Left
			} else {
				n = n.Right
			}
		}
		require.True(t, n.IsLeaf())
		require.Equal(t, b, n.Symbol)
	}
}

func TestPathsDoNotAlias(t *testing.T) {
	root, err := BuildTree(NewFrequencyTable([]byte(strings.Repeat("abcdefgh", 3) + "aab")))
	require.NoError(t, err)
	st := NewSymbolTable(root)

	before := make(map[byte]string, len(st))
	for b, p := range st {
		before[b] = p.String()
	}
	p := st['h']
	for i := range p {
		p[i] = Left
	}
	for b, want := range before {
		if b != 'h' {
			require.Equal(t, want, st[b].String(), "codeword of %q changed", b)
		}
	}
}
