package huffman

// Node is a vertex of the encoding tree. A leaf has no children and carries
// Symbol; an internal node owns exactly two children and its Weight is their sum.
type Node struct {
	Symbol byte
	Weight uint64
	Left   *Node
	Right  *Node

	lowest byte // symbol of the leftmost leaf below this node
}

func newLeaf(b byte, weight uint64) *Node {
	return &Node{Symbol: b, Weight: weight, lowest: b}
}

// join merges two subtrees. The smaller one per less becomes the left child.
func join(a, b *Node) *Node {
	left, right := a, b
	if !less(a, b) {
		left, right = b, a
	}
	return &Node{
		Weight: left.Weight + right.Weight,
		Left:   left,
		Right:  right,
		lowest: left.lowest,
	}
}

// less orders nodes by weight, breaking ties with the byte of the leftmost leaf.
func less(a, b *Node) bool {
	if a.Weight != b.Weight {
		return a.Weight < b.Weight
	}
	return a.lowest < b.lowest
}

// IsLeaf reports whether n carries a symbol.
func (n *Node) IsLeaf() bool {
	return n.Left == nil && n.Right == nil
}

// Lowest returns the symbol of the leftmost leaf reachable from n.
func (n *Node) Lowest() byte {
	return n.lowest
}

// Leaves returns the number of leaves below n, n included.
func (n *Node) Leaves() int {
	if n.IsLeaf() {
		return 1
	}
	return n.Left.Leaves() + n.Right.Leaves()
}

// Height returns the number of edges on the longest root-to-leaf path.
func (n *Node) Height() int {
	if n.IsLeaf() {
		return 0
	}
	return 1 + max(n.Left.Height(), n.Right.Height())
}

// BuildTree builds the encoding tree for ft. A table with a single entry
// yields a lone leaf as the root.
func BuildTree(ft *FrequencyTable) (*Node, error) {
	q, err := BuildQueue(ft)
	if err != nil {
		return nil, err
	}
	return q.Reduce()
}

// Reduce repeatedly joins the two lightest nodes until one remains and returns
// it as the root. The queue is drained in the process.
func (q *PriorityQueue) Reduce() (*Node, error) {
	for {
		first, err := q.ExtractMin()
		if err != nil {
			return nil, err
		}
		if q.Len() == 0 {
			return first, nil
		}
		second, err := q.ExtractMin()
		if err != nil {
			return nil, err
		}
		q.Insert(join(first, second))
	}
}
