package huffman

import (
	lru "github.com/hashicorp/golang-lru/v2"
)

type cachedTree struct {
	table *FrequencyTable
	root  *Node
}

// treeCache remembers encoding trees by frequency table. Trees are never
// mutated after Reduce, so a cached root may be walked by many goroutines.
// A nil *treeCache builds every tree from scratch.
type treeCache struct {
	trees *lru.Cache[uint64, cachedTree]
}

func newTreeCache(size int) *treeCache {
	if size <= 0 {
		return nil
	}
	trees, err := lru.New[uint64, cachedTree](size)
	if err != nil {
		return nil
	}
	return &treeCache{trees: trees}
}

// tree returns the root for ft, building and remembering it on a miss.
func (c *treeCache) tree(ft *FrequencyTable) (*Node, error) {
	if c == nil {
		return BuildTree(ft)
	}
	key := ft.fingerprint()
	if hit, ok := c.trees.Get(key); ok && hit.table.Equal(ft) {
		log.Debugf("tree cache hit for %d symbols", ft.Len())
		return hit.root, nil
	}
	root, err := BuildTree(ft)
	if err != nil {
		return nil, err
	}
	snapshot := *ft
	c.trees.Add(key, cachedTree{table: &snapshot, root: root})
	return root, nil
}

// Len returns the number of cached trees.
func (c *treeCache) Len() int {
	if c == nil {
		return 0
	}
	return c.trees.Len()
}
