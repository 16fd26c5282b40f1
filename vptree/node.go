package vptree

// node is one partition of the tree. Items in the left subtree are within
// radius of the pivot, items in the right subtree are at radius or beyond.
type node struct {
	index  int // pivot position in Tree.items
	radius float64
	left   *node
	right  *node
}

func (n *node) isLeaf() bool {
	return n.left == nil && n.right == nil
}

func (n *node) height() int {
	if n == nil {
		return 0
	}
	return 1 + max(n.left.height(), n.right.height())
}
