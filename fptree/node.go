package fptree

import (
	"fmt"
)

// Node is one fp-tree node. Item is meaningless on the root (Parent ==
// nil). Count only ever grows; nodes are never removed. link points at
// the next node in the whole tree carrying the same item, in insertion
// order.
type Node struct {
	Item     int32
	Count    int32
	Parent   *Node
	children []*Node
	link     *Node
}

func newNode(item, count int32, parent *Node) *Node {
	return &Node{
		Item:     item,
		Count:    count,
		Parent:   parent,
		children: make([]*Node, 0, 2),
	}
}

func (n *Node) Root() bool {
	return n.Parent == nil
}

func (n *Node) Children() []*Node {
	return n.children
}

func (n *Node) Link() *Node {
	return n.link
}

// GetChild is a linear scan. Fan out per node is small relative to
// tree depth so a child map is not worth the space.
func (n *Node) GetChild(item int32) *Node {
	for _, kid := range n.children {
		if kid.Item == item {
			return kid
		}
	}
	return nil
}

// UpsertChild adds count to the matching child's support, or creates
// the child with that count. onCreate fires only for newly created
// nodes; the owning tree uses it to stitch the item's node-link chain.
func (n *Node) UpsertChild(item, count int32, onCreate func(*Node)) *Node {
	if kid := n.GetChild(item); kid != nil {
		kid.Count += count
		return kid
	}
	kid := newNode(item, count, n)
	n.children = append(n.children, kid)
	if onCreate != nil {
		onCreate(kid)
	}
	return kid
}

// PrefixPath collects the ancestor items from (not including) this
// node up to (not including) the root, nearest ancestor first. A nil
// return means the node sits directly under the root and has no
// prefix. visit, when given, sees each ancestor item paired with this
// node's count as the path is walked.
func (n *Node) PrefixPath(visit func(item, count int32)) []int32 {
	var items []int32
	for p := n.Parent; p != nil && !p.Root(); p = p.Parent {
		items = append(items, p.Item)
		if visit != nil {
			visit(p.Item, n.Count)
		}
	}
	return items
}

func (n *Node) String() string {
	if n.Root() {
		return fmt.Sprintf("<Node root %v kids>", len(n.children))
	}
	return fmt.Sprintf("<Node %v %v>", n.Item, n.Count)
}
