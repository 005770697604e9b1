package fptree

import (
	"sort"
)

// PrefixPath is one extracted ancestor path: Items run from the node
// nearest the conditioned item out to the node nearest the root, and
// Count is the conditioned node's support, the number of virtual
// transactions the path stands for.
type PrefixPath struct {
	Items []int32
	Count int32
}

// Tree is an fp-tree: a prefix sharing tree over support sorted
// transactions, plus per item node-link chains threaded through it.
// A tree is built exactly once (FromTransactions or FromPrefixPaths)
// and queried read-only after that.
type Tree struct {
	Root       *Node
	Supports   map[int32]int32
	MinSupport int32
	Headers    []int32
	first      map[int32]*Node
	last       map[int32]*Node
	built      bool
}

func NewTree() *Tree {
	return &Tree{
		Root:  newNode(0, 0, nil),
		first: make(map[int32]*Node),
		last:  make(map[int32]*Node),
	}
}

func (t *Tree) Built() bool {
	return t.built
}

// FirstInserted gives the head of item's node-link chain, nil if the
// item was never inserted.
func (t *Tree) FirstInserted(item int32) *Node {
	return t.first[item]
}

// FromTransactions builds the tree from raw transactions: each
// transaction's items are filtered against minSupport, sorted by
// descending global support, and inserted from the root with a
// support contribution of 1 per level.
func (t *Tree) FromTransactions(txs [][]int32, supports map[int32]int32, minSupport int32) error {
	if t.built {
		return &AlreadyBuilt{}
	}
	t.built = true
	t.Supports = supports
	t.MinSupport = minSupport
	for _, tx := range txs {
		t.insert(tx, 1)
	}
	t.makeHeaders()
	return nil
}

// FromPrefixPaths builds the tree from extracted prefix paths. Each
// path inserts like a single transaction except every node on it
// accumulates the path's count, since the path compresses that many
// repeated virtual transactions.
func (t *Tree) FromPrefixPaths(paths []*PrefixPath, supports map[int32]int32, minSupport int32) error {
	if t.built {
		return &AlreadyBuilt{}
	}
	t.built = true
	t.Supports = supports
	t.MinSupport = minSupport
	for _, p := range paths {
		t.insert(p.Items, p.Count)
	}
	t.makeHeaders()
	return nil
}

func (t *Tree) insert(items []int32, count int32) {
	cur := t.Root
	for _, item := range t.frequent(items) {
		cur = cur.UpsertChild(item, count, func(n *Node) {
			if t.first[n.Item] == nil {
				t.first[n.Item] = n
			} else {
				t.last[n.Item].link = n
			}
			t.last[n.Item] = n
		})
	}
}

// frequent drops items below MinSupport and duplicates, then orders
// the rest by descending global support, ties by descending item, so
// every inserted path sorts consistently and prefixes share.
func (t *Tree) frequent(items []int32) []int32 {
	keep := make([]int32, 0, len(items))
	seen := make(map[int32]bool, len(items))
	for _, item := range items {
		if seen[item] {
			continue
		}
		seen[item] = true
		if t.Supports[item] >= t.MinSupport {
			keep = append(keep, item)
		}
	}
	sort.Slice(keep, func(i, j int) bool {
		a, b := keep[i], keep[j]
		if t.Supports[a] != t.Supports[b] {
			return t.Supports[a] > t.Supports[b]
		}
		return a > b
	})
	return keep
}

// makeHeaders orders the distinct inserted items by ascending global
// support, ties by ascending item. Mining walks headers in this order
// so the smallest conditional branches go first.
func (t *Tree) makeHeaders() {
	t.Headers = make([]int32, 0, len(t.first))
	for item := range t.first {
		t.Headers = append(t.Headers, item)
	}
	sort.Slice(t.Headers, func(i, j int) bool {
		a, b := t.Headers[i], t.Headers[j]
		if t.Supports[a] != t.Supports[b] {
			return t.Supports[a] < t.Supports[b]
		}
		return a < b
	})
}

// PrefixPaths extracts the prefix path of every node on item's
// node-link chain. Items that never occurred give an empty slice.
func (t *Tree) PrefixPaths(item int32) ([]*PrefixPath, error) {
	if !t.built {
		return nil, &NotInitialized{}
	}
	paths := make([]*PrefixPath, 0, 10)
	for n := t.first[item]; n != nil; n = n.link {
		if items := n.PrefixPath(nil); len(items) > 0 {
			paths = append(paths, &PrefixPath{Items: items, Count: n.Count})
		}
	}
	return paths, nil
}

// ConditionalTree builds the independent sub-tree for "itemsets
// containing item, with item projected out". The local support table
// is accumulated in the same walk that extracts the prefix paths. A
// nil tree (with nil error) means the item never occurred or the
// conditional tree came up empty, so there is nothing to recurse into.
func (t *Tree) ConditionalTree(item int32) (*Tree, error) {
	if !t.built {
		return nil, &NotInitialized{}
	}
	if t.first[item] == nil {
		return nil, nil
	}
	supports := make(map[int32]int32)
	paths := make([]*PrefixPath, 0, 10)
	for n := t.first[item]; n != nil; n = n.link {
		items := n.PrefixPath(func(it, count int32) {
			supports[it] += count
		})
		if len(items) > 0 {
			paths = append(paths, &PrefixPath{Items: items, Count: n.Count})
		}
	}
	if len(paths) == 0 {
		return nil, nil
	}
	cond := NewTree()
	err := cond.FromPrefixPaths(paths, supports, t.MinSupport)
	if err != nil {
		return nil, err
	}
	if len(cond.Root.Children()) == 0 {
		return nil, nil
	}
	return cond, nil
}

// SinglePath returns the nodes from (excluding) the root down to the
// unique leaf when no node on the way has more than one child. A
// branching tree gives a nil path; a tree with a childless root gives
// an empty, non-nil path.
func (t *Tree) SinglePath() ([]*Node, error) {
	if !t.built {
		return nil, &NotInitialized{}
	}
	path := make([]*Node, 0, 10)
	for n := t.Root; ; {
		kids := n.Children()
		if len(kids) == 0 {
			return path, nil
		}
		if len(kids) > 1 {
			return nil, nil
		}
		n = kids[0]
		path = append(path, n)
	}
}

func (t *Tree) IsSinglePath() (bool, error) {
	path, err := t.SinglePath()
	if err != nil {
		return false, err
	}
	return path != nil, nil
}
