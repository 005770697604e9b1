package fptree

import "testing"
import "github.com/stretchr/testify/assert"

func TestUpsertChildCreates(x *testing.T) {
	t := assert.New(x)
	root := newNode(0, 0, nil)
	created := 0
	kid := root.UpsertChild(7, 1, func(n *Node) { created++ })
	t.Equal(int32(7), kid.Item)
	t.Equal(int32(1), kid.Count)
	t.Equal(root, kid.Parent)
	t.Equal(1, created)
	t.Equal(kid, root.GetChild(7))
	t.Nil(root.GetChild(8))
}

func TestUpsertChildAccumulates(x *testing.T) {
	t := assert.New(x)
	root := newNode(0, 0, nil)
	created := 0
	kid := root.UpsertChild(7, 1, func(n *Node) { created++ })
	again := root.UpsertChild(7, 3, func(n *Node) { created++ })
	t.Equal(kid, again)
	t.Equal(int32(4), kid.Count)
	t.Equal(1, created, "onCreate must not fire for existing children")
	t.Equal(1, len(root.Children()))
}

func TestPrefixPathOrder(x *testing.T) {
	t := assert.New(x)
	root := newNode(0, 0, nil)
	a := root.UpsertChild(1, 5, nil)
	b := a.UpsertChild(2, 3, nil)
	c := b.UpsertChild(3, 2, nil)
	visited := make([][2]int32, 0, 2)
	path := c.PrefixPath(func(item, count int32) {
		visited = append(visited, [2]int32{item, count})
	})
	t.Equal([]int32{2, 1}, path, "nearest ancestor first")
	t.Equal([][2]int32{{2, 2}, {1, 2}}, visited, "observer sees the originating node's count")
}

func TestPrefixPathOfRootChild(x *testing.T) {
	t := assert.New(x)
	root := newNode(0, 0, nil)
	a := root.UpsertChild(1, 5, nil)
	t.Nil(a.PrefixPath(nil))
}
