package itemset

import (
	"encoding/binary"
	"fmt"
	"sort"
	"strings"
)

// Itemset is one mined frequent itemset. Items are in emission order
// (prefix first), not necessarily sorted.
type Itemset struct {
	Items   []int32
	Support int32
}

func (i *Itemset) String() string {
	parts := make([]string, 0, len(i.Items))
	for _, item := range i.Items {
		parts = append(parts, fmt.Sprintf("%v", item))
	}
	return fmt.Sprintf("<Itemset {%v} %v>", strings.Join(parts, ", "), i.Support)
}

// Label gives a canonical byte representation of the item set, item
// order independent. Two itemsets with the same members share a label.
func (i *Itemset) Label() []byte {
	items := make([]int32, len(i.Items))
	copy(items, i.Items)
	sort.Slice(items, func(a, b int) bool { return items[a] < items[b] })
	size := uint32(len(items))
	bytes := make([]byte, 4*(size+1))
	binary.BigEndian.PutUint32(bytes[0:4], size)
	s := 4
	e := s + 4
	for _, item := range items {
		binary.BigEndian.PutUint32(bytes[s:e], uint32(item))
		s += 4
		e = s + 4
	}
	return bytes
}
