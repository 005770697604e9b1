package itemset

import (
	"fmt"
	"sort"
	"strings"
)

type Formatter struct{}

func (f Formatter) FileExt() string {
	return ".items"
}

func (f Formatter) PatternName(i *Itemset) string {
	items := make([]int32, len(i.Items))
	copy(items, i.Items)
	sort.Slice(items, func(a, b int) bool { return items[a] < items[b] })
	parts := make([]string, 0, len(items))
	for _, item := range items {
		parts = append(parts, fmt.Sprintf("%v", item))
	}
	return strings.Join(parts, " ")
}

func (f Formatter) FormatItemset(i *Itemset) string {
	return fmt.Sprintf("%v : %v", f.PatternName(i), i.Support)
}
