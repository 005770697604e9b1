package reporters

import ()

import ()

import (
	"github.com/timtadh/fpgrowth/types/itemset"
)

type Collector struct {
	Itemsets []*itemset.Itemset
}

func (c *Collector) Report(i *itemset.Itemset) error {
	c.Itemsets = append(c.Itemsets, i)
	return nil
}

func (c *Collector) Close() error {
	return nil
}
