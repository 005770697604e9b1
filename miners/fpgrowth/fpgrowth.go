package fpgrowth

import ()

import (
	"github.com/timtadh/data-structures/errors"
)

import (
	"github.com/timtadh/fpgrowth/config"
	"github.com/timtadh/fpgrowth/fptree"
	"github.com/timtadh/fpgrowth/miner"
	"github.com/timtadh/fpgrowth/types/itemset"
)

// Miner runs the fp-growth algorithm (Han et al. 2000): build one
// fp-tree over the support sorted transactions, then recursively
// decompose it into conditional trees, one per header item, emitting
// every frequent itemset along the way. No candidate generation.
type Miner struct {
	Config   *config.Config
	Dt       *itemset.Transactions
	Rptr     miner.Reporter
	Itemsets []*itemset.Itemset
}

func NewMiner(conf *config.Config) *Miner {
	return &Miner{
		Config: conf,
	}
}

func (m *Miner) Init(input itemset.Input) error {
	errors.Logf("INFO", "loading transactions")
	dt, err := itemset.NewIntLoader(m.Config).Load(input)
	if err != nil {
		return err
	}
	errors.Logf("INFO", "loaded %v transactions, %v distinct items", dt.Size(), len(dt.Supports))
	m.Dt = dt
	return nil
}

func (m *Miner) Mine(input itemset.Input, rptr miner.Reporter) error {
	err := m.Init(input)
	if err != nil {
		return err
	}
	m.Rptr = rptr
	return m.MineFrom(m.Dt, rptr)
}

// MineFrom mines an already loaded transaction set. The aggregated
// result lands in m.Itemsets; rptr sees each itemset as it is found.
func (m *Miner) MineFrom(dt *itemset.Transactions, rptr miner.Reporter) error {
	minSupport, err := m.Config.AbsSupport(dt.Size())
	if err != nil {
		return err
	}
	tree := fptree.NewTree()
	err = tree.FromTransactions(dt.Txs, dt.Supports, minSupport)
	if err != nil {
		return err
	}
	found, err := m.mine(tree, int32(dt.Size()), nil, rptr)
	if err != nil {
		return err
	}
	m.Itemsets = found
	errors.Logf("INFO", "mined %v frequent itemsets", len(found))
	return nil
}

func (m *Miner) Close() error {
	if m.Rptr != nil {
		err := m.Rptr.Close()
		if err != nil {
			return err
		}
		m.Rptr = nil
	}
	if m.Dt != nil {
		err := m.Dt.Close()
		if err != nil {
			return err
		}
		m.Dt = nil
	}
	return nil
}

// mine is one recursive step over (tree, prefixSupport, prefix).
// Single path trees short circuit into subset enumeration; otherwise
// each header item (ascending support, so the smallest branches go
// first) emits prefix+item and recurses into its conditional tree.
func (m *Miner) mine(t *fptree.Tree, prefixSupport int32, prefix []int32, rptr miner.Reporter) ([]*itemset.Itemset, error) {
	path, err := t.SinglePath()
	if err != nil {
		return nil, err
	}
	if path != nil {
		return m.enumerate(path, prefixSupport, prefix, rptr)
	}
	found := make([]*itemset.Itemset, 0, 10)
	for _, item := range t.Headers {
		support := t.Supports[item]
		if support > prefixSupport {
			support = prefixSupport
		}
		items := make([]int32, 0, len(prefix)+1)
		items = append(items, prefix...)
		items = append(items, item)
		is := &itemset.Itemset{Items: items, Support: support}
		found = append(found, is)
		err := rptr.Report(is)
		if err != nil {
			return nil, err
		}
		cond, err := t.ConditionalTree(item)
		if err != nil {
			return nil, err
		}
		if cond == nil {
			continue
		}
		sub, err := m.mine(cond, support, items, rptr)
		if err != nil {
			return nil, err
		}
		found = append(found, sub...)
	}
	return found, nil
}

// enumerate is the single path shortcut. Itemsets over a chain of
// nodes with supports s1 >= s2 >= ... >= sn correspond bijectively to
// the non-empty subsets of the chain, each supported by the minimum
// over its members, capped at prefixSupport. No conditional trees are
// needed.
func (m *Miner) enumerate(path []*fptree.Node, prefixSupport int32, prefix []int32, rptr miner.Reporter) ([]*itemset.Itemset, error) {
	found := make([]*itemset.Itemset, 0, 10)
	var rec func(i int, items []int32, support int32) error
	rec = func(i int, items []int32, support int32) error {
		if i == len(path) {
			if len(items) == 0 {
				return nil
			}
			full := make([]int32, 0, len(prefix)+len(items))
			full = append(full, prefix...)
			full = append(full, items...)
			is := &itemset.Itemset{Items: full, Support: support}
			found = append(found, is)
			return rptr.Report(is)
		}
		err := rec(i+1, items, support)
		if err != nil {
			return err
		}
		n := path[i]
		s := support
		if n.Count < s {
			s = n.Count
		}
		return rec(i+1, append(items, n.Item), s)
	}
	err := rec(0, make([]int32, 0, len(path)), prefixSupport)
	if err != nil {
		return nil, err
	}
	return found, nil
}
