package fpgrowth

import "testing"
import "github.com/stretchr/testify/assert"

import (
	"github.com/timtadh/fpgrowth/config"
	"github.com/timtadh/fpgrowth/reporters"
	"github.com/timtadh/fpgrowth/types/itemset"
)

var scenario = [][]int32{
	{1, 3, 4},
	{2, 3, 5},
	{1, 2, 3, 5},
	{2, 5},
	{1, 2, 3, 5},
}

// the itemset fixture from the sampling days: 19 transactions over 13
// distinct items, small enough to brute force.
var fixture = [][]int32{
	{0},
	{1, 2, 3},
	{1, 2, 3},
	{1, 2, 3},
	{2, 3, 4},
	{2, 3, 4},
	{2, 3, 4},
	{7, 8, 9, 10},
	{7, 8, 9, 11},
	{7, 8, 9, 12},
	{1, 12},
	{1, 11},
	{1, 10},
	{1, 8, 10},
	{1, 9, 11},
	{1, 4, 12},
	{1, 12, 7},
	{1, 11, 8},
	{1, 10, 12},
}

func load(t *assert.Assertions, txs [][]int32, support float64) (*Miner, *itemset.Transactions) {
	conf := &config.Config{Support: support}
	dt, err := itemset.NewTransactions(conf)
	t.Nil(err)
	for _, tx := range txs {
		t.Nil(dt.Add(tx))
	}
	t.Nil(dt.ComputeSupports())
	return NewMiner(conf), dt
}

func mineAll(t *assert.Assertions, txs [][]int32, support float64) map[string]int32 {
	m, dt := load(t, txs, support)
	defer dt.Close()
	c := &reporters.Collector{}
	t.Nil(m.MineFrom(dt, c))
	t.Equal(len(m.Itemsets), len(c.Itemsets), "every itemset streams out as it is found")
	found := make(map[string]int32)
	fmtr := itemset.Formatter{}
	for _, is := range m.Itemsets {
		key := fmtr.PatternName(is)
		_, dup := found[key]
		t.False(dup, "itemset %v emitted twice", key)
		found[key] = is.Support
	}
	return found
}

func contains(tx []int32, items []int32) bool {
	has := make(map[int32]bool, len(tx))
	for _, item := range tx {
		has[item] = true
	}
	for _, item := range items {
		if !has[item] {
			return false
		}
	}
	return true
}

// bruteForce counts every non-empty combination of distinct items
// over the raw transactions, keeping those meeting minSupport. Ground
// truth for the miner on small inputs.
func bruteForce(txs [][]int32, minSupport int32) map[string]int32 {
	seen := make(map[int32]bool)
	items := make([]int32, 0, 10)
	for _, tx := range txs {
		for _, item := range tx {
			if !seen[item] {
				seen[item] = true
				items = append(items, item)
			}
		}
	}
	found := make(map[string]int32)
	fmtr := itemset.Formatter{}
	var rec func(i int, cur []int32)
	rec = func(i int, cur []int32) {
		if i == len(items) {
			if len(cur) == 0 {
				return
			}
			var support int32
			for _, tx := range txs {
				if contains(tx, cur) {
					support++
				}
			}
			if support >= minSupport {
				found[fmtr.PatternName(&itemset.Itemset{Items: cur, Support: support})] = support
			}
			return
		}
		rec(i+1, cur)
		rec(i+1, append(cur, items[i]))
	}
	rec(0, make([]int32, 0, len(items)))
	return found
}

func TestScenario(x *testing.T) {
	t := assert.New(x)
	// minSupport = ceil(0.4 * 5) = 2; item 4 (support 1) is pruned.
	// Every combination of the surviving items that two or more
	// transactions contain must come out, with its exact count.
	found := mineAll(t, scenario, 0.4)
	expected := map[string]int32{
		"1":       3,
		"2":       4,
		"3":       4,
		"5":       4,
		"1 2":     2,
		"1 3":     3,
		"1 5":     2,
		"2 3":     3,
		"2 5":     4,
		"3 5":     3,
		"1 2 3":   2,
		"1 2 5":   2,
		"1 3 5":   2,
		"2 3 5":   3,
		"1 2 3 5": 2,
	}
	t.Equal(expected, found)
	t.Equal(bruteForce(scenario, 2), found)
}

func TestAgreesWithBruteForce(x *testing.T) {
	t := assert.New(x)
	// abs thresholds: ceil(.15*19) = 3, ceil(.3*19) = 6
	for _, support := range []float64{0.15, 0.3} {
		found := mineAll(t, fixture, support)
		conf := &config.Config{Support: support}
		abs, err := conf.AbsSupport(len(fixture))
		t.Nil(err)
		t.Equal(bruteForce(fixture, abs), found, "support %v", support)
	}
}

func TestNoEmissionBelowThreshold(x *testing.T) {
	t := assert.New(x)
	conf := &config.Config{Support: 0.15}
	abs, err := conf.AbsSupport(len(fixture))
	t.Nil(err)
	for _, support := range mineAll(t, fixture, 0.15) {
		t.True(support >= abs, "support %v < %v", support, abs)
	}
}

func TestSingletonsEmittedOnceWithGlobalCount(x *testing.T) {
	t := assert.New(x)
	m, dt := load(t, fixture, 0.15)
	defer dt.Close()
	abs, err := m.Config.AbsSupport(dt.Size())
	t.Nil(err)
	t.Nil(m.MineFrom(dt, &reporters.Collector{}))
	singles := make(map[int32]int)
	for _, is := range m.Itemsets {
		if len(is.Items) == 1 {
			singles[is.Items[0]]++
			t.Equal(dt.Supports[is.Items[0]], is.Support)
		}
	}
	for item, support := range dt.Supports {
		if support >= abs {
			t.Equal(1, singles[item], "item %v", item)
		} else {
			t.Equal(0, singles[item], "item %v", item)
		}
	}
}

func TestThresholdOneIsSuperset(x *testing.T) {
	t := assert.New(x)
	// ceil(.05 * 19) = 1: every combination actually occurring somewhere
	all := mineAll(t, fixture, 0.05)
	t.Equal(bruteForce(fixture, 1), all)
	higher := mineAll(t, fixture, 0.3)
	for key, support := range higher {
		t.Equal(support, all[key], "itemset %v", key)
	}
}

func TestIdempotence(x *testing.T) {
	t := assert.New(x)
	first := mineAll(t, fixture, 0.15)
	second := mineAll(t, fixture, 0.15)
	t.Equal(first, second)
}

func TestDuplicateItemsCollapse(x *testing.T) {
	t := assert.New(x)
	doubled := make([][]int32, 0, len(scenario))
	for _, tx := range scenario {
		d := make([]int32, 0, 2*len(tx))
		d = append(d, tx...)
		d = append(d, tx...)
		doubled = append(doubled, d)
	}
	t.Equal(mineAll(t, scenario, 0.4), mineAll(t, doubled, 0.4))
}

func TestSinglePathShortcutAgrees(x *testing.T) {
	t := assert.New(x)
	// a pure chain dataset forces the shortcut at the top level
	chain := [][]int32{
		{1, 2, 3},
		{1, 2, 3},
		{1, 2},
		{1},
	}
	found := mineAll(t, chain, 0.25)
	t.Equal(bruteForce(chain, 1), found)
}

func TestBadRelativeSupport(x *testing.T) {
	t := assert.New(x)
	for _, support := range []float64{0, -0.5, 1, 1.5} {
		m, dt := load(t, scenario, support)
		err := m.MineFrom(dt, &reporters.Collector{})
		t.NotNil(err, "support %v must be rejected", support)
		t.Nil(dt.Close())
	}
}
