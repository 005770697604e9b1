package reporters

import "testing"
import "github.com/stretchr/testify/assert"

import (
	"io/ioutil"
	"os"
	"path/filepath"
)

import (
	"github.com/timtadh/fpgrowth/config"
	"github.com/timtadh/fpgrowth/miner"
	"github.com/timtadh/fpgrowth/types/itemset"
)

func TestChainFansOut(x *testing.T) {
	t := assert.New(x)
	a := &Collector{}
	b := &Collector{}
	chain := &Chain{Reporters: []miner.Reporter{a, b}}
	is := &itemset.Itemset{Items: []int32{1, 2}, Support: 3}
	t.Nil(chain.Report(is))
	t.Nil(chain.Close())
	t.Equal(1, len(a.Itemsets))
	t.Equal(1, len(b.Itemsets))
	t.Equal(is, a.Itemsets[0])
}

func TestCountWritesOnClose(x *testing.T) {
	t := assert.New(x)
	dir := x.TempDir()
	conf := &config.Config{Output: dir}
	r, err := NewCount(conf, "count.txt")
	t.Nil(err)
	t.Nil(r.Report(&itemset.Itemset{Items: []int32{1}, Support: 2}))
	t.Nil(r.Report(&itemset.Itemset{Items: []int32{2}, Support: 2}))
	t.Nil(r.Close())
	bytes, err := ioutil.ReadFile(filepath.Join(dir, "count.txt"))
	t.Nil(err)
	t.Equal("2\n", string(bytes))
}

func TestFileWritesPatterns(x *testing.T) {
	t := assert.New(x)
	dir := x.TempDir()
	conf := &config.Config{Output: dir}
	r, err := NewFile(conf, itemset.Formatter{}, "patterns")
	t.Nil(err)
	t.Nil(r.Report(&itemset.Itemset{Items: []int32{2, 1}, Support: 3}))
	t.Nil(r.Close())
	bytes, err := ioutil.ReadFile(filepath.Join(dir, "patterns.items"))
	t.Nil(err)
	t.Equal("1 2 : 3\n", string(bytes))
}

func TestUniquePassesFirstSightingOnly(x *testing.T) {
	t := assert.New(x)
	inner := &Collector{}
	u, err := NewUnique(&config.Config{}, inner, "")
	t.Nil(err)
	t.Nil(u.Report(&itemset.Itemset{Items: []int32{1, 2}, Support: 3}))
	t.Nil(u.Report(&itemset.Itemset{Items: []int32{2, 1}, Support: 3}))
	t.Nil(u.Report(&itemset.Itemset{Items: []int32{3}, Support: 2}))
	t.Nil(u.Close())
	t.Equal(2, len(inner.Itemsets))
	t.Equal([]int32{1, 2}, inner.Itemsets[0].Items)
	t.Equal([]int32{3}, inner.Itemsets[1].Items)
}

func TestUniqueHistogram(x *testing.T) {
	t := assert.New(x)
	dir := x.TempDir()
	conf := &config.Config{Output: dir}
	u, err := NewUnique(conf, &Collector{}, "histogram")
	t.Nil(err)
	t.Nil(u.Report(&itemset.Itemset{Items: []int32{1}, Support: 2}))
	t.Nil(u.Report(&itemset.Itemset{Items: []int32{1}, Support: 2}))
	t.Nil(u.Close())
	f, err := os.Open(filepath.Join(dir, "histogram.csv"))
	t.Nil(err)
	t.Nil(f.Close())
}
