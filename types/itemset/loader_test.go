package itemset

import "testing"
import "github.com/stretchr/testify/assert"

import (
	"io"
	"strings"
)

import (
	"github.com/timtadh/fpgrowth/config"
)

func testInput(data string) Input {
	return func() (io.Reader, func()) {
		return strings.NewReader(data), func() {}
	}
}

func TestLoad(x *testing.T) {
	t := assert.New(x)
	dt, err := NewIntLoader(&config.Config{}).Load(testInput("1 3 4\n2 3 5\n1 2 3 5\n2 5\n1 2 3 5\n"))
	t.Nil(err)
	defer dt.Close()
	t.Equal(5, dt.Size())
	t.Equal(map[int32]int32{1: 3, 2: 4, 3: 4, 4: 1, 5: 4}, dt.Supports)
	t.Equal([]int32{1, 3, 4}, dt.Txs[0])
	count, err := dt.InvertedIndex.Count(5)
	t.Nil(err)
	t.Equal(4, count)
}

func TestLoadDedupsWithinTransaction(x *testing.T) {
	t := assert.New(x)
	dt, err := NewIntLoader(&config.Config{}).Load(testInput("1 1 2\n2 2 2\n"))
	t.Nil(err)
	defer dt.Close()
	t.Equal(2, dt.Size())
	t.Equal([]int32{1, 2}, dt.Txs[0])
	t.Equal([]int32{2}, dt.Txs[1])
	t.Equal(map[int32]int32{1: 1, 2: 2}, dt.Supports)
	count, err := dt.InvertedIndex.Count(2)
	t.Nil(err)
	t.Equal(2, count, "the inverted index records one entry per transaction")
}

func TestComputeSupportsFromIndex(x *testing.T) {
	t := assert.New(x)
	dt, err := NewTransactions(&config.Config{})
	t.Nil(err)
	defer dt.Close()
	t.Nil(dt.Add([]int32{1, 2}))
	t.Nil(dt.Add([]int32{2, 2, 3}))
	t.Equal(0, len(dt.Supports), "supports come from the index, not from Add")
	t.Nil(dt.ComputeSupports())
	t.Equal(map[int32]int32{1: 1, 2: 2, 3: 1}, dt.Supports)
	// recomputing is a fresh tally, not an accumulation
	t.Nil(dt.ComputeSupports())
	t.Equal(map[int32]int32{1: 1, 2: 2, 3: 1}, dt.Supports)
}

func TestLoadSkipsBadColumns(x *testing.T) {
	t := assert.New(x)
	dt, err := NewIntLoader(&config.Config{}).Load(testInput("1 oops 2\n\n3\n"))
	t.Nil(err)
	defer dt.Close()
	t.Equal(2, dt.Size(), "blank lines are not transactions")
	t.Equal([]int32{1, 2}, dt.Txs[0])
	t.Equal([]int32{3}, dt.Txs[1])
}
