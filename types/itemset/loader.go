package itemset

import (
	"bufio"
	"io"
	"strconv"
	"strings"
)

import (
	"github.com/timtadh/data-structures/errors"
	"github.com/timtadh/data-structures/set"
	"github.com/timtadh/data-structures/types"
)

import (
	"github.com/timtadh/fpgrowth/config"
	"github.com/timtadh/fpgrowth/stores/intint"
)

type Input func() (reader io.Reader, closer func())

// Transactions is the loaded transaction database: the deduplicated
// transactions themselves, the global support of every item, and an
// inverted index (item -> transaction id) kept in an fs2 store.
type Transactions struct {
	Txs           [][]int32
	Supports      map[int32]int32
	InvertedIndex intint.MultiMap
	config        *config.Config
}

func NewTransactions(conf *config.Config) (t *Transactions, err error) {
	index, err := conf.IntIntMultiMap("itemset-inverted")
	if err != nil {
		return nil, err
	}
	t = &Transactions{
		Txs:           make([][]int32, 0, 10),
		Supports:      make(map[int32]int32),
		InvertedIndex: index,
		config:        conf,
	}
	return t, nil
}

func (t *Transactions) Size() int {
	return len(t.Txs)
}

// Add records one transaction. Duplicate items within the transaction
// are collapsed to a single occurrence before the inverted index is
// updated. Call ComputeSupports once all transactions are in.
func (t *Transactions) Add(items []int32) error {
	tx := int32(len(t.Txs))
	dedup := set.NewSortedSet(len(items))
	for _, item := range items {
		dedup.Add(types.Int32(item))
	}
	unique := setToInt32s(dedup)
	for _, item := range unique {
		err := t.InvertedIndex.Add(item, tx)
		if err != nil {
			return err
		}
	}
	t.Txs = append(t.Txs, unique)
	return nil
}

// ComputeSupports tallies the global support of every item from the
// inverted index. The index holds one (item, tx) entry per distinct
// item occurrence, so each entry counts one transaction.
func (t *Transactions) ComputeSupports() error {
	supports := make(map[int32]int32)
	err := intint.Do(t.InvertedIndex.Iterate, func(item, tx int32) error {
		supports[item]++
		return nil
	})
	if err != nil {
		return err
	}
	t.Supports = supports
	return nil
}

func (t *Transactions) Close() error {
	return t.InvertedIndex.Delete()
}

func setToInt32s(s *set.SortedSet) []int32 {
	items := make([]int32, 0, s.Size())
	for i, n := s.Items()(); n != nil; i, n = n() {
		items = append(items, int32(i.(types.Int32)))
	}
	return items
}

// IntLoader reads transactions as lines of space separated integers.
type IntLoader struct {
	config *config.Config
}

func NewIntLoader(conf *config.Config) *IntLoader {
	return &IntLoader{
		config: conf,
	}
}

func (l *IntLoader) Load(input Input) (t *Transactions, err error) {
	t, err = NewTransactions(l.config)
	if err != nil {
		return nil, err
	}
	reader, closer := input()
	defer closer()
	scanner := bufio.NewScanner(reader)
	line := 0
	for scanner.Scan() {
		items := make([]int32, 0, 10)
		for _, col := range strings.Split(scanner.Text(), " ") {
			if col == "" {
				continue
			}
			item, err := strconv.Atoi(col)
			if err != nil {
				errors.Logf("WARN", "input line %d contained non int '%s'", line, col)
				continue
			}
			items = append(items, int32(item))
		}
		if len(items) > 0 {
			err := t.Add(items)
			if err != nil {
				return nil, err
			}
		}
		line++
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	err = t.ComputeSupports()
	if err != nil {
		return nil, err
	}
	return t, nil
}
