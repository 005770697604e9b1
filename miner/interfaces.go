package miner

import (
	"github.com/timtadh/fpgrowth/types/itemset"
)

// Note: the miner's Close function should close both the reporter and
// the transaction set that were passed into it.
type Miner interface {
	Mine(itemset.Input, Reporter) error
	Close() error
}

// Reporter receives every itemset at the moment it is emitted.
type Reporter interface {
	Report(*itemset.Itemset) error
	Close() error
}
