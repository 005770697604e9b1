package reporters

import ()

import (
	"github.com/timtadh/fpgrowth/miner"
	"github.com/timtadh/fpgrowth/types/itemset"
)

type Chain struct {
	Reporters []miner.Reporter
}

func (r *Chain) Report(i *itemset.Itemset) error {
	for _, rpt := range r.Reporters {
		err := rpt.Report(i)
		if err != nil {
			return err
		}
	}
	return nil
}

func (r *Chain) Close() error {
	for _, rpt := range r.Reporters {
		err := rpt.Close()
		if err != nil {
			return err
		}
	}
	return nil
}
