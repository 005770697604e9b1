package reporters

import (
	"fmt"
	"io"
	"os"
)

import (
	"github.com/timtadh/data-structures/errors"
)

import (
	"github.com/timtadh/fpgrowth/config"
	"github.com/timtadh/fpgrowth/miner"
	"github.com/timtadh/fpgrowth/stores/bytes_int"
	"github.com/timtadh/fpgrowth/types/itemset"
)

// Unique forwards only the first sighting of each itemset (by
// canonical label) to the inner reporter, tallying repeats in an fs2
// backed seen-store.
type Unique struct {
	count     int
	Seen      bytes_int.MultiMap
	Reporter  miner.Reporter
	histogram io.WriteCloser
}

func NewUnique(conf *config.Config, reporter miner.Reporter, histogramName string) (*Unique, error) {
	seen, err := conf.BytesIntMultiMap("unique-seen")
	if err != nil {
		return nil, err
	}
	var histogram io.WriteCloser = nil
	if histogramName != "" {
		histogram, err = os.Create(conf.OutputFile(histogramName + ".csv"))
		if err != nil {
			return nil, err
		}
	}
	u := &Unique{
		Seen:      seen,
		Reporter:  reporter,
		histogram: histogram,
	}
	return u, nil
}

func (r *Unique) Report(i *itemset.Itemset) error {
	r.count++
	label := i.Label()
	if has, err := r.Seen.Has(label); err != nil {
		return err
	} else if has {
		var count int32
		err = r.Seen.DoFind(label, func(_ []byte, c int32) error {
			count = c
			return nil
		})
		if err != nil {
			return err
		}
		err = r.Seen.Remove(label, func(_ int32) bool { return true })
		if err != nil {
			return err
		}
		return r.Seen.Add(label, count+1)
	} else {
		err = r.Seen.Add(label, 1)
		if err != nil {
			return err
		}
		return r.Reporter.Report(i)
	}
}

func (r *Unique) Close() error {
	if r.histogram != nil {
		err := bytes_int.Do(r.Seen.Iterate, func(k []byte, c int32) error {
			fmt.Fprintf(r.histogram, "%d, %.5g, %x\n", c, float64(c)/float64(r.count), k)
			return nil
		})
		if err != nil {
			errors.Logf("ERROR", "%v", err)
		}
		err = r.histogram.Close()
		if err != nil {
			errors.Logf("ERROR", "%v", err)
		}
	}
	err := r.Seen.Delete()
	if err != nil {
		errors.Logf("ERROR", "%v", err)
	}
	return r.Reporter.Close()
}
