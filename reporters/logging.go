package reporters

import (
	"github.com/timtadh/data-structures/errors"
)

import (
	"github.com/timtadh/fpgrowth/types/itemset"
)

type Log struct {
	fmtr   itemset.Formatter
	level  string
	prefix string
	count  int
}

func NewLog(fmtr itemset.Formatter, level, prefix string) *Log {
	if level == "" {
		level = "INFO"
	}
	return &Log{fmtr: fmtr, level: level, prefix: prefix}
}

func (lr *Log) Report(i *itemset.Itemset) error {
	lr.count++
	if lr.prefix != "" {
		errors.Logf(lr.level, "%s %v %v", lr.prefix, lr.count, lr.fmtr.FormatItemset(i))
	} else {
		errors.Logf(lr.level, "%v %v", lr.count, lr.fmtr.FormatItemset(i))
	}
	return nil
}

func (lr *Log) Close() error {
	return nil
}
