package config

import (
	"math"
	"math/rand"
	"path/filepath"
)

import (
	"github.com/timtadh/data-structures/errors"
)

import (
	"github.com/timtadh/fpgrowth/stores/bytes_int"
	"github.com/timtadh/fpgrowth/stores/intint"
)

type Config struct {
	Cache   string
	Output  string
	Support float64
}

func (c *Config) Copy() *Config {
	return &Config{
		Cache:   c.Cache,
		Output:  c.Output,
		Support: c.Support,
	}
}

// AbsSupport converts the relative support in (0, 1) to the absolute
// transaction count threshold, ceil(support * transactions).
func (c *Config) AbsSupport(transactions int) (int32, error) {
	if c.Support <= 0 || c.Support >= 1 {
		return 0, errors.Errorf("relative support must be in (0, 1), got %v", c.Support)
	}
	return int32(math.Ceil(c.Support * float64(transactions))), nil
}

func (c *Config) Randstr() string {
	runes := make([]rune, 0, 10)
	for i := 0; i < 10; i++ {
		runes = append(runes, rune(97+rand.Intn(26)))
	}
	return string(runes)
}

func (c *Config) CacheFile(name string) string {
	return filepath.Join(c.Cache, name)
}

func (c *Config) OutputFile(name string) string {
	return filepath.Join(c.Output, name)
}

func (c *Config) IntIntMultiMap(name string) (intint.MultiMap, error) {
	if c.Cache == "" {
		return intint.AnonBpTree()
	} else {
		return intint.NewBpTree(c.CacheFile(name + "-" + c.Randstr() + ".bptree"))
	}
}

func (c *Config) BytesIntMultiMap(name string) (bytes_int.MultiMap, error) {
	if c.Cache == "" {
		return bytes_int.AnonBpTree()
	} else {
		return bytes_int.NewBpTree(c.CacheFile(name + "-" + c.Randstr() + ".bptree"))
	}
}
