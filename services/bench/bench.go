// Package bench compares the B+ tree against a red-black tree map and a
// classic B-tree on shuffled insert, lookup and delete workloads.
package bench

import (
	"math/rand"
	"time"

	"go-bptree/config"
	"go-bptree/pkg/bptree"
	"go-bptree/util/timer"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/exp/slices"
)

// Result holds the wall time of each phase for one target.
type Result struct {
	Name   string
	Insert time.Duration
	Get    time.Duration
	Delete time.Duration
}

type BenchService struct {
	log *logrus.Logger
}

func New(log *logrus.Logger) *BenchService {
	return &BenchService{log: log}
}

// Run inserts cfg.Count shuffled keys (key k maps to k-1) into every target,
// looks all of them up, removes all but cfg.Keep and verifies that the
// targets agree on the remaining keys.
func (s *BenchService) Run(cfg *config.BenchConfig) ([]Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	tree, err := bptree.NewFunc[int, int](func(a, b int) int { return a - b }, &bptree.Options{
		Order:  cfg.Order,
		Logger: s.log,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create bptree")
	}

	targets := []target{
		newTreeMapTarget(),
		newBTreeTarget(cfg.Order),
		&bptreeTarget{tree: tree},
	}
	results := make([]Result, len(targets))

	rnd := rand.New(rand.NewSource(cfg.Seed))
	data := rnd.Perm(cfg.Count)
	s.log.WithFields(logrus.Fields{
		"count": cfg.Count,
		"keep":  cfg.Keep,
		"order": cfg.Order,
		"seed":  cfg.Seed,
	}).Info("starting benchmark")

	for i, t := range targets {
		results[i].Name = t.Name()
		results[i].Insert = timer.Measure(func() {
			for _, k := range data {
				t.Put(k, k-1)
			}
		})
	}

	rnd.Shuffle(len(data), func(i, j int) { data[i], data[j] = data[j], data[i] })
	for i, t := range targets {
		results[i].Get, err = timer.MeasureErr(func() error {
			for _, k := range data {
				if v, found := t.Get(k); !found || v != k-1 {
					return errors.Errorf("%s: key %d holds (%d, %t), want (%d, true)", t.Name(), k, v, found, k-1)
				}
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	rnd.Shuffle(len(data), func(i, j int) { data[i], data[j] = data[j], data[i] })
	drop := data[:cfg.Count-cfg.Keep]
	for i, t := range targets {
		results[i].Delete = timer.Measure(func() {
			for _, k := range drop {
				t.Del(k)
			}
		})
	}

	want := slices.Clone(data[cfg.Count-cfg.Keep:])
	slices.Sort(want)
	for _, t := range targets {
		if got := t.Keys(); !slices.Equal(got, want) {
			return nil, errors.Errorf("%s: %d keys left, want %d", t.Name(), len(got), len(want))
		}
	}
	if err := tree.Check(); err != nil {
		return nil, errors.Wrap(err, "bptree failed consistency check")
	}

	for _, r := range results {
		s.log.WithFields(logrus.Fields{
			"target": r.Name,
			"insert": r.Insert,
			"get":    r.Get,
			"delete": r.Delete,
		}).Info("benchmark finished")
	}
	s.log.WithField("keys", want).Debug("remaining keys")

	return results, nil
}
