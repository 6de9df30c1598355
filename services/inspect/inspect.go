// Package inspect builds small trees and renders their node structure.
package inspect

import (
	"fmt"
	"io"

	"go-bptree/config"
	"go-bptree/pkg/bptree"
	"go-bptree/pkg/customerrors"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

type InspectService struct {
	log *logrus.Logger
}

func New(log *logrus.Logger) *InspectService {
	return &InspectService{log: log}
}

// Build inserts keys 1..cfg.Count (each mapped to itself) and removes
// cfg.Del in order. Removing a key that is not present is an error.
func (s *InspectService) Build(cfg *config.PrintConfig) (*bptree.BPlusTree[int, int], error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	tree, err := bptree.NewFunc[int, int](func(a, b int) int { return a - b }, &bptree.Options{
		Order:  cfg.Order,
		Logger: s.log,
	})
	if err != nil {
		return nil, err
	}

	for k := 1; k <= cfg.Count; k++ {
		tree.Put(k, k)
	}
	for _, k := range cfg.Del {
		if _, found := tree.Del(k); !found {
			return nil, errors.Wrapf(customerrors.ErrKeyNotFound, "cannot delete %d", k)
		}
	}

	if err := tree.Check(); err != nil {
		return nil, err
	}
	return tree, nil
}

// Render writes the node structure, height and keys of the tree to w.
func (s *InspectService) Render(w io.Writer, tree *bptree.BPlusTree[int, int]) error {
	if err := tree.Print(w); err != nil {
		return err
	}

	keys := make([]int, 0, tree.Len())
	for k := range tree.Keys() {
		keys = append(keys, k)
	}
	_, err := fmt.Fprintf(w, "height=%d size=%d keys=%v\n", tree.Height(), tree.Len(), keys)
	return err
}
