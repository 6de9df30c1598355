package config

import "github.com/pkg/errors"

// PrintConfig drives the structure dump: keys 1..Count are inserted into a
// tree of the given Order, then Del keys are removed.
type PrintConfig struct {
	Order int
	Count int
	Del   []int
}

func NewPrintConfig() *PrintConfig {
	return &PrintConfig{
		Order: 4,
		Count: 10,
	}
}

func (c *PrintConfig) Validate() error {
	if c.Count < 0 {
		return errors.Errorf("count must not be negative, got %d", c.Count)
	}
	return nil
}
