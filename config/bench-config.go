package config

import (
	"time"

	"github.com/pkg/errors"
)

// BenchConfig drives the comparison benchmark: Count shuffled keys are
// inserted, looked up and then removed until Keep remain.
type BenchConfig struct {
	Count int
	Keep  int
	Order int
	Seed  int64
}

func NewBenchConfig() *BenchConfig {
	return &BenchConfig{
		Count: 200000,
		Keep:  20,
		Order: 100,
		Seed:  time.Now().UnixMilli(),
	}
}

func (c *BenchConfig) Validate() error {
	if c.Count <= 0 {
		return errors.Errorf("count must be positive, got %d", c.Count)
	}
	if c.Keep < 0 || c.Keep > c.Count {
		return errors.Errorf("keep must be within 0..%d, got %d", c.Count, c.Keep)
	}
	return nil
}
