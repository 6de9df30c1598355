package config

import "github.com/pkg/errors"

type AppConfig struct {
	LogLevel    string
	BenchConfig *BenchConfig
	PrintConfig *PrintConfig
}

func New() *AppConfig {
	return &AppConfig{
		LogLevel:    "info",
		BenchConfig: NewBenchConfig(),
		PrintConfig: NewPrintConfig(),
	}
}

// Validate checks the settings the commands cannot run with.
func (c *AppConfig) Validate() error {
	if c.BenchConfig != nil {
		if err := c.BenchConfig.Validate(); err != nil {
			return errors.Wrap(err, "bench")
		}
	}
	if c.PrintConfig != nil {
		if err := c.PrintConfig.Validate(); err != nil {
			return errors.Wrap(err, "print")
		}
	}
	return nil
}
