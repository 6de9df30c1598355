package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	c := New()
	require.Equal(t, "info", c.LogLevel)
	require.NoError(t, c.Validate())
	require.Equal(t, 200000, c.BenchConfig.Count)
	require.Equal(t, 20, c.BenchConfig.Keep)
	require.Equal(t, 100, c.BenchConfig.Order)
	require.Equal(t, 4, c.PrintConfig.Order)
}

func TestValidate(t *testing.T) {
	c := New()
	c.BenchConfig.Count = 0
	require.Error(t, c.Validate())

	c = New()
	c.BenchConfig.Keep = c.BenchConfig.Count + 1
	require.Error(t, c.Validate())

	c = New()
	c.BenchConfig.Keep = -1
	require.Error(t, c.Validate())

	c = New()
	c.PrintConfig.Count = -1
	require.Error(t, c.Validate())
}
