package main

import (
	"bytes"
	"testing"

	"go-bptree/config"

	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd(config.New())
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(out)
	cmd.SetArgs(append(args, "--log-level", "error"))
	err := cmd.Execute()
	return out.String(), err
}

func TestPrintCmd(t *testing.T) {
	out, err := run(t, "print", "--order", "4", "--count", "10", "--del", "5")
	require.NoError(t, err)
	require.Contains(t, out, "[2 4 7] +")
	require.Contains(t, out, "keys=[1 2 3 4 6 7 8 9 10]")

	_, err = run(t, "print", "--order", "2")
	require.Error(t, err)
}

func TestBenchCmd(t *testing.T) {
	out, err := run(t, "bench", "--count", "2000", "--keep", "10", "--order", "16", "--seed", "3")
	require.NoError(t, err)
	require.Contains(t, out, "bptree")
	require.Contains(t, out, "rbtree")
	require.Contains(t, out, "btree")

	_, err = run(t, "bench", "--count", "10", "--keep", "20")
	require.Error(t, err)
}

func TestLogLevel(t *testing.T) {
	cmd := newRootCmd(config.New())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"print", "--log-level", "loud"})
	require.Error(t, cmd.Execute())
}
