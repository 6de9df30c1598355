package bench

import (
	"bytes"
	"testing"

	"go-bptree/config"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func TestBenchService_Run(t *testing.T) {
	buf := &bytes.Buffer{}
	log := logrus.New()
	log.Out = buf

	s := New(log)
	results, err := s.Run(&config.BenchConfig{
		Count: 5000,
		Keep:  20,
		Order: 8,
		Seed:  1,
	})
	require.NoError(t, err)
	require.Len(t, results, 3)

	names := []string{}
	for _, r := range results {
		names = append(names, r.Name)
		require.Greater(t, int64(r.Insert), int64(0))
	}
	require.Equal(t, []string{"rbtree", "btree", "bptree"}, names)
	require.Contains(t, buf.String(), "benchmark finished")
}

func TestBenchService_RunKeepAll(t *testing.T) {
	log := logrus.New()
	log.Out = &bytes.Buffer{}

	results, err := New(log).Run(&config.BenchConfig{Count: 100, Keep: 100, Order: 3, Seed: 2})
	require.NoError(t, err)
	require.Len(t, results, 3)
}

func TestBenchService_RunInvalid(t *testing.T) {
	log := logrus.New()
	log.Out = &bytes.Buffer{}
	s := New(log)

	_, err := s.Run(&config.BenchConfig{Count: 10, Keep: 11, Order: 4})
	require.Error(t, err)

	_, err = s.Run(&config.BenchConfig{Count: 10, Keep: 1, Order: 2})
	require.Error(t, err)
}

func TestTargets(t *testing.T) {
	for _, tg := range []target{newTreeMapTarget(), newBTreeTarget(4)} {
		for _, k := range []int{5, 1, 3} {
			tg.Put(k, k*10)
		}
		v, found := tg.Get(3)
		require.True(t, found, tg.Name())
		require.Equal(t, 30, v)

		tg.Del(3)
		_, found = tg.Get(3)
		require.False(t, found, tg.Name())
		require.Equal(t, []int{1, 5}, tg.Keys(), tg.Name())
	}
}
