package inspect

import (
	"bytes"
	"testing"

	"go-bptree/config"
	"go-bptree/pkg/bptree"
	"go-bptree/pkg/customerrors"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func newService() *InspectService {
	log := logrus.New()
	log.Out = &bytes.Buffer{}
	return New(log)
}

func TestInspectService_Build(t *testing.T) {
	s := newService()

	tree, err := s.Build(&config.PrintConfig{Order: 4, Count: 10, Del: []int{5}})
	require.NoError(t, err)
	require.Equal(t, 9, tree.Len())
	require.False(t, tree.Has(5))

	_, err = s.Build(&config.PrintConfig{Order: 4, Count: 10, Del: []int{11}})
	require.ErrorIs(t, err, customerrors.ErrKeyNotFound)

	_, err = s.Build(&config.PrintConfig{Order: 2, Count: 10})
	require.ErrorIs(t, err, customerrors.ErrInvalidOrder)
}

func TestInspectService_Render(t *testing.T) {
	s := newService()
	tree, err := s.Build(&config.PrintConfig{Order: 4, Count: 10})
	require.NoError(t, err)

	buf := &bytes.Buffer{}
	require.NoError(t, s.Render(buf, tree))
	out := buf.String()
	require.Contains(t, out, "[2 4 6] +")
	require.Contains(t, out, "height=2 size=10 keys=[1 2 3 4 5 6 7 8 9 10]")

	empty, err := bptree.New[int, int](4)
	require.NoError(t, err)
	buf.Reset()
	require.NoError(t, s.Render(buf, empty))
	require.Contains(t, buf.String(), "height=1 size=0 keys=[]")
}
