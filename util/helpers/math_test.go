package helpers

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCompare(t *testing.T) {
	require.Equal(t, -1, Compare(1, 2))
	require.Equal(t, 1, Compare(2, 1))
	require.Equal(t, 0, Compare(7, 7))

	require.Equal(t, -1, Compare("a", "b"))
	require.Equal(t, 1, Compare("b", "a"))
	require.Equal(t, 0, Compare("", ""))

	require.Equal(t, -1, Compare(-0.5, 0.25))
}

func TestMin(t *testing.T) {
	require.Equal(t, 1, Min(3, 1, 2))
	require.Equal(t, 5, Min(5))
	require.Equal(t, "a", Min("c", "a", "b"))
}
