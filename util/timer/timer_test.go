package timer

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestMeasure(t *testing.T) {
	called := false
	d := Measure(func() {
		called = true
		time.Sleep(time.Millisecond)
	})
	require.True(t, called)
	require.GreaterOrEqual(t, d, time.Millisecond)
}

func TestMeasureErr(t *testing.T) {
	boom := errors.New("boom")
	_, err := MeasureErr(func() error { return boom })
	require.ErrorIs(t, err, boom)

	_, err = MeasureErr(func() error { return nil })
	require.NoError(t, err)
}
