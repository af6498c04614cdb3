package resource

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestZeroValueIsEmpty(t *testing.T) {
	var r Resource[int]
	require.True(t, r.IsEmpty())
	require.Equal(t, KindEmpty, r.Kind())
	_, ok := r.Value()
	require.False(t, ok)
	require.NoError(t, r.Err())
}

func TestTransitionsReplaceThePriorState(t *testing.T) {
	boom := errors.New("boom")

	r := Success(3)
	v, ok := r.Value()
	require.True(t, ok)
	require.Equal(t, 3, v)

	l := r.ToLoading()
	require.True(t, l.IsLoading())
	_, ok = l.Value()
	require.False(t, ok, "loading must discard the prior value")

	e := l.ToError(boom)
	require.True(t, e.IsError())
	require.ErrorIs(t, e.Err(), boom)
	require.Equal(t, 7, e.ValueOr(7))

	s := e.ToSuccess(9)
	require.True(t, s.IsSuccess())
	require.NoError(t, s.Err())
	require.Equal(t, 9, s.ValueOr(0))

	// the receiver is untouched
	require.Equal(t, 3, r.ValueOr(0))
}

func TestString(t *testing.T) {
	require.Equal(t, "empty", Empty[int]().String())
	require.Equal(t, "loading", Loading[int]().String())
	require.Equal(t, "success(4)", Success(4).String())
	require.Equal(t, "error(nope)", Error[int](errors.New("nope")).String())
}
