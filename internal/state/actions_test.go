package state

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEmitWithoutObserverDrops(t *testing.T) {
	var a Actions[string]
	require.False(t, a.Emit("lost"))

	var got []string
	a.Attach(func(s string) { got = append(got, s) })
	require.Empty(t, got, "dropped actions are never replayed")

	require.True(t, a.Emit("kept"))
	require.Equal(t, []string{"kept"}, got)
}

func TestAttachReplacesObserver(t *testing.T) {
	var a Actions[int]
	var first, second []int
	detachFirst := a.Attach(func(v int) { first = append(first, v) })
	a.Emit(1)
	a.Attach(func(v int) { second = append(second, v) })
	a.Emit(2)

	// a stale detach must not evict the newer observer
	detachFirst()
	require.True(t, a.Attached())
	a.Emit(3)

	require.Equal(t, []int{1}, first)
	require.Equal(t, []int{2, 3}, second)
}

func TestDetachStopsDelivery(t *testing.T) {
	var a Actions[int]
	calls := 0
	detach := a.Attach(func(int) { calls++ })
	detach()
	require.False(t, a.Attached())
	require.False(t, a.Emit(1))

	a.Attach(func(int) { calls++ })
	require.True(t, a.Emit(2))
	require.Equal(t, 1, calls)
}
