package state

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

type counter struct {
	N     int
	Trail []int
}

func add(n int) func(counter) counter {
	return func(c counter) counter {
		trail := append(append([]int(nil), c.Trail...), n)
		return counter{N: c.N + n, Trail: trail}
	}
}

func TestUpdatePublishesLeftFoldInOrder(t *testing.T) {
	c := New(context.Background(), counter{})
	var seen []counter
	c.Observe(func(s counter) { seen = append(seen, s) })

	steps := []int{1, 2, 3, 4}
	want := counter{}
	var wantSeen []counter
	for _, n := range steps {
		c.Update(add(n))
		want = add(n)(want)
		wantSeen = append(wantSeen, want)
	}

	require.Equal(t, wantSeen, seen)
	require.Equal(t, want, c.Current())
}

func TestObserveOnlySeesFutureSnapshots(t *testing.T) {
	c := New(context.Background(), counter{})
	c.Update(add(5))

	var seen []int
	stop := c.Observe(func(s counter) { seen = append(seen, s.N) })
	require.Empty(t, seen)

	c.Update(add(1))
	stop()
	stop()
	c.Update(add(1))

	require.Equal(t, []int{6}, seen)
	require.Equal(t, 7, c.Current().N)
}

func TestObserversNotifiedInRegistrationOrder(t *testing.T) {
	c := New(context.Background(), counter{})
	var order []string
	for _, name := range []string{"a", "b", "c"} {
		c.Observe(func(counter) { order = append(order, name) })
	}
	c.Update(add(1))
	require.Equal(t, []string{"a", "b", "c"}, order)
}

func TestUpdateAfterCloseIsDropped(t *testing.T) {
	c := New(context.Background(), counter{})
	notified := 0
	c.Observe(func(counter) { notified++ })

	c.Update(add(1))
	c.Close()
	c.Update(add(10))

	require.Equal(t, 1, c.Current().N)
	require.Equal(t, 1, notified)
	require.True(t, c.Closed())
}

func TestCloseFiresOnce(t *testing.T) {
	c := New(context.Background(), counter{})
	require.False(t, c.Closed())

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.Close()
		}()
	}
	wg.Wait()

	select {
	case <-c.Done():
	default:
		t.Fatal("close signal did not fire")
	}
	require.ErrorIs(t, c.Context().Err(), context.Canceled)
}

func TestParentCancellationClosesScope(t *testing.T) {
	parent, cancel := context.WithCancel(context.Background())
	c := New(parent, counter{})
	cancel()

	<-c.Done()
	c.Update(add(1))
	require.Zero(t, c.Current().N)
}

func TestObserveAfterCloseIsNoop(t *testing.T) {
	c := New(context.Background(), counter{})
	c.Close()
	stop := c.Observe(func(counter) { t.Fatal("observer called after close") })
	stop()
	c.Update(add(1))
}

func TestConcurrentUpdatesAreSerialized(t *testing.T) {
	c := New(context.Background(), counter{})
	var published []int
	c.Observe(func(s counter) { published = append(published, s.N) })

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.Update(add(1))
		}()
	}
	wg.Wait()

	require.Equal(t, 50, c.Current().N)
	require.Len(t, published, 50)
	for i, n := range published {
		require.Equal(t, i+1, n, "publishes must follow transform order")
	}
}

func TestScopesHaveDistinctIDs(t *testing.T) {
	a := New(context.Background(), counter{})
	b := New(context.Background(), counter{})
	require.NotEmpty(t, a.ID())
	require.NotEqual(t, a.ID(), b.ID())
}
