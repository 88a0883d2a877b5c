package state

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObservableNotifiesInRegistrationOrder(t *testing.T) {
	t.Parallel()

	obs := NewObservable(0)
	var calls []string
	obs.AddListener(func(v int) { calls = append(calls, "first") })
	obs.AddListener(func(v int) { calls = append(calls, "second") })

	obs.Set(5)

	assert.Equal(t, 5, obs.Value())
	assert.Equal(t, []string{"first", "second"}, calls)
}

func TestObservableListenerSeesNewValue(t *testing.T) {
	t.Parallel()

	obs := NewObservable("a")
	var seen string
	obs.AddListener(func(v string) {
		seen = obs.Value()
		assert.Equal(t, v, seen)
	})

	obs.Set("b")
	assert.Equal(t, "b", seen)
}

func TestObservableUnsubscribeIsIdempotent(t *testing.T) {
	t.Parallel()

	obs := NewObservable(0)
	calls := 0
	unsubscribe := obs.AddListener(func(int) { calls++ })
	other := obs.AddListener(func(int) {})

	obs.Set(1)
	unsubscribe()
	unsubscribe()
	obs.Set(2)

	assert.Equal(t, 1, calls)
	assert.Equal(t, 1, obs.listenerCount())
	other()
	assert.Zero(t, obs.listenerCount())
}

func TestObservableSkipsListenerRemovedDuringDispatch(t *testing.T) {
	t.Parallel()

	obs := NewObservable(0)
	var removeSecond func()
	secondCalls := 0
	obs.AddListener(func(int) { removeSecond() })
	removeSecond = obs.AddListener(func(int) { secondCalls++ })

	obs.Set(1)
	assert.Zero(t, secondCalls)
}

func TestObservableWithEqualitySkipsUnchanged(t *testing.T) {
	t.Parallel()

	type account struct {
		ID   int
		Name string
	}
	obs := NewObservableWithEquality(account{ID: 1, Name: "a"}, func(x, y account) bool { return x.ID == y.ID })

	var seen []string
	obs.AddListener(func(v account) { seen = append(seen, v.Name) })

	obs.Set(account{ID: 1, Name: "renamed"})
	obs.Set(account{ID: 2, Name: "b"})

	obs.Set(account{ID: 2, Name: "ignored"})

	assert.Equal(t, []string{"b"}, seen)
	assert.Equal(t, "b", obs.Value().Name, "skipped updates are not stored")
}

func TestObservableNilListener(t *testing.T) {
	t.Parallel()

	obs := NewObservable(0)
	unsubscribe := obs.AddListener(nil)
	unsubscribe()
	obs.Set(1)
	assert.Zero(t, obs.listenerCount())
}

func TestObservableConcurrentUpdates(t *testing.T) {
	t.Parallel()

	obs := NewObservable(0)
	var mu sync.Mutex
	notified := 0
	obs.AddListener(func(int) {
		mu.Lock()
		notified++
		mu.Unlock()
	})

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			obs.Update(func(v int) int { return v + 1 })
		}()
	}
	wg.Wait()

	require.Equal(t, 50, obs.Value())
	require.Equal(t, 50, notified)
}
