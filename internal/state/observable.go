package state

import "sync"

// Observable holds a value and notifies listeners synchronously whenever it
// is replaced. It is safe for concurrent use; listeners are invoked outside
// the lock, in registration order, on the goroutine that called Set.
type Observable[T any] struct {
	mu        sync.RWMutex
	value     T
	equal     func(a, b T) bool
	listeners []*listener[T]
}

type listener[T any] struct {
	fn      func(T)
	removed bool
}

// NewObservable creates an Observable that notifies on every Set.
func NewObservable[T any](initial T) *Observable[T] {
	return &Observable[T]{value: initial}
}

// NewObservableWithEquality creates an Observable that skips notification
// when equal reports the new value matches the current one.
func NewObservableWithEquality[T any](initial T, equal func(a, b T) bool) *Observable[T] {
	return &Observable[T]{value: initial, equal: equal}
}

// Value returns the current value.
func (o *Observable[T]) Value() T {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.value
}

// Set replaces the value and notifies listeners.
func (o *Observable[T]) Set(value T) {
	o.Update(func(T) T { return value })
}

// Update replaces the value with transform(current) and notifies listeners.
// transform runs under the write lock and must not touch the Observable.
func (o *Observable[T]) Update(transform func(T) T) {
	o.mu.Lock()
	previous := o.value
	next := transform(previous)
	if o.equal != nil && o.equal(previous, next) {
		o.mu.Unlock()
		return
	}
	o.value = next
	listeners := append([]*listener[T](nil), o.listeners...)
	o.mu.Unlock()

	o.dispatch(listeners, next)
}

// AddListener registers fn and returns a function that removes it. The
// returned function is idempotent.
func (o *Observable[T]) AddListener(fn func(T)) func() {
	if fn == nil {
		return func() {}
	}
	entry := &listener[T]{fn: fn}

	o.mu.Lock()
	o.listeners = append(o.listeners, entry)
	o.mu.Unlock()

	return func() {
		o.mu.Lock()
		defer o.mu.Unlock()
		if entry.removed {
			return
		}
		entry.removed = true
		for i, candidate := range o.listeners {
			if candidate == entry {
				o.listeners = append(o.listeners[:i:i], o.listeners[i+1:]...)
				break
			}
		}
	}
}

func (o *Observable[T]) listenerCount() int {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return len(o.listeners)
}

func (o *Observable[T]) dispatch(listeners []*listener[T], value T) {
	for _, entry := range listeners {
		o.mu.RLock()
		removed := entry.removed
		o.mu.RUnlock()
		// a listener unsubscribed by an earlier one in this pass is skipped
		if removed {
			continue
		}
		entry.fn(value)
	}
}
