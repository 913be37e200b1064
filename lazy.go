package locator

import (
	"github.com/danpasecinic/locator/internal/container"
)

// Disposable is implemented by values that release resources. Unregister
// and Dispose call it on singletons and on built lazy values.
type Disposable = container.Disposable

// Lazy runs its factory once, on the first call to Value, and caches the
// result. Concurrent callers wait for the first construction.
type Lazy[T any] struct {
	holder *container.Lazy
}

func NewLazy[T any](factory Factory[T]) *Lazy[T] {
	return &Lazy[T]{holder: container.NewLazy(factory.erase())}
}

// Value returns the cached value, building it first if needed. A failed
// build is not cached.
func (l *Lazy[T]) Value() (T, error) {
	v, err := l.holder.Value()
	if err != nil {
		var zero T
		return zero, err
	}
	typed, _ := v.(T)
	return typed, nil
}

func (l *Lazy[T]) MustValue() T {
	v, err := l.Value()
	if err != nil {
		panic(err)
	}
	return v
}

func (l *Lazy[T]) IsInitialized() bool {
	return l.holder.IsInitialized()
}

// Dispose disposes a built value that implements Disposable and forgets
// it, so the next Value builds a new one.
func (l *Lazy[T]) Dispose() error {
	return l.holder.Dispose()
}

// Reset is an alias for Dispose.
func (l *Lazy[T]) Reset() error {
	return l.holder.Reset()
}
