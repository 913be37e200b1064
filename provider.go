package locator

import (
	"github.com/danpasecinic/locator/internal/container"
	"github.com/danpasecinic/locator/internal/typekey"
)

// Factory builds a value of T. A returned error, or a panic, surfaces from
// Get as a FACTORY_FAILED error.
type Factory[T any] func() (T, error)

// Func adapts an infallible constructor.
func Func[T any](fn func() T) Factory[T] {
	return func() (T, error) {
		return fn(), nil
	}
}

func (f Factory[T]) erase() container.Factory {
	return func() (any, error) {
		v, err := f()
		if err != nil {
			return nil, err
		}
		return v, nil
	}
}

// Register adds a transient factory: every Get calls it again.
func Register[T any](c Container, factory Factory[T]) error {
	return c.engine().Register(typekey.Of[T](), factory.erase())
}

// RegisterSingleton adds a value that every Get returns as is.
func RegisterSingleton[T any](c Container, value T) error {
	return c.engine().RegisterInstance(typekey.Of[T](), value)
}

// RegisterLazySingleton adds a factory that runs on the first Get; later
// calls return the cached value. The returned holder reports whether the
// value has been built and can reset it.
func RegisterLazySingleton[T any](c Container, factory Factory[T]) (*Lazy[T], error) {
	lazy := NewLazy(factory)
	if err := c.engine().RegisterLazy(typekey.Of[T](), lazy.holder); err != nil {
		return nil, err
	}
	return lazy, nil
}

func MustRegister[T any](c Container, factory Factory[T]) {
	if err := Register(c, factory); err != nil {
		panic(err)
	}
}

func MustRegisterSingleton[T any](c Container, value T) {
	if err := RegisterSingleton(c, value); err != nil {
		panic(err)
	}
}

func MustRegisterLazySingleton[T any](c Container, factory Factory[T]) *Lazy[T] {
	lazy, err := RegisterLazySingleton(c, factory)
	if err != nil {
		panic(err)
	}
	return lazy
}
