package locator

import (
	"github.com/danpasecinic/locator/internal/typekey"
)

func Get[T any](c Container) (T, error) {
	instance, err := c.engine().Resolve(typekey.Of[T]())
	if err != nil {
		var zero T
		return zero, err
	}

	// A nil registered for an interface type yields the zero value.
	typed, _ := instance.(T)
	return typed, nil
}

func MustGet[T any](c Container) T {
	v, err := Get[T](c)
	if err != nil {
		panic(err)
	}
	return v
}

// IsRegistered never constructs anything and never fails.
func IsRegistered[T any](c Container) bool {
	return c.engine().Has(typekey.Of[T]())
}

// Unregister removes T and disposes a singleton or built lazy value that
// implements Disposable. It is a no-op when T is not registered.
func Unregister[T any](c Container) error {
	return c.engine().Unregister(typekey.Of[T]())
}

// Keys lists registered type names in registration order.
func Keys(c Container) []string {
	keys := c.engine().Keys()
	names := make([]string, 0, len(keys))
	for _, k := range keys {
		names = append(names, k.String())
	}
	return names
}
