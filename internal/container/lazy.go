package container

import (
	"errors"
	"fmt"
	"sync"
)

type Factory func() (any, error)

type Disposable interface {
	Dispose() error
}

var (
	ErrFactoryPanic = errors.New("factory panicked")
	ErrDisposePanic = errors.New("dispose panicked")
)

// Lazy caches the result of a factory after its first successful call.
// The holder's mutex is held while the factory runs.
type Lazy struct {
	mu          sync.Mutex
	factory     Factory
	value       any
	initialized bool
}

func NewLazy(factory Factory) *Lazy {
	return &Lazy{factory: factory}
}

func (l *Lazy) Value() (any, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.initialized {
		return l.value, nil
	}

	value, err := invoke(l.factory)
	if err != nil {
		return nil, err
	}

	l.value = value
	l.initialized = true
	return value, nil
}

// Peek returns the cached value without running the factory.
func (l *Lazy) Peek() (any, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.value, l.initialized
}

func (l *Lazy) IsInitialized() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.initialized
}

func (l *Lazy) Dispose() error {
	l.mu.Lock()
	value, initialized := l.value, l.initialized
	l.value = nil
	l.initialized = false
	l.mu.Unlock()

	if !initialized {
		return nil
	}
	return disposeValue(value)
}

func (l *Lazy) Reset() error {
	return l.Dispose()
}

func invoke(factory Factory) (value any, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			value = nil
			err = fmt.Errorf("%w: %v", ErrFactoryPanic, rec)
		}
	}()
	return factory()
}

func disposeValue(value any) (err error) {
	switch v := value.(type) {
	case *Lazy:
		return v.Dispose()
	case Disposable:
		defer func() {
			if rec := recover(); rec != nil {
				err = fmt.Errorf("%w: %v", ErrDisposePanic, rec)
			}
		}()
		return v.Dispose()
	default:
		return nil
	}
}
