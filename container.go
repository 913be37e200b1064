package locator

import (
	"errors"
	"log/slog"
	"maps"
	"slices"
	"sync"

	"github.com/danpasecinic/locator/internal/container"
)

const defaultRegistryName = "registry"

// Container is implemented by *Registry and *Scope. The generic Register,
// Get, IsRegistered and Unregister functions accept either.
type Container interface {
	Name() string
	Dispose() error
	IsDisposed() bool

	engine() *container.Container
}

// Registry is the top-level container. Besides its own registrations it
// owns a set of named scopes, which are disposed with it.
type Registry struct {
	internal *container.Container
	config   *registryConfig

	mu       sync.RWMutex
	scopes   map[string]*Scope
	disposed bool
}

func New(opts ...Option) *Registry {
	cfg := &registryConfig{
		name:   defaultRegistryName,
		logger: slog.Default(),
	}

	for _, opt := range opts {
		opt(cfg)
	}

	return &Registry{
		internal: container.New(cfg.containerConfig(cfg.name)),
		config:   cfg,
		scopes:   make(map[string]*Scope),
	}
}

func (r *Registry) engine() *container.Container {
	return r.internal
}

func (r *Registry) Name() string {
	return r.internal.Name()
}

func (r *Registry) Logger() *slog.Logger {
	return r.internal.Logger()
}

func (r *Registry) IsDisposed() bool {
	return r.internal.IsDisposed()
}

func (r *Registry) Size() int {
	return r.internal.Size()
}

// Dispose disposes every scope, then the registry's own singletons in
// reverse registration order. The disposal policy applies inside each
// container; every scope is visited regardless and all failures are joined.
func (r *Registry) Dispose() error {
	r.mu.Lock()
	r.disposed = true
	scopes := r.scopes
	r.scopes = make(map[string]*Scope)
	r.mu.Unlock()

	var errs []error
	for _, name := range slices.Sorted(maps.Keys(scopes)) {
		if err := scopes[name].Dispose(); err != nil {
			errs = append(errs, err)
		}
	}

	if err := r.internal.Dispose(); err != nil {
		errs = append(errs, err)
	}

	if len(scopes) > 0 {
		r.Logger().Debug("registry disposed", "scopes", len(scopes))
	}
	return errors.Join(errs...)
}
