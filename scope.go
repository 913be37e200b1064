package locator

import (
	"maps"
	"slices"

	"github.com/danpasecinic/locator/internal/container"
)

// Scope is a named container created by a Registry. It has its own
// registrations and is disposed independently of its siblings.
type Scope struct {
	name     string
	internal *container.Container
}

func (s *Scope) engine() *container.Container {
	return s.internal
}

func (s *Scope) Name() string {
	return s.name
}

func (s *Scope) IsDisposed() bool {
	return s.internal.IsDisposed()
}

func (s *Scope) Size() int {
	return s.internal.Size()
}

func (s *Scope) Dispose() error {
	return s.internal.Dispose()
}

func (r *Registry) CreateScope(name string) (*Scope, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.disposed {
		return nil, errRegistryDisposed(r.Name())
	}
	if _, exists := r.scopes[name]; exists {
		return nil, errDuplicateScope(name)
	}

	s := &Scope{
		name:     name,
		internal: container.New(r.config.containerConfig(name)),
	}
	r.scopes[name] = s

	r.Logger().Debug("scope created", "scope", name)
	return s, nil
}

func (r *Registry) GetScope(name string) (*Scope, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.scopes[name]
	if !ok {
		return nil, errScopeNotFound(name)
	}
	return s, nil
}

func (r *Registry) HasScope(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.scopes[name]
	return ok
}

// DisposeScope removes the named scope and disposes it. Unknown names are a
// no-op.
func (r *Registry) DisposeScope(name string) error {
	r.mu.Lock()
	s, ok := r.scopes[name]
	delete(r.scopes, name)
	r.mu.Unlock()

	if !ok {
		return nil
	}

	r.Logger().Debug("scope disposed", "scope", name)
	return s.Dispose()
}

// ScopeNames returns the live scope names in sorted order.
func (r *Registry) ScopeNames() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return slices.Sorted(maps.Keys(r.scopes))
}

func (r *Registry) scopeList() []*Scope {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := slices.Sorted(maps.Keys(r.scopes))
	scopes := make([]*Scope, 0, len(names))
	for _, name := range names {
		scopes = append(scopes, r.scopes[name])
	}
	return scopes
}
