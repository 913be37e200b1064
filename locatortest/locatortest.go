package locatortest

import (
	"github.com/tidwall/gjson"

	"github.com/danpasecinic/locator"
	"github.com/danpasecinic/locator/internal/typekey"
)

type TB interface {
	Helper()
	Fatal(args ...any)
	Fatalf(format string, args ...any)
	Cleanup(f func())
}

// Target is a TestRegistry or a TestScope.
type Target interface {
	locator.Container
	TB() TB
}

type TestRegistry struct {
	*locator.Registry
	tb TB
}

type TestScope struct {
	*locator.Scope
	tb TB
}

// New returns a registry that is disposed when the test finishes. A
// disposal failure fails the test.
func New(tb TB, opts ...locator.Option) *TestRegistry {
	tb.Helper()

	r := locator.New(opts...)
	tr := &TestRegistry{
		Registry: r,
		tb:       tb,
	}

	tb.Cleanup(func() {
		if err := r.Dispose(); err != nil {
			tb.Fatalf("failed to dispose registry: %v", err)
		}
	})

	return tr
}

func (tr *TestRegistry) TB() TB {
	return tr.tb
}

func (ts *TestScope) TB() TB {
	return ts.tb
}

func (tr *TestRegistry) RequireScope(name string) *TestScope {
	tr.tb.Helper()

	s, err := tr.CreateScope(name)
	if err != nil {
		tr.tb.Fatalf("failed to create scope %q: %v", name, err)
	}
	return &TestScope{Scope: s, tb: tr.tb}
}

func (tr *TestRegistry) RequireDispose() {
	tr.tb.Helper()

	if err := tr.Dispose(); err != nil {
		tr.tb.Fatalf("failed to dispose registry: %v", err)
	}
}

func (ts *TestScope) RequireDispose() {
	ts.tb.Helper()

	if err := ts.Dispose(); err != nil {
		ts.tb.Fatalf("failed to dispose scope %q: %v", ts.Name(), err)
	}
}

func MustRegister[T any](c Target, factory locator.Factory[T]) {
	c.TB().Helper()

	if err := locator.Register(c, factory); err != nil {
		c.TB().Fatalf("failed to register %s: %v", typekey.Name[T](), err)
	}
}

func MustRegisterSingleton[T any](c Target, value T) {
	c.TB().Helper()

	if err := locator.RegisterSingleton(c, value); err != nil {
		c.TB().Fatalf("failed to register singleton %s: %v", typekey.Name[T](), err)
	}
}

func MustRegisterLazySingleton[T any](c Target, factory locator.Factory[T]) *locator.Lazy[T] {
	c.TB().Helper()

	lazy, err := locator.RegisterLazySingleton(c, factory)
	if err != nil {
		c.TB().Fatalf("failed to register lazy singleton %s: %v", typekey.Name[T](), err)
	}
	return lazy
}

func MustGet[T any](c Target) T {
	c.TB().Helper()

	v, err := locator.Get[T](c)
	if err != nil {
		c.TB().Fatalf("failed to get %s: %v", typekey.Name[T](), err)
	}
	return v
}

// Override replaces whatever is registered for T with value. The previous
// registration is unregistered, which disposes it.
func Override[T any](c Target, value T) {
	c.TB().Helper()

	if err := locator.Unregister[T](c); err != nil {
		c.TB().Fatalf("failed to unregister %s: %v", typekey.Name[T](), err)
	}
	if err := locator.RegisterSingleton(c, value); err != nil {
		c.TB().Fatalf("failed to override %s: %v", typekey.Name[T](), err)
	}
}

func AssertRegistered[T any](c Target) {
	c.TB().Helper()

	if !locator.IsRegistered[T](c) {
		c.TB().Fatalf("expected %s to have %s", c.Name(), typekey.Name[T]())
	}
}

func AssertNotRegistered[T any](c Target) {
	c.TB().Helper()

	if locator.IsRegistered[T](c) {
		c.TB().Fatalf("expected %s to not have %s", c.Name(), typekey.Name[T]())
	}
}

func AssertDisposed(c Target) {
	c.TB().Helper()

	if !c.IsDisposed() {
		c.TB().Fatalf("expected %s to be disposed", c.Name())
	}
}

// AssertSnapshot checks a gjson path against the registry's JSON snapshot,
// e.g. AssertSnapshot(tr, "scopes.#", "2").
func AssertSnapshot(tr *TestRegistry, path, expected string) {
	tr.tb.Helper()

	doc, err := tr.SnapshotJSON()
	if err != nil {
		tr.tb.Fatalf("failed to build snapshot: %v", err)
	}

	if got := gjson.Get(doc, path).String(); got != expected {
		tr.tb.Fatalf("snapshot %s: expected %q, got %q\n%s", path, expected, got, doc)
	}
}
