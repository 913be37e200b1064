// Package httpscope gives every HTTP request its own locator scope.
//
//	reg := locator.New()
//	router := chi.NewRouter()
//	router.Use(middleware.RequestID)
//	router.Use(httpscope.Middleware(reg, httpscope.WithModules(RequestModule)))
//
//	router.Get("/orders", func(w http.ResponseWriter, r *http.Request) {
//	    uow, err := httpscope.Get[*UnitOfWork](r)
//	    ...
//	})
//
// The scope is named after chi's request id and is disposed when the
// handler returns, so request values implementing locator.Disposable are
// released with the request.
package httpscope

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"sync/atomic"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/danpasecinic/locator"
)

var ErrNoScope = errors.New("httpscope: no scope in request context")

// RequestInfo is registered as a singleton in every request scope.
type RequestInfo struct {
	ID     string
	Method string
	Path   string
}

type ctxKey struct{}

func NewContext(ctx context.Context, scope *locator.Scope) context.Context {
	return context.WithValue(ctx, ctxKey{}, scope)
}

func FromContext(ctx context.Context) (*locator.Scope, bool) {
	scope, ok := ctx.Value(ctxKey{}).(*locator.Scope)
	return scope, ok
}

// Get resolves T from the request's scope.
func Get[T any](r *http.Request) (T, error) {
	scope, ok := FromContext(r.Context())
	if !ok {
		var zero T
		return zero, ErrNoScope
	}
	return locator.Get[T](scope)
}

type Option func(*options)

type options struct {
	prefix  string
	modules []*locator.Module
}

// WithPrefix sets the prefix of scope names. The default is "request-".
func WithPrefix(prefix string) Option {
	return func(o *options) {
		o.prefix = prefix
	}
}

// WithModules installs the modules into every request scope.
func WithModules(modules ...*locator.Module) Option {
	return func(o *options) {
		o.modules = append(o.modules, modules...)
	}
}

// Middleware creates a scope for each request. Without chi's RequestID
// middleware in front, scopes are numbered by a counter instead. A scope that
// cannot be created or seeded fails the request with 500.
func Middleware(reg *locator.Registry, opts ...Option) func(http.Handler) http.Handler {
	o := &options{prefix: "request-"}
	for _, opt := range opts {
		opt(o)
	}

	var seq atomic.Uint64

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := middleware.GetReqID(r.Context())
			n := seq.Add(1)
			if id == "" {
				id = strconv.FormatUint(n, 10)
			}

			name := o.prefix + id
			scope, err := reg.CreateScope(name)
			if locator.IsDuplicateScope(err) {
				// client-supplied request ids can repeat
				name += "-" + strconv.FormatUint(n, 10)
				scope, err = reg.CreateScope(name)
			}
			if err != nil {
				reg.Logger().Error("failed to create request scope", "scope", name, "error", err)
				http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
				return
			}

			defer func() {
				if err := reg.DisposeScope(name); err != nil {
					reg.Logger().Warn("failed to dispose request scope", "scope", name, "error", err)
				}
			}()

			info := &RequestInfo{ID: id, Method: r.Method, Path: r.URL.Path}
			if err := locator.RegisterSingleton(scope, info); err != nil {
				reg.Logger().Error("failed to seed request scope", "scope", name, "error", err)
				http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
				return
			}
			if err := locator.Install(scope, o.modules...); err != nil {
				reg.Logger().Error("failed to seed request scope", "scope", name, "error", err)
				http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
				return
			}

			next.ServeHTTP(w, r.WithContext(NewContext(r.Context(), scope)))
		})
	}
}

// LiveHandler answers 200 when every built HealthChecker in the registry
// and its scopes is up, and 503 otherwise.
func LiveHandler(reg *locator.Registry) http.HandlerFunc {
	return probeHandler(reg.Live)
}

func ReadyHandler(reg *locator.Registry) http.HandlerFunc {
	return probeHandler(reg.Ready)
}

func probeHandler(probe func(context.Context) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := probe(r.Context()); err != nil {
			http.Error(w, err.Error(), http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte("OK"))
	}
}
