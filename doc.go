// Package locator provides a typed instance registry (service locator) for Go 1.25+.
//
// Callers register a type under one of three lifetimes and later resolve it by
// type. Type keys come from generic type parameters, so registration and
// resolution are checked at compile time and no reflection is involved.
//
// # Quick Start
//
// Create a registry and register values:
//
//	r := locator.New()
//
//	locator.RegisterSingleton(r, &DatabaseService{ConnectionString: "conn-A"})
//
//	locator.Register(r, func() (*UserRepository, error) {
//	    db, err := locator.Get[*DatabaseService](r)
//	    if err != nil {
//	        return nil, err
//	    }
//	    return &UserRepository{DB: db}, nil
//	})
//
//	repo, err := locator.Get[*UserRepository](r)
//
// # Lifetimes
//
//	locator.RegisterSingleton[T](c, value)        // same value on every Get
//	locator.Register[T](c, factory)               // factory runs on every Get
//	locator.RegisterLazySingleton[T](c, factory)  // factory runs once, on first Get
//
// Infallible constructors can be adapted with Func:
//
//	locator.Register(c, locator.Func(NewClock))
//
// A type can be registered once per container. Registering it again, with any
// lifetime, fails with ALREADY_REGISTERED. The same type can be registered
// independently in the registry and in each scope.
//
// RegisterLazySingleton returns the lazy holder:
//
//	lazy, _ := locator.RegisterLazySingleton(c, NewCache)
//	lazy.IsInitialized() // false until the first Get
//	lazy.Reset()         // dispose and rebuild on the next Get
//
// # Resolution
//
//	svc, err := locator.Get[*Service](c)
//	svc := locator.MustGet[*Service](c)       // panics on error
//	ok := locator.IsRegistered[*Service](c)   // never constructs
//
// # Scopes
//
// A Registry owns named scopes. Each scope is an isolated container with its
// own registrations and its own disposal:
//
//	s, err := r.CreateScope("job-42")
//	locator.RegisterSingleton(s, &JobContext{ID: 42})
//	defer r.DisposeScope("job-42")
//
//	r.GetScope("job-42")
//	r.HasScope("job-42")
//	r.ScopeNames()
//
// Scopes do not fall back to the registry: a type registered only in the
// registry is not visible through a scope.
//
// # Disposal
//
// Values implementing Disposable are disposed when they are unregistered or
// when their container is disposed:
//
//	type Disposable interface {
//	    Dispose() error
//	}
//
// Singletons and built lazy values are disposed; values returned by transient
// factories belong to the caller. Containers dispose in reverse registration
// order. Dispose is idempotent, and a disposed container rejects registration
// and resolution with CONTAINER_DISPOSED. Disposing the registry disposes all
// of its scopes first.
//
// Disposal failures follow the configured policy:
//
//	locator.New(locator.WithDisposalPolicy(locator.BestEffort)) // default, errors joined
//	locator.New(locator.WithDisposalPolicy(locator.FailFast))   // stop at first error
//
// # Default Registry
//
// Default returns a process-wide registry created on first use. Reset drops it
// without disposing anything:
//
//	locator.Default().Dispose()
//	locator.Reset()
//
// Prefer passing an explicit *Registry; tests should create their own with New.
//
// # Errors
//
// All errors are *Error values carrying an ErrorCode. Use errors.Is with the
// sentinels or the helper predicates:
//
//	if errors.Is(err, locator.ErrNotRegistered) { ... }
//	if locator.IsDisposed(err) { ... }
//
// A factory that returns an error or panics fails the Get with FACTORY_FAILED;
// the cause is available through errors.Is and errors.As.
//
// # Concurrency
//
// Every container and lazy holder is guarded by its own lock, and no lock is
// held while user code runs except the lazy holder's while its factory builds
// the value. A lazy factory that resolves its own type deadlocks.
//
// # Modules
//
// Group registrations and install them into any container:
//
//	var RequestModule = locator.NewModule("request")
//	locator.ModuleRegisterLazySingleton(RequestModule, NewUnitOfWork)
//
//	locator.Install(scope, RequestModule)
//
// # Observability
//
//	r := locator.New(
//	    locator.WithLogger(logger),
//	    locator.WithResolveObserver(func(key string, d time.Duration, err error) { ... }),
//	    locator.WithRegisterObserver(func(key string, lt locator.Lifetime) { ... }),
//	    locator.WithDisposeObserver(func(key string, d time.Duration, err error) { ... }),
//	)
//
//	r.PrintTree()              // ASCII view of registry and scopes
//	doc, _ := r.SnapshotJSON() // same as JSON
//	err := r.Live(ctx)         // HealthChecker values among built singletons
package locator
