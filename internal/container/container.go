package container

import (
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/danpasecinic/locator/internal/lifetime"
	"github.com/danpasecinic/locator/internal/typekey"
)

type DisposalPolicy int

const (
	BestEffort DisposalPolicy = iota
	FailFast
)

func (p DisposalPolicy) String() string {
	switch p {
	case BestEffort:
		return "best-effort"
	case FailFast:
		return "fail-fast"
	default:
		return "unknown"
	}
}

type ResolveHook func(key string, duration time.Duration, err error)

type RegisterHook func(key string, lt lifetime.Lifetime)

type DisposeHook func(key string, duration time.Duration, err error)

type Config struct {
	Name       string
	Logger     *slog.Logger
	Policy     DisposalPolicy
	OnResolve  []ResolveHook
	OnRegister []RegisterHook
	OnDispose  []DisposeHook
}

// Container holds two maps: singleton values and lazy holders live in
// instances, transient factories in factories. A key is in at most one.
type Container struct {
	mu        sync.RWMutex
	name      string
	instances map[typekey.Key]any
	factories map[typekey.Key]Factory
	order     []typekey.Key
	disposed  bool

	logger     *slog.Logger
	policy     DisposalPolicy
	onResolve  []ResolveHook
	onRegister []RegisterHook
	onDispose  []DisposeHook
}

func New(cfg *Config) *Container {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Container{
		name:       cfg.Name,
		instances:  make(map[typekey.Key]any),
		factories:  make(map[typekey.Key]Factory),
		logger:     logger.With("container", cfg.Name),
		policy:     cfg.Policy,
		onResolve:  cfg.OnResolve,
		onRegister: cfg.OnRegister,
		onDispose:  cfg.OnDispose,
	}
}

func (c *Container) Name() string {
	return c.name
}

func (c *Container) Logger() *slog.Logger {
	return c.logger
}

func (c *Container) Register(key typekey.Key, factory Factory) error {
	return c.add(key, lifetime.Transient, func() { c.factories[key] = factory })
}

func (c *Container) RegisterInstance(key typekey.Key, value any) error {
	return c.add(key, lifetime.Singleton, func() { c.instances[key] = value })
}

func (c *Container) RegisterLazy(key typekey.Key, lazy *Lazy) error {
	return c.add(key, lifetime.Lazy, func() { c.instances[key] = lazy })
}

func (c *Container) add(key typekey.Key, lt lifetime.Lifetime, store func()) error {
	c.mu.Lock()
	if c.disposed {
		c.mu.Unlock()
		return errDisposed(c.name).WithService(key.String())
	}
	if c.has(key) {
		c.mu.Unlock()
		return errAlreadyRegistered(key.String()).WithContainer(c.name)
	}

	store()
	c.order = append(c.order, key)
	c.mu.Unlock()

	c.logger.Debug("registered", "service", key.String(), "lifetime", lt.String())
	c.callRegisterHooks(key.String(), lt)
	return nil
}

func (c *Container) has(key typekey.Key) bool {
	if _, ok := c.instances[key]; ok {
		return true
	}
	_, ok := c.factories[key]
	return ok
}

func (c *Container) Has(key typekey.Key) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.has(key)
}

func (c *Container) Resolve(key typekey.Key) (any, error) {
	start := time.Now()
	instance, err := c.resolve(key)
	c.callResolveHooks(key.String(), time.Since(start), err)
	return instance, err
}

func (c *Container) resolve(key typekey.Key) (any, error) {
	c.mu.RLock()
	if c.disposed {
		c.mu.RUnlock()
		return nil, errDisposed(c.name).WithService(key.String())
	}
	entry, isInstance := c.instances[key]
	factory, isFactory := c.factories[key]
	c.mu.RUnlock()

	switch {
	case isInstance:
		lazy, ok := entry.(*Lazy)
		if !ok {
			return entry, nil
		}
		instance, err := lazy.Value()
		if err != nil {
			return nil, errFactoryFailed(key.String(), err).WithContainer(c.name)
		}
		return instance, nil
	case isFactory:
		instance, err := invoke(factory)
		if err != nil {
			return nil, errFactoryFailed(key.String(), err).WithContainer(c.name)
		}
		return instance, nil
	default:
		return nil, errNotRegistered(key.String()).WithContainer(c.name)
	}
}

func (c *Container) IsDisposed() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.disposed
}

func (c *Container) Keys() []typekey.Key {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Clone(c.order)
}

func (c *Container) Size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.order)
}

type EntryInfo struct {
	Key         string
	Lifetime    lifetime.Lifetime
	Initialized bool
}

type registration struct {
	key      typekey.Key
	entry    any
	instance bool
}

// snapshot copies the registrations so lazy holders can be inspected
// without holding the container lock.
func (c *Container) snapshot() []registration {
	c.mu.RLock()
	defer c.mu.RUnlock()

	regs := make([]registration, 0, len(c.order))
	for _, key := range c.order {
		entry, isInstance := c.instances[key]
		regs = append(regs, registration{key: key, entry: entry, instance: isInstance})
	}
	return regs
}

// Entries describes every registration in registration order without
// constructing anything.
func (c *Container) Entries() []EntryInfo {
	regs := c.snapshot()
	entries := make([]EntryInfo, 0, len(regs))
	for _, reg := range regs {
		info := EntryInfo{Key: reg.key.String(), Lifetime: lifetime.Transient}
		if reg.instance {
			if lazy, isLazy := reg.entry.(*Lazy); isLazy {
				info.Lifetime = lifetime.Lazy
				info.Initialized = lazy.IsInitialized()
			} else {
				info.Lifetime = lifetime.Singleton
				info.Initialized = true
			}
		}
		entries = append(entries, info)
	}
	return entries
}

type Constructed struct {
	Key   string
	Value any
}

// Constructed returns singleton values and initialized lazy values.
func (c *Container) Constructed() []Constructed {
	regs := c.snapshot()
	out := make([]Constructed, 0, len(regs))
	for _, reg := range regs {
		if !reg.instance {
			continue
		}
		value := reg.entry
		if lazy, isLazy := value.(*Lazy); isLazy {
			var initialized bool
			if value, initialized = lazy.Peek(); !initialized {
				continue
			}
		}
		out = append(out, Constructed{Key: reg.key.String(), Value: value})
	}
	return out
}

func (c *Container) callResolveHooks(key string, duration time.Duration, err error) {
	for _, hook := range c.onResolve {
		hook(key, duration, err)
	}
}

func (c *Container) callRegisterHooks(key string, lt lifetime.Lifetime) {
	for _, hook := range c.onRegister {
		hook(key, lt)
	}
}

func (c *Container) callDisposeHooks(key string, duration time.Duration, err error) {
	for _, hook := range c.onDispose {
		hook(key, duration, err)
	}
}
