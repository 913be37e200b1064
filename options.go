package locator

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/danpasecinic/locator/internal/container"
)

type DisposalPolicy = container.DisposalPolicy

const (
	// BestEffort disposes every value and returns the joined failures.
	BestEffort = container.BestEffort
	// FailFast stops at the first failing value. The container is still
	// cleared and marked disposed.
	FailFast = container.FailFast
)

func ParseDisposalPolicy(s string) (DisposalPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "best-effort", "besteffort":
		return BestEffort, nil
	case "fail-fast", "failfast":
		return FailFast, nil
	default:
		return BestEffort, fmt.Errorf("unknown disposal policy %q", s)
	}
}

type Option func(*registryConfig)

type registryConfig struct {
	name       string
	logger     *slog.Logger
	policy     DisposalPolicy
	onResolve  []ResolveHook
	onRegister []RegisterHook
	onDispose  []DisposeHook
}

func (cfg *registryConfig) containerConfig(name string) *container.Config {
	onResolve := make([]container.ResolveHook, 0, len(cfg.onResolve))
	for _, h := range cfg.onResolve {
		onResolve = append(onResolve, container.ResolveHook(h))
	}
	onRegister := make([]container.RegisterHook, 0, len(cfg.onRegister))
	for _, h := range cfg.onRegister {
		onRegister = append(onRegister, container.RegisterHook(h))
	}
	onDispose := make([]container.DisposeHook, 0, len(cfg.onDispose))
	for _, h := range cfg.onDispose {
		onDispose = append(onDispose, container.DisposeHook(h))
	}

	return &container.Config{
		Name:       name,
		Logger:     cfg.logger,
		Policy:     cfg.policy,
		OnResolve:  onResolve,
		OnRegister: onRegister,
		OnDispose:  onDispose,
	}
}

func WithName(name string) Option {
	return func(cfg *registryConfig) {
		cfg.name = name
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(cfg *registryConfig) {
		cfg.logger = logger
	}
}

func WithDisposalPolicy(policy DisposalPolicy) Option {
	return func(cfg *registryConfig) {
		cfg.policy = policy
	}
}

func WithResolveObserver(hook ResolveHook) Option {
	return func(cfg *registryConfig) {
		cfg.onResolve = append(cfg.onResolve, hook)
	}
}

func WithRegisterObserver(hook RegisterHook) Option {
	return func(cfg *registryConfig) {
		cfg.onRegister = append(cfg.onRegister, hook)
	}
}

func WithDisposeObserver(hook DisposeHook) Option {
	return func(cfg *registryConfig) {
		cfg.onDispose = append(cfg.onDispose, hook)
	}
}
