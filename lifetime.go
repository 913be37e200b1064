package locator

import "github.com/danpasecinic/locator/internal/lifetime"

type Lifetime = lifetime.Lifetime

const (
	LifetimeSingleton = lifetime.Singleton
	LifetimeTransient = lifetime.Transient
	LifetimeLazy      = lifetime.Lazy
)
