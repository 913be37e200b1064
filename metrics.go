package locator

import (
	"time"
)

// Observers receive the type name of the service involved. They are shared
// by a Registry and every Scope it creates.
type ResolveHook func(key string, duration time.Duration, err error)

type RegisterHook func(key string, lt Lifetime)

type DisposeHook func(key string, duration time.Duration, err error)
