package locator

import "sync"

var (
	defaultMu       sync.Mutex
	defaultRegistry *Registry
)

// Default returns the process-wide Registry, creating it on first use.
func Default() *Registry {
	defaultMu.Lock()
	defer defaultMu.Unlock()

	if defaultRegistry == nil {
		defaultRegistry = New()
	}
	return defaultRegistry
}

// Reset drops the process-wide Registry without disposing it. Call Dispose
// first if its values hold resources.
func Reset() {
	defaultMu.Lock()
	defer defaultMu.Unlock()

	defaultRegistry = nil
}
