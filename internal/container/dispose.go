package container

import (
	"errors"
	"slices"
	"time"

	"github.com/danpasecinic/locator/internal/typekey"
)

// Unregister removes key from both maps and disposes a removed singleton or
// lazy holder. Unknown keys are a no-op.
func (c *Container) Unregister(key typekey.Key) error {
	c.mu.Lock()
	if c.disposed {
		c.mu.Unlock()
		return errDisposed(c.name).WithService(key.String())
	}

	entry, isInstance := c.instances[key]
	_, isFactory := c.factories[key]
	delete(c.instances, key)
	delete(c.factories, key)
	if isInstance || isFactory {
		c.order = slices.DeleteFunc(c.order, func(k typekey.Key) bool { return k == key })
	}
	c.mu.Unlock()

	if !isInstance && !isFactory {
		return nil
	}

	c.logger.Debug("unregistered", "service", key.String())
	if !isInstance {
		return nil
	}
	return c.disposeEntry(key, entry)
}

// Dispose tears the container down in reverse registration order. Only the
// first call does any work. The container is cleared and marked disposed
// even when a value fails to dispose.
func (c *Container) Dispose() error {
	c.mu.Lock()
	if c.disposed {
		c.mu.Unlock()
		return nil
	}
	c.disposed = true
	instances, order := c.instances, c.order
	c.instances = make(map[typekey.Key]any)
	c.factories = make(map[typekey.Key]Factory)
	c.order = nil
	c.mu.Unlock()

	var errs []error
	for i := len(order) - 1; i >= 0; i-- {
		entry, ok := instances[order[i]]
		if !ok {
			continue
		}
		if err := c.disposeEntry(order[i], entry); err != nil {
			errs = append(errs, err)
			if c.policy == FailFast {
				break
			}
		}
	}

	c.logger.Debug("container disposed", "entries", len(order), "failures", len(errs))
	return errors.Join(errs...)
}

func (c *Container) disposeEntry(key typekey.Key, entry any) error {
	start := time.Now()
	err := disposeValue(entry)
	c.callDisposeHooks(key.String(), time.Since(start), err)

	if err != nil {
		c.logger.Warn("dispose failed", "service", key.String(), "error", err)
		return errDisposeFailed(key.String(), err).WithContainer(c.name)
	}
	return nil
}
