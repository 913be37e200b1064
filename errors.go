package locator

import (
	"fmt"

	"github.com/danpasecinic/locator/internal/container"
)

type (
	Error     = container.Error
	ErrorCode = container.ErrorCode
)

const (
	ErrCodeUnknown           = container.ErrCodeUnknown
	ErrCodeNotRegistered     = container.ErrCodeNotRegistered
	ErrCodeAlreadyRegistered = container.ErrCodeAlreadyRegistered
	ErrCodeScopeNotFound     = container.ErrCodeScopeNotFound
	ErrCodeDuplicateScope    = container.ErrCodeDuplicateScope
	ErrCodeContainerDisposed = container.ErrCodeContainerDisposed
	ErrCodeFactoryFailed     = container.ErrCodeFactoryFailed
	ErrCodeDisposeFailed     = container.ErrCodeDisposeFailed
	ErrCodeHealthCheckFailed = container.ErrCodeHealthCheckFailed
)

// Sentinels for errors.Is. Any *Error with the same code matches.
var (
	ErrNotRegistered     = &Error{Code: ErrCodeNotRegistered, Message: "not registered"}
	ErrAlreadyRegistered = &Error{Code: ErrCodeAlreadyRegistered, Message: "already registered"}
	ErrScopeNotFound     = &Error{Code: ErrCodeScopeNotFound, Message: "scope not found"}
	ErrDuplicateScope    = &Error{Code: ErrCodeDuplicateScope, Message: "duplicate scope"}
	ErrContainerDisposed = &Error{Code: ErrCodeContainerDisposed, Message: "container disposed"}
	ErrFactoryFailed     = &Error{Code: ErrCodeFactoryFailed, Message: "factory failed"}
	ErrDisposeFailed     = &Error{Code: ErrCodeDisposeFailed, Message: "dispose failed"}
	ErrHealthCheckFailed = &Error{Code: ErrCodeHealthCheckFailed, Message: "health check failed"}

	ErrFactoryPanic = container.ErrFactoryPanic
	ErrDisposePanic = container.ErrDisposePanic
)

func errScopeNotFound(name string) *Error {
	return container.NewError(
		ErrCodeScopeNotFound,
		fmt.Sprintf("no scope named %q", name),
		nil,
	).WithContainer(name)
}

func errDuplicateScope(name string) *Error {
	return container.NewError(
		ErrCodeDuplicateScope,
		fmt.Sprintf("scope %q already exists", name),
		nil,
	).WithContainer(name)
}

func errRegistryDisposed(name string) *Error {
	return container.NewError(
		ErrCodeContainerDisposed,
		"container has been disposed",
		nil,
	).WithContainer(name)
}

func errHealthCheckFailed(service string, cause error) *Error {
	return container.NewError(
		ErrCodeHealthCheckFailed,
		fmt.Sprintf("health check failed for %s", service),
		cause,
	).WithService(service)
}

func IsNotRegistered(err error) bool {
	return container.HasCode(err, ErrCodeNotRegistered)
}

func IsAlreadyRegistered(err error) bool {
	return container.HasCode(err, ErrCodeAlreadyRegistered)
}

func IsScopeNotFound(err error) bool {
	return container.HasCode(err, ErrCodeScopeNotFound)
}

func IsDuplicateScope(err error) bool {
	return container.HasCode(err, ErrCodeDuplicateScope)
}

func IsDisposed(err error) bool {
	return container.HasCode(err, ErrCodeContainerDisposed)
}

func IsFactoryFailed(err error) bool {
	return container.HasCode(err, ErrCodeFactoryFailed)
}

func IsDisposeFailed(err error) bool {
	return container.HasCode(err, ErrCodeDisposeFailed)
}
