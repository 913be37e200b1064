package container

import (
	"errors"
	"fmt"
	"strings"
)

type ErrorCode uint16

const (
	ErrCodeUnknown ErrorCode = iota
	ErrCodeNotRegistered
	ErrCodeAlreadyRegistered
	ErrCodeScopeNotFound
	ErrCodeDuplicateScope
	ErrCodeContainerDisposed
	ErrCodeFactoryFailed
	ErrCodeDisposeFailed
	ErrCodeHealthCheckFailed
)

var codeNames = map[ErrorCode]string{
	ErrCodeUnknown:           "UNKNOWN",
	ErrCodeNotRegistered:     "NOT_REGISTERED",
	ErrCodeAlreadyRegistered: "ALREADY_REGISTERED",
	ErrCodeScopeNotFound:     "SCOPE_NOT_FOUND",
	ErrCodeDuplicateScope:    "DUPLICATE_SCOPE",
	ErrCodeContainerDisposed: "CONTAINER_DISPOSED",
	ErrCodeFactoryFailed:     "FACTORY_FAILED",
	ErrCodeDisposeFailed:     "DISPOSE_FAILED",
	ErrCodeHealthCheckFailed: "HEALTH_CHECK_FAILED",
}

func (c ErrorCode) String() string {
	if name, ok := codeNames[c]; ok {
		return name
	}
	return fmt.Sprintf("UNKNOWN(%d)", c)
}

type Error struct {
	Code      ErrorCode
	Message   string
	Service   string
	Container string
	Cause     error
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("[%s]", e.Code))

	if e.Container != "" {
		b.WriteString(fmt.Sprintf(" container=%q", e.Container))
	}
	if e.Service != "" {
		b.WriteString(fmt.Sprintf(" service=%q:", e.Service))
	}

	b.WriteString(" ")
	b.WriteString(e.Message)

	if e.Cause != nil {
		b.WriteString(": ")
		b.WriteString(e.Cause.Error())
	}

	return b.String()
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Is matches any *Error carrying the same code, so the exported sentinels
// work with errors.Is regardless of message or service.
func (e *Error) Is(target error) bool {
	var t *Error
	if errors.As(target, &t) {
		return e.Code == t.Code
	}
	return false
}

func (e *Error) WithService(service string) *Error {
	e.Service = service
	return e
}

func (e *Error) WithContainer(name string) *Error {
	e.Container = name
	return e
}

func NewError(code ErrorCode, message string, cause error) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

func HasCode(err error, code ErrorCode) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == code
}

func errNotRegistered(service string) *Error {
	return NewError(
		ErrCodeNotRegistered,
		fmt.Sprintf("no registration for type %s", service),
		nil,
	).WithService(service)
}

func errAlreadyRegistered(service string) *Error {
	return NewError(
		ErrCodeAlreadyRegistered,
		fmt.Sprintf("type %s is already registered", service),
		nil,
	).WithService(service)
}

func errDisposed(container string) *Error {
	return NewError(
		ErrCodeContainerDisposed,
		"container has been disposed",
		nil,
	).WithContainer(container)
}

func errFactoryFailed(service string, cause error) *Error {
	return NewError(
		ErrCodeFactoryFailed,
		fmt.Sprintf("factory for %s failed", service),
		cause,
	).WithService(service)
}

func errDisposeFailed(service string, cause error) *Error {
	return NewError(
		ErrCodeDisposeFailed,
		fmt.Sprintf("failed to dispose %s", service),
		cause,
	).WithService(service)
}
