package typekey

import (
	"fmt"
	"strings"
	"sync"
)

// Key identifies a Go type. The token is a typed nil pointer, so two keys
// compare equal exactly when they were built from the same type parameter.
type Key struct {
	token any
	name  string
}

var nameCache sync.Map

func Of[T any]() Key {
	token := any((*T)(nil))
	return Key{token: token, name: nameOf(token)}
}

func nameOf(token any) string {
	if cached, ok := nameCache.Load(token); ok {
		return cached.(string)
	}

	name := strings.TrimPrefix(fmt.Sprintf("%T", token), "*")
	nameCache.Store(token, name)
	return name
}

func (k Key) String() string {
	if k.token == nil {
		return "<nil>"
	}
	return k.name
}

func (k Key) IsZero() bool {
	return k.token == nil
}

func Name[T any]() string {
	return Of[T]().name
}
