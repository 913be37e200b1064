package locator

import (
	"fmt"
)

// Module groups registrations so they can be installed into any number of
// containers, for example into every request scope.
type Module struct {
	name          string
	registrations []func(c Container) error
	submodules    []*Module
}

func NewModule(name string) *Module {
	return &Module{
		name: name,
	}
}

func (m *Module) Name() string {
	return m.name
}

func (m *Module) Include(submodule *Module) *Module {
	m.submodules = append(m.submodules, submodule)
	return m
}

func (m *Module) add(register func(c Container) error) *Module {
	m.registrations = append(m.registrations, register)
	return m
}

func ModuleRegister[T any](m *Module, factory Factory[T]) *Module {
	return m.add(func(c Container) error {
		return Register(c, factory)
	})
}

func ModuleRegisterSingleton[T any](m *Module, value T) *Module {
	return m.add(func(c Container) error {
		return RegisterSingleton(c, value)
	})
}

// ModuleRegisterLazySingleton gives every container the module is
// installed into its own lazy holder.
func ModuleRegisterLazySingleton[T any](m *Module, factory Factory[T]) *Module {
	return m.add(func(c Container) error {
		_, err := RegisterLazySingleton(c, factory)
		return err
	})
}

func (m *Module) install(c Container) error {
	for _, sub := range m.submodules {
		if err := sub.install(c); err != nil {
			return err
		}
	}

	for _, register := range m.registrations {
		if err := register(c); err != nil {
			return fmt.Errorf("module %s: %w", m.name, err)
		}
	}

	return nil
}

// Install applies the modules in order and stops at the first failing
// registration.
func Install(c Container, modules ...*Module) error {
	for _, m := range modules {
		if err := m.install(c); err != nil {
			return err
		}
	}
	return nil
}
