package locator_test

import (
	"errors"
	"sync/atomic"
)

type DatabaseService struct {
	ConnectionString string
	disposed         atomic.Int32
}

func (d *DatabaseService) Dispose() error {
	d.disposed.Add(1)
	return nil
}

type UserRepository struct {
	DB *DatabaseService
}

type Clock struct{ ticks int }

type Cache struct {
	disposed atomic.Int32
	fail     bool
}

func (c *Cache) Dispose() error {
	c.disposed.Add(1)
	if c.fail {
		return errors.New("cache flush failed")
	}
	return nil
}

type Greeter interface {
	Greet() string
}

type englishGreeter struct{}

func (englishGreeter) Greet() string { return "hello" }
