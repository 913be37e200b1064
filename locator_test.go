package locator_test

import (
	"errors"
	"log/slog"
	"os"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danpasecinic/locator"
)

func TestNew(t *testing.T) {
	t.Parallel()

	r := locator.New()
	require.NotNil(t, r)
	assert.Equal(t, "registry", r.Name())
	assert.False(t, r.IsDisposed())
	assert.Zero(t, r.Size())
}

func TestNewWithOptions(t *testing.T) {
	t.Parallel()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	r := locator.New(locator.WithLogger(logger), locator.WithName("app"))
	assert.Equal(t, "app", r.Name())
	assert.NotNil(t, r.Logger())
}

func TestSingleton_SameInstance(t *testing.T) {
	t.Parallel()

	r := locator.New()
	db := &DatabaseService{ConnectionString: "conn-A"}
	require.NoError(t, locator.RegisterSingleton(r, db))

	for range 3 {
		got, err := locator.Get[*DatabaseService](r)
		require.NoError(t, err)
		assert.Same(t, db, got)
	}
}

func TestFactory_DistinctInstances(t *testing.T) {
	t.Parallel()

	r := locator.New()
	var calls atomic.Int32
	require.NoError(t, locator.Register(r, func() (*Clock, error) {
		calls.Add(1)
		return &Clock{}, nil
	}))

	first := locator.MustGet[*Clock](r)
	second := locator.MustGet[*Clock](r)

	assert.NotSame(t, first, second)
	assert.Equal(t, int32(2), calls.Load())
}

func TestFactoryDependingOnSingleton(t *testing.T) {
	t.Parallel()

	r := locator.New()
	require.NoError(t, locator.RegisterSingleton(r, &DatabaseService{ConnectionString: "conn-A"}))
	require.NoError(t, locator.Register(r, func() (*UserRepository, error) {
		db, err := locator.Get[*DatabaseService](r)
		if err != nil {
			return nil, err
		}
		return &UserRepository{DB: db}, nil
	}))

	first, err := locator.Get[*UserRepository](r)
	require.NoError(t, err)
	second, err := locator.Get[*UserRepository](r)
	require.NoError(t, err)

	assert.NotSame(t, first, second)
	assert.Equal(t, "conn-A", first.DB.ConnectionString)
	assert.Equal(t, "conn-A", second.DB.ConnectionString)
}

func TestLazySingleton_CountingFactory(t *testing.T) {
	t.Parallel()

	r := locator.New()
	var calls atomic.Int32
	lazy, err := locator.RegisterLazySingleton(r, func() (*Clock, error) {
		calls.Add(1)
		return &Clock{}, nil
	})
	require.NoError(t, err)

	assert.False(t, lazy.IsInitialized())
	assert.Zero(t, calls.Load())

	first := locator.MustGet[*Clock](r)
	assert.True(t, lazy.IsInitialized())
	second := locator.MustGet[*Clock](r)

	assert.Same(t, first, second)
	assert.Equal(t, int32(1), calls.Load())

	v, err := lazy.Value()
	require.NoError(t, err)
	assert.Same(t, first, v)
}

func TestFunc(t *testing.T) {
	t.Parallel()

	r := locator.New()
	require.NoError(t, locator.Register(r, locator.Func(func() *Clock { return &Clock{ticks: 3} })))

	assert.Equal(t, 3, locator.MustGet[*Clock](r).ticks)
}

func TestDuplicateRegistration(t *testing.T) {
	t.Parallel()

	kinds := map[string]func(c locator.Container) error{
		"singleton": func(c locator.Container) error {
			return locator.RegisterSingleton(c, &Clock{})
		},
		"factory": func(c locator.Container) error {
			return locator.Register(c, locator.Func(func() *Clock { return &Clock{} }))
		},
		"lazy": func(c locator.Container) error {
			_, err := locator.RegisterLazySingleton(c, locator.Func(func() *Clock { return &Clock{} }))
			return err
		},
	}

	for firstName, first := range kinds {
		for secondName, second := range kinds {
			t.Run(firstName+"/"+secondName, func(t *testing.T) {
				t.Parallel()

				r := locator.New()
				require.NoError(t, first(r))

				err := second(r)
				require.Error(t, err)
				assert.ErrorIs(t, err, locator.ErrAlreadyRegistered)
				assert.True(t, locator.IsAlreadyRegistered(err))
			})
		}
	}
}

func TestSameTypeInDifferentContainers(t *testing.T) {
	t.Parallel()

	r := locator.New()
	a, err := r.CreateScope("a")
	require.NoError(t, err)
	b, err := r.CreateScope("b")
	require.NoError(t, err)

	require.NoError(t, locator.RegisterSingleton(r, &Clock{ticks: 0}))
	require.NoError(t, locator.RegisterSingleton(a, &Clock{ticks: 1}))
	require.NoError(t, locator.RegisterSingleton(b, &Clock{ticks: 2}))

	assert.Equal(t, 0, locator.MustGet[*Clock](r).ticks)
	assert.Equal(t, 1, locator.MustGet[*Clock](a).ticks)
	assert.Equal(t, 2, locator.MustGet[*Clock](b).ticks)
}

func TestGet_NotRegistered(t *testing.T) {
	t.Parallel()

	r := locator.New()

	v, err := locator.Get[*Clock](r)
	require.Error(t, err)
	assert.Nil(t, v)
	assert.ErrorIs(t, err, locator.ErrNotRegistered)
	assert.True(t, locator.IsNotRegistered(err))

	var e *locator.Error
	require.ErrorAs(t, err, &e)
	assert.Equal(t, locator.ErrCodeNotRegistered, e.Code)
	assert.Equal(t, "*locator_test.Clock", e.Service)
}

func TestMustGet_Panics(t *testing.T) {
	t.Parallel()

	r := locator.New()
	assert.Panics(t, func() { locator.MustGet[*Clock](r) })
}

func TestInterfaceKey(t *testing.T) {
	t.Parallel()

	r := locator.New()
	require.NoError(t, locator.RegisterSingleton[Greeter](r, englishGreeter{}))

	g, err := locator.Get[Greeter](r)
	require.NoError(t, err)
	assert.Equal(t, "hello", g.Greet())

	assert.False(t, locator.IsRegistered[englishGreeter](r))
}

func TestNilInterfaceSingleton(t *testing.T) {
	t.Parallel()

	r := locator.New()
	require.NoError(t, locator.RegisterSingleton[Greeter](r, nil))

	g, err := locator.Get[Greeter](r)
	require.NoError(t, err)
	assert.Nil(t, g)
}

func TestIsRegistered(t *testing.T) {
	t.Parallel()

	r := locator.New()
	var calls atomic.Int32

	assert.False(t, locator.IsRegistered[*Clock](r))

	_, err := locator.RegisterLazySingleton(r, func() (*Clock, error) {
		calls.Add(1)
		return &Clock{}, nil
	})
	require.NoError(t, err)

	assert.True(t, locator.IsRegistered[*Clock](r))
	assert.Zero(t, calls.Load())
}

func TestFactoryError(t *testing.T) {
	t.Parallel()

	r := locator.New()
	dial := errors.New("dial tcp: refused")
	require.NoError(t, locator.Register(r, func() (*DatabaseService, error) {
		return nil, dial
	}))

	_, err := locator.Get[*DatabaseService](r)
	require.Error(t, err)
	assert.ErrorIs(t, err, locator.ErrFactoryFailed)
	assert.ErrorIs(t, err, dial)
}

func TestFactoryPanic(t *testing.T) {
	t.Parallel()

	r := locator.New()
	require.NoError(t, locator.Register(r, func() (*DatabaseService, error) {
		panic("no driver")
	}))

	_, err := locator.Get[*DatabaseService](r)
	require.Error(t, err)
	assert.True(t, locator.IsFactoryFailed(err))
	assert.ErrorIs(t, err, locator.ErrFactoryPanic)
}

func TestUnregister_DisposesSingletonOnce(t *testing.T) {
	t.Parallel()

	r := locator.New()
	db := &DatabaseService{}
	require.NoError(t, locator.RegisterSingleton(r, db))

	require.NoError(t, locator.Unregister[*DatabaseService](r))
	require.NoError(t, locator.Unregister[*DatabaseService](r))

	assert.Equal(t, int32(1), db.disposed.Load())
	assert.False(t, locator.IsRegistered[*DatabaseService](r))

	_, err := locator.Get[*DatabaseService](r)
	assert.True(t, locator.IsNotRegistered(err))
}

func TestUnregister_NonDisposableAndAbsent(t *testing.T) {
	t.Parallel()

	r := locator.New()
	require.NoError(t, locator.RegisterSingleton(r, &Clock{}))

	require.NoError(t, locator.Unregister[*Clock](r))
	require.NoError(t, locator.Unregister[*UserRepository](r))
}

func TestUnregister_AllowsReRegistration(t *testing.T) {
	t.Parallel()

	r := locator.New()
	require.NoError(t, locator.RegisterSingleton(r, &Clock{ticks: 1}))
	require.NoError(t, locator.Unregister[*Clock](r))
	require.NoError(t, locator.RegisterSingleton(r, &Clock{ticks: 2}))

	assert.Equal(t, 2, locator.MustGet[*Clock](r).ticks)
}

func TestUnregister_LazyDisposesBuiltValue(t *testing.T) {
	t.Parallel()

	r := locator.New()
	cache := &Cache{}
	lazy, err := locator.RegisterLazySingleton(r, locator.Func(func() *Cache { return cache }))
	require.NoError(t, err)

	_ = locator.MustGet[*Cache](r)
	require.NoError(t, locator.Unregister[*Cache](r))

	assert.Equal(t, int32(1), cache.disposed.Load())
	assert.False(t, lazy.IsInitialized())
}

func TestKeys(t *testing.T) {
	t.Parallel()

	r := locator.New()
	locator.MustRegisterSingleton(r, &Clock{})
	locator.MustRegister(r, locator.Func(func() *UserRepository { return &UserRepository{} }))
	locator.MustRegisterLazySingleton(r, locator.Func(func() *Cache { return &Cache{} }))

	assert.Equal(t, []string{
		"*locator_test.Clock",
		"*locator_test.UserRepository",
		"*locator_test.Cache",
	}, locator.Keys(r))
	assert.Equal(t, 3, r.Size())
}

func TestMustRegister_PanicsOnDuplicate(t *testing.T) {
	t.Parallel()

	r := locator.New()
	locator.MustRegisterSingleton(r, &Clock{})

	assert.Panics(t, func() { locator.MustRegisterSingleton(r, &Clock{}) })
}

func TestParseDisposalPolicy(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    locator.DisposalPolicy
		wantErr bool
	}{
		{"", locator.BestEffort, false},
		{"best-effort", locator.BestEffort, false},
		{"Fail-Fast", locator.FailFast, false},
		{"failfast", locator.FailFast, false},
		{"sometimes", locator.BestEffort, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()

			got, err := locator.ParseDisposalPolicy(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
