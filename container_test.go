// Copyright (c) 2026 Uber Technologies, Inc.
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

package depcon_test

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/depcon"
)

func TestResolveNoProvider(t *testing.T) {
	t.Parallel()

	c := depcon.Empty()
	db, err := depcon.Resolve[DbService](c)
	require.Error(t, err)
	assert.Nil(t, db)

	var noProvider *depcon.NoProviderError
	require.ErrorAs(t, err, &noProvider)
	assert.Equal(t, depcon.KeyOf[DbService](), noProvider.Service)
	assert.EqualError(t, err, "no provider registered for service depcon_test.DbService")
}

func TestResolveSingleton(t *testing.T) {
	t.Parallel()

	var calls int
	c := depcon.Empty()
	require.NoError(t, depcon.Register[*DbImpl, DbService](c, counting(&calls, depcon.Fields[DbImpl]())))

	first, err := depcon.Resolve[DbService](c)
	require.NoError(t, err)
	second, err := depcon.Resolve[DbService](c)
	require.NoError(t, err)

	assert.Same(t, first, second, "must resolve to the same instance")
	assert.Equal(t, 1, calls, "factory must run exactly once")

	impl, err := depcon.Resolve[*DbImpl](c)
	require.NoError(t, err)
	assert.Same(t, first, impl, "service view must alias the provider")
	assert.Equal(t, 1, calls, "self binding must not rebuild the provider")
}

func TestResolveChain(t *testing.T) {
	t.Parallel()

	c := depcon.Empty()
	require.NoError(t, depcon.Register[*DbImpl, DbService](c, depcon.Fields[DbImpl]()))
	require.NoError(t, depcon.Register[*RepoImpl, RepoService](c, depcon.Fields[RepoImpl]()))

	repo, err := depcon.Resolve[RepoService](c)
	require.NoError(t, err)

	db, err := depcon.Resolve[DbService](c)
	require.NoError(t, err)

	require.IsType(t, &RepoImpl{}, repo)
	assert.Same(t, db, repo.DB(), "dependency must be the shared instance")
}

func TestRegisterDuplicate(t *testing.T) {
	t.Parallel()

	c := depcon.Empty()
	require.NoError(t, depcon.Register[*DbImpl, DbService](c, depcon.Fields[DbImpl]()))

	err := depcon.Register[*OtherDb, DbService](c, depcon.Fields[OtherDb]())
	var dup *depcon.DuplicateRegistrationError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, depcon.KeyOf[DbService](), dup.Service)
	assert.Equal(t, depcon.KeyOf[*DbImpl](), dup.RegisteredProvider)
	assert.Equal(t, depcon.KeyOf[*OtherDb](), dup.RejectedProvider)

	assert.False(t, depcon.Has[*OtherDb](c), "rejected provider must not be bound")

	db, err := depcon.Resolve[DbService](c)
	require.NoError(t, err)
	assert.IsType(t, &DbImpl{}, db, "original binding must be intact")
}

func TestRegisterInvalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		desc     string
		register func(*depcon.Container) error
		want     string
	}{
		{
			desc: "value provider",
			register: func(c *depcon.Container) error {
				return depcon.Register[bytes.Buffer, bytes.Buffer](c, depcon.Value(bytes.Buffer{}))
			},
			want: "could not register bytes.Buffer for bytes.Buffer: provider must be a pointer or an interface, got struct",
		},
		{
			desc: "not implemented",
			register: func(c *depcon.Container) error {
				return depcon.Register[*OtherDb, io.Reader](c, depcon.Fields[OtherDb]())
			},
			want: "could not register *depcon_test.OtherDb for io.Reader: *depcon_test.OtherDb is not assignable to io.Reader",
		},
		{
			desc: "nil factory",
			register: func(c *depcon.Container) error {
				return depcon.Register[*DbImpl, DbService](c, nil)
			},
			want: "could not register *depcon_test.DbImpl for depcon_test.DbService: factory must not be nil",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.desc, func(t *testing.T) {
			t.Parallel()

			c := depcon.Empty()
			err := tt.register(c)

			var invalid *depcon.InvalidRegistrationError
			require.ErrorAs(t, err, &invalid)
			assert.EqualError(t, err, tt.want)
			assert.Empty(t, c.Bindings(), "container must be unchanged")
		})
	}
}

func TestSelfBinding(t *testing.T) {
	t.Parallel()

	t.Run("installed on first registration", func(t *testing.T) {
		t.Parallel()

		c := depcon.Empty()
		require.NoError(t, depcon.Register[*DbImpl, DbService](c, depcon.Fields[DbImpl]()))

		assert.True(t, depcon.Has[*DbImpl](c))
		assert.Equal(t, []depcon.Binding{
			{Service: depcon.KeyOf[*DbImpl](), Provider: depcon.KeyOf[*DbImpl]()},
			{Service: depcon.KeyOf[DbService](), Provider: depcon.KeyOf[*DbImpl]()},
		}, c.Bindings())
	})

	t.Run("provider shared between services", func(t *testing.T) {
		t.Parallel()

		var first, second int
		c := depcon.Empty()
		require.NoError(t, depcon.Register[*DbImpl, DbService](c, counting(&first, depcon.Fields[DbImpl]())))
		require.NoError(t, depcon.Register[*DbImpl, Named](c, counting(&second, depcon.Fields[DbImpl]())))
		assert.Len(t, c.Bindings(), 3)

		db, err := depcon.Resolve[DbService](c)
		require.NoError(t, err)
		named, err := depcon.Resolve[Named](c)
		require.NoError(t, err)

		assert.Same(t, db, named)
		assert.Equal(t, 1, first, "first factory builds the provider")
		assert.Equal(t, 0, second, "later factories are ignored")
	})

	t.Run("explicit self registration", func(t *testing.T) {
		t.Parallel()

		c := depcon.Empty()
		require.NoError(t, depcon.Register[*DbImpl, *DbImpl](c, depcon.Fields[DbImpl]()))
		require.NoError(t, depcon.Register[*DbImpl, DbService](c, depcon.Fields[DbImpl]()))
		assert.Len(t, c.Bindings(), 2)
	})

	t.Run("provider type bound elsewhere", func(t *testing.T) {
		t.Parallel()

		c := depcon.Empty()
		require.NoError(t, depcon.Register[*DbImpl, DbService](c, depcon.Fields[DbImpl]()))

		// An interface provider whose own type is already a service keeps
		// that binding.
		require.NoError(t, depcon.Register[DbService, Named](c, func(c *depcon.Container) (DbService, error) {
			return depcon.Resolve[DbService](c)
		}))

		db, err := depcon.Resolve[DbService](c)
		require.NoError(t, err)
		named, err := depcon.Resolve[Named](c)
		require.NoError(t, err)

		assert.IsType(t, &DbImpl{}, db)
		assert.Same(t, db, named)
	})
}

func TestDependencyCycle(t *testing.T) {
	t.Parallel()

	c := depcon.Empty()
	require.NoError(t, depcon.Register[*CycleImplA, CycleA](c, depcon.Fields[CycleImplA]()))
	require.NoError(t, depcon.Register[*CycleImplB, CycleB](c, depcon.Fields[CycleImplB]()))
	require.NoError(t, depcon.Register[*DbImpl, DbService](c, depcon.Fields[DbImpl]()))

	a := depcon.Resolution{Service: depcon.KeyOf[CycleA](), Provider: depcon.KeyOf[*CycleImplA]()}
	b := depcon.Resolution{Service: depcon.KeyOf[CycleB](), Provider: depcon.KeyOf[*CycleImplB]()}

	_, err := depcon.Resolve[CycleA](c)
	var cycle *depcon.DependencyCycleError
	require.ErrorAs(t, err, &cycle)
	assert.Equal(t, depcon.KeyOf[CycleA](), cycle.Service)
	assert.Equal(t, []depcon.Resolution{a, b, a}, cycle.Stack)
	assert.EqualError(t, err,
		"could not resolve depcon_test.CycleA due to dependency cycle: "+
			"*depcon_test.CycleImplA (as depcon_test.CycleA) -> "+
			"*depcon_test.CycleImplB (as depcon_test.CycleB) -> "+
			"*depcon_test.CycleImplA (as depcon_test.CycleA)")

	t.Run("unrelated service still resolves", func(t *testing.T) {
		db, err := depcon.Resolve[DbService](c)
		require.NoError(t, err)
		assert.NotNil(t, db)
	})

	t.Run("retry reproduces the error", func(t *testing.T) {
		_, again := depcon.Resolve[CycleA](c)
		assert.Equal(t, err, again)
	})
}

func TestSelfDependencyCycle(t *testing.T) {
	t.Parallel()

	c := depcon.Empty()
	require.NoError(t, depcon.Register[*Selfish, *Selfish](c, depcon.Fields[Selfish]()))

	_, err := depcon.Resolve[*Selfish](c)
	var cycle *depcon.DependencyCycleError
	require.ErrorAs(t, err, &cycle)

	self := depcon.Resolution{Service: depcon.KeyOf[*Selfish](), Provider: depcon.KeyOf[*Selfish]()}
	assert.Equal(t, []depcon.Resolution{self, self}, cycle.Stack)
}

func TestFactoryError(t *testing.T) {
	t.Parallel()

	sadness := errors.New("great sadness")

	var calls int
	c := depcon.Empty()
	require.NoError(t, depcon.Register[*DbImpl, DbService](c, counting(&calls, func(*depcon.Container) (*DbImpl, error) {
		return nil, sadness
	})))
	require.NoError(t, depcon.Register[*RepoImpl, RepoService](c, depcon.Fields[RepoImpl]()))

	_, err := depcon.Resolve[RepoService](c)
	assert.Equal(t, sadness, err, "errors must propagate unchanged")

	_, err = depcon.Resolve[DbService](c)
	assert.Equal(t, sadness, err)
	assert.Equal(t, 2, calls, "failed constructions are not cached")
}

func TestNestedNoProvider(t *testing.T) {
	t.Parallel()

	c := depcon.Empty()
	require.NoError(t, depcon.Register[*RepoImpl, RepoService](c, depcon.Fields[RepoImpl]()))

	_, err := depcon.Resolve[RepoService](c)
	var noProvider *depcon.NoProviderError
	require.ErrorAs(t, err, &noProvider)
	assert.Equal(t, depcon.KeyOf[DbService](), noProvider.Service, "must name the missing dependency")
}

func TestFactoryReturnsNil(t *testing.T) {
	t.Parallel()

	c := depcon.Empty()
	require.NoError(t, depcon.Register[*DbImpl, DbService](c, depcon.Value[*DbImpl](nil)))

	_, err := depcon.Resolve[DbService](c)
	var internal *depcon.InternalError
	require.ErrorAs(t, err, &internal)
	assert.Contains(t, err.Error(), "factory for *depcon_test.DbImpl returned nil")
}

func TestFactoryPanics(t *testing.T) {
	t.Parallel()

	c := depcon.Empty()
	require.NoError(t, depcon.Register[*DbImpl, DbService](c, func(*depcon.Container) (*DbImpl, error) {
		panic("great sadness")
	}))
	require.NoError(t, depcon.Register[*RepoImpl, RepoService](c, depcon.Fields[RepoImpl]()))

	assert.PanicsWithValue(t, "great sadness", func() {
		_, _ = depcon.Resolve[RepoService](c)
	})

	// A leftover stack entry would turn the retry into a cycle error.
	assert.PanicsWithValue(t, "great sadness", func() {
		_, _ = depcon.Resolve[RepoService](c)
	})
}

func TestRegisterOverwrite(t *testing.T) {
	t.Parallel()

	t.Run("unbound service", func(t *testing.T) {
		t.Parallel()

		c := depcon.Empty()
		require.NoError(t, depcon.RegisterOverwrite[*DbImpl, DbService](c, depcon.Fields[DbImpl]()))

		db, err := depcon.Resolve[DbService](c)
		require.NoError(t, err)
		assert.IsType(t, &DbImpl{}, db)
	})

	t.Run("replaces binding and drops cached view", func(t *testing.T) {
		t.Parallel()

		c := depcon.Empty()
		require.NoError(t, depcon.Register[*DbImpl, DbService](c, depcon.Fields[DbImpl]()))
		require.NoError(t, depcon.Register[*RepoImpl, RepoService](c, depcon.Fields[RepoImpl]()))

		repo, err := depcon.Resolve[RepoService](c)
		require.NoError(t, err)
		old, err := depcon.Resolve[DbService](c)
		require.NoError(t, err)

		require.NoError(t, depcon.RegisterOverwrite[*OtherDb, DbService](c, depcon.Fields[OtherDb]()))

		db, err := depcon.Resolve[DbService](c)
		require.NoError(t, err)
		assert.IsType(t, &OtherDb{}, db, "new binding must take effect")

		impl, err := depcon.Resolve[*DbImpl](c)
		require.NoError(t, err)
		assert.Same(t, old, impl, "constructed providers are kept")

		again, err := depcon.Resolve[RepoService](c)
		require.NoError(t, err)
		assert.Same(t, repo, again)
		assert.Same(t, old, again.DB(), "injected instances keep the old provider")
	})
}

func TestValueFactory(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	c := depcon.Empty()
	require.NoError(t, depcon.Register[*bytes.Buffer, io.Writer](c, depcon.Value(&buf)))

	w, err := depcon.Resolve[io.Writer](c)
	require.NoError(t, err)
	assert.Same(t, &buf, w)
}

func TestMustResolve(t *testing.T) {
	t.Parallel()

	c := depcon.Empty()
	assert.Panics(t, func() { depcon.MustResolve[DbService](c) })

	require.NoError(t, depcon.Register[*DbImpl, DbService](c, depcon.Fields[DbImpl]()))
	assert.NotPanics(t, func() {
		assert.Equal(t, "db", depcon.MustResolve[DbService](c).Name())
	})
}

func TestResolveKey(t *testing.T) {
	t.Parallel()

	c := depcon.Empty()
	require.NoError(t, depcon.Register[*DbImpl, DbService](c, depcon.Fields[DbImpl]()))

	v, err := c.ResolveKey(depcon.KeyOf[DbService]())
	require.NoError(t, err)
	_, ok := v.(DbService)
	assert.True(t, ok)

	_, err = c.ResolveKey(depcon.TypeKey{})
	var noProvider *depcon.NoProviderError
	assert.ErrorAs(t, err, &noProvider)
}

func TestContainerString(t *testing.T) {
	t.Parallel()

	c := depcon.Empty()
	require.NoError(t, depcon.Register[*DbImpl, DbService](c, depcon.Fields[DbImpl]()))
	_, err := depcon.Resolve[DbService](c)
	require.NoError(t, err)

	assert.Equal(t, "{bindings:\n"+
		"*depcon_test.DbImpl -> *depcon_test.DbImpl constructed: true\n"+
		"depcon_test.DbService -> *depcon_test.DbImpl constructed: true\n"+
		"}\n", c.String())
}
