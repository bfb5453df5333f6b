package injection_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davrell/spur/injection"
)

type store struct{}

type fetcher interface {
	Fetch() string
}

func storeFactory() *injection.Injectable {
	return injection.Factory(func(args []any) (*store, error) {
		return &store{}, nil
	}, nil)
}

//
// -----------------------------------------------------------------------------
// Effective key
// -----------------------------------------------------------------------------

// TestProviderRegister_KeyPrecedence verifies the effective-key rule:
// explicit WithKey wins, then WithIface, then the injectable's own type.
func TestProviderRegister_KeyPrecedence(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		opts []injection.RegisterOption
		want string
	}{
		{"explicit key wins over iface", []injection.RegisterOption{
			injection.WithKey("custom"),
			injection.WithIface((*fetcher)(nil)),
		}, "custom"},
		{"iface derives key", []injection.RegisterOption{
			injection.WithIface((*fetcher)(nil)),
		}, "fetcher"},
		{"default from result type", nil, "store"},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			p := injection.NewProvider("test")
			require.NoError(t, p.Register(storeFactory(), tc.opts...))
			assert.True(t, p.Contains(tc.want))

			_, err := p.Lookup(tc.want)
			assert.NoError(t, err)
		})
	}
}

// TestProviderRegister_NoKey verifies an untyped factory with neither key
// nor iface is rejected with ErrNoKey.
func TestProviderRegister_NoKey(t *testing.T) {
	t.Parallel()

	p := injection.NewProvider("test")
	item := injection.NewFactory(func(args []any) (any, error) { return 1, nil }, nil)

	err := p.Register(item)
	require.ErrorIs(t, err, injection.ErrNoKey)

	require.NoError(t, p.Register(item, injection.WithKey("anything")))
}

//
// -----------------------------------------------------------------------------
// Force / list semantics
// -----------------------------------------------------------------------------

// TestProviderRegister_ForceAndList verifies the provider delegates
// force/aslist semantics to its registry.
func TestProviderRegister_ForceAndList(t *testing.T) {
	t.Parallel()

	p := injection.NewProvider("test")
	first := storeFactory()
	second := storeFactory()

	require.NoError(t, p.Register(first))

	err := p.Register(second)
	var exists injection.ItemExistsError
	require.True(t, errors.As(err, &exists))
	assert.Equal(t, "store", exists.Key)

	require.NoError(t, p.Register(second, injection.Force()))
	got, err := p.Lookup("store")
	require.NoError(t, err)
	assert.Same(t, second, got)

	// List mode under a distinct key.
	require.NoError(t, p.Register(first, injection.WithKey("stores"), injection.AsList()))
	require.NoError(t, p.Register(second, injection.WithKey("stores"), injection.AsList()))
	items, err := p.LookupList("stores")
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Same(t, first, items[0])
	assert.Same(t, second, items[1])
}

// TestProviderLookup_Missing verifies lookups on absent keys fail with
// ItemNotFoundError.
func TestProviderLookup_Missing(t *testing.T) {
	t.Parallel()

	p := injection.NewProvider("test")

	_, err := p.Lookup("missing")
	var notFound injection.ItemNotFoundError
	require.True(t, errors.As(err, &notFound))

	_, err = p.LookupList("missing")
	require.True(t, errors.As(err, &notFound))
}

//
// -----------------------------------------------------------------------------
// Describe
// -----------------------------------------------------------------------------

// TestProviderDescribe verifies descriptions carry the key, item labels,
// and the declared dependency pairs with explicit-only parameters omitted.
func TestProviderDescribe(t *testing.T) {
	t.Parallel()

	p := injection.NewProvider("test")

	require.NoError(t, p.Register(injection.NewInstance(&store{})))
	require.NoError(t, p.Register(injection.Factory(func(args []any) (*fetcherImpl, error) {
		return &fetcherImpl{}, nil
	}, []injection.Dependency{
		injection.Arg("v"),
		injection.DepOf[*store]("store"),
	}), injection.WithIface((*fetcher)(nil))))

	descs := p.Describe()
	require.Len(t, descs, 2)

	// Keys sorted: "fetcher" < "store".
	assert.Equal(t, "fetcher", descs[0].Key)
	assert.False(t, descs[0].List)
	require.Len(t, descs[0].Items, 1)
	require.Len(t, descs[0].Items[0].Deps, 1, "explicit-only parameter must be omitted")
	assert.Equal(t, "store", descs[0].Items[0].Deps[0].Param)
	assert.Equal(t, "store", descs[0].Items[0].Deps[0].Key)

	assert.Equal(t, "store", descs[1].Key)
	assert.Contains(t, descs[1].Items[0].Label, "instance")
	assert.Empty(t, descs[1].Items[0].Deps)
}

// TestProviderDescribe_List verifies list-mode keys describe every item in
// registration order.
func TestProviderDescribe_List(t *testing.T) {
	t.Parallel()

	p := injection.NewProvider("test")
	require.NoError(t, p.Register(injection.Factory(func(args []any) (*store, error) {
		return &store{}, nil
	}, nil, injection.WithLabel("first")), injection.WithKey("stores"), injection.AsList()))
	require.NoError(t, p.Register(injection.Factory(func(args []any) (*store, error) {
		return &store{}, nil
	}, nil, injection.WithLabel("second")), injection.WithKey("stores"), injection.AsList()))

	descs := p.Describe()
	require.Len(t, descs, 1)
	assert.True(t, descs[0].List)
	require.Len(t, descs[0].Items, 2)
	assert.Equal(t, "second", descs[0].Items[1].Label)
}

type fetcherImpl struct{}

func (f *fetcherImpl) Fetch() string { return "ok" }
