package injection

import (
	"fmt"
	"reflect"

	"github.com/samber/mo"
)

// CtorFunc is the untyped constructor shape a factory wraps: it receives
// the fully assembled argument list in declaration order.
type CtorFunc func(args []any) (any, error)

// ResolveFunc resolves a dependency key into a realized value. Realize
// calls it for every parameter that is neither explicitly supplied nor
// declared explicit-only.
type ResolveFunc func(key string) (any, error)

// Dependency names one constructor parameter and the registry key it is
// resolved from. A dependency without a key (Arg) is never auto-injected;
// it must be satisfied by an explicit positional or keyword value at
// resolution time.
type Dependency struct {
	Param string
	Key   mo.Option[string]
}

// Dep declares a parameter resolved from an explicit key.
func Dep(param, key string) Dependency {
	return Dependency{Param: param, Key: mo.Some(key)}
}

// DepOf declares a parameter resolved from the key derived from T.
//
//	injection.DepOf[*Repo]("repo")  // resolved from key "Repo"
func DepOf[T any](param string) Dependency {
	return Dep(param, KeyFor[T]())
}

// Arg declares an explicit-only parameter: it carries no key and must be
// supplied positionally or by name on every resolution.
func Arg(param string) Dependency {
	return Dependency{Param: param, Key: mo.None[string]()}
}

type kind uint8

const (
	kindInstance kind = iota
	kindFactory
)

// Injectable describes how to obtain a value: either an already-built
// instance, or a factory plus its declared dependency signature and cache
// policy. The two variants share one struct so cache and dependency
// bookkeeping stay uniform; Realize dispatches on the tag.
//
// Injectables are identified by pointer: the injector's cache and cycle
// guard key on *Injectable.
type Injectable struct {
	kind  kind
	value any
	ctor  CtorFunc
	deps  []Dependency
	cache bool
	key   string
	label string
}

// NewInstance wraps an already-built value. It declares zero dependencies
// and always realizes to the same wrapped reference. The default
// registration key is derived from the value's type.
func NewInstance(value any) *Injectable {
	return &Injectable{
		kind:  kindInstance,
		value: value,
		key:   KeyOf(value),
		label: fmt.Sprintf("instance %T", value),
	}
}

// FactoryOption configures a factory injectable.
type FactoryOption func(*Injectable)

// NoCache marks the factory transient: it is reconstructed on every
// request and never populates the injector cache.
func NoCache() FactoryOption {
	return func(i *Injectable) { i.cache = false }
}

// WithLabel overrides the human-readable label used in descriptions and
// error messages.
func WithLabel(label string) FactoryOption {
	return func(i *Injectable) { i.label = label }
}

// Factory wraps a typed constructor together with its declared dependency
// signature. Results are cached per injector unless NoCache is given. The
// result type T supplies the default registration key, so a factory can be
// registered without WithKey or WithIface:
//
//	injection.Factory(injection.Ctor1(NewRepo), injection.DepOf[*DB]("db"))
func Factory[T any](ctor func(args []any) (T, error), deps []Dependency, opts ...FactoryOption) *Injectable {
	inj := &Injectable{
		kind:  kindFactory,
		ctor:  func(args []any) (any, error) { return ctor(args) },
		deps:  deps,
		cache: true,
		key:   KeyFor[T](),
		label: "factory " + reflect.TypeFor[T]().String(),
	}
	for _, opt := range opts {
		opt(inj)
	}
	return inj
}

// NewFactory is the untyped form of Factory. It carries no default
// registration key, so registration must supply WithKey or WithIface.
func NewFactory(ctor CtorFunc, deps []Dependency, opts ...FactoryOption) *Injectable {
	inj := &Injectable{
		kind:  kindFactory,
		ctor:  ctor,
		deps:  deps,
		cache: true,
		label: "factory",
	}
	for _, opt := range opts {
		opt(inj)
	}
	return inj
}

// Dependencies returns the declared signature in declaration order.
// Instances return nil.
func (i *Injectable) Dependencies() []Dependency { return i.deps }

// Cached reports whether realized values are memoized per injector.
// Instances are never cached; they need no construction in the first
// place.
func (i *Injectable) Cached() bool { return i.kind == kindFactory && i.cache }

// Label returns the human-readable description used by Describe and error
// messages.
func (i *Injectable) Label() string { return i.label }

// DefaultKey returns the registration key used when neither WithKey nor
// WithIface is supplied. Empty for untyped factories.
func (i *Injectable) DefaultKey() string { return i.key }

// Realize produces the described value.
//
// For instances the arguments are ignored and the wrapped value is
// returned unchanged. For factories the argument list is assembled in
// declaration order: positional args bind the earliest parameters, kwargs
// bind by parameter name, and every remaining keyed parameter goes through
// resolve. A nested resolution failure wraps as DependencyInjectionError
// naming the parameter; a remaining keyless parameter fails with
// UnresolvedParamError; surplus positional values fail with
// ExtraArgsError.
func (i *Injectable) Realize(args []any, kwargs map[string]any, resolve ResolveFunc) (any, error) {
	if i.kind == kindInstance {
		return i.value, nil
	}
	if len(args) > len(i.deps) {
		return nil, ExtraArgsError{Label: i.label, Want: len(i.deps), Got: len(args)}
	}

	assembled := make([]any, 0, len(i.deps))
	for n, dep := range i.deps {
		switch {
		case n < len(args):
			assembled = append(assembled, args[n])
		default:
			if v, ok := kwargs[dep.Param]; ok {
				assembled = append(assembled, v)
				continue
			}
			key, keyed := dep.Key.Get()
			if !keyed {
				return nil, UnresolvedParamError{Param: dep.Param}
			}
			v, err := resolve(key)
			if err != nil {
				return nil, DependencyInjectionError{Param: dep.Param, Key: key, Cause: err}
			}
			assembled = append(assembled, v)
		}
	}
	return i.ctor(assembled)
}
