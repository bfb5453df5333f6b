package injection

import "reflect"

// TraceEvent reports one completed resolution. Consumed by facade-level
// logging; the core itself stays log-free.
type TraceEvent struct {
	Key    string
	Label  string
	Cached bool
}

// TraceFunc receives a TraceEvent after every successful realization.
type TraceFunc func(ev TraceEvent)

// InjectorOption configures an Injector at construction time.
type InjectorOption func(*Injector)

// WithTrace installs a resolve-event hook.
func WithTrace(fn TraceFunc) InjectorOption {
	return func(in *Injector) { in.trace = fn }
}

// Injector resolves requested interfaces into concrete values against an
// ordered provider list. Providers earlier in the list shadow later ones:
// the first provider whose registry contains the effective key wins.
//
// One Injector is one resolution session. Cache-enabled factories are
// memoized for the injector's lifetime, so repeated requests return the
// identical value; transient factories are reconstructed every time.
// Resolution is a synchronous recursive call tree with no internal
// locking; callers needing parallel sessions build independent injectors
// over the same (by then read-only) providers.
type Injector struct {
	providers []*Provider
	cache     map[*Injectable]any
	resolving map[*Injectable]struct{}
	trace     TraceFunc
}

// NewInjector builds an injector over providers, in priority order (most
// specific first).
func NewInjector(providers []*Provider, opts ...InjectorOption) *Injector {
	in := &Injector{
		providers: providers,
		cache:     make(map[*Injectable]any),
		resolving: make(map[*Injectable]struct{}),
	}
	for _, opt := range opts {
		opt(in)
	}
	return in
}

// Get resolves iface into a concrete value.
//
// The effective key is Named if given, else derived from iface. The first
// provider containing the key wins. A miss across all providers fails with
// InjectionError; a list-mode hit fails with ModeMismatchError (use
// GetList). Explicit WithArgs/WithKwargs values bind the earliest declared
// parameters; everything else is resolved recursively through this same
// injector.
func (in *Injector) Get(iface any, opts ...ResolveOption) (any, error) {
	o := newResolveOptions(opts...)
	key := o.key
	if key == "" {
		key = KeyOf(iface)
	}

	for _, p := range in.providers {
		if !p.Contains(key) {
			continue
		}
		item, err := p.Lookup(key)
		if err != nil {
			// Key present but in list mode: surface the mismatch rather
			// than scanning further providers, which would make the
			// answer depend on shadowing.
			return nil, err
		}
		return in.realize(item, key, o.args, o.kwargs)
	}
	return nil, InjectionError{Iface: labelOf(iface), Key: key}
}

// GetList resolves a list-mode key into the ordered sequence of realized
// values, one per registered injectable, each independently cached by
// factory identity.
func (in *Injector) GetList(iface any, opts ...ResolveOption) ([]any, error) {
	o := newResolveOptions(opts...)
	key := o.key
	if key == "" {
		key = KeyOf(iface)
	}

	for _, p := range in.providers {
		if !p.Contains(key) {
			continue
		}
		items, err := p.LookupList(key)
		if err != nil {
			return nil, err
		}
		values := make([]any, 0, len(items))
		for _, item := range items {
			v, err := in.realize(item, key, o.args, o.kwargs)
			if err != nil {
				return nil, err
			}
			values = append(values, v)
		}
		return values, nil
	}
	return nil, InjectionError{Iface: labelOf(iface), Key: key}
}

// Resolve realizes ctor immediately as a one-shot transient factory: it is
// never registered in any provider and never touches the cache. Its
// declared dependencies are resolved against the current graph like any
// other factory's.
func (in *Injector) Resolve(ctor CtorFunc, deps []Dependency, opts ...ResolveOption) (any, error) {
	o := newResolveOptions(opts...)
	item := NewFactory(ctor, deps, NoCache(), WithLabel("ad-hoc factory"))
	return in.realize(item, "", o.args, o.kwargs)
}

func (in *Injector) realize(item *Injectable, key string, args []any, kwargs map[string]any) (any, error) {
	if item.Cached() {
		if v, ok := in.cache[item]; ok {
			in.fire(key, item, true)
			return v, nil
		}
	}

	if _, busy := in.resolving[item]; busy {
		return nil, CyclicDependencyError{Label: item.Label()}
	}
	in.resolving[item] = struct{}{}
	v, err := item.Realize(args, kwargs, func(depKey string) (any, error) {
		return in.Get(nil, Named(depKey))
	})
	delete(in.resolving, item)
	if err != nil {
		return nil, err
	}

	if item.Cached() {
		in.cache[item] = v
	}
	in.fire(key, item, false)
	return v, nil
}

func (in *Injector) fire(key string, item *Injectable, cached bool) {
	if in.trace == nil {
		return
	}
	in.trace(TraceEvent{Key: key, Label: item.Label(), Cached: cached})
}

func labelOf(iface any) string {
	if iface == nil {
		return ""
	}
	if t, ok := iface.(reflect.Type); ok {
		return t.String()
	}
	return reflect.TypeOf(iface).String()
}

// typeName names v's dynamic type for error messages. An untyped factory
// may realize to a nil interface, for which reflect.TypeOf returns nil.
func typeName(v any) string {
	if v == nil {
		return "<nil>"
	}
	return reflect.TypeOf(v).String()
}

// GetAs resolves the key derived from T (or Named) and returns the value
// typed. It fails with ResolvedTypeError when the realized value is not a
// T.
//
//	repo, err := injection.GetAs[*Repo](in)
func GetAs[T any](in *Injector, opts ...ResolveOption) (T, error) {
	var zero T
	v, err := in.Get(reflect.TypeFor[T](), opts...)
	if err != nil {
		return zero, err
	}
	typed, ok := v.(T)
	if !ok {
		return zero, ResolvedTypeError{
			Key:  KeyFor[T](),
			Want: reflect.TypeFor[T]().String(),
			Got:  typeName(v),
		}
	}
	return typed, nil
}

// GetListAs resolves a list-mode key derived from T (or Named) and types
// every element.
func GetListAs[T any](in *Injector, opts ...ResolveOption) ([]T, error) {
	values, err := in.GetList(reflect.TypeFor[T](), opts...)
	if err != nil {
		return nil, err
	}
	typed := make([]T, 0, len(values))
	for _, v := range values {
		tv, ok := v.(T)
		if !ok {
			return nil, ResolvedTypeError{
				Key:  KeyFor[T](),
				Want: reflect.TypeFor[T]().String(),
				Got:  typeName(v),
			}
		}
		typed = append(typed, tv)
	}
	return typed, nil
}

// MustGetAs is GetAs or panic. Useful in composition roots where a missing
// binding is fatal.
func MustGetAs[T any](in *Injector, opts ...ResolveOption) T {
	v, err := GetAs[T](in, opts...)
	if err != nil {
		panic(err)
	}
	return v
}
