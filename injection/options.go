package injection

// RegisterOptions collects the knobs of a registration call. The zero
// value means: derive the key from the injectable, single mode, no
// override, root scope.
type RegisterOptions struct {
	// Key is the explicit registration key; it wins over Iface.
	Key string

	// Iface is a type token the key is derived from when Key is empty.
	Iface any

	// Force overwrites an existing single-mode registration.
	Force bool

	// AsList registers under a list-mode key.
	AsList bool

	// Scope names the target scope. The Provider ignores it; the app
	// facade uses it to pick the provider before delegating here.
	Scope string
}

// RegisterOption mutates RegisterOptions.
type RegisterOption func(*RegisterOptions)

// NewRegisterOptions applies opts over the zero value. Exported for
// facades that need to peek at the options (e.g. Scope) before delegating
// to a Provider.
func NewRegisterOptions(opts ...RegisterOption) RegisterOptions {
	var o RegisterOptions
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithKey sets the explicit registration key.
func WithKey(key string) RegisterOption {
	return func(o *RegisterOptions) { o.Key = key }
}

// WithIface derives the registration key from a type token, e.g.
// WithIface((*Notifier)(nil)).
func WithIface(iface any) RegisterOption {
	return func(o *RegisterOptions) { o.Iface = iface }
}

// Force allows overwriting an existing single-mode registration.
func Force() RegisterOption {
	return func(o *RegisterOptions) { o.Force = true }
}

// AsList registers under a list-mode key, appending to earlier list-mode
// registrations of the same key.
func AsList() RegisterOption {
	return func(o *RegisterOptions) { o.AsList = true }
}

// InScope targets a named scope. Only meaningful through the app facade.
func InScope(scope string) RegisterOption {
	return func(o *RegisterOptions) { o.Scope = scope }
}

type resolveOptions struct {
	key    string
	args   []any
	kwargs map[string]any
}

// ResolveOption mutates a Get/GetList/Resolve call.
type ResolveOption func(*resolveOptions)

func newResolveOptions(opts ...ResolveOption) resolveOptions {
	var o resolveOptions
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Named looks up an explicit key instead of the one derived from the
// requested interface.
func Named(key string) ResolveOption {
	return func(o *resolveOptions) { o.key = key }
}

// WithArgs supplies explicit positional values bound to the earliest
// declared parameters before auto-injection kicks in.
func WithArgs(args ...any) ResolveOption {
	return func(o *resolveOptions) { o.args = args }
}

// WithKwargs supplies explicit values bound by parameter name.
func WithKwargs(kwargs map[string]any) ResolveOption {
	return func(o *resolveOptions) { o.kwargs = kwargs }
}
