package spur

import (
	"github.com/rs/zerolog"
	"github.com/samber/lo"

	"github.com/davrell/spur/injection"
)

// RootScope is the scope every session always resolves against, last in
// priority order.
const RootScope = "root"

// App aggregates providers by named scope and exposes registration sugar.
// Scopes decide which providers participate in a given session; scope
// selection is facade policy, resolution itself never sees scope names.
//
// An App goes through two phases: a registration phase (Register,
// Instance, Include), closed by Mount, and a serving phase in which
// sessions are created over the now read-only providers.
type App struct {
	providers *injection.Registry[*injection.Provider]
	includes  []string
	mounted   bool
	log       zerolog.Logger
}

// AppOption configures an App at construction time.
type AppOption func(*App)

// WithLogger installs a zerolog logger. Registration and inclusion log at
// debug level, mount at info, per-resolution events at trace. The default
// is zerolog.Nop().
func WithLogger(log zerolog.Logger) AppOption {
	return func(a *App) { a.log = log }
}

// New creates an unmounted App with an empty root scope.
func New(opts ...AppOption) *App {
	a := &App{
		providers: injection.NewRegistry[*injection.Provider](),
		log:       zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Register adds an injectable to the scope named by InScope (root when
// absent). It fails with ErrMounted once the app is mounted; key, force
// and list semantics are the provider's.
func (a *App) Register(item *injection.Injectable, opts ...injection.RegisterOption) error {
	if a.mounted {
		return ErrMounted
	}
	o := injection.NewRegisterOptions(opts...)
	scope := o.Scope
	if scope == "" {
		scope = RootScope
	}
	p := a.scopeProvider(scope)
	if err := p.Register(item, opts...); err != nil {
		return err
	}
	a.log.Debug().
		Str("scope", scope).
		Str("item", item.Label()).
		Bool("aslist", o.AsList).
		Msg("registered injectable")
	return nil
}

// Instance registers an already-built value. Values that are themselves
// *injection.Injectable are registered as-is.
func (a *App) Instance(value any, opts ...injection.RegisterOption) error {
	item, ok := value.(*injection.Injectable)
	if !ok {
		item = injection.NewInstance(value)
	}
	return a.Register(item, opts...)
}

// Include invokes external registration code. mod must implement Module
// (use ModuleFunc for plain functions); anything else fails with
// IncludeModuleError. Inclusion is part of the registration phase and is
// rejected after Mount.
func (a *App) Include(mod any) error {
	if a.mounted {
		return ErrMounted
	}
	m, ok := mod.(Module)
	if !ok {
		return IncludeModuleError{Module: moduleName(mod)}
	}
	if err := m.Mount(a); err != nil {
		return err
	}
	a.includes = append(a.includes, moduleName(mod))
	a.log.Debug().Str("module", moduleName(mod)).Msg("included module")
	return nil
}

// Includes returns the names of successfully included modules, in
// inclusion order.
func (a *App) Includes() []string {
	return append([]string(nil), a.includes...)
}

// Mount closes the registration phase. Idempotent.
func (a *App) Mount() {
	if a.mounted {
		return
	}
	a.mounted = true
	a.log.Info().
		Int("scopes", a.providers.Len()).
		Int("includes", len(a.includes)).
		Msg("app mounted")
}

// Mounted reports whether Mount has been called.
func (a *App) Mounted() bool { return a.mounted }

// CreateSession builds a session resolving against, in priority order: the
// session's local provider, the requested scopes in argument order, and
// the root scope. It fails with ErrNotMounted before Mount.
func (a *App) CreateSession(scopes ...string) (*Session, error) {
	if !a.mounted {
		return nil, ErrNotMounted
	}

	providers := make([]*injection.Provider, 0, len(scopes)+1)
	for _, scope := range lo.Uniq(scopes) {
		if scope == RootScope {
			continue
		}
		providers = append(providers, a.scopeProvider(scope))
	}
	providers = append(providers, a.scopeProvider(RootScope))

	s := NewSession()
	s.Mount(providers, injection.WithTrace(func(ev injection.TraceEvent) {
		a.log.Trace().
			Str("key", ev.Key).
			Str("item", ev.Label).
			Bool("cached", ev.Cached).
			Msg("resolved")
	}))
	a.log.Debug().Strs("scopes", scopes).Msg("session created")
	return s, nil
}

// scopeProvider returns the provider for scope, creating it on first use.
func (a *App) scopeProvider(scope string) *injection.Provider {
	if p, err := a.providers.Get(scope); err == nil {
		return p
	}
	p := injection.NewProvider(scope)
	// A fresh key in a fresh mode cannot fail.
	_ = a.providers.Register(scope, p, false, false)
	return p
}
