package spur

import "github.com/davrell/spur/injection"

// SessionKey is the registry key under which every session registers
// itself in its own local provider. Factories that want the owning
// session declare an ordinary dependency on it:
//
//	injection.Dep("sess", spur.SessionKey)
//
// There is no injector special case; the session is just another
// registered instance.
const SessionKey = "Session"

// Session is the per-request/per-run facade: it owns a private local
// provider, shadowing every app scope, and an injector that performs the
// actual resolution. One session is one object-graph build; cache-enabled
// factories realize once per session.
type Session struct {
	local     *injection.Provider
	providers []*injection.Provider
	injector  *injection.Injector
	mounted   bool
}

// NewSession creates an unmounted session and registers it in its local
// provider under SessionKey. Resolution requires Mount; apps normally do
// both through App.CreateSession.
func NewSession() *Session {
	s := &Session{local: injection.NewProvider("session")}
	// Fresh provider, fresh key: cannot fail.
	_ = s.local.Register(injection.NewInstance(s), injection.WithKey(SessionKey))
	return s
}

// Mount builds the session's injector over [local, providers...] in that
// priority order. Idempotent only in the sense that remounting replaces
// the injector and drops its cache.
func (s *Session) Mount(providers []*injection.Provider, opts ...injection.InjectorOption) {
	all := make([]*injection.Provider, 0, len(providers)+1)
	all = append(all, s.local)
	all = append(all, providers...)
	s.providers = all
	s.injector = injection.NewInjector(all, opts...)
	s.mounted = true
}

// Mounted reports whether the session can resolve.
func (s *Session) Mounted() bool { return s.mounted }

// Injector exposes the session's injector, e.g. for the generic
// injection.GetAs accessors. Nil before Mount.
func (s *Session) Injector() *injection.Injector { return s.injector }

// Register adds an injectable to the session's local provider, shadowing
// any app-scope registration of the same key. Unlike app registration
// this stays open after mount; local bindings only affect this session.
func (s *Session) Register(item *injection.Injectable, opts ...injection.RegisterOption) error {
	return s.local.Register(item, opts...)
}

// Instance registers an already-built value in the local provider.
func (s *Session) Instance(value any, opts ...injection.RegisterOption) error {
	item, ok := value.(*injection.Injectable)
	if !ok {
		item = injection.NewInstance(value)
	}
	return s.Register(item, opts...)
}

// Get resolves iface through the session's injector.
func (s *Session) Get(iface any, opts ...injection.ResolveOption) (any, error) {
	if !s.mounted {
		return nil, ErrSessionNotMounted
	}
	return s.injector.Get(iface, opts...)
}

// GetList resolves a list-mode binding through the session's injector.
func (s *Session) GetList(iface any, opts ...injection.ResolveOption) ([]any, error) {
	if !s.mounted {
		return nil, ErrSessionNotMounted
	}
	return s.injector.GetList(iface, opts...)
}

// Resolve realizes ctor once, uncached and unregistered, with its
// dependencies resolved against this session's graph.
func (s *Session) Resolve(ctor injection.CtorFunc, deps []injection.Dependency, opts ...injection.ResolveOption) (any, error) {
	if !s.mounted {
		return nil, ErrSessionNotMounted
	}
	return s.injector.Resolve(ctor, deps, opts...)
}
