package injection

import "github.com/samber/lo"

// Provider is a named collection of Injectables keyed by derived or
// explicit string keys. The name identifies a scope; the app facade
// decides which providers participate in a given session.
//
// Providers are mutable during the registration phase only. They are
// expected to be read-only by the time an Injector is built over them;
// that hand-off is enforced by the facade, not here.
type Provider struct {
	name  string
	items *Registry[*Injectable]
}

// NewProvider creates an empty provider for the named scope.
func NewProvider(name string) *Provider {
	return &Provider{name: name, items: NewRegistry[*Injectable]()}
}

// Name returns the scope name.
func (p *Provider) Name() string { return p.name }

// Register stores item under its effective key: WithKey wins, else the key
// derived from WithIface, else the injectable's own default key. It fails
// with ErrNoKey when no key can be determined, and otherwise follows the
// registry's force/aslist semantics.
func (p *Provider) Register(item *Injectable, opts ...RegisterOption) error {
	o := NewRegisterOptions(opts...)
	key := effectiveKey(item.DefaultKey(), o)
	if key == "" {
		return ErrNoKey
	}
	return p.items.Register(key, item, o.AsList, o.Force)
}

func effectiveKey(fallback string, o RegisterOptions) string {
	switch {
	case o.Key != "":
		return o.Key
	case o.Iface != nil:
		return KeyOf(o.Iface)
	default:
		return fallback
	}
}

// Lookup returns the single injectable registered at key.
func (p *Provider) Lookup(key string) (*Injectable, error) {
	return p.items.Get(key)
}

// LookupList returns the ordered injectables registered at a list-mode
// key.
func (p *Provider) LookupList(key string) ([]*Injectable, error) {
	return p.items.GetList(key)
}

// Contains reports whether key is registered, in either mode.
func (p *Provider) Contains(key string) bool {
	return p.items.Contains(key)
}

// Len returns the number of registered keys.
func (p *Provider) Len() int { return p.items.Len() }

// Description describes one registered key for introspection and
// debugging. It plays no part in resolution.
type Description struct {
	Key   string
	List  bool
	Items []ItemDescription
}

// ItemDescription describes one injectable under a key.
type ItemDescription struct {
	Label string
	Deps  []DepDescription
}

// DepDescription is one declared dependency: the parameter name and the
// key it resolves from. Explicit-only parameters are omitted.
type DepDescription struct {
	Param string
	Key   string
}

// Describe produces a description of every registered key, keys sorted,
// items in registration order.
func (p *Provider) Describe() []Description {
	return lo.Map(p.items.Snapshot(), func(e RegistryEntry[*Injectable], _ int) Description {
		return Description{
			Key:   e.Key,
			List:  e.List,
			Items: lo.Map(e.Values, func(item *Injectable, _ int) ItemDescription { return describeItem(item) }),
		}
	})
}

func describeItem(item *Injectable) ItemDescription {
	return ItemDescription{
		Label: item.Label(),
		Deps: lo.FilterMap(item.Dependencies(), func(d Dependency, _ int) (DepDescription, bool) {
			key, keyed := d.Key.Get()
			return DepDescription{Param: d.Param, Key: key}, keyed
		}),
	}
}
