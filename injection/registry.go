package injection

import "sort"

// Registry is a string-keyed collection where each key lives in one of two
// modes, fixed at its first registration:
//
//   - single mode: exactly one value; re-registering requires force
//   - list mode: an append-ordered sequence, duplicates permitted
//
// A Registry has no dependency knowledge; it is the storage primitive
// underneath Provider and the scope table of the app facade.
type Registry[V any] struct {
	items map[string]*entry[V]
}

type entry[V any] struct {
	aslist bool
	value  V
	values []V
}

// NewRegistry creates an empty registry.
func NewRegistry[V any]() *Registry[V] {
	return &Registry[V]{items: make(map[string]*entry[V])}
}

// Register stores val under key.
//
// An unused key is created in the mode implied by aslist. On an existing
// single-mode key, Register fails with ItemExistsError unless force is set,
// in which case it overwrites. On an existing list-mode key it appends.
// Requesting the opposite mode of an existing key fails with
// ModeMismatchError.
func (r *Registry[V]) Register(key string, val V, aslist, force bool) error {
	e, ok := r.items[key]
	if !ok {
		e = &entry[V]{aslist: aslist}
		if aslist {
			e.values = []V{val}
		} else {
			e.value = val
		}
		r.items[key] = e
		return nil
	}
	if e.aslist != aslist {
		return ModeMismatchError{Key: key, AsList: aslist}
	}
	if aslist {
		e.values = append(e.values, val)
		return nil
	}
	if !force {
		return ItemExistsError{Key: key}
	}
	e.value = val
	return nil
}

// Get returns the value stored at a single-mode key. It fails with
// ItemNotFoundError for absent keys and ModeMismatchError for list-mode
// keys.
func (r *Registry[V]) Get(key string) (V, error) {
	var zero V
	e, ok := r.items[key]
	if !ok {
		return zero, ItemNotFoundError{Key: key}
	}
	if e.aslist {
		return zero, ModeMismatchError{Key: key, AsList: false}
	}
	return e.value, nil
}

// GetList returns the sequence stored at a list-mode key, in registration
// order. The slice is a copy; appending to or mutating it leaves the
// registry untouched. It fails with ItemNotFoundError for absent keys and
// ModeMismatchError for single-mode keys.
func (r *Registry[V]) GetList(key string) ([]V, error) {
	e, ok := r.items[key]
	if !ok {
		return nil, ItemNotFoundError{Key: key}
	}
	if !e.aslist {
		return nil, ModeMismatchError{Key: key, AsList: true}
	}
	return append([]V(nil), e.values...), nil
}

// Contains reports whether key is registered, in either mode.
func (r *Registry[V]) Contains(key string) bool {
	_, ok := r.items[key]
	return ok
}

// Len returns the number of registered keys.
func (r *Registry[V]) Len() int { return len(r.items) }

// RegistryEntry is one key of a Snapshot. Single-mode keys carry exactly
// one value.
type RegistryEntry[V any] struct {
	Key    string
	List   bool
	Values []V
}

// Snapshot dumps every key with its values in registration order. Keys are
// sorted so the output is stable; iteration order across keys carries no
// meaning otherwise. Intended for introspection, not resolution.
func (r *Registry[V]) Snapshot() []RegistryEntry[V] {
	keys := make([]string, 0, len(r.items))
	for k := range r.items {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]RegistryEntry[V], 0, len(keys))
	for _, k := range keys {
		e := r.items[k]
		re := RegistryEntry[V]{Key: k, List: e.aslist}
		if e.aslist {
			re.Values = append([]V(nil), e.values...)
		} else {
			re.Values = []V{e.value}
		}
		out = append(out, re)
	}
	return out
}
