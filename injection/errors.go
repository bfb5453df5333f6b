package injection

import (
	"errors"
	"strconv"
)

var (
	// ErrNoKey is returned when a registration supplies neither an explicit
	// key nor an interface to derive one from, and the injectable itself
	// carries no default key (an untyped NewFactory).
	ErrNoKey = errors.New("injection: cannot derive a registration key")
)

// ItemExistsError is returned when a single-mode key is re-registered
// without Force.
type ItemExistsError struct{ Key string }

// Error implements the error interface.
func (e ItemExistsError) Error() string {
	// Example: injection: an item is already registered under key "Storage"
	return "injection: an item is already registered under key " +
		strconv.Quote(e.Key) + " (use Force to override)"
}

// ItemNotFoundError is returned by plain registry lookups on absent keys.
// At the injector boundary it surfaces as InjectionError instead.
type ItemNotFoundError struct{ Key string }

// Error implements the error interface.
func (e ItemNotFoundError) Error() string {
	return "injection: no item found at key " + strconv.Quote(e.Key)
}

// ModeMismatchError is returned when a single-value operation hits a
// list-mode key or a list operation hits a single-mode key, both on
// registration (flipping AsList on an existing key) and on lookup.
type ModeMismatchError struct {
	Key string

	// AsList is the mode the caller asked for.
	AsList bool
}

// Error implements the error interface.
func (e ModeMismatchError) Error() string {
	if e.AsList {
		return "injection: key " + strconv.Quote(e.Key) + " holds a single item, not a list"
	}
	return "injection: key " + strconv.Quote(e.Key) + " holds a list, use the list operations"
}

// InjectionError is returned when no provider holds the requested key.
type InjectionError struct {
	Iface string
	Key   string
}

// Error implements the error interface.
func (e InjectionError) Error() string {
	msg := "injection: failed to inject " + strconv.Quote(e.Key)
	if e.Iface != "" && e.Iface != e.Key {
		msg += " (requested as " + e.Iface + ")"
	}
	return msg
}

// DependencyInjectionError is returned when resolution failed while
// realizing a dependency of the thing originally requested. Param and Key
// identify the failing constructor parameter; Cause carries the nested
// failure.
type DependencyInjectionError struct {
	Param string
	Key   string
	Cause error
}

// Error implements the error interface.
func (e DependencyInjectionError) Error() string {
	return "injection: failed to inject dependency " + strconv.Quote(e.Param) +
		" (" + e.Key + "): " + e.Cause.Error()
}

// Unwrap exposes the nested failure to errors.Is / errors.As.
func (e DependencyInjectionError) Unwrap() error { return e.Cause }

// UnresolvedParamError is returned when a constructor parameter declares no
// key (Arg) and no explicit value was supplied at resolution time. Always a
// registration or call-site mistake, never retried.
type UnresolvedParamError struct{ Param string }

// Error implements the error interface.
func (e UnresolvedParamError) Error() string {
	return "injection: parameter " + strconv.Quote(e.Param) +
		" declares no interface and no explicit value was supplied"
}

// CyclicDependencyError is returned when a factory is requested while it is
// already being realized on the same injector call stack.
type CyclicDependencyError struct{ Label string }

// Error implements the error interface.
func (e CyclicDependencyError) Error() string {
	return "injection: cyclic dependency detected while realizing " + e.Label
}

// ExtraArgsError is returned by Realize when more positional values are
// supplied than the factory declares parameters.
type ExtraArgsError struct {
	Label string
	Want  int
	Got   int
}

// Error implements the error interface.
func (e ExtraArgsError) Error() string {
	return "injection: " + e.Label + " takes " + strconv.Itoa(e.Want) +
		" arguments, got " + strconv.Itoa(e.Got) + " positional values"
}

// ArgTypeError is returned by the CtorN adapters when an explicitly
// supplied argument does not have the declared parameter type.
type ArgTypeError struct {
	Index int
	Want  string
	Got   string
}

// Error implements the error interface.
func (e ArgTypeError) Error() string {
	return "injection: argument " + strconv.Itoa(e.Index) +
		" has wrong type: want " + e.Want + ", got " + e.Got
}

// ResolvedTypeError is returned by the generic accessors when a key
// resolved successfully but the realized value is not of the requested
// type.
type ResolvedTypeError struct {
	Key  string
	Want string
	Got  string
}

// Error implements the error interface.
func (e ResolvedTypeError) Error() string {
	return "injection: key " + strconv.Quote(e.Key) +
		" resolved to " + e.Got + ", not " + e.Want
}
