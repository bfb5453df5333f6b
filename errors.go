package spur

import (
	"errors"
	"strconv"
)

var (
	// ErrMounted is returned when registration or inclusion is attempted
	// after App.Mount.
	ErrMounted = errors.New("spur: app is already mounted, registration is closed")

	// ErrNotMounted is returned when a session is requested before
	// App.Mount.
	ErrNotMounted = errors.New("spur: app is not mounted, call Mount first")

	// ErrSessionNotMounted is returned when a session resolves before its
	// injector exists.
	ErrSessionNotMounted = errors.New("spur: session is not mounted, call Mount first")
)

// IncludeModuleError is returned by App.Include when the included value
// does not expose the Module mount hook.
type IncludeModuleError struct {
	// Module is the dynamic type of the rejected value.
	Module string
}

// Error implements the error interface.
func (e IncludeModuleError) Error() string {
	return "spur: " + strconv.Quote(e.Module) +
		" does not implement the Module mount hook and cannot be included"
}
