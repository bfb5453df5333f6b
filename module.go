package spur

import "fmt"

// Module is the mount hook external registration code exposes. A module
// registers its injectables against the app and reports wiring failures.
type Module interface {
	Mount(app *App) error
}

// ModuleFunc adapts a plain function to Module.
//
//	app.Include(spur.ModuleFunc(storage.Mount))
type ModuleFunc func(app *App) error

// Mount implements Module.
func (f ModuleFunc) Mount(app *App) error { return f(app) }

// Named is an optional interface for modules that want a stable name in
// App.Includes and in logs; others are identified by their dynamic type.
type Named interface {
	ModuleName() string
}

func moduleName(mod any) string {
	if n, ok := mod.(Named); ok {
		return n.ModuleName()
	}
	return fmt.Sprintf("%T", mod)
}
