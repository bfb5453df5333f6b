package injection

import "reflect"

// KeyOf derives the registry key for an interface token.
//
// Accepted tokens: a reflect.Type, a typed nil pointer such as
// (*Storage)(nil), or any plain value. Pointers are unwrapped so *T and T
// share one key. Named types map to their declared name, builtins to their
// lowercase kind name ("int", "string", ...), and unnamed composites fall
// back to the full type spelling. The mapping is deterministic and total.
//
//	KeyOf((*Storage)(nil))  // "Storage"
//	KeyOf(42)               // "int"
//	KeyOf(reflect.TypeFor[Notifier]())  // "Notifier"
func KeyOf(iface any) string {
	if iface == nil {
		return ""
	}
	if t, ok := iface.(reflect.Type); ok {
		return keyOfType(t)
	}
	return keyOfType(reflect.TypeOf(iface))
}

// KeyFor is the generic form of KeyOf. It works for interface types
// directly, without a typed-nil token:
//
//	KeyFor[Notifier]()  // "Notifier"
//	KeyFor[*Repo]()     // "Repo"
func KeyFor[T any]() string {
	return keyOfType(reflect.TypeFor[T]())
}

func keyOfType(t reflect.Type) string {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if name := t.Name(); name != "" {
		return name
	}
	return t.String()
}
