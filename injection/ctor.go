package injection

import "reflect"

// The CtorN adapters bridge ordinary typed constructors to the
// assembled-argument shape Factory expects, one adapter per arity. The
// argument count must match the declared dependency signature; each
// argument is checked against the parameter type and mismatches fail with
// ArgTypeError instead of panicking.

// Ctor0 adapts a niladic constructor.
func Ctor0[T any](fn func() (T, error)) func([]any) (T, error) {
	return func(_ []any) (T, error) {
		return fn()
	}
}

// Ctor1 adapts a one-parameter constructor.
func Ctor1[A, T any](fn func(A) (T, error)) func([]any) (T, error) {
	return func(args []any) (T, error) {
		a, err := argAs[A](args, 0)
		if err != nil {
			var zero T
			return zero, err
		}
		return fn(a)
	}
}

// Ctor2 adapts a two-parameter constructor.
func Ctor2[A, B, T any](fn func(A, B) (T, error)) func([]any) (T, error) {
	return func(args []any) (T, error) {
		var zero T
		a, err := argAs[A](args, 0)
		if err != nil {
			return zero, err
		}
		b, err := argAs[B](args, 1)
		if err != nil {
			return zero, err
		}
		return fn(a, b)
	}
}

// Ctor3 adapts a three-parameter constructor.
func Ctor3[A, B, C, T any](fn func(A, B, C) (T, error)) func([]any) (T, error) {
	return func(args []any) (T, error) {
		var zero T
		a, err := argAs[A](args, 0)
		if err != nil {
			return zero, err
		}
		b, err := argAs[B](args, 1)
		if err != nil {
			return zero, err
		}
		c, err := argAs[C](args, 2)
		if err != nil {
			return zero, err
		}
		return fn(a, b, c)
	}
}

// Ctor4 adapts a four-parameter constructor.
func Ctor4[A, B, C, D, T any](fn func(A, B, C, D) (T, error)) func([]any) (T, error) {
	return func(args []any) (T, error) {
		var zero T
		a, err := argAs[A](args, 0)
		if err != nil {
			return zero, err
		}
		b, err := argAs[B](args, 1)
		if err != nil {
			return zero, err
		}
		c, err := argAs[C](args, 2)
		if err != nil {
			return zero, err
		}
		d, err := argAs[D](args, 3)
		if err != nil {
			return zero, err
		}
		return fn(a, b, c, d)
	}
}

func argAs[A any](args []any, n int) (A, error) {
	var zero A
	if n >= len(args) {
		// Realize assembles exactly len(deps) values, so this only fires
		// when the declared signature is shorter than the constructor.
		return zero, ArgTypeError{Index: n, Want: reflect.TypeFor[A]().String(), Got: "nothing"}
	}
	if args[n] == nil {
		return zero, nil
	}
	a, ok := args[n].(A)
	if !ok {
		return zero, ArgTypeError{
			Index: n,
			Want:  reflect.TypeFor[A]().String(),
			Got:   reflect.TypeOf(args[n]).String(),
		}
	}
	return a, nil
}
