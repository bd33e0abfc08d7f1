/*
Package fplus is a small collection of functional-programming primitives for Go.

The root package holds the combinators every other package leans on. The
interesting parts live in sub-packages:

	trampoline   stack-safe recursion by iterating tail steps
	maybe        Maybe[A] = Nothing | Just(A)
	either       Either[L, R] = Left(L) | Right(R)
	result       Go's (value, error) pair as a value
	funcs        curried N-ary functions, consumers and predicates
	shh          adapters for functions returning an error

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package fplus

// Identity returns its argument.
func Identity[T any](a T) T {
	return a
}

// Unit returns unit for any input => the zero value for T.
func Unit[T any](_ T) T {
	var a T
	return a
}

// Const returns a function that produces a.
func Const[T any](a T) func() T {
	return func() T {
		return a
	}
}

// Compose returns h = f . g
func Compose[A, B, C any](g func(a A) B, f func(b B) C) func(A) C {
	if g == nil || f == nil {
		panic(NilArgument("fplus.Compose", "g/f"))
	}
	return func(a A) C {
		return f(g(a))
	}
}
