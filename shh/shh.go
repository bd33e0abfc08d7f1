package shh

import (
	"fmt"

	"github.com/npillmayer/fplus"
	"github.com/pkg/errors"
)

// Error is the panic value raised by a silenced function. It carries the
// function's error together with the stack trace of the panic site.
type Error struct {
	cause error
	stack error
}

func (e *Error) Error() string {
	return e.cause.Error()
}

// Cause returns the error of the silenced function.
func (e *Error) Cause() error {
	return e.cause
}

func (e *Error) Unwrap() error {
	return e.cause
}

// Format prints the stack trace of the panic site with %+v.
func (e *Error) Format(s fmt.State, verb rune) {
	if f, ok := e.stack.(fmt.Formatter); ok {
		f.Format(s, verb)
		return
	}
	fmt.Fprint(s, e.cause.Error())
}

func mustFunc(isNil bool, op string) {
	if isNil {
		panic(fplus.NilArgument(op, "f"))
	}
}

func raise(err error) {
	if err != nil {
		panic(&Error{cause: err, stack: errors.WithStack(err)})
	}
}

// Function silences a function with one argument.
func Function[T, R any](f func(T) (R, error)) func(T) R {
	mustFunc(f == nil, "shh.Function")
	return func(t T) R {
		r, err := f(t)
		raise(err)
		return r
	}
}

// BiFunction silences a function with two arguments.
func BiFunction[T, U, R any](f func(T, U) (R, error)) func(T, U) R {
	mustFunc(f == nil, "shh.BiFunction")
	return func(t T, u U) R {
		r, err := f(t, u)
		raise(err)
		return r
	}
}

// Supplier silences a function without arguments.
func Supplier[T any](f func() (T, error)) func() T {
	mustFunc(f == nil, "shh.Supplier")
	return func() T {
		r, err := f()
		raise(err)
		return r
	}
}

// Runner silences an action.
func Runner(f func() error) func() {
	mustFunc(f == nil, "shh.Runner")
	return func() {
		raise(f())
	}
}

// Consumer silences a function consuming a value.
func Consumer[T any](f func(T) error) func(T) {
	mustFunc(f == nil, "shh.Consumer")
	return func(t T) {
		raise(f(t))
	}
}

// Predicate silences a predicate.
func Predicate[T any](f func(T) (bool, error)) func(T) bool {
	mustFunc(f == nil, "shh.Predicate")
	return func(t T) bool {
		ok, err := f(t)
		raise(err)
		return ok
	}
}

// BiPredicate silences a predicate with two arguments.
func BiPredicate[T, U any](f func(T, U) (bool, error)) func(T, U) bool {
	mustFunc(f == nil, "shh.BiPredicate")
	return func(t T, u U) bool {
		ok, err := f(t, u)
		raise(err)
		return ok
	}
}
