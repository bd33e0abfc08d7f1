/*
Package result implements the result of a computation that may fail.

A Result holds Go's (value, error) pair as a single value, so it can be
passed around and converted to the algebraic types:

	r := result.Try(func() (int, error) { return strconv.Atoi(s) })
	e := result.ToEither(r)   // either.Either[error, int]
	m := result.ToMaybe(r)    // maybe.Maybe[int]
*/
package result

import (
	"fmt"

	"github.com/npillmayer/fplus"
	"github.com/npillmayer/fplus/either"
	"github.com/npillmayer/fplus/maybe"
	"github.com/npillmayer/fplus/shh"
)

// Result is Ok(value) or Err(error).
type Result[T any] interface {
	IsOk() bool
	IsErr() bool
	Get() (T, error)
	Match() Matcher[T]
	String() string
}

type result[T any] struct {
	value T
	err   error
}

// Ok wraps a successful value.
func Ok[T any](x T) Result[T] {
	return result[T]{value: x}
}

// Err wraps an error. err must not be nil.
func Err[T any](err error) Result[T] {
	if err == nil {
		panic(fplus.NilArgument("result.Err", "err"))
	}
	return result[T]{err: err}
}

// Of converts a (value, error) pair. A non-nil err wins over x.
func Of[T any](x T, err error) Result[T] {
	if err != nil {
		return result[T]{err: err}
	}
	return result[T]{value: x}
}

// Try calls f and captures its outcome. A panic raised by one of the
// adapters of package shh is captured as Err (errors.Is still finds the
// original error). Other panics, runtime errors included, propagate.
func Try[T any](f func() (T, error)) (r Result[T]) {
	if f == nil {
		panic(fplus.NilArgument("result.Try", "f"))
	}
	defer func() {
		if p := recover(); p != nil {
			err, ok := p.(*shh.Error)
			if !ok {
				panic(p)
			}
			r = result[T]{err: err}
		}
	}()
	v, err := f()
	return Of(v, err)
}

func (r result[T]) IsOk() bool  { return r.err == nil }
func (r result[T]) IsErr() bool { return r.err != nil }

func (r result[T]) Get() (T, error) {
	return r.value, r.err
}

func (r result[T]) String() string {
	if r.err != nil {
		return fmt.Sprintf("Err(%v)", r.err)
	}
	return fmt.Sprintf("Ok(%v)", r.value)
}

// ToEither converts Ok(v) to Right(v) and Err(e) to Left(e).
func ToEither[T any](r Result[T]) either.Either[error, T] {
	v, err := r.Get()
	if err != nil {
		return either.Left[error, T](err)
	}
	return either.Right[error](v)
}

// FromEither converts Right(v) to Ok(v) and Left(e) to Err(e).
// A Left(nil) is not a valid error and panics.
func FromEither[T any](e either.Either[error, T]) Result[T] {
	return either.Fold(e, Err[T], Ok[T])
}

// ToMaybe converts Ok(v) to maybe.Just(v) and Err to Nothing, dropping the error.
func ToMaybe[T any](r Result[T]) maybe.Maybe[T] {
	v, err := r.Get()
	if err != nil {
		return maybe.Nothing[T]()
	}
	return maybe.Just(v)
}

// --- Matching --------------------------------------------------------------

type Matcher[T any] interface {
	Ok(*T) Matcher[T]
	Err(*error) Matcher[T]
}

type matcher[T any] struct {
	r result[T]
}

func (r result[T]) Match() Matcher[T] {
	return &matcher[T]{r: r}
}

func (rm *matcher[T]) Ok(v *T) Matcher[T] {
	if rm.r.err == nil {
		*v = rm.r.value
		return rm
	}
	return nil
}

func (rm *matcher[T]) Err(err *error) Matcher[T] {
	if rm.r.err != nil {
		*err = rm.r.err
		return rm
	}
	return nil
}
