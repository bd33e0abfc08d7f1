package shh

import (
	"github.com/npillmayer/fplus"
	"github.com/pkg/errors"
)

// cause returns the error a panic value carries, one wrapping level removed,
// or nil if p is not an error.
func cause(p any) error {
	err, ok := p.(error)
	if !ok {
		return nil
	}
	if e, ok := err.(*Error); ok {
		return e.Cause()
	}
	if c := errors.Unwrap(err); c != nil {
		return c
	}
	return err
}

// GetOrRethrowCause calls supplier. If supplier panics with an error whose
// cause satisfies rethrowable, the cause is returned as an error. Every other
// panic is re-raised unchanged.
func GetOrRethrowCause[T any](rethrowable func(error) bool, supplier func() T) (v T, err error) {
	if rethrowable == nil || supplier == nil {
		panic(fplus.NilArgument("shh.GetOrRethrowCause", "rethrowable/supplier"))
	}
	defer func() {
		if p := recover(); p != nil {
			c := cause(p)
			if c == nil || !rethrowable(c) {
				panic(p)
			}
			tracer().Debugf("rethrowing cause %v", c)
			var zero T
			v, err = zero, c
		}
	}()
	return supplier(), nil
}

// RunOrRethrowCause is GetOrRethrowCause for an action.
func RunOrRethrowCause(rethrowable func(error) bool, runner func()) error {
	if runner == nil {
		panic(fplus.NilArgument("shh.RunOrRethrowCause", "runner"))
	}
	_, err := GetOrRethrowCause(rethrowable, func() struct{} {
		runner()
		return struct{}{}
	})
	return err
}

// GetOrRethrowCauseAs is GetOrRethrowCause matching causes of type E.
func GetOrRethrowCauseAs[E error, T any](supplier func() T) (T, error) {
	return GetOrRethrowCause(func(c error) bool {
		var target E
		return errors.As(c, &target)
	}, supplier)
}

// RunOrRethrowCauseAs is RunOrRethrowCause matching causes of type E.
func RunOrRethrowCauseAs[E error](runner func()) error {
	return RunOrRethrowCause(func(c error) bool {
		var target E
		return errors.As(c, &target)
	}, runner)
}
