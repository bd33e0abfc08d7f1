package fplus

import "github.com/pkg/errors"

// ErrNilArgument is the cause of every panic raised because a required
// function, predicate or supplier was nil.
var ErrNilArgument = errors.New("function argument must not be nil")

// NilArgument returns an error stating that argument arg of operation op was nil.
// Operations panic with it before doing any other work.
func NilArgument(op, arg string) error {
	return errors.Wrapf(ErrNilArgument, "%s: %s", op, arg)
}
