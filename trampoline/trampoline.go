package trampoline

import (
	"github.com/npillmayer/fplus"
	"github.com/pkg/errors"
)

// ErrNotReady is returned by Result on a step which is not terminal.
var ErrNotReady = errors.New("trampoline: step does not have a result yet")

// ErrNilStep is returned by Evaluate if a step produced no successor.
var ErrNilStep = errors.New("trampoline: step produced nil")

// TailStep is one step of a trampolined computation.
//
// Step is called only while IsDone reports false. Result is valid only
// once IsDone reports true; before that it returns ErrNotReady.
type TailStep[T any] interface {
	Step() TailStep[T]
	IsDone() bool
	Result() (T, error)
}

// --- Pending ---------------------------------------------------------------

// Pending is a step which is not done yet. Calling it produces the next step.
//
// Custom TailStep types may embed Pending to inherit “not done” as default.
type Pending[T any] func() TailStep[T]

// Call wraps thunk as a pending step.
func Call[T any](thunk func() TailStep[T]) TailStep[T] {
	if thunk == nil {
		panic(fplus.NilArgument("trampoline.Call", "thunk"))
	}
	return Pending[T](thunk)
}

// Step invokes the thunk.
func (p Pending[T]) Step() TailStep[T] {
	if p == nil {
		panic(fplus.NilArgument("Pending.Step", "thunk"))
	}
	return p()
}

// IsDone is always false for a pending step.
func (p Pending[T]) IsDone() bool {
	return false
}

// Result always fails with ErrNotReady.
func (p Pending[T]) Result() (T, error) {
	var zero T
	return zero, errors.WithStack(ErrNotReady)
}

// --- Done ------------------------------------------------------------------

type done[T any] struct {
	value T
}

// Done returns a terminal step carrying v.
func Done[T any](v T) TailStep[T] {
	return done[T]{value: v}
}

func (d done[T]) Step() TailStep[T] {
	return d
}

func (d done[T]) IsDone() bool {
	return true
}

func (d done[T]) Result() (T, error) {
	return d.value, nil
}

// --- Evaluation ------------------------------------------------------------

// Evaluate steps through a chain of TailSteps, starting with start, until a
// terminal step is reached, and returns its result.
// Each step adds a constant number of stack frames only.
func Evaluate[T any](start TailStep[T]) (T, error) {
	if p, ok := start.(Pending[T]); start == nil || ok && p == nil {
		panic(fplus.NilArgument("trampoline.Evaluate", "start"))
	}
	var n int64
	current := start
	for !current.IsDone() {
		current = current.Step()
		n++
		if current == nil {
			var zero T
			return zero, errors.Wrapf(ErrNilStep, "after %d steps", n)
		}
	}
	tracer().Debugf("trampoline finished after %d steps", n)
	return current.Result()
}

// MustEvaluate is like Evaluate, but panics if evaluation fails.
func MustEvaluate[T any](start TailStep[T]) T {
	v, err := Evaluate(start)
	if err != nil {
		panic(err)
	}
	return v
}
