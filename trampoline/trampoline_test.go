package trampoline

import (
	"testing"

	"github.com/npillmayer/fplus"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sum(n, acc int64) TailStep[int64] {
	if n == 0 {
		return Done(acc)
	}
	return Pending[int64](func() TailStep[int64] {
		return sum(n-1, acc+n)
	})
}

func isEven(n int) TailStep[bool] {
	if n == 0 {
		return Done(true)
	}
	return Call(func() TailStep[bool] { return isOdd(n - 1) })
}

func isOdd(n int) TailStep[bool] {
	if n == 0 {
		return Done(false)
	}
	return Call(func() TailStep[bool] { return isEven(n - 1) })
}

func TestDoneResult(t *testing.T) {
	d := Done("x")
	if !d.IsDone() {
		t.Fatal("expected Done to be done")
	}
	v, err := d.Result()
	if err != nil || v != "x" {
		t.Errorf("expected Done(x).Result() = x, is %q, %v", v, err)
	}
	if d.Step() != d {
		t.Error("expected Done.Step() to return itself")
	}
}

func TestPendingResultNotReady(t *testing.T) {
	p := Pending[int](func() TailStep[int] { return Done(1) })
	if p.IsDone() {
		t.Fatal("expected pending step not to be done")
	}
	v, err := p.Result()
	if !errors.Is(err, ErrNotReady) {
		t.Errorf("expected ErrNotReady, have %v", err)
	}
	if v != 0 {
		t.Errorf("expected zero value along with error, have %d", v)
	}
}

func TestSumMillion(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fp.trampoline")
	defer teardown()
	//
	total, err := Evaluate(sum(1000000, 0))
	require.NoError(t, err)
	assert.Equal(t, int64(500000500000), total)
}

func TestMutualRecursion(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fp.trampoline")
	defer teardown()
	//
	if !MustEvaluate(isEven(1000000)) {
		t.Error("expected 1000000 to be even")
	}
	if !MustEvaluate(isOdd(999999)) {
		t.Error("expected 999999 to be odd")
	}
}

func TestEvaluateDoneImmediately(t *testing.T) {
	v, err := Evaluate(Done(42))
	require.NoError(t, err)
	assert.Equal(t, 42, v)
}

func TestEvaluateNilStep(t *testing.T) {
	start := Pending[int](func() TailStep[int] { return nil })
	_, err := Evaluate[int](start)
	if !errors.Is(err, ErrNilStep) {
		t.Errorf("expected ErrNilStep, have %v", err)
	}
	assert.Panics(t, func() { MustEvaluate[int](start) })
}

func TestNilArguments(t *testing.T) {
	expectNilArgument := func(name string, f func()) {
		defer func() {
			r := recover()
			err, ok := r.(error)
			if !ok || !errors.Is(err, fplus.ErrNilArgument) {
				t.Errorf("%s: expected panic with ErrNilArgument, got %v", name, r)
			}
		}()
		f()
	}
	expectNilArgument("Evaluate(nil)", func() { Evaluate[int](nil) })
	expectNilArgument("Call(nil)", func() { Call[int](nil) })
	expectNilArgument("Evaluate(Pending(nil))", func() { Evaluate[int](Pending[int](nil)) })
	var thunk func() TailStep[int]
	inner := Pending[int](func() TailStep[int] { return Pending[int](thunk) })
	expectNilArgument("nil thunk in chain", func() { Evaluate[int](inner) })
}

// countdown is a TailStep which inherits “not done” from Pending.
type countdown struct {
	Pending[int]
	n, steps int
}

func (c countdown) Step() TailStep[int] {
	if c.n == 1 {
		return Done(c.steps + 1)
	}
	return countdown{n: c.n - 1, steps: c.steps + 1}
}

func TestCustomStep(t *testing.T) {
	c := countdown{n: 300000}
	_, err := c.Result()
	assert.ErrorIs(t, err, ErrNotReady)
	steps, err := Evaluate[int](c)
	require.NoError(t, err)
	assert.Equal(t, 300000, steps)
}
