package maybe_test

import (
	"errors"
	"strconv"
	"testing"

	"github.com/majewsky/gg/option"
	"github.com/npillmayer/fplus"
	. "github.com/npillmayer/fplus/maybe"
	"github.com/stretchr/testify/assert"
)

func TestMaybeSimple(t *testing.T) {
	x := Just(7) // infers type
	y := Nothing[int]()

	var v int
	switch m := x.Match(); m {
	case m.Just(&v):
		t.Logf("Just(%d)", v)
	case m.Nothing():
		t.Logf("Nothing")
	}
	if v != 7 {
		t.Errorf("expected v to be 7, is %#v", v)
	}

	var w int
	switch m := y.Match(); m {
	case m.Just(&w):
		t.Logf("Just(%d)", w)
	case m.Nothing():
		t.Logf("Nothing")
	}
	if w != 0 {
		t.Errorf("expected w to be 0, is %#v", w)
	}
}

func TestMatchUncomparable(t *testing.T) {
	x := Just([]int{1, 2, 3})
	var v []int
	switch m := x.Match(); m {
	case m.Just(&v):
	case m.Nothing():
		t.Error("expected Just([1 2 3]) not to match Nothing")
	}
	assert.Equal(t, []int{1, 2, 3}, v)
}

func TestJustCollapsesNil(t *testing.T) {
	var p *int
	var s []string
	var e error
	if Just(p).IsJust() || Just(s).IsJust() || Just(e).IsJust() {
		t.Error("expected Just(nil) to be Nothing")
	}
	if !Just(0).IsJust() || !Just("").IsJust() {
		t.Error("expected zero values of non-nilable types to be Just")
	}
}

func TestNothingIsSingleton(t *testing.T) {
	if Nothing[int]() != Nothing[int]() {
		t.Error("expected Nothing[int] == Nothing[int]")
	}
	if Nothing[string]() != Nothing[string]() {
		t.Error("expected Nothing[string] == Nothing[string]")
	}
	if !Nothing[[]int]().Equal(Nothing[[]int]()) {
		t.Error("expected Nothing[[]int] to equal Nothing[[]int]")
	}
	var p *int
	if Just(p) != Nothing[*int]() {
		t.Error("expected Just(nil) to be the Nothing instance")
	}
	assert.Equal(t, uint64(0), Nothing[float64]().Hash())
}

func TestMaybeMap(t *testing.T) {
	x := Just(7)
	xx := x.Map(func(n int) int {
		return n * 2
	})
	if !xx.Equal(Just(14)) {
		t.Logf("x * 2 = %v", xx)
		t.Error("expected Just(7).Map(…) to return 14, didn't")
	}
	s := Map(Just(10), strconv.Itoa)
	if !s.Equal(Just("10")) {
		t.Logf("s = %v", s)
		t.Error("expected Map(Just 10, Itoa) to return \"10\", didn't")
	}
	y := Map(Nothing[int](), strconv.Itoa)
	if !y.IsNothing() {
		t.Error("expected Map(Nothing, …) to return Nothing, didn't")
	}
	assert.True(t, Just(999).Map(func(i int) int { return i + 111 }).Equal(Just(1110)))
}

func TestMapToNil(t *testing.T) {
	toNil := func(int) *int { return nil }
	if !Map(Just(1), toNil).Equal(Nothing[*int]()) {
		t.Error("expected mapping to nil to yield Nothing")
	}
	var called bool
	Map(Nothing[int](), func(int) *int { called = true; return nil })
	if called {
		t.Error("expected Map on Nothing not to call f")
	}
}

func TestFlatMap(t *testing.T) {
	gt0 := func(n int) Maybe[bool] {
		if n > 0 {
			return Just(true)
		}
		return Nothing[bool]()
	}
	assert.True(t, FlatMap(Just(7), gt0).Equal(Just(true)))
	assert.True(t, FlatMap(Just(-7), gt0).IsNothing())
	assert.True(t, FlatMap(Nothing[int](), gt0).IsNothing())
}

func TestAp(t *testing.T) {
	double := func() Maybe[func(int) string] {
		return Just(func(n int) string { return strconv.Itoa(2 * n) })
	}
	assert.True(t, Ap(Just(21), double).Equal(Just("42")))
	var forced bool
	r := Ap(Nothing[int](), func() Maybe[func(int) string] {
		forced = true
		return double()
	})
	if forced || !r.IsNothing() {
		t.Error("expected Ap on Nothing to return Nothing without forcing the supplier")
	}
	noFunc := func() Maybe[func(int) string] { return Nothing[func(int) string]() }
	assert.True(t, Ap(Just(1), noFunc).IsNothing())
}

func TestFilter(t *testing.T) {
	always := func(int) bool { return true }
	never := func(int) bool { return false }
	assert.True(t, Nothing[int]().Filter(always).Equal(Nothing[int]()))
	assert.True(t, Just(999).Filter(never).Equal(Nothing[int]()))
	assert.True(t, Just(999).Filter(always).Equal(Just(999)))
}

func TestFold(t *testing.T) {
	show := func(i int) string { return strconv.Itoa(i) }
	assert.Equal(t, "There is nothing", Fold(Nothing[int](), fplus.Const("There is nothing"), show))
	assert.Equal(t, "11", Fold(Just(10), fplus.Const("Nothing"), func(i int) string { return show(i + 1) }))
}

func TestForEach(t *testing.T) {
	var calls, sum int
	add := func(i int) { calls++; sum += i }
	Nothing[int]().ForEach(add)
	Just(5).ForEach(add)
	if calls != 1 || sum != 5 {
		t.Errorf("expected ForEach to be called once with 5, was called %d times, sum %d", calls, sum)
	}
}

func TestOrElse(t *testing.T) {
	var forced bool
	alt := func() Maybe[int] { forced = true; return Just(2) }
	assert.True(t, Just(1).OrElse(alt).Equal(Just(1)))
	assert.False(t, forced, "alternative must not be forced on Just")
	assert.True(t, Nothing[int]().OrElse(alt).Equal(Just(2)))
	assert.True(t, forced)
	assert.True(t, Nothing[int]().OrElse(Nothing[int]).IsNothing())
	r := Nothing[int]().OrElse(alt).Map(func(i int) int { return i * 10 })
	assert.True(t, r.Equal(Just(20)))
}

func TestGetOrElse(t *testing.T) {
	x := Just(7)
	if xx := x.GetOrElse(fplus.Const(100)); xx != 7 {
		t.Logf("x = %d", xx)
		t.Error("expected Just(7) to have value 7, isn't")
	}
	y := Nothing[int]()
	if yy := y.GetOrElse(fplus.Const(100)); yy != 100 {
		t.Logf("y = %d", yy)
		t.Error("expected Nothing to default to 100, isn't")
	}
}

func TestOptional(t *testing.T) {
	assert.Equal(t, option.Some(3), Just(3).ToOptional())
	assert.Equal(t, option.None[int](), Nothing[int]().ToOptional())
	assert.True(t, Just(3).ToOptional().IsSomeAnd(func(n int) bool { return n == 3 }))
	assert.True(t, Nothing[int]().ToOptional().IsNone())
	assert.True(t, FromOptional(option.Some("a")).Equal(Just("a")))
	assert.True(t, FromOptional(option.None[string]()).IsNothing())
	var p *int
	assert.True(t, FromOptional(option.Some(p)).IsNothing())
	for _, v := range []string{"", "x", "hello"} {
		if FromOptional(Just(v).ToOptional()).Equal(Just(v)) == false {
			t.Errorf("expected round trip through Option to preserve Just(%q)", v)
		}
		if w, ok := FromOptional(option.Some(v)).ToOptional().Unpack(); !ok || w != v {
			t.Errorf("expected round trip through Maybe to preserve Some(%q)", v)
		}
	}
}

func TestEquality(t *testing.T) {
	assert.True(t, Just([]int{1, 2}).Equal(Just([]int{1, 2})))
	assert.False(t, Just([]int{1, 2}).Equal(Just([]int{2, 1})))
	assert.False(t, Just(1).Equal(Nothing[int]()))
	assert.False(t, Nothing[int]().Equal(Just(1)))
	assert.True(t, Just(Just(1)).Equal(Just(Just(1))))
	assert.Equal(t, Just("abc").Hash(), Just("abc").Hash())
	assert.Equal(t, Just(Just(1)).Hash(), Just(1).Hash())
	assert.Equal(t, Just(Nothing[int]()).Hash(), uint64(0))
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
	expectNilArgument("Map", func() { Map[int, int](Just(1), nil) })
	expectNilArgument("Map on Nothing", func() { Map[int, int](Nothing[int](), nil) })
	expectNilArgument("FlatMap", func() { FlatMap[int, int](Just(1), nil) })
	expectNilArgument("Ap", func() { Ap[int, int](Nothing[int](), nil) })
	expectNilArgument("Fold", func() { Fold[int, int](Just(1), nil, fplus.Identity[int]) })
	expectNilArgument("Filter", func() { Nothing[int]().Filter(nil) })
	expectNilArgument("OrElse", func() { Just(1).OrElse(nil) })
	expectNilArgument("GetOrElse", func() { Just(1).GetOrElse(nil) })
	expectNilArgument("ForEach", func() { Nothing[int]().ForEach(nil) })
	expectNilArgument("Map method", func() { Just(1).Map(nil) })
}
