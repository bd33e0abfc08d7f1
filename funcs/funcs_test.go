package funcs

import (
	"fmt"
	"strconv"
	"strings"
	"testing"

	"github.com/npillmayer/fplus"
	"github.com/stretchr/testify/assert"
)

func TestFunctionCurried(t *testing.T) {
	join := Function4[string, string, string, string, string](func(a, b, c, d string) string {
		return a + b + c + d
	})
	f3 := join.Curried("a")
	f2 := f3.Curried("b")
	f1 := f2.Curried("c")
	if s := f1("d"); s != "abcd" {
		t.Errorf("expected curried join to yield abcd, is %q", s)
	}
	assert.Equal(t, "wxyz", join.Apply("w", "x", "y", "z"))
	assert.Equal(t, "bcde", f3.Apply("c", "d", "e"))
	assert.Equal(t, "abxy", f2.Apply("x", "y"))
}

func TestFunctionAndThen(t *testing.T) {
	add := Function2[int, int, int](func(a, b int) int { return a + b })
	show := AndThen2(add, func(n int) string { return fmt.Sprintf("<%d>", n) })
	assert.Equal(t, "<3>", show(1, 2))
	vol := Function3[int, int, int, int](func(a, b, c int) int { return a * b * c })
	assert.Equal(t, 48, AndThen3(vol, func(n int) int { return n * 2 })(2, 3, 4))
	sum4 := Function4[int, int, int, int, int](func(a, b, c, d int) int { return a + b + c + d })
	assert.Equal(t, "10", AndThen4(sum4, strconv.Itoa)(1, 2, 3, 4))
	assert.Panics(t, func() { AndThen2[int, int, int, int](add, nil) })
}

func TestTupled(t *testing.T) {
	repeat := Function2[string, int, string](strings.Repeat)
	tupled := repeat.Tupled()
	assert.Equal(t, "ababab", tupled(fplus.P("ab", 3)))
	assert.Equal(t, "xx", Untupled(tupled)("x", 2))
}

func TestConsumer(t *testing.T) {
	var log []string
	c := Consumer3[string, int, bool](func(s string, n int, b bool) {
		log = append(log, fmt.Sprintf("%s%d%v", s, n, b))
	})
	c.AndThen(c).Curried("a").Curried(1)(true)
	assert.Equal(t, []string{"a1true", "a1true"}, log)
	var sum int
	c4 := Consumer4[int, int, int, int](func(a, b, c, d int) { sum += a + b + c + d })
	c4.Curried(1).Accept(2, 3, 4)
	c4.AndThen(c4).Accept(1, 1, 1, 1)
	assert.Equal(t, 18, sum)
	c2 := Consumer2[int, int](func(a, b int) { sum = a * b })
	c2.Curried(6)(7)
	assert.Equal(t, 42, sum)
	c2.AndThen(func(a, b int) { sum += a }).Accept(2, 3)
	assert.Equal(t, 8, sum)
}

func TestPredicate(t *testing.T) {
	allPositive := Predicate4[int, int, int, int](func(a, b, c, d int) bool {
		return a > 0 && b > 0 && c > 0 && d > 0
	})
	allGreater5 := Predicate4[int, int, int, int](func(a, b, c, d int) bool {
		return a > 5 && b > 5 && c > 5 && d > 5
	})
	assert.True(t, allPositive.Curried(1).Test(1, 1, 1))
	assert.False(t, allPositive.Curried(-1).Test(1, 1, 1))
	assert.True(t, allPositive.And(allGreater5).Test(10, 10, 10, 10))
	assert.False(t, allPositive.And(allGreater5).Test(1, 10, 10, 10))
	assert.True(t, allPositive.Or(allGreater5).Test(1, 1, 1, 1))
	assert.True(t, allGreater5.Negate().Test(1, 1, 1, 1))

	var tested bool
	other := Predicate2[int, int](func(int, int) bool { tested = true; return true })
	less := Predicate2[int, int](func(a, b int) bool { return a < b })
	less.And(other).Test(2, 1)
	assert.False(t, tested, "And must short-circuit")
	less.Or(other).Test(1, 2)
	assert.False(t, tested, "Or must short-circuit")
	assert.True(t, less.Negate().Curried(2)(1))
	between := Predicate3[int, int, int](func(lo, x, hi int) bool { return lo <= x && x <= hi })
	assert.True(t, between.Curried(0).Test(5, 10))
	assert.True(t, between.Negate().Or(between).Test(0, 20, 10))
	assert.False(t, between.And(between.Negate()).Test(0, 5, 10))
	assert.Panics(t, func() { less.And(nil) })
}

func TestHighArities(t *testing.T) {
	sum10 := Function10[int, int, int, int, int, int, int, int, int, int, int](
		func(a, b, c, d, e, f, g, h, i, j int) int { return a + b + c + d + e + f + g + h + i + j })
	f5 := sum10.Curried(1).Curried(2).Curried(3).Curried(4).Curried(5)
	t.Logf("f5 is %T", f5)
	assert.Equal(t, 55, f5.Apply(6, 7, 8, 9, 10))
	f1 := f5.Curried(6).Curried(7).Curried(8).Curried(9)
	assert.Equal(t, 55, f1(10))
	assert.Equal(t, "10", AndThen10(sum10, strconv.Itoa)(1, 1, 1, 1, 1, 1, 1, 1, 1, 1))
	assert.Panics(t, func() {
		AndThen9[int, int, int, int, int, int, int, int, int, int, string](sum10.Curried(0), nil)
	})

	var seen []int
	c9 := Consumer9[int, int, int, int, int, int, int, int, int](
		func(a, b, c, d, e, f, g, h, i int) { seen = append(seen, a+b+c+d+e+f+g+h+i) })
	c9.AndThen(c9).Curried(1).Accept(1, 1, 1, 1, 1, 1, 1, 1)
	assert.Equal(t, []int{9, 9}, seen)

	ascending := Predicate6[int, int, int, int, int, int](
		func(a, b, c, d, e, f int) bool { return a < b && b < c && c < d && d < e && e < f })
	assert.True(t, ascending.Test(1, 2, 3, 4, 5, 6))
	assert.True(t, ascending.Negate().Curried(6).Test(5, 4, 3, 2, 1))
	assert.False(t, ascending.And(ascending.Negate()).Test(1, 2, 3, 4, 5, 6))
	assert.True(t, ascending.Or(ascending.Negate()).Curried(9).Curried(8).Test(1, 2, 3, 4))
}
