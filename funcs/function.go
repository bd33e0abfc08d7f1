package funcs

import "github.com/npillmayer/fplus"

func mustFunc(isNil bool, op, arg string) {
	if isNil {
		panic(fplus.NilArgument(op, arg))
	}
}

// Function2 is a function of two arguments.
type Function2[T1, T2, R any] func(T1, T2) R

// Function3 is a function of three arguments.
type Function3[T1, T2, T3, R any] func(T1, T2, T3) R

// Function4 is a function of four arguments.
type Function4[T1, T2, T3, T4, R any] func(T1, T2, T3, T4) R

// Function5 is a function of five arguments.
type Function5[T1, T2, T3, T4, T5, R any] func(T1, T2, T3, T4, T5) R

// Function6 is a function of six arguments.
type Function6[T1, T2, T3, T4, T5, T6, R any] func(T1, T2, T3, T4, T5, T6) R

// Function7 is a function of seven arguments.
type Function7[T1, T2, T3, T4, T5, T6, T7, R any] func(T1, T2, T3, T4, T5, T6, T7) R

// Function8 is a function of eight arguments.
type Function8[T1, T2, T3, T4, T5, T6, T7, T8, R any] func(T1, T2, T3, T4, T5, T6, T7, T8) R

// Function9 is a function of nine arguments.
type Function9[T1, T2, T3, T4, T5, T6, T7, T8, T9, R any] func(T1, T2, T3, T4, T5, T6, T7, T8, T9) R

// Function10 is a function of ten arguments.
type Function10[T1, T2, T3, T4, T5, T6, T7, T8, T9, T10, R any] func(T1, T2, T3, T4, T5, T6, T7, T8, T9, T10) R

func (f Function2[T1, T2, R]) Apply(t1 T1, t2 T2) R {
	return f(t1, t2)
}

// Curried fixes the first argument.
func (f Function2[T1, T2, R]) Curried(t1 T1) func(T2) R {
	return func(t2 T2) R {
		return f(t1, t2)
	}
}

// Tupled returns f as a function of a pair.
func (f Function2[T1, T2, R]) Tupled() func(fplus.Pair[T1, T2]) R {
	return func(p fplus.Pair[T1, T2]) R {
		return f(p.Left, p.Right)
	}
}

// Untupled is the inverse of Function2.Tupled.
func Untupled[T1, T2, R any](f func(fplus.Pair[T1, T2]) R) Function2[T1, T2, R] {
	mustFunc(f == nil, "funcs.Untupled", "f")
	return func(t1 T1, t2 T2) R {
		return f(fplus.P(t1, t2))
	}
}

func (f Function3[T1, T2, T3, R]) Apply(t1 T1, t2 T2, t3 T3) R {
	return f(t1, t2, t3)
}

// Curried fixes the first argument.
func (f Function3[T1, T2, T3, R]) Curried(t1 T1) Function2[T2, T3, R] {
	return func(t2 T2, t3 T3) R {
		return f(t1, t2, t3)
	}
}

func (f Function4[T1, T2, T3, T4, R]) Apply(t1 T1, t2 T2, t3 T3, t4 T4) R {
	return f(t1, t2, t3, t4)
}

// Curried fixes the first argument.
func (f Function4[T1, T2, T3, T4, R]) Curried(t1 T1) Function3[T2, T3, T4, R] {
	return func(t2 T2, t3 T3, t4 T4) R {
		return f(t1, t2, t3, t4)
	}
}

func (f Function5[T1, T2, T3, T4, T5, R]) Apply(t1 T1, t2 T2, t3 T3, t4 T4, t5 T5) R {
	return f(t1, t2, t3, t4, t5)
}

// Curried fixes the first argument.
func (f Function5[T1, T2, T3, T4, T5, R]) Curried(t1 T1) Function4[T2, T3, T4, T5, R] {
	return func(t2 T2, t3 T3, t4 T4, t5 T5) R {
		return f(t1, t2, t3, t4, t5)
	}
}

func (f Function6[T1, T2, T3, T4, T5, T6, R]) Apply(t1 T1, t2 T2, t3 T3, t4 T4, t5 T5, t6 T6) R {
	return f(t1, t2, t3, t4, t5, t6)
}

// Curried fixes the first argument.
func (f Function6[T1, T2, T3, T4, T5, T6, R]) Curried(t1 T1) Function5[T2, T3, T4, T5, T6, R] {
	return func(t2 T2, t3 T3, t4 T4, t5 T5, t6 T6) R {
		return f(t1, t2, t3, t4, t5, t6)
	}
}

func (f Function7[T1, T2, T3, T4, T5, T6, T7, R]) Apply(t1 T1, t2 T2, t3 T3, t4 T4, t5 T5, t6 T6, t7 T7) R {
	return f(t1, t2, t3, t4, t5, t6, t7)
}

// Curried fixes the first argument.
func (f Function7[T1, T2, T3, T4, T5, T6, T7, R]) Curried(t1 T1) Function6[T2, T3, T4, T5, T6, T7, R] {
	return func(t2 T2, t3 T3, t4 T4, t5 T5, t6 T6, t7 T7) R {
		return f(t1, t2, t3, t4, t5, t6, t7)
	}
}

func (f Function8[T1, T2, T3, T4, T5, T6, T7, T8, R]) Apply(t1 T1, t2 T2, t3 T3, t4 T4, t5 T5, t6 T6, t7 T7, t8 T8) R {
	return f(t1, t2, t3, t4, t5, t6, t7, t8)
}

// Curried fixes the first argument.
func (f Function8[T1, T2, T3, T4, T5, T6, T7, T8, R]) Curried(t1 T1) Function7[T2, T3, T4, T5, T6, T7, T8, R] {
	return func(t2 T2, t3 T3, t4 T4, t5 T5, t6 T6, t7 T7, t8 T8) R {
		return f(t1, t2, t3, t4, t5, t6, t7, t8)
	}
}

func (f Function9[T1, T2, T3, T4, T5, T6, T7, T8, T9, R]) Apply(t1 T1, t2 T2, t3 T3, t4 T4, t5 T5, t6 T6, t7 T7, t8 T8, t9 T9) R {
	return f(t1, t2, t3, t4, t5, t6, t7, t8, t9)
}

// Curried fixes the first argument.
func (f Function9[T1, T2, T3, T4, T5, T6, T7, T8, T9, R]) Curried(t1 T1) Function8[T2, T3, T4, T5, T6, T7, T8, T9, R] {
	return func(t2 T2, t3 T3, t4 T4, t5 T5, t6 T6, t7 T7, t8 T8, t9 T9) R {
		return f(t1, t2, t3, t4, t5, t6, t7, t8, t9)
	}
}

func (f Function10[T1, T2, T3, T4, T5, T6, T7, T8, T9, T10, R]) Apply(t1 T1, t2 T2, t3 T3, t4 T4, t5 T5, t6 T6, t7 T7, t8 T8, t9 T9, t10 T10) R {
	return f(t1, t2, t3, t4, t5, t6, t7, t8, t9, t10)
}

// Curried fixes the first argument.
func (f Function10[T1, T2, T3, T4, T5, T6, T7, T8, T9, T10, R]) Curried(t1 T1) Function9[T2, T3, T4, T5, T6, T7, T8, T9, T10, R] {
	return func(t2 T2, t3 T3, t4 T4, t5 T5, t6 T6, t7 T7, t8 T8, t9 T9, t10 T10) R {
		return f(t1, t2, t3, t4, t5, t6, t7, t8, t9, t10)
	}
}

// AndThen2 returns a function which applies f and then after.
func AndThen2[T1, T2, R, V any](f Function2[T1, T2, R], after func(R) V) Function2[T1, T2, V] {
	mustFunc(after == nil, "funcs.AndThen2", "after")
	return func(t1 T1, t2 T2) V {
		return after(f(t1, t2))
	}
}

// AndThen3 returns a function which applies f and then after.
func AndThen3[T1, T2, T3, R, V any](f Function3[T1, T2, T3, R], after func(R) V) Function3[T1, T2, T3, V] {
	mustFunc(after == nil, "funcs.AndThen3", "after")
	return func(t1 T1, t2 T2, t3 T3) V {
		return after(f(t1, t2, t3))
	}
}

// AndThen4 returns a function which applies f and then after.
func AndThen4[T1, T2, T3, T4, R, V any](f Function4[T1, T2, T3, T4, R], after func(R) V) Function4[T1, T2, T3, T4, V] {
	mustFunc(after == nil, "funcs.AndThen4", "after")
	return func(t1 T1, t2 T2, t3 T3, t4 T4) V {
		return after(f(t1, t2, t3, t4))
	}
}

// AndThen5 returns a function which applies f and then after.
func AndThen5[T1, T2, T3, T4, T5, R, V any](f Function5[T1, T2, T3, T4, T5, R], after func(R) V) Function5[T1, T2, T3, T4, T5, V] {
	mustFunc(after == nil, "funcs.AndThen5", "after")
	return func(t1 T1, t2 T2, t3 T3, t4 T4, t5 T5) V {
		return after(f(t1, t2, t3, t4, t5))
	}
}

// AndThen6 returns a function which applies f and then after.
func AndThen6[T1, T2, T3, T4, T5, T6, R, V any](f Function6[T1, T2, T3, T4, T5, T6, R], after func(R) V) Function6[T1, T2, T3, T4, T5, T6, V] {
	mustFunc(after == nil, "funcs.AndThen6", "after")
	return func(t1 T1, t2 T2, t3 T3, t4 T4, t5 T5, t6 T6) V {
		return after(f(t1, t2, t3, t4, t5, t6))
	}
}

// AndThen7 returns a function which applies f and then after.
func AndThen7[T1, T2, T3, T4, T5, T6, T7, R, V any](f Function7[T1, T2, T3, T4, T5, T6, T7, R], after func(R) V) Function7[T1, T2, T3, T4, T5, T6, T7, V] {
	mustFunc(after == nil, "funcs.AndThen7", "after")
	return func(t1 T1, t2 T2, t3 T3, t4 T4, t5 T5, t6 T6, t7 T7) V {
		return after(f(t1, t2, t3, t4, t5, t6, t7))
	}
}

// AndThen8 returns a function which applies f and then after.
func AndThen8[T1, T2, T3, T4, T5, T6, T7, T8, R, V any](f Function8[T1, T2, T3, T4, T5, T6, T7, T8, R], after func(R) V) Function8[T1, T2, T3, T4, T5, T6, T7, T8, V] {
	mustFunc(after == nil, "funcs.AndThen8", "after")
	return func(t1 T1, t2 T2, t3 T3, t4 T4, t5 T5, t6 T6, t7 T7, t8 T8) V {
		return after(f(t1, t2, t3, t4, t5, t6, t7, t8))
	}
}

// AndThen9 returns a function which applies f and then after.
func AndThen9[T1, T2, T3, T4, T5, T6, T7, T8, T9, R, V any](f Function9[T1, T2, T3, T4, T5, T6, T7, T8, T9, R], after func(R) V) Function9[T1, T2, T3, T4, T5, T6, T7, T8, T9, V] {
	mustFunc(after == nil, "funcs.AndThen9", "after")
	return func(t1 T1, t2 T2, t3 T3, t4 T4, t5 T5, t6 T6, t7 T7, t8 T8, t9 T9) V {
		return after(f(t1, t2, t3, t4, t5, t6, t7, t8, t9))
	}
}

// AndThen10 returns a function which applies f and then after.
func AndThen10[T1, T2, T3, T4, T5, T6, T7, T8, T9, T10, R, V any](f Function10[T1, T2, T3, T4, T5, T6, T7, T8, T9, T10, R], after func(R) V) Function10[T1, T2, T3, T4, T5, T6, T7, T8, T9, T10, V] {
	mustFunc(after == nil, "funcs.AndThen10", "after")
	return func(t1 T1, t2 T2, t3 T3, t4 T4, t5 T5, t6 T6, t7 T7, t8 T8, t9 T9, t10 T10) V {
		return after(f(t1, t2, t3, t4, t5, t6, t7, t8, t9, t10))
	}
}
