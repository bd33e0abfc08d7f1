package funcs

// Predicate2 tests two values.
type Predicate2[T1, T2 any] func(T1, T2) bool

// Predicate3 tests three values.
type Predicate3[T1, T2, T3 any] func(T1, T2, T3) bool

// Predicate4 tests four values.
type Predicate4[T1, T2, T3, T4 any] func(T1, T2, T3, T4) bool

// Predicate5 tests five values.
type Predicate5[T1, T2, T3, T4, T5 any] func(T1, T2, T3, T4, T5) bool

// Predicate6 tests six values.
type Predicate6[T1, T2, T3, T4, T5, T6 any] func(T1, T2, T3, T4, T5, T6) bool

// Predicate7 tests seven values.
type Predicate7[T1, T2, T3, T4, T5, T6, T7 any] func(T1, T2, T3, T4, T5, T6, T7) bool

// Predicate8 tests eight values.
type Predicate8[T1, T2, T3, T4, T5, T6, T7, T8 any] func(T1, T2, T3, T4, T5, T6, T7, T8) bool

// Predicate9 tests nine values.
type Predicate9[T1, T2, T3, T4, T5, T6, T7, T8, T9 any] func(T1, T2, T3, T4, T5, T6, T7, T8, T9) bool

// Predicate10 tests ten values.
type Predicate10[T1, T2, T3, T4, T5, T6, T7, T8, T9, T10 any] func(T1, T2, T3, T4, T5, T6, T7, T8, T9, T10) bool

func (p Predicate2[T1, T2]) Test(t1 T1, t2 T2) bool {
	return p(t1, t2)
}

func (p Predicate2[T1, T2]) Curried(t1 T1) func(T2) bool {
	return func(t2 T2) bool { return p(t1, t2) }
}

// And is short-circuiting: other is not tested if p fails.
func (p Predicate2[T1, T2]) And(other Predicate2[T1, T2]) Predicate2[T1, T2] {
	mustFunc(other == nil, "Predicate2.And", "other")
	return func(t1 T1, t2 T2) bool { return p(t1, t2) && other(t1, t2) }
}

// Or is short-circuiting: other is not tested if p holds.
func (p Predicate2[T1, T2]) Or(other Predicate2[T1, T2]) Predicate2[T1, T2] {
	mustFunc(other == nil, "Predicate2.Or", "other")
	return func(t1 T1, t2 T2) bool { return p(t1, t2) || other(t1, t2) }
}

func (p Predicate2[T1, T2]) Negate() Predicate2[T1, T2] {
	return func(t1 T1, t2 T2) bool { return !p(t1, t2) }
}

func (p Predicate3[T1, T2, T3]) Test(t1 T1, t2 T2, t3 T3) bool {
	return p(t1, t2, t3)
}

func (p Predicate3[T1, T2, T3]) Curried(t1 T1) Predicate2[T2, T3] {
	return func(t2 T2, t3 T3) bool { return p(t1, t2, t3) }
}

func (p Predicate3[T1, T2, T3]) And(other Predicate3[T1, T2, T3]) Predicate3[T1, T2, T3] {
	mustFunc(other == nil, "Predicate3.And", "other")
	return func(t1 T1, t2 T2, t3 T3) bool { return p(t1, t2, t3) && other(t1, t2, t3) }
}

func (p Predicate3[T1, T2, T3]) Or(other Predicate3[T1, T2, T3]) Predicate3[T1, T2, T3] {
	mustFunc(other == nil, "Predicate3.Or", "other")
	return func(t1 T1, t2 T2, t3 T3) bool { return p(t1, t2, t3) || other(t1, t2, t3) }
}

func (p Predicate3[T1, T2, T3]) Negate() Predicate3[T1, T2, T3] {
	return func(t1 T1, t2 T2, t3 T3) bool { return !p(t1, t2, t3) }
}

func (p Predicate4[T1, T2, T3, T4]) Test(t1 T1, t2 T2, t3 T3, t4 T4) bool {
	return p(t1, t2, t3, t4)
}

func (p Predicate4[T1, T2, T3, T4]) Curried(t1 T1) Predicate3[T2, T3, T4] {
	return func(t2 T2, t3 T3, t4 T4) bool { return p(t1, t2, t3, t4) }
}

func (p Predicate4[T1, T2, T3, T4]) And(other Predicate4[T1, T2, T3, T4]) Predicate4[T1, T2, T3, T4] {
	mustFunc(other == nil, "Predicate4.And", "other")
	return func(t1 T1, t2 T2, t3 T3, t4 T4) bool { return p(t1, t2, t3, t4) && other(t1, t2, t3, t4) }
}

func (p Predicate4[T1, T2, T3, T4]) Or(other Predicate4[T1, T2, T3, T4]) Predicate4[T1, T2, T3, T4] {
	mustFunc(other == nil, "Predicate4.Or", "other")
	return func(t1 T1, t2 T2, t3 T3, t4 T4) bool { return p(t1, t2, t3, t4) || other(t1, t2, t3, t4) }
}

func (p Predicate4[T1, T2, T3, T4]) Negate() Predicate4[T1, T2, T3, T4] {
	return func(t1 T1, t2 T2, t3 T3, t4 T4) bool { return !p(t1, t2, t3, t4) }
}

func (p Predicate5[T1, T2, T3, T4, T5]) Test(t1 T1, t2 T2, t3 T3, t4 T4, t5 T5) bool {
	return p(t1, t2, t3, t4, t5)
}

func (p Predicate5[T1, T2, T3, T4, T5]) Curried(t1 T1) Predicate4[T2, T3, T4, T5] {
	return func(t2 T2, t3 T3, t4 T4, t5 T5) bool { return p(t1, t2, t3, t4, t5) }
}

func (p Predicate5[T1, T2, T3, T4, T5]) And(other Predicate5[T1, T2, T3, T4, T5]) Predicate5[T1, T2, T3, T4, T5] {
	mustFunc(other == nil, "Predicate5.And", "other")
	return func(t1 T1, t2 T2, t3 T3, t4 T4, t5 T5) bool { return p(t1, t2, t3, t4, t5) && other(t1, t2, t3, t4, t5) }
}

func (p Predicate5[T1, T2, T3, T4, T5]) Or(other Predicate5[T1, T2, T3, T4, T5]) Predicate5[T1, T2, T3, T4, T5] {
	mustFunc(other == nil, "Predicate5.Or", "other")
	return func(t1 T1, t2 T2, t3 T3, t4 T4, t5 T5) bool { return p(t1, t2, t3, t4, t5) || other(t1, t2, t3, t4, t5) }
}

func (p Predicate5[T1, T2, T3, T4, T5]) Negate() Predicate5[T1, T2, T3, T4, T5] {
	return func(t1 T1, t2 T2, t3 T3, t4 T4, t5 T5) bool { return !p(t1, t2, t3, t4, t5) }
}

func (p Predicate6[T1, T2, T3, T4, T5, T6]) Test(t1 T1, t2 T2, t3 T3, t4 T4, t5 T5, t6 T6) bool {
	return p(t1, t2, t3, t4, t5, t6)
}

func (p Predicate6[T1, T2, T3, T4, T5, T6]) Curried(t1 T1) Predicate5[T2, T3, T4, T5, T6] {
	return func(t2 T2, t3 T3, t4 T4, t5 T5, t6 T6) bool { return p(t1, t2, t3, t4, t5, t6) }
}

func (p Predicate6[T1, T2, T3, T4, T5, T6]) And(other Predicate6[T1, T2, T3, T4, T5, T6]) Predicate6[T1, T2, T3, T4, T5, T6] {
	mustFunc(other == nil, "Predicate6.And", "other")
	return func(t1 T1, t2 T2, t3 T3, t4 T4, t5 T5, t6 T6) bool { return p(t1, t2, t3, t4, t5, t6) && other(t1, t2, t3, t4, t5, t6) }
}

func (p Predicate6[T1, T2, T3, T4, T5, T6]) Or(other Predicate6[T1, T2, T3, T4, T5, T6]) Predicate6[T1, T2, T3, T4, T5, T6] {
	mustFunc(other == nil, "Predicate6.Or", "other")
	return func(t1 T1, t2 T2, t3 T3, t4 T4, t5 T5, t6 T6) bool { return p(t1, t2, t3, t4, t5, t6) || other(t1, t2, t3, t4, t5, t6) }
}

func (p Predicate6[T1, T2, T3, T4, T5, T6]) Negate() Predicate6[T1, T2, T3, T4, T5, T6] {
	return func(t1 T1, t2 T2, t3 T3, t4 T4, t5 T5, t6 T6) bool { return !p(t1, t2, t3, t4, t5, t6) }
}

func (p Predicate7[T1, T2, T3, T4, T5, T6, T7]) Test(t1 T1, t2 T2, t3 T3, t4 T4, t5 T5, t6 T6, t7 T7) bool {
	return p(t1, t2, t3, t4, t5, t6, t7)
}

func (p Predicate7[T1, T2, T3, T4, T5, T6, T7]) Curried(t1 T1) Predicate6[T2, T3, T4, T5, T6, T7] {
	return func(t2 T2, t3 T3, t4 T4, t5 T5, t6 T6, t7 T7) bool { return p(t1, t2, t3, t4, t5, t6, t7) }
}

func (p Predicate7[T1, T2, T3, T4, T5, T6, T7]) And(other Predicate7[T1, T2, T3, T4, T5, T6, T7]) Predicate7[T1, T2, T3, T4, T5, T6, T7] {
	mustFunc(other == nil, "Predicate7.And", "other")
	return func(t1 T1, t2 T2, t3 T3, t4 T4, t5 T5, t6 T6, t7 T7) bool { return p(t1, t2, t3, t4, t5, t6, t7) && other(t1, t2, t3, t4, t5, t6, t7) }
}

func (p Predicate7[T1, T2, T3, T4, T5, T6, T7]) Or(other Predicate7[T1, T2, T3, T4, T5, T6, T7]) Predicate7[T1, T2, T3, T4, T5, T6, T7] {
	mustFunc(other == nil, "Predicate7.Or", "other")
	return func(t1 T1, t2 T2, t3 T3, t4 T4, t5 T5, t6 T6, t7 T7) bool { return p(t1, t2, t3, t4, t5, t6, t7) || other(t1, t2, t3, t4, t5, t6, t7) }
}

func (p Predicate7[T1, T2, T3, T4, T5, T6, T7]) Negate() Predicate7[T1, T2, T3, T4, T5, T6, T7] {
	return func(t1 T1, t2 T2, t3 T3, t4 T4, t5 T5, t6 T6, t7 T7) bool { return !p(t1, t2, t3, t4, t5, t6, t7) }
}

func (p Predicate8[T1, T2, T3, T4, T5, T6, T7, T8]) Test(t1 T1, t2 T2, t3 T3, t4 T4, t5 T5, t6 T6, t7 T7, t8 T8) bool {
	return p(t1, t2, t3, t4, t5, t6, t7, t8)
}

func (p Predicate8[T1, T2, T3, T4, T5, T6, T7, T8]) Curried(t1 T1) Predicate7[T2, T3, T4, T5, T6, T7, T8] {
	return func(t2 T2, t3 T3, t4 T4, t5 T5, t6 T6, t7 T7, t8 T8) bool { return p(t1, t2, t3, t4, t5, t6, t7, t8) }
}

func (p Predicate8[T1, T2, T3, T4, T5, T6, T7, T8]) And(other Predicate8[T1, T2, T3, T4, T5, T6, T7, T8]) Predicate8[T1, T2, T3, T4, T5, T6, T7, T8] {
	mustFunc(other == nil, "Predicate8.And", "other")
	return func(t1 T1, t2 T2, t3 T3, t4 T4, t5 T5, t6 T6, t7 T7, t8 T8) bool { return p(t1, t2, t3, t4, t5, t6, t7, t8) && other(t1, t2, t3, t4, t5, t6, t7, t8) }
}

func (p Predicate8[T1, T2, T3, T4, T5, T6, T7, T8]) Or(other Predicate8[T1, T2, T3, T4, T5, T6, T7, T8]) Predicate8[T1, T2, T3, T4, T5, T6, T7, T8] {
	mustFunc(other == nil, "Predicate8.Or", "other")
	return func(t1 T1, t2 T2, t3 T3, t4 T4, t5 T5, t6 T6, t7 T7, t8 T8) bool { return p(t1, t2, t3, t4, t5, t6, t7, t8) || other(t1, t2, t3, t4, t5, t6, t7, t8) }
}

func (p Predicate8[T1, T2, T3, T4, T5, T6, T7, T8]) Negate() Predicate8[T1, T2, T3, T4, T5, T6, T7, T8] {
	return func(t1 T1, t2 T2, t3 T3, t4 T4, t5 T5, t6 T6, t7 T7, t8 T8) bool { return !p(t1, t2, t3, t4, t5, t6, t7, t8) }
}

func (p Predicate9[T1, T2, T3, T4, T5, T6, T7, T8, T9]) Test(t1 T1, t2 T2, t3 T3, t4 T4, t5 T5, t6 T6, t7 T7, t8 T8, t9 T9) bool {
	return p(t1, t2, t3, t4, t5, t6, t7, t8, t9)
}

func (p Predicate9[T1, T2, T3, T4, T5, T6, T7, T8, T9]) Curried(t1 T1) Predicate8[T2, T3, T4, T5, T6, T7, T8, T9] {
	return func(t2 T2, t3 T3, t4 T4, t5 T5, t6 T6, t7 T7, t8 T8, t9 T9) bool { return p(t1, t2, t3, t4, t5, t6, t7, t8, t9) }
}

func (p Predicate9[T1, T2, T3, T4, T5, T6, T7, T8, T9]) And(other Predicate9[T1, T2, T3, T4, T5, T6, T7, T8, T9]) Predicate9[T1, T2, T3, T4, T5, T6, T7, T8, T9] {
	mustFunc(other == nil, "Predicate9.And", "other")
	return func(t1 T1, t2 T2, t3 T3, t4 T4, t5 T5, t6 T6, t7 T7, t8 T8, t9 T9) bool { return p(t1, t2, t3, t4, t5, t6, t7, t8, t9) && other(t1, t2, t3, t4, t5, t6, t7, t8, t9) }
}

func (p Predicate9[T1, T2, T3, T4, T5, T6, T7, T8, T9]) Or(other Predicate9[T1, T2, T3, T4, T5, T6, T7, T8, T9]) Predicate9[T1, T2, T3, T4, T5, T6, T7, T8, T9] {
	mustFunc(other == nil, "Predicate9.Or", "other")
	return func(t1 T1, t2 T2, t3 T3, t4 T4, t5 T5, t6 T6, t7 T7, t8 T8, t9 T9) bool { return p(t1, t2, t3, t4, t5, t6, t7, t8, t9) || other(t1, t2, t3, t4, t5, t6, t7, t8, t9) }
}

func (p Predicate9[T1, T2, T3, T4, T5, T6, T7, T8, T9]) Negate() Predicate9[T1, T2, T3, T4, T5, T6, T7, T8, T9] {
	return func(t1 T1, t2 T2, t3 T3, t4 T4, t5 T5, t6 T6, t7 T7, t8 T8, t9 T9) bool { return !p(t1, t2, t3, t4, t5, t6, t7, t8, t9) }
}

func (p Predicate10[T1, T2, T3, T4, T5, T6, T7, T8, T9, T10]) Test(t1 T1, t2 T2, t3 T3, t4 T4, t5 T5, t6 T6, t7 T7, t8 T8, t9 T9, t10 T10) bool {
	return p(t1, t2, t3, t4, t5, t6, t7, t8, t9, t10)
}

func (p Predicate10[T1, T2, T3, T4, T5, T6, T7, T8, T9, T10]) Curried(t1 T1) Predicate9[T2, T3, T4, T5, T6, T7, T8, T9, T10] {
	return func(t2 T2, t3 T3, t4 T4, t5 T5, t6 T6, t7 T7, t8 T8, t9 T9, t10 T10) bool { return p(t1, t2, t3, t4, t5, t6, t7, t8, t9, t10) }
}

func (p Predicate10[T1, T2, T3, T4, T5, T6, T7, T8, T9, T10]) And(other Predicate10[T1, T2, T3, T4, T5, T6, T7, T8, T9, T10]) Predicate10[T1, T2, T3, T4, T5, T6, T7, T8, T9, T10] {
	mustFunc(other == nil, "Predicate10.And", "other")
	return func(t1 T1, t2 T2, t3 T3, t4 T4, t5 T5, t6 T6, t7 T7, t8 T8, t9 T9, t10 T10) bool { return p(t1, t2, t3, t4, t5, t6, t7, t8, t9, t10) && other(t1, t2, t3, t4, t5, t6, t7, t8, t9, t10) }
}

func (p Predicate10[T1, T2, T3, T4, T5, T6, T7, T8, T9, T10]) Or(other Predicate10[T1, T2, T3, T4, T5, T6, T7, T8, T9, T10]) Predicate10[T1, T2, T3, T4, T5, T6, T7, T8, T9, T10] {
	mustFunc(other == nil, "Predicate10.Or", "other")
	return func(t1 T1, t2 T2, t3 T3, t4 T4, t5 T5, t6 T6, t7 T7, t8 T8, t9 T9, t10 T10) bool { return p(t1, t2, t3, t4, t5, t6, t7, t8, t9, t10) || other(t1, t2, t3, t4, t5, t6, t7, t8, t9, t10) }
}

func (p Predicate10[T1, T2, T3, T4, T5, T6, T7, T8, T9, T10]) Negate() Predicate10[T1, T2, T3, T4, T5, T6, T7, T8, T9, T10] {
	return func(t1 T1, t2 T2, t3 T3, t4 T4, t5 T5, t6 T6, t7 T7, t8 T8, t9 T9, t10 T10) bool { return !p(t1, t2, t3, t4, t5, t6, t7, t8, t9, t10) }
}
