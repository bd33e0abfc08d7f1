package funcs

// Consumer2 consumes two values.
type Consumer2[T1, T2 any] func(T1, T2)

// Consumer3 consumes three values.
type Consumer3[T1, T2, T3 any] func(T1, T2, T3)

// Consumer4 consumes four values.
type Consumer4[T1, T2, T3, T4 any] func(T1, T2, T3, T4)

// Consumer5 consumes five values.
type Consumer5[T1, T2, T3, T4, T5 any] func(T1, T2, T3, T4, T5)

// Consumer6 consumes six values.
type Consumer6[T1, T2, T3, T4, T5, T6 any] func(T1, T2, T3, T4, T5, T6)

// Consumer7 consumes seven values.
type Consumer7[T1, T2, T3, T4, T5, T6, T7 any] func(T1, T2, T3, T4, T5, T6, T7)

// Consumer8 consumes eight values.
type Consumer8[T1, T2, T3, T4, T5, T6, T7, T8 any] func(T1, T2, T3, T4, T5, T6, T7, T8)

// Consumer9 consumes nine values.
type Consumer9[T1, T2, T3, T4, T5, T6, T7, T8, T9 any] func(T1, T2, T3, T4, T5, T6, T7, T8, T9)

// Consumer10 consumes ten values.
type Consumer10[T1, T2, T3, T4, T5, T6, T7, T8, T9, T10 any] func(T1, T2, T3, T4, T5, T6, T7, T8, T9, T10)

func (c Consumer2[T1, T2]) Accept(t1 T1, t2 T2) {
	c(t1, t2)
}

func (c Consumer2[T1, T2]) Curried(t1 T1) func(T2) {
	return func(t2 T2) { c(t1, t2) }
}

// AndThen performs c, then after, with the same arguments.
func (c Consumer2[T1, T2]) AndThen(after Consumer2[T1, T2]) Consumer2[T1, T2] {
	mustFunc(after == nil, "Consumer2.AndThen", "after")
	return func(t1 T1, t2 T2) {
		c(t1, t2)
		after(t1, t2)
	}
}

func (c Consumer3[T1, T2, T3]) Accept(t1 T1, t2 T2, t3 T3) {
	c(t1, t2, t3)
}

func (c Consumer3[T1, T2, T3]) Curried(t1 T1) Consumer2[T2, T3] {
	return func(t2 T2, t3 T3) { c(t1, t2, t3) }
}

// AndThen performs c, then after, with the same arguments.
func (c Consumer3[T1, T2, T3]) AndThen(after Consumer3[T1, T2, T3]) Consumer3[T1, T2, T3] {
	mustFunc(after == nil, "Consumer3.AndThen", "after")
	return func(t1 T1, t2 T2, t3 T3) {
		c(t1, t2, t3)
		after(t1, t2, t3)
	}
}

func (c Consumer4[T1, T2, T3, T4]) Accept(t1 T1, t2 T2, t3 T3, t4 T4) {
	c(t1, t2, t3, t4)
}

func (c Consumer4[T1, T2, T3, T4]) Curried(t1 T1) Consumer3[T2, T3, T4] {
	return func(t2 T2, t3 T3, t4 T4) { c(t1, t2, t3, t4) }
}

// AndThen performs c, then after, with the same arguments.
func (c Consumer4[T1, T2, T3, T4]) AndThen(after Consumer4[T1, T2, T3, T4]) Consumer4[T1, T2, T3, T4] {
	mustFunc(after == nil, "Consumer4.AndThen", "after")
	return func(t1 T1, t2 T2, t3 T3, t4 T4) {
		c(t1, t2, t3, t4)
		after(t1, t2, t3, t4)
	}
}

func (c Consumer5[T1, T2, T3, T4, T5]) Accept(t1 T1, t2 T2, t3 T3, t4 T4, t5 T5) {
	c(t1, t2, t3, t4, t5)
}

func (c Consumer5[T1, T2, T3, T4, T5]) Curried(t1 T1) Consumer4[T2, T3, T4, T5] {
	return func(t2 T2, t3 T3, t4 T4, t5 T5) { c(t1, t2, t3, t4, t5) }
}

// AndThen performs c, then after, with the same arguments.
func (c Consumer5[T1, T2, T3, T4, T5]) AndThen(after Consumer5[T1, T2, T3, T4, T5]) Consumer5[T1, T2, T3, T4, T5] {
	mustFunc(after == nil, "Consumer5.AndThen", "after")
	return func(t1 T1, t2 T2, t3 T3, t4 T4, t5 T5) {
		c(t1, t2, t3, t4, t5)
		after(t1, t2, t3, t4, t5)
	}
}

func (c Consumer6[T1, T2, T3, T4, T5, T6]) Accept(t1 T1, t2 T2, t3 T3, t4 T4, t5 T5, t6 T6) {
	c(t1, t2, t3, t4, t5, t6)
}

func (c Consumer6[T1, T2, T3, T4, T5, T6]) Curried(t1 T1) Consumer5[T2, T3, T4, T5, T6] {
	return func(t2 T2, t3 T3, t4 T4, t5 T5, t6 T6) { c(t1, t2, t3, t4, t5, t6) }
}

// AndThen performs c, then after, with the same arguments.
func (c Consumer6[T1, T2, T3, T4, T5, T6]) AndThen(after Consumer6[T1, T2, T3, T4, T5, T6]) Consumer6[T1, T2, T3, T4, T5, T6] {
	mustFunc(after == nil, "Consumer6.AndThen", "after")
	return func(t1 T1, t2 T2, t3 T3, t4 T4, t5 T5, t6 T6) {
		c(t1, t2, t3, t4, t5, t6)
		after(t1, t2, t3, t4, t5, t6)
	}
}

func (c Consumer7[T1, T2, T3, T4, T5, T6, T7]) Accept(t1 T1, t2 T2, t3 T3, t4 T4, t5 T5, t6 T6, t7 T7) {
	c(t1, t2, t3, t4, t5, t6, t7)
}

func (c Consumer7[T1, T2, T3, T4, T5, T6, T7]) Curried(t1 T1) Consumer6[T2, T3, T4, T5, T6, T7] {
	return func(t2 T2, t3 T3, t4 T4, t5 T5, t6 T6, t7 T7) { c(t1, t2, t3, t4, t5, t6, t7) }
}

// AndThen performs c, then after, with the same arguments.
func (c Consumer7[T1, T2, T3, T4, T5, T6, T7]) AndThen(after Consumer7[T1, T2, T3, T4, T5, T6, T7]) Consumer7[T1, T2, T3, T4, T5, T6, T7] {
	mustFunc(after == nil, "Consumer7.AndThen", "after")
	return func(t1 T1, t2 T2, t3 T3, t4 T4, t5 T5, t6 T6, t7 T7) {
		c(t1, t2, t3, t4, t5, t6, t7)
		after(t1, t2, t3, t4, t5, t6, t7)
	}
}

func (c Consumer8[T1, T2, T3, T4, T5, T6, T7, T8]) Accept(t1 T1, t2 T2, t3 T3, t4 T4, t5 T5, t6 T6, t7 T7, t8 T8) {
	c(t1, t2, t3, t4, t5, t6, t7, t8)
}

func (c Consumer8[T1, T2, T3, T4, T5, T6, T7, T8]) Curried(t1 T1) Consumer7[T2, T3, T4, T5, T6, T7, T8] {
	return func(t2 T2, t3 T3, t4 T4, t5 T5, t6 T6, t7 T7, t8 T8) { c(t1, t2, t3, t4, t5, t6, t7, t8) }
}

// AndThen performs c, then after, with the same arguments.
func (c Consumer8[T1, T2, T3, T4, T5, T6, T7, T8]) AndThen(after Consumer8[T1, T2, T3, T4, T5, T6, T7, T8]) Consumer8[T1, T2, T3, T4, T5, T6, T7, T8] {
	mustFunc(after == nil, "Consumer8.AndThen", "after")
	return func(t1 T1, t2 T2, t3 T3, t4 T4, t5 T5, t6 T6, t7 T7, t8 T8) {
		c(t1, t2, t3, t4, t5, t6, t7, t8)
		after(t1, t2, t3, t4, t5, t6, t7, t8)
	}
}

func (c Consumer9[T1, T2, T3, T4, T5, T6, T7, T8, T9]) Accept(t1 T1, t2 T2, t3 T3, t4 T4, t5 T5, t6 T6, t7 T7, t8 T8, t9 T9) {
	c(t1, t2, t3, t4, t5, t6, t7, t8, t9)
}

func (c Consumer9[T1, T2, T3, T4, T5, T6, T7, T8, T9]) Curried(t1 T1) Consumer8[T2, T3, T4, T5, T6, T7, T8, T9] {
	return func(t2 T2, t3 T3, t4 T4, t5 T5, t6 T6, t7 T7, t8 T8, t9 T9) { c(t1, t2, t3, t4, t5, t6, t7, t8, t9) }
}

// AndThen performs c, then after, with the same arguments.
func (c Consumer9[T1, T2, T3, T4, T5, T6, T7, T8, T9]) AndThen(after Consumer9[T1, T2, T3, T4, T5, T6, T7, T8, T9]) Consumer9[T1, T2, T3, T4, T5, T6, T7, T8, T9] {
	mustFunc(after == nil, "Consumer9.AndThen", "after")
	return func(t1 T1, t2 T2, t3 T3, t4 T4, t5 T5, t6 T6, t7 T7, t8 T8, t9 T9) {
		c(t1, t2, t3, t4, t5, t6, t7, t8, t9)
		after(t1, t2, t3, t4, t5, t6, t7, t8, t9)
	}
}

func (c Consumer10[T1, T2, T3, T4, T5, T6, T7, T8, T9, T10]) Accept(t1 T1, t2 T2, t3 T3, t4 T4, t5 T5, t6 T6, t7 T7, t8 T8, t9 T9, t10 T10) {
	c(t1, t2, t3, t4, t5, t6, t7, t8, t9, t10)
}

func (c Consumer10[T1, T2, T3, T4, T5, T6, T7, T8, T9, T10]) Curried(t1 T1) Consumer9[T2, T3, T4, T5, T6, T7, T8, T9, T10] {
	return func(t2 T2, t3 T3, t4 T4, t5 T5, t6 T6, t7 T7, t8 T8, t9 T9, t10 T10) { c(t1, t2, t3, t4, t5, t6, t7, t8, t9, t10) }
}

// AndThen performs c, then after, with the same arguments.
func (c Consumer10[T1, T2, T3, T4, T5, T6, T7, T8, T9, T10]) AndThen(after Consumer10[T1, T2, T3, T4, T5, T6, T7, T8, T9, T10]) Consumer10[T1, T2, T3, T4, T5, T6, T7, T8, T9, T10] {
	mustFunc(after == nil, "Consumer10.AndThen", "after")
	return func(t1 T1, t2 T2, t3 T3, t4 T4, t5 T5, t6 T6, t7 T7, t8 T8, t9 T9, t10 T10) {
		c(t1, t2, t3, t4, t5, t6, t7, t8, t9, t10)
		after(t1, t2, t3, t4, t5, t6, t7, t8, t9, t10)
	}
}
