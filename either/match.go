package either

// --- Matching --------------------------------------------------------------

// Matcher matches an Either in a switch statement:
//
//	var n int
//	var err error
//	switch m := e.Match(); m {
//	case m.Left(&err):
//		…
//	case m.Right(&n):
//		…
//	}
type Matcher[L, R any] interface {
	Left(*L) Matcher[L, R]
	Right(*R) Matcher[L, R]
}

type matcher[L, R any] struct {
	e Either[L, R]
}

func (l left[L, R]) Match() Matcher[L, R] {
	return &matcher[L, R]{e: l}
}

func (r right[L, R]) Match() Matcher[L, R] {
	return &matcher[L, R]{e: r}
}

func (em *matcher[L, R]) Left(v *L) Matcher[L, R] {
	if x, ok := em.e.LeftValue(); ok {
		if v != nil {
			*v = x
		}
		return em
	}
	return nil
}

func (em *matcher[L, R]) Right(v *R) Matcher[L, R] {
	if x, ok := em.e.RightValue(); ok {
		if v != nil {
			*v = x
		}
		return em
	}
	return nil
}
