package maybe

// --- Matching --------------------------------------------------------------

// Matcher matches a Maybe in a switch statement:
//
//	var v int
//	switch m := x.Match(); m {
//	case m.Just(&v):
//		…
//	case m.Nothing():
//		…
//	}
type Matcher[A any] interface {
	Just(*A) Matcher[A]
	Nothing() Matcher[A]
}

type matcher[A any] struct {
	m Maybe[A]
}

func (n nothing[A]) Match() Matcher[A] {
	return &matcher[A]{m: n}
}

func (j just[A]) Match() Matcher[A] {
	return &matcher[A]{m: j}
}

func (mm *matcher[A]) Just(v *A) Matcher[A] {
	if x, ok := get(mm.m); ok {
		if v != nil {
			*v = x
		}
		return mm
	}
	return nil
}

func (mm *matcher[A]) Nothing() Matcher[A] {
	if mm.m.IsNothing() {
		return mm
	}
	return nil
}
