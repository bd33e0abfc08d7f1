package either

import (
	"fmt"

	"github.com/npillmayer/fplus"
	"github.com/npillmayer/fplus/internal/value"
	"github.com/npillmayer/fplus/maybe"
)

// Either is either Left(l) or Right(r).
//
// The set of variants is closed; clients cannot implement Either.
type Either[L, R any] interface {
	IsLeft() bool
	IsRight() bool
	LeftValue() (L, bool)
	RightValue() (R, bool)
	Match() Matcher[L, R]
	Map(func(R) R) Either[L, R]
	GetOrElse(func() R) R
	OrElse(func() Either[L, R]) Either[L, R]
	ForEach(func(R))
	Equal(Either[L, R]) bool
	Hash() uint64
	String() string
	isEither()
}

// Left constructs a Left.
func Left[L, R any](v L) Either[L, R] {
	return left[L, R]{value: v}
}

// Right constructs a Right.
func Right[L, R any](v R) Either[L, R] {
	return right[L, R]{value: v}
}

func mustEither[L, R any](e Either[L, R], op string) {
	if e == nil {
		panic(fplus.NilArgument(op, "e"))
	}
}

func mustFunc(isNil bool, op, arg string) {
	if isNil {
		panic(fplus.NilArgument(op, arg))
	}
}

// --- Left ------------------------------------------------------------------

type left[L, R any] struct {
	value L
}

func (left[L, R]) isEither()     {}
func (left[L, R]) IsLeft() bool  { return true }
func (left[L, R]) IsRight() bool { return false }

func (l left[L, R]) LeftValue() (L, bool) {
	return l.value, true
}

func (l left[L, R]) RightValue() (R, bool) {
	var zero R
	return zero, false
}

func (l left[L, R]) Map(f func(R) R) Either[L, R] {
	mustFunc(f == nil, "Either.Map", "f")
	return l
}

func (l left[L, R]) GetOrElse(alternative func() R) R {
	mustFunc(alternative == nil, "Either.GetOrElse", "alternative")
	return alternative()
}

func (l left[L, R]) OrElse(alternative func() Either[L, R]) Either[L, R] {
	mustFunc(alternative == nil, "Either.OrElse", "alternative")
	return alternative()
}

func (l left[L, R]) ForEach(f func(R)) {
	mustFunc(f == nil, "Either.ForEach", "f")
}

func (l left[L, R]) Equal(other Either[L, R]) bool {
	if other == nil {
		return false
	}
	v, ok := other.LeftValue()
	return ok && value.Equal(l.value, v)
}

func (l left[L, R]) Hash() uint64 {
	return 1 + 31*value.Hash(l.value)
}

func (l left[L, R]) String() string {
	return fmt.Sprintf("Left(%v)", l.value)
}

// --- Right -----------------------------------------------------------------

type right[L, R any] struct {
	value R
}

func (right[L, R]) isEither()     {}
func (right[L, R]) IsLeft() bool  { return false }
func (right[L, R]) IsRight() bool { return true }

func (r right[L, R]) LeftValue() (L, bool) {
	var zero L
	return zero, false
}

func (r right[L, R]) RightValue() (R, bool) {
	return r.value, true
}

func (r right[L, R]) Map(f func(R) R) Either[L, R] {
	mustFunc(f == nil, "Either.Map", "f")
	return right[L, R]{value: f(r.value)}
}

func (r right[L, R]) GetOrElse(alternative func() R) R {
	mustFunc(alternative == nil, "Either.GetOrElse", "alternative")
	return r.value
}

func (r right[L, R]) OrElse(alternative func() Either[L, R]) Either[L, R] {
	mustFunc(alternative == nil, "Either.OrElse", "alternative")
	return r
}

func (r right[L, R]) ForEach(f func(R)) {
	mustFunc(f == nil, "Either.ForEach", "f")
	f(r.value)
}

func (r right[L, R]) Equal(other Either[L, R]) bool {
	if other == nil {
		return false
	}
	v, ok := other.RightValue()
	return ok && value.Equal(r.value, v)
}

func (r right[L, R]) Hash() uint64 {
	return 2 + 31*value.Hash(r.value)
}

func (r right[L, R]) String() string {
	return fmt.Sprintf("Right(%v)", r.value)
}

// --- Combinators -----------------------------------------------------------

// Fold calls exactly one of leftCase and rightCase.
func Fold[L, R, T any](e Either[L, R], leftCase func(L) T, rightCase func(R) T) T {
	mustEither(e, "either.Fold")
	mustFunc(leftCase == nil, "either.Fold", "leftCase")
	mustFunc(rightCase == nil, "either.Fold", "rightCase")
	if v, ok := e.LeftValue(); ok {
		return leftCase(v)
	}
	v, _ := e.RightValue()
	return rightCase(v)
}

// Map maps the Right channel.
func Map[L, R, S any](e Either[L, R], f func(R) S) Either[L, S] {
	mustEither(e, "either.Map")
	mustFunc(f == nil, "either.Map", "f")
	if v, ok := e.RightValue(); ok {
		return right[L, S]{value: f(v)}
	}
	v, _ := e.LeftValue()
	return left[L, S]{value: v}
}

// MapLeft maps the Left channel.
func MapLeft[L, R, K any](e Either[L, R], f func(L) K) Either[K, R] {
	mustEither(e, "either.MapLeft")
	mustFunc(f == nil, "either.MapLeft", "f")
	if v, ok := e.LeftValue(); ok {
		return left[K, R]{value: f(v)}
	}
	v, _ := e.RightValue()
	return right[K, R]{value: v}
}

// BiMap maps both channels.
func BiMap[L, R, K, S any](e Either[L, R], fl func(L) K, fr func(R) S) Either[K, S] {
	mustEither(e, "either.BiMap")
	mustFunc(fl == nil, "either.BiMap", "fl")
	mustFunc(fr == nil, "either.BiMap", "fr")
	if v, ok := e.LeftValue(); ok {
		return left[K, S]{value: fl(v)}
	}
	v, _ := e.RightValue()
	return right[K, S]{value: fr(v)}
}

// FlatMap applies f to a Right value. A Left is passed along.
func FlatMap[L, R, S any](e Either[L, R], f func(R) Either[L, S]) Either[L, S] {
	mustEither(e, "either.FlatMap")
	mustFunc(f == nil, "either.FlatMap", "f")
	if v, ok := e.RightValue(); ok {
		return f(v)
	}
	v, _ := e.LeftValue()
	return left[L, S]{value: v}
}

// Swap turns Left(v) into Right(v) and vice versa.
func Swap[L, R any](e Either[L, R]) Either[R, L] {
	mustEither(e, "either.Swap")
	if v, ok := e.LeftValue(); ok {
		return right[R, L]{value: v}
	}
	v, _ := e.RightValue()
	return left[R, L]{value: v}
}

// --- Maybe -----------------------------------------------------------------

// FromMaybe converts Just(v) to Right(v) and Nothing to Left(leftValue()).
// leftValue is called on Nothing only.
func FromMaybe[L, R any](m maybe.Maybe[R], leftValue func() L) Either[L, R] {
	mustFunc(leftValue == nil, "either.FromMaybe", "leftValue")
	return maybe.Fold(m,
		func() Either[L, R] { return left[L, R]{value: leftValue()} },
		func(v R) Either[L, R] { return right[L, R]{value: v} },
	)
}

// ToMaybe converts Right(v) to maybe.Just(v) and Left to Nothing, dropping
// the Left value.
func ToMaybe[L, R any](e Either[L, R]) maybe.Maybe[R] {
	mustEither(e, "either.ToMaybe")
	return Fold(e,
		func(L) maybe.Maybe[R] { return maybe.Nothing[R]() },
		maybe.Just[R],
	)
}
