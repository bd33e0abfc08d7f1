package maybe

import (
	"fmt"
	"strings"

	"github.com/majewsky/gg/option"
	"github.com/npillmayer/fplus"
	"github.com/npillmayer/fplus/internal/value"
)

// Maybe is a value which may be absent. It is either Nothing or Just(a).
//
// The set of variants is closed; clients cannot implement Maybe.
type Maybe[A any] interface {
	IsJust() bool
	IsNothing() bool
	Match() Matcher[A]
	Map(func(A) A) Maybe[A]
	Filter(func(A) bool) Maybe[A]
	OrElse(func() Maybe[A]) Maybe[A]
	GetOrElse(func() A) A
	ForEach(func(A))
	ToOptional() option.Option[A]
	Equal(Maybe[A]) bool
	Hash() uint64
	String() string
	isMaybe()
}

// Just wraps x, or returns Nothing if x is nil.
func Just[A any](x A) Maybe[A] {
	if value.IsNil(x) {
		return nothing[A]{}
	}
	return just[A]{value: x}
}

// Nothing returns the absent value for A.
func Nothing[A any]() Maybe[A] {
	return nothing[A]{}
}

// FromOptional converts Some(v) to Just(v) and None to Nothing.
func FromOptional[A any](o option.Option[A]) Maybe[A] {
	if v, ok := o.Unpack(); ok {
		return Just(v)
	}
	return nothing[A]{}
}

// get unwraps m. A nil m counts as Nothing.
func get[A any](m Maybe[A]) (A, bool) {
	if j, ok := m.(just[A]); ok {
		return j.value, true
	}
	var zero A
	return zero, false
}

func orNothing[A any](m Maybe[A]) Maybe[A] {
	if m == nil {
		return nothing[A]{}
	}
	return m
}

func mustFunc(isNil bool, op, arg string) {
	if isNil {
		panic(fplus.NilArgument(op, arg))
	}
}

// --- Nothing ---------------------------------------------------------------

type nothing[A any] struct{}

func (nothing[A]) isMaybe() {}

func (nothing[A]) IsJust() bool    { return false }
func (nothing[A]) IsNothing() bool { return true }

func (n nothing[A]) Map(f func(A) A) Maybe[A] {
	mustFunc(f == nil, "Maybe.Map", "f")
	return n
}

func (n nothing[A]) Filter(p func(A) bool) Maybe[A] {
	mustFunc(p == nil, "Maybe.Filter", "p")
	return n
}

func (n nothing[A]) OrElse(alternative func() Maybe[A]) Maybe[A] {
	mustFunc(alternative == nil, "Maybe.OrElse", "alternative")
	return orNothing(alternative())
}

func (n nothing[A]) GetOrElse(alternative func() A) A {
	mustFunc(alternative == nil, "Maybe.GetOrElse", "alternative")
	return alternative()
}

func (n nothing[A]) ForEach(f func(A)) {
	mustFunc(f == nil, "Maybe.ForEach", "f")
}

func (n nothing[A]) ToOptional() option.Option[A] {
	return option.None[A]()
}

func (n nothing[A]) Equal(other Maybe[A]) bool {
	return other == nil || other.IsNothing()
}

func (n nothing[A]) Hash() uint64 {
	return 0
}

func (n nothing[A]) String() string {
	return "Maybe = Nothing"
}

// --- Just ------------------------------------------------------------------

type just[A any] struct {
	value A
}

func (just[A]) isMaybe() {}

func (just[A]) IsJust() bool    { return true }
func (just[A]) IsNothing() bool { return false }

func (j just[A]) Map(f func(A) A) Maybe[A] {
	mustFunc(f == nil, "Maybe.Map", "f")
	return Just(f(j.value))
}

func (j just[A]) Filter(p func(A) bool) Maybe[A] {
	mustFunc(p == nil, "Maybe.Filter", "p")
	if p(j.value) {
		return j
	}
	return nothing[A]{}
}

func (j just[A]) OrElse(alternative func() Maybe[A]) Maybe[A] {
	mustFunc(alternative == nil, "Maybe.OrElse", "alternative")
	return j
}

func (j just[A]) GetOrElse(alternative func() A) A {
	mustFunc(alternative == nil, "Maybe.GetOrElse", "alternative")
	return j.value
}

func (j just[A]) ForEach(f func(A)) {
	mustFunc(f == nil, "Maybe.ForEach", "f")
	f(j.value)
}

func (j just[A]) ToOptional() option.Option[A] {
	return option.Some(j.value)
}

func (j just[A]) Equal(other Maybe[A]) bool {
	v, ok := get(other)
	return ok && value.Equal(j.value, v)
}

func (j just[A]) Hash() uint64 {
	return value.Hash(j.value)
}

// nested is implemented by every Maybe, whatever its type parameter.
type nested interface {
	isMaybe()
	String() string
}

// String returns "Maybe<T> = Just(v)". A nested Maybe contributes the left
// side of its own representation as T and its right side as v, which makes
// the format compose, e.g. "Maybe<Maybe<int>> = Just(Just(7))".
func (j just[A]) String() string {
	var typeParam, inJust string
	if inner, ok := any(j.value).(nested); ok {
		s := inner.String()
		typeParam, inJust, _ = strings.Cut(s, " = ")
	} else {
		typeParam = value.TypeName(j.value)
		inJust = fmt.Sprint(j.value)
	}
	return "Maybe<" + typeParam + "> = Just(" + inJust + ")"
}

// --- Combinators -----------------------------------------------------------

// Map applies f to the value of a Just and passes the result through Just
// again; a nil result turns into Nothing. Nothing maps to Nothing.
func Map[A, B any](m Maybe[A], f func(A) B) Maybe[B] {
	mustFunc(f == nil, "maybe.Map", "f")
	if v, ok := get(m); ok {
		return Just(f(v))
	}
	return nothing[B]{}
}

// FlatMap applies f to the value of a Just. Nothing maps to Nothing.
func FlatMap[A, B any](m Maybe[A], f func(A) Maybe[B]) Maybe[B] {
	mustFunc(f == nil, "maybe.FlatMap", "f")
	if v, ok := get(m); ok {
		return orNothing(f(v))
	}
	return nothing[B]{}
}

// Ap applies the function wrapped in the Maybe produced by fs to the value of m.
// fs is called only if m is a Just.
func Ap[A, B any](m Maybe[A], fs func() Maybe[func(A) B]) Maybe[B] {
	mustFunc(fs == nil, "maybe.Ap", "fs")
	v, ok := get(m)
	if !ok {
		return nothing[B]{}
	}
	return FlatMap(fs(), func(g func(A) B) Maybe[B] {
		return Just(g(v))
	})
}

// Fold calls exactly one of nothingCase and justCase.
func Fold[A, B any](m Maybe[A], nothingCase func() B, justCase func(A) B) B {
	mustFunc(nothingCase == nil, "maybe.Fold", "nothingCase")
	mustFunc(justCase == nil, "maybe.Fold", "justCase")
	if v, ok := get(m); ok {
		return justCase(v)
	}
	return nothingCase()
}
