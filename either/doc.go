/*
Package either implements a disjoint union of two types.

An Either is Left(l) or Right(r). By convention Left carries a failure and
Right a success, and the combinators are right-biased: Map and FlatMap work
on Right values and pass Left values along untouched.

Unlike maybe.Maybe, an Either never inspects its payload. Left(nil) and
Right(nil) are ordinary values.

Conversions between Maybe and Either live here:

	FromMaybe(Just(v), f)   == Right(v)   // f is not called
	FromMaybe(Nothing, f)   == Left(f())
	ToMaybe(Right(v))       == maybe.Just(v)
	ToMaybe(Left(_))        == maybe.Nothing

ToMaybe discards the Left payload.
*/
package either
