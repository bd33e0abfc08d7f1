/*
Package maybe implements an optional value type.

A Maybe is either Nothing or Just a value. Absence is represented by
structure, never by an error, and every combinator passes it along:

	name := maybe.Map(maybe.Just(user), func(u *User) string { return u.Name })
	greeting := name.Filter(notEmpty).GetOrElse(fplus.Const("stranger"))

Just is the only way to construct a present value, and it never wraps the
absence marker of a type: Just of a nil pointer, interface, map, slice,
channel or function is Nothing. Map re-enters Just, so a mapping function
returning nil yields Nothing as well.

Type-changing operations (Map, FlatMap, Ap, Fold) are package functions, as
Go methods cannot introduce type parameters. Conversions to and from
either.Either live in package either.

Nil function arguments are programmer errors and panic with an error
wrapping fplus.ErrNilArgument.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package maybe
