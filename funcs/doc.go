/*
Package funcs provides curried N-ary functions, consumers and predicates.

Each type is a plain Go function type, so every ordinary function literal
converts to it:

	add3 := funcs.Function3[int, int, int, int](func(a, b, c int) int { return a + b + c })
	add2 := add3.Curried(1)       // Function2[int, int, int]
	inc := add2.Curried(0)        // func(int) int

AndThen for functions changes the result type and is therefore a package
function (AndThen2 … AndThen10); consumers and predicates compose with methods.
*/
package funcs
