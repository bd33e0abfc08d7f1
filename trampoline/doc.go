/*
Package trampoline implements stack-safe recursion.

A logically recursive function returns a TailStep instead of calling itself.
Evaluate drives the steps in a loop, so the Go stack stays flat no matter how
many recursive calls the computation makes:

	func sum(n, acc int) trampoline.TailStep[int] {
		if n == 0 {
			return trampoline.Done(acc)
		}
		return trampoline.Pending[int](func() trampoline.TailStep[int] {
			return sum(n-1, acc+n)
		})
	}

	total, err := trampoline.Evaluate(sum(1000000, 0))   // 500000500000

Steps are expected to be pure and non-blocking. There is no timeout and no
cancellation: a chain which never reaches Done makes Evaluate loop forever.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package trampoline

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'fp.trampoline'.
func tracer() tracing.Trace {
	return tracing.Select("fp.trampoline")
}
