/*
Package shh silences functions which return an error.

Higher-order APIs usually take plain functions. shh adapts an
error-returning function to such a plain one: an error does not get lost,
it is raised as a panic carrying the error wrapped with a stack trace.

	lengths := maybe.Map(path, shh.Function(fileSize))

GetOrRethrowCause and RunOrRethrowCause turn such a panic back into an
error return, if the original error is one the caller is prepared to handle.
*/
package shh

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'fp.shh'.
func tracer() tracing.Trace {
	return tracing.Select("fp.shh")
}
