// Package safe runs a fallible operation and hands back a rop.Outcome
// instead of an error or a panic.
//
// - Call: run an Operation with the caller's context; every fault, context
//   errors included, becomes an Error outcome
// - CallFunc: same, for a zero-argument func() (T, error)
// - CallCancellable: like Call, but cancellation leaves through the returned
//   error instead of being turned into an Error outcome
//
// The wrapper adds no goroutines, retries or timeouts. The operation runs on
// the calling goroutine and the wrapper returns as soon as it does.
package safe
