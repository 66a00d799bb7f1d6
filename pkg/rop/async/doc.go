// Package async runs wrapped operations off the calling goroutine.
//
// - Go: start one operation, receive its single outcome from a channel
// - All: run many operations on a bounded number of workers (see
//   core.WithWorkerOptions) and collect the outcomes in input order
package async
