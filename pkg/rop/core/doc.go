// Package core contains plumbing shared by the wrapper packages: options
// carried through context (worker limits, outcome observers), the feeder
// channel helpers and the locomotive worker loop used by async.All. It does
// not decide how faults become outcomes; that lives in package safe.
package core
