// Package solo contains single-value, synchronous helpers for consuming a
// rop.Outcome once a wrapped call has returned.
//
// Highlights:
// - Match: reduce to a concrete value via success/error handlers
// - Map/Switch: continue on success, carry the error message otherwise
// - Try: run the next (Out, error) step through safe.Call
// - Tee: side effects without changing the outcome
// - OrElse: unwrap with a fallback value
package solo
