// Package observe exports wrapped-call outcomes as Prometheus metrics.
// Attach a Collector with core.WithObserver and every safe.Call made with
// that context is counted.
package observe
