package core

import "time"

// ResultStore is the short-lived store for task result envelopes, keyed by
// task id. The orchestrator writes every successful envelope and the
// background loop sweeps out entries older than the configured max age.
//
// Implementations must be safe for concurrent use. Sweep must isolate
// per-entry failures: a single undecodable or malformed entry may be evicted
// or skipped, but must never abort the sweep for the remaining entries.
type ResultStore interface {
	// Put stores (or overwrites) the envelope under its TaskID.
	Put(result TaskResult) error

	// Get returns the stored envelope or an implementation-defined not-found
	// error (results.ErrNotFound for the stock stores).
	Get(taskID string) (TaskResult, error)

	// Len reports the number of stored envelopes. Backends with server-side
	// expiry may return an approximation.
	Len() int

	// Sweep evicts entries whose age exceeds maxAge and returns the eviction
	// count. A maxAge of zero evicts every entry.
	Sweep(maxAge time.Duration) (int, error)
}
