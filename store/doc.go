// Package store provides a key/value adapter for Aerospike with an
// explicit lifecycle, a bounded operation pool, and a typed failure
// taxonomy.
//
// # Lifecycle
//
// A [Store] is process-scoped: create it once with [New], bring it up
// with [Store.Connect], share it across all callers, and tear it down
// once with [Store.Close]:
//
//	s := store.New(store.DefaultConfig())
//	if err := s.Connect(ctx); err != nil {
//	    // no node reachable within ConnectTimeout
//	}
//	defer s.Close()
//
// Operations issued before Connect or after Close fail with
// [ErrNotReady] without touching the network. [Store.Healthy] is a
// non-blocking probe for readiness checks.
//
// # Keys and values
//
// Records are addressed by [LogicalKey] (namespace, set, identifier);
// empty namespace or set pick up the configured defaults. Values are
// [Bins]: field name to scalar (string, bool, int64, float64, []byte)
// or nested string-keyed mapping. Unsupported types fail with
// [ErrSerialization] instead of being coerced, and numbers are
// canonicalized so a written value reads back equal.
//
// # Expiration
//
// The [TTL] convention is explicit: [TTLServerDefault] defers to the
// namespace default-ttl, [TTLNeverExpire] pins the record forever, and
// positive values expire after that many seconds.
//
// # Failures and retries
//
// Transient failures ([ErrConnection], [ErrTimeout]) are retried with
// capped exponential backoff before surfacing. Structural failures
// ([ErrInvalidKey], [ErrSerialization]) surface immediately and are
// never retried. [ErrNotFound] is a normal outcome for Get and Delete
// on absent records, never a transport failure.
//
// # Concurrency
//
// The Store is safe for unsynchronized concurrent use. In-flight
// backend calls are bounded by PoolSize; callers past the bound wait
// for a slot (context-aware) or, with FailFastOnPoolLimit, fail at
// once with [ErrPoolExhausted].
package store
