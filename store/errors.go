package store

import "errors"

var (
	// ErrConnection is returned when no backend node is reachable.
	ErrConnection = errors.New("aerostore: backend unreachable")

	// ErrTimeout is returned when an operation exceeds its deadline.
	ErrTimeout = errors.New("aerostore: operation timed out")

	// ErrNotReady is returned when an operation is issued before Connect
	// or after Close. The backend is never contacted in this state.
	ErrNotReady = errors.New("aerostore: store not ready")

	// ErrAlreadyConnected is returned when Connect is called on a store
	// that is already connected.
	ErrAlreadyConnected = errors.New("aerostore: already connected")

	// ErrClosed is returned when Connect is called on a closed store.
	ErrClosed = errors.New("aerostore: store closed")

	// ErrInvalidKey is returned for malformed logical keys (empty
	// components, oversized identifiers, illegal characters).
	ErrInvalidKey = errors.New("aerostore: invalid key")

	// ErrInvalidTTL is returned for TTL values outside the documented
	// convention (see the TTL type).
	ErrInvalidTTL = errors.New("aerostore: invalid ttl")

	// ErrSerialization is returned when a value falls outside the
	// supported bin domain or exceeds the record size limit.
	ErrSerialization = errors.New("aerostore: value not serializable")

	// ErrDeserialization is returned when a stored record cannot be
	// mapped back into the supported bin domain.
	ErrDeserialization = errors.New("aerostore: value not deserializable")

	// ErrNotFound is returned by Get and Delete for absent records.
	// It is a normal outcome, not a transport failure.
	ErrNotFound = errors.New("aerostore: record not found")

	// ErrPoolExhausted is returned when FailFastOnPoolLimit is set and
	// all PoolSize operation slots are in use.
	ErrPoolExhausted = errors.New("aerostore: operation pool exhausted")
)
