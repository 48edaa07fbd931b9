// Package session provides a web-session store backed by the aerostore
// adapter. Payloads are stored as single-bin records keyed by session
// ID, with backend-side expiration doing the garbage collection.
package session

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/jacentio/aerostore/store"
)

// DefaultGCTTL bounds sessions written without an explicit lifetime,
// so session-only cookies still get collected eventually.
const DefaultGCTTL = 30 * 24 * time.Hour

// dataBin holds the opaque session payload.
const dataBin = "data"

// KV is the slice of the adapter surface the session store needs.
// *store.Store satisfies it.
type KV interface {
	Get(ctx context.Context, key store.LogicalKey) (store.Bins, error)
	Put(ctx context.Context, key store.LogicalKey, value store.Bins, ttl store.TTL) error
	Delete(ctx context.Context, key store.LogicalKey) error
}

// Store persists session payloads.
type Store struct {
	kv        KV
	namespace string
	set       string
	gcTTL     store.TTL
}

// New creates a session store writing to the given namespace and set.
// Empty namespace or set fall through to the adapter's configured
// defaults. A non-positive gcTTL selects DefaultGCTTL.
func New(kv KV, namespace, set string, gcTTL time.Duration) *Store {
	if gcTTL <= 0 {
		gcTTL = DefaultGCTTL
	}
	return &Store{
		kv:        kv,
		namespace: namespace,
		set:       set,
		gcTTL:     ttlSeconds(gcTTL),
	}
}

// Read returns the session payload, or empty bytes when the session is
// missing or expired. Absence is not an error for session lookups.
func (s *Store) Read(ctx context.Context, id string) ([]byte, error) {
	bins, err := s.kv.Get(ctx, s.key(id))
	if errors.Is(err, store.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	data, ok := bins[dataBin].([]byte)
	if !ok {
		return nil, nil
	}
	return data, nil
}

// Write stores the payload under id and returns the session ID,
// generating a fresh one when id is empty. A non-positive lifetime
// falls back to the GC TTL.
func (s *Store) Write(ctx context.Context, id string, data []byte, lifetime time.Duration) (string, error) {
	if id == "" {
		id = uuid.NewString()
	}
	ttl := s.gcTTL
	if lifetime > 0 {
		ttl = ttlSeconds(lifetime)
	}
	if err := s.kv.Put(ctx, s.key(id), store.Bins{dataBin: data}, ttl); err != nil {
		return "", err
	}
	return id, nil
}

// Remove deletes the session. Removing an absent session is a no-op.
func (s *Store) Remove(ctx context.Context, id string) error {
	err := s.kv.Delete(ctx, s.key(id))
	if errors.Is(err, store.ErrNotFound) {
		return nil
	}
	return err
}

func (s *Store) key(id string) store.LogicalKey {
	return store.LogicalKey{Namespace: s.namespace, Set: s.set, ID: id}
}

// ttlSeconds rounds a lifetime up to whole seconds so sub-second
// lifetimes do not collapse into TTLNeverExpire.
func ttlSeconds(d time.Duration) store.TTL {
	return store.TTL((d + time.Second - 1) / time.Second)
}
