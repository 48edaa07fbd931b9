package store

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	aero "github.com/aerospike/aerospike-client-go/v7"
	"golang.org/x/sync/semaphore"
)

// Store lifecycle states.
const (
	stateUninitialized int32 = iota
	stateReady
	stateClosed
)

// Store provides key/value operations against an Aerospike cluster.
// It is safe for concurrent use; a single Store is meant to be created
// at process start, shared by all callers, and closed once at shutdown.
type Store struct {
	config Config

	// state transitions Uninitialized -> Ready -> Closed, driven by
	// Connect and Close. Operations require Ready.
	state atomic.Int32

	// connectMu serializes Connect so racing callers cannot publish
	// competing backends.
	connectMu sync.Mutex

	// sem bounds in-flight backend operations to PoolSize.
	sem *semaphore.Weighted

	// backend is set before the transition to Ready and read only
	// after observing it.
	backend backend

	// dial is swapped out by tests.
	dial func(*Config) (backend, error)
}

// New constructs a Store in the Uninitialized state. Call Connect
// before issuing operations.
func New(config Config) *Store {
	config.validate()
	return &Store{
		config: config,
		sem:    semaphore.NewWeighted(int64(config.PoolSize)),
		dial:   dialAerospike,
	}
}

// Connect establishes the backend handle, retrying per ConnectRetries
// with capped backoff. Safe to call once per process lifetime; calling
// it again is an explicit error rather than a silent no-op.
func (s *Store) Connect(ctx context.Context) error {
	s.connectMu.Lock()
	defer s.connectMu.Unlock()

	switch s.state.Load() {
	case stateReady:
		return ErrAlreadyConnected
	case stateClosed:
		return ErrClosed
	}

	var b backend
	attempt := 0
	err := withRetry(ctx, &s.config, s.config.ConnectRetries, func() error {
		attempt++
		var derr error
		b, derr = s.dial(&s.config)
		if derr != nil {
			s.config.Logger.Warnf(ctx, "aerospike not ready (attempt %d): %v", attempt, derr)
		}
		return derr
	})
	if err != nil {
		return err
	}

	// Holding connectMu, only a concurrent Close can have moved the
	// state since the check above.
	s.backend = b
	if !s.state.CompareAndSwap(stateUninitialized, stateReady) {
		b.close()
		return ErrClosed
	}
	s.config.Logger.Infof(ctx, "connected to aerospike at %v", s.config.Hosts)
	return nil
}

// Close releases all network resources. Idempotent and safe on any
// state, so process-termination paths can call it unconditionally.
func (s *Store) Close() error {
	if s.state.Swap(stateClosed) == stateReady {
		s.backend.close()
	}
	return nil
}

// Healthy is a non-blocking liveness probe for readiness checks. It
// never touches the operation path.
func (s *Store) Healthy() bool {
	return s.state.Load() == stateReady && s.backend.connected()
}

// Get returns the record at key, or ErrNotFound when absent. Absence is
// a normal outcome, distinct from transport failures.
func (s *Store) Get(ctx context.Context, key LogicalKey) (Bins, error) {
	k, err := s.physicalKey(key)
	if err != nil {
		return nil, err
	}
	if err := s.acquire(ctx); err != nil {
		return nil, err
	}
	defer s.sem.Release(1)

	var raw aero.BinMap
	err = withRetry(ctx, &s.config, s.config.MaxRetries, func() error {
		var gerr error
		raw, gerr = s.backend.get(ctx, k)
		return gerr
	})
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			s.config.Logger.Errorf(ctx, "get %s: %v", key, err)
		}
		return nil, err
	}
	return decodeBins(raw)
}

// Put writes a full record at key, replacing any existing record.
// Concurrent writers resolve by backend-arrival order (last writer
// wins). See the TTL type for the expiration convention.
func (s *Store) Put(ctx context.Context, key LogicalKey, value Bins, ttl TTL) error {
	if ttl < TTLServerDefault {
		return fmt.Errorf("%w: %d", ErrInvalidTTL, ttl)
	}
	k, err := s.physicalKey(key)
	if err != nil {
		return err
	}
	bins, err := encodeBins(value, s.config.MaxRecordSize)
	if err != nil {
		return err
	}
	if ttl == TTLServerDefault {
		ttl = s.config.DefaultTTL
	}
	exp := expirationFor(ttl)

	if err := s.acquire(ctx); err != nil {
		return err
	}
	defer s.sem.Release(1)

	err = withRetry(ctx, &s.config, s.config.MaxRetries, func() error {
		return s.backend.put(ctx, k, bins, exp)
	})
	if err != nil {
		s.config.Logger.Errorf(ctx, "put %s: %v", key, err)
	}
	return err
}

// Delete removes the record at key. Deleting an absent record returns
// ErrNotFound, a normal outcome rather than a failure; a second delete
// of the same key therefore reports ErrNotFound.
func (s *Store) Delete(ctx context.Context, key LogicalKey) error {
	k, err := s.physicalKey(key)
	if err != nil {
		return err
	}
	if err := s.acquire(ctx); err != nil {
		return err
	}
	defer s.sem.Release(1)

	var existed bool
	err = withRetry(ctx, &s.config, s.config.MaxRetries, func() error {
		var derr error
		existed, derr = s.backend.remove(ctx, k)
		return derr
	})
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			s.config.Logger.Errorf(ctx, "delete %s: %v", key, err)
		}
		return err
	}
	if !existed {
		return ErrNotFound
	}
	return nil
}

// Exists probes for a record without transferring its payload.
func (s *Store) Exists(ctx context.Context, key LogicalKey) (bool, error) {
	k, err := s.physicalKey(key)
	if err != nil {
		return false, err
	}
	if err := s.acquire(ctx); err != nil {
		return false, err
	}
	defer s.sem.Release(1)

	var found bool
	err = withRetry(ctx, &s.config, s.config.MaxRetries, func() error {
		var eerr error
		found, eerr = s.backend.exists(ctx, k)
		return eerr
	})
	if err != nil {
		s.config.Logger.Errorf(ctx, "exists %s: %v", key, err)
		return false, err
	}
	return found, nil
}

// physicalKey fills configured defaults and resolves the backend key.
// Validation failures never reach the network.
func (s *Store) physicalKey(k LogicalKey) (*aero.Key, error) {
	if k.Namespace == "" {
		k.Namespace = s.config.Namespace
	}
	if k.Set == "" {
		k.Set = s.config.DefaultSet
	}
	return buildKey(k, s.config.MaxKeyLength)
}

// acquire takes one pool slot, honoring the configured exhaustion
// policy. The caller releases the slot on every return path, so a
// timed-out operation never leaks one.
func (s *Store) acquire(ctx context.Context) error {
	if s.state.Load() != stateReady {
		return ErrNotReady
	}
	if s.config.FailFastOnPoolLimit {
		if !s.sem.TryAcquire(1) {
			return ErrPoolExhausted
		}
	} else if err := s.sem.Acquire(ctx, 1); err != nil {
		return fmt.Errorf("%w: %v", ErrTimeout, err)
	}
	// The store may have closed while we waited for a slot.
	if s.state.Load() != stateReady {
		s.sem.Release(1)
		return ErrNotReady
	}
	return nil
}
