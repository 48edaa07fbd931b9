package store

import (
	"context"
	"fmt"
	"net"
	"strconv"
	"time"

	aero "github.com/aerospike/aerospike-client-go/v7"
	atypes "github.com/aerospike/aerospike-client-go/v7/types"
)

// backend abstracts the Aerospike client so operations can be exercised
// without a live cluster.
type backend interface {
	get(ctx context.Context, key *aero.Key) (aero.BinMap, error)
	put(ctx context.Context, key *aero.Key, bins aero.BinMap, expiration uint32) error
	remove(ctx context.Context, key *aero.Key) (bool, error)
	exists(ctx context.Context, key *aero.Key) (bool, error)
	connected() bool
	close()
}

// aeroBackend binds the adapter to aerospike-client-go.
type aeroBackend struct {
	client    *aero.Client
	opTimeout time.Duration
}

// dialAerospike establishes the cluster handle described by cfg.
func dialAerospike(cfg *Config) (backend, error) {
	hosts, err := parseHosts(cfg.Hosts)
	if err != nil {
		return nil, err
	}

	policy := aero.NewClientPolicy()
	policy.Timeout = cfg.ConnectTimeout
	policy.ConnectionQueueSize = cfg.PoolSize
	policy.LimitConnectionsToQueueSize = true

	client, aerr := aero.NewClientWithPolicyAndHost(policy, hosts...)
	if aerr != nil {
		return nil, fmt.Errorf("%w: %v", ErrConnection, aerr)
	}
	return &aeroBackend{client: client, opTimeout: cfg.OperationTimeout}, nil
}

// parseHosts turns "host:port" addresses into client hosts. A bare host
// gets the default port 3000.
func parseHosts(addrs []string) ([]*aero.Host, error) {
	hosts := make([]*aero.Host, 0, len(addrs))
	for _, addr := range addrs {
		host, portStr, err := net.SplitHostPort(addr)
		if err != nil {
			hosts = append(hosts, aero.NewHost(addr, 3000))
			continue
		}
		port, err := strconv.Atoi(portStr)
		if err != nil || port < 1 || port > 65535 {
			return nil, fmt.Errorf("aerostore: invalid host address %q", addr)
		}
		hosts = append(hosts, aero.NewHost(host, port))
	}
	return hosts, nil
}

// timeoutFor derives the per-call budget from the context deadline and
// the configured operation timeout, whichever is sooner.
func (b *aeroBackend) timeoutFor(ctx context.Context) time.Duration {
	t := b.opTimeout
	if deadline, ok := ctx.Deadline(); ok {
		if d := time.Until(deadline); d < t {
			t = d
		}
	}
	return t
}

// Client-side retries are disabled on every policy; the retry loop in
// the store owns that concern.
func (b *aeroBackend) readPolicy(ctx context.Context) *aero.BasePolicy {
	p := aero.NewPolicy()
	p.TotalTimeout = b.timeoutFor(ctx)
	p.MaxRetries = 0
	return p
}

func (b *aeroBackend) writePolicy(ctx context.Context, expiration uint32) *aero.WritePolicy {
	p := aero.NewWritePolicy(0, expiration)
	p.TotalTimeout = b.timeoutFor(ctx)
	p.MaxRetries = 0
	p.RecordExistsAction = aero.REPLACE
	return p
}

func (b *aeroBackend) get(ctx context.Context, key *aero.Key) (aero.BinMap, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTimeout, err)
	}
	rec, aerr := b.client.Get(b.readPolicy(ctx), key)
	if aerr != nil {
		return nil, mapAeroError(aerr)
	}
	if rec == nil {
		return nil, ErrNotFound
	}
	return rec.Bins, nil
}

func (b *aeroBackend) put(ctx context.Context, key *aero.Key, bins aero.BinMap, expiration uint32) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrTimeout, err)
	}
	return mapAeroError(b.client.Put(b.writePolicy(ctx, expiration), key, bins))
}

func (b *aeroBackend) remove(ctx context.Context, key *aero.Key) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, fmt.Errorf("%w: %v", ErrTimeout, err)
	}
	existed, aerr := b.client.Delete(b.writePolicy(ctx, uint32(aero.TTLServerDefault)), key)
	if aerr != nil {
		return false, mapAeroError(aerr)
	}
	return existed, nil
}

func (b *aeroBackend) exists(ctx context.Context, key *aero.Key) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, fmt.Errorf("%w: %v", ErrTimeout, err)
	}
	found, aerr := b.client.Exists(b.readPolicy(ctx), key)
	if aerr != nil {
		return false, mapAeroError(aerr)
	}
	return found, nil
}

func (b *aeroBackend) connected() bool { return b.client.IsConnected() }

func (b *aeroBackend) close() { b.client.Close() }

// mapAeroError folds client errors into the adapter taxonomy so the
// retry loop and callers only ever see sentinel classes.
func mapAeroError(err aero.Error) error {
	switch {
	case err == nil:
		return nil
	case err.Matches(atypes.KEY_NOT_FOUND_ERROR):
		return ErrNotFound
	case err.Matches(atypes.TIMEOUT, atypes.MAX_RETRIES_EXCEEDED):
		return fmt.Errorf("%w: %v", ErrTimeout, err)
	case err.Matches(
		atypes.NETWORK_ERROR,
		atypes.SERVER_NOT_AVAILABLE,
		atypes.INVALID_NODE_ERROR,
		atypes.NO_AVAILABLE_CONNECTIONS_TO_NODE,
	):
		return fmt.Errorf("%w: %v", ErrConnection, err)
	default:
		return err
	}
}

// expirationFor maps the documented TTL convention onto the client's
// expiration encoding.
func expirationFor(ttl TTL) uint32 {
	switch {
	case ttl == TTLServerDefault:
		return uint32(aero.TTLServerDefault)
	case ttl == TTLNeverExpire:
		return uint32(aero.TTLDontExpire)
	default:
		return uint32(ttl)
	}
}
