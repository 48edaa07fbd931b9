package store

import "time"

// Config holds configuration for the Store.
type Config struct {
	// Hosts is the list of seed nodes as "host:port" addresses.
	// A bare "host" defaults to port 3000.
	// Default: ["127.0.0.1:3000"]
	Hosts []string

	// Namespace is the Aerospike namespace used when a LogicalKey
	// leaves its Namespace empty.
	// Default: "test"
	Namespace string

	// DefaultSet is the set used when a LogicalKey leaves its Set empty.
	// Default: "aerostore"
	DefaultSet string

	// ConnectTimeout bounds the initial cluster handshake.
	// Default: 5s
	ConnectTimeout time.Duration

	// ConnectRetries is the number of additional connection attempts
	// made by Connect before giving up.
	// Default: 3
	ConnectRetries int

	// OperationTimeout bounds a single backend call. A sooner context
	// deadline takes precedence.
	// Default: 2s
	OperationTimeout time.Duration

	// PoolSize bounds both the client connection queue and the number
	// of in-flight operations. Callers beyond the limit block until a
	// slot frees, or fail fast when FailFastOnPoolLimit is set.
	// Default: 64
	PoolSize int

	// FailFastOnPoolLimit makes operations return ErrPoolExhausted
	// instead of waiting for a pool slot.
	FailFastOnPoolLimit bool

	// DefaultTTL is applied when Put is called with TTLServerDefault.
	// Leave as TTLServerDefault to defer to the namespace default-ttl.
	DefaultTTL TTL

	// MaxRetries is the number of additional attempts for transient
	// failures (ErrConnection, ErrTimeout). Structural failures are
	// never retried.
	// Default: 2
	MaxRetries int

	// RetryBaseDelay is the initial backoff interval between retries.
	// Default: 50ms
	RetryBaseDelay time.Duration

	// RetryMaxDelay caps the exponential backoff interval.
	// Default: 500ms
	RetryMaxDelay time.Duration

	// MaxKeyLength bounds the LogicalKey identifier in bytes.
	// Default: 4096
	MaxKeyLength int

	// MaxRecordSize bounds the encoded record size in bytes. The
	// default matches the Aerospike write-block default.
	// Default: 1 MiB
	MaxRecordSize int

	// Logger receives operation diagnostics. Nil disables logging.
	Logger Logger
}

// DefaultConfig returns sensible defaults for a single local node.
func DefaultConfig() Config {
	return Config{
		Hosts:            []string{"127.0.0.1:3000"},
		Namespace:        "test",
		DefaultSet:       "aerostore",
		ConnectTimeout:   5 * time.Second,
		ConnectRetries:   3,
		OperationTimeout: 2 * time.Second,
		PoolSize:         64,
		DefaultTTL:       TTLServerDefault,
		MaxRetries:       2,
		RetryBaseDelay:   50 * time.Millisecond,
		RetryMaxDelay:    500 * time.Millisecond,
		MaxKeyLength:     4096,
		MaxRecordSize:    1 << 20,
	}
}

// validate ensures config values are within acceptable bounds.
func (c *Config) validate() {
	def := DefaultConfig()
	if len(c.Hosts) == 0 {
		c.Hosts = def.Hosts
	}
	if c.Namespace == "" {
		c.Namespace = def.Namespace
	}
	if c.DefaultSet == "" {
		c.DefaultSet = def.DefaultSet
	}
	if c.ConnectTimeout <= 0 {
		c.ConnectTimeout = def.ConnectTimeout
	}
	if c.ConnectRetries < 0 {
		c.ConnectRetries = 0
	}
	if c.OperationTimeout <= 0 {
		c.OperationTimeout = def.OperationTimeout
	}
	if c.PoolSize < 1 {
		c.PoolSize = def.PoolSize
	}
	if c.DefaultTTL < TTLServerDefault {
		c.DefaultTTL = TTLServerDefault
	}
	if c.MaxRetries < 0 {
		c.MaxRetries = 0
	}
	if c.RetryBaseDelay <= 0 {
		c.RetryBaseDelay = def.RetryBaseDelay
	}
	if c.RetryMaxDelay < c.RetryBaseDelay {
		c.RetryMaxDelay = c.RetryBaseDelay
	}
	if c.MaxKeyLength < 1 {
		c.MaxKeyLength = def.MaxKeyLength
	}
	if c.MaxRecordSize < 1 {
		c.MaxRecordSize = def.MaxRecordSize
	}
	if c.Logger == nil {
		c.Logger = noopLogger{}
	}
}
