package store

// TTL controls record expiration, in seconds. Backends disagree on what
// zero and "absent" mean, so the convention here is explicit:
//
//   - TTLServerDefault: use the namespace default-ttl configured on the
//     server (or Config.DefaultTTL when set).
//   - TTLNeverExpire: the record never expires.
//   - n > 0: the record expires n seconds after the write.
//
// Values below TTLServerDefault fail with ErrInvalidTTL.
type TTL int32

const (
	// TTLServerDefault defers expiration to the namespace default-ttl.
	TTLServerDefault TTL = -1

	// TTLNeverExpire marks a record as never expiring.
	TTLNeverExpire TTL = 0
)
