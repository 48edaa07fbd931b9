package store

import (
	"fmt"

	aero "github.com/aerospike/aerospike-client-go/v7"
)

// Aerospike addressing limits.
const (
	maxNamespaceLen = 31
	maxSetLen       = 63
)

// LogicalKey identifies a record before backend encoding. Namespace and
// Set may be left empty to pick up the configured defaults; ID is an
// opaque byte-comparable string, checked only against MaxKeyLength.
type LogicalKey struct {
	Namespace string
	Set       string
	ID        string
}

func (k LogicalKey) String() string {
	return k.Namespace + "/" + k.Set + "/" + k.ID
}

// buildKey maps a logical key onto the backend addressing scheme.
// Pure and deterministic: equal logical keys yield equal physical keys.
func buildKey(k LogicalKey, maxKeyLen int) (*aero.Key, error) {
	if err := validateKey(k, maxKeyLen); err != nil {
		return nil, err
	}
	key, aerr := aero.NewKey(k.Namespace, k.Set, k.ID)
	if aerr != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidKey, aerr)
	}
	return key, nil
}

func validateKey(k LogicalKey, maxKeyLen int) error {
	switch {
	case k.Namespace == "":
		return fmt.Errorf("%w: empty namespace", ErrInvalidKey)
	case k.Set == "":
		return fmt.Errorf("%w: empty set", ErrInvalidKey)
	case k.ID == "":
		return fmt.Errorf("%w: empty identifier", ErrInvalidKey)
	case len(k.Namespace) > maxNamespaceLen:
		return fmt.Errorf("%w: namespace exceeds %d bytes", ErrInvalidKey, maxNamespaceLen)
	case len(k.Set) > maxSetLen:
		return fmt.Errorf("%w: set exceeds %d bytes", ErrInvalidKey, maxSetLen)
	case len(k.ID) > maxKeyLen:
		return fmt.Errorf("%w: identifier exceeds %d bytes", ErrInvalidKey, maxKeyLen)
	}
	if !addressable(k.Namespace) {
		return fmt.Errorf("%w: namespace %q contains illegal characters", ErrInvalidKey, k.Namespace)
	}
	if !addressable(k.Set) {
		return fmt.Errorf("%w: set %q contains illegal characters", ErrInvalidKey, k.Set)
	}
	return nil
}

// addressable reports whether s is usable in the backend addressing
// scheme: no control characters, no separators the tools choke on.
func addressable(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < 0x21 || c == 0x7f || c == ';' || c == ':' {
			return false
		}
	}
	return true
}
