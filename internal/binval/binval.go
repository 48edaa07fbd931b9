// Package binval validates and normalizes values against the supported
// Aerospike bin domain.
package binval

import (
	"fmt"
	"math"
)

// Normalize returns the canonical form of a bin value, or an error when
// the value falls outside the supported domain. Supported: string, bool,
// []byte, signed integers (canonical int64), unsigned integers that fit
// in int64, float32/float64 (canonical float64), and nested string-keyed
// maps over the same domain. The server hands nested maps back with
// interface{} keys, so those are accepted when every key is a string.
func Normalize(v any) (any, error) {
	switch x := v.(type) {
	case string:
		return x, nil
	case bool:
		return x, nil
	case []byte:
		return x, nil
	case int:
		return int64(x), nil
	case int8:
		return int64(x), nil
	case int16:
		return int64(x), nil
	case int32:
		return int64(x), nil
	case int64:
		return x, nil
	case uint8:
		return int64(x), nil
	case uint16:
		return int64(x), nil
	case uint32:
		return int64(x), nil
	case uint:
		if uint64(x) > math.MaxInt64 {
			return nil, fmt.Errorf("uint value %d overflows int64", x)
		}
		return int64(x), nil
	case uint64:
		if x > math.MaxInt64 {
			return nil, fmt.Errorf("uint64 value %d overflows int64", x)
		}
		return int64(x), nil
	case float32:
		return float64(x), nil
	case float64:
		return x, nil
	case map[string]any:
		out := make(map[string]any, len(x))
		for k, nested := range x {
			nv, err := Normalize(nested)
			if err != nil {
				return nil, fmt.Errorf("field %q: %w", k, err)
			}
			out[k] = nv
		}
		return out, nil
	case map[any]any:
		out := make(map[string]any, len(x))
		for k, nested := range x {
			ks, ok := k.(string)
			if !ok {
				return nil, fmt.Errorf("non-string map key %v (%T)", k, k)
			}
			nv, err := Normalize(nested)
			if err != nil {
				return nil, fmt.Errorf("field %q: %w", ks, err)
			}
			out[ks] = nv
		}
		return out, nil
	default:
		return nil, fmt.Errorf("unsupported type %T", v)
	}
}

// Size estimates the encoded byte size of a normalized value. It is an
// approximation of the wire footprint, good enough to reject records
// near the write-block limit before the backend does.
func Size(v any) int {
	switch x := v.(type) {
	case string:
		return len(x)
	case []byte:
		return len(x)
	case bool:
		return 1
	case int64, float64:
		return 8
	case map[string]any:
		total := 0
		for k, nested := range x {
			total += len(k) + Size(nested)
		}
		return total
	default:
		return 0
	}
}
