package store

import (
	"fmt"

	aero "github.com/aerospike/aerospike-client-go/v7"

	"github.com/jacentio/aerostore/internal/binval"
)

// Aerospike bin-name limit.
const maxBinNameLen = 15

// Bins is the stored-value type: field name to scalar or nested mapping.
// Numbers are canonicalized on the way in (signed integers to int64,
// floats to float64), so decode(encode(v)) == v holds for every value
// encode accepts.
type Bins map[string]any

// encodeBins validates a value against the supported bin domain and the
// record size limit, producing the backend payload. Unsupported types
// fail with ErrSerialization rather than being coerced.
func encodeBins(v Bins, maxRecordSize int) (aero.BinMap, error) {
	if len(v) == 0 {
		return nil, fmt.Errorf("%w: empty value", ErrSerialization)
	}
	out := make(aero.BinMap, len(v))
	size := 0
	for name, raw := range v {
		if name == "" || len(name) > maxBinNameLen {
			return nil, fmt.Errorf("%w: bin name %q exceeds %d bytes", ErrSerialization, name, maxBinNameLen)
		}
		nv, err := binval.Normalize(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: bin %q: %v", ErrSerialization, name, err)
		}
		out[name] = nv
		size += len(name) + binval.Size(nv)
	}
	if size > maxRecordSize {
		return nil, fmt.Errorf("%w: record size %d exceeds limit %d", ErrSerialization, size, maxRecordSize)
	}
	return out, nil
}

// decodeBins maps a backend payload back into the supported domain.
// Exact inverse of encodeBins over every payload encodeBins accepts.
func decodeBins(raw aero.BinMap) (Bins, error) {
	if len(raw) == 0 {
		return nil, fmt.Errorf("%w: empty record", ErrDeserialization)
	}
	out := make(Bins, len(raw))
	for name, v := range raw {
		nv, err := binval.Normalize(v)
		if err != nil {
			return nil, fmt.Errorf("%w: bin %q: %v", ErrDeserialization, name, err)
		}
		out[name] = nv
	}
	return out, nil
}
