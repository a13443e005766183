package dbtypes

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
)

// SpecMap is a schema-less attribute map stored as a JSON column.
// Catalog entries carry wildly different keys (a petrol bike has
// engineCC/mileage, an EV has range/battery), so no struct is imposed.
type SpecMap map[string]any

// Scan decodes the stored JSON. Malformed payloads degrade to an empty
// map rather than failing the row read.
func (m *SpecMap) Scan(src any) error {
	if src == nil {
		*m = SpecMap{}
		return nil
	}

	var raw []byte
	switch v := src.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("SpecMap: unsupported Scan type %T", src)
	}

	decoded := map[string]any{}
	if err := json.Unmarshal(raw, &decoded); err != nil {
		*m = SpecMap{}
		return nil
	}
	*m = decoded
	return nil
}

// Value marshals the map into JSON for storage.
func (m SpecMap) Value() (driver.Value, error) {
	if m == nil {
		return "{}", nil
	}
	out, err := json.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("SpecMap: marshal: %w", err)
	}
	return string(out), nil
}

// Keys returns the map keys in sorted order. Map iteration order is not
// stable, and callers building tables need a deterministic sequence.
func (m SpecMap) Keys() []string {
	if len(m) == 0 {
		return nil
	}
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Number returns the value under key coerced to float64. Absent keys,
// non-numeric values and unparseable strings all coerce to 0.
func (m SpecMap) Number(key string) float64 {
	if m == nil {
		return 0
	}
	switch v := m[key].(type) {
	case float64:
		return v
	case float32:
		return float64(v)
	case int:
		return float64(v)
	case int64:
		return float64(v)
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return 0
		}
		return f
	case string:
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}
