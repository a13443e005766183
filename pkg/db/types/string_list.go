package dbtypes

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// StringList is an ordered list of strings stored as a JSON column,
// used for listing image URLs and showroom brand rosters.
type StringList []string

// Scan decodes the stored JSON. Malformed payloads degrade to an empty
// list rather than failing the row read.
func (l *StringList) Scan(src any) error {
	if src == nil {
		*l = StringList{}
		return nil
	}

	var raw []byte
	switch v := src.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("StringList: unsupported Scan type %T", src)
	}

	var decoded []string
	if err := json.Unmarshal(raw, &decoded); err != nil {
		*l = StringList{}
		return nil
	}
	*l = decoded
	return nil
}

// Value marshals the list into JSON for storage.
func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	out, err := json.Marshal([]string(l))
	if err != nil {
		return nil, fmt.Errorf("StringList: marshal: %w", err)
	}
	return string(out), nil
}
