package compare

import (
	"fmt"

	"github.com/vahanbazar/vahanbazar-backend/pkg/db/models"
)

// MaxCompareBikes is the hard cap on how many bikes one comparison holds.
const MaxCompareBikes = 3

// AbsentValue renders in a comparison cell when a bike lacks the spec key.
const AbsentValue = "—"

// Row is one spec row of the comparison table, with one value per input
// bike in input order.
type Row struct {
	Key    string   `json:"key"`
	Values []string `json:"values"`
}

// Table is the merged comparison result.
type Table struct {
	Bikes []models.Bike `json:"bikes"`
	Rows  []Row         `json:"rows"`
}

// Merge builds a comparison table over the union of spec keys. Keys keep
// first-seen order across the inputs in input order, with each bike
// contributing its own keys sorted; a bike without a key renders the
// absent sentinel.
func Merge(bikes []models.Bike) Table {
	var keys []string
	seen := make(map[string]bool)
	for i := range bikes {
		for _, key := range bikes[i].Specs.Keys() {
			if !seen[key] {
				seen[key] = true
				keys = append(keys, key)
			}
		}
	}

	rows := make([]Row, 0, len(keys))
	for _, key := range keys {
		values := make([]string, len(bikes))
		for i := range bikes {
			value, ok := bikes[i].Specs[key]
			if !ok || value == nil {
				values[i] = AbsentValue
				continue
			}
			values[i] = renderValue(value)
		}
		rows = append(rows, Row{Key: key, Values: values})
	}

	return Table{Bikes: bikes, Rows: rows}
}

func renderValue(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case float64:
		// JSON numbers decode as float64; drop the trailing .0 on integers.
		if v == float64(int64(v)) {
			return fmt.Sprintf("%d", int64(v))
		}
		return fmt.Sprintf("%g", v)
	case bool:
		return fmt.Sprintf("%t", v)
	default:
		return fmt.Sprintf("%v", v)
	}
}
