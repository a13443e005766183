package compare

import (
	"testing"

	"github.com/google/uuid"

	"github.com/vahanbazar/vahanbazar-backend/pkg/db/models"
	dbtypes "github.com/vahanbazar/vahanbazar-backend/pkg/db/types"
)

func specBike(name string, specs dbtypes.SpecMap) models.Bike {
	if specs == nil {
		specs = dbtypes.SpecMap{}
	}
	return models.Bike{ID: uuid.New(), Name: name, Specs: specs}
}

func TestMergeRowCountIsKeyUnion(t *testing.T) {
	a := specBike("A", dbtypes.SpecMap{"engineCC": 125.0, "mileage": 55.0})
	b := specBike("B", dbtypes.SpecMap{"mileage": 45.0, "range": 120.0})
	c := specBike("C", dbtypes.SpecMap{"battery": "3kWh"})

	table := Merge([]models.Bike{a, b, c})
	if len(table.Rows) != 4 {
		t.Fatalf("expected 4 rows (union of keys), got %d", len(table.Rows))
	}
	for _, row := range table.Rows {
		if len(row.Values) != 3 {
			t.Fatalf("row %s must have one value per bike, got %d", row.Key, len(row.Values))
		}
	}
}

func TestMergeAbsentValuesRenderSentinel(t *testing.T) {
	a := specBike("A", dbtypes.SpecMap{"engineCC": 125.0})
	b := specBike("B", dbtypes.SpecMap{"range": 120.0})

	table := Merge([]models.Bike{a, b})

	byKey := map[string]Row{}
	for _, row := range table.Rows {
		byKey[row.Key] = row
	}

	engine := byKey["engineCC"]
	if engine.Values[0] != "125" {
		t.Fatalf("expected rendered number, got %q", engine.Values[0])
	}
	if engine.Values[1] != AbsentValue {
		t.Fatalf("expected sentinel for absent key, got %q", engine.Values[1])
	}

	rng := byKey["range"]
	if rng.Values[0] != AbsentValue {
		t.Fatalf("expected sentinel, got %q", rng.Values[0])
	}
}

func TestMergeKeyOrderFirstSeenAcrossInputs(t *testing.T) {
	a := specBike("A", dbtypes.SpecMap{"engineCC": 125.0, "mileage": 55.0})
	b := specBike("B", dbtypes.SpecMap{"battery": "3kWh", "mileage": 45.0})

	table := Merge([]models.Bike{a, b})

	// Bike A's keys come first, then Bike B's new keys.
	want := []string{"engineCC", "mileage", "battery"}
	if len(table.Rows) != len(want) {
		t.Fatalf("expected %d rows, got %d", len(want), len(table.Rows))
	}
	for i, key := range want {
		if table.Rows[i].Key != key {
			t.Fatalf("row %d: got %q want %q", i, table.Rows[i].Key, key)
		}
	}
}

func TestMergeEmptyInput(t *testing.T) {
	table := Merge(nil)
	if len(table.Rows) != 0 {
		t.Fatalf("expected no rows, got %d", len(table.Rows))
	}
}

func TestMergeRendersMixedValueTypes(t *testing.T) {
	a := specBike("A", dbtypes.SpecMap{"abs": true, "weight": 101.5, "type": "commuter"})

	table := Merge([]models.Bike{a})
	byKey := map[string]string{}
	for _, row := range table.Rows {
		byKey[row.Key] = row.Values[0]
	}
	if byKey["abs"] != "true" {
		t.Fatalf("bool render: %q", byKey["abs"])
	}
	if byKey["weight"] != "101.5" {
		t.Fatalf("float render: %q", byKey["weight"])
	}
	if byKey["type"] != "commuter" {
		t.Fatalf("string render: %q", byKey["type"])
	}
}

func TestSetDedupAndCap(t *testing.T) {
	first := uuid.New()
	set := NewSet()

	if !set.Add(first) {
		t.Fatal("first add must succeed")
	}
	if set.Add(first) {
		t.Fatal("duplicate add must be a no-op")
	}
	set.Add(uuid.New())
	set.Add(uuid.New())
	if set.Add(uuid.New()) {
		t.Fatal("fourth add must be a no-op")
	}
	if set.Len() != MaxCompareBikes {
		t.Fatalf("expected %d entries, got %d", MaxCompareBikes, set.Len())
	}
}

func TestSetRemoveKeepsOrder(t *testing.T) {
	a, b, c := uuid.New(), uuid.New(), uuid.New()
	set := NewSet(a, b, c)

	if !set.Remove(b) {
		t.Fatal("remove of present id must succeed")
	}
	if set.Remove(b) {
		t.Fatal("second remove must be a no-op")
	}
	ids := set.IDs()
	if len(ids) != 2 || ids[0] != a || ids[1] != c {
		t.Fatalf("unexpected order after remove: %v", ids)
	}

	// Freed capacity can be reused.
	if !set.Add(uuid.New()) {
		t.Fatal("add after remove must succeed")
	}
}
