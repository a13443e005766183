package recommend

import (
	"math"
	"testing"

	"github.com/vahanbazar/vahanbazar-backend/pkg/db/models"
	dbtypes "github.com/vahanbazar/vahanbazar-backend/pkg/db/types"
)

func bikeWith(brand string, price int, specs dbtypes.SpecMap) *models.Bike {
	if specs == nil {
		specs = dbtypes.SpecMap{}
	}
	return &models.Bike{Brand: brand, Price: price, Specs: specs}
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestScoreMaxAttainable(t *testing.T) {
	a := bikeWith("Honda", 80000, nil)
	b := bikeWith("Honda", 80000, nil)

	got := Score(a, b)
	if !almostEqual(got, 6.5) {
		t.Fatalf("identical brand and price with empty specs must score 6.5, got %f", got)
	}
	if !almostEqual(got, MaxAttainableScore) {
		t.Fatalf("max attainable constant out of sync: %f", MaxAttainableScore)
	}
}

func TestScoreIsSymmetric(t *testing.T) {
	a := bikeWith("Honda", 80000, dbtypes.SpecMap{"engineCC": 125.0, "mileage": 55.0})
	b := bikeWith("Yamaha", 120000, dbtypes.SpecMap{"engineCC": 155.0, "mileage": 45.0})

	if got, rev := Score(a, b), Score(b, a); !almostEqual(got, rev) {
		t.Fatalf("score must be symmetric: %f vs %f", got, rev)
	}
}

func TestScoreBrandMatchIsCaseInsensitive(t *testing.T) {
	a := bikeWith("honda", 80000, nil)
	b := bikeWith("HONDA", 80000, nil)

	if got := Score(a, b); !almostEqual(got, 6.5) {
		t.Fatalf("case-insensitive brand match expected, got %f", got)
	}
}

func TestScorePriceProximityDecays(t *testing.T) {
	a := bikeWith("Honda", 80000, nil)
	b := bikeWith("Yamaha", 130000, nil)

	// brand 0 + price (2 - 50000/50000 = 1) + engine 1.5 + mileage 1
	if got := Score(a, b); !almostEqual(got, 3.5) {
		t.Fatalf("expected 3.5, got %f", got)
	}
}

func TestScoreComponentsClampAtZero(t *testing.T) {
	a := bikeWith("Honda", 0, dbtypes.SpecMap{"engineCC": 100.0, "mileage": 80.0})
	b := bikeWith("Yamaha", 500000, dbtypes.SpecMap{"engineCC": 1000.0, "mileage": 10.0})

	// every proximity component exhausted, brands differ
	if got := Score(a, b); !almostEqual(got, 0) {
		t.Fatalf("expected 0, got %f", got)
	}
}

func TestScoreNonNumericSpecsCoerceToZero(t *testing.T) {
	a := bikeWith("Honda", 80000, dbtypes.SpecMap{"engineCC": "not-a-number", "mileage": 50.0})
	b := bikeWith("Honda", 80000, dbtypes.SpecMap{"mileage": 50.0})

	// engineCC coerces to 0 on both sides, so the engine component is full.
	if got := Score(a, b); !almostEqual(got, 6.5) {
		t.Fatalf("expected 6.5, got %f", got)
	}
}
