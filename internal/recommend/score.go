package recommend

import (
	"math"
	"strings"

	"github.com/vahanbazar/vahanbazar-backend/pkg/db/models"
)

// Weight constants for the content-based similarity score. The maximum
// attainable score is 6.5: brand 2.0 + price 2.0 + engine 1.5 + mileage 1.0.
const (
	brandWeight        = 2.0
	priceWeight        = 2.0
	priceScale         = 50000.0
	engineWeight       = 1.5
	engineScale        = 50.0
	mileageWeight      = 1.0
	mileageScale       = 10.0
	MaxAttainableScore = brandWeight + priceWeight + engineWeight + mileageWeight
)

// Score computes how similar a candidate bike is to the reference.
// Missing or non-numeric spec values coerce to zero rather than erroring,
// so two bikes with no specs still compare on brand and price alone.
func Score(ref, cand *models.Bike) float64 {
	score := 0.0

	if strings.EqualFold(ref.Brand, cand.Brand) {
		score += brandWeight
	}

	priceDelta := math.Abs(float64(ref.Price) - float64(cand.Price))
	score += math.Max(0, priceWeight-priceDelta/priceScale)

	engineDelta := math.Abs(ref.Specs.Number("engineCC") - cand.Specs.Number("engineCC"))
	score += math.Max(0, engineWeight-engineDelta/engineScale)

	mileageDelta := math.Abs(ref.Specs.Number("mileage") - cand.Specs.Number("mileage"))
	score += math.Max(0, mileageWeight-mileageDelta/mileageScale)

	return score
}
