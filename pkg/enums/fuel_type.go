package enums

// FuelType categorizes catalog bikes. The set is open: dealers may add
// new fuel types over time, so values are not validated on write and
// the constants below only cover the common cases.
type FuelType string

const (
	FuelTypePetrol   FuelType = "Petrol"
	FuelTypeDiesel   FuelType = "Diesel"
	FuelTypeElectric FuelType = "Electric"
)

// String implements fmt.Stringer.
func (f FuelType) String() string {
	return string(f)
}
