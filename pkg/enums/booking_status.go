package enums

// BookingStatus tracks a test-ride booking.
type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// String implements fmt.Stringer.
func (s BookingStatus) String() string {
	return string(s)
}
