package enums

// NotificationKind categorizes in-app notifications.
type NotificationKind string

const (
	NotificationKindOrderPlaced NotificationKind = "order_placed"
)

// EventType identifies domain events on the order topic.
type EventType string

const (
	EventOrderCreated EventType = "order.created"
)

// String implements fmt.Stringer.
func (k NotificationKind) String() string {
	return string(k)
}
