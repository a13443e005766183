package events

import (
	"time"

	"github.com/google/uuid"

	"github.com/vahanbazar/vahanbazar-backend/pkg/enums"
)

// Envelope wraps every published event with routing metadata. The
// event type also travels as a message attribute so consumers can
// filter without decoding the body.
type Envelope struct {
	EventID    uuid.UUID       `json:"event_id"`
	EventType  enums.EventType `json:"event_type"`
	OccurredAt time.Time       `json:"occurred_at"`
	Data       any             `json:"data"`
}

// OrderCreated is published after an order against a used listing
// commits. It carries everything the notification consumer needs so it
// never has to query the API database.
type OrderCreated struct {
	OrderID      uuid.UUID `json:"order_id"`
	ListingID    uuid.UUID `json:"listing_id"`
	ListingTitle string    `json:"listing_title"`
	SellerID     uuid.UUID `json:"seller_id"`
	BuyerID      uuid.UUID `json:"buyer_id"`
	BuyerName    string    `json:"buyer_name"`
	PriceAtOrder int       `json:"price_at_order"`
}
