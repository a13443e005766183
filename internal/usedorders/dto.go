package usedorders

import (
	"time"

	"github.com/google/uuid"

	"github.com/vahanbazar/vahanbazar-backend/pkg/enums"
)

// Actor identifies who is calling an order operation.
type Actor struct {
	UserID uuid.UUID
	Name   string
	Role   enums.Role
}

// CreateOrderInput captures a buyer's purchase intent.
type CreateOrderInput struct {
	ListingID  uuid.UUID
	BuyerName  string
	BuyerPhone string
	Actor      Actor
}

// UpdateStatusInput moves an order to any of the four statuses.
type UpdateStatusInput struct {
	OrderID uuid.UUID
	Status  string
	Actor   Actor
}

// OrderRow is an order joined with a summary of its listing. Listing
// fields are pointers because the listing may have been deleted after
// the order was placed.
type OrderRow struct {
	ID           uuid.UUID         `json:"id"`
	UsedID       uuid.UUID         `json:"used_id"`
	BuyerID      uuid.UUID         `json:"buyer_id"`
	BuyerName    string            `json:"buyer_name"`
	BuyerPhone   string            `json:"buyer_phone"`
	PriceAtOrder int               `json:"price_at_order"`
	Status       enums.OrderStatus `json:"status"`
	CreatedAt    time.Time         `json:"created_at"`
	ListingTitle *string           `json:"listing_title"`
	ListingBrand *string           `json:"listing_brand"`
	ListingModel *string           `json:"listing_model"`
	SellerID     *uuid.UUID        `json:"seller_id"`
}
