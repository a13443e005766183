package usedorders

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/vahanbazar/vahanbazar-backend/internal/events"
	"github.com/vahanbazar/vahanbazar-backend/internal/used"
	"github.com/vahanbazar/vahanbazar-backend/pkg/db/models"
	"github.com/vahanbazar/vahanbazar-backend/pkg/enums"
	pkgerrors "github.com/vahanbazar/vahanbazar-backend/pkg/errors"
	"github.com/vahanbazar/vahanbazar-backend/pkg/logger"
	"github.com/vahanbazar/vahanbazar-backend/pkg/metrics"
)

// Service defines order operations over used-bike listings.
type Service interface {
	Create(ctx context.Context, input CreateOrderInput) (*models.UsedOrder, error)
	ListMine(ctx context.Context, actor Actor) ([]OrderRow, error)
	ListForReview(ctx context.Context, actor Actor) ([]OrderRow, error)
	UpdateStatus(ctx context.Context, input UpdateStatusInput) (*models.UsedOrder, error)
}

// ServiceParams collects the dependencies the order service needs.
type ServiceParams struct {
	Repo      Repository
	Listings  used.Repository
	Tx        txRunner
	Publisher events.Publisher
	Logger    *logger.Logger
	Metrics   *metrics.EventMetrics
}

type service struct {
	repo      Repository
	listings  used.Repository
	tx        txRunner
	publisher events.Publisher
	logg      *logger.Logger
	metrics   *metrics.EventMetrics
}

// NewService builds an order service with the required dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.Repo == nil {
		return nil, fmt.Errorf("orders repository required")
	}
	if params.Listings == nil {
		return nil, fmt.Errorf("listings repository required")
	}
	if params.Tx == nil {
		return nil, fmt.Errorf("transaction runner required")
	}
	if params.Publisher == nil {
		return nil, fmt.Errorf("event publisher required")
	}
	if params.Logger == nil {
		return nil, fmt.Errorf("logger required")
	}
	return &service{
		repo:      params.Repo,
		listings:  params.Listings,
		tx:        params.Tx,
		publisher: params.Publisher,
		logg:      params.Logger,
		metrics:   params.Metrics,
	}, nil
}

// Create places an order against an approved listing. The status check
// and the insert run in one transaction so a listing cannot be sold out
// from under a concurrent buyer between check and insert. The price is
// snapshotted at creation and never recomputed.
func (s *service) Create(ctx context.Context, input CreateOrderInput) (*models.UsedOrder, error) {
	if input.Actor.UserID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "user identity missing")
	}
	if input.ListingID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "listing id required")
	}
	if strings.TrimSpace(input.BuyerName) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "buyer name required")
	}
	if strings.TrimSpace(input.BuyerPhone) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "buyer phone required")
	}

	var order *models.UsedOrder
	var listing *models.UsedListing

	err := s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		listings := s.listings.WithTx(tx)
		found, err := listings.FindByID(ctx, input.ListingID)
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				return pkgerrors.New(pkgerrors.CodeNotFound, "listing not found")
			}
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load listing")
		}
		if found.Status != enums.ListingStatusApproved {
			return pkgerrors.New(pkgerrors.CodeInvalidState, "listing not available for order")
		}
		listing = found

		created, err := s.repo.WithTx(tx).Create(ctx, &models.UsedOrder{
			UsedID:       found.ID,
			BuyerID:      input.Actor.UserID,
			BuyerName:    strings.TrimSpace(input.BuyerName),
			BuyerPhone:   strings.TrimSpace(input.BuyerPhone),
			PriceAtOrder: found.Price,
			Status:       enums.OrderStatusPending,
		})
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create order")
		}
		order = created
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.metrics.IncOrderPlaced(order.Status.String())
	s.notifySeller(ctx, order, listing)
	return order, nil
}

// notifySeller publishes the order event without blocking the request.
// A failed publish is logged and dropped; the order already committed.
func (s *service) notifySeller(ctx context.Context, order *models.UsedOrder, listing *models.UsedListing) {
	event := events.OrderCreated{
		OrderID:      order.ID,
		ListingID:    listing.ID,
		ListingTitle: listing.Title,
		SellerID:     listing.OwnerID,
		BuyerID:      order.BuyerID,
		BuyerName:    order.BuyerName,
		PriceAtOrder: order.PriceAtOrder,
	}

	logCtx := s.logg.WithFields(context.WithoutCancel(ctx), map[string]any{
		"order_id":   order.ID.String(),
		"listing_id": listing.ID.String(),
	})
	go func() {
		if err := s.publisher.PublishOrderCreated(logCtx, event); err != nil {
			s.metrics.IncPublishFailure(string(enums.EventOrderCreated))
			s.logg.Error(logCtx, "seller notification publish failed", err)
			return
		}
		s.logg.Info(logCtx, "seller notification published")
	}()
}

func (s *service) ListMine(ctx context.Context, actor Actor) ([]OrderRow, error) {
	if actor.UserID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "user identity missing")
	}
	rows, err := s.repo.ListByBuyer(ctx, actor.UserID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list own orders")
	}
	return rows, nil
}

func (s *service) ListForReview(ctx context.Context, actor Actor) ([]OrderRow, error) {
	if !actor.Role.IsReviewer() {
		return nil, pkgerrors.New(pkgerrors.CodeForbidden, "dealer or admin role required")
	}
	rows, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list orders")
	}
	return rows, nil
}

// UpdateStatus moves the order to any of the four statuses. The
// transition graph is intentionally unrestricted: a cancelled order can
// be re-confirmed by a reviewer working a support case.
func (s *service) UpdateStatus(ctx context.Context, input UpdateStatusInput) (*models.UsedOrder, error) {
	if !input.Actor.Role.IsReviewer() {
		return nil, pkgerrors.New(pkgerrors.CodeForbidden, "dealer or admin role required")
	}
	if input.OrderID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "order id required")
	}
	status, err := enums.ParseOrderStatus(input.Status)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid order status")
	}

	order, err := s.repo.FindByID(ctx, input.OrderID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "order not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load order")
	}

	if order.Status != status {
		if err := s.repo.UpdateStatus(ctx, order.ID, status); err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update order status")
		}
		order.Status = status
	}
	return order, nil
}
