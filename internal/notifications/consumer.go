package notifications

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	pubsub "cloud.google.com/go/pubsub/v2"
	"github.com/google/uuid"

	"github.com/vahanbazar/vahanbazar-backend/internal/events"
	"github.com/vahanbazar/vahanbazar-backend/pkg/db/models"
	"github.com/vahanbazar/vahanbazar-backend/pkg/enums"
	"github.com/vahanbazar/vahanbazar-backend/pkg/logger"
	"github.com/vahanbazar/vahanbazar-backend/pkg/metrics"
)

// How long a processed event id blocks redelivery duplicates.
const dedupeTTL = 24 * time.Hour

type createRepository interface {
	Create(ctx context.Context, notification *models.Notification) error
}

// Deduper is the subset of the redis client used to drop redelivered
// events.
type Deduper interface {
	SetNX(ctx context.Context, key string, value any, ttl time.Duration) (bool, error)
	CacheKey(parts ...string) string
}

// Consumer watches the order event topic and turns order.created
// events into seller notifications.
type Consumer struct {
	repo         createRepository
	subscription *pubsub.Subscriber
	dedupe       Deduper
	logg         *logger.Logger
	metrics      *metrics.EventMetrics
}

// NewConsumer builds an order notification consumer. Dedupe may be nil
// when redis is not configured; duplicate deliveries then produce
// duplicate notification rows, which the product tolerates.
func NewConsumer(repo createRepository, subscription *pubsub.Subscriber, dedupe Deduper, logg *logger.Logger, eventMetrics *metrics.EventMetrics) (*Consumer, error) {
	if repo == nil {
		return nil, fmt.Errorf("notifications repository required")
	}
	if subscription == nil {
		return nil, fmt.Errorf("orders subscription required")
	}
	if logg == nil {
		return nil, fmt.Errorf("logger required")
	}
	return &Consumer{
		repo:         repo,
		subscription: subscription,
		dedupe:       dedupe,
		logg:         logg,
		metrics:      eventMetrics,
	}, nil
}

// Run starts the consumer loop until the context is canceled.
func (c *Consumer) Run(ctx context.Context) error {
	return c.subscription.Receive(ctx, func(ctx context.Context, msg *pubsub.Message) {
		result := c.process(ctx, msg)
		if result.nack {
			msg.Nack()
			return
		}
		msg.Ack()
	})
}

type processResult struct {
	ack  bool
	nack bool
}

// wireEnvelope mirrors events.Envelope with the payload left raw so it
// can be decoded per event type.
type wireEnvelope struct {
	EventID    uuid.UUID       `json:"event_id"`
	EventType  enums.EventType `json:"event_type"`
	OccurredAt time.Time       `json:"occurred_at"`
	Data       json.RawMessage `json:"data"`
}

func (c *Consumer) process(ctx context.Context, msg *pubsub.Message) processResult {
	started := time.Now()
	eventType := msg.Attributes["event_type"]
	logCtx := c.logg.WithFields(ctx, map[string]any{
		"message_id": msg.ID,
		"event_type": eventType,
	})
	defer func() {
		c.metrics.ObserveConsumeDuration(eventType, time.Since(started))
	}()

	if eventType != string(enums.EventOrderCreated) {
		c.logg.Info(logCtx, "skipping non-order event")
		c.metrics.IncNotification("skipped")
		return processResult{ack: true}
	}

	var envelope wireEnvelope
	if err := json.Unmarshal(msg.Data, &envelope); err != nil {
		c.logg.Error(logCtx, "failed to decode envelope", err)
		c.metrics.IncNotification("malformed")
		return processResult{ack: true}
	}
	if envelope.EventID == uuid.Nil {
		c.logg.Error(logCtx, "envelope missing event id", nil)
		c.metrics.IncNotification("malformed")
		return processResult{ack: true}
	}

	fresh, err := c.claim(ctx, envelope.EventID)
	if err != nil {
		c.logg.Error(logCtx, "dedupe check failed", err)
		return processResult{nack: true}
	}
	if !fresh {
		c.logg.Info(logCtx, "event already processed")
		c.metrics.IncNotification("duplicate")
		return processResult{ack: true}
	}

	var payload events.OrderCreated
	if err := json.Unmarshal(envelope.Data, &payload); err != nil {
		c.logg.Error(logCtx, "failed to parse order payload", err)
		c.metrics.IncNotification("malformed")
		return processResult{ack: true}
	}

	logCtx = c.logg.WithFields(logCtx, map[string]any{
		"order_id":  payload.OrderID.String(),
		"seller_id": payload.SellerID.String(),
	})

	if err := c.notifySeller(ctx, payload); err != nil {
		c.logg.Error(logCtx, "failed to write seller notification", err)
		c.metrics.IncNotification("failed")
		return processResult{nack: true}
	}

	c.logg.Info(logCtx, "seller notified of new order")
	c.metrics.IncNotification("written")
	return processResult{ack: true}
}

// claim marks the event id as processed. Returns false when another
// delivery already claimed it.
func (c *Consumer) claim(ctx context.Context, eventID uuid.UUID) (bool, error) {
	if c.dedupe == nil {
		return true, nil
	}
	key := c.dedupe.CacheKey("order-events", eventID.String())
	return c.dedupe.SetNX(ctx, key, "1", dedupeTTL)
}

func (c *Consumer) notifySeller(ctx context.Context, payload events.OrderCreated) error {
	if payload.SellerID == uuid.Nil {
		return fmt.Errorf("seller id missing")
	}
	title := "New order on your listing"
	body := fmt.Sprintf("%s placed an order on %q at ₹%d.", payload.BuyerName, payload.ListingTitle, payload.PriceAtOrder)
	return c.repo.Create(ctx, &models.Notification{
		UserID: payload.SellerID,
		Kind:   enums.NotificationKindOrderPlaced,
		Title:  title,
		Body:   body,
	})
}
