package notifications

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	pubsub "cloud.google.com/go/pubsub/v2"
	"github.com/google/uuid"

	"github.com/vahanbazar/vahanbazar-backend/internal/events"
	"github.com/vahanbazar/vahanbazar-backend/pkg/db/models"
	"github.com/vahanbazar/vahanbazar-backend/pkg/enums"
	"github.com/vahanbazar/vahanbazar-backend/pkg/logger"
)

type fakeCreateRepo struct {
	rows []*models.Notification
	err  error
}

func (f *fakeCreateRepo) Create(ctx context.Context, notification *models.Notification) error {
	if f.err != nil {
		return f.err
	}
	f.rows = append(f.rows, notification)
	return nil
}

type fakeDeduper struct {
	claimed map[string]bool
	err     error
}

func newFakeDeduper() *fakeDeduper {
	return &fakeDeduper{claimed: make(map[string]bool)}
}

func (f *fakeDeduper) SetNX(ctx context.Context, key string, value any, ttl time.Duration) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	if f.claimed[key] {
		return false, nil
	}
	f.claimed[key] = true
	return true, nil
}

func (f *fakeDeduper) CacheKey(parts ...string) string {
	key := "vb:cache"
	for _, p := range parts {
		key += ":" + p
	}
	return key
}

func testConsumer(repo createRepository, dedupe Deduper) *Consumer {
	return &Consumer{
		repo:   repo,
		dedupe: dedupe,
		logg:   logger.New(logger.Options{ServiceName: "notifications-test"}),
	}
}

func orderCreatedMessage(t *testing.T, eventID uuid.UUID, payload events.OrderCreated) *pubsub.Message {
	t.Helper()
	data, err := json.Marshal(events.Envelope{
		EventID:    eventID,
		EventType:  enums.EventOrderCreated,
		OccurredAt: time.Now(),
		Data:       payload,
	})
	if err != nil {
		t.Fatalf("marshal envelope: %v", err)
	}
	return &pubsub.Message{
		Data:       data,
		Attributes: map[string]string{"event_type": string(enums.EventOrderCreated)},
	}
}

func TestConsumerWritesSellerNotification(t *testing.T) {
	repo := &fakeCreateRepo{}
	consumer := testConsumer(repo, newFakeDeduper())

	seller := uuid.New()
	msg := orderCreatedMessage(t, uuid.New(), events.OrderCreated{
		OrderID:      uuid.New(),
		ListingID:    uuid.New(),
		ListingTitle: "Honda Shine 2019",
		SellerID:     seller,
		BuyerID:      uuid.New(),
		BuyerName:    "Asha",
		PriceAtOrder: 45000,
	})

	result := consumer.process(context.Background(), msg)
	if !result.ack || result.nack {
		t.Fatalf("expected ack, got %+v", result)
	}
	if len(repo.rows) != 1 {
		t.Fatalf("expected 1 notification, got %d", len(repo.rows))
	}
	row := repo.rows[0]
	if row.UserID != seller {
		t.Fatal("notification must target the seller")
	}
	if row.Kind != enums.NotificationKindOrderPlaced {
		t.Fatalf("unexpected kind %s", row.Kind)
	}
	if row.Body == "" || row.Title == "" {
		t.Fatal("notification text must be populated")
	}
}

func TestConsumerSkipsOtherEvents(t *testing.T) {
	repo := &fakeCreateRepo{}
	consumer := testConsumer(repo, newFakeDeduper())

	msg := &pubsub.Message{
		Data:       []byte(`{}`),
		Attributes: map[string]string{"event_type": "listing.approved"},
	}
	result := consumer.process(context.Background(), msg)
	if !result.ack {
		t.Fatal("unrelated events must be acked")
	}
	if len(repo.rows) != 0 {
		t.Fatal("unrelated events must not create notifications")
	}
}

func TestConsumerDeduplicatesRedeliveries(t *testing.T) {
	repo := &fakeCreateRepo{}
	consumer := testConsumer(repo, newFakeDeduper())

	eventID := uuid.New()
	payload := events.OrderCreated{SellerID: uuid.New(), BuyerName: "Asha", ListingTitle: "Shine"}

	first := consumer.process(context.Background(), orderCreatedMessage(t, eventID, payload))
	second := consumer.process(context.Background(), orderCreatedMessage(t, eventID, payload))
	if !first.ack || !second.ack {
		t.Fatal("both deliveries must ack")
	}
	if len(repo.rows) != 1 {
		t.Fatalf("expected a single notification, got %d", len(repo.rows))
	}
}

func TestConsumerAcksMalformedPayload(t *testing.T) {
	repo := &fakeCreateRepo{}
	consumer := testConsumer(repo, newFakeDeduper())

	msg := &pubsub.Message{
		Data:       []byte(`not json`),
		Attributes: map[string]string{"event_type": string(enums.EventOrderCreated)},
	}
	result := consumer.process(context.Background(), msg)
	if !result.ack {
		t.Fatal("malformed payloads must be acked, not retried")
	}
}

func TestConsumerNacksOnWriteFailure(t *testing.T) {
	repo := &fakeCreateRepo{err: context.DeadlineExceeded}
	consumer := testConsumer(repo, nil)

	msg := orderCreatedMessage(t, uuid.New(), events.OrderCreated{
		SellerID: uuid.New(), BuyerName: "Asha", ListingTitle: "Shine",
	})
	result := consumer.process(context.Background(), msg)
	if !result.nack {
		t.Fatal("persistent write failures must nack for redelivery")
	}
}
