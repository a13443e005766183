package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	gcppubsub "cloud.google.com/go/pubsub/v2"
	"github.com/google/uuid"

	"github.com/vahanbazar/vahanbazar-backend/pkg/enums"
)

// Publisher emits domain events. Implementations must be safe for
// concurrent use.
type Publisher interface {
	PublishOrderCreated(ctx context.Context, event OrderCreated) error
}

type topicPublisher interface {
	Publish(ctx context.Context, msg *gcppubsub.Message) *gcppubsub.PublishResult
}

type pubsubPublisher struct {
	topic   topicPublisher
	timeout time.Duration
}

// NewPubSubPublisher wraps a Pub/Sub topic publisher. The timeout bounds
// how long a single publish waits for broker confirmation.
func NewPubSubPublisher(topic topicPublisher, timeout time.Duration) (Publisher, error) {
	if topic == nil {
		return nil, fmt.Errorf("pubsub topic publisher required")
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &pubsubPublisher{topic: topic, timeout: timeout}, nil
}

func (p *pubsubPublisher) PublishOrderCreated(ctx context.Context, event OrderCreated) error {
	envelope := Envelope{
		EventID:    uuid.New(),
		EventType:  enums.EventOrderCreated,
		OccurredAt: time.Now().UTC(),
		Data:       event,
	}
	payload, err := json.Marshal(envelope)
	if err != nil {
		return fmt.Errorf("marshal order created event: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	result := p.topic.Publish(ctx, &gcppubsub.Message{
		Data: payload,
		Attributes: map[string]string{
			"event_type": string(enums.EventOrderCreated),
		},
	})
	if _, err := result.Get(ctx); err != nil {
		return fmt.Errorf("publish order created event: %w", err)
	}
	return nil
}

// NopPublisher drops every event. Used when eventing is disabled.
type NopPublisher struct{}

func (NopPublisher) PublishOrderCreated(context.Context, OrderCreated) error { return nil }
