package event

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
)

const TopicContentEvents = "content.events"

const (
	EventContentCreated = "content.created"
	EventContentUpdated = "content.updated"
	EventContentDeleted = "content.deleted"
)

// ContentEventPayload notifies workers that a collection changed so cached
// snapshots can be invalidated across replicas.
type ContentEventPayload struct {
	EventID    string    `json:"event_id"`
	EventType  string    `json:"event_type"`
	Collection string    `json:"collection"`
	EntityID   int64     `json:"entity_id"`
	OccurredAt time.Time `json:"occurred_at"`
}

// ContentEventPublisher is what the content use case depends on; the kafka
// client below is the production implementation.
type ContentEventPublisher interface {
	PublishContentEvent(ctx context.Context, eventType, collection string, entityID int64) error
}

type KafkaProducerClient struct {
	ContentEventsWriter *kafka.Writer
}

func NewKafkaProducerClient(brokers []string) (*KafkaProducerClient, error) {
	if len(brokers) == 0 {
		return nil, fmt.Errorf("config Kafka brokers not found")
	}

	writer := &kafka.Writer{
		Addr:     kafka.TCP(brokers...),
		Topic:    TopicContentEvents,
		Balancer: &kafka.LeastBytes{},
	}

	fmt.Println("Initialize Kafka Producer successfully.")

	return &KafkaProducerClient{ContentEventsWriter: writer}, nil
}

func (c *KafkaProducerClient) PublishContentEvent(ctx context.Context, eventType, collection string, entityID int64) error {
	payload := ContentEventPayload{
		EventID:    uuid.NewString(),
		EventType:  eventType,
		Collection: collection,
		EntityID:   entityID,
		OccurredAt: time.Now().UTC(),
	}

	value, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("cannot encode content event: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(collection),
		Value: value,
	}

	if err := c.ContentEventsWriter.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("cannot publish content event: %w", err)
	}
	return nil
}

func (c *KafkaProducerClient) Close() {
	if c.ContentEventsWriter != nil {
		c.ContentEventsWriter.Close()
	}
	fmt.Println("Closed Kafka Producer")
}
