package notify

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"justeat-backend/services"
)

// Envelope wraps an order event for the broker. Consumers key off
// event_type; correlation_id carries the order number.
type Envelope struct {
	EventID       string          `json:"event_id"`
	EventType     string          `json:"event_type"`
	EventVersion  int             `json:"event_version"`
	OccurredAt    time.Time       `json:"occurred_at"`
	Producer      string          `json:"producer"`
	CorrelationID string          `json:"correlation_id"`
	Payload       json.RawMessage `json:"payload"`
}

// KafkaNotifier publishes order events asynchronously. Delivery failures are
// logged by the writer; callers never block on the broker.
type KafkaNotifier struct {
	w *kafka.Writer
}

func NewKafkaNotifier(brokers []string, topic string) *KafkaNotifier {
	return &KafkaNotifier{
		w: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireOne,
			Async:        true,
			ErrorLogger: kafka.LoggerFunc(func(msg string, args ...any) {
				log.Printf("kafka notifier: "+msg, args...)
			}),
		},
	}
}

func (n *KafkaNotifier) Notify(ev services.OrderEvent) error {
	payload, err := json.Marshal(ev)
	if err != nil {
		return err
	}
	body, err := json.Marshal(Envelope{
		EventID:       uuid.NewString(),
		EventType:     ev.EventType,
		EventVersion:  1,
		OccurredAt:    ev.OccurredAt,
		Producer:      "justeat-backend",
		CorrelationID: ev.OrderNumber,
		Payload:       payload,
	})
	if err != nil {
		return err
	}
	return n.w.WriteMessages(context.Background(), kafka.Message{
		Key:   []byte(ev.OrderNumber),
		Value: body,
		Time:  ev.OccurredAt,
	})
}

// Close flushes buffered messages before shutdown.
func (n *KafkaNotifier) Close() error { return n.w.Close() }
