package services

import (
	"time"

	"justeat-backend/entity"
)

const (
	EventOrderPlaced        = "OrderPlaced"
	EventOrderStatusChanged = "OrderStatusChanged"
)

// OrderEvent is the fully-formed message handed to the external sink.
type OrderEvent struct {
	EventType   string             `json:"event_type"`
	OrderID     uint               `json:"order_id"`
	OrderNumber string             `json:"order_number"`
	CustomerID  uint               `json:"customer_id"`
	Status      entity.OrderStatus `json:"status"`
	Total       int64              `json:"total"`
	OccurredAt  time.Time          `json:"occurred_at"`
}

// Notifier is a one-way, best-effort sink. Send errors are logged by the
// caller and never fail the operation that produced the event.
type Notifier interface {
	Notify(ev OrderEvent) error
}

// NopNotifier drops every event; used when no broker is configured.
type NopNotifier struct{}

func (NopNotifier) Notify(OrderEvent) error { return nil }
