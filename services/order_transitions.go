package services

import (
	"errors"
	"fmt"
	"log"
	"time"

	"gorm.io/gorm"

	"justeat-backend/entity"
)

// UpdateStatus advances an order along the pending → confirmed → preparing →
// ready → delivered chain (or cancels it from any non-terminal state). Only
// the owner of the order's restaurant may transition it.
//
// The notification to the customer is emitted after the commit and is
// best-effort: a failed send is logged, never rolled into the result.
func (s *OrderService) UpdateStatus(ownerID, orderID uint, to entity.OrderStatus) error {
	if !to.Valid() {
		return fmt.Errorf("%w: unknown status %q", ErrValidation, to)
	}

	o, err := s.Repo.GetOrder(orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: order", ErrNotFound)
		}
		return err
	}
	ok, err := s.RestRepo.IsOwnedBy(o.RestaurantID, ownerID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrUnauthorized
	}

	from := o.Status
	if !entity.CanTransition(from, to) {
		return ErrInvalidTransition
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		// guarded update: a racing transition flipped the status first
		affected, err := s.Repo.UpdateStatusGuard(tx, o.ID, from, to)
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrInvalidTransition
		}
		return nil
	})
	if err != nil {
		return err
	}

	ev := OrderEvent{
		EventType:   EventOrderStatusChanged,
		OrderID:     o.ID,
		OrderNumber: o.OrderNumber,
		CustomerID:  o.CustomerID,
		Status:      to,
		Total:       o.Total,
		OccurredAt:  time.Now().UTC(),
	}
	if err := s.Notifier.Notify(ev); err != nil {
		log.Printf("order %s: status notification failed: %v", o.OrderNumber, err)
	}
	return nil
}
