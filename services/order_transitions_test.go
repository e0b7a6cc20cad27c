package services

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"justeat-backend/entity"
)

func seedOrder(t *testing.T, db *gorm.DB, restID, customerID uint, status entity.OrderStatus) *entity.Order {
	t.Helper()
	o := &entity.Order{
		OrderNumber:  newOrderNumber(customerID),
		Status:       status,
		Total:        1000,
		CustomerID:   customerID,
		RestaurantID: restID,
	}
	require.NoError(t, db.Create(o).Error)
	return o
}

func TestUpdateStatusForwardChain(t *testing.T) {
	db := newTestDB(t)
	owner := createUser(t, db, "owner@test", "owner")
	customer := createUser(t, db, "cust@test", "customer")
	rest := createRestaurant(t, db, "Pizza Palace", owner.ID)
	o := seedOrder(t, db, rest.ID, customer.ID, entity.StatusPending)

	notifier := &recordingNotifier{}
	svc := newOrderService(db, notifier)

	chain := []entity.OrderStatus{
		entity.StatusConfirmed,
		entity.StatusPreparing,
		entity.StatusReady,
		entity.StatusDelivered,
	}
	for _, next := range chain {
		require.NoError(t, svc.UpdateStatus(owner.ID, o.ID, next))
		var got entity.Order
		require.NoError(t, db.First(&got, o.ID).Error)
		assert.Equal(t, next, got.Status)
	}

	events := notifier.Events()
	require.Len(t, events, len(chain))
	for i, ev := range events {
		assert.Equal(t, EventOrderStatusChanged, ev.EventType)
		assert.Equal(t, chain[i], ev.Status)
		assert.Equal(t, o.OrderNumber, ev.OrderNumber)
	}
}

func TestUpdateStatusRejectsSkipsAndBackwardMoves(t *testing.T) {
	db := newTestDB(t)
	owner := createUser(t, db, "owner@test", "owner")
	customer := createUser(t, db, "cust@test", "customer")
	rest := createRestaurant(t, db, "Pizza Palace", owner.ID)

	cases := []struct {
		from, to entity.OrderStatus
	}{
		{entity.StatusPending, entity.StatusPreparing}, // skip
		{entity.StatusPending, entity.StatusDelivered}, // skip to end
		{entity.StatusPreparing, entity.StatusPending}, // backward
		{entity.StatusReady, entity.StatusConfirmed},   // backward
	}
	svc := newOrderService(db, nil)
	for _, tc := range cases {
		o := seedOrder(t, db, rest.ID, customer.ID, tc.from)
		err := svc.UpdateStatus(owner.ID, o.ID, tc.to)
		assert.ErrorIs(t, err, ErrValidation, "%s -> %s must be rejected", tc.from, tc.to)

		var got entity.Order
		require.NoError(t, db.First(&got, o.ID).Error)
		assert.Equal(t, tc.from, got.Status)
	}
}

func TestUpdateStatusCancelRules(t *testing.T) {
	db := newTestDB(t)
	owner := createUser(t, db, "owner@test", "owner")
	customer := createUser(t, db, "cust@test", "customer")
	rest := createRestaurant(t, db, "Pizza Palace", owner.ID)

	svc := newOrderService(db, nil)

	// cancellable from every non-terminal state
	for _, from := range []entity.OrderStatus{
		entity.StatusPending, entity.StatusConfirmed, entity.StatusPreparing, entity.StatusReady,
	} {
		o := seedOrder(t, db, rest.ID, customer.ID, from)
		require.NoError(t, svc.UpdateStatus(owner.ID, o.ID, entity.StatusCancelled), "cancel from %s", from)
	}

	// terminal states accept nothing
	for _, from := range []entity.OrderStatus{entity.StatusDelivered, entity.StatusCancelled} {
		o := seedOrder(t, db, rest.ID, customer.ID, from)
		err := svc.UpdateStatus(owner.ID, o.ID, entity.StatusCancelled)
		assert.ErrorIs(t, err, ErrValidation, "%s is terminal", from)
	}
}

func TestUpdateStatusRequiresOwningRestaurant(t *testing.T) {
	db := newTestDB(t)
	owner := createUser(t, db, "owner@test", "owner")
	intruder := createUser(t, db, "other-owner@test", "owner")
	customer := createUser(t, db, "cust@test", "customer")
	rest := createRestaurant(t, db, "Pizza Palace", owner.ID)
	o := seedOrder(t, db, rest.ID, customer.ID, entity.StatusPending)

	svc := newOrderService(db, nil)
	err := svc.UpdateStatus(intruder.ID, o.ID, entity.StatusConfirmed)
	assert.ErrorIs(t, err, ErrUnauthorized)

	err = svc.UpdateStatus(owner.ID, 99999, entity.StatusConfirmed)
	assert.ErrorIs(t, err, ErrNotFound)

	err = svc.UpdateStatus(owner.ID, o.ID, entity.OrderStatus("shipped"))
	assert.ErrorIs(t, err, ErrValidation)
}

func TestUpdateStatusSurvivesNotifierFailure(t *testing.T) {
	db := newTestDB(t)
	owner := createUser(t, db, "owner@test", "owner")
	customer := createUser(t, db, "cust@test", "customer")
	rest := createRestaurant(t, db, "Pizza Palace", owner.ID)
	o := seedOrder(t, db, rest.ID, customer.ID, entity.StatusPending)

	notifier := &recordingNotifier{fail: errors.New("broker down")}
	svc := newOrderService(db, notifier)

	require.NoError(t, svc.UpdateStatus(owner.ID, o.ID, entity.StatusConfirmed),
		"a failed notification must not fail the transition")

	var got entity.Order
	require.NoError(t, db.First(&got, o.ID).Error)
	assert.Equal(t, entity.StatusConfirmed, got.Status)
}

func TestUpdateStatusBumpsUpdatedAt(t *testing.T) {
	db := newTestDB(t)
	owner := createUser(t, db, "owner@test", "owner")
	customer := createUser(t, db, "cust@test", "customer")
	rest := createRestaurant(t, db, "Pizza Palace", owner.ID)
	o := seedOrder(t, db, rest.ID, customer.ID, entity.StatusPending)

	// push the stored timestamp into the past so the bump is observable
	past := time.Now().UTC().Add(-time.Hour)
	require.NoError(t, db.Model(&entity.Order{}).Where("id = ?", o.ID).
		Update("updated_at", past).Error)

	svc := newOrderService(db, nil)
	require.NoError(t, svc.UpdateStatus(owner.ID, o.ID, entity.StatusConfirmed))

	var got entity.Order
	require.NoError(t, db.First(&got, o.ID).Error)
	assert.True(t, got.UpdatedAt.After(past.Add(30*time.Minute)), "updated_at must move forward on transition")
}
