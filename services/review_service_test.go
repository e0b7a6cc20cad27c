package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"justeat-backend/repository"
)

func TestReviewCreateAndAverage(t *testing.T) {
	db := newTestDB(t)
	owner := createUser(t, db, "owner@test", "owner")
	alice := createUser(t, db, "alice@test", "customer")
	bob := createUser(t, db, "bob@test", "customer")
	rest := createRestaurant(t, db, "Pizza Palace", owner.ID)
	item := createMenuItem(t, db, rest.ID, "Margherita", 1099)

	svc := NewReviewService(
		repository.NewReviewRepository(db),
		repository.NewRestaurantRepository(db),
		repository.NewMenuRepository(db),
	)

	_, err := svc.Create(alice.ID, &ReviewIn{RestaurantID: rest.ID, Rating: 6})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.Create(alice.ID, &ReviewIn{RestaurantID: 99999, Rating: 4})
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.Create(alice.ID, &ReviewIn{RestaurantID: rest.ID, Rating: 5, Comment: "great", MenuItemID: &item.ID})
	require.NoError(t, err)
	_, err = svc.Create(bob.ID, &ReviewIn{RestaurantID: rest.ID, Rating: 3})
	require.NoError(t, err)

	out, err := svc.ListForRestaurant(rest.ID, 0)
	require.NoError(t, err)
	assert.Len(t, out.Items, 2)
	assert.Equal(t, int64(2), out.Count)
	assert.InDelta(t, 4.0, out.Average, 0.001)
}

func TestReviewMenuItemMustBelongToRestaurant(t *testing.T) {
	db := newTestDB(t)
	owner := createUser(t, db, "owner@test", "owner")
	alice := createUser(t, db, "alice@test", "customer")
	restA := createRestaurant(t, db, "Pizza Palace", owner.ID)
	restB := createRestaurant(t, db, "Spice Garden", owner.ID)
	foreign := createMenuItem(t, db, restB.ID, "Butter Chicken", 1399)

	svc := NewReviewService(
		repository.NewReviewRepository(db),
		repository.NewRestaurantRepository(db),
		repository.NewMenuRepository(db),
	)

	_, err := svc.Create(alice.ID, &ReviewIn{RestaurantID: restA.ID, Rating: 4, MenuItemID: &foreign.ID})
	assert.ErrorIs(t, err, ErrValidation)
}
