package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"justeat-backend/entity"
	"justeat-backend/repository"
)

type OrderService struct {
	DB       *gorm.DB
	Repo     *repository.OrderRepository
	CartRepo *repository.CartRepository
	RestRepo *repository.RestaurantRepository
	Notifier Notifier
}

func NewOrderService(
	db *gorm.DB,
	repo *repository.OrderRepository,
	cartRepo *repository.CartRepository,
	restRepo *repository.RestaurantRepository,
	notifier Notifier,
) *OrderService {
	if notifier == nil {
		notifier = NopNotifier{}
	}
	return &OrderService{DB: db, Repo: repo, CartRepo: cartRepo, RestRepo: restRepo, Notifier: notifier}
}

type PlacedOrder struct {
	ID           uint   `json:"id"`
	OrderNumber  string `json:"orderNumber"`
	RestaurantID uint   `json:"restaurantId"`
	Total        int64  `json:"total"`
}

// newOrderNumber follows the ORD + microsecond timestamp + user id scheme,
// with a uuid fragment instead of a 3-digit random so two goroutines placing
// in the same microsecond for the same user still cannot collide.
func newOrderNumber(userID uint) string {
	now := time.Now().UTC()
	return fmt.Sprintf("ORD%s%06d%d%s",
		now.Format("20060102150405"), now.Nanosecond()/1000, userID, uuid.NewString()[:8])
}

// PlaceFromCart converts the user's cart into one order per restaurant.
//
// The cart snapshot is read inside the same transaction that writes the
// orders and clears it, so a single call is all-or-nothing: a failed write
// leaves the cart intact and no order visible. Cart rows added concurrently
// after the snapshot survive the clear and ship with the next checkout.
func (s *OrderService) PlaceFromCart(ctx context.Context, userID uint) ([]PlacedOrder, error) {
	var placed []PlacedOrder

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		items, err := s.CartRepo.ListWithItems(tx, userID)
		if err != nil {
			return err
		}
		if len(items) == 0 {
			return ErrEmptyCart
		}

		// partition by restaurant, keeping first-seen order for stable output
		groups := make(map[uint][]entity.CartItem)
		var restIDs []uint
		checkedOut := make([]uint, 0, len(items))
		for _, it := range items {
			if it.MenuItem.ID == 0 {
				// menu item vanished between add and checkout
				return fmt.Errorf("menu item %d no longer exists", it.MenuItemID)
			}
			rid := it.MenuItem.RestaurantID
			if _, ok := groups[rid]; !ok {
				restIDs = append(restIDs, rid)
			}
			groups[rid] = append(groups[rid], it)
			checkedOut = append(checkedOut, it.ID)
		}

		for _, rid := range restIDs {
			part := groups[rid]

			var total int64
			for _, it := range part {
				total += it.MenuItem.Price * int64(it.Qty)
			}

			order := entity.Order{
				OrderNumber:  newOrderNumber(userID),
				Status:       entity.StatusPending,
				Total:        total,
				CustomerID:   userID,
				RestaurantID: rid,
			}
			if err := s.Repo.CreateOrder(tx, &order); err != nil {
				return err
			}

			for _, it := range part {
				oi := entity.OrderItem{
					OrderID:    order.ID,
					MenuItemID: it.MenuItemID,
					Qty:        it.Qty,
					UnitPrice:  it.MenuItem.Price, // frozen copy, not a reference
				}
				if err := s.Repo.CreateOrderItem(tx, &oi); err != nil {
					return err
				}
			}

			placed = append(placed, PlacedOrder{
				ID:           order.ID,
				OrderNumber:  order.OrderNumber,
				RestaurantID: rid,
				Total:        order.Total,
			})
		}

		return s.CartRepo.DeleteByIDs(tx, checkedOut)
	})
	if err != nil {
		if errors.Is(err, ErrEmptyCart) {
			return nil, err
		}
		log.Printf("place order failed for user %d: %v", userID, err)
		return nil, ErrStorage
	}

	for _, p := range placed {
		ev := OrderEvent{
			EventType:   EventOrderPlaced,
			OrderID:     p.ID,
			OrderNumber: p.OrderNumber,
			CustomerID:  userID,
			Status:      entity.StatusPending,
			Total:       p.Total,
			OccurredAt:  time.Now().UTC(),
		}
		if err := s.Notifier.Notify(ev); err != nil {
			log.Printf("order %s: placed notification failed: %v", p.OrderNumber, err)
		}
	}
	return placed, nil
}

// ----- Customer list & detail -----

func (s *OrderService) ListForUser(userID uint, limit int) ([]repository.OrderSummary, error) {
	return s.Repo.ListOrdersForUser(userID, limit)
}

type OrderDetail struct {
	ID           uint               `json:"id"`
	OrderNumber  string             `json:"orderNumber"`
	Status       entity.OrderStatus `json:"status"`
	Total        int64              `json:"total"`
	RestaurantID uint               `json:"restaurantId"`
	CreatedAt    time.Time          `json:"createdAt"`
	Items        []entity.OrderItem `json:"items"`
}

func (s *OrderService) DetailForUser(userID, orderID uint) (*OrderDetail, error) {
	o, err := s.Repo.GetOrderForUser(userID, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: order", ErrNotFound)
		}
		return nil, err
	}
	items, err := s.Repo.GetOrderItems(o.ID)
	if err != nil {
		return nil, err
	}
	return &OrderDetail{
		ID: o.ID, OrderNumber: o.OrderNumber, Status: o.Status, Total: o.Total,
		RestaurantID: o.RestaurantID, CreatedAt: o.CreatedAt, Items: items,
	}, nil
}

// ----- Owner list & detail -----

type OwnerOrderListOut struct {
	Items []repository.OwnerOrderSummary `json:"items"`
	Total int64                          `json:"total"`
	Page  int                            `json:"page"`
	Limit int                            `json:"limit"`
}

func (s *OrderService) ListForRestaurant(userID, restID uint, status entity.OrderStatus, page, limit int) (*OwnerOrderListOut, error) {
	ok, err := s.RestRepo.IsOwnedBy(restID, userID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrUnauthorized
	}
	if status != "" && !status.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", ErrValidation, status)
	}
	items, total, err := s.Repo.ListOrdersForRestaurant(restID, status, page, limit)
	if err != nil {
		return nil, err
	}
	return &OwnerOrderListOut{Items: items, Total: total, Page: page, Limit: limit}, nil
}

func (s *OrderService) DetailForRestaurant(userID, restID, orderID uint) (*OrderDetail, error) {
	ok, err := s.RestRepo.IsOwnedBy(restID, userID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrUnauthorized
	}
	o, err := s.Repo.GetOrderForRestaurant(restID, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: order", ErrNotFound)
		}
		return nil, err
	}
	items, err := s.Repo.GetOrderItems(o.ID)
	if err != nil {
		return nil, err
	}
	return &OrderDetail{
		ID: o.ID, OrderNumber: o.OrderNumber, Status: o.Status, Total: o.Total,
		RestaurantID: o.RestaurantID, CreatedAt: o.CreatedAt, Items: items,
	}, nil
}
