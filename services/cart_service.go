package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"justeat-backend/entity"
	"justeat-backend/repository"
)

type CartService struct {
	DB       *gorm.DB
	CartRepo *repository.CartRepository
	MenuRepo *repository.MenuRepository
}

func NewCartService(db *gorm.DB, cr *repository.CartRepository, mr *repository.MenuRepository) *CartService {
	return &CartService{DB: db, CartRepo: cr, MenuRepo: mr}
}

// Get returns the user's cart rows with the current subtotal. The subtotal is
// informational only; checkout recomputes totals from a fresh snapshot.
func (s *CartService) Get(userID uint) ([]entity.CartItem, int64, error) {
	items, err := s.CartRepo.ListWithItems(nil, userID)
	if err != nil {
		return nil, 0, err
	}
	var subtotal int64
	for _, it := range items {
		subtotal += it.MenuItem.Price * int64(it.Qty)
	}
	return items, subtotal, nil
}

// AddItem validates the menu item and merges or creates the cart row. Adding
// an item already present increments its quantity, never duplicates the row.
func (s *CartService) AddItem(userID, menuItemID uint, qty int) error {
	if qty < 1 {
		return fmt.Errorf("%w: quantity must be at least 1", ErrValidation)
	}
	m, err := s.MenuRepo.FindByID(menuItemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: menu item", ErrNotFound)
		}
		return err
	}
	if !m.IsAvailable {
		return fmt.Errorf("%w: menu item not available", ErrValidation)
	}
	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.UpsertItem(tx, userID, m.ID, qty)
	})
}

// UpdateQuantity sets the quantity directly; qty <= 0 removes the row.
// A foreign or unknown item id fails Unauthorized either way, so callers
// cannot probe which cart ids exist.
func (s *CartService) UpdateQuantity(userID, itemID uint, qty int) error {
	if qty <= 0 {
		return s.RemoveItem(userID, itemID)
	}
	return s.DB.Transaction(func(tx *gorm.DB) error {
		affected, err := s.CartRepo.SetQty(tx, userID, itemID, qty)
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrUnauthorized
		}
		return nil
	})
}

func (s *CartService) RemoveItem(userID, itemID uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		affected, err := s.CartRepo.RemoveItem(tx, userID, itemID)
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrUnauthorized
		}
		return nil
	})
}

func (s *CartService) Clear(userID uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.Clear(tx, userID)
	})
}
