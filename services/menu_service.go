package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"gorm.io/gorm"

	"justeat-backend/entity"
	"justeat-backend/repository"
)

type MenuService struct {
	MenuRepo   *repository.MenuRepository
	RestRepo   *repository.RestaurantRepository
	OrderRepo  *repository.OrderRepository
	Popularity *PopularityService

	Cache    KVCache
	CacheTTL time.Duration
}

func NewMenuService(
	mr *repository.MenuRepository,
	rr *repository.RestaurantRepository,
	or *repository.OrderRepository,
	pop *PopularityService,
	cache KVCache,
	cacheTTL time.Duration,
) *MenuService {
	return &MenuService{
		MenuRepo: mr, RestRepo: rr, OrderRepo: or, Popularity: pop,
		Cache: cache, CacheTTL: cacheTTL,
	}
}

func menuCacheKey(restID uint) string { return fmt.Sprintf("menu:restaurant:%d", restID) }

// ListForRestaurant returns the restaurant's menu decorated with the
// mostly-ordered flag. The raw rows go through the cache; the flag is
// derived fresh on every call so the popularity tag never goes stale.
func (s *MenuService) ListForRestaurant(ctx context.Context, restID uint) ([]MenuItemView, error) {
	ok, err := s.RestRepo.Exists(restID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: restaurant", ErrNotFound)
	}

	var items []entity.MenuItem
	hit := false
	if s.Cache != nil {
		if hit, err = s.Cache.Get(ctx, menuCacheKey(restID), &items); err != nil {
			log.Printf("menu cache read failed: %v", err)
			hit = false
		}
	}
	if !hit {
		if items, err = s.MenuRepo.FindByRestaurant(restID); err != nil {
			return nil, err
		}
		if s.Cache != nil {
			if err := s.Cache.Set(ctx, menuCacheKey(restID), items, s.CacheTTL); err != nil {
				log.Printf("menu cache write failed: %v", err)
			}
		}
	}

	return s.Popularity.Decorate(items)
}

func (s *MenuService) GetItem(id uint) (*entity.MenuItem, error) {
	item, err := s.MenuRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: menu item", ErrNotFound)
		}
		return nil, err
	}
	return item, nil
}

// ----- Owner management -----

type MenuItemIn struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Price       int64  `json:"price" binding:"required,min=1"`
	Category    string `json:"category" binding:"required"`
	IsAvailable *bool  `json:"isAvailable"`
	IsSpecial   bool   `json:"isSpecial"`
	IsDealOfDay bool   `json:"isDealOfDay"`
}

func (s *MenuService) CreateItem(ctx context.Context, ownerID, restID uint, in *MenuItemIn) (*entity.MenuItem, error) {
	if err := s.requireOwner(restID, ownerID); err != nil {
		return nil, err
	}
	if in.Price <= 0 {
		return nil, fmt.Errorf("%w: price must be positive", ErrValidation)
	}
	available := true
	if in.IsAvailable != nil {
		available = *in.IsAvailable
	}
	item := &entity.MenuItem{
		Name:         in.Name,
		Description:  in.Description,
		Price:        in.Price,
		Category:     in.Category,
		IsAvailable:  available,
		IsSpecial:    in.IsSpecial,
		IsDealOfDay:  in.IsDealOfDay,
		RestaurantID: restID,
	}
	if err := s.MenuRepo.Create(item); err != nil {
		return nil, err
	}
	s.invalidate(ctx, restID)
	return item, nil
}

func (s *MenuService) UpdateItem(ctx context.Context, ownerID, restID, itemID uint, in *MenuItemIn) (*entity.MenuItem, error) {
	if err := s.requireOwner(restID, ownerID); err != nil {
		return nil, err
	}
	item, err := s.MenuRepo.FindByID(itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: menu item", ErrNotFound)
		}
		return nil, err
	}
	if item.RestaurantID != restID {
		return nil, ErrUnauthorized
	}
	if in.Price <= 0 {
		return nil, fmt.Errorf("%w: price must be positive", ErrValidation)
	}

	item.Name = in.Name
	item.Description = in.Description
	// past order items keep their frozen copy regardless of this change
	item.Price = in.Price
	item.Category = in.Category
	if in.IsAvailable != nil {
		item.IsAvailable = *in.IsAvailable
	}
	item.IsSpecial = in.IsSpecial
	item.IsDealOfDay = in.IsDealOfDay

	if err := s.MenuRepo.Update(item); err != nil {
		return nil, err
	}
	s.invalidate(ctx, restID)
	return item, nil
}

// DeleteItem refuses to remove an item that appears in any order, so order
// history always resolves its line items.
func (s *MenuService) DeleteItem(ctx context.Context, ownerID, restID, itemID uint) error {
	if err := s.requireOwner(restID, ownerID); err != nil {
		return err
	}
	item, err := s.MenuRepo.FindByID(itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: menu item", ErrNotFound)
		}
		return err
	}
	if item.RestaurantID != restID {
		return ErrUnauthorized
	}
	refs, err := s.OrderRepo.CountItemReferences(itemID)
	if err != nil {
		return err
	}
	if refs > 0 {
		return fmt.Errorf("%w: menu item is part of existing orders", ErrValidation)
	}
	if err := s.MenuRepo.Delete(itemID); err != nil {
		return err
	}
	s.invalidate(ctx, restID)
	return nil
}

func (s *MenuService) requireOwner(restID, userID uint) error {
	ok, err := s.RestRepo.IsOwnedBy(restID, userID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrUnauthorized
	}
	return nil
}

func (s *MenuService) invalidate(ctx context.Context, restID uint) {
	if s.Cache == nil {
		return
	}
	if err := s.Cache.Delete(ctx, menuCacheKey(restID)); err != nil {
		log.Printf("menu cache invalidate failed: %v", err)
	}
}
