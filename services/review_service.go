package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"justeat-backend/entity"
	"justeat-backend/repository"
)

type ReviewService struct {
	Repo     *repository.ReviewRepository
	RestRepo *repository.RestaurantRepository
	MenuRepo *repository.MenuRepository
}

func NewReviewService(rr *repository.ReviewRepository, restRepo *repository.RestaurantRepository, mr *repository.MenuRepository) *ReviewService {
	return &ReviewService{Repo: rr, RestRepo: restRepo, MenuRepo: mr}
}

type ReviewIn struct {
	RestaurantID uint   `json:"restaurantId" binding:"required"`
	MenuItemID   *uint  `json:"menuItemId"`
	Rating       int    `json:"rating" binding:"required"`
	Comment      string `json:"comment"`
}

func (s *ReviewService) Create(userID uint, in *ReviewIn) (*entity.Review, error) {
	if in.Rating < 1 || in.Rating > 5 {
		return nil, fmt.Errorf("%w: rating must be between 1 and 5", ErrValidation)
	}
	ok, err := s.RestRepo.Exists(in.RestaurantID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: restaurant", ErrNotFound)
	}
	if in.MenuItemID != nil {
		item, err := s.MenuRepo.FindByID(*in.MenuItemID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, fmt.Errorf("%w: menu item", ErrNotFound)
			}
			return nil, err
		}
		if item.RestaurantID != in.RestaurantID {
			return nil, fmt.Errorf("%w: menu item not in this restaurant", ErrValidation)
		}
	}

	review := &entity.Review{
		Rating:       in.Rating,
		Comment:      in.Comment,
		UserID:       userID,
		RestaurantID: in.RestaurantID,
		MenuItemID:   in.MenuItemID,
	}
	if err := s.Repo.Create(review); err != nil {
		return nil, err
	}
	return review, nil
}

type RestaurantReviews struct {
	Items   []entity.Review `json:"items"`
	Average float64         `json:"average"`
	Count   int64           `json:"count"`
}

func (s *ReviewService) ListForRestaurant(restID uint, limit int) (*RestaurantReviews, error) {
	ok, err := s.RestRepo.Exists(restID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: restaurant", ErrNotFound)
	}
	items, err := s.Repo.FindByRestaurant(restID, limit)
	if err != nil {
		return nil, err
	}
	avg, cnt, err := s.Repo.AverageRating(restID)
	if err != nil {
		return nil, err
	}
	return &RestaurantReviews{Items: items, Average: avg, Count: cnt}, nil
}
