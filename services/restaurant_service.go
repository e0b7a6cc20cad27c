package services

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"justeat-backend/entity"
	"justeat-backend/repository"
)

type RestaurantService struct {
	Repo *repository.RestaurantRepository
}

func NewRestaurantService(rr *repository.RestaurantRepository) *RestaurantService {
	return &RestaurantService{Repo: rr}
}

func (s *RestaurantService) List(search string) ([]entity.Restaurant, error) {
	return s.Repo.FindActive(strings.TrimSpace(search))
}

func (s *RestaurantService) Detail(id uint) (*entity.Restaurant, error) {
	rest, err := s.Repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: restaurant", ErrNotFound)
		}
		return nil, err
	}
	return rest, nil
}

func (s *RestaurantService) ListForOwner(ownerID uint) ([]entity.Restaurant, error) {
	return s.Repo.FindByOwner(ownerID)
}

type RestaurantIn struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	CuisineType string `json:"cuisineType" binding:"required"`
	Address     string `json:"address"`
	City        string `json:"city"`
	PhoneNumber string `json:"phoneNumber"`
}

func (s *RestaurantService) Create(ownerID uint, in *RestaurantIn) (*entity.Restaurant, error) {
	rest := &entity.Restaurant{
		Name:        strings.TrimSpace(in.Name),
		Description: in.Description,
		CuisineType: strings.TrimSpace(in.CuisineType),
		Address:     in.Address,
		City:        in.City,
		PhoneNumber: in.PhoneNumber,
		IsActive:    true,
		OwnerID:     ownerID,
	}
	if rest.Name == "" || rest.CuisineType == "" {
		return nil, fmt.Errorf("%w: name and cuisine type are required", ErrValidation)
	}
	if err := s.Repo.Create(rest); err != nil {
		return nil, err
	}
	return rest, nil
}
