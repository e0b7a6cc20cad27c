package repository

import (
	"gorm.io/gorm"

	"justeat-backend/entity"
)

type ReviewRepository struct {
	DB *gorm.DB
}

func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{DB: db}
}

func (r *ReviewRepository) Create(review *entity.Review) error {
	return r.DB.Create(review).Error
}

func (r *ReviewRepository) FindByRestaurant(restID uint, limit int) ([]entity.Review, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	var reviews []entity.Review
	err := r.DB.Where("restaurant_id = ?", restID).
		Order("id DESC").Limit(limit).
		Find(&reviews).Error
	return reviews, err
}

func (r *ReviewRepository) AverageRating(restID uint) (float64, int64, error) {
	var row struct {
		Avg float64
		Cnt int64
	}
	err := r.DB.Model(&entity.Review{}).
		Select("COALESCE(AVG(rating), 0) AS avg, COUNT(*) AS cnt").
		Where("restaurant_id = ?", restID).
		Scan(&row).Error
	return row.Avg, row.Cnt, err
}
