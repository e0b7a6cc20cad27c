package repository

import (
	"gorm.io/gorm"

	"justeat-backend/entity"
)

type RestaurantRepository struct {
	DB *gorm.DB
}

func NewRestaurantRepository(db *gorm.DB) *RestaurantRepository {
	return &RestaurantRepository{DB: db}
}

// FindActive lists active restaurants, optionally filtered by a name or
// cuisine substring.
func (r *RestaurantRepository) FindActive(search string) ([]entity.Restaurant, error) {
	db := r.DB.Where("is_active = ?", true)
	if search != "" {
		like := "%" + search + "%"
		db = db.Where("name LIKE ? OR cuisine_type LIKE ?", like, like)
	}
	var rests []entity.Restaurant
	err := db.Order("name").Find(&rests).Error
	return rests, err
}

func (r *RestaurantRepository) FindByID(id uint) (*entity.Restaurant, error) {
	var rest entity.Restaurant
	if err := r.DB.First(&rest, id).Error; err != nil {
		return nil, err
	}
	return &rest, nil
}

func (r *RestaurantRepository) FindByOwner(ownerID uint) ([]entity.Restaurant, error) {
	var rests []entity.Restaurant
	err := r.DB.Where("owner_id = ?", ownerID).Find(&rests).Error
	return rests, err
}

func (r *RestaurantRepository) Create(rest *entity.Restaurant) error {
	return r.DB.Create(rest).Error
}

func (r *RestaurantRepository) Update(rest *entity.Restaurant) error {
	return r.DB.Save(rest).Error
}

func (r *RestaurantRepository) IsOwnedBy(restID, userID uint) (bool, error) {
	var cnt int64
	err := r.DB.Model(&entity.Restaurant{}).
		Where("id = ? AND owner_id = ?", restID, userID).
		Count(&cnt).Error
	return cnt > 0, err
}

func (r *RestaurantRepository) Exists(id uint) (bool, error) {
	var cnt int64
	err := r.DB.Model(&entity.Restaurant{}).Where("id = ?", id).Count(&cnt).Error
	return cnt > 0, err
}
