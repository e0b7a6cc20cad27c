package repository

import (
	"errors"

	"gorm.io/gorm"

	"justeat-backend/entity"
)

type CartRepository struct{ DB *gorm.DB }

func NewCartRepository(db *gorm.DB) *CartRepository { return &CartRepository{DB: db} }

// ListWithItems loads every cart row of the user with its menu item and the
// menu item's restaurant id, ordered oldest first.
func (r *CartRepository) ListWithItems(tx *gorm.DB, userID uint) ([]entity.CartItem, error) {
	if tx == nil {
		tx = r.DB
	}
	var items []entity.CartItem
	err := tx.Where("user_id = ?", userID).
		Preload("MenuItem").
		Order("id ASC").
		Find(&items).Error
	return items, err
}

// UpsertItem merges into an existing (user, menu item) row by bumping qty,
// or creates the row when none exists.
func (r *CartRepository) UpsertItem(tx *gorm.DB, userID, menuItemID uint, qty int) error {
	var exist entity.CartItem
	err := tx.Where("user_id = ? AND menu_item_id = ?", userID, menuItemID).First(&exist).Error
	if err == nil {
		exist.Qty += qty
		return tx.Save(&exist).Error
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	row := entity.CartItem{UserID: userID, MenuItemID: menuItemID, Qty: qty}
	return tx.Create(&row).Error
}

// SetQty overwrites the quantity of one cart row. The user_id guard makes a
// foreign or missing id a no-op; callers read RowsAffected == 0 as such.
func (r *CartRepository) SetQty(tx *gorm.DB, userID, itemID uint, qty int) (int64, error) {
	res := tx.Model(&entity.CartItem{}).
		Where("id = ? AND user_id = ?", itemID, userID).
		Update("qty", qty)
	return res.RowsAffected, res.Error
}

func (r *CartRepository) RemoveItem(tx *gorm.DB, userID, itemID uint) (int64, error) {
	res := tx.Where("id = ? AND user_id = ?", itemID, userID).
		Delete(&entity.CartItem{})
	return res.RowsAffected, res.Error
}

// DeleteByIDs removes exactly the rows that took part in a checkout; rows
// added concurrently after the snapshot are left alone.
func (r *CartRepository) DeleteByIDs(tx *gorm.DB, ids []uint) error {
	if len(ids) == 0 {
		return nil
	}
	return tx.Where("id IN ?", ids).Delete(&entity.CartItem{}).Error
}

func (r *CartRepository) Clear(tx *gorm.DB, userID uint) error {
	return tx.Where("user_id = ?", userID).Delete(&entity.CartItem{}).Error
}
