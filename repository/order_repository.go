package repository

import (
	"strings"
	"time"

	"gorm.io/gorm"

	"justeat-backend/entity"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

// ---------------- Orders ----------------

func (r *OrderRepository) CreateOrder(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

func (r *OrderRepository) GetOrder(orderID uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.First(&o, orderID).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

type OrderSummary struct {
	ID           uint               `json:"id"`
	OrderNumber  string             `json:"orderNumber"`
	RestaurantID uint               `json:"restaurantId"`
	Total        int64              `json:"total"`
	Status       entity.OrderStatus `json:"status"`
	CreatedAt    time.Time          `json:"createdAt"`
}

func (r *OrderRepository) ListOrdersForUser(userID uint, limit int) ([]OrderSummary, error) {
	if limit <= 0 {
		limit = 50
	}
	var out []OrderSummary
	err := r.DB.Model(&entity.Order{}).
		Select("id, order_number, restaurant_id, total, status, created_at").
		Where("customer_id = ?", userID).
		Order("id DESC").Limit(limit).
		Scan(&out).Error
	return out, err
}

func (r *OrderRepository) GetOrderForUser(userID, orderID uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.Where("id = ? AND customer_id = ?", orderID, userID).First(&o).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

type OwnerOrderSummary struct {
	ID           uint               `json:"id"`
	OrderNumber  string             `json:"orderNumber"`
	CustomerID   uint               `json:"customerId"`
	CustomerName string             `json:"customerName"`
	Total        int64              `json:"total"`
	Status       entity.OrderStatus `json:"status"`
	CreatedAt    time.Time          `json:"createdAt"`
}

func (r *OrderRepository) ListOrdersForRestaurant(restID uint, status entity.OrderStatus, page, limit int) ([]OwnerOrderSummary, int64, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 || limit > 200 {
		limit = 20
	}
	offset := (page - 1) * limit

	var total int64
	dbCount := r.DB.Model(&entity.Order{}).Where("restaurant_id = ?", restID)
	if status != "" {
		dbCount = dbCount.Where("status = ?", status)
	}
	if err := dbCount.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []struct {
		ID          uint
		OrderNumber string
		CustomerID  uint
		Total       int64
		Status      entity.OrderStatus
		CreatedAt   time.Time
		FirstName   string
		LastName    string
	}
	db := r.DB.Table("orders AS o").
		Select("o.id, o.order_number, o.customer_id, o.total, o.status, o.created_at, u.first_name, u.last_name").
		Joins("JOIN users u ON u.id = o.customer_id").
		Where("o.restaurant_id = ? AND o.deleted_at IS NULL", restID)
	if status != "" {
		db = db.Where("o.status = ?", status)
	}
	if err := db.Order("o.id DESC").Limit(limit).Offset(offset).Scan(&rows).Error; err != nil {
		return nil, 0, err
	}

	out := make([]OwnerOrderSummary, 0, len(rows))
	for _, row := range rows {
		out = append(out, OwnerOrderSummary{
			ID:           row.ID,
			OrderNumber:  row.OrderNumber,
			CustomerID:   row.CustomerID,
			CustomerName: strings.TrimSpace(row.FirstName + " " + row.LastName),
			Total:        row.Total,
			Status:       row.Status,
			CreatedAt:    row.CreatedAt,
		})
	}
	return out, total, nil
}

func (r *OrderRepository) GetOrderForRestaurant(restID, orderID uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.Where("id = ? AND restaurant_id = ?", orderID, restID).First(&o).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

// UpdateStatusGuard flips status only when the row still holds the expected
// value, so a racing transition loses via RowsAffected == 0.
func (r *OrderRepository) UpdateStatusGuard(tx *gorm.DB, orderID uint, from, to entity.OrderStatus) (int64, error) {
	res := tx.Model(&entity.Order{}).
		Where("id = ? AND status = ?", orderID, from).
		Updates(map[string]any{"status": to, "updated_at": time.Now().UTC()})
	return res.RowsAffected, res.Error
}

// ---------------- Order items ----------------

func (r *OrderRepository) CreateOrderItem(tx *gorm.DB, oi *entity.OrderItem) error {
	return tx.Create(oi).Error
}

func (r *OrderRepository) GetOrderItems(orderID uint) ([]entity.OrderItem, error) {
	var items []entity.OrderItem
	err := r.DB.Model(&entity.OrderItem{}).
		Select("id, qty, unit_price, order_id, menu_item_id").
		Where("order_id = ?", orderID).
		Find(&items).Error
	return items, err
}

// ---------------- Popularity aggregates ----------------

// SumItemQuantityBetween sums ordered quantity of one menu item over orders
// created in [from, to).
func (r *OrderRepository) SumItemQuantityBetween(menuItemID uint, from, to time.Time) (int64, error) {
	var row struct{ Sum int64 }
	err := r.DB.Table("order_items AS oi").
		Select("COALESCE(SUM(oi.qty), 0) AS sum").
		Joins("JOIN orders o ON o.id = oi.order_id").
		Where("oi.menu_item_id = ? AND o.created_at >= ? AND o.created_at < ?", menuItemID, from, to).
		Scan(&row).Error
	return row.Sum, err
}

// HasLargeSingleItemBetween reports whether any single order line of the menu
// item in [from, to) exceeds the given quantity.
func (r *OrderRepository) HasLargeSingleItemBetween(menuItemID uint, minQty int, from, to time.Time) (bool, error) {
	var cnt int64
	err := r.DB.Table("order_items AS oi").
		Joins("JOIN orders o ON o.id = oi.order_id").
		Where("oi.menu_item_id = ? AND oi.qty > ? AND o.created_at >= ? AND o.created_at < ?",
			menuItemID, minQty, from, to).
		Count(&cnt).Error
	return cnt > 0, err
}

// CountItemReferences tells whether a menu item appears in any order; such
// items must never be deleted.
func (r *OrderRepository) CountItemReferences(menuItemID uint) (int64, error) {
	var cnt int64
	err := r.DB.Model(&entity.OrderItem{}).
		Where("menu_item_id = ?", menuItemID).
		Count(&cnt).Error
	return cnt, err
}
