package services

import (
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"justeat-backend/entity"
	"justeat-backend/repository"
)

// newTestDB opens a per-test in-memory database. The named DSN keeps every
// connection of the pool on the same memory database.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&entity.User{},
		&entity.Restaurant{},
		&entity.MenuItem{},
		&entity.CartItem{},
		&entity.Order{}, &entity.OrderItem{},
		&entity.Review{},
	))
	return db
}

func createUser(t *testing.T, db *gorm.DB, email, role string) *entity.User {
	t.Helper()
	u := &entity.User{Email: email, Password: "x", FirstName: "Test", LastName: "User", Role: role}
	require.NoError(t, db.Create(u).Error)
	return u
}

func createRestaurant(t *testing.T, db *gorm.DB, name string, ownerID uint) *entity.Restaurant {
	t.Helper()
	r := &entity.Restaurant{Name: name, CuisineType: "Test", IsActive: true, OwnerID: ownerID}
	require.NoError(t, db.Create(r).Error)
	return r
}

func createMenuItem(t *testing.T, db *gorm.DB, restID uint, name string, price int64) *entity.MenuItem {
	t.Helper()
	m := &entity.MenuItem{Name: name, Price: price, Category: "Main", IsAvailable: true, RestaurantID: restID}
	require.NoError(t, db.Create(m).Error)
	return m
}

func newOrderService(db *gorm.DB, n Notifier) *OrderService {
	return NewOrderService(
		db,
		repository.NewOrderRepository(db),
		repository.NewCartRepository(db),
		repository.NewRestaurantRepository(db),
		n,
	)
}

func newCartService(db *gorm.DB) *CartService {
	return NewCartService(db, repository.NewCartRepository(db), repository.NewMenuRepository(db))
}

// recordingNotifier captures events; set fail to exercise the best-effort path.
type recordingNotifier struct {
	mu     sync.Mutex
	events []OrderEvent
	fail   error
}

func (n *recordingNotifier) Notify(ev OrderEvent) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.events = append(n.events, ev)
	return n.fail
}

func (n *recordingNotifier) Events() []OrderEvent {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]OrderEvent, len(n.events))
	copy(out, n.events)
	return out
}
