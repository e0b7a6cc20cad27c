package services

import (
	"time"

	"justeat-backend/entity"
	"justeat-backend/repository"
)

// An item is "mostly ordered" when more than this many units were ordered
// over the day, or one single order line alone exceeds it.
const mostlyOrderedThreshold = 10

// PopularityService derives the mostly-ordered tag from order history. It
// holds no state of its own and recomputes on every call.
type PopularityService struct {
	OrderRepo *repository.OrderRepository
}

func NewPopularityService(or *repository.OrderRepository) *PopularityService {
	return &PopularityService{OrderRepo: or}
}

// dayWindow returns the [00:00, 24:00) UTC window containing t. Both
// threshold conditions use this one window, so the tag cannot flip between
// them mid-request.
func dayWindow(t time.Time) (time.Time, time.Time) {
	y, m, d := t.UTC().Date()
	start := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return start, start.Add(24 * time.Hour)
}

// IsMostlyOrdered reports whether the menu item crossed either popularity
// threshold on the calendar day of asOf. Thresholds are strict: a day
// summing to exactly 10 does not qualify.
func (s *PopularityService) IsMostlyOrdered(menuItemID uint, asOf time.Time) (bool, error) {
	from, to := dayWindow(asOf)

	sum, err := s.OrderRepo.SumItemQuantityBetween(menuItemID, from, to)
	if err != nil {
		return false, err
	}
	if sum > mostlyOrderedThreshold {
		return true, nil
	}
	return s.OrderRepo.HasLargeSingleItemBetween(menuItemID, mostlyOrderedThreshold, from, to)
}

// MenuItemView wraps a menu item with its derived flag; the stored entity is
// never mutated.
type MenuItemView struct {
	entity.MenuItem
	MostlyOrdered bool `json:"mostlyOrdered"`
}

// Decorate computes the mostly-ordered flag for a batch of items as of now.
func (s *PopularityService) Decorate(items []entity.MenuItem) ([]MenuItemView, error) {
	now := time.Now()
	out := make([]MenuItemView, 0, len(items))
	for _, it := range items {
		hot, err := s.IsMostlyOrdered(it.ID, now)
		if err != nil {
			return nil, err
		}
		out = append(out, MenuItemView{MenuItem: it, MostlyOrdered: hot})
	}
	return out, nil
}
