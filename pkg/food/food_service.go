package food

import (
	"context"
	"log/slog"
	"slices"
	"sort"
	"strings"
	"sync"
	"time"

	"fridgemate/domain"
	"fridgemate/entities"
	"fridgemate/pkg/category"
	"fridgemate/pkg/expiry"
	"fridgemate/pkg/quantity"

	"github.com/google/uuid"
)

const addedDateLayout = "2006-01-02"

type (
	FoodService interface {
		AddFoodItem(ctx context.Context, req domain.AddFoodItemRequest) (domain.FoodItemResponse, error)
		DeleteFoodItem(ctx context.Context, id string) error
		UpdateQuantity(ctx context.Context, id string, text string) error
		SetQuantity(ctx context.Context, id string, text string) (domain.FoodItemResponse, error)
		AdjustQuantity(ctx context.Context, id string, delta int) (domain.FoodItemResponse, error)
		GetFoodItems(ctx context.Context, filter domain.FoodItemFilter) ([]domain.FoodItemResponse, error)
		GetFoodItemByID(ctx context.Context, id string) (domain.FoodItemResponse, error)
		GetDashboardStats(ctx context.Context, categories []string) (domain.DashboardStatsResponse, error)
		CountItemsInCategory(ctx context.Context, category string) int

		// Items returns a snapshot of the collection in insertion order.
		Items(ctx context.Context) []entities.FoodItem
	}

	foodService struct {
		mu             sync.RWMutex
		foodRepository FoodRepository
		clock          expiry.Clock
		log            *slog.Logger

		items []entities.FoodItem
	}
)

// NewFoodService loads the stored items once. A failed or corrupt load starts
// from an empty collection.
func NewFoodService(ctx context.Context, foodRepository FoodRepository, clock expiry.Clock, log *slog.Logger) FoodService {
	s := &foodService{
		foodRepository: foodRepository,
		clock:          clock,
		log:            log.With("service", "food"),
	}

	items, err := foodRepository.GetFoodItems(ctx)
	if err != nil {
		s.log.WarnContext(ctx, "failed to load food items, starting empty", "error", err)
	}
	s.items = items

	return s
}

func (s *foodService) AddFoodItem(ctx context.Context, req domain.AddFoodItemRequest) (domain.FoodItemResponse, error) {
	name := strings.TrimSpace(req.Name)
	qty := strings.TrimSpace(req.Quantity)
	expiryDate := strings.TrimSpace(req.ExpiryDate)

	if name == "" || qty == "" || expiryDate == "" {
		return domain.FoodItemResponse{}, domain.ErrInvalidInput
	}

	now := s.clock()
	if _, err := expiry.ParseDate(expiryDate, now.Location()); err != nil {
		return domain.FoodItemResponse{}, err
	}

	itemCategory := strings.TrimSpace(req.Category)
	if itemCategory == "" {
		itemCategory = entities.DefaultFoodCategory
	}

	item := entities.FoodItem{
		ID:         uuid.Must(uuid.NewV7()).String(),
		Name:       name,
		Quantity:   qty,
		ExpiryDate: expiryDate,
		Category:   itemCategory,
		AddedDate:  now.Format(addedDateLayout),
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = append(s.items, item)
	s.persist(ctx)

	return s.toResponse(item, now), nil
}

func (s *foodService) DeleteFoodItem(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	index := s.indexOf(id)
	if index < 0 {
		return nil
	}

	s.items = slices.Delete(s.items, index, index+1)
	s.persist(ctx)

	return nil
}

// UpdateQuantity replaces the quantity text verbatim. Callers validate.
func (s *foodService) UpdateQuantity(ctx context.Context, id string, text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	index := s.indexOf(id)
	if index < 0 {
		return nil
	}

	s.items[index].Quantity = text
	s.persist(ctx)

	return nil
}

// SetQuantity is the direct-edit flow. Blank text leaves the item unchanged.
func (s *foodService) SetQuantity(ctx context.Context, id string, text string) (domain.FoodItemResponse, error) {
	trimmed := strings.TrimSpace(text)

	s.mu.Lock()
	defer s.mu.Unlock()

	index := s.indexOf(id)
	if index < 0 {
		return domain.FoodItemResponse{}, domain.ErrFoodItemNotFound
	}

	if trimmed != "" {
		if _, err := quantity.ValidateManualEntry(trimmed); err != nil {
			return domain.FoodItemResponse{}, err
		}
		s.items[index].Quantity = trimmed
		s.persist(ctx)
	}

	return s.toResponse(s.items[index], s.clock()), nil
}

func (s *foodService) AdjustQuantity(ctx context.Context, id string, delta int) (domain.FoodItemResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	index := s.indexOf(id)
	if index < 0 {
		return domain.FoodItemResponse{}, domain.ErrFoodItemNotFound
	}

	s.items[index].Quantity = quantity.Step(s.items[index].Quantity, delta)
	s.persist(ctx)

	return s.toResponse(s.items[index], s.clock()), nil
}

// GetFoodItems returns items soonest-expiring first, keeping insertion order
// for ties, filtered by name and expiry window.
func (s *foodService) GetFoodItems(_ context.Context, filter domain.FoodItemFilter) ([]domain.FoodItemResponse, error) {
	now := s.clock()
	query := strings.ToLower(strings.TrimSpace(filter.Query))
	window := expiry.Window(filter.Window)

	s.mu.RLock()
	items := slices.Clone(s.items)
	s.mu.RUnlock()

	days := make(map[string]int, len(items))
	for _, item := range items {
		days[item.ID] = expiry.DaysUntil(item.ExpiryDate, now)
	}
	sort.SliceStable(items, func(i, j int) bool {
		return days[items[i].ID] < days[items[j].ID]
	})

	res := make([]domain.FoodItemResponse, 0, len(items))
	for _, item := range items {
		if !strings.Contains(strings.ToLower(item.Name), query) {
			continue
		}
		if !window.Contains(days[item.ID]) {
			continue
		}
		res = append(res, s.toResponse(item, now))
	}

	return res, nil
}

func (s *foodService) GetFoodItemByID(_ context.Context, id string) (domain.FoodItemResponse, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	index := s.indexOf(id)
	if index < 0 {
		return domain.FoodItemResponse{}, domain.ErrFoodItemNotFound
	}

	return s.toResponse(s.items[index], s.clock()), nil
}

func (s *foodService) GetDashboardStats(_ context.Context, categories []string) (domain.DashboardStatsResponse, error) {
	now := s.clock()

	s.mu.RLock()
	items := slices.Clone(s.items)
	s.mu.RUnlock()

	total := len(items)
	depleted := 0
	for _, item := range items {
		if quantity.IsDepleted(item.Quantity) {
			depleted++
		}
	}

	byCategory := CountByCategory(items, categories)
	categoryStats := make([]domain.CategoryStat, 0, len(categories))
	for _, label := range categories {
		categoryStats = append(categoryStats, domain.CategoryStat{
			Category:   label,
			Count:      byCategory[label],
			Percentage: Percentage(byCategory[label], total),
			Color:      category.FoodColor(label, categories),
		})
	}

	byUrgency := CountByUrgency(items, now)
	urgencyStats := make([]domain.UrgencyStat, 0, len(byUrgency))
	for _, bucket := range UrgencyBuckets() {
		urgencyStats = append(urgencyStats, domain.UrgencyStat{
			Bucket:     bucket,
			Count:      byUrgency[bucket],
			Percentage: Percentage(byUrgency[bucket], total),
		})
	}

	return domain.DashboardStatsResponse{
		TotalItems:    total,
		DepletedItems: depleted,
		ByCategory:    categoryStats,
		ByUrgency:     urgencyStats,
	}, nil
}

func (s *foodService) CountItemsInCategory(_ context.Context, label string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	count := 0
	for _, item := range s.items {
		if item.Category == label {
			count++
		}
	}
	return count
}

func (s *foodService) Items(_ context.Context) []entities.FoodItem {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return slices.Clone(s.items)
}

// indexOf must be called with s.mu held.
func (s *foodService) indexOf(id string) int {
	return slices.IndexFunc(s.items, func(item entities.FoodItem) bool {
		return item.ID == id
	})
}

// persist must be called with s.mu held. Save failures keep the in-memory
// collection authoritative.
func (s *foodService) persist(ctx context.Context) {
	if err := s.foodRepository.SaveFoodItems(ctx, s.items); err != nil {
		s.log.WarnContext(ctx, "failed to persist food items", "error", err)
	}
}

func (s *foodService) toResponse(item entities.FoodItem, now time.Time) domain.FoodItemResponse {
	status := expiry.StatusOf(item.ExpiryDate, now)

	return domain.FoodItemResponse{
		ID:         item.ID,
		Name:       item.Name,
		Quantity:   item.Quantity,
		ExpiryDate: item.ExpiryDate,
		Category:   item.Category,
		AddedDate:  item.AddedDate,
		DaysLeft:   status.Days,
		Severity:   string(status.Severity),
		StatusText: status.Text,
		Tone:       status.Tone,
		Depleted:   quantity.IsDepleted(item.Quantity),
	}
}
