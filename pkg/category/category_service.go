// Package category manages the user's food category labels and the fixed
// recipe category labels, along with their display tokens.
package category

import (
	"context"
	"log/slog"
	"slices"
	"strings"
	"sync"

	"fridgemate/domain"
)

var (
	DefaultFoodCategories   = []string{"채소", "과일", "육류", "유제품", "기타"}
	DefaultRecipeCategories = []string{"한식", "중식", "일식", "양식", "디저트", "기타"}
)

type (
	CategoryService interface {
		Labels(ctx context.Context) []string
		GetCategories(ctx context.Context) []domain.CategoryResponse
		AddCategory(ctx context.Context, req domain.AddCategoryRequest) ([]domain.CategoryResponse, error)
		DeleteCategory(ctx context.Context, name string, active string) (domain.DeleteCategoryResponse, error)

		RecipeLabels(ctx context.Context) []string
		GetRecipeCategories(ctx context.Context) []domain.CategoryResponse
	}

	categoryService struct {
		mu                 sync.RWMutex
		categoryRepository CategoryRepository
		log                *slog.Logger

		food   []string
		recipe []string
	}
)

func NewCategoryService(ctx context.Context, categoryRepository CategoryRepository, log *slog.Logger) CategoryService {
	s := &categoryService{
		categoryRepository: categoryRepository,
		log:                log.With("service", "category"),
	}

	s.food = s.loadOrSeed(ctx, "food", categoryRepository.GetFoodCategories, categoryRepository.SaveFoodCategories, DefaultFoodCategories)
	s.recipe = s.loadOrSeed(ctx, "recipe", categoryRepository.GetRecipeCategories, categoryRepository.SaveRecipeCategories, DefaultRecipeCategories)

	return s
}

func (s *categoryService) loadOrSeed(
	ctx context.Context,
	kind string,
	load func(context.Context) ([]string, bool, error),
	save func(context.Context, []string) error,
	defaults []string,
) []string {
	categories, found, err := load(ctx)
	if err != nil {
		s.log.WarnContext(ctx, "falling back to default categories", "kind", kind, "error", err)
	}
	if err == nil && found && len(categories) > 0 {
		return categories
	}

	categories = slices.Clone(defaults)
	if err := save(ctx, categories); err != nil {
		s.log.WarnContext(ctx, "failed to persist categories", "kind", kind, "error", err)
	}
	return categories
}

func (s *categoryService) Labels(_ context.Context) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return slices.Clone(s.food)
}

func (s *categoryService) GetCategories(_ context.Context) []domain.CategoryResponse {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return toResponses(s.food, FoodPalette)
}

func (s *categoryService) AddCategory(ctx context.Context, req domain.AddCategoryRequest) ([]domain.CategoryResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, domain.ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if slices.Contains(s.food, name) {
		return nil, domain.ErrCategoryExists
	}

	s.food = append(s.food, name)
	s.persistFood(ctx)

	return toResponses(s.food, FoodPalette), nil
}

// DeleteCategory removes a food category unless it is the last one. When the
// removed label was the active one, the first remaining label becomes active.
func (s *categoryService) DeleteCategory(ctx context.Context, name string, active string) (domain.DeleteCategoryResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.food) <= 1 {
		return domain.DeleteCategoryResponse{}, domain.ErrLastCategory
	}

	index := slices.Index(s.food, name)
	if index < 0 {
		return domain.DeleteCategoryResponse{}, domain.ErrCategoryNotFound
	}

	s.food = slices.Delete(s.food, index, index+1)
	s.persistFood(ctx)

	if active == "" || active == name {
		active = s.food[0]
	}

	return domain.DeleteCategoryResponse{
		Categories: slices.Clone(s.food),
		Active:     active,
	}, nil
}

func (s *categoryService) RecipeLabels(_ context.Context) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return slices.Clone(s.recipe)
}

func (s *categoryService) GetRecipeCategories(_ context.Context) []domain.CategoryResponse {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return toResponses(s.recipe, RecipePalette)
}

func (s *categoryService) persistFood(ctx context.Context) {
	if err := s.categoryRepository.SaveFoodCategories(ctx, s.food); err != nil {
		s.log.WarnContext(ctx, "failed to persist categories", "kind", "food", "error", err)
	}
}

func toResponses(labels []string, palette []string) []domain.CategoryResponse {
	res := make([]domain.CategoryResponse, 0, len(labels))
	for _, label := range labels {
		res = append(res, domain.CategoryResponse{
			Name:  label,
			Color: ColorToken(label, labels, palette),
		})
	}
	return res
}
