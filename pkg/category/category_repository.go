package category

import (
	"context"

	"fridgemate/internal/kvstore"
)

type (
	CategoryRepository interface {
		GetFoodCategories(ctx context.Context) ([]string, bool, error)
		SaveFoodCategories(ctx context.Context, categories []string) error
		GetRecipeCategories(ctx context.Context) ([]string, bool, error)
		SaveRecipeCategories(ctx context.Context, categories []string) error
	}

	categoryRepository struct {
		store kvstore.KeyValueStore
	}
)

func NewCategoryRepository(store kvstore.KeyValueStore) CategoryRepository {
	return &categoryRepository{store: store}
}

func (r *categoryRepository) GetFoodCategories(ctx context.Context) ([]string, bool, error) {
	return r.load(ctx, kvstore.KeyFoodCategories)
}

func (r *categoryRepository) SaveFoodCategories(ctx context.Context, categories []string) error {
	return kvstore.SaveJSON(ctx, r.store, kvstore.KeyFoodCategories, categories)
}

func (r *categoryRepository) GetRecipeCategories(ctx context.Context) ([]string, bool, error) {
	return r.load(ctx, kvstore.KeyRecipeCategories)
}

func (r *categoryRepository) SaveRecipeCategories(ctx context.Context, categories []string) error {
	return kvstore.SaveJSON(ctx, r.store, kvstore.KeyRecipeCategories, categories)
}

func (r *categoryRepository) load(ctx context.Context, key string) ([]string, bool, error) {
	var categories []string
	found, err := kvstore.LoadJSON(ctx, r.store, key, &categories)
	if err != nil {
		return nil, false, err
	}
	return categories, found, nil
}
