package food

import (
	"context"

	"fridgemate/entities"
	"fridgemate/internal/kvstore"
)

type (
	FoodRepository interface {
		GetFoodItems(ctx context.Context) ([]entities.FoodItem, error)
		SaveFoodItems(ctx context.Context, items []entities.FoodItem) error
	}

	foodRepository struct {
		store kvstore.KeyValueStore
	}
)

func NewFoodRepository(store kvstore.KeyValueStore) FoodRepository {
	return &foodRepository{store: store}
}

func (r *foodRepository) GetFoodItems(ctx context.Context) ([]entities.FoodItem, error) {
	var items []entities.FoodItem
	if _, err := kvstore.LoadJSON(ctx, r.store, kvstore.KeyFoodItems, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *foodRepository) SaveFoodItems(ctx context.Context, items []entities.FoodItem) error {
	if items == nil {
		items = []entities.FoodItem{}
	}
	return kvstore.SaveJSON(ctx, r.store, kvstore.KeyFoodItems, items)
}
