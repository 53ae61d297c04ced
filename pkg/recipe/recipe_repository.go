package recipe

import (
	"context"

	"fridgemate/entities"
	"fridgemate/internal/kvstore"
)

type (
	RecipeRepository interface {
		GetCustomRecipes(ctx context.Context) ([]entities.Recipe, error)
		SaveCustomRecipes(ctx context.Context, recipes []entities.Recipe) error
	}

	recipeRepository struct {
		store kvstore.KeyValueStore
	}
)

func NewRecipeRepository(store kvstore.KeyValueStore) RecipeRepository {
	return &recipeRepository{store: store}
}

func (r *recipeRepository) GetCustomRecipes(ctx context.Context) ([]entities.Recipe, error) {
	var recipes []entities.Recipe
	if _, err := kvstore.LoadJSON(ctx, r.store, kvstore.KeyCustomRecipes, &recipes); err != nil {
		return nil, err
	}
	return recipes, nil
}

func (r *recipeRepository) SaveCustomRecipes(ctx context.Context, recipes []entities.Recipe) error {
	if recipes == nil {
		recipes = []entities.Recipe{}
	}
	return kvstore.SaveJSON(ctx, r.store, kvstore.KeyCustomRecipes, recipes)
}
