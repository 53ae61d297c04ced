// Package kvstore is the flat key/value blob store the stores persist their
// collections into. Every collection is one key holding a JSON document.
package kvstore

import (
	"context"
	"encoding/json"
	"fmt"
)

const (
	KeyFoodItems        = "fridgeItems"
	KeyCustomRecipes    = "customRecipes"
	KeyFoodCategories   = "fridgeCategories"
	KeyRecipeCategories = "recipeCategories"
	KeyDarkMode         = "darkMode"
)

type KeyValueStore interface {
	// Load returns the stored value and whether the key exists.
	Load(ctx context.Context, key string) (string, bool, error)
	Save(ctx context.Context, key string, value string) error
	Remove(ctx context.Context, key string) error
}

// LoadJSON decodes the value under key into dst. It reports false when the key
// is absent, leaving dst untouched.
func LoadJSON(ctx context.Context, store KeyValueStore, key string, dst any) (bool, error) {
	value, found, err := store.Load(ctx, key)
	if err != nil {
		return false, fmt.Errorf("loading %s: %w", key, err)
	}
	if !found {
		return false, nil
	}
	if err := json.Unmarshal([]byte(value), dst); err != nil {
		return false, fmt.Errorf("decoding %s: %w", key, err)
	}
	return true, nil
}

func SaveJSON(ctx context.Context, store KeyValueStore, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", key, err)
	}
	if err := store.Save(ctx, key, string(data)); err != nil {
		return fmt.Errorf("saving %s: %w", key, err)
	}
	return nil
}
