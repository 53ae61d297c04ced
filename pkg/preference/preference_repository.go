package preference

import (
	"context"

	"fridgemate/internal/kvstore"
)

type (
	PreferenceRepository interface {
		GetDarkMode(ctx context.Context) (bool, error)
		SaveDarkMode(ctx context.Context, enabled bool) error
	}

	preferenceRepository struct {
		store kvstore.KeyValueStore
	}
)

func NewPreferenceRepository(store kvstore.KeyValueStore) PreferenceRepository {
	return &preferenceRepository{store: store}
}

func (r *preferenceRepository) GetDarkMode(ctx context.Context) (bool, error) {
	var enabled bool
	if _, err := kvstore.LoadJSON(ctx, r.store, kvstore.KeyDarkMode, &enabled); err != nil {
		return false, err
	}
	return enabled, nil
}

func (r *preferenceRepository) SaveDarkMode(ctx context.Context, enabled bool) error {
	return kvstore.SaveJSON(ctx, r.store, kvstore.KeyDarkMode, enabled)
}
