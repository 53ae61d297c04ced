package category_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"fridgemate/domain"
	"fridgemate/internal/kvstore"
	"fridgemate/pkg/category"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestService(t *testing.T, store kvstore.KeyValueStore) category.CategoryService {
	t.Helper()
	return category.NewCategoryService(context.Background(), category.NewCategoryRepository(store), discardLogger())
}

type failingStore struct{}

func (failingStore) Load(context.Context, string) (string, bool, error) {
	return "", false, errors.New("disk unavailable")
}

func (failingStore) Save(context.Context, string, string) error {
	return errors.New("disk unavailable")
}

func (failingStore) Remove(context.Context, string) error {
	return errors.New("disk unavailable")
}

func TestNewCategoryService_SeedsDefaults(t *testing.T) {
	ctx := context.Background()
	store := kvstore.NewMemoryStore()

	svc := newTestService(t, store)
	assert.Equal(t, category.DefaultFoodCategories, svc.Labels(ctx))
	assert.Equal(t, category.DefaultRecipeCategories, svc.RecipeLabels(ctx))

	var stored []string
	found, err := kvstore.LoadJSON(ctx, store, kvstore.KeyRecipeCategories, &stored)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, category.DefaultRecipeCategories, stored)
}

func TestNewCategoryService_LoadsStoredLabels(t *testing.T) {
	ctx := context.Background()
	store := kvstore.NewMemoryStore()
	require.NoError(t, kvstore.SaveJSON(ctx, store, kvstore.KeyFoodCategories, []string{"냉동", "음료"}))

	svc := newTestService(t, store)
	assert.Equal(t, []string{"냉동", "음료"}, svc.Labels(ctx))
}

func TestNewCategoryService_CorruptValueFallsBack(t *testing.T) {
	ctx := context.Background()
	store := kvstore.NewMemoryStore()
	require.NoError(t, store.Save(ctx, kvstore.KeyFoodCategories, "[oops"))

	svc := newTestService(t, store)
	assert.Equal(t, category.DefaultFoodCategories, svc.Labels(ctx))
}

func TestNewCategoryService_FailingStore(t *testing.T) {
	ctx := context.Background()

	svc := newTestService(t, failingStore{})
	assert.Equal(t, category.DefaultFoodCategories, svc.Labels(ctx))

	_, err := svc.AddCategory(ctx, domain.AddCategoryRequest{Name: "냉동"})
	require.NoError(t, err)
	assert.Contains(t, svc.Labels(ctx), "냉동")
}

func TestAddCategory(t *testing.T) {
	ctx := context.Background()
	store := kvstore.NewMemoryStore()
	svc := newTestService(t, store)

	res, err := svc.AddCategory(ctx, domain.AddCategoryRequest{Name: "  냉동 "})
	require.NoError(t, err)
	require.Len(t, res, 6)
	assert.Equal(t, domain.CategoryResponse{Name: "냉동", Color: "yellow"}, res[5])

	_, err = svc.AddCategory(ctx, domain.AddCategoryRequest{Name: "냉동"})
	assert.ErrorIs(t, err, domain.ErrCategoryExists)

	_, err = svc.AddCategory(ctx, domain.AddCategoryRequest{Name: "   "})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	reloaded := newTestService(t, store)
	assert.Equal(t, append(append([]string{}, category.DefaultFoodCategories...), "냉동"), reloaded.Labels(ctx))
}

func TestDeleteCategory_ActiveFallsBackToFirstRemaining(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t, kvstore.NewMemoryStore())

	res, err := svc.DeleteCategory(ctx, "채소", "채소")
	require.NoError(t, err)
	assert.Equal(t, []string{"과일", "육류", "유제품", "기타"}, res.Categories)
	assert.Equal(t, "과일", res.Active)

	res, err = svc.DeleteCategory(ctx, "육류", "기타")
	require.NoError(t, err)
	assert.Equal(t, "기타", res.Active)
}

func TestDeleteCategory_LastCategoryIsKept(t *testing.T) {
	ctx := context.Background()
	store := kvstore.NewMemoryStore()
	require.NoError(t, kvstore.SaveJSON(ctx, store, kvstore.KeyFoodCategories, []string{"채소", "과일"}))
	svc := newTestService(t, store)

	_, err := svc.DeleteCategory(ctx, "과일", "채소")
	require.NoError(t, err)

	_, err = svc.DeleteCategory(ctx, "채소", "채소")
	assert.ErrorIs(t, err, domain.ErrLastCategory)
	assert.Equal(t, []string{"채소"}, svc.Labels(ctx))
}

func TestDeleteCategory_Unknown(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t, kvstore.NewMemoryStore())

	_, err := svc.DeleteCategory(ctx, "없음", "")
	assert.ErrorIs(t, err, domain.ErrCategoryNotFound)
	assert.Len(t, svc.Labels(ctx), 5)
}

func TestGetRecipeCategories_Colors(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t, kvstore.NewMemoryStore())

	res := svc.GetRecipeCategories(ctx)
	require.Len(t, res, 6)
	assert.Equal(t, "rose", res[0].Color)
	assert.Equal(t, "amber", res[1].Color)
	assert.Equal(t, "emerald", category.RecipeColor("x", []string{"a", "b", "c", "d", "e", "f", "x"}))
}
