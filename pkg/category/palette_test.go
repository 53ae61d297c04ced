package category_test

import (
	"testing"

	"fridgemate/pkg/category"

	"github.com/stretchr/testify/assert"
)

func TestColorToken(t *testing.T) {
	t.Parallel()

	labels := []string{"a", "b", "c"}
	palette := []string{"red", "blue"}

	assert.Equal(t, "red", category.ColorToken("a", labels, palette))
	assert.Equal(t, "blue", category.ColorToken("b", labels, palette))
	assert.Equal(t, "red", category.ColorToken("c", labels, palette), "wraps around")
	assert.Equal(t, "red", category.ColorToken("orphan", labels, palette), "unknown label")
	assert.Empty(t, category.ColorToken("a", labels, nil))
}

func TestFoodColor_DefaultCategories(t *testing.T) {
	t.Parallel()

	labels := category.DefaultFoodCategories
	assert.Equal(t, "green", category.FoodColor("채소", labels))
	assert.Equal(t, "red", category.FoodColor("과일", labels))
	assert.Equal(t, "purple", category.FoodColor("기타", labels))
	assert.Equal(t, "green", category.FoodColor("삭제된 분류", labels))
}
