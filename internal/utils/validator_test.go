package utils_test

import (
	"errors"
	"testing"

	"fridgemate/domain"
	"fridgemate/internal/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewValidator_ExpiryDate(t *testing.T) {
	t.Parallel()

	v := utils.NewValidator()

	valid := domain.AddFoodItemRequest{Name: "우유", Quantity: "1개", ExpiryDate: "2024/03/12"}
	require.NoError(t, v.Struct(valid))

	invalid := domain.AddFoodItemRequest{Name: "우유", Quantity: "1개", ExpiryDate: "tomorrow"}
	err := v.Struct(invalid)
	require.Error(t, err)
	assert.Equal(t, "expiryDate is not a valid date", utils.ValidationMessage(err))
}

func TestValidationMessage(t *testing.T) {
	t.Parallel()

	v := utils.NewValidator()

	err := v.Struct(domain.RecipeCandidate{Description: "d", CookingTime: "10분", Ingredients: []string{"egg"}})
	require.Error(t, err)
	assert.Equal(t, "name is required", utils.ValidationMessage(err))

	err = v.Struct(domain.RecipeCandidate{Name: "A", Description: "d", CookingTime: "10분", Ingredients: []string{}})
	require.Error(t, err)
	assert.Equal(t, "ingredients must have at least 1 entries", utils.ValidationMessage(err))

	assert.Equal(t, "boom", utils.ValidationMessage(errors.New("boom")))
}

func TestNewValidator_DarkModeRequiresValue(t *testing.T) {
	t.Parallel()

	v := utils.NewValidator()
	assert.Error(t, v.Struct(domain.DarkModeRequest{}))

	off := false
	assert.NoError(t, v.Struct(domain.DarkModeRequest{DarkMode: &off}))
}
