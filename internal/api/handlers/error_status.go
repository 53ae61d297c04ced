package handlers

import (
	"errors"

	"fridgemate/domain"

	"github.com/gofiber/fiber/v2"
)

func errorStatus(err error) int {
	switch {
	case errors.Is(err, domain.ErrFoodItemNotFound),
		errors.Is(err, domain.ErrRecipeNotFound),
		errors.Is(err, domain.ErrCategoryNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, domain.ErrCategoryExists),
		errors.Is(err, domain.ErrLastCategory):
		return fiber.StatusConflict
	case errors.Is(err, domain.ErrExportSinkDisabled):
		return fiber.StatusServiceUnavailable
	default:
		return fiber.StatusBadRequest
	}
}
