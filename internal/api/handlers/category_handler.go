package handlers

import (
	"fridgemate/domain"
	"fridgemate/internal/api/presenters"
	"fridgemate/pkg/category"
	"fridgemate/pkg/food"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	CategoryHandler interface {
		GetCategories(c *fiber.Ctx) error
		AddCategory(c *fiber.Ctx) error
		DeleteCategory(c *fiber.Ctx) error
		GetRecipeCategories(c *fiber.Ctx) error
	}

	categoryHandler struct {
		categoryService category.CategoryService
		foodService     food.FoodService
		validator       *validator.Validate
	}
)

func NewCategoryHandler(categoryService category.CategoryService, foodService food.FoodService, validator *validator.Validate) CategoryHandler {
	return &categoryHandler{
		categoryService: categoryService,
		foodService:     foodService,
		validator:       validator,
	}
}

func (h *categoryHandler) GetCategories(c *fiber.Ctx) error {
	return presenters.SuccessResponse(c, h.categoryService.GetCategories(c.Context()), fiber.StatusOK, domain.MessageSuccessGetCategories)
}

func (h *categoryHandler) AddCategory(c *fiber.Ctx) error {
	req := new(domain.AddCategoryRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddCategory, err)
	}

	res, err := h.categoryService.AddCategory(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedAddCategory, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessAddCategory)
}

// DeleteCategory leaves items that still use the label untouched and reports
// how many there are.
func (h *categoryHandler) DeleteCategory(c *fiber.Ctx) error {
	name := c.Params("name")

	res, err := h.categoryService.DeleteCategory(c.Context(), name, c.Query("active"))
	if err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedDeleteCategory, err)
	}
	res.OrphanedItems = h.foodService.CountItemsInCategory(c.Context(), name)

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessDeleteCategory)
}

func (h *categoryHandler) GetRecipeCategories(c *fiber.Ctx) error {
	return presenters.SuccessResponse(c, h.categoryService.GetRecipeCategories(c.Context()), fiber.StatusOK, domain.MessageSuccessGetCategories)
}
