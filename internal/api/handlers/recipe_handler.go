package handlers

import (
	"errors"

	"fridgemate/domain"
	"fridgemate/internal/api/presenters"
	"fridgemate/pkg/recipe"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	RecipeHandler interface {
		GetRecipes(c *fiber.Ctx) error
		GetRecipeDetail(c *fiber.Ctx) error
		AddRecipe(c *fiber.Ctx) error
		UpdateRecipe(c *fiber.Ctx) error
		DeleteRecipe(c *fiber.Ctx) error
		ImportRecipes(c *fiber.Ctx) error
		ExportRecipes(c *fiber.Ctx) error
		BackupRecipes(c *fiber.Ctx) error
		GetRecipeRecommendations(c *fiber.Ctx) error
		BrowseAllRecipes(c *fiber.Ctx) error
		GetShoppingList(c *fiber.Ctx) error
	}

	recipeHandler struct {
		recipeService recipe.RecipeService
		validator     *validator.Validate
	}
)

func NewRecipeHandler(recipeService recipe.RecipeService, validator *validator.Validate) RecipeHandler {
	return &recipeHandler{
		recipeService: recipeService,
		validator:     validator,
	}
}

func (h *recipeHandler) GetRecipes(c *fiber.Ctx) error {
	filter := domain.RecipeFilter{
		Category: c.Query("category", recipe.AllCategories),
		Query:    c.Query("q"),
	}

	recipes, err := h.recipeService.GetRecipes(c.Context(), filter)
	if err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedGetRecipes, err)
	}

	return presenters.SuccessResponse(c, recipes, fiber.StatusOK, domain.MessageSuccessGetRecipes)
}

func (h *recipeHandler) GetRecipeDetail(c *fiber.Ctx) error {
	res, err := h.recipeService.GetRecipeByID(c.Context(), c.Params("id"))
	if err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedGetRecipes, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetRecipes)
}

func (h *recipeHandler) AddRecipe(c *fiber.Ctx) error {
	req := new(domain.RecipeRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSaveRecipe, err)
	}

	res, err := h.recipeService.AddRecipe(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedSaveRecipe, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessSaveRecipe)
}

func (h *recipeHandler) UpdateRecipe(c *fiber.Ctx) error {
	req := new(domain.UpdateRecipeRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateRecipe, err)
	}

	res, err := h.recipeService.UpdateRecipe(c.Context(), c.Params("id"), *req)
	if err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedUpdateRecipe, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateRecipe)
}

func (h *recipeHandler) DeleteRecipe(c *fiber.Ctx) error {
	if err := h.recipeService.DeleteRecipe(c.Context(), c.Params("id")); err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedDeleteRecipe, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteRecipe)
}

// ImportRecipes takes the raw JSON array as the request body.
func (h *recipeHandler) ImportRecipes(c *fiber.Ctx) error {
	res, err := h.recipeService.ImportRecipesJSON(c.Context(), c.Body())
	if errors.Is(err, domain.ErrImportMalformed) {
		return presenters.ErrorResponseWithData(c, fiber.StatusUnprocessableEntity, domain.MessageFailedImportRecipes, err, res)
	}
	if err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedImportRecipes, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessImportRecipes)
}

// ExportRecipes answers with the bare JSON array so it can be saved and
// imported again as is.
func (h *recipeHandler) ExportRecipes(c *fiber.Ctx) error {
	data, err := h.recipeService.ExportRecipes(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedExportRecipes, err)
	}

	c.Set(fiber.HeaderContentDisposition, `attachment; filename="recipes.json"`)
	c.Type("json", "utf-8")
	return c.Status(fiber.StatusOK).SendString(data)
}

func (h *recipeHandler) BackupRecipes(c *fiber.Ctx) error {
	res, err := h.recipeService.BackupRecipes(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedExportRecipes, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessExportRecipes)
}

func (h *recipeHandler) GetRecipeRecommendations(c *fiber.Ctx) error {
	req := domain.RecipeRecommendationRequest{
		IncludeExpiringOnly: c.QueryBool("expiring_only", false),
		Category:            c.Query("category", recipe.AllCategories),
		Query:               c.Query("q"),
	}

	res, err := h.recipeService.GetRecommendations(c.Context(), req)
	if err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedGetRecipes, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetRecommendations)
}

func (h *recipeHandler) BrowseAllRecipes(c *fiber.Ctx) error {
	filter := domain.RecipeFilter{
		Category: c.Query("category", recipe.AllCategories),
		Query:    c.Query("q"),
	}

	res, err := h.recipeService.BrowseAllRecipes(c.Context(), filter)
	if err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedGetRecipes, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetRecipes)
}

func (h *recipeHandler) GetShoppingList(c *fiber.Ctx) error {
	req := new(domain.ShoppingListRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetShoppingList, err)
	}

	res, err := h.recipeService.GetShoppingList(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedGetShoppingList, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetShoppingList)
}
