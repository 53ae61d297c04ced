package domain

import (
	"errors"

	"fridgemate/entities"
)

var (
	MessageSuccessGetRecipes         = "success get recipes"
	MessageSuccessSaveRecipe         = "recipe saved successfully"
	MessageSuccessUpdateRecipe       = "recipe updated successfully"
	MessageSuccessDeleteRecipe       = "recipe deleted successfully"
	MessageSuccessImportRecipes      = "recipes imported successfully"
	MessageSuccessExportRecipes      = "recipes exported successfully"
	MessageSuccessGetRecommendations = "success get recipe recommendations"
	MessageSuccessGetShoppingList    = "success get shopping list"

	MessageFailedGetRecipes      = "failed to get recipes"
	MessageFailedSaveRecipe      = "failed to save recipe"
	MessageFailedUpdateRecipe    = "failed to update recipe"
	MessageFailedDeleteRecipe    = "failed to delete recipe"
	MessageFailedImportRecipes   = "failed to import recipes"
	MessageFailedExportRecipes   = "failed to export recipes"
	MessageFailedGetShoppingList = "failed to get shopping list"

	ErrRecipeNotFound     = errors.New("recipe not found")
	ErrExportSinkDisabled = errors.New("export backup is not configured")
)

type (
	RecipeRequest struct {
		Name           string   `json:"name" validate:"required"`
		Description    string   `json:"description" validate:"required"`
		CookingTime    string   `json:"cookingTime" validate:"required"`
		Ingredients    []string `json:"ingredients" validate:"required,min=1,dive,required"`
		URL            string   `json:"url" validate:"omitempty,url"`
		RecipeCategory string   `json:"recipeCategory"`
	}

	// UpdateRecipeRequest is a shallow patch: nil fields are left untouched.
	UpdateRecipeRequest struct {
		Name           *string   `json:"name" validate:"omitempty,min=1"`
		Description    *string   `json:"description" validate:"omitempty,min=1"`
		CookingTime    *string   `json:"cookingTime" validate:"omitempty,min=1"`
		Ingredients    *[]string `json:"ingredients" validate:"omitempty,min=1"`
		URL            *string   `json:"url"`
		RecipeCategory *string   `json:"recipeCategory"`
	}

	// RecipeCandidate is one record offered to the importer.
	RecipeCandidate struct {
		Name           string   `json:"name" validate:"required"`
		Description    string   `json:"description" validate:"required"`
		CookingTime    string   `json:"cookingTime" validate:"required"`
		Ingredients    []string `json:"ingredients" validate:"required,min=1"`
		URL            string   `json:"url"`
		RecipeCategory string   `json:"recipeCategory"`
	}

	CandidateVerdict struct {
		Index    int    `json:"index"`
		Name     string `json:"name,omitempty"`
		Accepted bool   `json:"accepted"`
		Reason   string `json:"reason,omitempty"`
	}

	ImportResult struct {
		Accepted int                `json:"accepted"`
		Verdicts []CandidateVerdict `json:"verdicts"`
	}

	RecipeFilter struct {
		Category string
		Query    string
	}

	RecipeRecommendationRequest struct {
		IncludeExpiringOnly bool
		Category            string
		Query               string
	}

	MatchResult struct {
		MatchCount      int  `json:"matchCount"`
		MatchPercentage int  `json:"matchPercentage"`
		HasUrgent       bool `json:"hasUrgent"`
	}

	MatchedRecipe struct {
		entities.Recipe
		MatchResult
	}

	RecipeRecommendationResponse struct {
		Recipes       []MatchedRecipe `json:"recipes"`
		TotalRecipes  int             `json:"total_recipes"`
		ExpiringItems int             `json:"expiring_items"`
	}

	// RecipeSelection identifies a recipe the way the selection toggle does:
	// by ID, or by name when the recipe is bundled and has no ID.
	RecipeSelection struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}

	ShoppingListRequest struct {
		Selected []RecipeSelection `json:"selected" validate:"required,min=1,dive"`
	}

	RecipeShopping struct {
		Name   string   `json:"name"`
		Have   []string `json:"have"`
		Need   []string `json:"need"`
		HasAll bool     `json:"has_all"`
	}

	ShoppingListResponse struct {
		Recipes []RecipeShopping `json:"recipes"`
		Needed  []string         `json:"needed"`
	}

	ExportBackupResponse struct {
		Location string `json:"location"`
	}
)
