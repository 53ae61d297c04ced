// Package recipe owns the custom recipe collection and ranks recipes against
// what is in the fridge.
package recipe

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"sync"

	"fridgemate/domain"
	"fridgemate/entities"
	"fridgemate/internal/utils"
	"fridgemate/internal/utils/storage"
	"fridgemate/pkg/expiry"
	"fridgemate/pkg/food"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

const exportFolder = "recipes"

type (
	RecipeService interface {
		GetRecipes(ctx context.Context, filter domain.RecipeFilter) ([]entities.Recipe, error)
		GetRecipeByID(ctx context.Context, id string) (entities.Recipe, error)
		AddRecipe(ctx context.Context, req domain.RecipeRequest) (entities.Recipe, error)
		UpdateRecipe(ctx context.Context, id string, req domain.UpdateRecipeRequest) (entities.Recipe, error)
		DeleteRecipe(ctx context.Context, id string) error

		ImportRecipes(ctx context.Context, candidates []domain.RecipeCandidate) (domain.ImportResult, error)
		ImportRecipesJSON(ctx context.Context, data []byte) (domain.ImportResult, error)
		ExportRecipes(ctx context.Context) (string, error)
		BackupRecipes(ctx context.Context) (domain.ExportBackupResponse, error)

		GetRecommendations(ctx context.Context, req domain.RecipeRecommendationRequest) (domain.RecipeRecommendationResponse, error)
		BrowseAllRecipes(ctx context.Context, filter domain.RecipeFilter) ([]domain.MatchedRecipe, error)
		GetShoppingList(ctx context.Context, req domain.ShoppingListRequest) (domain.ShoppingListResponse, error)
	}

	recipeService struct {
		mu               sync.RWMutex
		recipeRepository RecipeRepository
		foodService      food.FoodService
		validator        *validator.Validate
		s3               storage.AwsS3
		clock            expiry.Clock
		log              *slog.Logger

		catalog []entities.Recipe
		custom  []entities.Recipe
	}
)

// NewRecipeService loads the custom recipes once. s3 may be nil, in which
// case backups are disabled.
func NewRecipeService(
	ctx context.Context,
	recipeRepository RecipeRepository,
	foodService food.FoodService,
	catalog []entities.Recipe,
	validator *validator.Validate,
	s3 storage.AwsS3,
	clock expiry.Clock,
	log *slog.Logger,
) RecipeService {
	s := &recipeService{
		recipeRepository: recipeRepository,
		foodService:      foodService,
		validator:        validator,
		s3:               s3,
		clock:            clock,
		log:              log.With("service", "recipe"),
		catalog:          slices.Clone(catalog),
	}

	custom, err := recipeRepository.GetCustomRecipes(ctx)
	if err != nil {
		s.log.WarnContext(ctx, "failed to load custom recipes, starting empty", "error", err)
	}
	s.custom = custom

	return s
}

func (s *recipeService) GetRecipes(_ context.Context, filter domain.RecipeFilter) ([]entities.Recipe, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return FilterRecipes(s.custom, filter), nil
}

func (s *recipeService) GetRecipeByID(_ context.Context, id string) (entities.Recipe, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	index := s.indexOf(id)
	if index < 0 {
		return entities.Recipe{}, domain.ErrRecipeNotFound
	}
	return s.custom[index], nil
}

func (s *recipeService) AddRecipe(ctx context.Context, req domain.RecipeRequest) (entities.Recipe, error) {
	recipe := entities.Recipe{
		ID:             newRecipeID(),
		Name:           strings.TrimSpace(req.Name),
		Description:    strings.TrimSpace(req.Description),
		CookingTime:    strings.TrimSpace(req.CookingTime),
		Ingredients:    normalizeIngredients(req.Ingredients),
		URL:            strings.TrimSpace(req.URL),
		RecipeCategory: strings.TrimSpace(req.RecipeCategory),
		IsCustom:       true,
	}
	if recipe.Name == "" || recipe.Description == "" || recipe.CookingTime == "" || len(recipe.Ingredients) == 0 {
		return entities.Recipe{}, domain.ErrInvalidInput
	}
	if recipe.RecipeCategory == "" {
		recipe.RecipeCategory = entities.DefaultRecipeCategory
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.custom = append(s.custom, recipe)
	s.persist(ctx)

	return recipe, nil
}

// UpdateRecipe merges the non-nil patch fields. ID and IsCustom never change.
func (s *recipeService) UpdateRecipe(ctx context.Context, id string, req domain.UpdateRecipeRequest) (entities.Recipe, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	index := s.indexOf(id)
	if index < 0 {
		return entities.Recipe{}, domain.ErrRecipeNotFound
	}

	recipe := s.custom[index]
	for _, field := range []struct {
		patch *string
		dst   *string
	}{
		{req.Name, &recipe.Name},
		{req.Description, &recipe.Description},
		{req.CookingTime, &recipe.CookingTime},
	} {
		if field.patch == nil {
			continue
		}
		value := strings.TrimSpace(*field.patch)
		if value == "" {
			return entities.Recipe{}, domain.ErrInvalidInput
		}
		*field.dst = value
	}

	if req.Ingredients != nil {
		ingredients := normalizeIngredients(*req.Ingredients)
		if len(ingredients) == 0 {
			return entities.Recipe{}, domain.ErrInvalidInput
		}
		recipe.Ingredients = ingredients
	}
	if req.URL != nil {
		recipe.URL = strings.TrimSpace(*req.URL)
	}
	if req.RecipeCategory != nil {
		recipe.RecipeCategory = strings.TrimSpace(*req.RecipeCategory)
	}

	s.custom[index] = recipe
	s.persist(ctx)

	return recipe, nil
}

func (s *recipeService) DeleteRecipe(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	index := s.indexOf(id)
	if index < 0 {
		return nil
	}

	s.custom = slices.Delete(s.custom, index, index+1)
	s.persist(ctx)

	return nil
}

// ImportRecipes checks every candidate on its own and appends the accepted
// ones with fresh IDs. When nothing is accepted the collection is untouched
// and ErrImportMalformed is returned along with the verdicts.
func (s *recipeService) ImportRecipes(ctx context.Context, candidates []domain.RecipeCandidate) (domain.ImportResult, error) {
	result := domain.ImportResult{Verdicts: make([]domain.CandidateVerdict, 0, len(candidates))}
	accepted := make([]entities.Recipe, 0, len(candidates))

	for i, candidate := range candidates {
		recipe, reason := s.checkCandidate(candidate)
		verdict := domain.CandidateVerdict{Index: i, Name: candidate.Name, Accepted: reason == "", Reason: reason}
		result.Verdicts = append(result.Verdicts, verdict)
		if verdict.Accepted {
			accepted = append(accepted, recipe)
		}
	}

	result.Accepted = len(accepted)
	if result.Accepted == 0 {
		return result, domain.ErrImportMalformed
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.custom = append(s.custom, accepted...)
	s.persist(ctx)

	return result, nil
}

// ImportRecipesJSON decodes a JSON array of recipes. Elements are decoded one
// by one so a malformed element only rejects itself.
func (s *recipeService) ImportRecipesJSON(ctx context.Context, data []byte) (domain.ImportResult, error) {
	var elements []json.RawMessage
	if err := json.Unmarshal(data, &elements); err != nil {
		return domain.ImportResult{}, fmt.Errorf("%w: expected a JSON array of recipes", domain.ErrImportMalformed)
	}

	candidates := make([]domain.RecipeCandidate, len(elements))
	malformed := make(map[int]string)
	for i, element := range elements {
		if err := json.Unmarshal(element, &candidates[i]); err != nil {
			malformed[i] = "malformed record"
			candidates[i] = domain.RecipeCandidate{}
		}
	}

	result, err := s.ImportRecipes(ctx, candidates)
	for i, reason := range malformed {
		result.Verdicts[i].Reason = reason
	}
	return result, err
}

func (s *recipeService) checkCandidate(candidate domain.RecipeCandidate) (entities.Recipe, string) {
	candidate.Name = strings.TrimSpace(candidate.Name)
	candidate.Description = strings.TrimSpace(candidate.Description)
	candidate.CookingTime = strings.TrimSpace(candidate.CookingTime)
	if candidate.Ingredients != nil {
		candidate.Ingredients = normalizeIngredients(candidate.Ingredients)
	}

	if err := s.validator.Struct(candidate); err != nil {
		return entities.Recipe{}, utils.ValidationMessage(err)
	}

	recipe := entities.Recipe{
		ID:             newRecipeID(),
		Name:           candidate.Name,
		Description:    candidate.Description,
		CookingTime:    candidate.CookingTime,
		Ingredients:    candidate.Ingredients,
		URL:            strings.TrimSpace(candidate.URL),
		RecipeCategory: strings.TrimSpace(candidate.RecipeCategory),
		IsCustom:       true,
	}
	if recipe.RecipeCategory == "" {
		recipe.RecipeCategory = entities.DefaultRecipeCategory
	}
	return recipe, ""
}

// ExportRecipes renders the custom recipes as indented JSON that
// ImportRecipesJSON reads back.
func (s *recipeService) ExportRecipes(_ context.Context) (string, error) {
	s.mu.RLock()
	recipes := slices.Clone(s.custom)
	s.mu.RUnlock()

	if recipes == nil {
		recipes = []entities.Recipe{}
	}

	data, err := json.MarshalIndent(recipes, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encoding recipes: %w", err)
	}
	return string(data), nil
}

func (s *recipeService) BackupRecipes(ctx context.Context) (domain.ExportBackupResponse, error) {
	if s.s3 == nil {
		return domain.ExportBackupResponse{}, domain.ErrExportSinkDisabled
	}

	data, err := s.ExportRecipes(ctx)
	if err != nil {
		return domain.ExportBackupResponse{}, err
	}

	fileName := fmt.Sprintf("recipes-%s.json", s.clock().UTC().Format("20060102-150405"))
	objectKey, err := s.s3.UploadFile(ctx, fileName, []byte(data), exportFolder, storage.ContentTypeJSON)
	if err != nil {
		return domain.ExportBackupResponse{}, err
	}

	s.log.InfoContext(ctx, "recipes backed up", "key", objectKey)
	return domain.ExportBackupResponse{Location: s.s3.GetPublicLinkKey(objectKey)}, nil
}

func (s *recipeService) GetRecommendations(ctx context.Context, req domain.RecipeRecommendationRequest) (domain.RecipeRecommendationResponse, error) {
	now := s.clock()
	items := s.foodService.Items(ctx)
	recipes := s.allRecipes()

	var ranked []domain.MatchedRecipe
	if req.IncludeExpiringOnly {
		ranked = RecommendExpiringOnly(items, recipes, now)
	} else {
		ranked = Recommend(items, recipes, now)
	}

	expiring := 0
	for _, item := range items {
		if expiry.IsUrgent(expiry.DaysUntil(item.ExpiryDate, now)) {
			expiring++
		}
	}

	return domain.RecipeRecommendationResponse{
		Recipes:       FilterMatched(ranked, domain.RecipeFilter{Category: req.Category, Query: req.Query}),
		TotalRecipes:  len(recipes),
		ExpiringItems: expiring,
	}, nil
}

func (s *recipeService) BrowseAllRecipes(ctx context.Context, filter domain.RecipeFilter) ([]domain.MatchedRecipe, error) {
	recipes := SearchRecipes(s.allRecipes(), filter)
	return BrowseAll(s.foodService.Items(ctx), recipes), nil
}

func (s *recipeService) GetShoppingList(ctx context.Context, req domain.ShoppingListRequest) (domain.ShoppingListResponse, error) {
	var selection Selection
	for _, selected := range req.Selected {
		selection = selection.Add(selected)
	}

	recipes := selection.Resolve(s.allRecipes())
	if len(recipes) == 0 {
		return domain.ShoppingListResponse{}, domain.ErrRecipeNotFound
	}

	return BuildShoppingList(recipes, s.foodService.Items(ctx)), nil
}

// allRecipes is the bundled catalog followed by the custom recipes.
func (s *recipeService) allRecipes() []entities.Recipe {
	s.mu.RLock()
	defer s.mu.RUnlock()

	recipes := make([]entities.Recipe, 0, len(s.catalog)+len(s.custom))
	recipes = append(recipes, s.catalog...)
	return append(recipes, s.custom...)
}

// indexOf must be called with s.mu held.
func (s *recipeService) indexOf(id string) int {
	if id == "" {
		return -1
	}
	return slices.IndexFunc(s.custom, func(recipe entities.Recipe) bool {
		return recipe.ID == id
	})
}

// persist must be called with s.mu held.
func (s *recipeService) persist(ctx context.Context) {
	if err := s.recipeRepository.SaveCustomRecipes(ctx, s.custom); err != nil {
		s.log.WarnContext(ctx, "failed to persist custom recipes", "error", err)
	}
}

func newRecipeID() string {
	return uuid.Must(uuid.NewV7()).String()
}

func normalizeIngredients(ingredients []string) []string {
	res := make([]string, 0, len(ingredients))
	for _, ingredient := range ingredients {
		if trimmed := strings.TrimSpace(ingredient); trimmed != "" {
			res = append(res, trimmed)
		}
	}
	return res
}
