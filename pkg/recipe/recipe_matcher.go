package recipe

import (
	"math"
	"sort"
	"strings"
	"time"

	"fridgemate/domain"
	"fridgemate/entities"
	"fridgemate/pkg/expiry"
)

// AllCategories is the recipe category filter value that matches everything.
const AllCategories = "전체"

type nameSet map[string]struct{}

func (s nameSet) has(name string) bool {
	_, ok := s[name]
	return ok
}

func heldNames(items []entities.FoodItem) nameSet {
	held := make(nameSet, len(items))
	for _, item := range items {
		held[item.Name] = struct{}{}
	}
	return held
}

func urgentNames(items []entities.FoodItem, now time.Time) nameSet {
	urgent := make(nameSet)
	for _, item := range items {
		if expiry.IsUrgent(expiry.DaysUntil(item.ExpiryDate, now)) {
			urgent[item.Name] = struct{}{}
		}
	}
	return urgent
}

// Match scores a recipe against held ingredient names by exact name. A
// recipe without ingredients is scored as if it had one.
func Match(recipe entities.Recipe, held, urgent map[string]struct{}) domain.MatchResult {
	ingredientCount := len(recipe.Ingredients)
	if ingredientCount == 0 {
		ingredientCount = 1
	}

	var res domain.MatchResult
	for _, ingredient := range recipe.Ingredients {
		if _, ok := held[ingredient]; ok {
			res.MatchCount++
		}
		if _, ok := urgent[ingredient]; ok {
			res.HasUrgent = true
		}
	}
	res.MatchPercentage = int(math.Round(100 * float64(res.MatchCount) / float64(ingredientCount)))

	return res
}

// Recommend ranks recipes that use at least one held ingredient: recipes with
// an urgent ingredient first, then by match count, input order otherwise.
// With nothing held every recipe is returned unscored.
func Recommend(items []entities.FoodItem, recipes []entities.Recipe, now time.Time) []domain.MatchedRecipe {
	if len(items) == 0 {
		return unscored(recipes)
	}

	held := heldNames(items)
	urgent := urgentNames(items, now)

	ranked := make([]domain.MatchedRecipe, 0, len(recipes))
	for _, recipe := range recipes {
		result := Match(recipe, held, urgent)
		if result.MatchCount == 0 {
			continue
		}
		ranked = append(ranked, domain.MatchedRecipe{Recipe: recipe, MatchResult: result})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].HasUrgent != ranked[j].HasUrgent {
			return ranked[i].HasUrgent
		}
		return ranked[i].MatchCount > ranked[j].MatchCount
	})

	return ranked
}

// RecommendExpiringOnly ranks recipes against the urgent items alone. Nothing
// is recommended when no item is urgent.
func RecommendExpiringOnly(items []entities.FoodItem, recipes []entities.Recipe, now time.Time) []domain.MatchedRecipe {
	var urgent []entities.FoodItem
	for _, item := range items {
		if expiry.IsUrgent(expiry.DaysUntil(item.ExpiryDate, now)) {
			urgent = append(urgent, item)
		}
	}
	if len(urgent) == 0 {
		return []domain.MatchedRecipe{}
	}
	return Recommend(urgent, recipes, now)
}

// BrowseAll scores every recipe without filtering or reordering. The urgent
// flag is never set in this view.
func BrowseAll(items []entities.FoodItem, recipes []entities.Recipe) []domain.MatchedRecipe {
	if len(items) == 0 {
		return unscored(recipes)
	}

	held := heldNames(items)

	res := make([]domain.MatchedRecipe, 0, len(recipes))
	for _, recipe := range recipes {
		res = append(res, domain.MatchedRecipe{Recipe: recipe, MatchResult: Match(recipe, held, nil)})
	}
	return res
}

func unscored(recipes []entities.Recipe) []domain.MatchedRecipe {
	res := make([]domain.MatchedRecipe, 0, len(recipes))
	for _, recipe := range recipes {
		res = append(res, domain.MatchedRecipe{Recipe: recipe})
	}
	return res
}

func inCategory(recipe entities.Recipe, category string) bool {
	return category == "" || category == AllCategories || recipe.Category() == category
}

func containsFold(text, query string) bool {
	return strings.Contains(strings.ToLower(text), query)
}

// FilterRecipes keeps recipes in category whose name or description contains
// query, ignoring case.
func FilterRecipes(recipes []entities.Recipe, filter domain.RecipeFilter) []entities.Recipe {
	query := strings.ToLower(strings.TrimSpace(filter.Query))

	res := make([]entities.Recipe, 0, len(recipes))
	for _, recipe := range recipes {
		if !inCategory(recipe, filter.Category) {
			continue
		}
		if !containsFold(recipe.Name, query) && !containsFold(recipe.Description, query) {
			continue
		}
		res = append(res, recipe)
	}
	return res
}

// FilterMatched applies FilterRecipes to scored recipes, keeping their order.
func FilterMatched(matched []domain.MatchedRecipe, filter domain.RecipeFilter) []domain.MatchedRecipe {
	query := strings.ToLower(strings.TrimSpace(filter.Query))

	res := make([]domain.MatchedRecipe, 0, len(matched))
	for _, m := range matched {
		if !inCategory(m.Recipe, filter.Category) {
			continue
		}
		if !containsFold(m.Name, query) && !containsFold(m.Description, query) {
			continue
		}
		res = append(res, m)
	}
	return res
}

// SearchRecipes is the browse view search: name, description or any
// ingredient may contain the query.
func SearchRecipes(recipes []entities.Recipe, filter domain.RecipeFilter) []entities.Recipe {
	query := strings.ToLower(strings.TrimSpace(filter.Query))

	res := make([]entities.Recipe, 0, len(recipes))
	for _, recipe := range recipes {
		if !inCategory(recipe, filter.Category) {
			continue
		}
		if containsFold(recipe.Name, query) || containsFold(recipe.Description, query) || anyIngredientContains(recipe, query) {
			res = append(res, recipe)
		}
	}
	return res
}

func anyIngredientContains(recipe entities.Recipe, query string) bool {
	for _, ingredient := range recipe.Ingredients {
		if containsFold(ingredient, query) {
			return true
		}
	}
	return false
}
