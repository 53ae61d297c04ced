package recipe_test

import (
	"testing"
	"time"

	"fridgemate/domain"
	"fridgemate/entities"
	"fridgemate/pkg/recipe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var matcherNow = time.Date(2024, time.March, 10, 9, 0, 0, 0, time.UTC)

func daysFromNow(days int) string {
	return matcherNow.AddDate(0, 0, days).Format("2006-01-02")
}

func recipeNames(matched []domain.MatchedRecipe) []string {
	res := make([]string, 0, len(matched))
	for _, m := range matched {
		res = append(res, m.Name)
	}
	return res
}

func TestMatch(t *testing.T) {
	t.Parallel()

	r := entities.Recipe{Name: "Omelet", Ingredients: []string{"egg", "milk", "salt"}}
	held := map[string]struct{}{"egg": {}, "salt": {}}

	got := recipe.Match(r, held, nil)
	assert.Equal(t, domain.MatchResult{MatchCount: 2, MatchPercentage: 67}, got)

	got = recipe.Match(r, held, map[string]struct{}{"milk": {}})
	assert.True(t, got.HasUrgent)
}

func TestMatch_NoIngredients(t *testing.T) {
	t.Parallel()

	got := recipe.Match(entities.Recipe{Name: "Water"}, map[string]struct{}{"egg": {}}, nil)
	assert.Equal(t, domain.MatchResult{}, got)
}

func TestRecommend_EmptyInventoryReturnsEverything(t *testing.T) {
	t.Parallel()

	recipes := []entities.Recipe{
		{Name: "B", Ingredients: []string{"bread"}},
		{Name: "A", Ingredients: []string{"egg"}},
		{Name: "C"},
	}

	got := recipe.Recommend(nil, recipes, matcherNow)
	require.Len(t, got, 3)
	assert.Equal(t, []string{"B", "A", "C"}, recipeNames(got))
	for _, m := range got {
		assert.Equal(t, domain.MatchResult{}, m.MatchResult)
	}
}

func TestRecommend_OmeletExample(t *testing.T) {
	t.Parallel()

	items := []entities.FoodItem{{Name: "egg", ExpiryDate: daysFromNow(2)}}
	recipes := []entities.Recipe{
		{Name: "Omelet", Ingredients: []string{"egg", "milk"}},
		{Name: "Toast", Ingredients: []string{"bread"}},
	}

	got := recipe.Recommend(items, recipes, matcherNow)
	require.Len(t, got, 1)
	assert.Equal(t, "Omelet", got[0].Name)
	assert.Equal(t, domain.MatchResult{MatchCount: 1, MatchPercentage: 50, HasUrgent: true}, got[0].MatchResult)
}

func TestRecommend_Ranking(t *testing.T) {
	t.Parallel()

	items := []entities.FoodItem{
		{Name: "egg", ExpiryDate: daysFromNow(20)},
		{Name: "milk", ExpiryDate: daysFromNow(20)},
		{Name: "bread", ExpiryDate: daysFromNow(20)},
		{Name: "spinach", ExpiryDate: daysFromNow(1)},
	}
	recipes := []entities.Recipe{
		{Name: "one match", Ingredients: []string{"egg", "flour"}},
		{Name: "two matches", Ingredients: []string{"egg", "milk"}},
		{Name: "urgent", Ingredients: []string{"spinach", "garlic"}},
		{Name: "no match", Ingredients: []string{"beef"}},
		{Name: "one match again", Ingredients: []string{"bread"}},
		{Name: "three matches", Ingredients: []string{"egg", "milk", "bread"}},
	}

	got := recipe.Recommend(items, recipes, matcherNow)
	assert.Equal(t, []string{"urgent", "three matches", "two matches", "one match", "one match again"}, recipeNames(got))
}

func TestRecommend_ExpiredCountsAsUrgent(t *testing.T) {
	t.Parallel()

	items := []entities.FoodItem{
		{Name: "egg", ExpiryDate: daysFromNow(30)},
		{Name: "milk", ExpiryDate: daysFromNow(-2)},
		{Name: "ham", ExpiryDate: "not-a-date"},
	}
	recipes := []entities.Recipe{
		{Name: "eggs", Ingredients: []string{"egg", "ham"}},
		{Name: "milkshake", Ingredients: []string{"milk"}},
	}

	got := recipe.Recommend(items, recipes, matcherNow)
	assert.Equal(t, []string{"milkshake", "eggs"}, recipeNames(got))
	assert.False(t, got[1].HasUrgent)
}

func TestRecommendExpiringOnly(t *testing.T) {
	t.Parallel()

	items := []entities.FoodItem{
		{Name: "egg", ExpiryDate: daysFromNow(20)},
		{Name: "milk", ExpiryDate: daysFromNow(1)},
	}
	recipes := []entities.Recipe{
		{Name: "omelet", Ingredients: []string{"egg"}},
		{Name: "latte", Ingredients: []string{"milk", "coffee"}},
	}

	got := recipe.RecommendExpiringOnly(items, recipes, matcherNow)
	assert.Equal(t, []string{"latte"}, recipeNames(got))

	fresh := []entities.FoodItem{{Name: "egg", ExpiryDate: daysFromNow(20)}}
	assert.Empty(t, recipe.RecommendExpiringOnly(fresh, recipes, matcherNow))
}

func TestBrowseAll(t *testing.T) {
	t.Parallel()

	recipes := []entities.Recipe{
		{Name: "Toast", Ingredients: []string{"bread"}},
		{Name: "Omelet", Ingredients: []string{"egg", "milk"}},
	}

	got := recipe.BrowseAll(nil, recipes)
	assert.Equal(t, []string{"Toast", "Omelet"}, recipeNames(got))
	assert.Equal(t, domain.MatchResult{}, got[1].MatchResult)

	items := []entities.FoodItem{{Name: "egg", ExpiryDate: daysFromNow(1)}}
	got = recipe.BrowseAll(items, recipes)
	assert.Equal(t, []string{"Toast", "Omelet"}, recipeNames(got))
	assert.Equal(t, domain.MatchResult{MatchCount: 0, MatchPercentage: 0}, got[0].MatchResult)
	assert.Equal(t, domain.MatchResult{MatchCount: 1, MatchPercentage: 50}, got[1].MatchResult)
}

func TestFilterRecipes(t *testing.T) {
	t.Parallel()

	recipes := []entities.Recipe{
		{Name: "김치찌개", Description: "얼큰한 찌개", RecipeCategory: "한식"},
		{Name: "Pasta", Description: "creamy", RecipeCategory: "양식"},
		{Name: "Salad", Description: "Fresh pasta salad"},
	}

	got := recipe.FilterRecipes(recipes, domain.RecipeFilter{Category: "전체", Query: "PASTA"})
	assert.Len(t, got, 2)

	got = recipe.FilterRecipes(recipes, domain.RecipeFilter{Category: "기타"})
	require.Len(t, got, 1)
	assert.Equal(t, "Salad", got[0].Name)

	got = recipe.FilterRecipes(recipes, domain.RecipeFilter{Category: "한식", Query: "찌개"})
	require.Len(t, got, 1)
	assert.Equal(t, "김치찌개", got[0].Name)
}

func TestSearchRecipes_MatchesIngredients(t *testing.T) {
	t.Parallel()

	recipes := []entities.Recipe{
		{Name: "Omelet", Description: "breakfast", Ingredients: []string{"Egg", "milk"}},
		{Name: "Toast", Description: "breakfast", Ingredients: []string{"bread"}},
	}

	got := recipe.SearchRecipes(recipes, domain.RecipeFilter{Query: "egg"})
	require.Len(t, got, 1)
	assert.Equal(t, "Omelet", got[0].Name)

	assert.Len(t, recipe.SearchRecipes(recipes, domain.RecipeFilter{}), 2)
}

func TestFilterMatched_KeepsRanking(t *testing.T) {
	t.Parallel()

	matched := []domain.MatchedRecipe{
		{Recipe: entities.Recipe{Name: "b", Description: "x", RecipeCategory: "한식"}},
		{Recipe: entities.Recipe{Name: "a", Description: "x", RecipeCategory: "양식"}},
		{Recipe: entities.Recipe{Name: "c", Description: "x", RecipeCategory: "한식"}},
	}

	got := recipe.FilterMatched(matched, domain.RecipeFilter{Category: "한식"})
	assert.Equal(t, []string{"b", "c"}, recipeNames(got))
}
