package recipe

import (
	"fridgemate/domain"
	"fridgemate/entities"
)

func SelectionOf(recipe entities.Recipe) domain.RecipeSelection {
	return domain.RecipeSelection{ID: recipe.ID, Name: recipe.Name}
}

// SameSelection reports whether two selections point at the same recipe.
// Bundled recipes have no ID and are told apart by name.
func SameSelection(a, b domain.RecipeSelection) bool {
	if a.ID != "" || b.ID != "" {
		return a.ID == b.ID
	}
	return a.Name == b.Name
}

// Selection is an ordered set of selected recipes.
type Selection []domain.RecipeSelection

func (s Selection) Contains(candidate domain.RecipeSelection) bool {
	for _, selected := range s {
		if SameSelection(selected, candidate) {
			return true
		}
	}
	return false
}

// Add appends candidate unless the same recipe is already selected.
func (s Selection) Add(candidate domain.RecipeSelection) Selection {
	if s.Contains(candidate) {
		return s
	}
	return append(s, candidate)
}

// Resolve returns the recipes that are selected, in selection order.
func (s Selection) Resolve(recipes []entities.Recipe) []entities.Recipe {
	res := make([]entities.Recipe, 0, len(s))
	for _, selected := range s {
		for _, recipe := range recipes {
			if SameSelection(selected, SelectionOf(recipe)) {
				res = append(res, recipe)
				break
			}
		}
	}
	return res
}

// BuildShoppingList splits each selected recipe's ingredients into held and
// needed, and merges everything needed into one list in first-seen order.
func BuildShoppingList(selected []entities.Recipe, items []entities.FoodItem) domain.ShoppingListResponse {
	held := heldNames(items)

	res := domain.ShoppingListResponse{
		Recipes: make([]domain.RecipeShopping, 0, len(selected)),
		Needed:  []string{},
	}
	seen := make(nameSet)

	for _, recipe := range selected {
		shopping := domain.RecipeShopping{
			Name: recipe.Name,
			Have: []string{},
			Need: []string{},
		}
		for _, ingredient := range recipe.Ingredients {
			if held.has(ingredient) {
				shopping.Have = append(shopping.Have, ingredient)
				continue
			}
			shopping.Need = append(shopping.Need, ingredient)
			if !seen.has(ingredient) {
				seen[ingredient] = struct{}{}
				res.Needed = append(res.Needed, ingredient)
			}
		}
		shopping.HasAll = len(shopping.Need) == 0
		res.Recipes = append(res.Recipes, shopping)
	}

	return res
}
