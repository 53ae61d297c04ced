// File: entities/recipe.go
package entities

const DefaultRecipeCategory = "기타"

// Recipe is either bundled (no ID, IsCustom false) or user authored/imported.
type Recipe struct {
	ID             string   `json:"id,omitempty" yaml:"id,omitempty"`
	Name           string   `json:"name" yaml:"name"`
	Description    string   `json:"description" yaml:"description"`
	CookingTime    string   `json:"cookingTime" yaml:"cookingTime"`
	Ingredients    []string `json:"ingredients" yaml:"ingredients"`
	URL            string   `json:"url" yaml:"url"`
	RecipeCategory string   `json:"recipeCategory" yaml:"recipeCategory"`
	IsCustom       bool     `json:"isCustom" yaml:"isCustom"`
}

// Category returns the recipe category, falling back to DefaultRecipeCategory.
func (r Recipe) Category() string {
	if r.RecipeCategory == "" {
		return DefaultRecipeCategory
	}
	return r.RecipeCategory
}
