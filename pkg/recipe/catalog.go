package recipe

import (
	_ "embed"
	"fmt"

	"fridgemate/entities"

	"gopkg.in/yaml.v2"
)

//go:embed catalog.yaml
var bundledCatalog []byte

type catalogFile struct {
	Recipes []entities.Recipe `yaml:"recipes"`
}

// ParseCatalog reads a recipe catalog. Catalog recipes never carry an ID and
// are not custom.
func ParseCatalog(data []byte) ([]entities.Recipe, error) {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing recipe catalog: %w", err)
	}

	recipes := make([]entities.Recipe, 0, len(file.Recipes))
	for i, recipe := range file.Recipes {
		if recipe.Name == "" || len(recipe.Ingredients) == 0 {
			return nil, fmt.Errorf("parsing recipe catalog: entry %d is missing a name or ingredients", i)
		}
		recipe.ID = ""
		recipe.IsCustom = false
		recipes = append(recipes, recipe)
	}
	return recipes, nil
}

func BundledCatalog() ([]entities.Recipe, error) {
	return ParseCatalog(bundledCatalog)
}
