package routes

import (
	"fridgemate/internal/api/handlers"
	"fridgemate/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App               *fiber.App
	FoodHandler       handlers.FoodHandler
	RecipeHandler     handlers.RecipeHandler
	CategoryHandler   handlers.CategoryHandler
	PreferenceHandler handlers.PreferenceHandler
	Middleware        middleware.Middleware
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.RecoverMiddleware())
	c.App.Use(c.Middleware.CORSMiddleware())
	c.GuestRoute()
	c.FoodItems()
	c.Recipes()
	c.Categories()
	c.Preferences()
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}

func (c *Config) FoodItems() {
	foodItems := c.App.Group("/api/v1/food-items")
	foodItems.Get("/dashboard", c.FoodHandler.GetDashboardStats)

	foodItems.Post("", c.FoodHandler.AddFoodItem)
	foodItems.Get("", c.FoodHandler.GetFoodItems)
	foodItems.Get("/:id", c.FoodHandler.GetFoodItemDetails)
	foodItems.Delete("/:id", c.FoodHandler.DeleteFoodItem)

	// quantity controls
	foodItems.Put("/:id/quantity", c.FoodHandler.SetQuantity)
	foodItems.Post("/:id/increment", c.FoodHandler.IncrementQuantity)
	foodItems.Post("/:id/decrement", c.FoodHandler.DecrementQuantity)
}

func (c *Config) Recipes() {
	recipes := c.App.Group("/api/v1/recipes")
	recipes.Get("/recommendations", c.RecipeHandler.GetRecipeRecommendations)
	recipes.Get("/browse", c.RecipeHandler.BrowseAllRecipes)
	recipes.Post("/shopping-list", c.RecipeHandler.GetShoppingList)
	recipes.Post("/import", c.RecipeHandler.ImportRecipes)
	recipes.Get("/export", c.RecipeHandler.ExportRecipes)
	recipes.Post("/export/backup", c.RecipeHandler.BackupRecipes)

	recipes.Get("", c.RecipeHandler.GetRecipes)
	recipes.Post("", c.RecipeHandler.AddRecipe)
	recipes.Get("/:id", c.RecipeHandler.GetRecipeDetail)
	recipes.Put("/:id", c.RecipeHandler.UpdateRecipe)
	recipes.Delete("/:id", c.RecipeHandler.DeleteRecipe)
}

func (c *Config) Categories() {
	categories := c.App.Group("/api/v1/categories")
	categories.Get("", c.CategoryHandler.GetCategories)
	categories.Post("", c.CategoryHandler.AddCategory)
	categories.Delete("/:name", c.CategoryHandler.DeleteCategory)

	c.App.Get("/api/v1/recipe-categories", c.CategoryHandler.GetRecipeCategories)
}

func (c *Config) Preferences() {
	preferences := c.App.Group("/api/v1/preferences")
	preferences.Get("", c.PreferenceHandler.GetPreferences)
	preferences.Put("/dark-mode", c.PreferenceHandler.SetDarkMode)
}
