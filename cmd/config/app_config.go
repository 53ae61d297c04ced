package config

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"fridgemate/internal/api/handlers"
	"fridgemate/internal/api/routes"
	"fridgemate/internal/kvstore"
	"fridgemate/internal/middleware"
	"fridgemate/internal/utils"
	"fridgemate/internal/utils/storage"
	"fridgemate/pkg/category"
	"fridgemate/pkg/expiry"
	"fridgemate/pkg/food"
	"fridgemate/pkg/preference"
	"fridgemate/pkg/recipe"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

// NewApp wires the routes over store. The returned close function releases
// the access log file.
func NewApp(ctx context.Context, store kvstore.KeyValueStore, cfg utils.Config, log *slog.Logger) (*fiber.App, func() error, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
		UnescapePath:      true,
	})
	middlewares := middleware.NewMiddleware(log)
	validator := utils.Validate

	// setting up logging and limiter
	if err := os.MkdirAll(filepath.Dir(cfg.LogFile), os.ModePerm); err != nil {
		return nil, nil, fmt.Errorf("error creating logs directory: %w", err)
	}
	file, err := os.OpenFile(
		cfg.LogFile,
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		return nil, nil, fmt.Errorf("error opening log file: %w", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "Asia/Seoul",
		Output:     file,
	}))

	if cfg.RateLimitPerSecond > 0 {
		app.Use(limiter.New(limiter.Config{
			Max:        cfg.RateLimitPerSecond,
			Expiration: 1 * time.Second,
		}))
	}

	// utils
	var s3 storage.AwsS3
	if cfg.AWSS3Bucket != "" {
		s3, err = storage.NewAwsS3(ctx, storage.S3Config{
			Bucket:    cfg.AWSS3Bucket,
			Region:    cfg.AWSS3Region,
			AccessKey: cfg.AWSAccessKey,
			SecretKey: cfg.AWSSecretKey,
			Prefix:    cfg.ExportPrefix,
		})
		if err != nil {
			file.Close()
			return nil, nil, err
		}
	} else {
		log.WarnContext(ctx, "AWS_S3_BUCKET is not set, recipe backups are disabled")
	}
	catalog, err := recipe.BundledCatalog()
	if err != nil {
		file.Close()
		return nil, nil, err
	}

	// Repository
	foodRepository := food.NewFoodRepository(store)
	recipeRepository := recipe.NewRecipeRepository(store)
	categoryRepository := category.NewCategoryRepository(store)
	preferenceRepository := preference.NewPreferenceRepository(store)

	// Service
	foodService := food.NewFoodService(ctx, foodRepository, expiry.SystemClock, log)
	recipeService := recipe.NewRecipeService(
		ctx,
		recipeRepository,
		foodService,
		catalog,
		validator,
		s3,
		expiry.SystemClock,
		log,
	)
	categoryService := category.NewCategoryService(ctx, categoryRepository, log)
	preferenceService := preference.NewPreferenceService(ctx, preferenceRepository, log)

	// Handler
	foodHandler := handlers.NewFoodHandler(foodService, categoryService, validator)
	recipeHandler := handlers.NewRecipeHandler(recipeService, validator)
	categoryHandler := handlers.NewCategoryHandler(categoryService, foodService, validator)
	preferenceHandler := handlers.NewPreferenceHandler(preferenceService, validator)

	// routes
	routesConfig := routes.Config{
		App:               app,
		FoodHandler:       foodHandler,
		RecipeHandler:     recipeHandler,
		CategoryHandler:   categoryHandler,
		PreferenceHandler: preferenceHandler,
		Middleware:        middlewares,
	}
	routesConfig.Setup()
	return app, file.Close, nil
}
