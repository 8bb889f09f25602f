package main

import (
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"recipe-app-api/internal/config"
	"recipe-app-api/internal/database"
	"recipe-app-api/internal/handlers"
	"recipe-app-api/internal/logger"
	"recipe-app-api/internal/middleware"
	"recipe-app-api/internal/repository"
	"recipe-app-api/internal/services"
	"recipe-app-api/internal/storage"
)

func main() {
	// Load configuration
	cfg := config.Load()

	if err := logger.Init(cfg.GinMode); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zap.L().Sync()

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Connect to database
	if err := database.Connect(cfg); err != nil {
		zap.L().Fatal("Failed to connect to database", zap.Error(err))
	}

	// Run migrations
	if err := database.Migrate(); err != nil {
		zap.L().Fatal("Failed to run migrations", zap.Error(err))
	}
	if err := database.AddIndexes(database.GetDB()); err != nil {
		zap.L().Fatal("Failed to create indexes", zap.Error(err))
	}

	db := database.GetDB()

	// Repositories
	userRepo := repository.NewUserRepository(db)
	tokenRepo := repository.NewTokenRepository(db)
	tagRepo := repository.NewTagRepository(db)
	ingredientRepo := repository.NewIngredientRepository(db)
	recipeRepo := repository.NewRecipeRepository(db)

	// Services
	images := storage.NewImageStore(cfg.MediaRoot)
	userService := services.NewUserService(userRepo)
	authService := services.NewAuthService(userRepo, tokenRepo)
	tagService := services.NewTagService(tagRepo)
	ingredientService := services.NewIngredientService(ingredientRepo)
	recipeService := services.NewRecipeService(recipeRepo, tagRepo, ingredientRepo, images)

	// Handlers
	userHandler := handlers.NewUserHandler(userService)
	authHandler := handlers.NewAuthHandler(authService)
	tagHandler := handlers.NewTagHandler(tagService)
	ingredientHandler := handlers.NewIngredientHandler(ingredientService)
	recipeHandler := handlers.NewRecipeHandler(recipeService)

	// Initialize Gin router
	r := gin.Default()
	r.HandleMethodNotAllowed = true
	r.Use(cors.Default())

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "Recipe API is running",
		})
	})

	// Serve uploaded media
	r.Static("/media", cfg.MediaRoot)

	// API routes
	api := r.Group("/api")
	{
		// User routes; create and token are public
		user := api.Group("/user")
		{
			user.POST("/create", userHandler.Create)
			user.POST("/token", authHandler.CreateToken)
			user.GET("/me", middleware.RequireAuth(authService), userHandler.Me)
			user.PUT("/me", middleware.RequireAuth(authService), userHandler.UpdateMe)
			user.PATCH("/me", middleware.RequireAuth(authService), userHandler.UpdateMe)
		}

		// Recipe routes (protected)
		recipe := api.Group("/recipe")
		recipe.Use(middleware.RequireAuth(authService))
		{
			recipe.GET("/tags", tagHandler.List)
			recipe.POST("/tags", tagHandler.Create)

			recipe.GET("/ingredients", ingredientHandler.List)
			recipe.POST("/ingredients", ingredientHandler.Create)

			recipe.GET("/recipes", recipeHandler.List)
			recipe.POST("/recipes", recipeHandler.Create)
			recipe.GET("/recipes/:id", recipeHandler.Get)
			recipe.PUT("/recipes/:id", recipeHandler.Update)
			recipe.PATCH("/recipes/:id", recipeHandler.Update)
			recipe.DELETE("/recipes/:id", recipeHandler.Delete)
			recipe.POST("/recipes/:id/upload-image", recipeHandler.UploadImage)
		}
	}

	// Start server
	zap.L().Info("Server starting", zap.String("addr", cfg.ServerAddr))
	if err := r.Run(cfg.ServerAddr); err != nil {
		zap.L().Fatal("Failed to start server", zap.Error(err))
	}
}
