package handlers

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"recipe-app-api/internal/database"
	"recipe-app-api/internal/middleware"
	"recipe-app-api/internal/models"
	"recipe-app-api/internal/repository"
	"recipe-app-api/internal/services"
	"recipe-app-api/internal/storage"
)

// testEnv wires the full stack against an in-memory SQLite database, with a
// router mirroring the production route table.
type testEnv struct {
	db     *gorm.DB
	router *gin.Engine

	userService   *services.UserService
	authService   *services.AuthService
	tagService    *services.TagService
	ingredService *services.IngredientService
	recipeService *services.RecipeService
}

func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.User{},
		&models.AuthToken{},
		&models.Tag{},
		&models.Ingredient{},
		&models.Recipe{},
	)
	require.NoError(t, err)

	database.SetDB(db)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	userRepo := repository.NewUserRepository(db)
	tokenRepo := repository.NewTokenRepository(db)
	tagRepo := repository.NewTagRepository(db)
	ingredientRepo := repository.NewIngredientRepository(db)
	recipeRepo := repository.NewRecipeRepository(db)

	images := storage.NewImageStore(t.TempDir())
	userService := services.NewUserService(userRepo)
	authService := services.NewAuthService(userRepo, tokenRepo)
	tagService := services.NewTagService(tagRepo)
	ingredientService := services.NewIngredientService(ingredientRepo)
	recipeService := services.NewRecipeService(recipeRepo, tagRepo, ingredientRepo, images)

	userHandler := NewUserHandler(userService)
	authHandler := NewAuthHandler(authService)
	tagHandler := NewTagHandler(tagService)
	ingredientHandler := NewIngredientHandler(ingredientService)
	recipeHandler := NewRecipeHandler(recipeService)

	r := gin.New()
	r.HandleMethodNotAllowed = true
	api := r.Group("/api")
	{
		user := api.Group("/user")
		{
			user.POST("/create", userHandler.Create)
			user.POST("/token", authHandler.CreateToken)
			user.GET("/me", middleware.RequireAuth(authService), userHandler.Me)
			user.PUT("/me", middleware.RequireAuth(authService), userHandler.UpdateMe)
			user.PATCH("/me", middleware.RequireAuth(authService), userHandler.UpdateMe)
		}

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

	return &testEnv{
		db:            db,
		router:        r,
		userService:   userService,
		authService:   authService,
		tagService:    tagService,
		ingredService: ingredientService,
		recipeService: recipeService,
	}
}

// createUser registers an account through the service layer.
func (env *testEnv) createUser(t *testing.T, email, password string) *models.User {
	t.Helper()

	user, err := env.userService.Create(services.CreateUserInput{
		Email:    email,
		Password: password,
		Name:     "Test User",
	})
	require.NoError(t, err)
	return user
}

// tokenFor issues (or reuses) the user's auth token key.
func (env *testEnv) tokenFor(t *testing.T, userID uint64) string {
	t.Helper()

	token, err := env.authService.IssueToken(userID)
	require.NoError(t, err)
	return token.Key
}

// request performs a JSON request against the test router. An empty token
// leaves the request unauthenticated.
func (env *testEnv) request(t *testing.T, method, url string, payload interface{}, token string) *httptest.ResponseRecorder {
	t.Helper()

	var body *bytes.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(data)
	} else {
		body = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, url, body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Token "+token)
	}

	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	return w
}

func decodeJSON(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}
