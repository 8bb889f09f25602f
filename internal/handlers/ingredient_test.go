package handlers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"recipe-app-api/internal/dto"
	"recipe-app-api/internal/models"
)

func TestIngredientHandler_List(t *testing.T) {
	env := setupTestEnv(t)
	user := env.createUser(t, "test@londonappdev.com", "testpass")
	token := env.tokenFor(t, user.ID)

	env.db.Create(&models.Ingredient{Name: "Kale", UserID: user.ID})
	env.db.Create(&models.Ingredient{Name: "Salt", UserID: user.ID})

	w := env.request(t, http.MethodGet, "/api/recipe/ingredients", nil, token)
	require.Equal(t, http.StatusOK, w.Code)

	var response []dto.IngredientDTO
	decodeJSON(t, w, &response)
	require.Len(t, response, 2)
	require.Equal(t, "Salt", response[0].Name)
	require.Equal(t, "Kale", response[1].Name)
}

func TestIngredientHandler_List_LimitedToOwner(t *testing.T) {
	env := setupTestEnv(t)
	user := env.createUser(t, "test@londonappdev.com", "testpass")
	other := env.createUser(t, "other@londonappdev.com", "testpass")
	token := env.tokenFor(t, user.ID)

	env.db.Create(&models.Ingredient{Name: "Vinegar", UserID: other.ID})
	env.db.Create(&models.Ingredient{Name: "Tumeric", UserID: user.ID})

	w := env.request(t, http.MethodGet, "/api/recipe/ingredients", nil, token)
	require.Equal(t, http.StatusOK, w.Code)

	var response []dto.IngredientDTO
	decodeJSON(t, w, &response)
	require.Len(t, response, 1)
	require.Equal(t, "Tumeric", response[0].Name)
}

func TestIngredientHandler_Create(t *testing.T) {
	env := setupTestEnv(t)
	user := env.createUser(t, "test@londonappdev.com", "testpass")
	token := env.tokenFor(t, user.ID)

	w := env.request(t, http.MethodPost, "/api/recipe/ingredients", map[string]string{"name": "Cabbage"}, token)
	require.Equal(t, http.StatusCreated, w.Code)

	var ingredient models.Ingredient
	err := env.db.Where("user_id = ? AND name = ?", user.ID, "Cabbage").First(&ingredient).Error
	require.NoError(t, err)
}

func TestIngredientHandler_Create_InvalidName(t *testing.T) {
	env := setupTestEnv(t)
	user := env.createUser(t, "test@londonappdev.com", "testpass")
	token := env.tokenFor(t, user.ID)

	w := env.request(t, http.MethodPost, "/api/recipe/ingredients", map[string]string{"name": "   "}, token)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestIngredientHandler_Unauthenticated(t *testing.T) {
	env := setupTestEnv(t)

	w := env.request(t, http.MethodGet, "/api/recipe/ingredients", nil, "")
	require.Equal(t, http.StatusUnauthorized, w.Code)
}
