package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"recipe-app-api/internal/dto"
	apierrors "recipe-app-api/internal/errors"
	"recipe-app-api/internal/middleware"
	"recipe-app-api/internal/services"
	"recipe-app-api/internal/validators"
)

// UserHandler coordinates account-related HTTP handlers.
type UserHandler struct {
	userService *services.UserService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

// Create registers a new user. This endpoint is public.
func (h *UserHandler) Create(c *gin.Context) {
	type CreateUserRequest struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
		Name     string `json:"name"`
	}

	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BindingError(c, err)
		return
	}

	user, err := h.userService.Create(services.CreateUserInput{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
	})
	if err != nil {
		respondUserError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToUserDTO(*user))
}

// Me returns the authenticated user's profile.
func (h *UserHandler) Me(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	user, err := h.userService.Get(userID)
	if err != nil {
		respondUserError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserDTO(*user))
}

// UpdateMe updates the authenticated user's profile. PUT replaces the
// profile, PATCH merges only the supplied fields.
func (h *UserHandler) UpdateMe(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	partial := c.Request.Method == http.MethodPatch

	type UpdateUserRequest struct {
		Email    *string `json:"email"`
		Password *string `json:"password"`
		Name     *string `json:"name"`
	}

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BindingError(c, err)
		return
	}

	if !partial && req.Email == nil {
		apierrors.BadRequestWithDetails(c, "Invalid request body", map[string][]string{
			"email": {"This field is required"},
		})
		return
	}

	input := services.UpdateUserInput{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
	}
	if !partial && req.Name == nil {
		empty := ""
		input.Name = &empty
	}

	user, err := h.userService.Update(userID, input)
	if err != nil {
		respondUserError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserDTO(*user))
}

func respondUserError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, validators.ErrEmailEmpty),
		errors.Is(err, validators.ErrEmailInvalid):
		apierrors.BadRequestWithDetails(c, "Invalid request body", map[string][]string{
			"email": {err.Error()},
		})
	case errors.Is(err, validators.ErrPasswordEmpty),
		errors.Is(err, validators.ErrPasswordTooShort),
		errors.Is(err, validators.ErrPasswordTooLong):
		apierrors.BadRequestWithDetails(c, "Invalid request body", map[string][]string{
			"password": {err.Error()},
		})
	case errors.Is(err, services.ErrEmailTaken):
		apierrors.BadRequestWithDetails(c, "Invalid request body", map[string][]string{
			"email": {err.Error()},
		})
	case errors.Is(err, services.ErrUserNotFound):
		apierrors.NotFound(c, err.Error())
	default:
		apierrors.InternalError(c, "")
	}
}
