package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"recipe-app-api/internal/dto"
	apierrors "recipe-app-api/internal/errors"
	"recipe-app-api/internal/services"
)

// AuthHandler issues auth tokens for valid credentials.
type AuthHandler struct {
	authService *services.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// CreateToken exchanges email and password for the user's opaque token.
// Repeated calls return the same token. This endpoint is public.
func (h *AuthHandler) CreateToken(c *gin.Context) {
	type TokenRequest struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}

	var req TokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BindingError(c, err)
		return
	}

	user, err := h.authService.Authenticate(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			// 400, not 401, and one message for every failure mode so the
			// endpoint cannot be used to enumerate accounts.
			apierrors.BadRequest(c, err.Error())
			return
		}
		apierrors.InternalError(c, "")
		return
	}

	token, err := h.authService.IssueToken(user.ID)
	if err != nil {
		apierrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, dto.ToTokenDTO(*token))
}
