package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"corkboard.app/api/internal/http/dto"
	"corkboard.app/api/internal/http/middleware"
	"corkboard.app/api/internal/service"
)

type AuthHandler struct {
	authService service.AuthService
}

func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "username, email and a password of at least 8 characters are required"})
		return
	}

	user, err := h.authService.Register(c.Request.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		respondError(c, err, "register user")
		return
	}

	c.JSON(http.StatusCreated, dto.ToUserResponse(user))
}

// Token exchanges credentials for a token pair. OAuth2-style form
// bodies (username/password fields) are accepted alongside JSON so
// standard password-flow clients work unchanged.
func (h *AuthHandler) Token(c *gin.Context) {
	email, password, ok := credentials(c)
	if !ok {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "email and password are required"})
		return
	}

	_, pair, err := h.authService.Login(c.Request.Context(), email, password)
	if err != nil {
		respondError(c, err, "log in")
		return
	}

	c.JSON(http.StatusOK, dto.TokenResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		TokenType:    "bearer",
		ExpiresIn:    pair.ExpiresIn,
	})
}

func (h *AuthHandler) Refresh(c *gin.Context) {
	var req dto.RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "refresh_token is required"})
		return
	}

	pair, err := h.authService.Refresh(c.Request.Context(), req.RefreshToken)
	if err != nil {
		respondError(c, err, "refresh session")
		return
	}

	c.JSON(http.StatusOK, dto.TokenResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		TokenType:    "bearer",
		ExpiresIn:    pair.ExpiresIn,
	})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	var req dto.RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "refresh_token is required"})
		return
	}

	if err := h.authService.Logout(c.Request.Context(), req.RefreshToken); err != nil {
		respondError(c, err, "log out")
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *AuthHandler) Me(c *gin.Context) {
	user := middleware.GetUser(c.Request.Context())
	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

func credentials(c *gin.Context) (email, password string, ok bool) {
	if strings.HasPrefix(c.ContentType(), "application/json") {
		var req dto.LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			return "", "", false
		}
		return req.Email, req.Password, true
	}

	// OAuth2 password flow puts the email in the username field.
	email = c.PostForm("username")
	password = c.PostForm("password")
	return email, password, email != "" && password != ""
}
