package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"moneta/internal/config"
	apperrors "moneta/internal/errors"
	"moneta/internal/middleware"
)

// AuthHandler handles authentication. The API serves a single owner whose
// bcrypt password hash is provided through configuration.
type AuthHandler struct{}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler() *AuthHandler {
	return &AuthHandler{}
}

// LoginRequest represents the login request payload.
type LoginRequest struct {
	Password string `json:"password" binding:"required"`
}

// AuthResponse represents the authentication response with token.
type AuthResponse struct {
	Token string `json:"token"`
}

// Login authenticates the owner and issues a token.
// @Summary     Login
// @Description Authenticate with the owner password and get a token
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       request body LoginRequest true "Owner password"
// @Success     200 {object} AuthResponse "Token generated"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Invalid credentials"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	hash := config.Get().OwnerPasswordHash
	if hash == "" {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInternalServer, "Owner password is not configured"))
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(req.Password)); err != nil {
		respondWithError(c, apperrors.ErrInvalidCredentials)
		return
	}

	token, err := middleware.GenerateToken()
	if err != nil {
		respondWithError(c, apperrors.Wrap(apperrors.ErrInternalServer, err))
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}

// ErrorDetail represents the inner error object in an error response.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}
