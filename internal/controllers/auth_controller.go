package controllers

import (
	"errors"
	"log"
	"net/http"

	"expense-tracker-be/internal/models"
	"expense-tracker-be/internal/service"
	"expense-tracker-be/internal/token"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	authService service.AuthService
	tokens      *token.Service
}

func NewAuthController(authService service.AuthService, tokens *token.Service) *AuthController {
	return &AuthController{
		authService: authService,
		tokens:      tokens,
	}
}

// Signup handles POST /api/auth/signup
func (ac *AuthController) Signup(c *gin.Context) {
	var req models.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	user, tokenStr, err := ac.authService.Signup(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrUserExists) {
			respondError(c, http.StatusBadRequest, "User with this email or phone already exists")
			return
		}
		log.Printf("ERROR: signup failed for %s: %v", req.Email, err)
		respondError(c, http.StatusInternalServerError, "Something went wrong")
		return
	}

	ac.tokens.SetCookie(c, tokenStr)
	respondData(c, http.StatusCreated, models.AuthData{User: user, Token: tokenStr})
}

// Login handles POST /api/auth/login
func (ac *AuthController) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	user, tokenStr, err := ac.authService.Login(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			respondError(c, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		log.Printf("ERROR: login failed: %v", err)
		respondError(c, http.StatusInternalServerError, "Something went wrong")
		return
	}

	ac.tokens.SetCookie(c, tokenStr)
	respondData(c, http.StatusOK, models.AuthData{User: user, Token: tokenStr})
}

// Logout handles POST /api/auth/logout. Tokens are stateless; the client
// discards its copy and the cookie is simply acknowledged.
func (ac *AuthController) Logout(c *gin.Context) {
	respondMessage(c, http.StatusOK, "Logged out successfully")
}
