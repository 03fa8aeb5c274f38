package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/VIT-EcoTrack/EcoTrack/internal/auth"
	"github.com/VIT-EcoTrack/EcoTrack/internal/domain/user"
	"github.com/VIT-EcoTrack/EcoTrack/internal/middleware"
	"github.com/VIT-EcoTrack/EcoTrack/internal/response"
	"github.com/VIT-EcoTrack/EcoTrack/internal/storage/postgres"
)

type AuthHandler struct {
	users  postgres.UserRepository
	tokens *auth.TokenService
}

func NewAuthHandler(users postgres.UserRepository, tokens *auth.TokenService) *AuthHandler {
	return &AuthHandler{
		users:  users,
		tokens: tokens,
	}
}

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type authPayload struct {
	Token string      `json:"token"`
	User  user.Public `json:"user"`
}

// Register handles POST /api/auth/register. New accounts always get the
// citizen role; admins promote workers through the user management routes.
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}

	if err := auth.ValidatePassword(req.Password); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		response.Internal(c, "Failed to create account")
		return
	}

	u := user.New(req.Name, req.Email, hash)
	if err := h.users.Create(u); err != nil {
		response.DomainError(c, err)
		return
	}

	token, err := h.tokens.Generate(u)
	if err != nil {
		response.Internal(c, "Failed to issue token")
		return
	}

	response.Success(c, http.StatusCreated, "Account created", authPayload{
		Token: token,
		User:  u.ToPublic(),
	})
}

// Login handles POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}

	// A wrong email and a wrong password produce the same answer.
	u, err := h.users.GetByEmail(req.Email)
	if err != nil {
		response.Unauthorized(c, "Invalid credentials")
		return
	}

	if err := auth.CheckPassword(req.Password, u.PasswordHash); err != nil {
		response.Unauthorized(c, "Invalid credentials")
		return
	}

	token, err := h.tokens.Generate(u)
	if err != nil {
		response.Internal(c, "Failed to issue token")
		return
	}

	response.Success(c, http.StatusOK, "Logged in", authPayload{
		Token: token,
		User:  u.ToPublic(),
	})
}

// Me handles GET /api/auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	caller, ok := middleware.CallerFrom(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}

	u, err := h.users.GetByID(caller.ID.String())
	if err != nil {
		response.DomainError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "", u.ToPublic())
}
