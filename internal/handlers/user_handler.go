package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/VIT-EcoTrack/EcoTrack/internal/domain/user"
	"github.com/VIT-EcoTrack/EcoTrack/internal/response"
	"github.com/VIT-EcoTrack/EcoTrack/internal/storage/postgres"
	"github.com/VIT-EcoTrack/EcoTrack/internal/validation"
)

type UserHandler struct {
	users postgres.UserRepository
}

func NewUserHandler(users postgres.UserRepository) *UserHandler {
	return &UserHandler{users: users}
}

// ListUsers handles GET /api/users
func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.users.GetAll()
	if err != nil {
		response.Internal(c, "Failed to list users")
		return
	}

	publics := make([]user.Public, 0, len(users))
	for _, u := range users {
		publics = append(publics, u.ToPublic())
	}

	response.Success(c, http.StatusOK, "", publics)
}

// ListWorkers handles GET /api/users/workers
func (h *UserHandler) ListWorkers(c *gin.Context) {
	workers, err := h.users.GetByRole(user.RoleWorker)
	if err != nil {
		response.Internal(c, "Failed to list workers")
		return
	}

	publics := make([]user.Public, 0, len(workers))
	for _, u := range workers {
		publics = append(publics, u.ToPublic())
	}

	response.Success(c, http.StatusOK, "", publics)
}

type UpdateRoleRequest struct {
	Role string `json:"role" binding:"required"`
}

// UpdateRole handles PUT /api/users/:id/role
func (h *UserHandler) UpdateRole(c *gin.Context) {
	id := c.Param("id")
	if err := validation.ValidateUUID(id, "user id"); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	var req UpdateRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}

	role, valid := user.RoleFromString(req.Role)
	if !valid {
		response.BadRequest(c, "Invalid role")
		return
	}

	if err := h.users.UpdateRole(id, role); err != nil {
		response.DomainError(c, err)
		return
	}

	u, err := h.users.GetByID(id)
	if err != nil {
		response.DomainError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Role updated", u.ToPublic())
}
