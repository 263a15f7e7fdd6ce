package handler

import (
	"clever-bank/internal/adapter/http/dto"
	"clever-bank/internal/cache"
	"clever-bank/internal/core/domain"
	"clever-bank/pkg/apperror"
	"clever-bank/pkg/response"

	"github.com/gin-gonic/gin"
)

// UserHandler handles account-holder CRUD endpoints.
type UserHandler struct {
	users *cache.Cache[domain.User]
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(users *cache.Cache[domain.User]) *UserHandler {
	return &UserHandler{users: users}
}

// List handles GET /api/v1/users.
func (h *UserHandler) List(c *gin.Context) {
	all := h.users.FindAll()
	out := make([]dto.UserResponse, 0, len(all))
	for _, u := range all {
		out = append(out, dto.UserResponse{ID: u.ID, FullName: u.FullName})
	}
	response.OK(c, out)
}

// Get handles GET /api/v1/users/:id.
func (h *UserHandler) Get(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	user, ok := h.users.FindByID(id)
	if !ok {
		response.Error(c, apperror.ErrUserNotFound())
		return
	}
	response.OK(c, dto.UserResponse{ID: user.ID, FullName: user.FullName})
}

// Create handles POST /api/v1/users.
func (h *UserHandler) Create(c *gin.Context) {
	var req dto.UserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	user, err := h.users.Save(c.Request.Context(), domain.User{FullName: req.FullName})
	if err != nil {
		response.Error(c, apperror.ErrDatabaseError(err))
		return
	}
	response.Created(c, dto.UserResponse{ID: user.ID, FullName: user.FullName})
}

// Update handles PUT /api/v1/users/:id.
func (h *UserHandler) Update(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	var req dto.UserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	found, err := h.users.Update(c.Request.Context(), domain.User{ID: id, FullName: req.FullName})
	if err != nil {
		response.Error(c, apperror.ErrDatabaseError(err))
		return
	}
	if !found {
		response.Error(c, apperror.ErrUserNotFound())
		return
	}
	response.OK(c, dto.UserResponse{ID: id, FullName: req.FullName})
}

// Delete handles DELETE /api/v1/users/:id.
func (h *UserHandler) Delete(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	found, err := h.users.Delete(c.Request.Context(), id)
	if err != nil {
		response.Error(c, apperror.ErrDatabaseError(err))
		return
	}
	if !found {
		response.Error(c, apperror.ErrUserNotFound())
		return
	}
	response.OK(c, gin.H{"deleted": id})
}
