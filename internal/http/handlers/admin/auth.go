package admin

import (
	"errors"
	"strconv"
	"time"

	"github.com/veltrachem-web/internal/http/response"
	"github.com/veltrachem-web/internal/service"

	"github.com/gin-gonic/gin"
)

// LoginRequest is the admin login payload.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the issued session token.
type LoginResponse struct {
	Token     string                 `json:"token"`
	User      map[string]interface{} `json:"user"`
	ExpiresAt string                 `json:"expires_at"`
}

// Login authenticates an admin.
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request", err)
		return
	}

	admin, token, expiresAt, err := h.AuthService.Login(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			respondError(c, response.CodeUnauthorized, "invalid username or password", nil)
			return
		}
		respondError(c, response.CodeInternal, "login failed", err)
		return
	}

	response.Success(c, LoginResponse{
		Token: token,
		User: map[string]interface{}{
			"id":       admin.ID,
			"username": admin.Username,
			"is_super": admin.IsSuper,
		},
		ExpiresAt: expiresAt.Format(time.RFC3339),
	})
}

// Me returns the authenticated admin profile.
func (h *Handler) Me(c *gin.Context) {
	id, ok := currentAdminID(c)
	if !ok {
		return
	}
	admin, err := h.AdminRepo.GetByID(id)
	if err != nil || admin == nil {
		respondError(c, response.CodeUnauthorized, "unauthorized", err)
		return
	}
	response.Success(c, gin.H{
		"id":            admin.ID,
		"username":      admin.Username,
		"is_super":      admin.IsSuper,
		"last_login_at": admin.LastLoginAt,
	})
}

// ChangePasswordRequest is the password rotation payload.
type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required"`
}

// ChangePassword rotates the caller's password.
func (h *Handler) ChangePassword(c *gin.Context) {
	id, ok := currentAdminID(c)
	if !ok {
		return
	}

	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request", err)
		return
	}

	if err := h.AuthService.ChangePassword(id, req.OldPassword, req.NewPassword); err != nil {
		if errors.Is(err, service.ErrInvalidPassword) {
			respondError(c, response.CodeBadRequest, "current password is incorrect", nil)
			return
		}
		respondError(c, response.CodeBadRequest, err.Error(), err)
		return
	}
	response.SuccessWithMsg(c, "password updated", nil)
}

// ListAdmins returns admin accounts. Superusers only.
func (h *Handler) ListAdmins(c *gin.Context) {
	if !isSuperAdmin(c) {
		respondError(c, response.CodeForbidden, "permission denied", nil)
		return
	}
	admins, err := h.AuthService.ListAdmins()
	if err != nil {
		respondError(c, response.CodeInternal, "failed to load admins", err)
		return
	}
	response.Success(c, admins)
}

// CreateAdminRequest is the account creation payload.
type CreateAdminRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
	IsSuper  bool   `json:"is_super"`
}

// CreateAdmin creates an admin account. Superusers only.
func (h *Handler) CreateAdmin(c *gin.Context) {
	if !isSuperAdmin(c) {
		respondError(c, response.CodeForbidden, "permission denied", nil)
		return
	}

	var req CreateAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request", err)
		return
	}

	admin, err := h.AuthService.CreateAdmin(req.Username, req.Password, req.IsSuper)
	if err != nil {
		respondError(c, response.CodeBadRequest, err.Error(), err)
		return
	}
	response.Success(c, gin.H{
		"id":       admin.ID,
		"username": admin.Username,
		"is_super": admin.IsSuper,
	})
}

// DeleteAdmin removes an admin account. Superusers only.
func (h *Handler) DeleteAdmin(c *gin.Context) {
	if !isSuperAdmin(c) {
		respondError(c, response.CodeForbidden, "permission denied", nil)
		return
	}
	callerID, ok := currentAdminID(c)
	if !ok {
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		respondError(c, response.CodeBadRequest, "invalid id", err)
		return
	}

	if err := h.AuthService.DeleteAdmin(uint(id), callerID); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(c, response.CodeNotFound, "admin not found", nil)
			return
		}
		respondError(c, response.CodeBadRequest, err.Error(), err)
		return
	}
	response.SuccessWithMsg(c, "deleted", nil)
}
