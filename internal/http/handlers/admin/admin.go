package admin

import (
	"errors"

	"github.com/glowderma/glowderma/internal/http/response"
	"github.com/glowderma/glowderma/internal/service"

	"github.com/gin-gonic/gin"
)

// LoginRequest is the admin login payload.
type LoginRequest struct {
	Username    string `json:"username" binding:"required"`
	Password    string `json:"password" binding:"required"`
	CaptchaID   string `json:"captcha_id"`
	CaptchaCode string `json:"captcha_code"`
}

// ChangePasswordRequest rotates the current admin's password.
type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required"`
}

// Login authenticates an admin and issues a token.
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "username and password are required")
		return
	}

	if err := h.CaptchaService.Verify(req.CaptchaID, req.CaptchaCode); err != nil {
		response.BadRequest(c, "captcha invalid")
		return
	}

	adminAccount, token, expiresAt, err := h.AuthService.Login(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			response.Unauthorized(c, "invalid credentials")
			return
		}
		respondError(c, response.CodeInternal, "login failed", err)
		return
	}

	response.Success(c, gin.H{
		"token":      token,
		"expires_at": expiresAt,
		"admin": gin.H{
			"id":       adminAccount.ID,
			"username": adminAccount.Username,
			"is_super": adminAccount.IsSuper,
		},
	})
}

// Me returns the authenticated admin's profile and roles.
func (h *Handler) Me(c *gin.Context) {
	adminID, ok := getAdminID(c)
	if !ok {
		return
	}

	adminAccount, err := h.AdminRepo.GetByID(adminID)
	if err != nil || adminAccount == nil {
		respondError(c, response.CodeInternal, "failed to load profile", err)
		return
	}

	roles := []string{}
	if h.AuthzService != nil {
		if adminRoles, err := h.AuthzService.GetAdminRoles(adminID); err == nil {
			roles = adminRoles
		}
	}

	response.Success(c, gin.H{
		"id":            adminAccount.ID,
		"username":      adminAccount.Username,
		"is_super":      adminAccount.IsSuper,
		"last_login_at": adminAccount.LastLoginAt,
		"roles":         roles,
	})
}

// ChangePassword rotates the authenticated admin's password.
func (h *Handler) ChangePassword(c *gin.Context) {
	adminID, ok := getAdminID(c)
	if !ok {
		return
	}
	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "old_password and new_password are required")
		return
	}

	if err := h.AuthService.ChangePassword(adminID, req.OldPassword, req.NewPassword); err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCredentials):
			response.BadRequest(c, "old password does not match")
		case errors.Is(err, service.ErrPasswordTooShort):
			response.BadRequest(c, "new password is too short")
		default:
			respondError(c, response.CodeInternal, "password change failed", err)
		}
		return
	}
	response.SuccessWithMsg(c, "password changed", nil)
}
