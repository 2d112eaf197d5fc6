package admin

import (
	"github.com/glowderma/glowderma/internal/http/response"

	"github.com/gin-gonic/gin"
)

// RolePolicyRequest grants or revokes one allow rule on a role.
type RolePolicyRequest struct {
	Object string `json:"object" binding:"required"`
	Action string `json:"action" binding:"required"`
}

// AdminRolesRequest replaces an admin's role assignments.
type AdminRolesRequest struct {
	Roles []string `json:"roles"`
}

// requireSuper gates role management to the built-in super admin.
func (h *Handler) requireSuper(c *gin.Context) (uint, bool) {
	adminID, ok := getAdminID(c)
	if !ok {
		return 0, false
	}
	account, err := h.AdminRepo.GetByID(adminID)
	if err != nil || account == nil {
		respondError(c, response.CodeInternal, "failed to load profile", err)
		return 0, false
	}
	if !account.IsSuper {
		response.Forbidden(c, "super admin required")
		return 0, false
	}
	return adminID, true
}

// ListRoles returns every known role.
func (h *Handler) ListRoles(c *gin.Context) {
	if _, ok := h.requireSuper(c); !ok {
		return
	}
	roles, err := h.AuthzService.ListRoles()
	if err != nil {
		respondError(c, response.CodeInternal, "failed to load roles", err)
		return
	}
	response.Success(c, gin.H{"roles": roles})
}

// GetRolePolicies lists the allow rules attached to a role.
func (h *Handler) GetRolePolicies(c *gin.Context) {
	if _, ok := h.requireSuper(c); !ok {
		return
	}
	policies, err := h.AuthzService.GetRolePolicies(c.Param("role"))
	if err != nil {
		respondError(c, response.CodeBadRequest, "failed to load role policies", err)
		return
	}
	response.Success(c, gin.H{"policies": policies})
}

// GrantRolePolicy attaches an allow rule to a role.
func (h *Handler) GrantRolePolicy(c *gin.Context) {
	if _, ok := h.requireSuper(c); !ok {
		return
	}
	var req RolePolicyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "object and action are required")
		return
	}
	if err := h.AuthzService.GrantRolePolicy(c.Param("role"), req.Object, req.Action); err != nil {
		respondError(c, response.CodeBadRequest, "grant failed", err)
		return
	}
	response.SuccessWithMsg(c, "policy granted", nil)
}

// RevokeRolePolicy removes an allow rule from a role.
func (h *Handler) RevokeRolePolicy(c *gin.Context) {
	if _, ok := h.requireSuper(c); !ok {
		return
	}
	var req RolePolicyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "object and action are required")
		return
	}
	if err := h.AuthzService.RevokeRolePolicy(c.Param("role"), req.Object, req.Action); err != nil {
		respondError(c, response.CodeBadRequest, "revoke failed", err)
		return
	}
	response.SuccessWithMsg(c, "policy revoked", nil)
}

// SetAdminRoles replaces an admin account's role assignments.
func (h *Handler) SetAdminRoles(c *gin.Context) {
	if _, ok := h.requireSuper(c); !ok {
		return
	}
	targetID, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req AdminRolesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "roles payload invalid")
		return
	}
	if err := h.AuthzService.SetAdminRoles(targetID, req.Roles); err != nil {
		respondError(c, response.CodeBadRequest, "role assignment failed", err)
		return
	}
	response.SuccessWithMsg(c, "roles updated", nil)
}
