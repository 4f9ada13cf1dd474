package admin

import (
	"errors"

	"github.com/blogium-next/internal/authz"
	"github.com/blogium-next/internal/http/response"

	"github.com/gin-gonic/gin"
)

// ListRoles 角色列表
func (h *Handler) ListRoles(c *gin.Context) {
	roles, err := h.AuthzService.ListRoles()
	if err != nil {
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}
	response.Success(c, gin.H{"roles": roles})
}

// ListBuiltinRoles 预置角色及其权限矩阵
func (h *Handler) ListBuiltinRoles(c *gin.Context) {
	seeds := authz.BuiltinRoleSeeds()
	views := make([]gin.H, 0, len(seeds))
	for _, seed := range seeds {
		views = append(views, gin.H{
			"role":     seed.Role,
			"inherits": seed.Inherits,
			"policies": seed.Policies,
		})
	}
	response.Success(c, views)
}

// RoleRequest 角色请求
type RoleRequest struct {
	Role string `json:"role" binding:"required"`
}

// CreateRole 创建空角色
func (h *Handler) CreateRole(c *gin.Context) {
	var req RoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.invalid_params", err)
		return
	}

	role, err := h.AuthzService.EnsureRole(req.Role)
	if err != nil {
		h.respondAuthzError(c, err)
		return
	}
	response.Success(c, gin.H{"role": role})
}

// DeleteRole 删除角色及其策略
func (h *Handler) DeleteRole(c *gin.Context) {
	role := c.Param("role")
	if err := h.AuthzService.DeleteRole(role); err != nil {
		h.respondAuthzError(c, err)
		return
	}
	response.Success(c, nil)
}

// GetRolePolicies 角色策略列表
func (h *Handler) GetRolePolicies(c *gin.Context) {
	policies, err := h.AuthzService.GetRolePolicies(c.Param("role"))
	if err != nil {
		h.respondAuthzError(c, err)
		return
	}
	response.Success(c, policies)
}

// RolePolicyRequest 角色策略请求
type RolePolicyRequest struct {
	Object string `json:"object" binding:"required"`
	Action string `json:"action" binding:"required"`
}

// GrantRolePolicy 给角色授权
func (h *Handler) GrantRolePolicy(c *gin.Context) {
	var req RolePolicyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.invalid_params", err)
		return
	}

	if err := h.AuthzService.GrantRolePolicy(c.Param("role"), req.Object, req.Action); err != nil {
		h.respondAuthzError(c, err)
		return
	}
	response.Success(c, nil)
}

// RevokeRolePolicy 撤销角色授权
func (h *Handler) RevokeRolePolicy(c *gin.Context) {
	var req RolePolicyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.invalid_params", err)
		return
	}

	if err := h.AuthzService.RevokeRolePolicy(c.Param("role"), req.Object, req.Action); err != nil {
		h.respondAuthzError(c, err)
		return
	}
	response.Success(c, nil)
}

// GetAdminRoles 查询管理员绑定的角色
func (h *Handler) GetAdminRoles(c *gin.Context) {
	id, ok := parseAdminIDParam(c, "id")
	if !ok {
		return
	}

	roles, err := h.AuthzService.GetAdminRoles(id)
	if err != nil {
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}
	response.Success(c, gin.H{"admin_id": id, "roles": roles})
}

// SetAdminRolesRequest 管理员角色绑定请求
type SetAdminRolesRequest struct {
	Roles []string `json:"roles"`
}

// SetAdminRoles 覆盖式设置管理员的角色
func (h *Handler) SetAdminRoles(c *gin.Context) {
	id, ok := parseAdminIDParam(c, "id")
	if !ok {
		return
	}

	var req SetAdminRolesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.invalid_params", err)
		return
	}

	admin, err := h.AdminRepo.GetByID(id)
	if err != nil {
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}
	if admin == nil {
		respondError(c, response.CodeNotFound, "error.profile_not_found", nil)
		return
	}

	if err := h.AuthzService.SetAdminRoles(id, req.Roles); err != nil {
		h.respondAuthzError(c, err)
		return
	}
	requestLog(c).Infow("admin_roles_updated", "admin_id", id, "roles", req.Roles)
	response.Success(c, nil)
}

func (h *Handler) respondAuthzError(c *gin.Context, err error) {
	if errors.Is(err, authz.ErrInvalidRole) {
		respondError(c, response.CodeBadRequest, "error.invalid_params", nil)
		return
	}
	respondError(c, response.CodeInternal, "error.internal", err)
}
