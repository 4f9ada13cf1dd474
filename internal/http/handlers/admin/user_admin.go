package admin

import (
	"strconv"
	"time"

	"github.com/blogium-next/internal/constants"
	"github.com/blogium-next/internal/http/response"
	"github.com/blogium-next/internal/models"
	"github.com/blogium-next/internal/repository"

	"github.com/gin-gonic/gin"
)

// ListUsers 用户列表
func (h *Handler) ListUsers(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = normalizePagination(page, pageSize)

	filter := repository.UserListFilter{
		Page:     page,
		PageSize: pageSize,
		Keyword:  c.Query("keyword"),
		Status:   c.Query("status"),
	}
	if raw := c.Query("created_from"); raw != "" {
		if t, err := time.Parse(time.RFC3339, raw); err == nil {
			filter.CreatedFrom = &t
		}
	}
	if raw := c.Query("created_to"); raw != "" {
		if t, err := time.Parse(time.RFC3339, raw); err == nil {
			filter.CreatedTo = &t
		}
	}

	users, total, err := h.UserRepo.List(filter)
	if err != nil {
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}

	views := make([]gin.H, 0, len(users))
	for i := range users {
		views = append(views, adminUserView(&users[i]))
	}
	response.SuccessWithPage(c, views, listPagination(page, pageSize, total))
}

// GetUser 用户详情
func (h *Handler) GetUser(c *gin.Context) {
	id, ok := parseAdminIDParam(c, "id")
	if !ok {
		return
	}

	user, err := h.UserRepo.GetByID(id)
	if err != nil {
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}
	if user == nil {
		respondError(c, response.CodeNotFound, "error.profile_not_found", nil)
		return
	}
	response.Success(c, adminUserView(user))
}

// UpdateUserStatusRequest 用户状态请求
type UpdateUserStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// UpdateUserStatus 启用或禁用单个用户
func (h *Handler) UpdateUserStatus(c *gin.Context) {
	id, ok := parseAdminIDParam(c, "id")
	if !ok {
		return
	}

	var req UpdateUserStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.invalid_params", err)
		return
	}
	if !isValidUserStatus(req.Status) {
		respondError(c, response.CodeBadRequest, "error.invalid_params", nil)
		return
	}

	user, err := h.UserRepo.GetByID(id)
	if err != nil {
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}
	if user == nil {
		respondError(c, response.CodeNotFound, "error.profile_not_found", nil)
		return
	}

	if err := h.UserRepo.BatchUpdateStatus([]uint{id}, req.Status); err != nil {
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}
	requestLog(c).Infow("admin_user_status_updated", "user_id", id, "status", req.Status)
	response.Success(c, nil)
}

// BatchUpdateUserStatusRequest 批量用户状态请求
type BatchUpdateUserStatusRequest struct {
	UserIDs []uint `json:"user_ids" binding:"required,min=1"`
	Status  string `json:"status" binding:"required"`
}

// BatchUpdateUserStatus 批量启用或禁用用户，禁用会立即失效已签发的令牌
func (h *Handler) BatchUpdateUserStatus(c *gin.Context) {
	var req BatchUpdateUserStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.invalid_params", err)
		return
	}
	if !isValidUserStatus(req.Status) {
		respondError(c, response.CodeBadRequest, "error.invalid_params", nil)
		return
	}

	if err := h.UserRepo.BatchUpdateStatus(req.UserIDs, req.Status); err != nil {
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}
	requestLog(c).Infow("admin_user_status_batch_updated",
		"count", len(req.UserIDs), "status", req.Status)
	response.Success(c, gin.H{"updated": len(req.UserIDs)})
}

func isValidUserStatus(status string) bool {
	return status == constants.UserStatusActive || status == constants.UserStatusDisabled
}

func adminUserView(user *models.User) gin.H {
	return gin.H{
		"id":         user.ID,
		"username":   user.Username,
		"email":      user.Email,
		"first_name": user.FirstName,
		"last_name":  user.LastName,
		"status":     user.Status,
		"locale":     user.Locale,
		"created_at": user.CreatedAt,
	}
}
