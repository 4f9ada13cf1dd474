package public

import (
	"errors"
	"strconv"
	"strings"

	"github.com/blogium-next/internal/constants"
	"github.com/blogium-next/internal/http/response"
	"github.com/blogium-next/internal/repository"
	"github.com/blogium-next/internal/service"

	"github.com/gin-gonic/gin"
)

// GetProfile 个人主页：用户资料 + 文章列表
// 本人访问时包含未公开文章
func (h *Handler) GetProfile(c *gin.Context) {
	username := strings.TrimSpace(c.Param("username"))
	if username == "" {
		respondError(c, response.CodeBadRequest, "error.invalid_params", nil)
		return
	}

	user, err := h.UserRepo.GetByUsername(username)
	if err != nil {
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}
	if user == nil {
		respondError(c, response.CodeNotFound, "error.profile_not_found", nil)
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	pageSize := constants.ProfilePageSize

	posts, total, err := h.PostService.ListByAuthor(user, viewerID(c), page, pageSize)
	if err != nil {
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}

	response.SuccessWithPage(c, gin.H{
		"profile": userProfileView(user),
		"posts":   posts,
	}, response.Pagination{
		Page:      repository.ClampPage(page, total, pageSize),
		PageSize:  pageSize,
		Total:     total,
		TotalPage: repository.TotalPages(total, pageSize),
	})
}

// UpdateProfileRequest 更新资料请求
type UpdateProfileRequest struct {
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Bio       *string `json:"bio"`
	Locale    *string `json:"locale"`
	Email     *string `json:"email"`
}

// UpdateProfile 更新当前用户资料
func (h *Handler) UpdateProfile(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.invalid_params", err)
		return
	}

	user, err := h.UserAuthService.UpdateProfile(uid, service.UpdateProfileInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Bio:       req.Bio,
		Locale:    req.Locale,
		Email:     req.Email,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrProfileEmpty):
			respondError(c, response.CodeBadRequest, "error.profile_empty", nil)
		case errors.Is(err, service.ErrInvalidEmail):
			respondError(c, response.CodeBadRequest, "error.invalid_params", nil)
		case errors.Is(err, service.ErrEmailExists):
			respondError(c, response.CodeBadRequest, "error.email_exists", nil)
		case errors.Is(err, service.ErrNotFound):
			respondError(c, response.CodeNotFound, "error.profile_not_found", nil)
		default:
			respondError(c, response.CodeInternal, "error.internal", err)
		}
		return
	}
	response.Success(c, userProfileView(user))
}
