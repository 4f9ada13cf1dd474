package admin

import (
	"strconv"
	"strings"
	"time"

	"github.com/blogium-next/internal/http/response"
	"github.com/blogium-next/internal/repository"

	"github.com/gin-gonic/gin"
)

// ListPosts 文章列表，含未发布与定时发布的文章
func (h *Handler) ListPosts(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = normalizePagination(page, pageSize)

	filter := repository.PostListFilter{
		Page:     page,
		PageSize: pageSize,
		Search:   c.Query("search"),
	}
	if raw := c.Query("is_published"); raw != "" {
		published := raw == "true" || raw == "1"
		filter.IsPublished = &published
	}
	if raw := c.Query("category_id"); raw != "" {
		if id, err := strconv.ParseUint(raw, 10, 64); err == nil {
			filter.CategoryID = uint(id)
		}
	}
	if raw := c.Query("author_id"); raw != "" {
		if id, err := strconv.ParseUint(raw, 10, 64); err == nil {
			filter.AuthorID = uint(id)
		}
	}

	posts, total, err := h.PostRepo.List(filter)
	if err != nil {
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}
	response.SuccessWithPage(c, posts, listPagination(page, pageSize, total))
}

// GetPost 文章详情
func (h *Handler) GetPost(c *gin.Context) {
	id, ok := parseAdminIDParam(c, "id")
	if !ok {
		return
	}

	post, err := h.PostRepo.GetByID(id)
	if err != nil {
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}
	if post == nil {
		respondError(c, response.CodeNotFound, "error.post_not_found", nil)
		return
	}
	response.Success(c, post)
}

// UpdatePostStatusRequest 文章发布状态请求
type UpdatePostStatusRequest struct {
	IsPublished *bool      `json:"is_published" binding:"required"`
	PubDate     *time.Time `json:"pub_date"`
}

// UpdatePostStatus 调整文章发布状态，用于下架违规内容
func (h *Handler) UpdatePostStatus(c *gin.Context) {
	id, ok := parseAdminIDParam(c, "id")
	if !ok {
		return
	}

	var req UpdatePostStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.invalid_params", err)
		return
	}

	post, err := h.PostRepo.GetByID(id)
	if err != nil {
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}
	if post == nil {
		respondError(c, response.CodeNotFound, "error.post_not_found", nil)
		return
	}

	post.IsPublished = *req.IsPublished
	if req.PubDate != nil {
		post.PubDate = *req.PubDate
	}
	if err := h.PostRepo.Update(post); err != nil {
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}
	h.invalidateFeedCache(c)
	requestLog(c).Infow("admin_post_status_updated",
		"post_id", post.ID, "is_published", post.IsPublished)
	response.Success(c, post)
}

// DeletePost 删除文章
func (h *Handler) DeletePost(c *gin.Context) {
	id, ok := parseAdminIDParam(c, "id")
	if !ok {
		return
	}

	post, err := h.PostRepo.GetByID(id)
	if err != nil {
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}
	if post == nil {
		respondError(c, response.CodeNotFound, "error.post_not_found", nil)
		return
	}

	if err := h.PostRepo.Delete(id); err != nil {
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}
	h.invalidateFeedCache(c)
	requestLog(c).Infow("admin_post_deleted", "post_id", id, "title", strings.TrimSpace(post.Title))
	response.Success(c, nil)
}
