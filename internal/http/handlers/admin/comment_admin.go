package admin

import (
	"strconv"

	"github.com/blogium-next/internal/http/response"
	"github.com/blogium-next/internal/repository"

	"github.com/gin-gonic/gin"
)

// ListComments 评论列表，供内容审核
func (h *Handler) ListComments(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = normalizePagination(page, pageSize)

	filter := repository.CommentListFilter{
		Page:     page,
		PageSize: pageSize,
		Search:   c.Query("search"),
	}
	if raw := c.Query("post_id"); raw != "" {
		if id, err := strconv.ParseUint(raw, 10, 64); err == nil {
			filter.PostID = uint(id)
		}
	}
	if raw := c.Query("author_id"); raw != "" {
		if id, err := strconv.ParseUint(raw, 10, 64); err == nil {
			filter.AuthorID = uint(id)
		}
	}

	comments, total, err := h.CommentRepo.List(filter)
	if err != nil {
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}
	response.SuccessWithPage(c, comments, listPagination(page, pageSize, total))
}

// GetComment 评论详情
func (h *Handler) GetComment(c *gin.Context) {
	id, ok := parseAdminIDParam(c, "id")
	if !ok {
		return
	}

	comment, err := h.CommentRepo.GetByID(id)
	if err != nil {
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}
	if comment == nil {
		respondError(c, response.CodeNotFound, "error.comment_not_found", nil)
		return
	}
	response.Success(c, comment)
}

// DeleteComment 删除评论，用于清理违规内容
func (h *Handler) DeleteComment(c *gin.Context) {
	id, ok := parseAdminIDParam(c, "id")
	if !ok {
		return
	}

	comment, err := h.CommentRepo.GetByID(id)
	if err != nil {
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}
	if comment == nil {
		respondError(c, response.CodeNotFound, "error.comment_not_found", nil)
		return
	}

	if err := h.CommentRepo.Delete(id); err != nil {
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}
	requestLog(c).Infow("admin_comment_deleted", "comment_id", id, "post_id", comment.PostID)
	response.Success(c, nil)
}
