package public

import (
	"errors"
	"fmt"

	"github.com/blogium-next/internal/http/response"
	"github.com/blogium-next/internal/service"

	"github.com/gin-gonic/gin"
)

// ListComments 文章评论列表
func (h *Handler) ListComments(c *gin.Context) {
	postID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	comments, err := h.CommentService.ListForPost(postID, viewerID(c))
	if err != nil {
		respondWithMappedError(c, err, commentReadErrorRules, response.CodeInternal, "error.internal")
		return
	}
	response.Success(c, comments)
}

// CommentRequest 发表/编辑评论请求
type CommentRequest struct {
	Text string `json:"text" binding:"required"`
}

// CreateComment 发表评论，需登录
func (h *Handler) CreateComment(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	postID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.invalid_params", err)
		return
	}

	comment, err := h.CommentService.Create(postID, uid, req.Text)
	if err != nil {
		respondWithMappedError(c, err, []mappedHandlerError{
			{target: service.ErrNotFound, code: response.CodeNotFound, key: "error.post_not_found"},
			{target: service.ErrInvalidInput, code: response.CodeBadRequest, key: "error.invalid_params"},
		}, response.CodeInternal, "error.internal")
		return
	}
	response.Success(c, comment)
}

// UpdateComment 编辑评论，非作者跳转回文章详情
func (h *Handler) UpdateComment(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	postID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	commentID, ok := parseIDParam(c, "comment_id")
	if !ok {
		return
	}

	var req CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.invalid_params", err)
		return
	}

	comment, err := h.CommentService.Update(commentID, postID, uid, req.Text)
	if err != nil {
		h.respondCommentMutationError(c, postID, err)
		return
	}
	response.Success(c, comment)
}

// DeleteComment 删除评论，非作者跳转回文章详情
func (h *Handler) DeleteComment(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	postID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	commentID, ok := parseIDParam(c, "comment_id")
	if !ok {
		return
	}

	if err := h.CommentService.Delete(commentID, postID, uid); err != nil {
		h.respondCommentMutationError(c, postID, err)
		return
	}
	response.Success(c, gin.H{"deleted": true})
}

func (h *Handler) respondCommentMutationError(c *gin.Context, postID uint, err error) {
	// 他人评论不可改不可删，定向回文章详情页
	if errors.Is(err, service.ErrForbidden) {
		response.SeeOther(c, fmt.Sprintf("/api/v1/posts/%d", postID))
		return
	}
	respondWithMappedError(c, err, []mappedHandlerError{
		{target: service.ErrNotFound, code: response.CodeNotFound, key: "error.comment_not_found"},
		{target: service.ErrCommentNotInPost, code: response.CodeNotFound, key: "error.comment_not_found"},
		{target: service.ErrInvalidInput, code: response.CodeBadRequest, key: "error.invalid_params"},
	}, response.CodeInternal, "error.internal")
}
