package public

import (
	"encoding/json"
	"strconv"
	"time"

	"github.com/blogium-next/internal/cache"
	"github.com/blogium-next/internal/http/response"
	"github.com/blogium-next/internal/repository"
	"github.com/blogium-next/internal/service"

	"github.com/gin-gonic/gin"
)

func (h *Handler) parsePageQuery(c *gin.Context) (int, int) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "0"))
	if pageSize <= 0 {
		pageSize = h.Config.Blog.PageSize
	}
	if max := h.Config.Blog.MaxPageSize; max > 0 && pageSize > max {
		pageSize = max
	}
	if page < 1 {
		page = 1
	}
	return page, pageSize
}

func feedPagination(page, pageSize int, total int64) response.Pagination {
	effective := repository.ClampPage(page, total, pageSize)
	return response.Pagination{
		Page:      effective,
		PageSize:  pageSize,
		Total:     total,
		TotalPage: repository.TotalPages(total, pageSize),
	}
}

// ListFeed 首页文章列表
// 可见集合对所有访问者一致，结果按页缓存
func (h *Handler) ListFeed(c *gin.Context) {
	page, pageSize := h.parsePageQuery(c)

	ttl := time.Duration(h.Config.Blog.FeedCacheTTL) * time.Second
	if ttl > 0 {
		if entry, hit, err := cache.GetFeedPage(c.Request.Context(), page, pageSize); err == nil && hit {
			response.SuccessWithPage(c, json.RawMessage(entry.Payload), feedPagination(entry.Page, pageSize, entry.Total))
			return
		}
	}

	posts, total, err := h.PostService.ListFeed(page, pageSize)
	if err != nil {
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}

	if ttl > 0 {
		if payload, err := json.Marshal(posts); err == nil {
			entry := &cache.FeedPage{
				Payload:  payload,
				Total:    total,
				Page:     page,
				CachedAt: time.Now().Unix(),
			}
			if err := cache.SetFeedPage(c.Request.Context(), entry, pageSize, ttl); err != nil {
				requestLog(c).Warnw("feed_cache_set_failed", "page", page, "error", err)
			}
		}
	}

	response.SuccessWithPage(c, posts, feedPagination(page, pageSize, total))
}

// ListCategories 公开分类目录
func (h *Handler) ListCategories(c *gin.Context) {
	categories, err := h.CategoryService.ListPublic()
	if err != nil {
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}
	response.Success(c, categories)
}

// ListLocations 公开地点目录
func (h *Handler) ListLocations(c *gin.Context) {
	locations, err := h.LocationService.ListPublic()
	if err != nil {
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}
	response.Success(c, locations)
}

// ListCategoryPosts 分类页文章列表
func (h *Handler) ListCategoryPosts(c *gin.Context) {
	slug := c.Param("slug")
	page, pageSize := h.parsePageQuery(c)

	category, posts, total, err := h.PostService.ListByCategory(slug, page, pageSize)
	if err != nil {
		respondWithMappedError(c, err, []mappedHandlerError{
			{target: service.ErrNotFound, code: response.CodeNotFound, key: "error.category_not_found"},
		}, response.CodeInternal, "error.internal")
		return
	}

	response.SuccessWithPage(c, gin.H{
		"category": category,
		"posts":    posts,
	}, feedPagination(page, pageSize, total))
}

// GetPost 文章详情，作者可访问自己未公开的文章
func (h *Handler) GetPost(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	post, err := h.PostService.Get(id, viewerID(c))
	if err != nil {
		respondWithMappedError(c, err, commentReadErrorRules, response.CodeInternal, "error.internal")
		return
	}
	response.Success(c, post)
}

// PostRequest 创建/更新文章请求
type PostRequest struct {
	Title       string     `json:"title" binding:"required"`
	Text        string     `json:"text" binding:"required"`
	PubDate     *time.Time `json:"pub_date"`
	CategoryID  *uint      `json:"category_id"`
	LocationID  *uint      `json:"location_id"`
	Image       string     `json:"image"`
	IsPublished *bool      `json:"is_published"`
}

func (r PostRequest) toServiceInput() service.PostInput {
	return service.PostInput{
		Title:       r.Title,
		Text:        r.Text,
		PubDate:     r.PubDate,
		CategoryID:  r.CategoryID,
		LocationID:  r.LocationID,
		Image:       r.Image,
		IsPublished: r.IsPublished,
	}
}

// CreatePost 发表文章
func (h *Handler) CreatePost(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}

	var req PostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.invalid_params", err)
		return
	}

	post, err := h.PostService.Create(uid, req.toServiceInput())
	if err != nil {
		respondWithMappedError(c, err, []mappedHandlerError{
			{target: service.ErrNotFound, code: response.CodeBadRequest, key: "error.invalid_params"},
		}, response.CodeInternal, "error.internal")
		return
	}

	h.invalidateFeed(c)
	response.Success(c, post)
}

// UpdatePost 编辑文章，仅作者本人
func (h *Handler) UpdatePost(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req PostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.invalid_params", err)
		return
	}

	post, err := h.PostService.Update(id, uid, req.toServiceInput())
	if err != nil {
		respondPostMutationError(c, err)
		return
	}

	h.invalidateFeed(c)
	response.Success(c, post)
}

// DeletePost 删除文章，仅作者本人
func (h *Handler) DeletePost(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.PostService.Delete(id, uid); err != nil {
		respondPostMutationError(c, err)
		return
	}

	h.invalidateFeed(c)
	response.Success(c, gin.H{"deleted": true})
}

func (h *Handler) invalidateFeed(c *gin.Context) {
	if err := cache.InvalidateFeed(c.Request.Context()); err != nil {
		requestLog(c).Warnw("feed_cache_invalidate_failed", "error", err)
	}
}

func parseIDParam(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	value, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || value == 0 {
		respondError(c, response.CodeBadRequest, "error.invalid_params", nil)
		return 0, false
	}
	return uint(value), true
}
