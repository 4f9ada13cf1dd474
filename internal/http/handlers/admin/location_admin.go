package admin

import (
	"errors"
	"strconv"

	"github.com/blogium-next/internal/http/response"
	"github.com/blogium-next/internal/service"

	"github.com/gin-gonic/gin"
)

// LocationRequest 地点写入请求
type LocationRequest struct {
	Name        string `json:"name" binding:"required"`
	IsPublished *bool  `json:"is_published"`
}

// ListLocations 地点列表
func (h *Handler) ListLocations(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = normalizePagination(page, pageSize)

	locations, total, err := h.LocationService.ListAdmin(c.Query("search"), page, pageSize)
	if err != nil {
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}
	response.SuccessWithPage(c, locations, listPagination(page, pageSize, total))
}

// GetLocation 地点详情
func (h *Handler) GetLocation(c *gin.Context) {
	id, ok := parseAdminIDParam(c, "id")
	if !ok {
		return
	}

	location, err := h.LocationService.Get(id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(c, response.CodeNotFound, "error.location_not_found", nil)
			return
		}
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}
	response.Success(c, location)
}

// CreateLocation 创建地点
func (h *Handler) CreateLocation(c *gin.Context) {
	var req LocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.invalid_params", err)
		return
	}

	location, err := h.LocationService.Create(service.LocationInput{Name: req.Name, IsPublished: req.IsPublished})
	if err != nil {
		h.respondLocationWriteError(c, err)
		return
	}
	h.invalidateFeedCache(c)
	response.Success(c, location)
}

// UpdateLocation 更新地点
func (h *Handler) UpdateLocation(c *gin.Context) {
	id, ok := parseAdminIDParam(c, "id")
	if !ok {
		return
	}

	var req LocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.invalid_params", err)
		return
	}

	location, err := h.LocationService.Update(id, service.LocationInput{Name: req.Name, IsPublished: req.IsPublished})
	if err != nil {
		h.respondLocationWriteError(c, err)
		return
	}
	h.invalidateFeedCache(c)
	response.Success(c, location)
}

// DeleteLocation 删除地点
func (h *Handler) DeleteLocation(c *gin.Context) {
	id, ok := parseAdminIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.LocationService.Delete(id); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(c, response.CodeNotFound, "error.location_not_found", nil)
			return
		}
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}
	h.invalidateFeedCache(c)
	response.Success(c, nil)
}

func (h *Handler) respondLocationWriteError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		respondError(c, response.CodeNotFound, "error.location_not_found", nil)
	case errors.Is(err, service.ErrInvalidInput):
		respondError(c, response.CodeBadRequest, "error.invalid_params", nil)
	default:
		respondError(c, response.CodeInternal, "error.internal", err)
	}
}
