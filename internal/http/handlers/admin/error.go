package admin

import (
	"github.com/blogium-next/internal/cache"
	handlershared "github.com/blogium-next/internal/http/handlers/shared"
	"github.com/blogium-next/internal/http/response"
	"github.com/blogium-next/internal/repository"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func requestLog(c *gin.Context) *zap.SugaredLogger {
	return handlershared.RequestLog(c)
}

func respondError(c *gin.Context, code int, key string, err error) {
	handlershared.RespondError(c, code, key, err)
}

func respondErrorWithMsg(c *gin.Context, code int, msg string, err error) {
	handlershared.RespondErrorWithMsg(c, code, msg, err)
}

func normalizePagination(page, pageSize int) (int, int) {
	return handlershared.NormalizePagination(page, pageSize)
}

// listPagination 回显实际生效的页码，与仓储层的偏移收敛保持一致
func listPagination(page, pageSize int, total int64) response.Pagination {
	return response.Pagination{
		Page:      repository.ClampPage(page, total, pageSize),
		PageSize:  pageSize,
		Total:     total,
		TotalPage: repository.TotalPages(total, pageSize),
	}
}

// invalidateFeedCache 后台内容变更后清理首页缓存，失败仅记日志
func (h *Handler) invalidateFeedCache(c *gin.Context) {
	if err := cache.InvalidateFeed(c.Request.Context()); err != nil {
		requestLog(c).Warnw("feed_cache_invalidate_failed", "error", err)
	}
}
