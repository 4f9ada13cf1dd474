package public

import (
	"errors"

	"github.com/blogium-next/internal/http/response"
	"github.com/blogium-next/internal/service"

	"github.com/gin-gonic/gin"
)

// mappedHandlerError 定义业务错误到接口错误响应的映射关系。
type mappedHandlerError struct {
	target error
	code   int
	key    string
}

func respondWithMappedError(c *gin.Context, err error, rules []mappedHandlerError, fallbackCode int, fallbackKey string) {
	for _, rule := range rules {
		if errors.Is(err, rule.target) {
			respondError(c, rule.code, rule.key, nil)
			return
		}
	}
	respondError(c, fallbackCode, fallbackKey, err)
}

// 文章写操作的非作者访问按不存在处理，不暴露文章是否真实存在
var postMutationErrorRules = []mappedHandlerError{
	{target: service.ErrForbidden, code: response.CodeNotFound, key: "error.post_not_found"},
	{target: service.ErrNotFound, code: response.CodeNotFound, key: "error.post_not_found"},
	{target: service.ErrInvalidInput, code: response.CodeBadRequest, key: "error.invalid_params"},
}

var commentReadErrorRules = []mappedHandlerError{
	{target: service.ErrNotFound, code: response.CodeNotFound, key: "error.post_not_found"},
}

func respondPostMutationError(c *gin.Context, err error) {
	respondWithMappedError(c, err, postMutationErrorRules, response.CodeInternal, "error.internal")
}
