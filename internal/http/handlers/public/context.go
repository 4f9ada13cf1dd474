package public

import (
	handlershared "github.com/blogium-next/internal/http/handlers/shared"

	"github.com/gin-gonic/gin"
)

func getUserID(c *gin.Context) (uint, bool) {
	return handlershared.GetContextUintWithKeys(c, "user_id", "error.user_id_invalid", "error.user_id_type_invalid")
}

// viewerID 可选登录态，匿名访问返回 0
func viewerID(c *gin.Context) uint {
	return handlershared.ViewerID(c)
}
