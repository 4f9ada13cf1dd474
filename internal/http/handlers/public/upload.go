package public

import (
	"github.com/blogium-next/internal/constants"
	"github.com/blogium-next/internal/http/response"

	"github.com/gin-gonic/gin"
)

// UploadFile 上传文章配图或头像，需登录
func (h *Handler) UploadFile(c *gin.Context) {
	if _, ok := getUserID(c); !ok {
		return
	}

	file, err := c.FormFile("file")
	if err != nil {
		respondError(c, response.CodeBadRequest, "error.invalid_params", err)
		return
	}

	scene := c.DefaultPostForm("scene", constants.UploadCategoryPostImage)
	path, err := h.UploadService.SaveFile(file, scene)
	if err != nil {
		respondErrorWithMsg(c, response.CodeBadRequest, err.Error(), nil)
		return
	}

	response.Success(c, gin.H{"path": path})
}
