package admin

import (
	"github.com/blogium-next/internal/constants"
	"github.com/blogium-next/internal/http/response"

	"github.com/gin-gonic/gin"
)

// UploadFile 后台文件上传
func (h *Handler) UploadFile(c *gin.Context) {
	if _, ok := getAdminID(c); !ok {
		return
	}

	file, err := c.FormFile("file")
	if err != nil {
		respondError(c, response.CodeBadRequest, "error.invalid_params", err)
		return
	}

	scene := c.DefaultPostForm("scene", constants.UploadCategoryCommon)
	path, err := h.UploadService.SaveFile(file, scene)
	if err != nil {
		respondErrorWithMsg(c, response.CodeBadRequest, err.Error(), err)
		return
	}
	response.Success(c, gin.H{"url": path})
}
