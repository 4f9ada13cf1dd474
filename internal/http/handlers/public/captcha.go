package public

import (
	"errors"

	"github.com/blogium-next/internal/constants"
	"github.com/blogium-next/internal/http/response"
	"github.com/blogium-next/internal/service"

	"github.com/gin-gonic/gin"
)

// GetImageCaptcha 获取图片验证码挑战
func (h *Handler) GetImageCaptcha(c *gin.Context) {
	if h.CaptchaService == nil {
		respondError(c, response.CodeInternal, "error.internal", service.ErrCaptchaConfigInvalid)
		return
	}

	challenge, err := h.CaptchaService.GenerateImageChallenge()
	if err != nil {
		switch {
		case errors.Is(err, service.ErrCaptchaConfigInvalid):
			respondError(c, response.CodeBadRequest, "error.captcha_invalid", nil)
		default:
			respondError(c, response.CodeInternal, "error.internal", err)
		}
		return
	}

	response.Success(c, gin.H{
		"captcha_id":   challenge.CaptchaID,
		"image_base64": challenge.ImageBase64,
	})
}

// GetCaptchaConfig 公开验证码配置，前端据此决定是否拉取挑战
func (h *Handler) GetCaptchaConfig(c *gin.Context) {
	if h.CaptchaService == nil {
		response.Success(c, gin.H{"provider": "none"})
		return
	}
	response.Success(c, gin.H{
		"provider": h.CaptchaService.Provider(),
		"scenes": gin.H{
			"login":    h.CaptchaService.IsSceneEnabled(constants.CaptchaSceneLogin),
			"register": h.CaptchaService.IsSceneEnabled(constants.CaptchaSceneRegister),
		},
	})
}
