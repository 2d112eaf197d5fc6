package admin

import (
	"github.com/glowderma/glowderma/internal/http/response"

	"github.com/gin-gonic/gin"
)

// GetCaptcha issues a login captcha challenge. When captchas are
// disabled the client gets an empty challenge and may log in without one.
func (h *Handler) GetCaptcha(c *gin.Context) {
	if !h.CaptchaService.Enabled() {
		response.Success(c, gin.H{"enabled": false})
		return
	}

	challenge, err := h.CaptchaService.Generate()
	if err != nil {
		respondError(c, response.CodeInternal, "captcha generation failed", err)
		return
	}
	response.Success(c, gin.H{
		"enabled":      true,
		"captcha_id":   challenge.CaptchaID,
		"image_base64": challenge.ImageBase64,
	})
}
