package admin

import (
	"github.com/veltrachem-web/internal/http/response"

	"github.com/gin-gonic/gin"
)

// Upload stores an uploaded file and returns its public URL.
func (h *Handler) Upload(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		respondError(c, response.CodeBadRequest, "file is required", err)
		return
	}

	url, err := h.UploadService.SaveFile(c.Request.Context(), file, c.PostForm("scene"))
	if err != nil {
		respondError(c, response.CodeBadRequest, err.Error(), err)
		return
	}
	response.Success(c, gin.H{"url": url})
}
