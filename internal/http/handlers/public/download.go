package public

import (
	"net/http"

	"github.com/veltrachem-web/internal/http/handlers/shared"
	"github.com/veltrachem-web/internal/http/response"
	"github.com/veltrachem-web/internal/service"

	"github.com/gin-gonic/gin"
)

type saveEmailRequest struct {
	Email   string `json:"email"`
	FileURL string `json:"file_url"`
}

// SaveEmail captures the visitor's email before a gated document
// download.
func (h *Handler) SaveEmail(c *gin.Context) {
	var req saveEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.FormError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	_, err := h.DownloadService.Record(req.Email, req.FileURL, c.Request.UserAgent())
	if err == service.ErrEmailRequired {
		response.FormError(c, http.StatusBadRequest, "Email is required")
		return
	}
	if err != nil {
		shared.RequestLog(c).Errorw("save_email_failed", "error", err)
		// Historical behavior: the raw error string goes to the client.
		response.FormError(c, http.StatusInternalServerError, err.Error())
		return
	}

	response.FormSuccess(c, "Email saved successfully")
}
