package admin

import (
	"errors"

	"github.com/veltrachem-web/internal/http/response"
	"github.com/veltrachem-web/internal/repository"
	"github.com/veltrachem-web/internal/service"

	"github.com/gin-gonic/gin"
)

// ListDownloadEmails returns captured download emails, newest first.
func (h *Handler) ListDownloadEmails(c *gin.Context) {
	page, pageSize := normalizePagination(c)

	entries, total, err := h.DownloadService.List(repository.DownloadEmailListFilter{
		Page:     page,
		PageSize: pageSize,
		Search:   c.Query("search"),
	})
	if err != nil {
		respondError(c, response.CodeInternal, "failed to load download emails", err)
		return
	}
	respondPage(c, entries, total, page, pageSize)
}

// DeleteDownloadEmail removes a captured email. Superusers only.
func (h *Handler) DeleteDownloadEmail(c *gin.Context) {
	if !isSuperAdmin(c) {
		respondError(c, response.CodeForbidden, "permission denied", nil)
		return
	}

	if err := h.DownloadService.Delete(c.Param("id")); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(c, response.CodeNotFound, "entry not found", nil)
			return
		}
		respondError(c, response.CodeInternal, "failed to delete entry", err)
		return
	}
	response.SuccessWithMsg(c, "deleted", nil)
}
