package admin

import (
	"errors"
	"time"

	"github.com/veltrachem-web/internal/http/response"
	"github.com/veltrachem-web/internal/repository"
	"github.com/veltrachem-web/internal/service"

	"github.com/gin-gonic/gin"
)

// ListContacts returns contact requests, newest first, with filters.
func (h *Handler) ListContacts(c *gin.Context) {
	page, pageSize := normalizePagination(c)

	filter := repository.ContactListFilter{
		Page:     page,
		PageSize: pageSize,
		Search:   c.Query("search"),
	}
	if v := c.Query("is_read"); v != "" {
		read := v == "true" || v == "1"
		filter.IsRead = &read
	}
	if v := c.Query("created_from"); v != "" {
		if t, err := time.Parse("2006-01-02", v); err == nil {
			filter.CreatedFrom = &t
		}
	}
	if v := c.Query("created_to"); v != "" {
		if t, err := time.Parse("2006-01-02", v); err == nil {
			end := t.Add(24*time.Hour - time.Nanosecond)
			filter.CreatedTo = &end
		}
	}

	contacts, total, err := h.ContactService.List(filter)
	if err != nil {
		respondError(c, response.CodeInternal, "failed to load contacts", err)
		return
	}
	respondPage(c, contacts, total, page, pageSize)
}

// GetContact returns one contact request.
func (h *Handler) GetContact(c *gin.Context) {
	contact, err := h.ContactService.Get(c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(c, response.CodeNotFound, "contact not found", nil)
			return
		}
		respondError(c, response.CodeInternal, "failed to load contact", err)
		return
	}
	response.Success(c, contact)
}

// ContactBulkRequest carries the ids for a bulk read-state change.
type ContactBulkRequest struct {
	IDs []uint `json:"ids" binding:"required,min=1"`
}

// MarkContactsRead flags the given contacts as read.
func (h *Handler) MarkContactsRead(c *gin.Context) {
	h.setContactsRead(c, true)
}

// MarkContactsUnread flags the given contacts as unread.
func (h *Handler) MarkContactsUnread(c *gin.Context) {
	h.setContactsRead(c, false)
}

func (h *Handler) setContactsRead(c *gin.Context, read bool) {
	var req ContactBulkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request", err)
		return
	}

	var (
		updated int64
		err     error
	)
	if read {
		updated, err = h.ContactService.MarkRead(req.IDs)
	} else {
		updated, err = h.ContactService.MarkUnread(req.IDs)
	}
	if err != nil {
		respondError(c, response.CodeInternal, "failed to update contacts", err)
		return
	}
	response.Success(c, gin.H{"updated": updated})
}

// DeleteContact removes a contact request.
func (h *Handler) DeleteContact(c *gin.Context) {
	if err := h.ContactService.Delete(c.Param("id")); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(c, response.CodeNotFound, "contact not found", nil)
			return
		}
		respondError(c, response.CodeInternal, "failed to delete contact", err)
		return
	}
	response.SuccessWithMsg(c, "deleted", nil)
}

// UnreadContactCount returns the unread badge count.
func (h *Handler) UnreadContactCount(c *gin.Context) {
	count, err := h.ContactService.CountUnread()
	if err != nil {
		respondError(c, response.CodeInternal, "failed to count contacts", err)
		return
	}
	response.Success(c, gin.H{"unread": count})
}
