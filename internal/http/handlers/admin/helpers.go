package admin

import (
	"strconv"

	"github.com/veltrachem-web/internal/http/handlers/shared"
	"github.com/veltrachem-web/internal/http/response"

	"github.com/gin-gonic/gin"
)

func respondError(c *gin.Context, code int, msg string, err error) {
	shared.RespondError(c, code, msg, err)
}

// normalizePagination reads page/page_size from the query string and
// clamps them.
func normalizePagination(c *gin.Context) (int, int) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	return shared.NormalizePagination(page, pageSize)
}

func respondPage(c *gin.Context, data interface{}, total int64, page, pageSize int) {
	totalPage := (total + int64(pageSize) - 1) / int64(pageSize)
	response.SuccessWithPage(c, data, response.Pagination{
		Page:      page,
		PageSize:  pageSize,
		Total:     total,
		TotalPage: totalPage,
	})
}

// currentAdminID reads the authenticated admin id set by the JWT
// middleware.
func currentAdminID(c *gin.Context) (uint, bool) {
	value, exists := c.Get("admin_id")
	if !exists {
		respondError(c, response.CodeUnauthorized, "unauthorized", nil)
		return 0, false
	}
	id, ok := value.(uint)
	if !ok {
		respondError(c, response.CodeInternal, "invalid session state", nil)
		return 0, false
	}
	return id, true
}

// isSuperAdmin reads the superuser flag set by the JWT middleware.
func isSuperAdmin(c *gin.Context) bool {
	value, exists := c.Get("is_super")
	if !exists {
		return false
	}
	isSuper, ok := value.(bool)
	return ok && isSuper
}
