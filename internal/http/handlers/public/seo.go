package public

import (
	"net/http"

	"github.com/veltrachem-web/internal/http/handlers/shared"

	"github.com/gin-gonic/gin"
)

// Sitemap serves sitemap.xml.
func (h *Handler) Sitemap(c *gin.Context) {
	body, err := h.SitemapService.RenderSitemapXML()
	if err != nil {
		shared.RequestLog(c).Errorw("sitemap_render_failed", "error", err)
		c.Status(http.StatusInternalServerError)
		return
	}
	c.Data(http.StatusOK, "application/xml; charset=utf-8", body)
}

// Robots serves robots.txt.
func (h *Handler) Robots(c *gin.Context) {
	c.String(http.StatusOK, h.SitemapService.RenderRobotsTxt())
}
