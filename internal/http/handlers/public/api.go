package public

import (
	"strconv"
	"time"

	"github.com/veltrachem-web/internal/cache"
	"github.com/veltrachem-web/internal/http/handlers/shared"
	"github.com/veltrachem-web/internal/http/response"
	"github.com/veltrachem-web/internal/models"
	"github.com/veltrachem-web/internal/repository"
	"github.com/veltrachem-web/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	categoryCacheKey = "public:categories"
	categoryCacheTTL = 60 * time.Second
)

// APICategories returns all categories as JSON.
func (h *Handler) APICategories(c *gin.Context) {
	var cached []models.ProductCategory
	if hit, err := cache.GetJSON(c.Request.Context(), categoryCacheKey, &cached); err == nil && hit {
		response.Success(c, cached)
		return
	}

	categories, err := h.CatalogService.ListCategories()
	if err != nil {
		shared.RespondError(c, response.CodeInternal, "failed to load categories", err)
		return
	}
	_ = cache.SetJSON(c.Request.Context(), categoryCacheKey, categories, categoryCacheTTL)
	response.Success(c, categories)
}

// APIProducts returns the product listing as JSON.
func (h *Handler) APIProducts(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = shared.NormalizePagination(page, pageSize)

	products, total, err := h.CatalogService.ListProducts(repository.ProductListFilter{
		Page:         page,
		PageSize:     pageSize,
		CategorySlug: c.Query("category"),
		Search:       c.Query("search"),
	})
	if err != nil {
		shared.RespondError(c, response.CodeInternal, "failed to load products", err)
		return
	}

	totalPage := (total + int64(pageSize) - 1) / int64(pageSize)
	response.SuccessWithPage(c, products, response.Pagination{
		Page:      page,
		PageSize:  pageSize,
		Total:     total,
		TotalPage: totalPage,
	})
}

// APIProductDetail returns one product with its related products.
func (h *Handler) APIProductDetail(c *gin.Context) {
	detail, err := h.CatalogService.GetProductBySlug(c.Param("slug"))
	if err == service.ErrNotFound {
		response.NotFound(c, "product not found")
		return
	}
	if err != nil {
		shared.RespondError(c, response.CodeInternal, "failed to load product", err)
		return
	}
	response.Success(c, gin.H{
		"product": detail.Product,
		"specs":   detail.Product.Specs(),
		"related": detail.Related,
	})
}

// APICompanyBlogs returns the company blog list as JSON.
func (h *Handler) APICompanyBlogs(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = shared.NormalizePagination(page, pageSize)

	blogs, total, err := h.BlogService.ListCompanyBlogs(repository.BlogListFilter{
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		shared.RespondError(c, response.CodeInternal, "failed to load blogs", err)
		return
	}

	totalPage := (total + int64(pageSize) - 1) / int64(pageSize)
	response.SuccessWithPage(c, blogs, response.Pagination{
		Page:      page,
		PageSize:  pageSize,
		Total:     total,
		TotalPage: totalPage,
	})
}

// APIProductBlogs returns the product blog list as JSON.
func (h *Handler) APIProductBlogs(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = shared.NormalizePagination(page, pageSize)

	blogs, total, err := h.BlogService.ListProductBlogs(repository.BlogListFilter{
		Page:      page,
		PageSize:  pageSize,
		ProductID: c.Query("product_id"),
	})
	if err != nil {
		shared.RespondError(c, response.CodeInternal, "failed to load blogs", err)
		return
	}

	totalPage := (total + int64(pageSize) - 1) / int64(pageSize)
	response.SuccessWithPage(c, blogs, response.Pagination{
		Page:      page,
		PageSize:  pageSize,
		Total:     total,
		TotalPage: totalPage,
	})
}
