package admin

import (
	"errors"
	"strconv"
	"time"

	"github.com/veltrachem-web/internal/http/response"
	"github.com/veltrachem-web/internal/repository"
	"github.com/veltrachem-web/internal/service"

	"github.com/gin-gonic/gin"
)

// BlogRequest is the create/update payload for either blog type.
type BlogRequest struct {
	Title           string     `json:"title" binding:"required"`
	Slug            string     `json:"slug" binding:"required"`
	Content         string     `json:"content" binding:"required"`
	Author          string     `json:"author"`
	ProductID       uint       `json:"product_id"`
	CompanyID       uint       `json:"company_id"`
	MetaTitle       string     `json:"meta_title"`
	MetaDescription string     `json:"meta_description"`
	MetaKeywords    string     `json:"meta_keywords"`
	PublishedAt     *time.Time `json:"published_at"`
}

func (r BlogRequest) toInput() service.BlogInput {
	return service.BlogInput{
		Title:           r.Title,
		Slug:            r.Slug,
		Content:         r.Content,
		Author:          r.Author,
		ProductID:       r.ProductID,
		CompanyID:       r.CompanyID,
		MetaTitle:       r.MetaTitle,
		MetaDescription: r.MetaDescription,
		MetaKeywords:    r.MetaKeywords,
		PublishedAt:     r.PublishedAt,
	}
}

func respondBlogError(c *gin.Context, err error, action string) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		respondError(c, response.CodeNotFound, "blog not found", nil)
	case errors.Is(err, service.ErrSlugExists):
		respondError(c, response.CodeBadRequest, "slug already in use", nil)
	default:
		respondError(c, response.CodeInternal, "failed to "+action+" blog", err)
	}
}

// ListProductBlogs returns product blog posts with pagination.
func (h *Handler) ListProductBlogs(c *gin.Context) {
	page, pageSize := normalizePagination(c)

	filter := repository.BlogListFilter{
		Page:     page,
		PageSize: pageSize,
		Search:   c.Query("search"),
	}
	if v := c.Query("product_id"); v != "" {
		if _, err := strconv.ParseUint(v, 10, 64); err == nil {
			filter.ProductID = v
		}
	}

	blogs, total, err := h.BlogService.ListProductBlogs(filter)
	if err != nil {
		respondError(c, response.CodeInternal, "failed to load blogs", err)
		return
	}
	respondPage(c, blogs, total, page, pageSize)
}

// CreateProductBlog creates a product blog post.
func (h *Handler) CreateProductBlog(c *gin.Context) {
	var req BlogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request", err)
		return
	}

	blog, err := h.BlogService.CreateProductBlog(req.toInput())
	if err != nil {
		respondBlogError(c, err, "create")
		return
	}
	response.Success(c, blog)
}

// UpdateProductBlog updates a product blog post.
func (h *Handler) UpdateProductBlog(c *gin.Context) {
	var req BlogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request", err)
		return
	}

	blog, err := h.BlogService.UpdateProductBlog(c.Param("id"), req.toInput())
	if err != nil {
		respondBlogError(c, err, "update")
		return
	}
	response.Success(c, blog)
}

// DeleteProductBlog removes a product blog post.
func (h *Handler) DeleteProductBlog(c *gin.Context) {
	if err := h.BlogService.DeleteProductBlog(c.Param("id")); err != nil {
		respondBlogError(c, err, "delete")
		return
	}
	response.SuccessWithMsg(c, "deleted", nil)
}

// ListCompanyBlogs returns company blog posts with pagination.
func (h *Handler) ListCompanyBlogs(c *gin.Context) {
	page, pageSize := normalizePagination(c)

	filter := repository.BlogListFilter{
		Page:     page,
		PageSize: pageSize,
		Search:   c.Query("search"),
	}

	blogs, total, err := h.BlogService.ListCompanyBlogs(filter)
	if err != nil {
		respondError(c, response.CodeInternal, "failed to load blogs", err)
		return
	}
	respondPage(c, blogs, total, page, pageSize)
}

// CreateCompanyBlog creates a company blog post.
func (h *Handler) CreateCompanyBlog(c *gin.Context) {
	var req BlogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request", err)
		return
	}

	blog, err := h.BlogService.CreateCompanyBlog(req.toInput())
	if err != nil {
		respondBlogError(c, err, "create")
		return
	}
	response.Success(c, blog)
}

// UpdateCompanyBlog updates a company blog post.
func (h *Handler) UpdateCompanyBlog(c *gin.Context) {
	var req BlogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request", err)
		return
	}

	blog, err := h.BlogService.UpdateCompanyBlog(c.Param("id"), req.toInput())
	if err != nil {
		respondBlogError(c, err, "update")
		return
	}
	response.Success(c, blog)
}

// DeleteCompanyBlog removes a company blog post.
func (h *Handler) DeleteCompanyBlog(c *gin.Context) {
	if err := h.BlogService.DeleteCompanyBlog(c.Param("id")); err != nil {
		respondBlogError(c, err, "delete")
		return
	}
	response.SuccessWithMsg(c, "deleted", nil)
}
