package admin

import (
	"errors"

	"github.com/veltrachem-web/internal/http/response"
	"github.com/veltrachem-web/internal/models"
	"github.com/veltrachem-web/internal/repository"
	"github.com/veltrachem-web/internal/service"

	"github.com/gin-gonic/gin"
)

// ListCategories returns all product categories.
func (h *Handler) ListCategories(c *gin.Context) {
	categories, err := h.CatalogService.ListCategories()
	if err != nil {
		respondError(c, response.CodeInternal, "failed to load categories", err)
		return
	}
	response.Success(c, categories)
}

// CategoryRequest is the category create/update payload.
type CategoryRequest struct {
	Name string `json:"name" binding:"required"`
	Slug string `json:"slug" binding:"required"`
	Icon string `json:"icon"`
}

func (r CategoryRequest) toInput() service.CategoryInput {
	return service.CategoryInput{
		Name: r.Name,
		Slug: r.Slug,
		Icon: r.Icon,
	}
}

// CreateCategory creates a product category.
func (h *Handler) CreateCategory(c *gin.Context) {
	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request", err)
		return
	}

	category, err := h.CatalogService.CreateCategory(req.toInput())
	if err != nil {
		if errors.Is(err, service.ErrSlugExists) {
			respondError(c, response.CodeBadRequest, "slug already in use", nil)
			return
		}
		respondError(c, response.CodeInternal, "failed to create category", err)
		return
	}
	response.Success(c, category)
}

// UpdateCategory updates a product category.
func (h *Handler) UpdateCategory(c *gin.Context) {
	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request", err)
		return
	}

	category, err := h.CatalogService.UpdateCategory(c.Param("id"), req.toInput())
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			respondError(c, response.CodeNotFound, "category not found", nil)
		case errors.Is(err, service.ErrSlugExists):
			respondError(c, response.CodeBadRequest, "slug already in use", nil)
		default:
			respondError(c, response.CodeInternal, "failed to update category", err)
		}
		return
	}
	response.Success(c, category)
}

// DeleteCategory removes a category that has no products.
func (h *Handler) DeleteCategory(c *gin.Context) {
	if err := h.CatalogService.DeleteCategory(c.Param("id")); err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			respondError(c, response.CodeNotFound, "category not found", nil)
		case errors.Is(err, service.ErrCategoryNotEmpty):
			respondError(c, response.CodeBadRequest, "category still has products", nil)
		default:
			respondError(c, response.CodeInternal, "failed to delete category", err)
		}
		return
	}
	response.SuccessWithMsg(c, "deleted", nil)
}

// ListProducts returns products for the backoffice with pagination.
func (h *Handler) ListProducts(c *gin.Context) {
	page, pageSize := normalizePagination(c)

	filter := repository.ProductListFilter{
		Page:         page,
		PageSize:     pageSize,
		Search:       c.Query("search"),
		CategorySlug: c.Query("category"),
		WithCategory: true,
	}
	if v := c.Query("is_active"); v != "" {
		active := v == "true" || v == "1"
		filter.IsActive = &active
	}

	products, total, err := h.CatalogService.ListProducts(filter)
	if err != nil {
		respondError(c, response.CodeInternal, "failed to load products", err)
		return
	}
	respondPage(c, products, total, page, pageSize)
}

// GetProduct returns one product for the edit form.
func (h *Handler) GetProduct(c *gin.Context) {
	product, err := h.CatalogService.GetProduct(c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(c, response.CodeNotFound, "product not found", nil)
			return
		}
		respondError(c, response.CodeInternal, "failed to load product", err)
		return
	}
	response.Success(c, product)
}

// ProductFAQItem is one FAQ row inside a product payload.
type ProductFAQItem struct {
	Question string `json:"question" binding:"required"`
	Answer   string `json:"answer" binding:"required"`
	Priority int    `json:"priority"`
}

// ProductApplicationItem is one application row inside a product payload.
type ProductApplicationItem struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Priority    int    `json:"priority"`
}

// ProductRequest is the product create/update payload.
type ProductRequest struct {
	Priority        int                      `json:"priority"`
	Name            string                   `json:"name" binding:"required"`
	Slug            string                   `json:"slug" binding:"required"`
	CategoryID      uint                     `json:"category_id" binding:"required"`
	ShortDesc       string                   `json:"short_desc"`
	DetailedDesc    string                   `json:"detailed_desc"`
	Purity          string                   `json:"purity"`
	Packaging       string                   `json:"packaging"`
	Application     string                   `json:"application"`
	Grade           string                   `json:"grade"`
	Form            string                   `json:"form"`
	CASNumber       string                   `json:"cas_number"`
	Formula         string                   `json:"formula"`
	Appearance      string                   `json:"appearance"`
	Assay           string                   `json:"assay"`
	MolecularWeight string                   `json:"molecular_weight"`
	Density         string                   `json:"density"`
	BoilingPoint    string                   `json:"boiling_point"`
	MeltingPoint    string                   `json:"melting_point"`
	Image           string                   `json:"image"`
	IconText        string                   `json:"icon_text"`
	Video           string                   `json:"video"`
	CoAPDF          string                   `json:"coa_pdf"`
	TDSPDF          string                   `json:"tds_pdf"`
	ISOCerts        []string                 `json:"iso_certifications"`
	MetaTitle       string                   `json:"meta_title"`
	MetaDescription string                   `json:"meta_description"`
	MetaKeywords    string                   `json:"meta_keywords"`
	IsActive        *bool                    `json:"is_active"`
	FAQs            []ProductFAQItem         `json:"faqs"`
	Applications    []ProductApplicationItem `json:"applications"`
}

func (r ProductRequest) toInput() service.ProductInput {
	input := service.ProductInput{
		Priority:        r.Priority,
		Name:            r.Name,
		Slug:            r.Slug,
		CategoryID:      r.CategoryID,
		ShortDesc:       r.ShortDesc,
		DetailedDesc:    r.DetailedDesc,
		Purity:          r.Purity,
		Packaging:       r.Packaging,
		Application:     r.Application,
		Grade:           r.Grade,
		Form:            r.Form,
		CASNumber:       r.CASNumber,
		Formula:         r.Formula,
		Appearance:      r.Appearance,
		Assay:           r.Assay,
		MolecularWeight: r.MolecularWeight,
		Density:         r.Density,
		BoilingPoint:    r.BoilingPoint,
		MeltingPoint:    r.MeltingPoint,
		Image:           r.Image,
		IconText:        r.IconText,
		Video:           r.Video,
		CoAPDF:          r.CoAPDF,
		TDSPDF:          r.TDSPDF,
		ISOCerts:        r.ISOCerts,
		MetaTitle:       r.MetaTitle,
		MetaDescription: r.MetaDescription,
		MetaKeywords:    r.MetaKeywords,
		IsActive:        r.IsActive,
	}
	for _, faq := range r.FAQs {
		input.FAQs = append(input.FAQs, models.ProductFAQ{
			Question: faq.Question,
			Answer:   faq.Answer,
			Priority: faq.Priority,
		})
	}
	for _, app := range r.Applications {
		input.Applications = append(input.Applications, models.ProductApplication{
			Title:       app.Title,
			Description: app.Description,
			Icon:        app.Icon,
			Priority:    app.Priority,
		})
	}
	return input
}

// CreateProduct creates a product with its FAQs and applications.
func (h *Handler) CreateProduct(c *gin.Context) {
	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request", err)
		return
	}

	product, err := h.CatalogService.CreateProduct(req.toInput())
	if err != nil {
		if errors.Is(err, service.ErrSlugExists) {
			respondError(c, response.CodeBadRequest, "slug already in use", nil)
			return
		}
		respondError(c, response.CodeInternal, "failed to create product", err)
		return
	}
	response.Success(c, product)
}

// UpdateProduct updates a product and rewrites its FAQ and application rows.
func (h *Handler) UpdateProduct(c *gin.Context) {
	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request", err)
		return
	}

	product, err := h.CatalogService.UpdateProduct(c.Param("id"), req.toInput())
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			respondError(c, response.CodeNotFound, "product not found", nil)
		case errors.Is(err, service.ErrSlugExists):
			respondError(c, response.CodeBadRequest, "slug already in use", nil)
		default:
			respondError(c, response.CodeInternal, "failed to update product", err)
		}
		return
	}
	response.Success(c, product)
}

// DeleteProduct removes a product and its dependent rows.
func (h *Handler) DeleteProduct(c *gin.Context) {
	if err := h.CatalogService.DeleteProduct(c.Param("id")); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(c, response.CodeNotFound, "product not found", nil)
			return
		}
		respondError(c, response.CodeInternal, "failed to delete product", err)
		return
	}
	response.SuccessWithMsg(c, "deleted", nil)
}
