package admin

import (
	"errors"

	"github.com/veltrachem-web/internal/http/response"
	"github.com/veltrachem-web/internal/service"

	"github.com/gin-gonic/gin"
)

// GetCompanyProfile returns the company profile for the backoffice form.
func (h *Handler) GetCompanyProfile(c *gin.Context) {
	response.Success(c, h.CompanyService.GetProfile())
}

// CompanyProfileRequest is the profile save payload.
type CompanyProfileRequest struct {
	CompanyName     string                 `json:"company_name" binding:"required"`
	About           string                 `json:"about"`
	Address         string                 `json:"address"`
	SalesEmail      string                 `json:"sales_email"`
	SalesPhone      string                 `json:"sales_phone"`
	GeneralEmail    string                 `json:"general_email"`
	GeneralPhone    string                 `json:"general_phone"`
	SocialLinks     map[string]interface{} `json:"social_links"`
	Logo            string                 `json:"logo"`
	MetaTitle       string                 `json:"meta_title"`
	MetaDescription string                 `json:"meta_description"`
	MetaKeywords    string                 `json:"meta_keywords"`
}

// SaveCompanyProfile creates or replaces the singleton profile row.
func (h *Handler) SaveCompanyProfile(c *gin.Context) {
	var req CompanyProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request", err)
		return
	}

	info, err := h.CompanyService.SaveProfile(service.CompanyProfileInput{
		CompanyName:     req.CompanyName,
		About:           req.About,
		Address:         req.Address,
		SalesEmail:      req.SalesEmail,
		SalesPhone:      req.SalesPhone,
		GeneralEmail:    req.GeneralEmail,
		GeneralPhone:    req.GeneralPhone,
		SocialLinks:     req.SocialLinks,
		Logo:            req.Logo,
		MetaTitle:       req.MetaTitle,
		MetaDescription: req.MetaDescription,
		MetaKeywords:    req.MetaKeywords,
	})
	if err != nil {
		respondError(c, response.CodeInternal, "failed to save profile", err)
		return
	}
	response.Success(c, info)
}

// ListCompanyFAQs returns site-wide FAQs, highest priority first.
func (h *Handler) ListCompanyFAQs(c *gin.Context) {
	faqs, err := h.CompanyService.ListFAQs()
	if err != nil {
		respondError(c, response.CodeInternal, "failed to load faqs", err)
		return
	}
	response.Success(c, faqs)
}

// FAQRequest is the FAQ create/update payload.
type FAQRequest struct {
	Question string `json:"question" binding:"required"`
	Answer   string `json:"answer" binding:"required"`
	Priority int    `json:"priority"`
}

// CreateCompanyFAQ creates a site-wide FAQ.
func (h *Handler) CreateCompanyFAQ(c *gin.Context) {
	var req FAQRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request", err)
		return
	}

	faq, err := h.CompanyService.CreateFAQ(service.FAQInput{
		Question: req.Question,
		Answer:   req.Answer,
		Priority: req.Priority,
	})
	if err != nil {
		respondError(c, response.CodeInternal, "failed to create faq", err)
		return
	}
	response.Success(c, faq)
}

// UpdateCompanyFAQ updates a site-wide FAQ.
func (h *Handler) UpdateCompanyFAQ(c *gin.Context) {
	var req FAQRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request", err)
		return
	}

	faq, err := h.CompanyService.UpdateFAQ(c.Param("id"), service.FAQInput{
		Question: req.Question,
		Answer:   req.Answer,
		Priority: req.Priority,
	})
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(c, response.CodeNotFound, "faq not found", nil)
			return
		}
		respondError(c, response.CodeInternal, "failed to update faq", err)
		return
	}
	response.Success(c, faq)
}

// DeleteCompanyFAQ removes a site-wide FAQ.
func (h *Handler) DeleteCompanyFAQ(c *gin.Context) {
	if err := h.CompanyService.DeleteFAQ(c.Param("id")); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(c, response.CodeNotFound, "faq not found", nil)
			return
		}
		respondError(c, response.CodeInternal, "failed to delete faq", err)
		return
	}
	response.SuccessWithMsg(c, "deleted", nil)
}
