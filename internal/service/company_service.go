package service

import (
	"github.com/veltrachem-web/internal/logger"
	"github.com/veltrachem-web/internal/models"
	"github.com/veltrachem-web/internal/repository"
)

// CompanyService exposes the company profile and site-wide FAQs.
type CompanyService struct {
	repo repository.CompanyRepository
}

// NewCompanyService creates a company service.
func NewCompanyService(repo repository.CompanyRepository) *CompanyService {
	return &CompanyService{repo: repo}
}

// GetProfile returns the company profile, or nil when the table is
// empty or unreachable. Pages render without the profile block rather
// than failing.
func (s *CompanyService) GetProfile() *models.CompanyInformation {
	info, err := s.repo.GetProfile()
	if err != nil {
		logger.Warnw("company_profile_load_failed", "error", err)
		return nil
	}
	return info
}

// CompanyProfileInput is the admin payload for the profile.
type CompanyProfileInput struct {
	CompanyName     string
	About           string
	Address         string
	SalesEmail      string
	SalesPhone      string
	GeneralEmail    string
	GeneralPhone    string
	SocialLinks     map[string]interface{}
	Logo            string
	MetaTitle       string
	MetaDescription string
	MetaKeywords    string
}

// SaveProfile creates or updates the singleton profile row.
func (s *CompanyService) SaveProfile(input CompanyProfileInput) (*models.CompanyInformation, error) {
	info, err := s.repo.GetProfile()
	if err != nil {
		return nil, err
	}
	if info == nil {
		info = &models.CompanyInformation{}
	}

	info.CompanyName = input.CompanyName
	info.About = input.About
	info.Address = input.Address
	info.SalesEmail = input.SalesEmail
	info.SalesPhone = input.SalesPhone
	info.GeneralEmail = input.GeneralEmail
	info.GeneralPhone = input.GeneralPhone
	info.SocialLinks = models.JSON(input.SocialLinks)
	info.Logo = input.Logo
	info.MetaTitle = input.MetaTitle
	info.MetaDescription = input.MetaDescription
	info.MetaKeywords = input.MetaKeywords

	if err := s.repo.SaveProfile(info); err != nil {
		return nil, err
	}
	return info, nil
}

// ListFAQs returns site-wide FAQs, highest priority first.
func (s *CompanyService) ListFAQs() ([]models.CompanyFAQ, error) {
	return s.repo.ListFAQs()
}

// FAQInput is the admin payload for a site-wide FAQ.
type FAQInput struct {
	Question string
	Answer   string
	Priority int
}

// CreateFAQ creates a FAQ attached to the profile row.
func (s *CompanyService) CreateFAQ(input FAQInput) (*models.CompanyFAQ, error) {
	faq := models.CompanyFAQ{
		Question: input.Question,
		Answer:   input.Answer,
		Priority: input.Priority,
	}
	if profile, err := s.repo.GetProfile(); err == nil && profile != nil {
		faq.CompanyID = profile.ID
	}
	if err := s.repo.CreateFAQ(&faq); err != nil {
		return nil, err
	}
	return &faq, nil
}

// UpdateFAQ updates a FAQ.
func (s *CompanyService) UpdateFAQ(id string, input FAQInput) (*models.CompanyFAQ, error) {
	faq, err := s.repo.GetFAQByID(id)
	if err != nil {
		return nil, err
	}
	if faq == nil {
		return nil, ErrNotFound
	}

	faq.Question = input.Question
	faq.Answer = input.Answer
	faq.Priority = input.Priority
	if err := s.repo.UpdateFAQ(faq); err != nil {
		return nil, err
	}
	return faq, nil
}

// DeleteFAQ removes a FAQ.
func (s *CompanyService) DeleteFAQ(id string) error {
	faq, err := s.repo.GetFAQByID(id)
	if err != nil {
		return err
	}
	if faq == nil {
		return ErrNotFound
	}
	return s.repo.DeleteFAQ(id)
}
