package repository

import (
	"errors"

	"github.com/veltrachem-web/internal/models"

	"gorm.io/gorm"
)

// CompanyRepository is the data access interface for the company
// profile singleton and the site-wide FAQs.
type CompanyRepository interface {
	GetProfile() (*models.CompanyInformation, error)
	SaveProfile(info *models.CompanyInformation) error
	ListFAQs() ([]models.CompanyFAQ, error)
	GetFAQByID(id string) (*models.CompanyFAQ, error)
	CreateFAQ(faq *models.CompanyFAQ) error
	UpdateFAQ(faq *models.CompanyFAQ) error
	DeleteFAQ(id string) error
}

// GormCompanyRepository is the GORM implementation.
type GormCompanyRepository struct {
	db *gorm.DB
}

// NewCompanyRepository creates a company repository.
func NewCompanyRepository(db *gorm.DB) *GormCompanyRepository {
	return &GormCompanyRepository{db: db}
}

// GetProfile returns the first profile row, or nil when none exists.
func (r *GormCompanyRepository) GetProfile() (*models.CompanyInformation, error) {
	var info models.CompanyInformation
	if err := r.db.Order("id ASC").First(&info).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &info, nil
}

// SaveProfile creates or updates the profile row.
func (r *GormCompanyRepository) SaveProfile(info *models.CompanyInformation) error {
	return r.db.Save(info).Error
}

// ListFAQs returns FAQs, highest priority first.
func (r *GormCompanyRepository) ListFAQs() ([]models.CompanyFAQ, error) {
	var faqs []models.CompanyFAQ
	if err := r.db.Order("priority DESC, id ASC").Find(&faqs).Error; err != nil {
		return nil, err
	}
	return faqs, nil
}

// GetFAQByID fetches a FAQ by primary key.
func (r *GormCompanyRepository) GetFAQByID(id string) (*models.CompanyFAQ, error) {
	var faq models.CompanyFAQ
	if err := r.db.First(&faq, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &faq, nil
}

// CreateFAQ inserts a FAQ.
func (r *GormCompanyRepository) CreateFAQ(faq *models.CompanyFAQ) error {
	return r.db.Create(faq).Error
}

// UpdateFAQ saves a FAQ.
func (r *GormCompanyRepository) UpdateFAQ(faq *models.CompanyFAQ) error {
	return r.db.Save(faq).Error
}

// DeleteFAQ removes a FAQ.
func (r *GormCompanyRepository) DeleteFAQ(id string) error {
	return r.db.Delete(&models.CompanyFAQ{}, "id = ?", id).Error
}
