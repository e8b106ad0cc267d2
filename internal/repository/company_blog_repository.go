package repository

import (
	"errors"
	"strings"

	"github.com/veltrachem-web/internal/models"

	"gorm.io/gorm"
)

// CompanyBlogRepository is the company-blog data access interface.
type CompanyBlogRepository interface {
	List(filter BlogListFilter) ([]models.CompanyBlog, int64, error)
	ListPublished() ([]models.CompanyBlog, error)
	ListRelated(excludeID uint, limit int) ([]models.CompanyBlog, error)
	GetBySlug(slug string) (*models.CompanyBlog, error)
	GetByID(id string) (*models.CompanyBlog, error)
	Create(blog *models.CompanyBlog) error
	Update(blog *models.CompanyBlog) error
	Delete(id string) error
	CountBySlug(slug string, excludeID *string) (int64, error)
}

// GormCompanyBlogRepository is the GORM implementation.
type GormCompanyBlogRepository struct {
	db *gorm.DB
}

// NewCompanyBlogRepository creates a company-blog repository.
func NewCompanyBlogRepository(db *gorm.DB) *GormCompanyBlogRepository {
	return &GormCompanyBlogRepository{db: db}
}

// List returns company blog posts, newest first.
func (r *GormCompanyBlogRepository) List(filter BlogListFilter) ([]models.CompanyBlog, int64, error) {
	var blogs []models.CompanyBlog

	query := r.db.Model(&models.CompanyBlog{})
	if search := strings.TrimSpace(filter.Search); search != "" {
		like := "%" + search + "%"
		query = query.Where("title LIKE ? OR slug LIKE ?", like, like)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = applyPagination(query, filter.Page, filter.PageSize)

	if err := query.Order("published_at DESC").Find(&blogs).Error; err != nil {
		return nil, 0, err
	}
	return blogs, total, nil
}

// ListPublished returns every post, newest first, for feeds.
func (r *GormCompanyBlogRepository) ListPublished() ([]models.CompanyBlog, error) {
	var blogs []models.CompanyBlog
	if err := r.db.Order("published_at DESC").Find(&blogs).Error; err != nil {
		return nil, err
	}
	return blogs, nil
}

// ListRelated returns up to limit other posts, excluding one.
func (r *GormCompanyBlogRepository) ListRelated(excludeID uint, limit int) ([]models.CompanyBlog, error) {
	if limit <= 0 {
		limit = 3
	}
	var blogs []models.CompanyBlog
	if err := r.db.Where("id <> ?", excludeID).Limit(limit).Find(&blogs).Error; err != nil {
		return nil, err
	}
	return blogs, nil
}

// GetBySlug fetches a post by slug.
func (r *GormCompanyBlogRepository) GetBySlug(slug string) (*models.CompanyBlog, error) {
	var blog models.CompanyBlog
	if err := r.db.Where("slug = ?", slug).First(&blog).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &blog, nil
}

// GetByID fetches a post by primary key.
func (r *GormCompanyBlogRepository) GetByID(id string) (*models.CompanyBlog, error) {
	var blog models.CompanyBlog
	if err := r.db.First(&blog, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &blog, nil
}

// Create inserts a post.
func (r *GormCompanyBlogRepository) Create(blog *models.CompanyBlog) error {
	return r.db.Create(blog).Error
}

// Update saves a post.
func (r *GormCompanyBlogRepository) Update(blog *models.CompanyBlog) error {
	return r.db.Save(blog).Error
}

// Delete removes a post.
func (r *GormCompanyBlogRepository) Delete(id string) error {
	return r.db.Delete(&models.CompanyBlog{}, "id = ?", id).Error
}

// CountBySlug counts posts holding slug, optionally excluding one ID.
func (r *GormCompanyBlogRepository) CountBySlug(slug string, excludeID *string) (int64, error) {
	query := r.db.Model(&models.CompanyBlog{}).Where("slug = ?", slug)
	if excludeID != nil {
		query = query.Where("id <> ?", *excludeID)
	}
	var count int64
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
