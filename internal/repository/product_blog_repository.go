package repository

import (
	"errors"
	"strings"

	"github.com/veltrachem-web/internal/models"

	"gorm.io/gorm"
)

// ProductBlogRepository is the product-blog data access interface.
type ProductBlogRepository interface {
	List(filter BlogListFilter) ([]models.ProductBlog, int64, error)
	ListPublished() ([]models.ProductBlog, error)
	ListRelated(excludeID uint, limit int) ([]models.ProductBlog, error)
	GetBySlug(slug string) (*models.ProductBlog, error)
	GetByID(id string) (*models.ProductBlog, error)
	Create(blog *models.ProductBlog) error
	Update(blog *models.ProductBlog) error
	Delete(id string) error
	CountBySlug(slug string, excludeID *string) (int64, error)
}

// GormProductBlogRepository is the GORM implementation.
type GormProductBlogRepository struct {
	db *gorm.DB
}

// NewProductBlogRepository creates a product-blog repository.
func NewProductBlogRepository(db *gorm.DB) *GormProductBlogRepository {
	return &GormProductBlogRepository{db: db}
}

// List returns product blog posts, newest first.
func (r *GormProductBlogRepository) List(filter BlogListFilter) ([]models.ProductBlog, int64, error) {
	var blogs []models.ProductBlog

	query := r.db.Model(&models.ProductBlog{}).Preload("Product")
	if filter.ProductID != "" {
		query = query.Where("product_id = ?", filter.ProductID)
	}
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
func (r *GormProductBlogRepository) ListPublished() ([]models.ProductBlog, error) {
	var blogs []models.ProductBlog
	if err := r.db.Order("published_at DESC").Find(&blogs).Error; err != nil {
		return nil, err
	}
	return blogs, nil
}

// ListRelated returns up to limit other posts, excluding one.
func (r *GormProductBlogRepository) ListRelated(excludeID uint, limit int) ([]models.ProductBlog, error) {
	if limit <= 0 {
		limit = 3
	}
	var blogs []models.ProductBlog
	if err := r.db.Where("id <> ?", excludeID).Limit(limit).Find(&blogs).Error; err != nil {
		return nil, err
	}
	return blogs, nil
}

// GetBySlug fetches a post with its product.
func (r *GormProductBlogRepository) GetBySlug(slug string) (*models.ProductBlog, error) {
	var blog models.ProductBlog
	err := r.db.Preload("Product").Where("slug = ?", slug).First(&blog).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &blog, nil
}

// GetByID fetches a post by primary key.
func (r *GormProductBlogRepository) GetByID(id string) (*models.ProductBlog, error) {
	var blog models.ProductBlog
	if err := r.db.First(&blog, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &blog, nil
}

// Create inserts a post.
func (r *GormProductBlogRepository) Create(blog *models.ProductBlog) error {
	return r.db.Create(blog).Error
}

// Update saves a post.
func (r *GormProductBlogRepository) Update(blog *models.ProductBlog) error {
	return r.db.Save(blog).Error
}

// Delete removes a post.
func (r *GormProductBlogRepository) Delete(id string) error {
	return r.db.Delete(&models.ProductBlog{}, "id = ?", id).Error
}

// CountBySlug counts posts holding slug, optionally excluding one ID.
func (r *GormProductBlogRepository) CountBySlug(slug string, excludeID *string) (int64, error) {
	query := r.db.Model(&models.ProductBlog{}).Where("slug = ?", slug)
	if excludeID != nil {
		query = query.Where("id <> ?", *excludeID)
	}
	var count int64
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
