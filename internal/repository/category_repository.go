package repository

import (
	"errors"

	"github.com/veltrachem-web/internal/models"

	"gorm.io/gorm"
)

// CategoryRepository is the product-category data access interface.
type CategoryRepository interface {
	List() ([]models.ProductCategory, error)
	ListWithProducts() ([]models.ProductCategory, error)
	GetByID(id string) (*models.ProductCategory, error)
	GetBySlug(slug string) (*models.ProductCategory, error)
	Create(category *models.ProductCategory) error
	Update(category *models.ProductCategory) error
	Delete(id string) error
	CountBySlug(slug string, excludeID *string) (int64, error)
	CountProducts(categoryID string) (int64, error)
}

// GormCategoryRepository is the GORM implementation.
type GormCategoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository creates a category repository.
func NewCategoryRepository(db *gorm.DB) *GormCategoryRepository {
	return &GormCategoryRepository{db: db}
}

// List returns all categories ordered by name.
func (r *GormCategoryRepository) List() ([]models.ProductCategory, error) {
	var categories []models.ProductCategory
	if err := r.db.Order("name ASC").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

// ListWithProducts returns all categories with their products preloaded
// in catalog order.
func (r *GormCategoryRepository) ListWithProducts() ([]models.ProductCategory, error) {
	var categories []models.ProductCategory
	err := r.db.
		Preload("Products", func(db *gorm.DB) *gorm.DB {
			return db.Order("priority DESC, name ASC")
		}).
		Order("name ASC").
		Find(&categories).Error
	if err != nil {
		return nil, err
	}
	return categories, nil
}

// GetByID fetches a category by primary key.
func (r *GormCategoryRepository) GetByID(id string) (*models.ProductCategory, error) {
	var category models.ProductCategory
	if err := r.db.First(&category, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &category, nil
}

// GetBySlug fetches a category by slug.
func (r *GormCategoryRepository) GetBySlug(slug string) (*models.ProductCategory, error) {
	var category models.ProductCategory
	if err := r.db.Where("slug = ?", slug).First(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &category, nil
}

// Create inserts a category.
func (r *GormCategoryRepository) Create(category *models.ProductCategory) error {
	return r.db.Create(category).Error
}

// Update saves a category.
func (r *GormCategoryRepository) Update(category *models.ProductCategory) error {
	return r.db.Save(category).Error
}

// Delete removes a category.
func (r *GormCategoryRepository) Delete(id string) error {
	return r.db.Delete(&models.ProductCategory{}, "id = ?", id).Error
}

// CountBySlug counts categories holding slug, optionally excluding one ID.
func (r *GormCategoryRepository) CountBySlug(slug string, excludeID *string) (int64, error) {
	query := r.db.Model(&models.ProductCategory{}).Where("slug = ?", slug)
	if excludeID != nil {
		query = query.Where("id <> ?", *excludeID)
	}
	var count int64
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CountProducts counts products attached to a category.
func (r *GormCategoryRepository) CountProducts(categoryID string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Product{}).
		Where("category_id = ?", categoryID).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}
