package repository

import (
	"errors"
	"strings"

	"github.com/veltrachem-web/internal/models"

	"gorm.io/gorm"
)

// ProductRepository is the product data access interface.
type ProductRepository interface {
	List(filter ProductListFilter) ([]models.Product, int64, error)
	ListActive() ([]models.Product, error)
	ListRelated(categoryID, excludeID uint, limit int) ([]models.Product, error)
	GetBySlug(slug string) (*models.Product, error)
	GetByID(id string) (*models.Product, error)
	GetByName(name string) (*models.Product, error)
	Create(product *models.Product) error
	Update(product *models.Product) error
	Delete(id string) error
	CountBySlug(slug string, excludeID *string) (int64, error)
	ReplaceFAQs(productID uint, faqs []models.ProductFAQ) error
	ReplaceApplications(productID uint, apps []models.ProductApplication) error
	Transaction(fn func(tx *gorm.DB) error) error
	WithTx(tx *gorm.DB) ProductRepository
}

// GormProductRepository is the GORM implementation.
type GormProductRepository struct {
	db *gorm.DB
}

// NewProductRepository creates a product repository.
func NewProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

// WithTx binds the repository to a transaction.
func (r *GormProductRepository) WithTx(tx *gorm.DB) ProductRepository {
	if tx == nil {
		return r
	}
	return &GormProductRepository{db: tx}
}

// Transaction runs fn inside a transaction.
func (r *GormProductRepository) Transaction(fn func(tx *gorm.DB) error) error {
	if fn == nil {
		return nil
	}
	return r.db.Transaction(fn)
}

// List returns products in catalog order: priority descending, then
// name ascending.
func (r *GormProductRepository) List(filter ProductListFilter) ([]models.Product, int64, error) {
	var products []models.Product

	query := r.db.Model(&models.Product{})
	if filter.WithCategory {
		query = query.Preload("Category")
	}
	if filter.IsActive != nil {
		query = query.Where("is_active = ?", *filter.IsActive)
	}
	if filter.CategoryID != "" {
		query = query.Where("category_id = ?", filter.CategoryID)
	}
	if filter.CategorySlug != "" {
		query = query.Where(
			"category_id IN (SELECT id FROM product_categories WHERE slug = ?)",
			filter.CategorySlug,
		)
	}
	if search := strings.TrimSpace(filter.Search); search != "" {
		like := "%" + search + "%"
		query = query.Where("name LIKE ? OR slug LIKE ? OR cas_number LIKE ?", like, like, like)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = applyPagination(query, filter.Page, filter.PageSize)

	if err := query.Order("priority DESC, name ASC").Find(&products).Error; err != nil {
		return nil, 0, err
	}

	return products, total, nil
}

// ListActive returns active products in catalog order, used by the
// sitemap and the public catalog page.
func (r *GormProductRepository) ListActive() ([]models.Product, error) {
	var products []models.Product
	err := r.db.Where("is_active = ?", true).
		Order("priority DESC, name ASC").
		Find(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}

// ListRelated returns up to limit products sharing a category,
// excluding the product itself.
func (r *GormProductRepository) ListRelated(categoryID, excludeID uint, limit int) ([]models.Product, error) {
	if limit <= 0 {
		limit = 3
	}
	var products []models.Product
	err := r.db.Where("category_id = ? AND id <> ?", categoryID, excludeID).
		Limit(limit).
		Find(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}

// GetBySlug fetches a product with its category, FAQs, applications
// and blog posts. Inactive products are returned too.
func (r *GormProductRepository) GetBySlug(slug string) (*models.Product, error) {
	var product models.Product
	err := r.db.Preload("Category").
		Preload("FAQs").
		Preload("Applications").
		Preload("Blogs").
		Where("slug = ?", slug).
		First(&product).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &product, nil
}

// GetByID fetches a product by primary key.
func (r *GormProductRepository) GetByID(id string) (*models.Product, error) {
	var product models.Product
	err := r.db.Preload("Category").
		Preload("FAQs").
		Preload("Applications").
		First(&product, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &product, nil
}

// GetByName fetches a product by exact name, used by the fixed promo
// page lookup.
func (r *GormProductRepository) GetByName(name string) (*models.Product, error) {
	var product models.Product
	err := r.db.Preload("Category").
		Preload("FAQs").
		Preload("Applications").
		Preload("Blogs").
		Where("name = ?", name).
		First(&product).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &product, nil
}

// Create inserts a product.
func (r *GormProductRepository) Create(product *models.Product) error {
	return r.db.Create(product).Error
}

// Update saves a product.
func (r *GormProductRepository) Update(product *models.Product) error {
	return r.db.Save(product).Error
}

// Delete removes a product; FAQs, applications and blog posts cascade.
func (r *GormProductRepository) Delete(id string) error {
	return r.db.Delete(&models.Product{}, "id = ?", id).Error
}

// ReplaceFAQs swaps a product's FAQ rows atomically.
func (r *GormProductRepository) ReplaceFAQs(productID uint, faqs []models.ProductFAQ) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("product_id = ?", productID).Delete(&models.ProductFAQ{}).Error; err != nil {
			return err
		}
		if len(faqs) == 0 {
			return nil
		}
		for i := range faqs {
			faqs[i].ID = 0
			faqs[i].ProductID = productID
		}
		return tx.Create(&faqs).Error
	})
}

// ReplaceApplications swaps a product's application rows atomically.
func (r *GormProductRepository) ReplaceApplications(productID uint, apps []models.ProductApplication) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("product_id = ?", productID).Delete(&models.ProductApplication{}).Error; err != nil {
			return err
		}
		if len(apps) == 0 {
			return nil
		}
		for i := range apps {
			apps[i].ID = 0
			apps[i].ProductID = productID
		}
		return tx.Create(&apps).Error
	})
}

// CountBySlug counts products holding slug, optionally excluding one ID.
func (r *GormProductRepository) CountBySlug(slug string, excludeID *string) (int64, error) {
	query := r.db.Model(&models.Product{}).Where("slug = ?", slug)
	if excludeID != nil {
		query = query.Where("id <> ?", *excludeID)
	}
	var count int64
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
