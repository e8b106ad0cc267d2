package service

import (
	"github.com/veltrachem-web/internal/constants"
	"github.com/veltrachem-web/internal/models"
	"github.com/veltrachem-web/internal/repository"
)

const relatedProductLimit = 3

// CatalogService exposes the product catalog: public read queries and
// the admin CRUD behind them.
type CatalogService struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
}

// NewCatalogService creates a catalog service.
func NewCatalogService(productRepo repository.ProductRepository, categoryRepo repository.CategoryRepository) *CatalogService {
	return &CatalogService{productRepo: productRepo, categoryRepo: categoryRepo}
}

// ListCategories returns all categories.
func (s *CatalogService) ListCategories() ([]models.ProductCategory, error) {
	return s.categoryRepo.List()
}

// ListCategoriesWithProducts returns categories with their products in
// catalog order, for the grouped catalog page.
func (s *CatalogService) ListCategoriesWithProducts() ([]models.ProductCategory, error) {
	return s.categoryRepo.ListWithProducts()
}

// ListProducts returns products joined with their category. The
// catalog listing shows inactive products too; only the sitemap
// filters them out.
func (s *CatalogService) ListProducts(filter repository.ProductListFilter) ([]models.Product, int64, error) {
	filter.WithCategory = true
	return s.productRepo.List(filter)
}

// ProductDetail bundles a product with its related products.
type ProductDetail struct {
	Product *models.Product
	Related []models.Product
}

// GetProductBySlug assembles the product detail page: the product with
// its FAQs, applications and blog posts, plus up to 3 products from
// the same category.
func (s *CatalogService) GetProductBySlug(slug string) (*ProductDetail, error) {
	product, err := s.productRepo.GetBySlug(slug)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrNotFound
	}

	related, err := s.productRepo.ListRelated(product.CategoryID, product.ID, relatedProductLimit)
	if err != nil {
		return nil, err
	}
	return &ProductDetail{Product: product, Related: related}, nil
}

// NamedProductResult is the degraded-but-renderable payload of the
// fixed promo page lookup.
type NamedProductResult struct {
	Product *models.Product
	Image   string
	Missing bool
}

// GetNamedProduct looks a product up by exact name. An absent product
// never errors; the page renders with a placeholder image instead.
func (s *CatalogService) GetNamedProduct(name string) *NamedProductResult {
	product, err := s.productRepo.GetByName(name)
	if err != nil || product == nil {
		return &NamedProductResult{
			Image:   constants.PlaceholderProductImage,
			Missing: true,
		}
	}
	image := product.Image
	if image == "" {
		image = constants.PlaceholderProductImage
	}
	return &NamedProductResult{Product: product, Image: image}
}

// ListActiveProducts returns active products for the sitemap.
func (s *CatalogService) ListActiveProducts() ([]models.Product, error) {
	return s.productRepo.ListActive()
}

// ProductInput is the admin create/update payload for a product.
type ProductInput struct {
	Priority        int
	Name            string
	Slug            string
	CategoryID      uint
	ShortDesc       string
	DetailedDesc    string
	Purity          string
	Packaging       string
	Application     string
	Grade           string
	Form            string
	CASNumber       string
	Formula         string
	Appearance      string
	Assay           string
	MolecularWeight string
	Density         string
	BoilingPoint    string
	MeltingPoint    string
	Image           string
	IconText        string
	Video           string
	CoAPDF          string
	TDSPDF          string
	ISOCerts        []string
	MetaTitle       string
	MetaDescription string
	MetaKeywords    string
	IsActive        *bool
	FAQs            []models.ProductFAQ
	Applications    []models.ProductApplication
}

func (in ProductInput) apply(product *models.Product) {
	product.Priority = in.Priority
	product.Name = in.Name
	product.Slug = in.Slug
	product.CategoryID = in.CategoryID
	product.ShortDesc = in.ShortDesc
	product.DetailedDesc = in.DetailedDesc
	product.Purity = in.Purity
	product.Packaging = in.Packaging
	product.Application = in.Application
	product.Grade = in.Grade
	product.Form = in.Form
	product.CASNumber = in.CASNumber
	product.Formula = in.Formula
	product.Appearance = in.Appearance
	product.Assay = in.Assay
	product.MolecularWeight = in.MolecularWeight
	product.Density = in.Density
	product.BoilingPoint = in.BoilingPoint
	product.MeltingPoint = in.MeltingPoint
	product.Image = in.Image
	product.IconText = in.IconText
	product.Video = in.Video
	product.CoAPDF = in.CoAPDF
	product.TDSPDF = in.TDSPDF
	product.ISOCertifications = models.StringArray(in.ISOCerts)
	product.MetaTitle = in.MetaTitle
	product.MetaDescription = in.MetaDescription
	product.MetaKeywords = in.MetaKeywords
	if in.IsActive != nil {
		product.IsActive = *in.IsActive
	}
}

// CreateProduct creates a product with its FAQ and application rows.
func (s *CatalogService) CreateProduct(input ProductInput) (*models.Product, error) {
	count, err := s.productRepo.CountBySlug(input.Slug, nil)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrSlugExists
	}

	var product models.Product
	product.IsActive = true
	input.apply(&product)
	product.FAQs = input.FAQs
	product.Applications = input.Applications

	if err := s.productRepo.Create(&product); err != nil {
		return nil, err
	}
	return &product, nil
}

// UpdateProduct updates a product, replacing its FAQ and application
// rows with the submitted sets.
func (s *CatalogService) UpdateProduct(id string, input ProductInput) (*models.Product, error) {
	product, err := s.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrNotFound
	}

	count, err := s.productRepo.CountBySlug(input.Slug, &id)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrSlugExists
	}

	input.apply(product)
	product.FAQs = nil
	product.Applications = nil
	if err := s.productRepo.Update(product); err != nil {
		return nil, err
	}
	if err := s.productRepo.ReplaceFAQs(product.ID, input.FAQs); err != nil {
		return nil, err
	}
	if err := s.productRepo.ReplaceApplications(product.ID, input.Applications); err != nil {
		return nil, err
	}
	return product, nil
}

// DeleteProduct removes a product.
func (s *CatalogService) DeleteProduct(id string) error {
	product, err := s.productRepo.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return ErrNotFound
	}
	return s.productRepo.Delete(id)
}

// GetProduct fetches a product for the admin edit form.
func (s *CatalogService) GetProduct(id string) (*models.Product, error) {
	product, err := s.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrNotFound
	}
	return product, nil
}

// CategoryInput is the admin create/update payload for a category.
type CategoryInput struct {
	Name string
	Slug string
	Icon string
}

// CreateCategory creates a category.
func (s *CatalogService) CreateCategory(input CategoryInput) (*models.ProductCategory, error) {
	count, err := s.categoryRepo.CountBySlug(input.Slug, nil)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrSlugExists
	}

	category := models.ProductCategory{
		Name: input.Name,
		Slug: input.Slug,
		Icon: input.Icon,
	}
	if err := s.categoryRepo.Create(&category); err != nil {
		return nil, err
	}
	return &category, nil
}

// UpdateCategory updates a category.
func (s *CatalogService) UpdateCategory(id string, input CategoryInput) (*models.ProductCategory, error) {
	category, err := s.categoryRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, ErrNotFound
	}

	count, err := s.categoryRepo.CountBySlug(input.Slug, &id)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrSlugExists
	}

	category.Name = input.Name
	category.Slug = input.Slug
	category.Icon = input.Icon
	if err := s.categoryRepo.Update(category); err != nil {
		return nil, err
	}
	return category, nil
}

// DeleteCategory removes an empty category.
func (s *CatalogService) DeleteCategory(id string) error {
	category, err := s.categoryRepo.GetByID(id)
	if err != nil {
		return err
	}
	if category == nil {
		return ErrNotFound
	}

	count, err := s.categoryRepo.CountProducts(id)
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrCategoryNotEmpty
	}
	return s.categoryRepo.Delete(id)
}
