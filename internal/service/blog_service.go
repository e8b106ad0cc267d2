package service

import (
	"time"

	"github.com/veltrachem-web/internal/models"
	"github.com/veltrachem-web/internal/repository"
)

const relatedBlogLimit = 3

// BlogService exposes product and company blog content.
type BlogService struct {
	productBlogRepo repository.ProductBlogRepository
	companyBlogRepo repository.CompanyBlogRepository
}

// NewBlogService creates a blog service.
func NewBlogService(productBlogRepo repository.ProductBlogRepository, companyBlogRepo repository.CompanyBlogRepository) *BlogService {
	return &BlogService{productBlogRepo: productBlogRepo, companyBlogRepo: companyBlogRepo}
}

// ListProductBlogs returns product blog posts, newest first.
func (s *BlogService) ListProductBlogs(filter repository.BlogListFilter) ([]models.ProductBlog, int64, error) {
	return s.productBlogRepo.List(filter)
}

// ListCompanyBlogs returns company blog posts, newest first.
func (s *BlogService) ListCompanyBlogs(filter repository.BlogListFilter) ([]models.CompanyBlog, int64, error) {
	return s.companyBlogRepo.List(filter)
}

// ProductBlogDetail bundles a post with up to 3 other posts.
type ProductBlogDetail struct {
	Blog    *models.ProductBlog
	Related []models.ProductBlog
}

// GetProductBlogBySlug assembles a product blog detail page.
func (s *BlogService) GetProductBlogBySlug(slug string) (*ProductBlogDetail, error) {
	blog, err := s.productBlogRepo.GetBySlug(slug)
	if err != nil {
		return nil, err
	}
	if blog == nil {
		return nil, ErrNotFound
	}

	related, err := s.productBlogRepo.ListRelated(blog.ID, relatedBlogLimit)
	if err != nil {
		return nil, err
	}
	return &ProductBlogDetail{Blog: blog, Related: related}, nil
}

// CompanyBlogDetail bundles a post with up to 3 other posts.
type CompanyBlogDetail struct {
	Blog    *models.CompanyBlog
	Related []models.CompanyBlog
}

// GetCompanyBlogBySlug assembles a company blog detail page.
func (s *BlogService) GetCompanyBlogBySlug(slug string) (*CompanyBlogDetail, error) {
	blog, err := s.companyBlogRepo.GetBySlug(slug)
	if err != nil {
		return nil, err
	}
	if blog == nil {
		return nil, ErrNotFound
	}

	related, err := s.companyBlogRepo.ListRelated(blog.ID, relatedBlogLimit)
	if err != nil {
		return nil, err
	}
	return &CompanyBlogDetail{Blog: blog, Related: related}, nil
}

// ListAllProductBlogs returns every product blog post for feeds.
func (s *BlogService) ListAllProductBlogs() ([]models.ProductBlog, error) {
	return s.productBlogRepo.ListPublished()
}

// ListAllCompanyBlogs returns every company blog post for feeds.
func (s *BlogService) ListAllCompanyBlogs() ([]models.CompanyBlog, error) {
	return s.companyBlogRepo.ListPublished()
}

// BlogInput is the admin create/update payload for either blog type.
type BlogInput struct {
	Title           string
	Slug            string
	Content         string
	Author          string
	ProductID       uint
	CompanyID       uint
	MetaTitle       string
	MetaDescription string
	MetaKeywords    string
	PublishedAt     *time.Time
}

// CreateProductBlog creates a product blog post.
func (s *BlogService) CreateProductBlog(input BlogInput) (*models.ProductBlog, error) {
	count, err := s.productBlogRepo.CountBySlug(input.Slug, nil)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrSlugExists
	}

	blog := models.ProductBlog{
		ProductID:       input.ProductID,
		Title:           input.Title,
		Slug:            input.Slug,
		Content:         input.Content,
		Author:          input.Author,
		MetaTitle:       input.MetaTitle,
		MetaDescription: input.MetaDescription,
		MetaKeywords:    input.MetaKeywords,
	}
	if input.PublishedAt != nil {
		blog.PublishedAt = *input.PublishedAt
	}
	if err := s.productBlogRepo.Create(&blog); err != nil {
		return nil, err
	}
	return &blog, nil
}

// UpdateProductBlog updates a product blog post.
func (s *BlogService) UpdateProductBlog(id string, input BlogInput) (*models.ProductBlog, error) {
	blog, err := s.productBlogRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if blog == nil {
		return nil, ErrNotFound
	}

	count, err := s.productBlogRepo.CountBySlug(input.Slug, &id)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrSlugExists
	}

	blog.ProductID = input.ProductID
	blog.Title = input.Title
	blog.Slug = input.Slug
	blog.Content = input.Content
	blog.Author = input.Author
	blog.MetaTitle = input.MetaTitle
	blog.MetaDescription = input.MetaDescription
	blog.MetaKeywords = input.MetaKeywords
	if input.PublishedAt != nil {
		blog.PublishedAt = *input.PublishedAt
	}
	if err := s.productBlogRepo.Update(blog); err != nil {
		return nil, err
	}
	return blog, nil
}

// DeleteProductBlog removes a product blog post.
func (s *BlogService) DeleteProductBlog(id string) error {
	blog, err := s.productBlogRepo.GetByID(id)
	if err != nil {
		return err
	}
	if blog == nil {
		return ErrNotFound
	}
	return s.productBlogRepo.Delete(id)
}

// CreateCompanyBlog creates a company blog post.
func (s *BlogService) CreateCompanyBlog(input BlogInput) (*models.CompanyBlog, error) {
	count, err := s.companyBlogRepo.CountBySlug(input.Slug, nil)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrSlugExists
	}

	blog := models.CompanyBlog{
		CompanyID:       input.CompanyID,
		Title:           input.Title,
		Slug:            input.Slug,
		Content:         input.Content,
		Author:          input.Author,
		MetaTitle:       input.MetaTitle,
		MetaDescription: input.MetaDescription,
		MetaKeywords:    input.MetaKeywords,
	}
	if input.PublishedAt != nil {
		blog.PublishedAt = *input.PublishedAt
	}
	if err := s.companyBlogRepo.Create(&blog); err != nil {
		return nil, err
	}
	return &blog, nil
}

// UpdateCompanyBlog updates a company blog post.
func (s *BlogService) UpdateCompanyBlog(id string, input BlogInput) (*models.CompanyBlog, error) {
	blog, err := s.companyBlogRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if blog == nil {
		return nil, ErrNotFound
	}

	count, err := s.companyBlogRepo.CountBySlug(input.Slug, &id)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrSlugExists
	}

	blog.CompanyID = input.CompanyID
	blog.Title = input.Title
	blog.Slug = input.Slug
	blog.Content = input.Content
	blog.Author = input.Author
	blog.MetaTitle = input.MetaTitle
	blog.MetaDescription = input.MetaDescription
	blog.MetaKeywords = input.MetaKeywords
	if input.PublishedAt != nil {
		blog.PublishedAt = *input.PublishedAt
	}
	if err := s.companyBlogRepo.Update(blog); err != nil {
		return nil, err
	}
	return blog, nil
}

// DeleteCompanyBlog removes a company blog post.
func (s *BlogService) DeleteCompanyBlog(id string) error {
	blog, err := s.companyBlogRepo.GetByID(id)
	if err != nil {
		return err
	}
	if blog == nil {
		return ErrNotFound
	}
	return s.companyBlogRepo.Delete(id)
}
