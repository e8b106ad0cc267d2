package service

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/veltrachem-web/internal/models"
	"github.com/veltrachem-web/internal/repository"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func newBlogTestService(t *testing.T, name string) (*gorm.DB, *BlogService) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", name, time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(
		&models.ProductCategory{},
		&models.Product{},
		&models.ProductBlog{},
		&models.CompanyBlog{},
	); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	svc := NewBlogService(
		repository.NewProductBlogRepository(db),
		repository.NewCompanyBlogRepository(db),
	)
	return db, svc
}

func TestListCompanyBlogsNewestFirst(t *testing.T) {
	db, svc := newBlogTestService(t, "blogs_order")

	old := time.Now().Add(-48 * time.Hour)
	recent := time.Now().Add(-1 * time.Hour)
	posts := []models.CompanyBlog{
		{Title: "Older", Slug: "older", Content: "older post body", PublishedAt: old},
		{Title: "Newer", Slug: "newer", Content: "newer post body", PublishedAt: recent},
	}
	for i := range posts {
		if err := db.Create(&posts[i]).Error; err != nil {
			t.Fatalf("create failed: %v", err)
		}
	}

	blogs, total, err := svc.ListCompanyBlogs(repository.BlogListFilter{})
	if err != nil {
		t.Fatalf("ListCompanyBlogs error: %v", err)
	}
	if total != 2 {
		t.Fatalf("expected 2 posts, got %d", total)
	}
	if blogs[0].Slug != "newer" || blogs[1].Slug != "older" {
		t.Fatalf("wrong order: %s, %s", blogs[0].Slug, blogs[1].Slug)
	}
}

func TestGetCompanyBlogRelatedExcludesSelf(t *testing.T) {
	db, svc := newBlogTestService(t, "blogs_related")

	for i := 0; i < 5; i++ {
		post := models.CompanyBlog{
			Title:   fmt.Sprintf("Post %d", i),
			Slug:    fmt.Sprintf("post-%d", i),
			Content: "post body text",
		}
		if err := db.Create(&post).Error; err != nil {
			t.Fatalf("create failed: %v", err)
		}
	}

	detail, err := svc.GetCompanyBlogBySlug("post-0")
	if err != nil {
		t.Fatalf("GetCompanyBlogBySlug error: %v", err)
	}
	if len(detail.Related) != 3 {
		t.Fatalf("expected 3 related posts, got %d", len(detail.Related))
	}
	for _, rel := range detail.Related {
		if rel.ID == detail.Blog.ID {
			t.Fatalf("related list contains the post itself")
		}
	}
}

func TestGetCompanyBlogUnknownSlug(t *testing.T) {
	_, svc := newBlogTestService(t, "blogs_missing")

	if _, err := svc.GetCompanyBlogBySlug("missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got: %v", err)
	}
}

func TestCreateProductBlogDuplicateSlug(t *testing.T) {
	db, svc := newBlogTestService(t, "blogs_dup")

	category := models.ProductCategory{Name: "Oilfield", Slug: "oilfield"}
	if err := db.Create(&category).Error; err != nil {
		t.Fatalf("create category failed: %v", err)
	}
	product := models.Product{Name: "Scavenger", Slug: "scavenger", CategoryID: category.ID}
	if err := db.Create(&product).Error; err != nil {
		t.Fatalf("create product failed: %v", err)
	}

	input := BlogInput{Title: "Guide", Slug: "guide", Content: "guide body", ProductID: product.ID}
	if _, err := svc.CreateProductBlog(input); err != nil {
		t.Fatalf("first create failed: %v", err)
	}
	if _, err := svc.CreateProductBlog(input); !errors.Is(err, ErrSlugExists) {
		t.Fatalf("expected ErrSlugExists, got: %v", err)
	}
}

func TestCreateCompanyBlogDerivesMetaDescription(t *testing.T) {
	_, svc := newBlogTestService(t, "blogs_meta")

	blog, err := svc.CreateCompanyBlog(BlogInput{
		Title:   "News",
		Slug:    "news",
		Content: "<p>Veltra opens a new production line.</p>",
	})
	if err != nil {
		t.Fatalf("CreateCompanyBlog error: %v", err)
	}
	if blog.MetaDescription != "Veltra opens a new production line." {
		t.Fatalf("meta description not derived: %q", blog.MetaDescription)
	}
	if blog.PublishedAt.IsZero() {
		t.Fatalf("PublishedAt should default")
	}
}
