package service

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/veltrachem-web/internal/models"
	"github.com/veltrachem-web/internal/repository"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func newSitemapTestService(t *testing.T, name string) (*gorm.DB, *SitemapService) {
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

	catalog := NewCatalogService(
		repository.NewProductRepository(db),
		repository.NewCategoryRepository(db),
	)
	blogs := NewBlogService(
		repository.NewProductBlogRepository(db),
		repository.NewCompanyBlogRepository(db),
	)
	return db, NewSitemapService(catalog, blogs, "https://veltrachem.com/", "/api/v1/admin")
}

func TestBuildSitemapSkipsInactiveProducts(t *testing.T) {
	db, svc := newSitemapTestService(t, "sitemap_active")

	category := models.ProductCategory{Name: "Oilfield", Slug: "oilfield"}
	if err := db.Create(&category).Error; err != nil {
		t.Fatalf("create category failed: %v", err)
	}
	active := models.Product{Name: "Active", Slug: "active-product", CategoryID: category.ID, IsActive: true}
	inactive := models.Product{Name: "Retired", Slug: "retired-product", CategoryID: category.ID, IsActive: false}
	if err := db.Create(&active).Error; err != nil {
		t.Fatalf("create product failed: %v", err)
	}
	if err := db.Create(&inactive).Error; err != nil {
		t.Fatalf("create product failed: %v", err)
	}

	set, err := svc.BuildSitemap()
	if err != nil {
		t.Fatalf("BuildSitemap error: %v", err)
	}
	if len(set.URLs) != 1 {
		t.Fatalf("expected 1 url, got %d", len(set.URLs))
	}
	url := set.URLs[0]
	if url.Loc != "https://veltrachem.com/product/active-product/" {
		t.Fatalf("wrong loc: %s", url.Loc)
	}
	if url.ChangeFreq != "weekly" || url.Priority != "0.8" {
		t.Fatalf("wrong product metadata: %s / %s", url.ChangeFreq, url.Priority)
	}
}

func TestBuildSitemapBlogEntries(t *testing.T) {
	db, svc := newSitemapTestService(t, "sitemap_blogs")

	category := models.ProductCategory{Name: "Oilfield", Slug: "oilfield"}
	if err := db.Create(&category).Error; err != nil {
		t.Fatalf("create category failed: %v", err)
	}
	product := models.Product{Name: "Scavenger", Slug: "scavenger", CategoryID: category.ID, IsActive: true}
	if err := db.Create(&product).Error; err != nil {
		t.Fatalf("create product failed: %v", err)
	}
	companyBlog := models.CompanyBlog{Title: "News", Slug: "company-news", Content: "body"}
	if err := db.Create(&companyBlog).Error; err != nil {
		t.Fatalf("create company blog failed: %v", err)
	}
	productBlog := models.ProductBlog{ProductID: product.ID, Title: "Dosing", Slug: "dosing-guide", Content: "body"}
	if err := db.Create(&productBlog).Error; err != nil {
		t.Fatalf("create product blog failed: %v", err)
	}

	set, err := svc.BuildSitemap()
	if err != nil {
		t.Fatalf("BuildSitemap error: %v", err)
	}

	locs := map[string]SitemapURL{}
	for _, u := range set.URLs {
		locs[u.Loc] = u
	}
	blogURL, ok := locs["https://veltrachem.com/blog/company-news/"]
	if !ok {
		t.Fatalf("company blog url missing: %v", locs)
	}
	if blogURL.ChangeFreq != "monthly" || blogURL.Priority != "0.6" {
		t.Fatalf("wrong blog metadata: %s / %s", blogURL.ChangeFreq, blogURL.Priority)
	}
	if _, ok := locs["https://veltrachem.com/product-blog/dosing-guide/"]; !ok {
		t.Fatalf("product blog url missing: %v", locs)
	}
}

func TestRenderSitemapXMLHeader(t *testing.T) {
	_, svc := newSitemapTestService(t, "sitemap_render")

	body, err := svc.RenderSitemapXML()
	if err != nil {
		t.Fatalf("RenderSitemapXML error: %v", err)
	}
	text := string(body)
	if !strings.HasPrefix(text, "<?xml") {
		t.Fatalf("missing xml declaration: %s", text[:40])
	}
	if !strings.Contains(text, `xmlns="http://www.sitemaps.org/schemas/sitemap/0.9"`) {
		t.Fatalf("missing sitemap namespace")
	}
}

func TestRenderRobotsTxt(t *testing.T) {
	_, svc := newSitemapTestService(t, "sitemap_robots")

	body := svc.RenderRobotsTxt()
	if !strings.Contains(body, "User-agent: *") {
		t.Fatalf("missing user-agent line: %s", body)
	}
	if !strings.Contains(body, "Disallow: /api/v1/admin/") {
		t.Fatalf("missing admin disallow: %s", body)
	}
	if !strings.Contains(body, "Allow: /") {
		t.Fatalf("missing allow line: %s", body)
	}
	if !strings.Contains(body, "Sitemap: https://veltrachem.com/sitemap.xml") {
		t.Fatalf("missing sitemap line: %s", body)
	}
}
