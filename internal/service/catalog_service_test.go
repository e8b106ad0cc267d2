package service

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/veltrachem-web/internal/constants"
	"github.com/veltrachem-web/internal/models"
	"github.com/veltrachem-web/internal/repository"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func newCatalogTestDB(t *testing.T, name string) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", name, time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(
		&models.ProductCategory{},
		&models.Product{},
		&models.ProductFAQ{},
		&models.ProductApplication{},
		&models.ProductBlog{},
	); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	return db
}

func newCatalogService(db *gorm.DB) *CatalogService {
	return NewCatalogService(
		repository.NewProductRepository(db),
		repository.NewCategoryRepository(db),
	)
}

func TestListProductsOrderingIncludesInactive(t *testing.T) {
	db := newCatalogTestDB(t, "catalog_ordering")
	svc := newCatalogService(db)

	category := models.ProductCategory{Name: "Oilfield", Slug: "oilfield"}
	if err := db.Create(&category).Error; err != nil {
		t.Fatalf("create category failed: %v", err)
	}

	seed := []models.Product{
		{Name: "Zeta Acid", Slug: "zeta-acid", CategoryID: category.ID, Priority: 10, IsActive: true},
		{Name: "Alpha Amine", Slug: "alpha-amine", CategoryID: category.ID, Priority: 10, IsActive: false},
		{Name: "Beta Base", Slug: "beta-base", CategoryID: category.ID, Priority: 50, IsActive: true},
	}
	for i := range seed {
		if err := db.Create(&seed[i]).Error; err != nil {
			t.Fatalf("create product failed: %v", err)
		}
	}

	products, total, err := svc.ListProducts(repository.ProductListFilter{})
	if err != nil {
		t.Fatalf("ListProducts error: %v", err)
	}
	if total != 3 {
		t.Fatalf("expected 3 products including inactive, got %d", total)
	}
	got := []string{products[0].Name, products[1].Name, products[2].Name}
	want := []string{"Beta Base", "Alpha Amine", "Zeta Acid"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("wrong order at %d: got %v want %v", i, got, want)
		}
	}
}

func TestGetProductBySlugRelatedLimit(t *testing.T) {
	db := newCatalogTestDB(t, "catalog_related")
	svc := newCatalogService(db)

	category := models.ProductCategory{Name: "Sulphonates", Slug: "sulphonates"}
	if err := db.Create(&category).Error; err != nil {
		t.Fatalf("create category failed: %v", err)
	}
	other := models.ProductCategory{Name: "Amines", Slug: "amines"}
	if err := db.Create(&other).Error; err != nil {
		t.Fatalf("create category failed: %v", err)
	}

	for i := 0; i < 5; i++ {
		p := models.Product{
			Name:       fmt.Sprintf("Sulphonate %d", i),
			Slug:       fmt.Sprintf("sulphonate-%d", i),
			CategoryID: category.ID,
			IsActive:   true,
		}
		if err := db.Create(&p).Error; err != nil {
			t.Fatalf("create product failed: %v", err)
		}
	}
	outsider := models.Product{Name: "Amine X", Slug: "amine-x", CategoryID: other.ID, IsActive: true}
	if err := db.Create(&outsider).Error; err != nil {
		t.Fatalf("create product failed: %v", err)
	}

	detail, err := svc.GetProductBySlug("sulphonate-0")
	if err != nil {
		t.Fatalf("GetProductBySlug error: %v", err)
	}
	if len(detail.Related) != 3 {
		t.Fatalf("expected 3 related products, got %d", len(detail.Related))
	}
	for _, rel := range detail.Related {
		if rel.ID == detail.Product.ID {
			t.Fatalf("related list contains the product itself")
		}
		if rel.CategoryID != category.ID {
			t.Fatalf("related product from wrong category: %s", rel.Slug)
		}
	}
}

func TestGetProductBySlugInactiveStillReachable(t *testing.T) {
	db := newCatalogTestDB(t, "catalog_inactive")
	svc := newCatalogService(db)

	category := models.ProductCategory{Name: "Amines", Slug: "amines"}
	if err := db.Create(&category).Error; err != nil {
		t.Fatalf("create category failed: %v", err)
	}
	p := models.Product{Name: "Retired Amine", Slug: "retired-amine", CategoryID: category.ID, IsActive: false}
	if err := db.Create(&p).Error; err != nil {
		t.Fatalf("create product failed: %v", err)
	}

	detail, err := svc.GetProductBySlug("retired-amine")
	if err != nil {
		t.Fatalf("inactive product should still resolve, got: %v", err)
	}
	if detail.Product.Slug != "retired-amine" {
		t.Fatalf("unexpected product: %s", detail.Product.Slug)
	}
}

func TestGetNamedProductMissingDegrades(t *testing.T) {
	db := newCatalogTestDB(t, "catalog_named")
	svc := newCatalogService(db)

	result := svc.GetNamedProduct("MEA TRIAZINE 78%")
	if !result.Missing {
		t.Fatalf("expected missing result for empty table")
	}
	if result.Image != constants.PlaceholderProductImage {
		t.Fatalf("expected placeholder image, got %s", result.Image)
	}
	if result.Product != nil {
		t.Fatalf("expected nil product")
	}
}

func TestCreateProductDuplicateSlug(t *testing.T) {
	db := newCatalogTestDB(t, "catalog_dup_slug")
	svc := newCatalogService(db)

	category := models.ProductCategory{Name: "Oilfield", Slug: "oilfield"}
	if err := db.Create(&category).Error; err != nil {
		t.Fatalf("create category failed: %v", err)
	}

	input := ProductInput{Name: "Scavenger", Slug: "scavenger", CategoryID: category.ID}
	if _, err := svc.CreateProduct(input); err != nil {
		t.Fatalf("first create failed: %v", err)
	}
	if _, err := svc.CreateProduct(input); !errors.Is(err, ErrSlugExists) {
		t.Fatalf("expected ErrSlugExists, got: %v", err)
	}
}

func TestDeleteCategoryWithProducts(t *testing.T) {
	db := newCatalogTestDB(t, "catalog_del_category")
	svc := newCatalogService(db)

	category := models.ProductCategory{Name: "Oilfield", Slug: "oilfield"}
	if err := db.Create(&category).Error; err != nil {
		t.Fatalf("create category failed: %v", err)
	}
	p := models.Product{Name: "Scavenger", Slug: "scavenger", CategoryID: category.ID}
	if err := db.Create(&p).Error; err != nil {
		t.Fatalf("create product failed: %v", err)
	}

	err := svc.DeleteCategory(fmt.Sprint(category.ID))
	if !errors.Is(err, ErrCategoryNotEmpty) {
		t.Fatalf("expected ErrCategoryNotEmpty, got: %v", err)
	}
}

func TestCreateProductInactivePersists(t *testing.T) {
	db := newCatalogTestDB(t, "catalog_inactive_create")
	svc := newCatalogService(db)

	category := models.ProductCategory{Name: "Amines", Slug: "amines"}
	if err := db.Create(&category).Error; err != nil {
		t.Fatalf("create category failed: %v", err)
	}

	inactive := false
	created, err := svc.CreateProduct(ProductInput{
		Name:       "Retired Amine",
		Slug:       "retired-amine",
		CategoryID: category.ID,
		IsActive:   &inactive,
	})
	if err != nil {
		t.Fatalf("CreateProduct error: %v", err)
	}

	var stored models.Product
	if err := db.First(&stored, created.ID).Error; err != nil {
		t.Fatalf("reload product failed: %v", err)
	}
	if stored.IsActive {
		t.Fatalf("product created inactive was stored as active")
	}

	// Omitting the flag still yields an active product.
	defaulted, err := svc.CreateProduct(ProductInput{
		Name:       "Fresh Amine",
		Slug:       "fresh-amine",
		CategoryID: category.ID,
	})
	if err != nil {
		t.Fatalf("CreateProduct error: %v", err)
	}
	var storedDefault models.Product
	if err := db.First(&storedDefault, defaulted.ID).Error; err != nil {
		t.Fatalf("reload product failed: %v", err)
	}
	if !storedDefault.IsActive {
		t.Fatalf("product created without the flag should default to active")
	}
}
