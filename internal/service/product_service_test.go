package service

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/glowderma/glowderma/internal/models"
	"github.com/glowderma/glowderma/internal/repository"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func setupProductServiceTest(t *testing.T) (*ProductService, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:product_service_test_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&models.Category{}, &models.Product{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	svc := NewProductService(repository.NewProductRepository(db), repository.NewCategoryRepository(db))
	return svc, db
}

func TestProductCreateAndSlugConflict(t *testing.T) {
	svc, db := setupProductServiceTest(t)
	category := models.Category{Name: "Serums", Slug: "serums"}
	if err := db.Create(&category).Error; err != nil {
		t.Fatalf("create category: %v", err)
	}

	input := ProductInput{
		CategoryID: category.ID,
		Slug:       "vitamin-c-serum",
		Name:       "Vitamin C Serum",
		Price:      models.NewMoneyFromInt(175000),
		IsActive:   true,
	}
	product, err := svc.Create(input)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if product.ID == 0 {
		t.Fatalf("expected persisted product")
	}

	if _, err := svc.Create(input); !errors.Is(err, ErrProductSlugTaken) {
		t.Fatalf("expected ErrProductSlugTaken, got %v", err)
	}

	input.Slug = "other-serum"
	input.CategoryID = 9999
	if _, err := svc.Create(input); !errors.Is(err, ErrCategoryNotFound) {
		t.Fatalf("expected ErrCategoryNotFound, got %v", err)
	}
}

func TestProductGetBySlugRespectsActiveFilter(t *testing.T) {
	svc, db := setupProductServiceTest(t)
	category := models.Category{Name: "Sun Care", Slug: "sun-care"}
	if err := db.Create(&category).Error; err != nil {
		t.Fatalf("create category: %v", err)
	}
	product := models.Product{
		CategoryID: category.ID,
		Slug:       "hidden-spf",
		Name:       "Hidden SPF",
		Price:      models.NewMoneyFromInt(90000),
		IsActive:   false,
	}
	if err := db.Create(&product).Error; err != nil {
		t.Fatalf("create product: %v", err)
	}

	if _, err := svc.GetBySlug("hidden-spf", true); !errors.Is(err, ErrProductNotFound) {
		t.Fatalf("inactive product should be invisible to storefront, got %v", err)
	}
	if _, err := svc.GetBySlug("hidden-spf", false); err != nil {
		t.Fatalf("admin lookup should find it, got %v", err)
	}
}

func TestListPriceFromNet(t *testing.T) {
	net := models.NewMoneyFromInt(80000)
	pct := decimal.NewFromInt(20)
	list, err := ListPriceFromNet(net, pct)
	if err != nil {
		t.Fatalf("ListPriceFromNet: %v", err)
	}
	if !list.Equal(decimal.NewFromInt(100000)) {
		t.Fatalf("expected 100000, got %s", list.String())
	}

	// The forward direction recovers the net amount.
	back, err := NetFromListPrice(list, pct)
	if err != nil {
		t.Fatalf("NetFromListPrice: %v", err)
	}
	if !back.Equal(net.Decimal) {
		t.Fatalf("expected %s, got %s", net.String(), back.String())
	}
}

func TestListPriceFromNetRejectsBadPercentage(t *testing.T) {
	net := models.NewMoneyFromInt(80000)
	if _, err := ListPriceFromNet(net, decimal.NewFromInt(100)); !errors.Is(err, ErrInvalidPercentage) {
		t.Fatalf("expected ErrInvalidPercentage for 100, got %v", err)
	}
	if _, err := ListPriceFromNet(net, decimal.NewFromInt(-1)); !errors.Is(err, ErrInvalidPercentage) {
		t.Fatalf("expected ErrInvalidPercentage for -1, got %v", err)
	}
	if _, err := ListPriceFromNet(net, decimal.Zero); err != nil {
		t.Fatalf("zero commission is valid, got %v", err)
	}
}
