package service

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/glowderma/glowderma/internal/models"
	"github.com/glowderma/glowderma/internal/repository"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupCategoryServiceTest(t *testing.T) (*CategoryService, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:category_service_test_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&models.Category{}, &models.Product{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	svc := NewCategoryService(repository.NewCategoryRepository(db), repository.NewProductRepository(db))
	return svc, db
}

func TestCategoryTree(t *testing.T) {
	svc, db := setupCategoryServiceTest(t)

	root := models.Category{Name: "Skincare", Slug: "skincare", SortOrder: 10}
	if err := db.Create(&root).Error; err != nil {
		t.Fatalf("create root: %v", err)
	}
	child := models.Category{Name: "Serums", Slug: "serums", ParentID: &root.ID}
	if err := db.Create(&child).Error; err != nil {
		t.Fatalf("create child: %v", err)
	}
	dangling := uint(9999)
	orphan := models.Category{Name: "Orphan", Slug: "orphan", ParentID: &dangling}
	if err := db.Create(&orphan).Error; err != nil {
		t.Fatalf("create orphan: %v", err)
	}

	tree, err := svc.Tree()
	if err != nil {
		t.Fatalf("Tree: %v", err)
	}
	if len(tree) != 2 {
		t.Fatalf("expected 2 roots (real root + orphan), got %d", len(tree))
	}
	var skincare *CategoryNode
	for _, node := range tree {
		if node.Slug == "skincare" {
			skincare = node
		}
	}
	if skincare == nil {
		t.Fatalf("skincare root missing")
	}
	if len(skincare.Children) != 1 || skincare.Children[0].Slug != "serums" {
		t.Fatalf("unexpected children: %+v", skincare.Children)
	}
}

func TestCategoryUpdateRejectsCycle(t *testing.T) {
	svc, _ := setupCategoryServiceTest(t)

	a, err := svc.Create(CategoryInput{Slug: "a", Name: "A"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	b, err := svc.Create(CategoryInput{Slug: "b", Name: "B", ParentID: &a.ID})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	c, err := svc.Create(CategoryInput{Slug: "c", Name: "C", ParentID: &b.ID})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	// Self-parent.
	if _, err := svc.Update(a.ID, CategoryInput{Slug: "a", Name: "A", ParentID: &a.ID}); !errors.Is(err, ErrCategoryCycle) {
		t.Fatalf("expected ErrCategoryCycle, got %v", err)
	}
	// Reparenting under a descendant.
	if _, err := svc.Update(a.ID, CategoryInput{Slug: "a", Name: "A", ParentID: &c.ID}); !errors.Is(err, ErrCategoryCycle) {
		t.Fatalf("expected ErrCategoryCycle, got %v", err)
	}
}

func TestCategoryDeleteGuards(t *testing.T) {
	svc, db := setupCategoryServiceTest(t)

	parent, err := svc.Create(CategoryInput{Slug: "parent", Name: "Parent"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	child, err := svc.Create(CategoryInput{Slug: "child", Name: "Child", ParentID: &parent.ID})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := svc.Delete(parent.ID); !errors.Is(err, ErrCategoryHasChildren) {
		t.Fatalf("expected ErrCategoryHasChildren, got %v", err)
	}

	product := models.Product{
		CategoryID: child.ID,
		Slug:       "guarded-product",
		Name:       "Guarded",
		Price:      models.NewMoneyFromInt(10000),
		IsActive:   true,
	}
	if err := db.Create(&product).Error; err != nil {
		t.Fatalf("create product: %v", err)
	}
	if err := svc.Delete(child.ID); !errors.Is(err, ErrCategoryHasProducts) {
		t.Fatalf("expected ErrCategoryHasProducts, got %v", err)
	}

	if err := db.Unscoped().Delete(&product).Error; err != nil {
		t.Fatalf("drop product: %v", err)
	}
	if err := svc.Delete(child.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := svc.Delete(parent.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
}
