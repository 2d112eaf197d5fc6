package main

import (
	"time"

	"github.com/glowderma/glowderma/internal/config"
	"github.com/glowderma/glowderma/internal/constants"
	"github.com/glowderma/glowderma/internal/logger"
	"github.com/glowderma/glowderma/internal/models"

	"github.com/shopspring/decimal"
)

func main() {
	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	stdLog := logger.StdLogger()
	if err := models.InitDB(cfg.Database.Driver, cfg.Database.DSN, models.DBPoolConfig{
		MaxOpenConns:           cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns:           cfg.Database.Pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: cfg.Database.Pool.ConnMaxLifetimeSeconds,
		ConnMaxIdleTimeSeconds: cfg.Database.Pool.ConnMaxIdleTimeSeconds,
	}); err != nil {
		stdLog.Fatalf("failed to connect database: %v", err)
	}

	if err := models.AutoMigrate(); err != nil {
		stdLog.Fatalf("failed to migrate database: %v", err)
	}

	categories := []models.Category{
		{Name: "Serums & Essences", Slug: "serums", SortOrder: 30},
		{Name: "Cleansers", Slug: "cleansers", SortOrder: 20},
		{Name: "Sun Care", Slug: "sun-care", SortOrder: 10},
	}

	for _, cat := range categories {
		var existing models.Category
		if err := models.DB.Where("slug = ?", cat.Slug).First(&existing).Error; err != nil {
			if err := models.DB.Create(&cat).Error; err != nil {
				stdLog.Printf("failed to create category %s: %v", cat.Slug, err)
			} else {
				stdLog.Printf("created category: %s", cat.Slug)
			}
		} else {
			stdLog.Printf("category already exists: %s", cat.Slug)
		}
	}

	categoryIDs := map[string]uint{}
	var categoryList []models.Category
	if err := models.DB.Where("slug IN ?", []string{"serums", "cleansers", "sun-care"}).Find(&categoryList).Error; err != nil {
		stdLog.Printf("failed to load categories: %v", err)
	}
	for _, cat := range categoryList {
		categoryIDs[cat.Slug] = cat.ID
	}

	products := []models.Product{
		{
			CategoryID:  categoryIDs["serums"],
			Slug:        "niacinamide-brightening-serum",
			Name:        "Niacinamide 10% Brightening Serum",
			Description: "Daily serum that evens skin tone and fades post-acne marks.",
			Price:       models.NewMoneyFromInt(189000),
			Images:      models.StringArray{"/images/products/niacinamide-serum.jpg"},
			IsActive:    true,
			SortOrder:   30,
		},
		{
			CategoryID:  categoryIDs["serums"],
			Slug:        "hyaluronic-hydra-booster",
			Name:        "Hyaluronic Acid Hydra Booster",
			Description: "Lightweight hydrating serum for dry and combination skin.",
			Price:       models.NewMoneyFromInt(215000),
			Images:      models.StringArray{"/images/products/hydra-booster.jpg"},
			IsActive:    true,
			SortOrder:   20,
		},
		{
			CategoryID:  categoryIDs["cleansers"],
			Slug:        "gentle-amino-cleanser",
			Name:        "Gentle Amino Acid Cleanser",
			Description: "Low-pH foaming cleanser safe for daily use on sensitive skin.",
			Price:       models.NewMoneyFromInt(125000),
			Images:      models.StringArray{"/images/products/amino-cleanser.jpg"},
			IsActive:    true,
			SortOrder:   10,
		},
		{
			CategoryID:  categoryIDs["sun-care"],
			Slug:        "uv-shield-spf50",
			Name:        "UV Shield Sunscreen SPF50+ PA++++",
			Description: "Broad-spectrum daily sunscreen with no white cast.",
			Price:       models.NewMoneyFromInt(98000),
			Images:      models.StringArray{"/images/products/uv-shield.jpg"},
			IsActive:    true,
			SortOrder:   10,
		},
	}

	for _, product := range products {
		var existing models.Product
		if err := models.DB.Where("slug = ?", product.Slug).First(&existing).Error; err != nil {
			if err := models.DB.Create(&product).Error; err != nil {
				stdLog.Printf("failed to create product %s: %v", product.Slug, err)
			} else {
				stdLog.Printf("created product: %s", product.Slug)
			}
		} else {
			stdLog.Printf("product already exists: %s", product.Slug)
		}
	}

	nextMonth := time.Now().AddDate(0, 1, 0)
	coupons := []models.Coupon{
		{
			Code:        "GLOW10",
			Type:        constants.CouponTypePercentage,
			Value:       models.NewMoneyFromDecimal(decimal.NewFromInt(10)),
			MinPurchase: models.NewMoneyFromInt(0),
			UsageLimit:  0,
			ExpiresAt:   &nextMonth,
			IsActive:    true,
		},
		{
			Code:        "SAVE50K",
			Type:        constants.CouponTypeFixed,
			Value:       models.NewMoneyFromInt(50000),
			MinPurchase: models.NewMoneyFromInt(250000),
			UsageLimit:  100,
			ExpiresAt:   &nextMonth,
			IsActive:    true,
		},
	}

	for _, coupon := range coupons {
		var existing models.Coupon
		if err := models.DB.Where("code = ?", coupon.Code).First(&existing).Error; err != nil {
			if err := models.DB.Create(&coupon).Error; err != nil {
				stdLog.Printf("failed to create coupon %s: %v", coupon.Code, err)
			} else {
				stdLog.Printf("created coupon: %s", coupon.Code)
			}
		} else {
			stdLog.Printf("coupon already exists: %s", coupon.Code)
		}
	}

	now := time.Now()
	posts := []models.Post{
		{
			Slug:        "layering-actives-guide",
			Type:        constants.PostTypeBlog,
			Title:       "How to Layer Active Ingredients Without Irritation",
			Summary:     "A practical ordering guide for niacinamide, retinol and vitamin C.",
			Content:     "Start with the thinnest texture and give each layer a minute to absorb...",
			IsPublished: true,
			PublishedAt: &now,
		},
		{
			Slug:        "clinic-holiday-hours",
			Type:        constants.PostTypeNotice,
			Title:       "Adjusted Clinic Hours During the Holiday",
			Summary:     "Online orders ship as usual; in-clinic consultations pause for two days.",
			Content:     "Our storefront keeps running around the clock during the break...",
			IsPublished: true,
			PublishedAt: &now,
		},
	}

	for _, post := range posts {
		var existing models.Post
		if err := models.DB.Where("slug = ?", post.Slug).First(&existing).Error; err != nil {
			if err := models.DB.Create(&post).Error; err != nil {
				stdLog.Printf("failed to create post %s: %v", post.Slug, err)
			} else {
				stdLog.Printf("created post: %s", post.Slug)
			}
		} else {
			stdLog.Printf("post already exists: %s", post.Slug)
		}
	}

	stdLog.Println("seed finished")
}
