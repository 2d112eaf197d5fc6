package service

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/glowderma/glowderma/internal/constants"
	"github.com/glowderma/glowderma/internal/models"
	"github.com/glowderma/glowderma/internal/repository"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func setupCartServiceTest(t *testing.T) (*CartService, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:cart_service_test_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&models.Category{}, &models.Product{}, &models.Coupon{}, &models.CartLine{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	svc := NewCartService(
		repository.NewCartRepository(db),
		repository.NewProductRepository(db),
		repository.NewCouponRepository(db),
		NewNotificationService(nil),
	)
	return svc, db
}

func seedCartProduct(t *testing.T, db *gorm.DB, slug string, price int64) *models.Product {
	t.Helper()
	category := models.Category{Name: "Serums", Slug: "serums-" + slug}
	if err := db.Create(&category).Error; err != nil {
		t.Fatalf("create category: %v", err)
	}
	product := models.Product{
		CategoryID: category.ID,
		Slug:       slug,
		Name:       "Product " + slug,
		Price:      models.NewMoneyFromInt(price),
		IsActive:   true,
	}
	if err := db.Create(&product).Error; err != nil {
		t.Fatalf("create product: %v", err)
	}
	return &product
}

func seedCartCoupon(t *testing.T, db *gorm.DB, coupon models.Coupon) *models.Coupon {
	t.Helper()
	if err := db.Create(&coupon).Error; err != nil {
		t.Fatalf("create coupon: %v", err)
	}
	return &coupon
}

func TestCartAddItemMergesExistingLine(t *testing.T) {
	svc, db := setupCartServiceTest(t)
	product := seedCartProduct(t, db, "niacinamide-serum", 100000)

	if _, err := svc.AddItem("s1", product.ID); err != nil {
		t.Fatalf("AddItem: %v", err)
	}
	summary, err := svc.AddItem("s1", product.ID)
	if err != nil {
		t.Fatalf("AddItem: %v", err)
	}
	if len(summary.Lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(summary.Lines))
	}
	if summary.Lines[0].Quantity != 2 {
		t.Fatalf("expected quantity 2, got %d", summary.Lines[0].Quantity)
	}
	if summary.ItemCount != 2 {
		t.Fatalf("expected item count 2, got %d", summary.ItemCount)
	}
}

func TestCartAddItemSnapshotsProduct(t *testing.T) {
	svc, db := setupCartServiceTest(t)
	product := seedCartProduct(t, db, "hydra-booster", 215000)

	summary, err := svc.AddItem("s1", product.ID)
	if err != nil {
		t.Fatalf("AddItem: %v", err)
	}
	line := summary.Lines[0]
	if line.Name != product.Name {
		t.Fatalf("expected snapshot name %q, got %q", product.Name, line.Name)
	}

	// The live product changes; the line keeps its snapshot.
	product.Name = "Renamed"
	product.Price = models.NewMoneyFromInt(999999)
	if err := db.Save(product).Error; err != nil {
		t.Fatalf("update product: %v", err)
	}
	summary = svc.Summary("s1")
	if summary.Lines[0].Name != "Product hydra-booster" {
		t.Fatalf("snapshot name changed: %q", summary.Lines[0].Name)
	}
	if !summary.Lines[0].Price.Equal(decimal.NewFromInt(215000)) {
		t.Fatalf("snapshot price changed: %s", summary.Lines[0].Price.String())
	}
}

func TestCartAddItemRejectsUnknownAndInactive(t *testing.T) {
	svc, db := setupCartServiceTest(t)
	if _, err := svc.AddItem("s1", 9999); !errors.Is(err, ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}

	product := seedCartProduct(t, db, "retired-toner", 80000)
	if err := db.Model(&models.Product{}).Where("id = ?", product.ID).Update("is_active", false).Error; err != nil {
		t.Fatalf("deactivate product: %v", err)
	}
	if _, err := svc.AddItem("s1", product.ID); !errors.Is(err, ErrProductInactive) {
		t.Fatalf("expected ErrProductInactive, got %v", err)
	}
	if summary := svc.Summary("s1"); len(summary.Lines) != 0 {
		t.Fatalf("cart should stay empty, got %d lines", len(summary.Lines))
	}
}

func TestCartRemoveItemAbsentIsNoOp(t *testing.T) {
	svc, db := setupCartServiceTest(t)
	product := seedCartProduct(t, db, "amino-cleanser", 125000)
	if _, err := svc.AddItem("s1", product.ID); err != nil {
		t.Fatalf("AddItem: %v", err)
	}

	summary := svc.RemoveItem("s1", 4242)
	if len(summary.Lines) != 1 {
		t.Fatalf("expected untouched cart, got %d lines", len(summary.Lines))
	}

	summary = svc.RemoveItem("s1", product.ID)
	if len(summary.Lines) != 0 {
		t.Fatalf("expected empty cart, got %d lines", len(summary.Lines))
	}
}

func TestCartUpdateQuantityFloor(t *testing.T) {
	svc, db := setupCartServiceTest(t)
	product := seedCartProduct(t, db, "uv-shield", 98000)
	if _, err := svc.AddItem("s1", product.ID); err != nil {
		t.Fatalf("AddItem: %v", err)
	}

	summary := svc.UpdateQuantity("s1", product.ID, 5)
	if summary.Lines[0].Quantity != 5 {
		t.Fatalf("expected quantity 5, got %d", summary.Lines[0].Quantity)
	}

	// Values below one are rejected silently.
	summary = svc.UpdateQuantity("s1", product.ID, 0)
	if summary.Lines[0].Quantity != 5 {
		t.Fatalf("expected quantity to stay at 5, got %d", summary.Lines[0].Quantity)
	}
	summary = svc.UpdateQuantity("s1", product.ID, -3)
	if summary.Lines[0].Quantity != 5 {
		t.Fatalf("expected quantity to stay at 5, got %d", summary.Lines[0].Quantity)
	}
}

func TestCartSubtotalAndItemCount(t *testing.T) {
	svc, db := setupCartServiceTest(t)
	serum := seedCartProduct(t, db, "serum-a", 150000)
	cleanser := seedCartProduct(t, db, "cleanser-b", 50000)

	if _, err := svc.AddItem("s1", serum.ID); err != nil {
		t.Fatalf("AddItem: %v", err)
	}
	svc.UpdateQuantity("s1", serum.ID, 2)
	if _, err := svc.AddItem("s1", cleanser.ID); err != nil {
		t.Fatalf("AddItem: %v", err)
	}
	summary := svc.Summary("s1")

	if summary.ItemCount != 3 {
		t.Fatalf("expected item count 3, got %d", summary.ItemCount)
	}
	if !summary.Subtotal.Equal(decimal.NewFromInt(350000)) {
		t.Fatalf("expected subtotal 350000, got %s", summary.Subtotal.String())
	}
	if !summary.Total.Equal(decimal.NewFromInt(350000)) {
		t.Fatalf("expected total 350000, got %s", summary.Total.String())
	}
}

func TestCartPercentageCoupon(t *testing.T) {
	svc, db := setupCartServiceTest(t)
	product := seedCartProduct(t, db, "serum-c", 50000)
	seedCartCoupon(t, db, models.Coupon{
		Code:     "GLOW20",
		Type:     constants.CouponTypePercentage,
		Value:    models.NewMoneyFromDecimal(decimal.NewFromInt(20)),
		IsActive: true,
	})

	if _, err := svc.AddItem("s1", product.ID); err != nil {
		t.Fatalf("AddItem: %v", err)
	}
	svc.UpdateQuantity("s1", product.ID, 2)

	summary, err := svc.ApplyCoupon("s1", "glow20")
	if err != nil {
		t.Fatalf("ApplyCoupon: %v", err)
	}
	if summary.AppliedCoupon == nil || summary.AppliedCoupon.Code != "GLOW20" {
		t.Fatalf("expected GLOW20 applied, got %+v", summary.AppliedCoupon)
	}
	if !summary.DiscountAmount.Equal(decimal.NewFromInt(20000)) {
		t.Fatalf("expected discount 20000, got %s", summary.DiscountAmount.String())
	}
	if !summary.Total.Equal(decimal.NewFromInt(80000)) {
		t.Fatalf("expected total 80000, got %s", summary.Total.String())
	}
}

func TestCartFixedCouponClampsTotalNotDiscount(t *testing.T) {
	svc, db := setupCartServiceTest(t)
	product := seedCartProduct(t, db, "sample-sachet", 30000)
	seedCartCoupon(t, db, models.Coupon{
		Code:     "BIGFIXED",
		Type:     constants.CouponTypeFixed,
		Value:    models.NewMoneyFromInt(50000),
		IsActive: true,
	})

	if _, err := svc.AddItem("s1", product.ID); err != nil {
		t.Fatalf("AddItem: %v", err)
	}
	summary, err := svc.ApplyCoupon("s1", "BIGFIXED")
	if err != nil {
		t.Fatalf("ApplyCoupon: %v", err)
	}
	if !summary.DiscountAmount.Equal(decimal.NewFromInt(50000)) {
		t.Fatalf("discount should not be clamped, got %s", summary.DiscountAmount.String())
	}
	if !summary.Total.Equal(decimal.Zero) {
		t.Fatalf("expected total 0, got %s", summary.Total.String())
	}
}

func TestCartApplyCouponUnknownCode(t *testing.T) {
	svc, db := setupCartServiceTest(t)
	product := seedCartProduct(t, db, "serum-d", 100000)
	if _, err := svc.AddItem("s1", product.ID); err != nil {
		t.Fatalf("AddItem: %v", err)
	}

	if _, err := svc.ApplyCoupon("s1", "NOPE"); !errors.Is(err, ErrCouponInvalid) {
		t.Fatalf("expected ErrCouponInvalid, got %v", err)
	}
	if summary := svc.Summary("s1"); summary.AppliedCoupon != nil {
		t.Fatalf("cart should hold no coupon after failure")
	}
}

func TestCartApplyCouponExpired(t *testing.T) {
	svc, db := setupCartServiceTest(t)
	product := seedCartProduct(t, db, "serum-e", 100000)
	past := time.Now().Add(-time.Second)
	seedCartCoupon(t, db, models.Coupon{
		Code:      "OLD10",
		Type:      constants.CouponTypePercentage,
		Value:     models.NewMoneyFromDecimal(decimal.NewFromInt(10)),
		ExpiresAt: &past,
		IsActive:  true,
	})
	future := time.Now().Add(time.Hour)
	seedCartCoupon(t, db, models.Coupon{
		Code:      "FRESH10",
		Type:      constants.CouponTypePercentage,
		Value:     models.NewMoneyFromDecimal(decimal.NewFromInt(10)),
		ExpiresAt: &future,
		IsActive:  true,
	})

	if _, err := svc.AddItem("s1", product.ID); err != nil {
		t.Fatalf("AddItem: %v", err)
	}
	if _, err := svc.ApplyCoupon("s1", "OLD10"); !errors.Is(err, ErrCouponExpired) {
		t.Fatalf("expected ErrCouponExpired, got %v", err)
	}
	if _, err := svc.ApplyCoupon("s1", "FRESH10"); err != nil {
		t.Fatalf("coupon expiring in the future should apply, got %v", err)
	}
}

func TestCartApplyCouponUsageLimit(t *testing.T) {
	svc, db := setupCartServiceTest(t)
	product := seedCartProduct(t, db, "serum-f", 100000)
	seedCartCoupon(t, db, models.Coupon{
		Code:       "CAPPED",
		Type:       constants.CouponTypeFixed,
		Value:      models.NewMoneyFromInt(10000),
		UsageLimit: 10,
		UsedCount:  10,
		IsActive:   true,
	})

	if _, err := svc.AddItem("s1", product.ID); err != nil {
		t.Fatalf("AddItem: %v", err)
	}
	if _, err := svc.ApplyCoupon("s1", "CAPPED"); !errors.Is(err, ErrCouponLimitReached) {
		t.Fatalf("expected ErrCouponLimitReached, got %v", err)
	}
}

func TestCartApplyCouponMinPurchase(t *testing.T) {
	svc, db := setupCartServiceTest(t)
	product := seedCartProduct(t, db, "serum-g", 49999)
	seedCartCoupon(t, db, models.Coupon{
		Code:        "MIN50K",
		Type:        constants.CouponTypeFixed,
		Value:       models.NewMoneyFromInt(10000),
		MinPurchase: models.NewMoneyFromInt(50000),
		IsActive:    true,
	})

	if _, err := svc.AddItem("s1", product.ID); err != nil {
		t.Fatalf("AddItem: %v", err)
	}
	_, err := svc.ApplyCoupon("s1", "MIN50K")
	if !errors.Is(err, ErrCouponMinPurchase) {
		t.Fatalf("expected ErrCouponMinPurchase, got %v", err)
	}
	var minErr *MinPurchaseError
	if !errors.As(err, &minErr) {
		t.Fatalf("expected MinPurchaseError, got %T", err)
	}
	want := "minimum purchase of 50000.00 required"
	if minErr.Error() != want {
		t.Fatalf("expected %q, got %q", want, minErr.Error())
	}

	// Exactly at the threshold the coupon applies.
	exact := seedCartProduct(t, db, "topup", 1)
	if _, err := svc.AddItem("s1", exact.ID); err != nil {
		t.Fatalf("AddItem: %v", err)
	}
	if _, err := svc.ApplyCoupon("s1", "MIN50K"); err != nil {
		t.Fatalf("expected coupon to apply at threshold, got %v", err)
	}
}

func TestCartCouponLookupFailure(t *testing.T) {
	svc, db := setupCartServiceTest(t)
	product := seedCartProduct(t, db, "serum-h", 100000)
	if _, err := svc.AddItem("s1", product.ID); err != nil {
		t.Fatalf("AddItem: %v", err)
	}

	svc.couponRepo = failingCouponRepo{}
	if _, err := svc.ApplyCoupon("s1", "ANY"); !errors.Is(err, ErrCouponLookupFailed) {
		t.Fatalf("expected ErrCouponLookupFailed, got %v", err)
	}
	if summary := svc.Summary("s1"); summary.AppliedCoupon != nil || len(summary.Lines) != 1 {
		t.Fatalf("cart must stay unchanged after lookup failure")
	}
}

func TestCartCouponClearedWhenCartEmpties(t *testing.T) {
	svc, db := setupCartServiceTest(t)
	product := seedCartProduct(t, db, "serum-i", 100000)
	seedCartCoupon(t, db, models.Coupon{
		Code:     "STICKY",
		Type:     constants.CouponTypePercentage,
		Value:    models.NewMoneyFromDecimal(decimal.NewFromInt(10)),
		IsActive: true,
	})

	if _, err := svc.AddItem("s1", product.ID); err != nil {
		t.Fatalf("AddItem: %v", err)
	}
	if _, err := svc.ApplyCoupon("s1", "STICKY"); err != nil {
		t.Fatalf("ApplyCoupon: %v", err)
	}

	// Removing the last line drops the coupon with it.
	summary := svc.RemoveItem("s1", product.ID)
	if summary.AppliedCoupon != nil {
		t.Fatalf("coupon should be dropped when the cart empties")
	}

	// Same through Clear.
	if _, err := svc.AddItem("s2", product.ID); err != nil {
		t.Fatalf("AddItem: %v", err)
	}
	if _, err := svc.ApplyCoupon("s2", "STICKY"); err != nil {
		t.Fatalf("ApplyCoupon: %v", err)
	}
	if summary := svc.Clear("s2"); summary.AppliedCoupon != nil {
		t.Fatalf("coupon should be dropped on clear")
	}
}

func TestCartApplyCouponToEmptyCartDoesNotStick(t *testing.T) {
	svc, db := setupCartServiceTest(t)
	seedCartCoupon(t, db, models.Coupon{
		Code:     "FREEBIE",
		Type:     constants.CouponTypeFixed,
		Value:    models.NewMoneyFromInt(5000),
		IsActive: true,
	})

	summary, err := svc.ApplyCoupon("s1", "FREEBIE")
	if err != nil {
		t.Fatalf("ApplyCoupon: %v", err)
	}
	if summary.AppliedCoupon != nil {
		t.Fatalf("coupon must not be held against an empty cart, got %+v", summary.AppliedCoupon)
	}
	if svc.AppliedCoupon("s1") != nil {
		t.Fatalf("coupon must not be held against an empty cart")
	}
	if !summary.Total.Equal(decimal.Zero) {
		t.Fatalf("expected total 0, got %s", summary.Total.String())
	}
}

func TestCartCouponSurvivesPartialRemoval(t *testing.T) {
	svc, db := setupCartServiceTest(t)
	productA := seedCartProduct(t, db, "serum-n", 30000)
	productB := seedCartProduct(t, db, "serum-o", 15000)
	seedCartCoupon(t, db, models.Coupon{
		Code:     "SAVE10",
		Type:     constants.CouponTypePercentage,
		Value:    models.NewMoneyFromInt(10),
		IsActive: true,
	})

	if _, err := svc.AddItem("s1", productA.ID); err != nil {
		t.Fatalf("AddItem: %v", err)
	}
	if _, err := svc.AddItem("s1", productA.ID); err != nil {
		t.Fatalf("AddItem: %v", err)
	}
	if _, err := svc.AddItem("s1", productB.ID); err != nil {
		t.Fatalf("AddItem: %v", err)
	}
	summary, err := svc.ApplyCoupon("s1", "SAVE10")
	if err != nil {
		t.Fatalf("ApplyCoupon: %v", err)
	}
	if !summary.Subtotal.Equal(decimal.NewFromInt(75000)) {
		t.Fatalf("expected subtotal 75000, got %s", summary.Subtotal.String())
	}
	if !summary.DiscountAmount.Equal(decimal.NewFromInt(7500)) {
		t.Fatalf("expected discount 7500, got %s", summary.DiscountAmount.String())
	}
	if !summary.Total.Equal(decimal.NewFromInt(67500)) {
		t.Fatalf("expected total 67500, got %s", summary.Total.String())
	}

	// Dropping one line keeps the cart non-empty: the coupon stays and
	// the totals recompute.
	summary = svc.RemoveItem("s1", productB.ID)
	if summary.AppliedCoupon == nil || summary.AppliedCoupon.Code != "SAVE10" {
		t.Fatalf("coupon should survive while the cart has lines, got %+v", summary.AppliedCoupon)
	}
	if !summary.Subtotal.Equal(decimal.NewFromInt(60000)) {
		t.Fatalf("expected subtotal 60000, got %s", summary.Subtotal.String())
	}
	if !summary.Total.Equal(decimal.NewFromInt(54000)) {
		t.Fatalf("expected total 54000, got %s", summary.Total.String())
	}
}

func TestCartRestartRestoresLinesInOrder(t *testing.T) {
	svc, db := setupCartServiceTest(t)
	first := seedCartProduct(t, db, "serum-p", 30000)
	second := seedCartProduct(t, db, "serum-q", 15000)
	third := seedCartProduct(t, db, "serum-r", 98000)

	if _, err := svc.AddItem("s1", first.ID); err != nil {
		t.Fatalf("AddItem: %v", err)
	}
	svc.UpdateQuantity("s1", first.ID, 2)
	if _, err := svc.AddItem("s1", second.ID); err != nil {
		t.Fatalf("AddItem: %v", err)
	}
	svc.UpdateQuantity("s1", second.ID, 5)
	if _, err := svc.AddItem("s1", third.ID); err != nil {
		t.Fatalf("AddItem: %v", err)
	}

	restarted := NewCartService(
		repository.NewCartRepository(db),
		repository.NewProductRepository(db),
		repository.NewCouponRepository(db),
		NewNotificationService(nil),
	)
	summary := restarted.Summary("s1")
	want := []struct {
		productID uint
		name      string
		price     int64
		quantity  int
	}{
		{first.ID, first.Name, 30000, 2},
		{second.ID, second.Name, 15000, 5},
		{third.ID, third.Name, 98000, 1},
	}
	if len(summary.Lines) != len(want) {
		t.Fatalf("expected %d restored lines, got %d", len(want), len(summary.Lines))
	}
	for i, w := range want {
		line := summary.Lines[i]
		if line.ProductID != w.productID || line.Name != w.name || line.Quantity != w.quantity {
			t.Fatalf("line %d mismatch: got %+v want %+v", i, line, w)
		}
		if !line.Price.Equal(decimal.NewFromInt(w.price)) {
			t.Fatalf("line %d price mismatch: got %s want %d", i, line.Price.String(), w.price)
		}
	}
	if summary.ItemCount != 8 {
		t.Fatalf("expected item count 8, got %d", summary.ItemCount)
	}
}

func TestCartRemoveCouponAlwaysSucceeds(t *testing.T) {
	svc, db := setupCartServiceTest(t)
	product := seedCartProduct(t, db, "serum-j", 100000)
	if _, err := svc.AddItem("s1", product.ID); err != nil {
		t.Fatalf("AddItem: %v", err)
	}

	// No coupon held: still fine.
	summary := svc.RemoveCoupon("s1")
	if summary.AppliedCoupon != nil {
		t.Fatalf("expected no coupon")
	}
	if !summary.Total.Equal(decimal.NewFromInt(100000)) {
		t.Fatalf("expected total 100000, got %s", summary.Total.String())
	}
}

func TestCartCouponNotRestoredAcrossRestart(t *testing.T) {
	svc, db := setupCartServiceTest(t)
	product := seedCartProduct(t, db, "serum-k", 100000)
	seedCartCoupon(t, db, models.Coupon{
		Code:     "VOLATILE",
		Type:     constants.CouponTypeFixed,
		Value:    models.NewMoneyFromInt(5000),
		IsActive: true,
	})

	if _, err := svc.AddItem("s1", product.ID); err != nil {
		t.Fatalf("AddItem: %v", err)
	}
	if _, err := svc.ApplyCoupon("s1", "VOLATILE"); err != nil {
		t.Fatalf("ApplyCoupon: %v", err)
	}

	// A fresh service over the same storage restores lines but not the coupon.
	restarted := NewCartService(
		repository.NewCartRepository(db),
		repository.NewProductRepository(db),
		repository.NewCouponRepository(db),
		NewNotificationService(nil),
	)
	summary := restarted.Summary("s1")
	if len(summary.Lines) != 1 {
		t.Fatalf("expected restored lines, got %d", len(summary.Lines))
	}
	if summary.AppliedCoupon != nil {
		t.Fatalf("coupon must not survive a restart")
	}
	if !summary.Total.Equal(decimal.NewFromInt(100000)) {
		t.Fatalf("expected undiscounted total, got %s", summary.Total.String())
	}
}

func TestCartSessionsAreIsolated(t *testing.T) {
	svc, db := setupCartServiceTest(t)
	product := seedCartProduct(t, db, "serum-l", 100000)
	if _, err := svc.AddItem("s1", product.ID); err != nil {
		t.Fatalf("AddItem: %v", err)
	}
	if summary := svc.Summary("s2"); len(summary.Lines) != 0 {
		t.Fatalf("sessions leaked: s2 has %d lines", len(summary.Lines))
	}
}

func TestCartStorageFailureIsNonFatal(t *testing.T) {
	svc, db := setupCartServiceTest(t)
	product := seedCartProduct(t, db, "serum-m", 100000)

	svc.cartRepo = failingCartRepo{}
	summary, err := svc.AddItem("s1", product.ID)
	if err != nil {
		t.Fatalf("AddItem must survive storage failure, got %v", err)
	}
	if len(summary.Lines) != 1 || summary.ItemCount != 1 {
		t.Fatalf("in-memory cart must still hold the line: %+v", summary)
	}
	summary = svc.UpdateQuantity("s1", product.ID, 3)
	if summary.Lines[0].Quantity != 3 {
		t.Fatalf("expected quantity 3, got %d", summary.Lines[0].Quantity)
	}
}

type failingCartRepo struct{}

func (failingCartRepo) ListBySession(string) ([]models.CartLine, error) {
	return nil, errors.New("storage down")
}

func (failingCartRepo) ReplaceSession(string, []models.CartLine) error {
	return errors.New("storage down")
}

func (failingCartRepo) ClearSession(string) error {
	return errors.New("storage down")
}

func (failingCartRepo) WithTx(tx *gorm.DB) *repository.GormCartRepository {
	return nil
}

type failingCouponRepo struct {
	repository.CouponRepository
}

func (failingCouponRepo) GetActiveByCode(string) (*models.Coupon, error) {
	return nil, errors.New("storage down")
}
