package service

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"github.com/glowderma/glowderma/internal/constants"
	"github.com/glowderma/glowderma/internal/models"
	"github.com/glowderma/glowderma/internal/repository"
)

func setupCouponAdminTest(t *testing.T) *CouponAdminService {
	t.Helper()

	dsn := fmt.Sprintf("file:coupon_admin_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Coupon{}); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}
	return NewCouponAdminService(repository.NewCouponRepository(db))
}

func TestCouponCreateNormalizesCode(t *testing.T) {
	svc := setupCouponAdminTest(t)

	coupon, err := svc.Create(CouponInput{
		Code:     "  glow10 ",
		Type:     constants.CouponTypePercentage,
		Value:    models.NewMoneyFromInt(10),
		IsActive: true,
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if coupon.Code != "GLOW10" {
		t.Fatalf("code want GLOW10 got %s", coupon.Code)
	}

	if _, err := svc.Create(CouponInput{
		Code:  "   ",
		Type:  constants.CouponTypePercentage,
		Value: models.NewMoneyFromInt(10),
	}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("blank code want ErrInvalidInput got %v", err)
	}
}

func TestCouponCreateRejectsDuplicateCode(t *testing.T) {
	svc := setupCouponAdminTest(t)

	if _, err := svc.Create(CouponInput{
		Code:  "SAVE50K",
		Type:  constants.CouponTypeFixed,
		Value: models.NewMoneyFromInt(50000),
	}); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if _, err := svc.Create(CouponInput{
		Code:  "save50k",
		Type:  constants.CouponTypeFixed,
		Value: models.NewMoneyFromInt(25000),
	}); !errors.Is(err, ErrCouponCodeTaken) {
		t.Fatalf("duplicate code want ErrCouponCodeTaken got %v", err)
	}
}

func TestCouponValueValidation(t *testing.T) {
	svc := setupCouponAdminTest(t)

	cases := []struct {
		name       string
		couponType string
		value      int64
		wantErr    bool
	}{
		{"percentage zero", constants.CouponTypePercentage, 0, true},
		{"percentage negative", constants.CouponTypePercentage, -5, true},
		{"percentage over hundred", constants.CouponTypePercentage, 101, true},
		{"percentage full", constants.CouponTypePercentage, 100, false},
		{"fixed zero", constants.CouponTypeFixed, 0, true},
		{"fixed positive", constants.CouponTypeFixed, 25000, false},
		{"unknown type", "bogus", 10, true},
	}
	for i, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Create(CouponInput{
				Code:  fmt.Sprintf("VAL%d", i),
				Type:  tc.couponType,
				Value: models.NewMoneyFromInt(tc.value),
			})
			if tc.wantErr {
				if !errors.Is(err, ErrCouponValueInvalid) {
					t.Fatalf("want ErrCouponValueInvalid got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("create failed: %v", err)
			}
		})
	}
}

func TestCouponUpdateKeepsUsageCounter(t *testing.T) {
	svc := setupCouponAdminTest(t)

	coupon, err := svc.Create(CouponInput{
		Code:     "LOYAL15",
		Type:     constants.CouponTypePercentage,
		Value:    models.NewMoneyFromInt(15),
		IsActive: true,
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if err := svc.couponRepo.IncrementUsedCount(coupon.ID, 1); err != nil {
		t.Fatalf("increment usage failed: %v", err)
	}

	updated, err := svc.Update(coupon.ID, CouponInput{
		Code:     "LOYAL20",
		Type:     constants.CouponTypePercentage,
		Value:    models.NewMoneyFromInt(20),
		IsActive: true,
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Code != "LOYAL20" {
		t.Fatalf("code want LOYAL20 got %s", updated.Code)
	}
	if updated.UsedCount != 1 {
		t.Fatalf("used count want 1 got %d", updated.UsedCount)
	}
}

func TestCouponSetActiveAndDelete(t *testing.T) {
	svc := setupCouponAdminTest(t)

	coupon, err := svc.Create(CouponInput{
		Code:     "TOGGLE",
		Type:     constants.CouponTypeFixed,
		Value:    models.NewMoneyFromInt(10000),
		IsActive: true,
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	toggled, err := svc.SetActive(coupon.ID, false)
	if err != nil {
		t.Fatalf("set active failed: %v", err)
	}
	if toggled.IsActive {
		t.Fatalf("coupon should be inactive")
	}

	if err := svc.Delete(coupon.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, err := svc.GetByID(coupon.ID); !errors.Is(err, ErrCouponNotFound) {
		t.Fatalf("want ErrCouponNotFound got %v", err)
	}

	if err := svc.Delete(9999); !errors.Is(err, ErrCouponNotFound) {
		t.Fatalf("delete missing want ErrCouponNotFound got %v", err)
	}
}
