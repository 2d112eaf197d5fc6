package service

import (
	"strings"
	"time"

	"github.com/glowderma/glowderma/internal/constants"
	"github.com/glowderma/glowderma/internal/models"
	"github.com/glowderma/glowderma/internal/repository"

	"github.com/shopspring/decimal"
)

// CouponInput carries create/update fields for the admin console.
type CouponInput struct {
	Code        string
	Type        string
	Value       models.Money
	MinPurchase models.Money
	UsageLimit  int
	ExpiresAt   *time.Time
	IsActive    bool
}

// CouponAdminService manages the coupon catalog.
type CouponAdminService struct {
	couponRepo repository.CouponRepository
}

// NewCouponAdminService creates the coupon admin service.
func NewCouponAdminService(couponRepo repository.CouponRepository) *CouponAdminService {
	return &CouponAdminService{couponRepo: couponRepo}
}

// List pages over coupons.
func (s *CouponAdminService) List(filter repository.CouponListFilter) ([]models.Coupon, int64, error) {
	return s.couponRepo.List(filter)
}

// GetByID fetches a coupon by ID.
func (s *CouponAdminService) GetByID(id uint) (*models.Coupon, error) {
	coupon, err := s.couponRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if coupon == nil {
		return nil, ErrCouponNotFound
	}
	return coupon, nil
}

// Create adds a coupon. Codes are stored uppercased.
func (s *CouponAdminService) Create(input CouponInput) (*models.Coupon, error) {
	code := strings.ToUpper(strings.TrimSpace(input.Code))
	if code == "" {
		return nil, ErrInvalidInput
	}
	if err := validateCouponValue(input.Type, input.Value); err != nil {
		return nil, err
	}

	count, err := s.couponRepo.CountByCode(code, nil)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrCouponCodeTaken
	}

	coupon := &models.Coupon{
		Code:        code,
		Type:        input.Type,
		Value:       input.Value,
		MinPurchase: input.MinPurchase,
		UsageLimit:  input.UsageLimit,
		ExpiresAt:   input.ExpiresAt,
		IsActive:    input.IsActive,
	}
	if err := s.couponRepo.Create(coupon); err != nil {
		return nil, err
	}
	return coupon, nil
}

// Update edits a coupon. The usage counter is never reset here.
func (s *CouponAdminService) Update(id uint, input CouponInput) (*models.Coupon, error) {
	coupon, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	code := strings.ToUpper(strings.TrimSpace(input.Code))
	if code == "" {
		return nil, ErrInvalidInput
	}
	if err := validateCouponValue(input.Type, input.Value); err != nil {
		return nil, err
	}
	count, err := s.couponRepo.CountByCode(code, &id)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrCouponCodeTaken
	}

	coupon.Code = code
	coupon.Type = input.Type
	coupon.Value = input.Value
	coupon.MinPurchase = input.MinPurchase
	coupon.UsageLimit = input.UsageLimit
	coupon.ExpiresAt = input.ExpiresAt
	coupon.IsActive = input.IsActive
	if err := s.couponRepo.Update(coupon); err != nil {
		return nil, err
	}
	return coupon, nil
}

// SetActive flips a coupon's active flag.
func (s *CouponAdminService) SetActive(id uint, active bool) (*models.Coupon, error) {
	coupon, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	coupon.IsActive = active
	if err := s.couponRepo.Update(coupon); err != nil {
		return nil, err
	}
	return coupon, nil
}

// Delete removes a coupon.
func (s *CouponAdminService) Delete(id uint) error {
	if _, err := s.GetByID(id); err != nil {
		return err
	}
	return s.couponRepo.Delete(id)
}

func validateCouponValue(couponType string, value models.Money) error {
	switch couponType {
	case constants.CouponTypePercentage:
		hundred := decimal.NewFromInt(100)
		if !value.IsPositive() || value.GreaterThan(hundred) {
			return ErrCouponValueInvalid
		}
	case constants.CouponTypeFixed:
		if !value.IsPositive() {
			return ErrCouponValueInvalid
		}
	default:
		return ErrCouponValueInvalid
	}
	return nil
}
