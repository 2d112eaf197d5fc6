package service

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/glowderma/glowderma/internal/constants"
	"github.com/glowderma/glowderma/internal/logger"
	"github.com/glowderma/glowderma/internal/models"
	"github.com/glowderma/glowderma/internal/repository"

	"github.com/shopspring/decimal"
)

// MinPurchaseError carries the coupon threshold for the user-facing message.
type MinPurchaseError struct {
	Min models.Money
}

func (e *MinPurchaseError) Error() string {
	return fmt.Sprintf("minimum purchase of %s required", e.Min.String())
}

// Unwrap lets callers match with errors.Is(err, ErrCouponMinPurchase).
func (e *MinPurchaseError) Unwrap() error { return ErrCouponMinPurchase }

// CartLineView is one cart line in a summary response.
type CartLineView struct {
	ProductID uint         `json:"product_id"`
	Name      string       `json:"name"`
	Price     models.Money `json:"price"`
	Image     string       `json:"image"`
	Quantity  int          `json:"quantity"`
}

// AppliedCouponView describes the coupon currently held by a cart.
type AppliedCouponView struct {
	Code  string       `json:"code"`
	Type  string       `json:"type"`
	Value models.Money `json:"value"`
}

// CartSummary is the full derived state of one session's cart.
type CartSummary struct {
	SessionID      string             `json:"session_id"`
	Lines          []CartLineView     `json:"lines"`
	ItemCount      int                `json:"item_count"`
	Subtotal       models.Money       `json:"subtotal"`
	DiscountAmount models.Money       `json:"discount_amount"`
	Total          models.Money       `json:"total"`
	AppliedCoupon  *AppliedCouponView `json:"applied_coupon"`
}

// cartState is the authoritative in-memory cart for one session.
// Lines keep insertion order. The coupon lives only in memory and is
// never restored from storage.
type cartState struct {
	lines    []models.CartLine
	coupon   *models.Coupon
	restored bool
}

// CartService owns per-session cart state and the coupon-discount math.
// Persistence is best effort: the line snapshot is rewritten after every
// mutation, and storage failures are logged and otherwise ignored.
type CartService struct {
	mu       sync.Mutex
	sessions map[string]*cartState

	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
	couponRepo  repository.CouponRepository
	notifier    *NotificationService
}

// NewCartService creates the cart service.
func NewCartService(cartRepo repository.CartRepository, productRepo repository.ProductRepository, couponRepo repository.CouponRepository, notifier *NotificationService) *CartService {
	return &CartService{
		sessions:    make(map[string]*cartState),
		cartRepo:    cartRepo,
		productRepo: productRepo,
		couponRepo:  couponRepo,
		notifier:    notifier,
	}
}

// stateLocked returns the session's cart, restoring the line snapshot from
// storage on first access. A read failure starts the session empty.
func (s *CartService) stateLocked(sessionID string) *cartState {
	if st, ok := s.sessions[sessionID]; ok {
		return st
	}
	st := &cartState{}
	if s.cartRepo != nil {
		lines, err := s.cartRepo.ListBySession(sessionID)
		if err != nil {
			logger.Warnw("cart restore failed, starting empty", "session_id", sessionID, "error", err)
		} else {
			st.lines = lines
		}
	}
	st.restored = true
	s.sessions[sessionID] = st
	return st
}

// persistLocked rewrites the session's line snapshot. Failures are non-fatal.
func (s *CartService) persistLocked(sessionID string, st *cartState) {
	if s.cartRepo == nil {
		return
	}
	snapshot := make([]models.CartLine, len(st.lines))
	copy(snapshot, st.lines)
	if err := s.cartRepo.ReplaceSession(sessionID, snapshot); err != nil {
		logger.Warnw("cart persist failed", "session_id", sessionID, "error", err)
	}
}

// invalidateCouponLocked drops the coupon when the cart has become empty.
// A coupon cannot persist against an empty cart.
func (s *CartService) invalidateCouponLocked(st *cartState) {
	if len(st.lines) == 0 && st.coupon != nil {
		st.coupon = nil
	}
}

// AddItem adds one unit of the product to the session's cart. An existing
// line has its quantity incremented; a new line snapshots the product's
// name, price and image at add time.
func (s *CartService) AddItem(sessionID string, productID uint) (*CartSummary, error) {
	if productID == 0 {
		return nil, ErrProductNotFound
	}
	product, err := s.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	if !product.IsActive {
		return nil, ErrProductInactive
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	st := s.stateLocked(sessionID)
	found := false
	for i := range st.lines {
		if st.lines[i].ProductID == product.ID {
			st.lines[i].Quantity++
			found = true
			break
		}
	}
	if !found {
		st.lines = append(st.lines, models.CartLine{
			SessionID: sessionID,
			ProductID: product.ID,
			Name:      product.Name,
			Price:     product.Price,
			Image:     product.FirstImage(),
			Quantity:  1,
		})
	}
	s.persistLocked(sessionID, st)
	return s.summaryLocked(sessionID, st), nil
}

// RemoveItem deletes the line with the given product ID. Absent lines are
// a no-op, not an error.
func (s *CartService) RemoveItem(sessionID string, productID uint) *CartSummary {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := s.stateLocked(sessionID)
	for i := range st.lines {
		if st.lines[i].ProductID == productID {
			st.lines = append(st.lines[:i], st.lines[i+1:]...)
			s.invalidateCouponLocked(st)
			s.persistLocked(sessionID, st)
			break
		}
	}
	return s.summaryLocked(sessionID, st)
}

// UpdateQuantity sets a line's quantity to an absolute value. Quantities
// below one are rejected silently; removal must go through RemoveItem.
func (s *CartService) UpdateQuantity(sessionID string, productID uint, quantity int) *CartSummary {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := s.stateLocked(sessionID)
	if quantity < 1 {
		return s.summaryLocked(sessionID, st)
	}
	for i := range st.lines {
		if st.lines[i].ProductID == productID {
			st.lines[i].Quantity = quantity
			s.persistLocked(sessionID, st)
			break
		}
	}
	return s.summaryLocked(sessionID, st)
}

// Clear empties the cart and drops any applied coupon.
func (s *CartService) Clear(sessionID string) *CartSummary {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := s.stateLocked(sessionID)
	st.lines = nil
	st.coupon = nil
	s.persistLocked(sessionID, st)
	return s.summaryLocked(sessionID, st)
}

// ApplyCoupon validates the code against the coupon catalog and, on
// success, holds it on the cart. Checks run in order and short-circuit:
// existence, expiration, usage limit, minimum purchase. Lookup failures
// surface as a generic validation error and leave the cart unchanged.
func (s *CartService) ApplyCoupon(sessionID, code string) (*CartSummary, error) {
	normalized := strings.ToUpper(strings.TrimSpace(code))
	if normalized == "" {
		s.notifyCouponFailure(sessionID, ErrCouponInvalid)
		return nil, ErrCouponInvalid
	}

	coupon, err := s.couponRepo.GetActiveByCode(normalized)
	if err != nil {
		logger.Warnw("coupon lookup failed", "session_id", sessionID, "code", normalized, "error", err)
		s.notifyCouponFailure(sessionID, ErrCouponLookupFailed)
		return nil, ErrCouponLookupFailed
	}
	if coupon == nil || !couponShapeValid(coupon) {
		s.notifyCouponFailure(sessionID, ErrCouponInvalid)
		return nil, ErrCouponInvalid
	}
	if coupon.ExpiresAt != nil && coupon.ExpiresAt.Before(time.Now()) {
		s.notifyCouponFailure(sessionID, ErrCouponExpired)
		return nil, ErrCouponExpired
	}
	if coupon.UsageLimit > 0 && coupon.UsedCount >= coupon.UsageLimit {
		s.notifyCouponFailure(sessionID, ErrCouponLimitReached)
		return nil, ErrCouponLimitReached
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	st := s.stateLocked(sessionID)
	subtotal := subtotalOf(st.lines)
	if coupon.MinPurchase.IsPositive() && subtotal.LessThan(coupon.MinPurchase.Decimal) {
		minErr := &MinPurchaseError{Min: coupon.MinPurchase}
		s.notifyCouponFailure(sessionID, minErr)
		return nil, minErr
	}

	st.coupon = coupon
	s.invalidateCouponLocked(st)
	if st.coupon != nil {
		s.notifier.Info("cart", fmt.Sprintf("coupon %s applied", coupon.Code))
	}
	return s.summaryLocked(sessionID, st), nil
}

// RemoveCoupon clears the applied coupon unconditionally.
func (s *CartService) RemoveCoupon(sessionID string) *CartSummary {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := s.stateLocked(sessionID)
	st.coupon = nil
	s.notifier.Info("cart", "coupon removed")
	return s.summaryLocked(sessionID, st)
}

// AppliedCoupon returns a copy of the coupon currently held by the
// session's cart, or nil.
func (s *CartService) AppliedCoupon(sessionID string) *models.Coupon {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := s.stateLocked(sessionID)
	if st.coupon == nil {
		return nil
	}
	coupon := *st.coupon
	return &coupon
}

// Summary returns the session's derived cart state without mutating it.
func (s *CartService) Summary(sessionID string) *CartSummary {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := s.stateLocked(sessionID)
	return s.summaryLocked(sessionID, st)
}

func (s *CartService) notifyCouponFailure(sessionID string, err error) {
	s.notifier.Warn("cart", err.Error())
}

// summaryLocked computes the derived totals. The discount amount is the
// raw computed value and may exceed the subtotal for a large fixed
// coupon; only the final total is clamped at zero.
func (s *CartService) summaryLocked(sessionID string, st *cartState) *CartSummary {
	subtotal := subtotalOf(st.lines)

	discount := decimal.Zero
	var appliedView *AppliedCouponView
	if st.coupon != nil {
		switch st.coupon.Type {
		case constants.CouponTypePercentage:
			discount = subtotal.Mul(st.coupon.Value.Decimal).Div(decimal.NewFromInt(100))
		case constants.CouponTypeFixed:
			discount = st.coupon.Value.Decimal
		}
		appliedView = &AppliedCouponView{
			Code:  st.coupon.Code,
			Type:  st.coupon.Type,
			Value: st.coupon.Value,
		}
	}

	total := subtotal.Sub(discount)
	if total.IsNegative() {
		total = decimal.Zero
	}

	itemCount := 0
	lines := make([]CartLineView, 0, len(st.lines))
	for _, line := range st.lines {
		itemCount += line.Quantity
		lines = append(lines, CartLineView{
			ProductID: line.ProductID,
			Name:      line.Name,
			Price:     line.Price,
			Image:     line.Image,
			Quantity:  line.Quantity,
		})
	}

	return &CartSummary{
		SessionID:      sessionID,
		Lines:          lines,
		ItemCount:      itemCount,
		Subtotal:       models.NewMoneyFromDecimal(subtotal),
		DiscountAmount: models.NewMoneyFromDecimal(discount),
		Total:          models.NewMoneyFromDecimal(total),
		AppliedCoupon:  appliedView,
	}
}

// subtotalOf sums price×quantity over all lines.
func subtotalOf(lines []models.CartLine) decimal.Decimal {
	subtotal := decimal.Zero
	for _, line := range lines {
		subtotal = subtotal.Add(line.Price.Decimal.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}
	return subtotal
}

// couponShapeValid fails closed on malformed coupon rows so bad data is
// reported as "not found" instead of leaking into the arithmetic.
func couponShapeValid(coupon *models.Coupon) bool {
	switch coupon.Type {
	case constants.CouponTypePercentage:
		hundred := decimal.NewFromInt(100)
		return coupon.Value.IsPositive() && !coupon.Value.GreaterThan(hundred)
	case constants.CouponTypeFixed:
		return coupon.Value.IsPositive()
	}
	return false
}
