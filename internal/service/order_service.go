package service

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"net/mail"
	"strings"
	"time"

	"github.com/glowderma/glowderma/internal/config"
	"github.com/glowderma/glowderma/internal/constants"
	"github.com/glowderma/glowderma/internal/logger"
	"github.com/glowderma/glowderma/internal/models"
	"github.com/glowderma/glowderma/internal/payment/midtrans"
	"github.com/glowderma/glowderma/internal/queue"
	"github.com/glowderma/glowderma/internal/repository"

	"github.com/shopspring/decimal"
)

// CheckoutInput carries the customer details for a checkout.
type CheckoutInput struct {
	SessionID       string
	CustomerName    string
	CustomerEmail   string
	CustomerPhone   string
	ShippingAddress map[string]interface{}
	Note            string
	ClientIP        string
}

// CheckoutResult is the created order plus the payment-widget handle.
type CheckoutResult struct {
	Order       *models.Order `json:"order"`
	WidgetToken string        `json:"widget_token,omitempty"`
	RedirectURL string        `json:"redirect_url,omitempty"`
	ClientKey   string        `json:"client_key,omitempty"`
}

// OrderService turns carts into orders and drives their status lifecycle.
type OrderService struct {
	cfg         *config.Config
	orderRepo   repository.OrderRepository
	paymentRepo repository.PaymentRepository
	couponRepo  repository.CouponRepository
	cartService *CartService
	notifier    *NotificationService
	queueClient *queue.Client
}

// NewOrderService creates the order service.
func NewOrderService(
	cfg *config.Config,
	orderRepo repository.OrderRepository,
	paymentRepo repository.PaymentRepository,
	couponRepo repository.CouponRepository,
	cartService *CartService,
	notifier *NotificationService,
	queueClient *queue.Client,
) *OrderService {
	return &OrderService{
		cfg:         cfg,
		orderRepo:   orderRepo,
		paymentRepo: paymentRepo,
		couponRepo:  couponRepo,
		cartService: cartService,
		notifier:    notifier,
		queueClient: queueClient,
	}
}

// Checkout snapshots the session's cart into a pending order and opens a
// payment-widget transaction for it. The cart itself stays intact until
// the payment settles.
func (s *OrderService) Checkout(ctx context.Context, input CheckoutInput) (*CheckoutResult, error) {
	name := strings.TrimSpace(input.CustomerName)
	email := strings.ToLower(strings.TrimSpace(input.CustomerEmail))
	if name == "" || email == "" {
		return nil, ErrCustomerInfoIncomplete
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, ErrCustomerInfoIncomplete
	}

	summary := s.cartService.Summary(input.SessionID)
	if summary.ItemCount == 0 {
		return nil, ErrCartEmpty
	}

	expireMinutes := s.cfg.Order.PaymentExpireMinutes
	if expireMinutes <= 0 {
		expireMinutes = 30
	}
	expiresAt := time.Now().Add(time.Duration(expireMinutes) * time.Minute)

	order := &models.Order{
		OrderNo:        generateOrderNo(),
		SessionID:      input.SessionID,
		CustomerName:   name,
		CustomerEmail:  email,
		CustomerPhone:  strings.TrimSpace(input.CustomerPhone),
		Status:         constants.OrderStatusPendingPayment,
		Currency:       "IDR",
		Subtotal:       summary.Subtotal,
		DiscountAmount: summary.DiscountAmount,
		TotalAmount:    summary.Total,
		Note:           strings.TrimSpace(input.Note),
		ClientIP:       input.ClientIP,
		ExpiresAt:      &expiresAt,
	}
	if input.ShippingAddress != nil {
		order.ShippingAddress = models.JSON(input.ShippingAddress)
	}
	if coupon := s.cartService.AppliedCoupon(input.SessionID); coupon != nil {
		order.CouponID = &coupon.ID
		order.CouponCode = coupon.Code
	}

	items := make([]models.OrderItem, 0, len(summary.Lines))
	for _, line := range summary.Lines {
		items = append(items, models.OrderItem{
			ProductID: line.ProductID,
			Name:      line.Name,
			Image:     line.Image,
			UnitPrice: line.Price,
			Quantity:  line.Quantity,
			TotalPrice: models.NewMoneyFromDecimal(
				line.Price.Mul(decimal.NewFromInt(int64(line.Quantity))),
			),
		})
	}

	if err := s.orderRepo.Create(order, items); err != nil {
		return nil, err
	}
	order.Items = items

	result := &CheckoutResult{Order: order}
	if s.cfg.Payment.Enabled {
		widget, err := s.openPaymentWidget(ctx, order)
		if err != nil {
			logger.Errorw("open payment widget failed", "order_no", order.OrderNo, "error", err)
			return nil, err
		}
		result.WidgetToken = widget.Token
		result.RedirectURL = widget.RedirectURL
		result.ClientKey = s.cfg.Payment.ClientKey
	}

	if s.queueClient != nil {
		delay := time.Until(expiresAt) + time.Minute
		if err := s.queueClient.EnqueueOrderTimeoutCancel(queue.OrderTimeoutCancelPayload{OrderID: order.ID}, delay); err != nil {
			logger.Warnw("enqueue order timeout cancel failed", "order_no", order.OrderNo, "error", err)
		}
	}

	s.notifier.Info("order", fmt.Sprintf("order %s created for %s", order.OrderNo, order.CustomerEmail))
	return result, nil
}

func (s *OrderService) openPaymentWidget(ctx context.Context, order *models.Order) (*midtrans.CreateResult, error) {
	cfg := s.gatewayConfig()
	if err := midtrans.ValidateConfig(cfg); err != nil {
		return nil, ErrPaymentDisabled
	}

	items := make([]midtrans.ItemDetail, 0, len(order.Items)+1)
	for _, item := range order.Items {
		items = append(items, midtrans.ItemDetail{
			ID:       fmt.Sprintf("%d", item.ProductID),
			Name:     item.Name,
			Price:    item.UnitPrice.IntPart(),
			Quantity: item.Quantity,
		})
	}
	if order.DiscountAmount.IsPositive() {
		// the gateway requires item totals to equal the gross amount
		discount := order.Subtotal.Sub(order.TotalAmount.Decimal)
		items = append(items, midtrans.ItemDetail{
			ID:       "DISCOUNT",
			Name:     "Coupon " + order.CouponCode,
			Price:    -discount.IntPart(),
			Quantity: 1,
		})
	}

	expireMinutes := s.cfg.Order.PaymentExpireMinutes
	widget, err := midtrans.CreateSnapTransaction(ctx, cfg, midtrans.CreateInput{
		OrderNo:       order.OrderNo,
		GrossAmount:   order.TotalAmount.IntPart(),
		CustomerName:  order.CustomerName,
		CustomerEmail: order.CustomerEmail,
		CustomerPhone: order.CustomerPhone,
		Items:         items,
		ExpiryMinutes: expireMinutes,
	})
	if err != nil {
		return nil, err
	}

	payment := &models.Payment{
		OrderID:     order.ID,
		Provider:    "midtrans",
		Status:      constants.PaymentStatusPending,
		Amount:      order.TotalAmount,
		Currency:    order.Currency,
		WidgetToken: widget.Token,
	}
	if widget.Raw != nil {
		payment.RawCallback = models.JSON(widget.Raw)
	}
	if err := s.paymentRepo.Create(payment); err != nil {
		return nil, err
	}
	return widget, nil
}

// GatewayConfig exposes the payment gateway config for callback verification.
func (s *OrderService) GatewayConfig() *midtrans.Config {
	return s.gatewayConfig()
}

func (s *OrderService) gatewayConfig() *midtrans.Config {
	return &midtrans.Config{
		BaseURL:     s.cfg.Payment.BaseURL,
		ServerKey:   s.cfg.Payment.ServerKey,
		ClientKey:   s.cfg.Payment.ClientKey,
		CallbackURL: s.cfg.Payment.CallbackURL,
		FinishURL:   s.cfg.Payment.FinishURL,
		Timeout:     time.Duration(s.cfg.Payment.TimeoutMS) * time.Millisecond,
	}
}

// HandlePaymentCallback applies a verified gateway notification to the
// order it references. Unknown orders and repeated notifications are
// swallowed so the gateway's retries stay idempotent.
func (s *OrderService) HandlePaymentCallback(notification *midtrans.CallbackNotification) error {
	order, err := s.orderRepo.GetByOrderNo(notification.OrderID)
	if err != nil {
		return err
	}
	if order == nil {
		logger.Warnw("payment callback for unknown order", "order_no", notification.OrderID)
		return nil
	}

	switch {
	case notification.IsPaid():
		return s.markPaid(order, notification)
	case notification.IsFinalFailure():
		return s.markFailed(order, notification)
	default:
		logger.Infow("payment callback pending",
			"order_no", order.OrderNo,
			"transaction_status", notification.TransactionStatus)
		return nil
	}
}

// markPaid settles the order: status flips to paid, the coupon redemption
// is counted, and the originating cart is cleared.
func (s *OrderService) markPaid(order *models.Order, notification *midtrans.CallbackNotification) error {
	if order.Status == constants.OrderStatusPaid {
		return nil
	}
	if order.Status != constants.OrderStatusPendingPayment {
		return ErrOrderStatusConflict
	}

	now := time.Now()
	if err := s.orderRepo.UpdateStatus(order.ID, constants.OrderStatusPaid, map[string]interface{}{
		"paid_at": now,
	}); err != nil {
		return err
	}

	if payment, err := s.paymentRepo.GetLatestByOrderID(order.ID); err == nil && payment != nil {
		payment.Status = constants.PaymentStatusSuccess
		payment.TransactionID = notification.TransactionID
		payment.PaidAt = &now
		if err := s.paymentRepo.Update(payment); err != nil {
			logger.Warnw("payment record update failed", "order_no", order.OrderNo, "error", err)
		}
	}

	if order.CouponID != nil {
		if err := s.couponRepo.IncrementUsedCount(*order.CouponID, 1); err != nil {
			logger.Warnw("coupon usage increment failed", "order_no", order.OrderNo, "coupon_id", *order.CouponID, "error", err)
		}
	}

	if order.SessionID != "" {
		s.cartService.Clear(order.SessionID)
	}

	s.notifier.Info("order", fmt.Sprintf("order %s paid", order.OrderNo))
	return nil
}

func (s *OrderService) markFailed(order *models.Order, notification *midtrans.CallbackNotification) error {
	if order.Status != constants.OrderStatusPendingPayment {
		return nil
	}
	now := time.Now()
	if err := s.orderRepo.UpdateStatus(order.ID, constants.OrderStatusCanceled, map[string]interface{}{
		"canceled_at": now,
	}); err != nil {
		return err
	}
	if payment, err := s.paymentRepo.GetLatestByOrderID(order.ID); err == nil && payment != nil {
		payment.Status = constants.PaymentStatusFailed
		payment.TransactionID = notification.TransactionID
		if err := s.paymentRepo.Update(payment); err != nil {
			logger.Warnw("payment record update failed", "order_no", order.OrderNo, "error", err)
		}
	}
	s.notifier.Warn("order", fmt.Sprintf("order %s payment failed (%s)", order.OrderNo, notification.TransactionStatus))
	return nil
}

// CancelExpired cancels the order if it is still pending past its deadline.
func (s *OrderService) CancelExpired(orderID uint) error {
	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return err
	}
	if order == nil || order.Status != constants.OrderStatusPendingPayment {
		return nil
	}
	if order.ExpiresAt == nil || order.ExpiresAt.After(time.Now()) {
		return nil
	}
	now := time.Now()
	if err := s.orderRepo.UpdateStatus(order.ID, constants.OrderStatusCanceled, map[string]interface{}{
		"canceled_at": now,
	}); err != nil {
		return err
	}
	s.notifier.Info("order", fmt.Sprintf("order %s canceled after payment timeout", order.OrderNo))
	return nil
}

// SweepExpired cancels every pending order past its deadline. Used by the
// worker as a safety net behind the per-order delayed tasks.
func (s *OrderService) SweepExpired(limit int) (int, error) {
	orders, err := s.orderRepo.ListExpiredPending(time.Now(), limit)
	if err != nil {
		return 0, err
	}
	canceled := 0
	for i := range orders {
		if err := s.CancelExpired(orders[i].ID); err != nil {
			logger.Warnw("expired order cancel failed", "order_no", orders[i].OrderNo, "error", err)
			continue
		}
		canceled++
	}
	return canceled, nil
}

// GetByOrderNoAndEmail is the public order lookup: the customer must
// present the email used at checkout.
func (s *OrderService) GetByOrderNoAndEmail(orderNo, email string) (*models.Order, error) {
	order, err := s.orderRepo.GetByOrderNoAndEmail(strings.TrimSpace(orderNo), email)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	return order, nil
}

// AdminGet fetches an order for the admin console.
func (s *OrderService) AdminGet(id uint) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	return order, nil
}

// AdminList pages over orders.
func (s *OrderService) AdminList(filter repository.OrderListFilter) ([]models.Order, int64, error) {
	return s.orderRepo.ListAdmin(filter)
}

// UpdateShipping records courier details and moves the order to shipped.
func (s *OrderService) UpdateShipping(id uint, courier, trackingNumber string) (*models.Order, error) {
	order, err := s.AdminGet(id)
	if err != nil {
		return nil, err
	}
	switch order.Status {
	case constants.OrderStatusPaid, constants.OrderStatusProcessing, constants.OrderStatusShipped:
	default:
		return nil, ErrOrderStatusConflict
	}

	if err := s.orderRepo.UpdateStatus(id, constants.OrderStatusShipped, map[string]interface{}{
		"courier":         strings.TrimSpace(courier),
		"tracking_number": strings.TrimSpace(trackingNumber),
	}); err != nil {
		return nil, err
	}
	s.notifier.Info("order", fmt.Sprintf("order %s shipped via %s", order.OrderNo, courier))
	return s.AdminGet(id)
}

// AdminCancel cancels a pending order from the console.
func (s *OrderService) AdminCancel(id uint) (*models.Order, error) {
	order, err := s.AdminGet(id)
	if err != nil {
		return nil, err
	}
	if order.Status != constants.OrderStatusPendingPayment {
		return nil, ErrOrderStatusConflict
	}
	now := time.Now()
	if err := s.orderRepo.UpdateStatus(id, constants.OrderStatusCanceled, map[string]interface{}{
		"canceled_at": now,
	}); err != nil {
		return nil, err
	}
	return s.AdminGet(id)
}

// MarkCompleted closes out a shipped order.
func (s *OrderService) MarkCompleted(id uint) (*models.Order, error) {
	order, err := s.AdminGet(id)
	if err != nil {
		return nil, err
	}
	if order.Status != constants.OrderStatusShipped {
		return nil, ErrOrderStatusConflict
	}
	if err := s.orderRepo.UpdateStatus(id, constants.OrderStatusCompleted, nil); err != nil {
		return nil, err
	}
	return s.AdminGet(id)
}

func generateOrderNo() string {
	now := time.Now().Format("20060102150405")
	return fmt.Sprintf("GD%s%s", now, randNumeric(6))
}

func randNumeric(length int) string {
	var b strings.Builder
	for i := 0; i < length; i++ {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			b.WriteString("0")
			continue
		}
		fmt.Fprintf(&b, "%d", n.Int64())
	}
	return b.String()
}
