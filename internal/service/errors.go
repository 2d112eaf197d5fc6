package service

import "errors"

var (
	// Auth
	ErrAdminNotFound      = errors.New("admin not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrPasswordTooShort   = errors.New("password too short")
	ErrCaptchaInvalid     = errors.New("captcha invalid")

	// Catalog
	ErrCategoryNotFound    = errors.New("category not found")
	ErrCategorySlugTaken   = errors.New("category slug already exists")
	ErrCategoryHasChildren = errors.New("category has children")
	ErrCategoryHasProducts = errors.New("category has products")
	ErrCategoryCycle       = errors.New("category parent would form a cycle")
	ErrProductNotFound     = errors.New("product not found")
	ErrProductInactive     = errors.New("product not available")
	ErrProductSlugTaken    = errors.New("product slug already exists")
	ErrInvalidPrice        = errors.New("invalid price")
	ErrInvalidPercentage   = errors.New("invalid percentage")

	// Posts
	ErrPostNotFound  = errors.New("post not found")
	ErrPostSlugTaken = errors.New("post slug already exists")

	// Cart and coupons
	ErrCouponInvalid       = errors.New("invalid or expired coupon")
	ErrCouponExpired       = errors.New("coupon expired")
	ErrCouponLimitReached  = errors.New("usage limit reached")
	ErrCouponMinPurchase   = errors.New("minimum purchase not met")
	ErrCouponLookupFailed  = errors.New("error validating coupon")
	ErrCouponCodeTaken     = errors.New("coupon code already exists")
	ErrCouponNotFound      = errors.New("coupon not found")
	ErrCouponValueInvalid  = errors.New("coupon value invalid")

	// Orders
	ErrCartEmpty              = errors.New("cart is empty")
	ErrOrderNotFound          = errors.New("order not found")
	ErrOrderStatusConflict    = errors.New("order status does not allow this operation")
	ErrCustomerInfoIncomplete = errors.New("customer name and email are required")
	ErrPaymentDisabled        = errors.New("payment gateway is not configured")

	// Assistant
	ErrAssistantDisabled = errors.New("assistant is not configured")

	ErrInvalidInput = errors.New("invalid input")
)
