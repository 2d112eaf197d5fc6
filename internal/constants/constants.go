package constants

// Order status constants
const (
	OrderStatusPendingPayment = "pending_payment"
	OrderStatusPaid           = "paid"
	OrderStatusProcessing     = "processing"
	OrderStatusShipped        = "shipped"
	OrderStatusCompleted      = "completed"
	OrderStatusCanceled       = "canceled"
)

// Coupon type constants
const (
	CouponTypeFixed      = "fixed"
	CouponTypePercentage = "percentage"
)

// Payment status constants
const (
	PaymentStatusInitiated = "initiated"
	PaymentStatusPending   = "pending"
	PaymentStatusSuccess   = "success"
	PaymentStatusFailed    = "failed"
	PaymentStatusExpired   = "expired"
)

// Notification severity constants
const (
	NotifySeverityInfo    = "info"
	NotifySeveritySuccess = "success"
	NotifySeverityWarning = "warning"
	NotifySeverityError   = "error"
)

// Post type constants
const (
	PostTypeBlog   = "blog"
	PostTypeNotice = "notice"
)

// Queue name constants
const (
	QueueDefault  = "default"
	QueueCritical = "critical"
)
