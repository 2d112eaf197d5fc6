package public

import (
	"github.com/glowderma/glowderma/internal/http/response"
	"github.com/glowderma/glowderma/internal/service"

	"github.com/gin-gonic/gin"
)

// CheckoutRequest carries the customer details for checkout.
type CheckoutRequest struct {
	CustomerName    string                 `json:"customer_name" binding:"required"`
	CustomerEmail   string                 `json:"customer_email" binding:"required"`
	CustomerPhone   string                 `json:"customer_phone"`
	ShippingAddress map[string]interface{} `json:"shipping_address"`
	Note            string                 `json:"note"`
}

// Checkout snapshots the cart into a pending order and returns the
// payment-widget handle.
func (h *Handler) Checkout(c *gin.Context) {
	var req CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "customer_name and customer_email are required")
		return
	}

	result, err := h.OrderService.Checkout(c.Request.Context(), service.CheckoutInput{
		SessionID:       cartSessionID(c),
		CustomerName:    req.CustomerName,
		CustomerEmail:   req.CustomerEmail,
		CustomerPhone:   req.CustomerPhone,
		ShippingAddress: req.ShippingAddress,
		Note:            req.Note,
		ClientIP:        c.ClientIP(),
	})
	if err != nil {
		respondWithMappedError(c, err, checkoutErrorRules, response.CodeInternal, "checkout failed")
		return
	}
	response.Success(c, result)
}

// LookupOrder is the guest order lookup: order number plus the checkout email.
func (h *Handler) LookupOrder(c *gin.Context) {
	orderNo := c.Query("order_no")
	email := c.Query("email")
	if orderNo == "" || email == "" {
		response.BadRequest(c, "order_no and email are required")
		return
	}

	order, err := h.OrderService.GetByOrderNoAndEmail(orderNo, email)
	if err != nil {
		respondWithMappedError(c, err, checkoutErrorRules, response.CodeInternal, "failed to load order")
		return
	}
	response.Success(c, gin.H{"order": order})
}
