package public

import (
	"errors"
	"strconv"

	"github.com/glowderma/glowderma/internal/http/response"
	"github.com/glowderma/glowderma/internal/service"

	"github.com/gin-gonic/gin"
)

// AddCartItemRequest adds one unit of a product.
type AddCartItemRequest struct {
	ProductID uint `json:"product_id" binding:"required"`
}

// UpdateQuantityRequest sets a line's absolute quantity. Values below
// one are not a binding error; the engine ignores them and the
// unchanged summary comes back.
type UpdateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// ApplyCouponRequest applies a coupon code to the cart.
type ApplyCouponRequest struct {
	Code string `json:"code" binding:"required"`
}

// GetCart returns the session's cart summary.
func (h *Handler) GetCart(c *gin.Context) {
	response.Success(c, h.CartService.Summary(cartSessionID(c)))
}

// AddCartItem adds one unit of a product to the cart.
func (h *Handler) AddCartItem(c *gin.Context) {
	var req AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "product_id is required")
		return
	}

	summary, err := h.CartService.AddItem(cartSessionID(c), req.ProductID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrProductNotFound), errors.Is(err, service.ErrProductInactive):
			response.NotFound(c, "product not found")
		default:
			respondError(c, response.CodeInternal, "failed to add item", err)
		}
		return
	}
	response.Success(c, summary)
}

// UpdateCartItem sets a line's quantity. Quantities below one are
// ignored and the unchanged summary is returned.
func (h *Handler) UpdateCartItem(c *gin.Context) {
	productID, err := strconv.ParseUint(c.Param("product_id"), 10, 64)
	if err != nil || productID == 0 {
		response.BadRequest(c, "invalid product id")
		return
	}
	var req UpdateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "quantity is required")
		return
	}
	response.Success(c, h.CartService.UpdateQuantity(cartSessionID(c), uint(productID), req.Quantity))
}

// RemoveCartItem deletes a line from the cart.
func (h *Handler) RemoveCartItem(c *gin.Context) {
	productID, err := strconv.ParseUint(c.Param("product_id"), 10, 64)
	if err != nil || productID == 0 {
		response.BadRequest(c, "invalid product id")
		return
	}
	response.Success(c, h.CartService.RemoveItem(cartSessionID(c), uint(productID)))
}

// ClearCart empties the cart and drops any applied coupon.
func (h *Handler) ClearCart(c *gin.Context) {
	response.Success(c, h.CartService.Clear(cartSessionID(c)))
}

// ApplyCoupon validates and applies a coupon code to the cart.
func (h *Handler) ApplyCoupon(c *gin.Context) {
	var req ApplyCouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "code is required")
		return
	}

	summary, err := h.CartService.ApplyCoupon(cartSessionID(c), req.Code)
	if err != nil {
		respondCouponError(c, err)
		return
	}
	response.Success(c, summary)
}

// RemoveCoupon clears the applied coupon.
func (h *Handler) RemoveCoupon(c *gin.Context) {
	response.Success(c, h.CartService.RemoveCoupon(cartSessionID(c)))
}
