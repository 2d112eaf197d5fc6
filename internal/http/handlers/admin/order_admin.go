package admin

import (
	"strconv"
	"time"

	"github.com/glowderma/glowderma/internal/http/response"
	"github.com/glowderma/glowderma/internal/repository"
	"github.com/glowderma/glowderma/internal/service"

	"github.com/gin-gonic/gin"
)

// ShippingRequest records courier details for an order.
type ShippingRequest struct {
	Courier        string `json:"courier" binding:"required"`
	TrackingNumber string `json:"tracking_number" binding:"required"`
}

var orderErrorRules = []mappedHandlerError{
	{target: service.ErrOrderNotFound, code: response.CodeNotFound, msg: "order not found"},
	{target: service.ErrOrderStatusConflict, code: response.CodeConflict, msg: "order status does not allow this operation"},
}

// ListOrders pages over orders with filtering.
func (h *Handler) ListOrders(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = normalizePagination(page, pageSize)

	filter := repository.OrderListFilter{
		Page:     page,
		PageSize: pageSize,
		Status:   c.Query("status"),
		OrderNo:  c.Query("order_no"),
		Email:    c.Query("email"),
	}
	if from := c.Query("created_from"); from != "" {
		if t, err := time.Parse(time.RFC3339, from); err == nil {
			filter.CreatedFrom = &t
		}
	}
	if to := c.Query("created_to"); to != "" {
		if t, err := time.Parse(time.RFC3339, to); err == nil {
			filter.CreatedTo = &t
		}
	}

	orders, total, err := h.OrderService.AdminList(filter)
	if err != nil {
		respondError(c, response.CodeInternal, "failed to load orders", err)
		return
	}
	response.SuccessWithPage(c, gin.H{"orders": orders}, response.NewPagination(page, pageSize, total))
}

// GetOrder returns one order by ID.
func (h *Handler) GetOrder(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	order, err := h.OrderService.AdminGet(id)
	if err != nil {
		respondWithMappedError(c, err, orderErrorRules, response.CodeInternal, "failed to load order")
		return
	}
	response.Success(c, gin.H{"order": order})
}

// UpdateShipping records courier details and moves the order to shipped.
func (h *Handler) UpdateShipping(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req ShippingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "courier and tracking_number are required")
		return
	}

	order, err := h.OrderService.UpdateShipping(id, req.Courier, req.TrackingNumber)
	if err != nil {
		respondWithMappedError(c, err, orderErrorRules, response.CodeInternal, "shipping update failed")
		return
	}
	response.Success(c, gin.H{"order": order})
}

// CancelOrder cancels a pending order.
func (h *Handler) CancelOrder(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	order, err := h.OrderService.AdminCancel(id)
	if err != nil {
		respondWithMappedError(c, err, orderErrorRules, response.CodeInternal, "order cancel failed")
		return
	}
	response.Success(c, gin.H{"order": order})
}

// CompleteOrder closes out a shipped order.
func (h *Handler) CompleteOrder(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	order, err := h.OrderService.MarkCompleted(id)
	if err != nil {
		respondWithMappedError(c, err, orderErrorRules, response.CodeInternal, "order completion failed")
		return
	}
	response.Success(c, gin.H{"order": order})
}
