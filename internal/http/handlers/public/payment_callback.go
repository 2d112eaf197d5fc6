package public

import (
	"io"
	"net/http"

	"github.com/glowderma/glowderma/internal/logger"
	"github.com/glowderma/glowderma/internal/payment/midtrans"

	"github.com/gin-gonic/gin"
)

// PaymentCallback receives the gateway's async payment notification.
// The gateway expects a bare 200 on success and retries on anything else,
// so replies here skip the normal response envelope.
func (h *Handler) PaymentCallback(c *gin.Context) {
	body, err := io.ReadAll(io.LimitReader(c.Request.Body, 1<<20))
	if err != nil {
		c.String(http.StatusBadRequest, "read failed")
		return
	}

	notification, err := midtrans.ParseCallback(body)
	if err != nil {
		logger.Warnw("payment callback parse failed", "error", err)
		c.String(http.StatusBadRequest, "invalid payload")
		return
	}

	if err := midtrans.VerifyCallback(h.OrderService.GatewayConfig(), notification); err != nil {
		logger.Warnw("payment callback signature rejected", "order_no", notification.OrderID)
		c.String(http.StatusForbidden, "invalid signature")
		return
	}

	if err := h.OrderService.HandlePaymentCallback(notification); err != nil {
		logger.Errorw("payment callback handling failed", "order_no", notification.OrderID, "error", err)
		c.String(http.StatusInternalServerError, "failed")
		return
	}
	c.String(http.StatusOK, "ok")
}
