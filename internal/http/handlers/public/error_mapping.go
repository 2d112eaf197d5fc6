package public

import (
	"errors"

	"github.com/glowderma/glowderma/internal/http/response"
	"github.com/glowderma/glowderma/internal/logger"
	"github.com/glowderma/glowderma/internal/service"

	"github.com/gin-gonic/gin"
)

// mappedHandlerError maps a service error onto an API error response.
type mappedHandlerError struct {
	target error
	code   int
	msg    string
}

func respondError(c *gin.Context, code int, msg string, err error) {
	if err != nil {
		logger.Warnw("request failed", "path", c.FullPath(), "msg", msg, "error", err)
	}
	response.Error(c, code, msg)
}

func respondWithMappedError(c *gin.Context, err error, rules []mappedHandlerError, fallbackCode int, fallbackMsg string) {
	for _, rule := range rules {
		if errors.Is(err, rule.target) {
			respondError(c, rule.code, rule.msg, nil)
			return
		}
	}
	respondError(c, fallbackCode, fallbackMsg, err)
}

var catalogErrorRules = []mappedHandlerError{
	{target: service.ErrCategoryNotFound, code: response.CodeNotFound, msg: "category not found"},
	{target: service.ErrProductNotFound, code: response.CodeNotFound, msg: "product not found"},
	{target: service.ErrProductInactive, code: response.CodeNotFound, msg: "product not found"},
	{target: service.ErrPostNotFound, code: response.CodeNotFound, msg: "post not found"},
}

var checkoutErrorRules = []mappedHandlerError{
	{target: service.ErrCartEmpty, code: response.CodeBadRequest, msg: "cart is empty"},
	{target: service.ErrCustomerInfoIncomplete, code: response.CodeBadRequest, msg: "customer name and a valid email are required"},
	{target: service.ErrPaymentDisabled, code: response.CodeInternal, msg: "payment is temporarily unavailable"},
	{target: service.ErrOrderNotFound, code: response.CodeNotFound, msg: "order not found"},
}

// respondCouponError keeps the coupon failure wording intact: the
// minimum-purchase message embeds the threshold amount.
func respondCouponError(c *gin.Context, err error) {
	var minErr *service.MinPurchaseError
	if errors.As(err, &minErr) {
		response.BadRequest(c, minErr.Error())
		return
	}
	switch {
	case errors.Is(err, service.ErrCouponInvalid),
		errors.Is(err, service.ErrCouponExpired),
		errors.Is(err, service.ErrCouponLimitReached):
		response.BadRequest(c, err.Error())
	case errors.Is(err, service.ErrCouponLookupFailed):
		response.Error(c, response.CodeInternal, err.Error())
	default:
		respondError(c, response.CodeInternal, "error validating coupon", err)
	}
}
