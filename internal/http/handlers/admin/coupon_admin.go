package admin

import (
	"strconv"
	"time"

	"github.com/glowderma/glowderma/internal/http/response"
	"github.com/glowderma/glowderma/internal/models"
	"github.com/glowderma/glowderma/internal/repository"
	"github.com/glowderma/glowderma/internal/service"

	"github.com/gin-gonic/gin"
)

// CouponRequest carries coupon create/update fields.
type CouponRequest struct {
	Code        string       `json:"code" binding:"required"`
	Type        string       `json:"type" binding:"required"`
	Value       models.Money `json:"value"`
	MinPurchase models.Money `json:"min_purchase"`
	UsageLimit  int          `json:"usage_limit"`
	ExpiresAt   *time.Time   `json:"expires_at"`
	IsActive    bool         `json:"is_active"`
}

// CouponActiveRequest flips a coupon's active flag.
type CouponActiveRequest struct {
	IsActive *bool `json:"is_active" binding:"required"`
}

var couponErrorRules = []mappedHandlerError{
	{target: service.ErrCouponNotFound, code: response.CodeNotFound, msg: "coupon not found"},
	{target: service.ErrCouponCodeTaken, code: response.CodeConflict, msg: "coupon code already exists"},
	{target: service.ErrCouponValueInvalid, code: response.CodeBadRequest, msg: "coupon type or value invalid"},
	{target: service.ErrInvalidInput, code: response.CodeBadRequest, msg: "code is required"},
}

// ListCoupons pages over coupons.
func (h *Handler) ListCoupons(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = normalizePagination(page, pageSize)

	filter := repository.CouponListFilter{
		Page:     page,
		PageSize: pageSize,
		Code:     c.Query("code"),
	}
	if active := c.Query("is_active"); active != "" {
		isActive := active == "true" || active == "1"
		filter.IsActive = &isActive
	}

	coupons, total, err := h.CouponAdminService.List(filter)
	if err != nil {
		respondError(c, response.CodeInternal, "failed to load coupons", err)
		return
	}
	response.SuccessWithPage(c, gin.H{"coupons": coupons}, response.NewPagination(page, pageSize, total))
}

// GetCoupon returns one coupon by ID.
func (h *Handler) GetCoupon(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	coupon, err := h.CouponAdminService.GetByID(id)
	if err != nil {
		respondWithMappedError(c, err, couponErrorRules, response.CodeInternal, "failed to load coupon")
		return
	}
	response.Success(c, gin.H{"coupon": coupon})
}

// CreateCoupon adds a coupon.
func (h *Handler) CreateCoupon(c *gin.Context) {
	var req CouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "code and type are required")
		return
	}

	coupon, err := h.CouponAdminService.Create(couponInputFromRequest(req))
	if err != nil {
		respondWithMappedError(c, err, couponErrorRules, response.CodeInternal, "coupon create failed")
		return
	}
	response.Success(c, gin.H{"coupon": coupon})
}

// UpdateCoupon edits a coupon.
func (h *Handler) UpdateCoupon(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req CouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "code and type are required")
		return
	}

	coupon, err := h.CouponAdminService.Update(id, couponInputFromRequest(req))
	if err != nil {
		respondWithMappedError(c, err, couponErrorRules, response.CodeInternal, "coupon update failed")
		return
	}
	response.Success(c, gin.H{"coupon": coupon})
}

// SetCouponActive flips a coupon's active flag.
func (h *Handler) SetCouponActive(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req CouponActiveRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.IsActive == nil {
		response.BadRequest(c, "is_active is required")
		return
	}

	coupon, err := h.CouponAdminService.SetActive(id, *req.IsActive)
	if err != nil {
		respondWithMappedError(c, err, couponErrorRules, response.CodeInternal, "coupon update failed")
		return
	}
	response.Success(c, gin.H{"coupon": coupon})
}

// DeleteCoupon removes a coupon.
func (h *Handler) DeleteCoupon(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := h.CouponAdminService.Delete(id); err != nil {
		respondWithMappedError(c, err, couponErrorRules, response.CodeInternal, "coupon delete failed")
		return
	}
	response.SuccessWithMsg(c, "coupon deleted", nil)
}

func couponInputFromRequest(req CouponRequest) service.CouponInput {
	return service.CouponInput{
		Code:        req.Code,
		Type:        req.Type,
		Value:       req.Value,
		MinPurchase: req.MinPurchase,
		UsageLimit:  req.UsageLimit,
		ExpiresAt:   req.ExpiresAt,
		IsActive:    req.IsActive,
	}
}
