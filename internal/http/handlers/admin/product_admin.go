package admin

import (
	"strconv"

	"github.com/glowderma/glowderma/internal/http/response"
	"github.com/glowderma/glowderma/internal/models"
	"github.com/glowderma/glowderma/internal/repository"
	"github.com/glowderma/glowderma/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// ProductRequest carries product create/update fields.
type ProductRequest struct {
	CategoryID  uint         `json:"category_id" binding:"required"`
	Slug        string       `json:"slug" binding:"required"`
	Name        string       `json:"name" binding:"required"`
	Description string       `json:"description"`
	Price       models.Money `json:"price"`
	Images      []string     `json:"images"`
	IsActive    bool         `json:"is_active"`
	SortOrder   int          `json:"sort_order"`
}

// PricingPreviewRequest computes a list price from a desired net amount.
type PricingPreviewRequest struct {
	NetAmount     models.Money `json:"net_amount"`
	CommissionPct string       `json:"commission_pct" binding:"required"`
}

var productErrorRules = []mappedHandlerError{
	{target: service.ErrProductNotFound, code: response.CodeNotFound, msg: "product not found"},
	{target: service.ErrProductSlugTaken, code: response.CodeConflict, msg: "product slug already exists"},
	{target: service.ErrCategoryNotFound, code: response.CodeBadRequest, msg: "category not found"},
	{target: service.ErrInvalidPrice, code: response.CodeBadRequest, msg: "price must not be negative"},
	{target: service.ErrInvalidInput, code: response.CodeBadRequest, msg: "slug and name are required"},
}

// ListProducts pages over the full catalog including inactive products.
func (h *Handler) ListProducts(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = normalizePagination(page, pageSize)
	categoryID, _ := strconv.ParseUint(c.Query("category_id"), 10, 64)

	products, total, err := h.ProductService.List(repository.ProductListFilter{
		Page:         page,
		PageSize:     pageSize,
		CategoryID:   uint(categoryID),
		Search:       c.Query("search"),
		WithCategory: true,
	})
	if err != nil {
		respondError(c, response.CodeInternal, "failed to load products", err)
		return
	}
	response.SuccessWithPage(c, gin.H{"products": products}, response.NewPagination(page, pageSize, total))
}

// GetProduct returns one product by ID.
func (h *Handler) GetProduct(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	product, err := h.ProductService.GetByID(id)
	if err != nil {
		respondWithMappedError(c, err, productErrorRules, response.CodeInternal, "failed to load product")
		return
	}
	response.Success(c, gin.H{"product": product})
}

// CreateProduct adds a product.
func (h *Handler) CreateProduct(c *gin.Context) {
	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "category_id, slug and name are required")
		return
	}

	product, err := h.ProductService.Create(productInputFromRequest(req))
	if err != nil {
		respondWithMappedError(c, err, productErrorRules, response.CodeInternal, "product create failed")
		return
	}
	response.Success(c, gin.H{"product": product})
}

// UpdateProduct edits a product.
func (h *Handler) UpdateProduct(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "category_id, slug and name are required")
		return
	}

	product, err := h.ProductService.Update(id, productInputFromRequest(req))
	if err != nil {
		respondWithMappedError(c, err, productErrorRules, response.CodeInternal, "product update failed")
		return
	}
	response.Success(c, gin.H{"product": product})
}

// DeleteProduct removes a product.
func (h *Handler) DeleteProduct(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := h.ProductService.Delete(id); err != nil {
		respondWithMappedError(c, err, productErrorRules, response.CodeInternal, "product delete failed")
		return
	}
	response.SuccessWithMsg(c, "product deleted", nil)
}

// PricingPreview computes the list price that leaves the clinic a given
// net amount after platform commission.
func (h *Handler) PricingPreview(c *gin.Context) {
	var req PricingPreviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "net_amount and commission_pct are required")
		return
	}
	pct, err := decimal.NewFromString(req.CommissionPct)
	if err != nil {
		response.BadRequest(c, "commission_pct is not a number")
		return
	}

	listPrice, err := service.ListPriceFromNet(req.NetAmount, pct)
	if err != nil {
		respondWithMappedError(c, err, []mappedHandlerError{
			{target: service.ErrInvalidPrice, code: response.CodeBadRequest, msg: "net_amount must not be negative"},
			{target: service.ErrInvalidPercentage, code: response.CodeBadRequest, msg: "commission_pct must be in [0, 100)"},
		}, response.CodeInternal, "pricing preview failed")
		return
	}
	response.Success(c, gin.H{
		"net_amount":     req.NetAmount,
		"commission_pct": req.CommissionPct,
		"list_price":     listPrice,
	})
}

func productInputFromRequest(req ProductRequest) service.ProductInput {
	return service.ProductInput{
		CategoryID:  req.CategoryID,
		Slug:        req.Slug,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Images:      req.Images,
		IsActive:    req.IsActive,
		SortOrder:   req.SortOrder,
	}
}
