package admin

import (
	"github.com/glowderma/glowderma/internal/http/response"
	"github.com/glowderma/glowderma/internal/service"

	"github.com/gin-gonic/gin"
)

// CategoryRequest carries category create/update fields.
type CategoryRequest struct {
	Slug      string `json:"slug" binding:"required"`
	Name      string `json:"name" binding:"required"`
	Icon      string `json:"icon"`
	ParentID  *uint  `json:"parent_id"`
	SortOrder int    `json:"sort_order"`
}

var categoryErrorRules = []mappedHandlerError{
	{target: service.ErrCategoryNotFound, code: response.CodeNotFound, msg: "category not found"},
	{target: service.ErrCategorySlugTaken, code: response.CodeConflict, msg: "category slug already exists"},
	{target: service.ErrCategoryHasChildren, code: response.CodeConflict, msg: "category has child categories"},
	{target: service.ErrCategoryHasProducts, code: response.CodeConflict, msg: "category has products"},
	{target: service.ErrCategoryCycle, code: response.CodeBadRequest, msg: "category parent would form a cycle"},
	{target: service.ErrInvalidInput, code: response.CodeBadRequest, msg: "slug and name are required"},
}

// ListCategories returns the category tree for the console.
func (h *Handler) ListCategories(c *gin.Context) {
	tree, err := h.CategoryService.Tree()
	if err != nil {
		respondError(c, response.CodeInternal, "failed to load categories", err)
		return
	}
	response.Success(c, gin.H{"categories": tree})
}

// CreateCategory adds a category.
func (h *Handler) CreateCategory(c *gin.Context) {
	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "slug and name are required")
		return
	}

	category, err := h.CategoryService.Create(service.CategoryInput{
		Slug:      req.Slug,
		Name:      req.Name,
		Icon:      req.Icon,
		ParentID:  req.ParentID,
		SortOrder: req.SortOrder,
	})
	if err != nil {
		respondWithMappedError(c, err, categoryErrorRules, response.CodeInternal, "category create failed")
		return
	}
	response.Success(c, gin.H{"category": category})
}

// UpdateCategory edits a category.
func (h *Handler) UpdateCategory(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "slug and name are required")
		return
	}

	category, err := h.CategoryService.Update(id, service.CategoryInput{
		Slug:      req.Slug,
		Name:      req.Name,
		Icon:      req.Icon,
		ParentID:  req.ParentID,
		SortOrder: req.SortOrder,
	})
	if err != nil {
		respondWithMappedError(c, err, categoryErrorRules, response.CodeInternal, "category update failed")
		return
	}
	response.Success(c, gin.H{"category": category})
}

// DeleteCategory removes an empty category.
func (h *Handler) DeleteCategory(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := h.CategoryService.Delete(id); err != nil {
		respondWithMappedError(c, err, categoryErrorRules, response.CodeInternal, "category delete failed")
		return
	}
	response.SuccessWithMsg(c, "category deleted", nil)
}
