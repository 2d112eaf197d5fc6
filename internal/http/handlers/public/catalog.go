package public

import (
	"strconv"

	"github.com/glowderma/glowderma/internal/constants"
	"github.com/glowderma/glowderma/internal/http/response"
	"github.com/glowderma/glowderma/internal/repository"

	"github.com/gin-gonic/gin"
)

// CategoryTree returns the full treatment-category tree.
func (h *Handler) CategoryTree(c *gin.Context) {
	tree, err := h.CategoryService.Tree()
	if err != nil {
		respondError(c, response.CodeInternal, "failed to load categories", err)
		return
	}
	response.Success(c, gin.H{"categories": tree})
}

// ListProducts pages over active products.
func (h *Handler) ListProducts(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	if pageSize <= 0 || pageSize > 100 {
		pageSize = 20
	}
	categoryID, _ := strconv.ParseUint(c.Query("category_id"), 10, 64)

	products, total, err := h.ProductService.List(repository.ProductListFilter{
		Page:         page,
		PageSize:     pageSize,
		CategoryID:   uint(categoryID),
		Search:       c.Query("search"),
		OnlyActive:   true,
		WithCategory: true,
	})
	if err != nil {
		respondError(c, response.CodeInternal, "failed to load products", err)
		return
	}
	response.SuccessWithPage(c, gin.H{"products": products}, response.NewPagination(page, pageSize, total))
}

// GetProduct returns one active product by slug.
func (h *Handler) GetProduct(c *gin.Context) {
	product, err := h.ProductService.GetBySlug(c.Param("slug"), true)
	if err != nil {
		respondWithMappedError(c, err, catalogErrorRules, response.CodeInternal, "failed to load product")
		return
	}
	response.Success(c, gin.H{"product": product})
}

// ListPosts pages over published posts, optionally filtered by type.
func (h *Handler) ListPosts(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "10"))
	if pageSize <= 0 || pageSize > 50 {
		pageSize = 10
	}
	postType := c.DefaultQuery("type", constants.PostTypeBlog)

	posts, total, err := h.PostService.List(repository.PostListFilter{
		Page:          page,
		PageSize:      pageSize,
		Type:          postType,
		OnlyPublished: true,
	})
	if err != nil {
		respondError(c, response.CodeInternal, "failed to load posts", err)
		return
	}
	response.SuccessWithPage(c, gin.H{"posts": posts}, response.NewPagination(page, pageSize, total))
}

// GetPost returns one published post by slug.
func (h *Handler) GetPost(c *gin.Context) {
	post, err := h.PostService.GetBySlug(c.Param("slug"), true)
	if err != nil {
		respondWithMappedError(c, err, catalogErrorRules, response.CodeInternal, "failed to load post")
		return
	}
	response.Success(c, gin.H{"post": post})
}
