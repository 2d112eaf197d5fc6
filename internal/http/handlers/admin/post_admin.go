package admin

import (
	"strconv"

	"github.com/glowderma/glowderma/internal/http/response"
	"github.com/glowderma/glowderma/internal/repository"
	"github.com/glowderma/glowderma/internal/service"

	"github.com/gin-gonic/gin"
)

// PostRequest carries post create/update fields.
type PostRequest struct {
	Slug        string `json:"slug" binding:"required"`
	Type        string `json:"type"`
	Title       string `json:"title" binding:"required"`
	Summary     string `json:"summary"`
	Content     string `json:"content"`
	Thumbnail   string `json:"thumbnail"`
	IsPublished bool   `json:"is_published"`
}

var postErrorRules = []mappedHandlerError{
	{target: service.ErrPostNotFound, code: response.CodeNotFound, msg: "post not found"},
	{target: service.ErrPostSlugTaken, code: response.CodeConflict, msg: "post slug already exists"},
	{target: service.ErrInvalidInput, code: response.CodeBadRequest, msg: "slug and title are required"},
}

// ListPosts pages over all posts including drafts.
func (h *Handler) ListPosts(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = normalizePagination(page, pageSize)

	posts, total, err := h.PostService.List(repository.PostListFilter{
		Page:     page,
		PageSize: pageSize,
		Type:     c.Query("type"),
		Search:   c.Query("search"),
	})
	if err != nil {
		respondError(c, response.CodeInternal, "failed to load posts", err)
		return
	}
	response.SuccessWithPage(c, gin.H{"posts": posts}, response.NewPagination(page, pageSize, total))
}

// GetPost returns one post by ID.
func (h *Handler) GetPost(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	post, err := h.PostService.GetByID(id)
	if err != nil {
		respondWithMappedError(c, err, postErrorRules, response.CodeInternal, "failed to load post")
		return
	}
	response.Success(c, gin.H{"post": post})
}

// CreatePost adds a post.
func (h *Handler) CreatePost(c *gin.Context) {
	var req PostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "slug and title are required")
		return
	}

	post, err := h.PostService.Create(postInputFromRequest(req))
	if err != nil {
		respondWithMappedError(c, err, postErrorRules, response.CodeInternal, "post create failed")
		return
	}
	response.Success(c, gin.H{"post": post})
}

// UpdatePost edits a post.
func (h *Handler) UpdatePost(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req PostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "slug and title are required")
		return
	}

	post, err := h.PostService.Update(id, postInputFromRequest(req))
	if err != nil {
		respondWithMappedError(c, err, postErrorRules, response.CodeInternal, "post update failed")
		return
	}
	response.Success(c, gin.H{"post": post})
}

// DeletePost removes a post.
func (h *Handler) DeletePost(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := h.PostService.Delete(id); err != nil {
		respondWithMappedError(c, err, postErrorRules, response.CodeInternal, "post delete failed")
		return
	}
	response.SuccessWithMsg(c, "post deleted", nil)
}

func postInputFromRequest(req PostRequest) service.PostInput {
	return service.PostInput{
		Slug:        req.Slug,
		Type:        req.Type,
		Title:       req.Title,
		Summary:     req.Summary,
		Content:     req.Content,
		Thumbnail:   req.Thumbnail,
		IsPublished: req.IsPublished,
	}
}
