package service

import (
	"strings"
	"time"

	"github.com/glowderma/glowderma/internal/constants"
	"github.com/glowderma/glowderma/internal/models"
	"github.com/glowderma/glowderma/internal/repository"
)

// PostInput carries create/update fields.
type PostInput struct {
	Slug        string
	Type        string
	Title       string
	Summary     string
	Content     string
	Thumbnail   string
	IsPublished bool
}

// PostService manages blog and notice content.
type PostService struct {
	postRepo repository.PostRepository
}

// NewPostService creates the post service.
func NewPostService(postRepo repository.PostRepository) *PostService {
	return &PostService{postRepo: postRepo}
}

// List pages over posts.
func (s *PostService) List(filter repository.PostListFilter) ([]models.Post, int64, error) {
	return s.postRepo.List(filter)
}

// GetBySlug fetches a post by slug.
func (s *PostService) GetBySlug(slug string, onlyPublished bool) (*models.Post, error) {
	post, err := s.postRepo.GetBySlug(strings.TrimSpace(slug), onlyPublished)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}
	return post, nil
}

// GetByID fetches a post by ID.
func (s *PostService) GetByID(id uint) (*models.Post, error) {
	post, err := s.postRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}
	return post, nil
}

// Create adds a post. Publishing stamps the publish time.
func (s *PostService) Create(input PostInput) (*models.Post, error) {
	slug := strings.TrimSpace(input.Slug)
	title := strings.TrimSpace(input.Title)
	if slug == "" || title == "" {
		return nil, ErrInvalidInput
	}
	postType := normalizePostType(input.Type)

	count, err := s.postRepo.CountBySlug(slug, nil)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrPostSlugTaken
	}

	post := &models.Post{
		Slug:        slug,
		Type:        postType,
		Title:       title,
		Summary:     input.Summary,
		Content:     input.Content,
		Thumbnail:   strings.TrimSpace(input.Thumbnail),
		IsPublished: input.IsPublished,
	}
	if input.IsPublished {
		now := time.Now()
		post.PublishedAt = &now
	}
	if err := s.postRepo.Create(post); err != nil {
		return nil, err
	}
	return post, nil
}

// Update edits a post. The publish time is stamped on the first publish
// and kept stable afterwards.
func (s *PostService) Update(id uint, input PostInput) (*models.Post, error) {
	post, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	slug := strings.TrimSpace(input.Slug)
	title := strings.TrimSpace(input.Title)
	if slug == "" || title == "" {
		return nil, ErrInvalidInput
	}
	count, err := s.postRepo.CountBySlug(slug, &id)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrPostSlugTaken
	}

	post.Slug = slug
	post.Type = normalizePostType(input.Type)
	post.Title = title
	post.Summary = input.Summary
	post.Content = input.Content
	post.Thumbnail = strings.TrimSpace(input.Thumbnail)
	if input.IsPublished && !post.IsPublished && post.PublishedAt == nil {
		now := time.Now()
		post.PublishedAt = &now
	}
	post.IsPublished = input.IsPublished
	if err := s.postRepo.Update(post); err != nil {
		return nil, err
	}
	return post, nil
}

// Delete removes a post.
func (s *PostService) Delete(id uint) error {
	if _, err := s.GetByID(id); err != nil {
		return err
	}
	return s.postRepo.Delete(id)
}

func normalizePostType(postType string) string {
	postType = strings.TrimSpace(strings.ToLower(postType))
	if postType == constants.PostTypeNotice {
		return constants.PostTypeNotice
	}
	return constants.PostTypeBlog
}
