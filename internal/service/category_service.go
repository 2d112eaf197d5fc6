package service

import (
	"strings"

	"github.com/glowderma/glowderma/internal/models"
	"github.com/glowderma/glowderma/internal/repository"
)

// CategoryNode is a category with its resolved children.
type CategoryNode struct {
	models.Category
	Children []*CategoryNode `json:"children"`
}

// CategoryInput carries create/update fields.
type CategoryInput struct {
	Slug      string
	Name      string
	Icon      string
	ParentID  *uint
	SortOrder int
}

// CategoryService manages the treatment-category tree.
type CategoryService struct {
	categoryRepo repository.CategoryRepository
	productRepo  repository.ProductRepository
}

// NewCategoryService creates the category service.
func NewCategoryService(categoryRepo repository.CategoryRepository, productRepo repository.ProductRepository) *CategoryService {
	return &CategoryService{
		categoryRepo: categoryRepo,
		productRepo:  productRepo,
	}
}

// List returns all categories flat, ordered by sort weight.
func (s *CategoryService) List() ([]models.Category, error) {
	return s.categoryRepo.List()
}

// Tree assembles the full category tree from one flat read. Children are
// already ordered because the flat read is; orphaned nodes (dangling
// parent IDs) surface as extra roots rather than disappearing.
func (s *CategoryService) Tree() ([]*CategoryNode, error) {
	categories, err := s.categoryRepo.List()
	if err != nil {
		return nil, err
	}

	nodes := make(map[uint]*CategoryNode, len(categories))
	for i := range categories {
		nodes[categories[i].ID] = &CategoryNode{Category: categories[i], Children: []*CategoryNode{}}
	}

	roots := make([]*CategoryNode, 0)
	for i := range categories {
		node := nodes[categories[i].ID]
		if categories[i].ParentID != nil {
			if parent, ok := nodes[*categories[i].ParentID]; ok {
				parent.Children = append(parent.Children, node)
				continue
			}
		}
		roots = append(roots, node)
	}
	return roots, nil
}

// GetBySlug fetches a category by slug.
func (s *CategoryService) GetBySlug(slug string) (*models.Category, error) {
	category, err := s.categoryRepo.GetBySlug(strings.TrimSpace(slug))
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, ErrCategoryNotFound
	}
	return category, nil
}

// GetByID fetches a category by ID.
func (s *CategoryService) GetByID(id uint) (*models.Category, error) {
	category, err := s.categoryRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, ErrCategoryNotFound
	}
	return category, nil
}

// Create adds a category after slug and parent validation.
func (s *CategoryService) Create(input CategoryInput) (*models.Category, error) {
	slug := strings.TrimSpace(input.Slug)
	name := strings.TrimSpace(input.Name)
	if slug == "" || name == "" {
		return nil, ErrInvalidInput
	}

	count, err := s.categoryRepo.CountBySlug(slug, nil)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrCategorySlugTaken
	}
	if input.ParentID != nil {
		parent, err := s.categoryRepo.GetByID(*input.ParentID)
		if err != nil {
			return nil, err
		}
		if parent == nil {
			return nil, ErrCategoryNotFound
		}
	}

	category := &models.Category{
		Slug:      slug,
		Name:      name,
		Icon:      strings.TrimSpace(input.Icon),
		ParentID:  input.ParentID,
		SortOrder: input.SortOrder,
	}
	if err := s.categoryRepo.Create(category); err != nil {
		return nil, err
	}
	return category, nil
}

// Update edits a category. Re-parenting onto itself or a descendant is rejected.
func (s *CategoryService) Update(id uint, input CategoryInput) (*models.Category, error) {
	category, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	slug := strings.TrimSpace(input.Slug)
	name := strings.TrimSpace(input.Name)
	if slug == "" || name == "" {
		return nil, ErrInvalidInput
	}
	count, err := s.categoryRepo.CountBySlug(slug, &id)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrCategorySlugTaken
	}

	if input.ParentID != nil {
		if *input.ParentID == id {
			return nil, ErrCategoryCycle
		}
		parent, err := s.categoryRepo.GetByID(*input.ParentID)
		if err != nil {
			return nil, err
		}
		if parent == nil {
			return nil, ErrCategoryNotFound
		}
		// walk up from the new parent to make sure id is not an ancestor
		for parent != nil && parent.ParentID != nil {
			if *parent.ParentID == id {
				return nil, ErrCategoryCycle
			}
			parent, err = s.categoryRepo.GetByID(*parent.ParentID)
			if err != nil {
				return nil, err
			}
		}
	}

	category.Slug = slug
	category.Name = name
	category.Icon = strings.TrimSpace(input.Icon)
	category.ParentID = input.ParentID
	category.SortOrder = input.SortOrder
	if err := s.categoryRepo.Update(category); err != nil {
		return nil, err
	}
	return category, nil
}

// Delete removes a category that has no children and no products.
func (s *CategoryService) Delete(id uint) error {
	if _, err := s.GetByID(id); err != nil {
		return err
	}
	children, err := s.categoryRepo.CountChildren(id)
	if err != nil {
		return err
	}
	if children > 0 {
		return ErrCategoryHasChildren
	}
	products, err := s.productRepo.CountByCategory(id)
	if err != nil {
		return err
	}
	if products > 0 {
		return ErrCategoryHasProducts
	}
	return s.categoryRepo.Delete(id)
}
