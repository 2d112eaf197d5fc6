package service

import (
	"strings"

	"github.com/glowderma/glowderma/internal/models"
	"github.com/glowderma/glowderma/internal/repository"

	"github.com/shopspring/decimal"
)

// ProductInput carries create/update fields.
type ProductInput struct {
	CategoryID  uint
	Slug        string
	Name        string
	Description string
	Price       models.Money
	Images      []string
	IsActive    bool
	SortOrder   int
}

// ProductService manages the treatment/product catalog.
type ProductService struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
}

// NewProductService creates the product service.
func NewProductService(productRepo repository.ProductRepository, categoryRepo repository.CategoryRepository) *ProductService {
	return &ProductService{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
	}
}

// List pages over products.
func (s *ProductService) List(filter repository.ProductListFilter) ([]models.Product, int64, error) {
	return s.productRepo.List(filter)
}

// GetBySlug fetches a product by slug for the storefront.
func (s *ProductService) GetBySlug(slug string, onlyActive bool) (*models.Product, error) {
	product, err := s.productRepo.GetBySlug(strings.TrimSpace(slug), onlyActive)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	return product, nil
}

// GetByID fetches a product by ID.
func (s *ProductService) GetByID(id uint) (*models.Product, error) {
	product, err := s.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	return product, nil
}

// Create adds a product after slug and category validation.
func (s *ProductService) Create(input ProductInput) (*models.Product, error) {
	slug := strings.TrimSpace(input.Slug)
	name := strings.TrimSpace(input.Name)
	if slug == "" || name == "" {
		return nil, ErrInvalidInput
	}
	if input.Price.IsNegative() {
		return nil, ErrInvalidPrice
	}

	count, err := s.productRepo.CountBySlug(slug, nil)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrProductSlugTaken
	}
	category, err := s.categoryRepo.GetByID(input.CategoryID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, ErrCategoryNotFound
	}

	product := &models.Product{
		CategoryID:  input.CategoryID,
		Slug:        slug,
		Name:        name,
		Description: input.Description,
		Price:       input.Price,
		Images:      models.StringArray(input.Images),
		IsActive:    input.IsActive,
		SortOrder:   input.SortOrder,
	}
	if err := s.productRepo.Create(product); err != nil {
		return nil, err
	}
	return product, nil
}

// Update edits a product.
func (s *ProductService) Update(id uint, input ProductInput) (*models.Product, error) {
	product, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	slug := strings.TrimSpace(input.Slug)
	name := strings.TrimSpace(input.Name)
	if slug == "" || name == "" {
		return nil, ErrInvalidInput
	}
	if input.Price.IsNegative() {
		return nil, ErrInvalidPrice
	}
	count, err := s.productRepo.CountBySlug(slug, &id)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrProductSlugTaken
	}
	category, err := s.categoryRepo.GetByID(input.CategoryID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, ErrCategoryNotFound
	}

	product.CategoryID = input.CategoryID
	product.Slug = slug
	product.Name = name
	product.Description = input.Description
	product.Price = input.Price
	product.Images = models.StringArray(input.Images)
	product.IsActive = input.IsActive
	product.SortOrder = input.SortOrder
	if err := s.productRepo.Update(product); err != nil {
		return nil, err
	}
	return product, nil
}

// SetActive flips a product's storefront visibility.
func (s *ProductService) SetActive(id uint, active bool) (*models.Product, error) {
	product, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	product.IsActive = active
	if err := s.productRepo.Update(product); err != nil {
		return nil, err
	}
	return product, nil
}

// Delete removes a product.
func (s *ProductService) Delete(id uint) error {
	if _, err := s.GetByID(id); err != nil {
		return err
	}
	return s.productRepo.Delete(id)
}

// ListPriceFromNet computes the list price that leaves the clinic a given
// net amount after a platform commission: list = net / (1 - pct/100).
// The percentage must be in [0, 100).
func ListPriceFromNet(net models.Money, commissionPct decimal.Decimal) (models.Money, error) {
	if net.IsNegative() {
		return models.Money{}, ErrInvalidPrice
	}
	hundred := decimal.NewFromInt(100)
	if commissionPct.IsNegative() || !commissionPct.LessThan(hundred) {
		return models.Money{}, ErrInvalidPercentage
	}
	keep := decimal.NewFromInt(1).Sub(commissionPct.Div(hundred))
	return models.NewMoneyFromDecimal(net.Decimal.Div(keep)), nil
}

// NetFromListPrice is the forward direction: net = list × (1 - pct/100).
func NetFromListPrice(list models.Money, commissionPct decimal.Decimal) (models.Money, error) {
	if list.IsNegative() {
		return models.Money{}, ErrInvalidPrice
	}
	hundred := decimal.NewFromInt(100)
	if commissionPct.IsNegative() || commissionPct.GreaterThan(hundred) {
		return models.Money{}, ErrInvalidPercentage
	}
	keep := decimal.NewFromInt(1).Sub(commissionPct.Div(hundred))
	return models.NewMoneyFromDecimal(list.Decimal.Mul(keep)), nil
}
