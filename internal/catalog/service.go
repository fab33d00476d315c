// BYH Music Store | 2026
// service.go

package catalog

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/byhstore/byh-store/internal/core"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context) ([]Product, error) {
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, id string) (*Product, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Create(
	ctx context.Context,
	form ProductForm,
	imageURL string,
) (*Product, error) {
	if form.Price < 0 || form.Stock < 0 {
		return nil, fmt.Errorf(
			"create product: negative price or stock: %w",
			core.ErrInvalidInput,
		)
	}

	product := &Product{
		ID:          uuid.New().String(),
		Name:        form.Name,
		Category:    form.Category,
		Price:       form.Price,
		Stock:       form.Stock,
		Description: form.Description,
	}
	if imageURL != "" {
		product.ImageURL = &imageURL
	}

	if err := s.repo.Create(ctx, product); err != nil {
		return nil, err
	}

	return product, nil
}

// Update replaces the product's fields with the submitted form. The stored
// image is kept unless a new upload arrived with the request.
func (s *Service) Update(
	ctx context.Context,
	id string,
	form ProductForm,
	imageURL string,
) (*Product, error) {
	if form.Price < 0 || form.Stock < 0 {
		return nil, fmt.Errorf(
			"update product: negative price or stock: %w",
			core.ErrInvalidInput,
		)
	}

	product, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	product.Name = form.Name
	product.Category = form.Category
	product.Price = form.Price
	product.Stock = form.Stock
	product.Description = form.Description
	if imageURL != "" {
		product.ImageURL = &imageURL
	}

	if err := s.repo.Update(ctx, product); err != nil {
		return nil, err
	}

	return product, nil
}

func (s *Service) Delete(ctx context.Context, id string) (*Product, error) {
	return s.repo.Delete(ctx, id)
}

func (s *Service) Count(ctx context.Context) (int, error) {
	return s.repo.Count(ctx)
}
