// BYH Music Store | 2026
// service.go

package customer

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/byhstore/byh-store/internal/core"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Register creates a storefront account. The role is always cliente.
func (s *Service) Register(
	ctx context.Context,
	req RegisterRequest,
) (*User, error) {
	return s.create(ctx, CreateCustomerRequest{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     RoleCliente,
		Phone:    req.Phone,
		Address:  req.Address,
	})
}

// Create is the admin panel entry point and may assign any role.
func (s *Service) Create(
	ctx context.Context,
	req CreateCustomerRequest,
) (*User, error) {
	if req.Role == "" {
		req.Role = RoleCliente
	}
	return s.create(ctx, req)
}

func (s *Service) create(
	ctx context.Context,
	req CreateCustomerRequest,
) (*User, error) {
	hash, err := core.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &User{
		ID:           uuid.New().String(),
		Name:         strings.TrimSpace(req.Name),
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		PasswordHash: hash,
		Role:         req.Role,
		Phone:        optional(req.Phone),
		Address:      optional(req.Address),
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

func (s *Service) Get(ctx context.Context, id string) (*User, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) GetByEmail(
	ctx context.Context,
	email string,
) (*User, error) {
	return s.repo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
}

func (s *Service) Update(
	ctx context.Context,
	id string,
	req UpdateCustomerRequest,
) (*User, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	user.Name = strings.TrimSpace(req.Name)
	user.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.Role != "" {
		user.Role = req.Role
	}
	user.Phone = optional(req.Phone)
	user.Address = optional(req.Address)

	if err := s.repo.Update(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]User, error) {
	return s.repo.List(ctx)
}

func (s *Service) Count(ctx context.Context) (int, error) {
	return s.repo.Count(ctx)
}

// optional maps empty form values to NULL columns.
func optional(value string) *string {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	return &value
}
