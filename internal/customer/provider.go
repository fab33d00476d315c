// BYH Music Store | 2026
// provider.go

package customer

import (
	"context"

	"github.com/byhstore/byh-store/internal/auth"
)

// Provider adapts the customer service to what the auth flow needs.
type Provider struct {
	service *Service
}

func NewProvider(service *Service) *Provider {
	return &Provider{service: service}
}

func (p *Provider) GetByEmail(
	ctx context.Context,
	email string,
) (*auth.UserInfo, error) {
	user, err := p.service.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	return toUserInfo(user), nil
}

func (p *Provider) GetByID(
	ctx context.Context,
	id string,
) (*auth.UserInfo, error) {
	user, err := p.service.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return toUserInfo(user), nil
}

func (p *Provider) Register(
	ctx context.Context,
	req auth.RegisterRequest,
) (*auth.UserInfo, error) {
	user, err := p.service.Register(ctx, RegisterRequest{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Phone:    req.Phone,
		Address:  req.Address,
	})
	if err != nil {
		return nil, err
	}
	return toUserInfo(user), nil
}

func toUserInfo(user *User) *auth.UserInfo {
	return &auth.UserInfo{
		ID:           user.ID,
		Name:         user.Name,
		Email:        user.Email,
		PasswordHash: user.PasswordHash,
		Role:         user.Role,
	}
}
