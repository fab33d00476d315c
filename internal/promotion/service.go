// BYH Music Store | 2026
// service.go

package promotion

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/byhstore/byh-store/internal/core"
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

func (s *Service) List(ctx context.Context) ([]Promotion, error) {
	return s.repo.List(ctx)
}

// ListActive applies the storefront filter: active status and an end date
// that has not passed yet. A promotion ending today still counts.
func (s *Service) ListActive(ctx context.Context) ([]Promotion, error) {
	now := s.now()
	midnight := time.Date(
		now.Year(), now.Month(), now.Day(),
		0, 0, 0, 0,
		now.Location(),
	)
	return s.repo.ListActive(ctx, midnight)
}

func (s *Service) Get(ctx context.Context, id string) (*Promotion, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Create(
	ctx context.Context,
	req PromotionRequest,
) (*Promotion, error) {
	promotion, err := fromRequest(req)
	if err != nil {
		return nil, err
	}
	promotion.ID = uuid.New().String()

	if err := s.repo.Create(ctx, promotion); err != nil {
		return nil, err
	}

	return promotion, nil
}

func (s *Service) Update(
	ctx context.Context,
	id string,
	req PromotionRequest,
) (*Promotion, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	promotion, err := fromRequest(req)
	if err != nil {
		return nil, err
	}
	promotion.ID = id
	promotion.CreatedAt = existing.CreatedAt

	if err := s.repo.Update(ctx, promotion); err != nil {
		return nil, err
	}

	return promotion, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func (s *Service) Count(ctx context.Context) (int, error) {
	return s.repo.Count(ctx)
}

func fromRequest(req PromotionRequest) (*Promotion, error) {
	start, err := time.Parse(dateLayout, req.StartDate)
	if err != nil {
		return nil, fmt.Errorf(
			"parse start_date: %v: %w",
			err,
			core.ErrInvalidInput,
		)
	}

	end, err := time.Parse(dateLayout, req.EndDate)
	if err != nil {
		return nil, fmt.Errorf(
			"parse end_date: %v: %w",
			err,
			core.ErrInvalidInput,
		)
	}

	if end.Before(start) {
		return nil, fmt.Errorf(
			"end_date before start_date: %w",
			core.ErrInvalidInput,
		)
	}

	status := req.Status
	if status == "" {
		status = StatusActive
	}

	return &Promotion{
		Name:          req.Name,
		Description:   req.Description,
		DiscountType:  req.DiscountType,
		DiscountValue: req.DiscountValue,
		StartDate:     start,
		EndDate:       end,
		Status:        status,
	}, nil
}
