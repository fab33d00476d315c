// BYH Music Store | 2026
// service.go

package banner

import (
	"context"
	"fmt"
	"strings"
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

func (s *Service) List(ctx context.Context) ([]Banner, error) {
	return s.repo.List(ctx)
}

func (s *Service) ListActive(ctx context.Context) ([]Banner, error) {
	now := s.now()
	midnight := time.Date(
		now.Year(), now.Month(), now.Day(),
		0, 0, 0, 0,
		now.Location(),
	)
	return s.repo.ListActive(ctx, midnight)
}

func (s *Service) Get(ctx context.Context, id string) (*Banner, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Create(
	ctx context.Context,
	form BannerForm,
	imageURL string,
) (*Banner, error) {
	banner, err := fromForm(form)
	if err != nil {
		return nil, err
	}
	banner.ID = uuid.New().String()
	if imageURL != "" {
		banner.ImageURL = &imageURL
	}

	if err := s.repo.Create(ctx, banner); err != nil {
		return nil, err
	}

	return banner, nil
}

func (s *Service) Update(
	ctx context.Context,
	id string,
	form BannerForm,
	imageURL string,
) (*Banner, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	banner, err := fromForm(form)
	if err != nil {
		return nil, err
	}
	banner.ID = id
	banner.CreatedAt = existing.CreatedAt
	banner.ImageURL = existing.ImageURL
	if imageURL != "" {
		banner.ImageURL = &imageURL
	}

	if err := s.repo.Update(ctx, banner); err != nil {
		return nil, err
	}

	return banner, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func (s *Service) Count(ctx context.Context) (int, error) {
	return s.repo.Count(ctx)
}

func fromForm(form BannerForm) (*Banner, error) {
	start, err := time.Parse(dateLayout, form.StartDate)
	if err != nil {
		return nil, fmt.Errorf("parse start_date: %w", core.ErrInvalidInput)
	}

	end, err := time.Parse(dateLayout, form.EndDate)
	if err != nil {
		return nil, fmt.Errorf("parse end_date: %w", core.ErrInvalidInput)
	}

	if end.Before(start) {
		return nil, fmt.Errorf(
			"end_date before start_date: %w",
			core.ErrInvalidInput,
		)
	}

	status := form.Status
	if status == "" {
		status = StatusActive
	}

	banner := &Banner{
		Title:     strings.TrimSpace(form.Title),
		StartDate: start,
		EndDate:   end,
		Status:    status,
	}
	if link := strings.TrimSpace(form.LinkURL); link != "" {
		banner.LinkURL = &link
	}

	return banner, nil
}
