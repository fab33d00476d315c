// BYH Music Store | 2026
// service_test.go

package banner

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/byhstore/byh-store/internal/core"
)

type fakeRepository struct {
	banners map[string]*Banner
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{banners: make(map[string]*Banner)}
}

func (f *fakeRepository) Create(_ context.Context, b *Banner) error {
	f.banners[b.ID] = b
	return nil
}

func (f *fakeRepository) GetByID(
	_ context.Context,
	id string,
) (*Banner, error) {
	b, ok := f.banners[id]
	if !ok {
		return nil, fmt.Errorf("get banner %s: %w", id, core.ErrNotFound)
	}
	copied := *b
	return &copied, nil
}

func (f *fakeRepository) Update(_ context.Context, b *Banner) error {
	if _, ok := f.banners[b.ID]; !ok {
		return fmt.Errorf("update banner %s: %w", b.ID, core.ErrNotFound)
	}
	f.banners[b.ID] = b
	return nil
}

func (f *fakeRepository) Delete(_ context.Context, id string) error {
	if _, ok := f.banners[id]; !ok {
		return fmt.Errorf("delete banner %s: %w", id, core.ErrNotFound)
	}
	delete(f.banners, id)
	return nil
}

func (f *fakeRepository) List(_ context.Context) ([]Banner, error) {
	banners := make([]Banner, 0, len(f.banners))
	for _, b := range f.banners {
		banners = append(banners, *b)
	}
	return banners, nil
}

func (f *fakeRepository) ListActive(
	_ context.Context,
	since time.Time,
) ([]Banner, error) {
	banners := []Banner{}
	for _, b := range f.banners {
		if b.Status == StatusActive && !b.EndDate.Before(since) {
			banners = append(banners, *b)
		}
	}
	return banners, nil
}

func (f *fakeRepository) Count(_ context.Context) (int, error) {
	return len(f.banners), nil
}

func TestCreateBannerKeepsOptionalLink(t *testing.T) {
	service := NewService(newFakeRepository())

	banner, err := service.Create(context.Background(), BannerForm{
		Title:     "Rebajas de primavera",
		LinkURL:   "  https://example.com/sale  ",
		StartDate: "2026-03-01",
		EndDate:   "2026-03-31",
	}, "http://example.com/uploads/banner_image_file-1.png")
	require.NoError(t, err)

	require.NotNil(t, banner.LinkURL)
	assert.Equal(t, "https://example.com/sale", *banner.LinkURL)
	require.NotNil(t, banner.ImageURL)
	assert.Equal(t, StatusActive, banner.Status)
}

func TestUpdateBannerKeepsImageWithoutNewUpload(t *testing.T) {
	repo := newFakeRepository()
	service := NewService(repo)

	imageURL := "http://example.com/uploads/original.png"
	repo.banners["b1"] = &Banner{
		ID:        "b1",
		Title:     "Original",
		ImageURL:  &imageURL,
		StartDate: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC),
		Status:    StatusActive,
	}

	updated, err := service.Update(context.Background(), "b1", BannerForm{
		Title:     "Renombrado",
		StartDate: "2026-03-01",
		EndDate:   "2026-04-15",
	}, "")
	require.NoError(t, err)

	require.NotNil(t, updated.ImageURL)
	assert.Equal(t, imageURL, *updated.ImageURL)
	assert.Equal(t, "Renombrado", updated.Title)
}

func TestCreateBannerRejectsReversedDates(t *testing.T) {
	service := NewService(newFakeRepository())

	_, err := service.Create(context.Background(), BannerForm{
		Title:     "Backwards",
		StartDate: "2026-04-01",
		EndDate:   "2026-03-01",
	}, "")
	require.ErrorIs(t, err, core.ErrInvalidInput)
}
