// BYH Music Store | 2026
// service_test.go

package promotion

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
	promotions map[string]*Promotion
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{promotions: make(map[string]*Promotion)}
}

func (f *fakeRepository) Create(_ context.Context, p *Promotion) error {
	f.promotions[p.ID] = p
	return nil
}

func (f *fakeRepository) GetByID(
	_ context.Context,
	id string,
) (*Promotion, error) {
	p, ok := f.promotions[id]
	if !ok {
		return nil, fmt.Errorf("get promotion %s: %w", id, core.ErrNotFound)
	}
	copied := *p
	return &copied, nil
}

func (f *fakeRepository) Update(_ context.Context, p *Promotion) error {
	if _, ok := f.promotions[p.ID]; !ok {
		return fmt.Errorf("update promotion %s: %w", p.ID, core.ErrNotFound)
	}
	f.promotions[p.ID] = p
	return nil
}

func (f *fakeRepository) Delete(_ context.Context, id string) error {
	if _, ok := f.promotions[id]; !ok {
		return fmt.Errorf("delete promotion %s: %w", id, core.ErrNotFound)
	}
	delete(f.promotions, id)
	return nil
}

func (f *fakeRepository) List(_ context.Context) ([]Promotion, error) {
	promotions := make([]Promotion, 0, len(f.promotions))
	for _, p := range f.promotions {
		promotions = append(promotions, *p)
	}
	return promotions, nil
}

func (f *fakeRepository) ListActive(
	_ context.Context,
	since time.Time,
) ([]Promotion, error) {
	promotions := []Promotion{}
	for _, p := range f.promotions {
		if p.Status == StatusActive && !p.EndDate.Before(since) {
			promotions = append(promotions, *p)
		}
	}
	return promotions, nil
}

func (f *fakeRepository) Count(_ context.Context) (int, error) {
	return len(f.promotions), nil
}

func day(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse("2006-01-02", value)
	require.NoError(t, err)
	return parsed
}

func TestListActiveFilter(t *testing.T) {
	repo := newFakeRepository()
	service := NewService(repo)
	service.now = func() time.Time {
		return time.Date(2026, 3, 15, 14, 30, 0, 0, time.UTC)
	}

	repo.promotions["ends-today"] = &Promotion{
		ID:      "ends-today",
		Status:  StatusActive,
		EndDate: day(t, "2026-03-15"),
	}
	repo.promotions["ends-later"] = &Promotion{
		ID:      "ends-later",
		Status:  StatusActive,
		EndDate: day(t, "2026-04-01"),
	}
	repo.promotions["expired"] = &Promotion{
		ID:      "expired",
		Status:  StatusActive,
		EndDate: day(t, "2026-03-01"),
	}
	repo.promotions["inactive"] = &Promotion{
		ID:      "inactive",
		Status:  StatusInactive,
		EndDate: day(t, "2026-04-01"),
	}

	active, err := service.ListActive(context.Background())
	require.NoError(t, err)

	ids := make([]string, 0, len(active))
	for _, p := range active {
		ids = append(ids, p.ID)
	}

	assert.ElementsMatch(t, []string{"ends-today", "ends-later"}, ids)
}

func TestCurrentlyActiveIncludesWholeEndDate(t *testing.T) {
	p := &Promotion{
		Status:  StatusActive,
		EndDate: day(t, "2026-03-15"),
	}

	lateEvening := time.Date(2026, 3, 15, 23, 59, 0, 0, time.UTC)
	assert.True(t, p.CurrentlyActive(lateEvening))

	nextMorning := time.Date(2026, 3, 16, 0, 1, 0, 0, time.UTC)
	assert.False(t, p.CurrentlyActive(nextMorning))
}

func TestCreateRejectsReversedDates(t *testing.T) {
	service := NewService(newFakeRepository())

	_, err := service.Create(context.Background(), PromotionRequest{
		Name:          "Backwards",
		DiscountType:  DiscountPercentage,
		DiscountValue: 10,
		StartDate:     "2026-04-01",
		EndDate:       "2026-03-01",
	})
	require.ErrorIs(t, err, core.ErrInvalidInput)
}

func TestCreateReportsUnparseableDate(t *testing.T) {
	service := NewService(newFakeRepository())

	_, err := service.Create(context.Background(), PromotionRequest{
		Name:          "Bad date",
		DiscountType:  DiscountPercentage,
		DiscountValue: 10,
		StartDate:     "01/03/2026",
		EndDate:       "2026-03-31",
	})
	require.ErrorIs(t, err, core.ErrInvalidInput)
	assert.Contains(t, err.Error(), "01/03/2026")
}

func TestCreateDefaultsStatusActive(t *testing.T) {
	service := NewService(newFakeRepository())

	p, err := service.Create(context.Background(), PromotionRequest{
		Name:          "Spring sale",
		DiscountType:  DiscountPercentage,
		DiscountValue: 15,
		StartDate:     "2026-03-01",
		EndDate:       "2026-03-31",
	})
	require.NoError(t, err)

	assert.Equal(t, StatusActive, p.Status)
	assert.NotEmpty(t, p.ID)
}
