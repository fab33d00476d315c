// BYH Music Store | 2026
// service_test.go

package settings

import (
	"context"
	"maps"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepository struct {
	values map[string]string
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{values: make(map[string]string)}
}

func (f *fakeRepository) GetAll(_ context.Context) (map[string]string, error) {
	out := make(map[string]string, len(f.values))
	maps.Copy(out, f.values)
	return out, nil
}

func (f *fakeRepository) Upsert(
	_ context.Context,
	values map[string]string,
) error {
	maps.Copy(f.values, values)
	return nil
}

func TestUpsertMergesWithoutDroppingKeys(t *testing.T) {
	repo := newFakeRepository()
	repo.values["store_name"] = "BYH Music Store"
	repo.values["currency"] = "EUR"

	service := NewService(repo, nil)
	ctx := context.Background()

	merged, err := service.Upsert(ctx, map[string]string{
		"currency":      "USD",
		"contact_email": "hola@byh.example",
	})
	require.NoError(t, err)

	assert.Equal(t, map[string]string{
		"store_name":    "BYH Music Store",
		"currency":      "USD",
		"contact_email": "hola@byh.example",
	}, merged)
}

func TestUpsertEchoesFullMap(t *testing.T) {
	repo := newFakeRepository()
	service := NewService(repo, nil)

	merged, err := service.Upsert(context.Background(), map[string]string{
		"store_name": "BYH",
	})
	require.NoError(t, err)

	stored, err := service.GetAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, stored, merged)
}

func TestGetAllWithoutCacheClient(t *testing.T) {
	repo := newFakeRepository()
	repo.values["store_name"] = "BYH"

	service := NewService(repo, nil)

	values, err := service.GetAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "BYH", values["store_name"])
}
