// BYH Music Store | 2026
// service_test.go

package customer

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/byhstore/byh-store/internal/core"
)

type fakeRepository struct {
	byID    map[string]*User
	byEmail map[string]*User
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{
		byID:    make(map[string]*User),
		byEmail: make(map[string]*User),
	}
}

func (f *fakeRepository) Create(_ context.Context, user *User) error {
	if _, ok := f.byEmail[user.Email]; ok {
		return fmt.Errorf("create user: %w", core.ErrDuplicateKey)
	}
	f.byID[user.ID] = user
	f.byEmail[user.Email] = user
	return nil
}

func (f *fakeRepository) GetByID(_ context.Context, id string) (*User, error) {
	user, ok := f.byID[id]
	if !ok {
		return nil, fmt.Errorf("get user %s: %w", id, core.ErrNotFound)
	}
	copied := *user
	return &copied, nil
}

func (f *fakeRepository) GetByEmail(
	_ context.Context,
	email string,
) (*User, error) {
	user, ok := f.byEmail[email]
	if !ok {
		return nil, fmt.Errorf("get user by email: %w", core.ErrNotFound)
	}
	copied := *user
	return &copied, nil
}

func (f *fakeRepository) Update(_ context.Context, user *User) error {
	if _, ok := f.byID[user.ID]; !ok {
		return fmt.Errorf("update user %s: %w", user.ID, core.ErrNotFound)
	}
	f.byID[user.ID] = user
	return nil
}

func (f *fakeRepository) Delete(_ context.Context, id string) error {
	user, ok := f.byID[id]
	if !ok {
		return fmt.Errorf("delete user %s: %w", id, core.ErrNotFound)
	}
	delete(f.byEmail, user.Email)
	delete(f.byID, id)
	return nil
}

func (f *fakeRepository) List(_ context.Context) ([]User, error) {
	users := make([]User, 0, len(f.byID))
	for _, u := range f.byID {
		users = append(users, *u)
	}
	return users, nil
}

func (f *fakeRepository) Count(_ context.Context) (int, error) {
	return len(f.byID), nil
}

func TestRegisterAlwaysAssignsClienteRole(t *testing.T) {
	service := NewService(newFakeRepository())

	user, err := service.Register(context.Background(), RegisterRequest{
		Name:     "Ana",
		Email:    "ANA@Example.com",
		Password: "secret123",
	})
	require.NoError(t, err)

	assert.Equal(t, RoleCliente, user.Role)
	assert.Equal(t, "ana@example.com", user.Email)
	assert.NotEqual(t, "secret123", user.PasswordHash)

	ok, err := core.VerifyPassword("secret123", user.PasswordHash)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestRegisterStripsEmptyOptionalFields(t *testing.T) {
	service := NewService(newFakeRepository())

	user, err := service.Register(context.Background(), RegisterRequest{
		Name:     "Ana",
		Email:    "ana@example.com",
		Password: "secret123",
		Phone:    "   ",
		Address:  "",
	})
	require.NoError(t, err)

	assert.Nil(t, user.Phone)
	assert.Nil(t, user.Address)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	service := NewService(newFakeRepository())
	ctx := context.Background()

	_, err := service.Register(ctx, RegisterRequest{
		Name:     "Ana",
		Email:    "ana@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)

	_, err = service.Register(ctx, RegisterRequest{
		Name:     "Otra Ana",
		Email:    "ana@example.com",
		Password: "secret456",
	})
	require.ErrorIs(t, err, core.ErrDuplicateKey)
}

func TestUserResponseOmitsPasswordHash(t *testing.T) {
	phone := "555-0100"
	resp := ToUserResponse(&User{
		ID:           "u1",
		Name:         "Ana",
		Email:        "ana@example.com",
		PasswordHash: "$argon2id$...",
		Role:         RoleCliente,
		Phone:        &phone,
	})

	assert.Equal(t, "u1", resp.ID)
	assert.Equal(t, "555-0100", resp.Phone)
	assert.Empty(t, resp.Address)
}

func TestCreateDefaultsRole(t *testing.T) {
	service := NewService(newFakeRepository())

	user, err := service.Create(context.Background(), CreateCustomerRequest{
		Name:     "Admin Made",
		Email:    "made@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)

	assert.Equal(t, RoleCliente, user.Role)
}
