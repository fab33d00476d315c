// BYH Music Store | 2026
// service_test.go

package auth

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/byhstore/byh-store/internal/core"
)

type fakeRepository struct {
	byHash map[string]*RefreshToken
	byID   map[string]*RefreshToken
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{
		byHash: make(map[string]*RefreshToken),
		byID:   make(map[string]*RefreshToken),
	}
}

func (f *fakeRepository) Create(_ context.Context, token *RefreshToken) error {
	token.CreatedAt = time.Now()
	f.byHash[token.TokenHash] = token
	f.byID[token.ID] = token
	return nil
}

func (f *fakeRepository) FindByHash(
	_ context.Context,
	tokenHash string,
) (*RefreshToken, error) {
	token, ok := f.byHash[tokenHash]
	if !ok {
		return nil, fmt.Errorf("find refresh token: %w", core.ErrNotFound)
	}
	return token, nil
}

func (f *fakeRepository) FindByID(
	_ context.Context,
	id string,
) (*RefreshToken, error) {
	token, ok := f.byID[id]
	if !ok {
		return nil, fmt.Errorf("find refresh token: %w", core.ErrNotFound)
	}
	return token, nil
}

func (f *fakeRepository) MarkAsUsed(
	_ context.Context,
	id, replacedByID string,
) error {
	token, ok := f.byID[id]
	if !ok || token.IsUsed {
		return fmt.Errorf("mark refresh token as used: %w", core.ErrNotFound)
	}
	now := time.Now()
	token.IsUsed = true
	token.UsedAt = &now
	token.ReplacedByID = &replacedByID
	return nil
}

func (f *fakeRepository) RevokeByID(_ context.Context, id string) error {
	token, ok := f.byID[id]
	if !ok || token.RevokedAt != nil {
		return fmt.Errorf("revoke refresh token: %w", core.ErrNotFound)
	}
	now := time.Now()
	token.RevokedAt = &now
	return nil
}

func (f *fakeRepository) RevokeByFamilyID(
	_ context.Context,
	familyID string,
) error {
	now := time.Now()
	for _, token := range f.byID {
		if token.FamilyID == familyID && token.RevokedAt == nil {
			token.RevokedAt = &now
		}
	}
	return nil
}

func (f *fakeRepository) RevokeAllForUser(
	_ context.Context,
	userID string,
) error {
	now := time.Now()
	for _, token := range f.byID {
		if token.UserID == userID && token.RevokedAt == nil {
			token.RevokedAt = &now
		}
	}
	return nil
}

func (f *fakeRepository) GetActiveSessionsForUser(
	_ context.Context,
	userID string,
) ([]RefreshToken, error) {
	sessions := []RefreshToken{}
	for _, token := range f.byID {
		if token.UserID == userID && token.IsValid() {
			sessions = append(sessions, *token)
		}
	}
	return sessions, nil
}

func (f *fakeRepository) DeleteExpired(_ context.Context) (int64, error) {
	return 0, nil
}

type fakeIssuer struct{}

func (fakeIssuer) CreateAccessToken(claims AccessTokenClaims) (string, error) {
	return "access." + claims.UserID, nil
}

func (fakeIssuer) CreateRefreshToken(
	userID, familyID string,
) (*RefreshTokenData, error) {
	token, err := core.GenerateRefreshToken()
	if err != nil {
		return nil, err
	}
	if familyID == "" {
		familyID = uuid.New().String()
	}
	return &RefreshTokenData{
		Token:     token,
		Hash:      core.HashToken(token),
		ExpiresAt: time.Now().Add(time.Hour),
		FamilyID:  familyID,
	}, nil
}

type fakeUsers struct {
	users map[string]*UserInfo
}

func newFakeUsers(t *testing.T, password string) *fakeUsers {
	t.Helper()

	hash, err := core.HashPassword(password)
	require.NoError(t, err)

	return &fakeUsers{users: map[string]*UserInfo{
		"ana@example.com": {
			ID:           "u1",
			Name:         "Ana",
			Email:        "ana@example.com",
			PasswordHash: hash,
			Role:         "cliente",
		},
	}}
}

func (f *fakeUsers) GetByEmail(
	_ context.Context,
	email string,
) (*UserInfo, error) {
	user, ok := f.users[email]
	if !ok {
		return nil, fmt.Errorf("get user by email: %w", core.ErrNotFound)
	}
	return user, nil
}

func (f *fakeUsers) GetByID(_ context.Context, id string) (*UserInfo, error) {
	for _, user := range f.users {
		if user.ID == id {
			return user, nil
		}
	}
	return nil, fmt.Errorf("get user %s: %w", id, core.ErrNotFound)
}

func (f *fakeUsers) Register(
	_ context.Context,
	req RegisterRequest,
) (*UserInfo, error) {
	if _, ok := f.users[req.Email]; ok {
		return nil, fmt.Errorf("create user: %w", core.ErrDuplicateKey)
	}
	user := &UserInfo{
		ID:    uuid.New().String(),
		Name:  req.Name,
		Email: req.Email,
		Role:  "cliente",
	}
	f.users[req.Email] = user
	return user, nil
}

func newTestService(t *testing.T) (*Service, *fakeRepository) {
	t.Helper()
	repo := newFakeRepository()
	return NewService(repo, fakeIssuer{}, newFakeUsers(t, "secret123")), repo
}

func TestLoginSuccess(t *testing.T) {
	service, _ := newTestService(t)

	resp, err := service.Login(context.Background(), LoginRequest{
		Email:    "ana@example.com",
		Password: "secret123",
	}, "test-agent", "127.0.0.1")
	require.NoError(t, err)

	assert.Equal(t, "access.u1", resp.Token)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Equal(t, "ana@example.com", resp.User.Email)
}

func TestLoginWrongPassword(t *testing.T) {
	service, _ := newTestService(t)

	_, err := service.Login(context.Background(), LoginRequest{
		Email:    "ana@example.com",
		Password: "not-it",
	}, "", "")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginUnknownEmail(t *testing.T) {
	service, _ := newTestService(t)

	_, err := service.Login(context.Background(), LoginRequest{
		Email:    "nobody@example.com",
		Password: "secret123",
	}, "", "")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRefreshRotatesToken(t *testing.T) {
	service, repo := newTestService(t)
	ctx := context.Background()

	login, err := service.Login(ctx, LoginRequest{
		Email:    "ana@example.com",
		Password: "secret123",
	}, "", "")
	require.NoError(t, err)

	refreshed, err := service.Refresh(ctx, login.RefreshToken, "", "")
	require.NoError(t, err)
	assert.NotEqual(t, login.RefreshToken, refreshed.RefreshToken)

	original := repo.byHash[core.HashToken(login.RefreshToken)]
	assert.True(t, original.IsUsed)
}

func TestRefreshReuseRevokesFamily(t *testing.T) {
	service, repo := newTestService(t)
	ctx := context.Background()

	login, err := service.Login(ctx, LoginRequest{
		Email:    "ana@example.com",
		Password: "secret123",
	}, "", "")
	require.NoError(t, err)

	refreshed, err := service.Refresh(ctx, login.RefreshToken, "", "")
	require.NoError(t, err)

	// replaying the consumed token must kill the whole chain
	_, err = service.Refresh(ctx, login.RefreshToken, "", "")
	require.ErrorIs(t, err, ErrTokenReuse)

	successor := repo.byHash[core.HashToken(refreshed.RefreshToken)]
	assert.NotNil(t, successor.RevokedAt)

	_, err = service.Refresh(ctx, refreshed.RefreshToken, "", "")
	require.ErrorIs(t, err, core.ErrTokenRevoked)
}

func TestLogoutRevokesToken(t *testing.T) {
	service, _ := newTestService(t)
	ctx := context.Background()

	login, err := service.Login(ctx, LoginRequest{
		Email:    "ana@example.com",
		Password: "secret123",
	}, "", "")
	require.NoError(t, err)

	require.NoError(t, service.Logout(ctx, login.RefreshToken, "u1"))

	_, err = service.Refresh(ctx, login.RefreshToken, "", "")
	require.ErrorIs(t, err, core.ErrTokenRevoked)
}

func TestLogoutRejectsForeignToken(t *testing.T) {
	service, _ := newTestService(t)
	ctx := context.Background()

	login, err := service.Login(ctx, LoginRequest{
		Email:    "ana@example.com",
		Password: "secret123",
	}, "", "")
	require.NoError(t, err)

	err = service.Logout(ctx, login.RefreshToken, "someone-else")
	require.ErrorIs(t, err, core.ErrForbidden)
}
