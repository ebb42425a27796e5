package adapters

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
)

// fakeTokenRepository is an in-memory persistence.TokenRepository.
type fakeTokenRepository struct {
	saved       map[string]uuid.UUID
	invalidated map[string]bool
}

func newFakeTokenRepository() *fakeTokenRepository {
	return &fakeTokenRepository{
		saved:       make(map[string]uuid.UUID),
		invalidated: make(map[string]bool),
	}
}

func (r *fakeTokenRepository) SaveRefreshToken(ctx context.Context, token string, userID uuid.UUID, expiresAt time.Time) error {
	r.saved[token] = userID
	return nil
}

func (r *fakeTokenRepository) IsRefreshTokenValid(ctx context.Context, token string) (bool, error) {
	_, exists := r.saved[token]
	return exists && !r.invalidated[token], nil
}

func (r *fakeTokenRepository) InvalidateRefreshToken(ctx context.Context, token string) error {
	r.invalidated[token] = true
	return nil
}

func (r *fakeTokenRepository) InvalidateAllUserRefreshTokens(ctx context.Context, userID uuid.UUID) error {
	for token, owner := range r.saved {
		if owner == userID {
			r.invalidated[token] = true
		}
	}
	return nil
}

func TestGenerateAndValidateTokenPair(t *testing.T) {
	repo := newFakeTokenRepository()
	svc := NewTokenService("unit-test-secret", repo)
	ctx := context.Background()

	userID := uuid.New()
	pair, err := svc.GenerateTokenPair(ctx, userID, "user@example.com")
	if err != nil {
		t.Fatalf("GenerateTokenPair() error = %v", err)
	}
	if pair.AccessToken == "" || pair.RefreshToken == "" {
		t.Fatal("GenerateTokenPair() returned empty tokens")
	}
	if pair.AccessToken == pair.RefreshToken {
		t.Fatal("access and refresh tokens must differ")
	}

	claims, err := svc.ValidateAccessToken(ctx, pair.AccessToken)
	if err != nil {
		t.Fatalf("ValidateAccessToken() error = %v", err)
	}
	if claims.UserID != userID {
		t.Errorf("access claims UserID = %v, want %v", claims.UserID, userID)
	}
	if claims.Email != "user@example.com" {
		t.Errorf("access claims Email = %q, want %q", claims.Email, "user@example.com")
	}
	if !claims.ExpiresAt.After(time.Now()) {
		t.Error("access token already expired")
	}

	refreshClaims, err := svc.ValidateRefreshToken(ctx, pair.RefreshToken)
	if err != nil {
		t.Fatalf("ValidateRefreshToken() error = %v", err)
	}
	if refreshClaims.UserID != userID {
		t.Errorf("refresh claims UserID = %v, want %v", refreshClaims.UserID, userID)
	}

	if _, ok := repo.saved[pair.RefreshToken]; !ok {
		t.Error("refresh token was not persisted")
	}
}

func TestValidateTokenRejectsWrongType(t *testing.T) {
	svc := NewTokenService("unit-test-secret", newFakeTokenRepository())
	ctx := context.Background()

	pair, err := svc.GenerateTokenPair(ctx, uuid.New(), "user@example.com")
	if err != nil {
		t.Fatalf("GenerateTokenPair() error = %v", err)
	}

	if _, err := svc.ValidateAccessToken(ctx, pair.RefreshToken); err == nil {
		t.Error("ValidateAccessToken() accepted a refresh token")
	}
	if _, err := svc.ValidateRefreshToken(ctx, pair.AccessToken); err == nil {
		t.Error("ValidateRefreshToken() accepted an access token")
	}
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	ctx := context.Background()
	pair, err := NewTokenService("secret-a", newFakeTokenRepository()).GenerateTokenPair(ctx, uuid.New(), "user@example.com")
	if err != nil {
		t.Fatalf("GenerateTokenPair() error = %v", err)
	}

	other := NewTokenService("secret-b", newFakeTokenRepository())
	if _, err := other.ValidateAccessToken(ctx, pair.AccessToken); err == nil {
		t.Error("ValidateAccessToken() accepted a token signed with another secret")
	}
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	svc := NewTokenService("unit-test-secret", newFakeTokenRepository())

	if _, err := svc.ValidateAccessToken(context.Background(), "not-a-jwt"); err == nil {
		t.Error("ValidateAccessToken() accepted a malformed token")
	}
}

func TestInvalidateRefreshToken(t *testing.T) {
	repo := newFakeTokenRepository()
	svc := NewTokenService("unit-test-secret", repo)
	ctx := context.Background()

	pair, err := svc.GenerateTokenPair(ctx, uuid.New(), "user@example.com")
	if err != nil {
		t.Fatalf("GenerateTokenPair() error = %v", err)
	}

	valid, err := svc.IsRefreshTokenValid(ctx, pair.RefreshToken)
	if err != nil || !valid {
		t.Fatalf("IsRefreshTokenValid() = %v, %v, want true, nil", valid, err)
	}

	if err := svc.InvalidateRefreshToken(ctx, pair.RefreshToken); err != nil {
		t.Fatalf("InvalidateRefreshToken() error = %v", err)
	}

	valid, err = svc.IsRefreshTokenValid(ctx, pair.RefreshToken)
	if err != nil {
		t.Fatalf("IsRefreshTokenValid() error = %v", err)
	}
	if valid {
		t.Error("refresh token still valid after invalidation")
	}
}
