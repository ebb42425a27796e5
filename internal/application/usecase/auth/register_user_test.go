package auth

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"

	"github.com/habit-tracker/backend/internal/application/adapter"
	"github.com/habit-tracker/backend/internal/domain/entity"
	domainerror "github.com/habit-tracker/backend/internal/domain/error"
)

// fakeUserRepo is an in-memory adapter.UserRepository.
type fakeUserRepo struct {
	users map[uuid.UUID]*entity.User
}

func newFakeUserRepo(users ...*entity.User) *fakeUserRepo {
	repo := &fakeUserRepo{users: make(map[uuid.UUID]*entity.User)}
	for _, u := range users {
		repo.users[u.ID] = u
	}
	return repo
}

func (r *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, domainerror.ErrUserNotFound
	}
	return user, nil
}

func (r *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, domainerror.ErrUserNotFound
}

func (r *fakeUserRepo) Update(ctx context.Context, user *entity.User) error {
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.users, id)
	return nil
}

func (r *fakeUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, err := r.FindByEmail(ctx, email)
	if errors.Is(err, domainerror.ErrUserNotFound) {
		return false, nil
	}
	return err == nil, err
}

// fakePasswordService hashes by prefixing, strong enough for use case tests.
type fakePasswordService struct{}

func (s *fakePasswordService) HashPassword(password string) (string, error) {
	return "hashed:" + password, nil
}

func (s *fakePasswordService) VerifyPassword(hashedPassword, password string) error {
	if hashedPassword != "hashed:"+password {
		return errors.New("password mismatch")
	}
	return nil
}

func (s *fakePasswordService) ValidatePasswordStrength(password string) error {
	if len(password) < 8 {
		return errors.New("too short")
	}
	return nil
}

// fakeTokenService issues deterministic tokens.
type fakeTokenService struct {
	invalidated map[string]bool
}

func newFakeTokenService() *fakeTokenService {
	return &fakeTokenService{invalidated: make(map[string]bool)}
}

func (s *fakeTokenService) GenerateTokenPair(ctx context.Context, userID uuid.UUID, email string) (*adapter.TokenPair, error) {
	return &adapter.TokenPair{
		AccessToken:  fmt.Sprintf("access-%s", userID),
		RefreshToken: fmt.Sprintf("refresh-%s", userID),
	}, nil
}

func (s *fakeTokenService) ValidateAccessToken(ctx context.Context, token string) (*adapter.TokenClaims, error) {
	return nil, errors.New("not implemented")
}

func (s *fakeTokenService) ValidateRefreshToken(ctx context.Context, token string) (*adapter.TokenClaims, error) {
	return nil, errors.New("not implemented")
}

func (s *fakeTokenService) InvalidateRefreshToken(ctx context.Context, token string) error {
	s.invalidated[token] = true
	return nil
}

func (s *fakeTokenService) IsRefreshTokenValid(ctx context.Context, token string) (bool, error) {
	return !s.invalidated[token], nil
}

func authErrorCode(t *testing.T, err error) domainerror.AuthErrorCode {
	t.Helper()
	var authErr *domainerror.AuthError
	if !errors.As(err, &authErr) {
		t.Fatalf("expected AuthError, got %v", err)
	}
	return authErr.Code
}

func TestRegisterUser(t *testing.T) {
	repo := newFakeUserRepo()
	uc := NewRegisterUserUseCase(repo, &fakePasswordService{}, newFakeTokenService())

	output, err := uc.Execute(context.Background(), RegisterUserInput{
		Email:    "alice@example.com",
		Name:     "Alice",
		Password: "SecurePass123!",
	})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if output.AccessToken == "" || output.RefreshToken == "" {
		t.Error("expected tokens in output")
	}
	if output.User.Email != "alice@example.com" {
		t.Errorf("user email = %q, want alice@example.com", output.User.Email)
	}
	if output.User.PasswordHash == "SecurePass123!" {
		t.Error("password stored in plain text")
	}

	stored, err := repo.FindByEmail(context.Background(), "alice@example.com")
	if err != nil {
		t.Fatalf("user was not persisted: %v", err)
	}
	if stored.ID != output.User.ID {
		t.Error("persisted user does not match output")
	}
}

func TestRegisterUserDuplicateEmail(t *testing.T) {
	existing := entity.NewUser("alice@example.com", "Alice", "hashed:SecurePass123!")
	uc := NewRegisterUserUseCase(newFakeUserRepo(existing), &fakePasswordService{}, newFakeTokenService())

	_, err := uc.Execute(context.Background(), RegisterUserInput{
		Email:    "alice@example.com",
		Name:     "Other Alice",
		Password: "SecurePass123!",
	})
	if code := authErrorCode(t, err); code != domainerror.ErrCodeEmailExists {
		t.Errorf("error code = %q, want %q", code, domainerror.ErrCodeEmailExists)
	}
}

func TestRegisterUserWeakPassword(t *testing.T) {
	uc := NewRegisterUserUseCase(newFakeUserRepo(), &fakePasswordService{}, newFakeTokenService())

	_, err := uc.Execute(context.Background(), RegisterUserInput{
		Email:    "alice@example.com",
		Name:     "Alice",
		Password: "short",
	})
	if code := authErrorCode(t, err); code != domainerror.ErrCodeWeakPassword {
		t.Errorf("error code = %q, want %q", code, domainerror.ErrCodeWeakPassword)
	}
}

func TestRegisterUserInvalidEmail(t *testing.T) {
	uc := NewRegisterUserUseCase(newFakeUserRepo(), &fakePasswordService{}, newFakeTokenService())

	for _, email := range []string{"", "not-an-email", "missing@tld", "@example.com", "user@.com"} {
		_, err := uc.Execute(context.Background(), RegisterUserInput{
			Email:    email,
			Name:     "Alice",
			Password: "SecurePass123!",
		})
		if code := authErrorCode(t, err); code != domainerror.ErrCodeInvalidEmail {
			t.Errorf("email %q: error code = %q, want %q", email, code, domainerror.ErrCodeInvalidEmail)
		}
	}
}

func TestIsValidEmail(t *testing.T) {
	tests := []struct {
		email string
		want  bool
	}{
		{"user@example.com", true},
		{"first.last+tag@sub.example.co", true},
		{"user@example", false},
		{"user example.com", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := isValidEmail(tt.email); got != tt.want {
			t.Errorf("isValidEmail(%q) = %v, want %v", tt.email, got, tt.want)
		}
	}
}

func TestLoginUser(t *testing.T) {
	user := entity.NewUser("alice@example.com", "Alice", "hashed:SecurePass123!")
	uc := NewLoginUserUseCase(newFakeUserRepo(user), &fakePasswordService{}, newFakeTokenService())

	output, err := uc.Execute(context.Background(), LoginUserInput{
		Email:    "alice@example.com",
		Password: "SecurePass123!",
	})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if output.User.ID != user.ID {
		t.Error("logged-in user does not match")
	}
	if output.AccessToken == "" || output.RefreshToken == "" {
		t.Error("expected tokens in output")
	}
}

func TestLoginUserWrongPassword(t *testing.T) {
	user := entity.NewUser("alice@example.com", "Alice", "hashed:SecurePass123!")
	uc := NewLoginUserUseCase(newFakeUserRepo(user), &fakePasswordService{}, newFakeTokenService())

	_, err := uc.Execute(context.Background(), LoginUserInput{
		Email:    "alice@example.com",
		Password: "WrongPass123!",
	})
	if code := authErrorCode(t, err); code != domainerror.ErrCodeInvalidCredentials {
		t.Errorf("error code = %q, want %q", code, domainerror.ErrCodeInvalidCredentials)
	}
}

func TestLoginUserUnknownEmailSameError(t *testing.T) {
	uc := NewLoginUserUseCase(newFakeUserRepo(), &fakePasswordService{}, newFakeTokenService())

	// Unknown emails must be indistinguishable from a wrong password.
	_, err := uc.Execute(context.Background(), LoginUserInput{
		Email:    "ghost@example.com",
		Password: "SecurePass123!",
	})
	if code := authErrorCode(t, err); code != domainerror.ErrCodeInvalidCredentials {
		t.Errorf("error code = %q, want %q", code, domainerror.ErrCodeInvalidCredentials)
	}
}
