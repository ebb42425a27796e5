package adapters

import (
	"testing"
)

func TestHashAndVerifyPassword(t *testing.T) {
	svc := NewPasswordService()

	hash, err := svc.HashPassword("SecurePass123!")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}
	if hash == "SecurePass123!" {
		t.Fatal("HashPassword() returned the plain password")
	}

	if err := svc.VerifyPassword(hash, "SecurePass123!"); err != nil {
		t.Errorf("VerifyPassword() with correct password error = %v", err)
	}
	if err := svc.VerifyPassword(hash, "WrongPass123!"); err == nil {
		t.Error("VerifyPassword() with wrong password expected error, got nil")
	}
}

func TestHashPasswordProducesUniqueHashes(t *testing.T) {
	svc := NewPasswordService()

	first, err := svc.HashPassword("SecurePass123!")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}
	second, err := svc.HashPassword("SecurePass123!")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}
	if first == second {
		t.Error("expected different hashes for the same password (random salt)")
	}
}

func TestValidatePasswordStrength(t *testing.T) {
	svc := NewPasswordService()

	tests := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{"empty password", "", true},
		{"too short", "short", true},
		{"seven characters", "1234567", true},
		{"exactly eight characters", "12345678", false},
		{"long password", "SecurePass123!", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := svc.ValidatePasswordStrength(tt.password)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePasswordStrength(%q) error = %v, wantErr %v", tt.password, err, tt.wantErr)
			}
		})
	}
}
