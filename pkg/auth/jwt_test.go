package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestGenerateAndValidateToken(t *testing.T) {
	manager := NewJWTManager("test-secret", time.Hour)

	token, err := manager.GenerateToken(42, "ana@example.com", "Ana")
	if err != nil {
		t.Fatalf("GenerateToken returned error: %v", err)
	}

	claims, err := manager.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken returned error: %v", err)
	}
	if claims.UserID != 42 {
		t.Errorf("UserID = %d, want 42", claims.UserID)
	}
	if claims.Email != "ana@example.com" {
		t.Errorf("Email = %q, want ana@example.com", claims.Email)
	}
	if claims.DisplayName != "Ana" {
		t.Errorf("DisplayName = %q, want Ana", claims.DisplayName)
	}
}

func TestValidateTokenWrongKey(t *testing.T) {
	manager := NewJWTManager("test-secret", time.Hour)
	other := NewJWTManager("another-secret", time.Hour)

	token, err := manager.GenerateToken(1, "a@b.c", "A")
	if err != nil {
		t.Fatalf("GenerateToken returned error: %v", err)
	}

	if _, err := other.ValidateToken(token); err == nil {
		t.Error("expected validation to fail with a different key")
	}
}

func TestValidateTokenExpired(t *testing.T) {
	manager := NewJWTManager("test-secret", -time.Minute)

	token, err := manager.GenerateToken(1, "a@b.c", "A")
	if err != nil {
		t.Fatalf("GenerateToken returned error: %v", err)
	}

	if _, err := manager.ValidateToken(token); err == nil {
		t.Error("expected validation to fail for an expired token")
	}
}

func TestValidateTokenGarbage(t *testing.T) {
	manager := NewJWTManager("test-secret", time.Hour)

	if _, err := manager.ValidateToken("not-a-token"); err == nil {
		t.Error("expected validation to fail for a malformed token")
	}
}

func TestUnverifiedIDTokenClaims(t *testing.T) {
	// Build an ID token the way Google would, signed with a key we do not
	// share with the decoder.
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   "109876543210",
		"email": "ana@example.com",
		"name":  "Ana Silva",
	})
	signed, err := token.SignedString([]byte("google-private-key"))
	if err != nil {
		t.Fatalf("signing test token: %v", err)
	}

	claims, err := UnverifiedIDTokenClaims(signed)
	if err != nil {
		t.Fatalf("UnverifiedIDTokenClaims returned error: %v", err)
	}
	if sub, _ := claims["sub"].(string); sub != "109876543210" {
		t.Errorf("sub = %q, want 109876543210", sub)
	}
	if email, _ := claims["email"].(string); email != "ana@example.com" {
		t.Errorf("email = %q, want ana@example.com", email)
	}
	if name, _ := claims["name"].(string); name != "Ana Silva" {
		t.Errorf("name = %q, want Ana Silva", name)
	}
}

func TestUnverifiedIDTokenClaimsMalformed(t *testing.T) {
	if _, err := UnverifiedIDTokenClaims("garbage"); err == nil {
		t.Error("expected malformed token to fail")
	}
}
