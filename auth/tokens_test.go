package auth

import (
	"testing"

	"mercato/globals"
	"mercato/middleware"
	"mercato/models"
)

func init() {
	globals.JwtSecret = []byte("test-secret")
}

func TestGenerateTokenRoundTrip(t *testing.T) {
	user := models.User{UserID: "u123", Phone: "1234567890"}

	token, err := GenerateToken(user)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	claims, err := middleware.ValidateJWT("Bearer " + token)
	if err != nil {
		t.Fatalf("ValidateJWT: %v", err)
	}
	if claims.UserID != user.UserID {
		t.Errorf("UserID = %q, want %q", claims.UserID, user.UserID)
	}
	if claims.Phone != user.Phone {
		t.Errorf("Phone = %q, want %q", claims.Phone, user.Phone)
	}
	if claims.Role != "" {
		t.Errorf("user token carries role %q", claims.Role)
	}
}

func TestGenerateAdminTokenCarriesRole(t *testing.T) {
	admin := models.Admin{AdminID: "a1", Phone: "9876543210", Role: "admin"}

	token, err := GenerateAdminToken(admin)
	if err != nil {
		t.Fatalf("GenerateAdminToken: %v", err)
	}

	claims, err := middleware.ValidateJWT("Bearer " + token)
	if err != nil {
		t.Fatalf("ValidateJWT: %v", err)
	}
	if claims.Role != "admin" {
		t.Errorf("Role = %q, want admin", claims.Role)
	}
	if claims.UserID != admin.AdminID {
		t.Errorf("UserID = %q, want %q", claims.UserID, admin.AdminID)
	}
}

func TestValidateJWTRejectsGarbage(t *testing.T) {
	cases := []string{
		"",
		"Bearer ",
		"Bearer not-a-token",
		"not-a-token",
	}
	for _, header := range cases {
		if _, err := middleware.ValidateJWT(header); err == nil {
			t.Errorf("ValidateJWT(%q) accepted invalid input", header)
		}
	}
}

func TestValidateJWTRejectsWrongKey(t *testing.T) {
	token, err := GenerateToken(models.User{UserID: "u1", Phone: "1234567890"})
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	old := globals.JwtSecret
	globals.JwtSecret = []byte("different-secret")
	defer func() { globals.JwtSecret = old }()

	if _, err := middleware.ValidateJWT("Bearer " + token); err == nil {
		t.Fatal("token signed with another key was accepted")
	}
}
