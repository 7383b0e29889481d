package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

func newTestService(now time.Time) *JWTService {
	s := NewJWTService(JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: time.Hour,
		TokenIssuer:    "tnp.test",
	})
	s.now = func() time.Time { return now }
	return s
}

func TestGenerateAndValidateRoundTrip(t *testing.T) {
	s := newTestService(time.Now())
	id := uuid.New()

	token, expiresIn, err := s.GenerateAccessToken(Identity{
		ID:             id,
		Role:           "STUDENT",
		Email:          "student1@example.com",
		Branch:         "CSE",
		GraduationYear: 2026,
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if expiresIn != 3600 {
		t.Fatalf("expected expiresIn 3600, got %d", expiresIn)
	}

	claims, err := s.ValidateAndExtractClaims(token)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	identity, err := claims.Identity()
	if err != nil {
		t.Fatalf("identity: %v", err)
	}
	if identity.ID != id || identity.Role != "STUDENT" || identity.Branch != "CSE" || identity.GraduationYear != 2026 {
		t.Fatalf("unexpected identity: %+v", identity)
	}
}

func TestValidateExpiredToken(t *testing.T) {
	issued := time.Now().Add(-2 * time.Hour)
	token, _, err := newTestService(issued).GenerateAccessToken(Identity{ID: uuid.New(), Role: "ADMIN", Email: "admin@tnp.com"})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	_, err = newTestService(time.Now()).ValidateToken(token)
	if !errors.Is(err, ErrExpiredToken) {
		t.Fatalf("expected ErrExpiredToken, got %v", err)
	}
}

func TestValidateWrongSecret(t *testing.T) {
	token, _, err := newTestService(time.Now()).GenerateAccessToken(Identity{ID: uuid.New(), Role: "ADMIN", Email: "admin@tnp.com"})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	other := NewJWTService(JWTConfig{SecretKey: "other", AccessTokenExp: time.Hour, TokenIssuer: "tnp.test"})
	if _, err := other.ValidateToken(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestExtractBearerToken(t *testing.T) {
	cases := []struct {
		name    string
		header  string
		want    string
		wantErr bool
	}{
		{name: "Bearer", header: "Bearer a.b.c", want: "a.b.c"},
		{name: "Raw", header: "a.b.c", want: "a.b.c"},
		{name: "Empty", header: "", wantErr: true},
		{name: "EmptyBearer", header: "Bearer ", wantErr: true},
		{name: "Garbage", header: "Basic dXNlcg==", wantErr: true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := ExtractBearerToken(c.header)
			if c.wantErr {
				if err == nil {
					t.Fatalf("expected error for %q", c.header)
				}
				return
			}
			if err != nil || got != c.want {
				t.Fatalf("want %q got %q (err %v)", c.want, got, err)
			}
		})
	}
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPasswordWithCost("Admin@123", bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if !CheckPassword(hash, "Admin@123") {
		t.Fatalf("expected password to match")
	}
	if CheckPassword(hash, "admin@123") {
		t.Fatalf("expected mismatch for different password")
	}
}
