package utils

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func signClaims(t *testing.T, method jwt.SigningMethod, claims jwt.Claims, key string) string {
	t.Helper()
	s, err := jwt.NewWithClaims(method, claims).SignedString([]byte(key))
	if err != nil {
		t.Fatalf("signing: %v", err)
	}
	return s
}

func TestGenerateJWTToken_Success(t *testing.T) {
	token, err := GenerateJWTToken("test-issuer", "admin@beatfluencer.com", time.Hour, "secret-key")

	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if token.SignedString == "" {
		t.Error("expected non-empty SignedString")
	}

	claims, ok := token.Token.Claims.(*jwt.RegisteredClaims)
	if !ok {
		t.Fatal("could not cast claims to RegisteredClaims")
	}
	if claims.Issuer != "test-issuer" {
		t.Errorf("expected issuer test-issuer, got %s", claims.Issuer)
	}
	if claims.Subject != "admin@beatfluencer.com" {
		t.Errorf("expected subject to be the email, got %s", claims.Subject)
	}
	if got := claims.ExpiresAt.Sub(claims.IssuedAt.Time); got != time.Hour {
		t.Errorf("expected 1h lifetime, got %v", got)
	}
}

func TestGenerateJWTToken_ZeroDurationFallsBack(t *testing.T) {
	token, err := GenerateJWTToken("iss", "a@b.c", 0, "key")
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	if got := token.ExpiresAt.Sub(token.IssuedAt.Time); got != DefaultTokenDuration {
		t.Errorf("expected %v lifetime, got %v", DefaultTokenDuration, got)
	}
}

func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name     string
		issuer   string
		email    string
		duration time.Duration
		key      string
	}{
		{"empty issuer", "", "a@b.c", time.Hour, "key"},
		{"empty email", "iss", "", time.Hour, "key"},
		{"negative duration", "iss", "a@b.c", -time.Second, "key"},
		{"empty key", "iss", "a@b.c", time.Hour, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateJWTToken(tt.issuer, tt.email, tt.duration, tt.key)
			if err == nil {
				t.Error("expected error for invalid parameters, got nil")
			}
		})
	}
}

func TestValidateAndParseJWTToken_Success(t *testing.T) {
	genToken, err := GenerateJWTToken("test-issuer", "cm_new@test.com", 5*time.Minute, "secret-key")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	parsed, err := ValidateAndParseJWTToken(genToken.SignedString, "secret-key", "test-issuer")

	if err != nil {
		t.Fatalf("expected token to be valid, got error: %v", err)
	}
	if parsed.Email != "cm_new@test.com" {
		t.Errorf("expected email cm_new@test.com, got %s", parsed.Email)
	}
	if parsed.String() != genToken.SignedString {
		t.Error("expected parsed token to keep its compact form")
	}
}

func TestValidateAndParseJWTToken_Rejects(t *testing.T) {
	now := time.Now()
	valid := jwt.RegisteredClaims{
		Issuer:    "iss",
		Subject:   "a@b.c",
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
	}

	expired := valid
	expired.ExpiresAt = jwt.NewNumericDate(now.Add(-time.Minute))

	noExpiry := valid
	noExpiry.ExpiresAt = nil

	noSubject := valid
	noSubject.Subject = ""

	tests := []struct {
		name  string
		token string
	}{
		{"wrong key", signClaims(t, jwt.SigningMethodHS256, valid, "other-key")},
		{"wrong issuer", signClaims(t, jwt.SigningMethodHS256, jwt.RegisteredClaims{Issuer: "evil", Subject: "a@b.c", ExpiresAt: valid.ExpiresAt}, "key")},
		{"wrong algorithm", signClaims(t, jwt.SigningMethodHS512, valid, "key")},
		{"expired", signClaims(t, jwt.SigningMethodHS256, expired, "key")},
		{"no expiry", signClaims(t, jwt.SigningMethodHS256, noExpiry, "key")},
		{"empty subject", signClaims(t, jwt.SigningMethodHS256, noSubject, "key")},
		{"garbage", "not.a.token"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ValidateAndParseJWTToken(tt.token, "key", "iss")
			if err == nil {
				t.Error("expected validation error, got nil")
			}
		})
	}
}

func TestValidateAndParseJWTToken_ExpiredWrapsSentinel(t *testing.T) {
	claims := jwt.RegisteredClaims{
		Issuer:    "iss",
		Subject:   "a@b.c",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
	}

	_, err := ValidateAndParseJWTToken(signClaims(t, jwt.SigningMethodHS256, claims, "key"), "key", "iss")

	if !errors.Is(err, jwt.ErrTokenExpired) {
		t.Errorf("expected ErrTokenExpired, got %v", err)
	}
}

func TestParseBearerToken(t *testing.T) {
	tests := []struct {
		header  string
		want    string
		wantErr bool
	}{
		{"Bearer abc.def.ghi", "abc.def.ghi", false},
		{"bearer abc", "abc", false},
		{"  Bearer   abc  ", "abc", false},
		{"", "", true},
		{"Bearer", "", true},
		{"Basic dXNlcjpwYXNz", "", true},
		{"Bearer a b", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.header, func(t *testing.T) {
			got, err := ParseBearerToken(tt.header)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidBearerHeader) {
					t.Errorf("expected ErrInvalidBearerHeader, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}
