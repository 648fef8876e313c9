package utils

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestGenerateJWTToken_RoundTrip(t *testing.T) {
	token, err := GenerateJWTToken("stylectl", time.Minute, "secret-key")
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	subject, err := ValidateJWTToken(token, "secret-key")
	if err != nil {
		t.Fatalf("expected valid token, got: %v", err)
	}
	if subject != "stylectl" {
		t.Errorf("expected subject 'stylectl', got %q", subject)
	}
}

func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name    string
		subject string
		ttl     time.Duration
		key     string
	}{
		{"empty subject", "", time.Hour, "key"},
		{"zero ttl", "sub", 0, "key"},
		{"empty key", "sub", time.Hour, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateJWTToken(tt.subject, tt.ttl, tt.key)
			if !errors.Is(err, ErrInvalidTokenParams) {
				t.Errorf("expected ErrInvalidTokenParams, got %v", err)
			}
		})
	}
}

func TestValidateJWTToken_Rejects(t *testing.T) {
	good, _ := GenerateJWTToken("stylectl", time.Minute, "secret-key")

	sign := func(claims jwt.Claims, method jwt.SigningMethod, key any) string {
		s, err := jwt.NewWithClaims(method, claims).SignedString(key)
		if err != nil {
			t.Fatalf("signing: %v", err)
		}
		return s
	}
	now := time.Now()

	tests := []struct {
		name  string
		token string
	}{
		{"wrong key", good},
		{"expired", sign(&jwt.RegisteredClaims{
			Issuer: TokenIssuer, Subject: "x",
			ExpiresAt: jwt.NewNumericDate(now.Add(-time.Minute)),
		}, jwt.SigningMethodHS256, []byte("secret-key"))},
		{"no expiry", sign(&jwt.RegisteredClaims{
			Issuer: TokenIssuer, Subject: "x",
		}, jwt.SigningMethodHS256, []byte("secret-key"))},
		{"other issuer", sign(&jwt.RegisteredClaims{
			Issuer: "someone", Subject: "x",
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Minute)),
		}, jwt.SigningMethodHS256, []byte("secret-key"))},
		{"other method", sign(&jwt.RegisteredClaims{
			Issuer: TokenIssuer, Subject: "x",
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Minute)),
		}, jwt.SigningMethodHS512, []byte("secret-key"))},
		{"empty subject", sign(&jwt.RegisteredClaims{
			Issuer:    TokenIssuer,
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Minute)),
		}, jwt.SigningMethodHS256, []byte("secret-key"))},
		{"garbage", "not.a.token"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key := "secret-key"
			if tt.name == "wrong key" {
				key = "other-key"
			}
			if _, err := ValidateJWTToken(tt.token, key); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestParseBearerToken(t *testing.T) {
	tests := []struct {
		header  string
		want    string
		wantErr bool
	}{
		{header: "Bearer abc", want: "abc"},
		{header: "  bearer   abc  ", want: "abc"},
		{header: "Basic abc", wantErr: true},
		{header: "Bearer", wantErr: true},
		{header: "Bearer ", wantErr: true},
		{header: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.header, func(t *testing.T) {
			got, err := ParseBearerToken(tt.header)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidAuthorizationHeader) {
					t.Errorf("expected ErrInvalidAuthorizationHeader, got %v", err)
				}
				return
			}
			if err != nil || got != tt.want {
				t.Errorf("got %q, %v; want %q", got, err, tt.want)
			}
		})
	}
}
