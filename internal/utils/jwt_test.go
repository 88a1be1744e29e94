// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"testing"
	"time"

	"github.com/MKhiriev/go-product-tracker/models"
	"github.com/golang-jwt/jwt/v5"
)

func TestGenerateJWTToken_Success(t *testing.T) {
	identity := models.Identity{ID: 123, Email: "user@example.com"}

	token, err := GenerateJWTToken(identity, time.Hour, "secret-key")

	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if token.SignedString == "" {
		t.Error("expected non-empty SignedString")
	}
	if token.Token == nil {
		t.Error("expected non-nil jwt.Token object")
	}
	if token.Identity() != identity {
		t.Errorf("expected identity %+v, got %+v", identity, token.Identity())
	}
	if token.Claims.ExpiresAt == nil || token.Claims.IssuedAt == nil {
		t.Fatal("expected exp and iat claims")
	}
	if got := token.Claims.ExpiresAt.Sub(token.Claims.IssuedAt.Time); got != time.Hour {
		t.Errorf("expected lifetime of 1h, got %s", got)
	}
}

func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name     string
		duration time.Duration
		key      string
	}{
		{"zero duration", 0, "key"},
		{"negative duration", -time.Minute, "key"},
		{"empty key", time.Hour, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateJWTToken(models.Identity{ID: 1}, tt.duration, tt.key)
			if err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestValidateAndParseJWTToken_Success(t *testing.T) {
	identity := models.Identity{ID: 42, Email: "a@b.c"}
	token, err := GenerateJWTToken(identity, time.Hour, "secret")
	if err != nil {
		t.Fatalf("setup failed: %v", err)
	}

	parsed, err := ValidateAndParseJWTToken(token.SignedString, "secret")
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if parsed.Identity() != identity {
		t.Errorf("expected identity %+v, got %+v", identity, parsed.Identity())
	}
}

func TestValidateAndParseJWTToken_InvalidKey(t *testing.T) {
	token, _ := GenerateJWTToken(models.Identity{ID: 1}, time.Hour, "right-key")

	_, err := ValidateAndParseJWTToken(token.SignedString, "wrong-key")
	if err == nil {
		t.Error("expected error for invalid signature, got nil")
	}
}

func TestValidateAndParseJWTToken_Expired(t *testing.T) {
	claims := models.TokenClaims{
		ID:    1,
		Email: "a@b.c",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	}
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("setup failed: %v", err)
	}

	_, err = ValidateAndParseJWTToken(raw, "secret")
	if err == nil {
		t.Error("expected error for expired token, got nil")
	}
}

func TestValidateAndParseJWTToken_MissingExpiry(t *testing.T) {
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, models.TokenClaims{ID: 1}).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("setup failed: %v", err)
	}

	_, err = ValidateAndParseJWTToken(raw, "secret")
	if err == nil {
		t.Error("expected error for token without exp, got nil")
	}
}

func TestValidateAndParseJWTToken_RejectsOtherAlgorithms(t *testing.T) {
	claims := models.TokenClaims{
		ID: 1,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}

	hs512, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("setup failed: %v", err)
	}
	none, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("setup failed: %v", err)
	}

	for name, raw := range map[string]string{"HS512": hs512, "none": none} {
		t.Run(name, func(t *testing.T) {
			if _, err := ValidateAndParseJWTToken(raw, "secret"); err == nil {
				t.Errorf("expected %s token to be rejected", name)
			}
		})
	}
}

func TestValidateAndParseJWTToken_MissingUserID(t *testing.T) {
	claims := models.TokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	raw, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))

	_, err := ValidateAndParseJWTToken(raw, "secret")
	if err == nil {
		t.Error("expected error for token without user id, got nil")
	}
}

func TestValidateAndParseJWTToken_Malformed(t *testing.T) {
	_, err := ValidateAndParseJWTToken("not.a.valid.token", "secret")
	if err == nil {
		t.Error("expected error for malformed token, got nil")
	}
}

func TestParseBearerToken(t *testing.T) {
	tests := []struct {
		header  string
		want    string
		wantErr bool
	}{
		{header: "Bearer abc.def.ghi", want: "abc.def.ghi"},
		{header: "bearer abc", want: "abc"},
		{header: "  Bearer   abc  ", want: "abc"},
		{header: "Bearer", wantErr: true},
		{header: "Basic abc", wantErr: true},
		{header: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.header, func(t *testing.T) {
			got, err := ParseBearerToken(tt.header)
			if tt.wantErr {
				if err == nil {
					t.Errorf("expected error for %q", tt.header)
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
