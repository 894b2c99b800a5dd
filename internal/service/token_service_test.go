package service

import (
	"errors"
	"testing"
	"time"

	"tempmail-api/internal/domain"
)

func newTestTokenService() *TokenService {
	return NewTokenService("access-secret", "refresh-secret", 15*time.Minute, 7*24*time.Hour)
}

func TestTokenService_IssueVerifyAccess(t *testing.T) {
	svc := newTestTokenService()
	user := domain.User{ID: "u1", Email: "user@example.com"}

	token, err := svc.IssueAccess(user)
	if err != nil {
		t.Fatalf("issue access: %v", err)
	}
	if token == "" {
		t.Fatalf("expected token")
	}

	claims, err := svc.VerifyAccess(token)
	if err != nil {
		t.Fatalf("verify access: %v", err)
	}
	if claims.UserID != "u1" || claims.Email != "user@example.com" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestTokenService_GeneratePairTokensDiffer(t *testing.T) {
	svc := newTestTokenService()
	user := domain.User{ID: "u1", Email: "user@example.com"}

	pair, err := svc.GeneratePair(user)
	if err != nil {
		t.Fatalf("generate pair: %v", err)
	}
	if pair.AccessToken == "" || pair.RefreshToken == "" {
		t.Fatalf("expected both tokens")
	}
	if pair.AccessToken == pair.RefreshToken {
		t.Fatalf("access and refresh should not be identical")
	}

	if _, err := svc.VerifyRefresh(pair.RefreshToken); err != nil {
		t.Fatalf("verify refresh: %v", err)
	}
}

func TestTokenService_ExpiredAccessToken(t *testing.T) {
	svc := NewTokenService("access-secret", "refresh-secret", -time.Minute, 7*24*time.Hour)
	user := domain.User{ID: "u1", Email: "user@example.com"}

	token, err := svc.IssueAccess(user)
	if err != nil {
		t.Fatalf("issue access: %v", err)
	}
	if _, err := svc.VerifyAccess(token); !errors.Is(err, ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestTokenService_CrossDomainRejected(t *testing.T) {
	svc := newTestTokenService()
	user := domain.User{ID: "u1", Email: "user@example.com"}

	pair, err := svc.GeneratePair(user)
	if err != nil {
		t.Fatalf("generate pair: %v", err)
	}

	// Un access token no debe pasar como refresh ni al revés.
	if _, err := svc.VerifyRefresh(pair.AccessToken); err == nil {
		t.Fatalf("expected access token to fail refresh verification")
	}
	if _, err := svc.VerifyAccess(pair.RefreshToken); err == nil {
		t.Fatalf("expected refresh token to fail access verification")
	}
}

func TestTokenService_SameSecretStillChecksType(t *testing.T) {
	// Aun compartiendo secret, el claim typ separa los dominios.
	svc := NewTokenService("shared", "shared", 15*time.Minute, time.Hour)
	user := domain.User{ID: "u1", Email: "user@example.com"}

	access, err := svc.IssueAccess(user)
	if err != nil {
		t.Fatalf("issue access: %v", err)
	}
	if _, err := svc.VerifyRefresh(access); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestTokenService_RejectsEmptySecret(t *testing.T) {
	svc := NewTokenService("", "refresh-secret", 15*time.Minute, time.Hour)
	user := domain.User{ID: "u1", Email: "user@example.com"}

	if _, err := svc.IssueAccess(user); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid on empty secret, got %v", err)
	}
}

func TestTokenService_RejectsTamperedToken(t *testing.T) {
	svc := newTestTokenService()
	user := domain.User{ID: "u1", Email: "user@example.com"}

	token, err := svc.IssueAccess(user)
	if err != nil {
		t.Fatalf("issue access: %v", err)
	}
	tampered := token[:len(token)-2] + "xx"
	if _, err := svc.VerifyAccess(tampered); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestTokenService_RejectsEmptyToken(t *testing.T) {
	svc := newTestTokenService()
	if _, err := svc.VerifyAccess(""); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
	if _, err := svc.VerifyRefresh("   "); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}
