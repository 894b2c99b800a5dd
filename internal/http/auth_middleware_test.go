package http

import (
	"context"
	"net/http"
	"strings"
	"testing"
	"time"
)

func TestRequireSession_RedirectsWithoutCookie(t *testing.T) {
	env := setupEnv()

	for _, path := range []string{"/dashboard", "/dashboard/inbox", "/profile", "/settings", "/api/content/dashboard"} {
		rec := performJSON(env.router, http.MethodGet, path, nil, nil)
		if rec.Code != http.StatusTemporaryRedirect {
			t.Fatalf("%s: expected 307, got %d", path, rec.Code)
		}
		if loc := rec.Header().Get("Location"); loc != "/login" {
			t.Fatalf("%s: expected redirect to /login, got %q", path, loc)
		}
	}
}

func TestRequireSession_AllowsValidCookie(t *testing.T) {
	env := setupEnv()
	registerUser(t, env, "a@b.com", "secret123")
	access, _ := loginUser(t, env, "a@b.com", "secret123")

	rec := performJSON(env.router, http.MethodGet, "/dashboard", nil, []*http.Cookie{access})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestRequireSession_RedirectsInvalidAndExpiredCookie(t *testing.T) {
	env := setupEnv()

	rec := performJSON(env.router, http.MethodGet, "/dashboard", nil, []*http.Cookie{
		{Name: "access_token", Value: "garbage"},
	})
	if rec.Code != http.StatusTemporaryRedirect {
		t.Fatalf("expected 307 for invalid cookie, got %d", rec.Code)
	}

	expiredEnv := setupEnvWithTTL(-time.Minute)
	registerUser(t, expiredEnv, "a@b.com", "secret123")
	user, err := expiredEnv.repo.GetByEmail(context.Background(), "a@b.com")
	if err != nil {
		t.Fatalf("get user: %v", err)
	}
	expired, err := expiredEnv.tokens.IssueAccess(user)
	if err != nil {
		t.Fatalf("issue access: %v", err)
	}
	rec = performJSON(expiredEnv.router, http.MethodGet, "/dashboard", nil, []*http.Cookie{
		{Name: "access_token", Value: expired},
	})
	if rec.Code != http.StatusTemporaryRedirect {
		t.Fatalf("expected 307 for expired cookie, got %d", rec.Code)
	}
}

func TestRequireSession_PublicPathsBypassGate(t *testing.T) {
	env := setupEnv()

	for _, path := range []string{"/", "/login", "/register"} {
		rec := performJSON(env.router, http.MethodGet, path, nil, nil)
		if rec.Code != http.StatusOK {
			t.Fatalf("%s: expected 200 without session, got %d", path, rec.Code)
		}
	}
}

func TestDashboardContent_BehindGate(t *testing.T) {
	env := setupEnv()
	registerUser(t, env, "a@b.com", "secret123")
	access, _ := loginUser(t, env, "a@b.com", "secret123")

	rec := performJSON(env.router, http.MethodGet, "/api/content/dashboard", nil, []*http.Cookie{access})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "activeAddress") || !strings.Contains(body, "tempmail.dev") {
		t.Fatalf("unexpected dashboard payload: %s", body)
	}
}
