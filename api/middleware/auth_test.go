package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	pkgauth "github.com/koodakziba/koodakziba-backend/pkg/auth"
	"github.com/koodakziba/koodakziba-backend/pkg/config"
)

func testJWTConfig() config.JWTConfig {
	return config.JWTConfig{Secret: "secret", Issuer: "koodakziba", ExpirationMinutes: 10}
}

func mintTestToken(t *testing.T, cfg config.JWTConfig, userID int, isAdmin bool) string {
	t.Helper()
	token, err := pkgauth.MintAccessToken(cfg, time.Now(), pkgauth.AccessTokenPayload{
		UserID:   userID,
		Username: "tester",
		IsAdmin:  isAdmin,
	})
	if err != nil {
		t.Fatalf("mint access token: %v", err)
	}
	return token
}

func TestAuthSeedsContext(t *testing.T) {
	cfg := testJWTConfig()

	var gotUserID int
	var gotAdmin bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserID = UserIDFromContext(r.Context())
		gotAdmin = IsAdminFromContext(r.Context())
	})
	handler := Auth(cfg, nil)(next)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+mintTestToken(t, cfg, 7, true))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rec.Code)
	}
	if gotUserID != 7 || !gotAdmin {
		t.Fatalf("context not seeded: user=%d admin=%v", gotUserID, gotAdmin)
	}
}

func TestAuthMissingCredentials(t *testing.T) {
	handler := Auth(testJWTConfig(), nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not run")
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 got %d", rec.Code)
	}
}

func TestAuthRejectsForeignToken(t *testing.T) {
	cfg := testJWTConfig()
	other := config.JWTConfig{Secret: "other-secret", Issuer: "koodakziba", ExpirationMinutes: 10}

	handler := Auth(cfg, nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not run")
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+mintTestToken(t, other, 7, false))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 got %d", rec.Code)
	}
}

func TestRequireAdmin(t *testing.T) {
	cfg := testJWTConfig()
	var reached bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reached = true
	})
	handler := Auth(cfg, nil)(RequireAdmin(nil)(next))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+mintTestToken(t, cfg, 2, false))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for non-admin got %d", rec.Code)
	}
	if reached {
		t.Fatal("handler ran for non-admin")
	}

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+mintTestToken(t, cfg, 1, true))
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK || !reached {
		t.Fatalf("admin request rejected: code=%d reached=%v", rec.Code, reached)
	}
}
