package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"

	pkgauth "github.com/vahanbazar/vahanbazar-backend/pkg/auth"
	"github.com/vahanbazar/vahanbazar-backend/pkg/config"
	"github.com/vahanbazar/vahanbazar-backend/pkg/enums"
)

func authTestConfig() config.JWTConfig {
	return config.JWTConfig{Secret: "test-secret", Issuer: "vahanbazar-test", ExpirationMinutes: 60}
}

func mintTestToken(t *testing.T, role enums.Role) (string, uuid.UUID) {
	t.Helper()
	userID := uuid.New()
	token, err := pkgauth.MintAccessToken(authTestConfig(), time.Now(), pkgauth.AccessTokenPayload{
		UserID: userID,
		Name:   "Asha",
		Email:  "asha@example.com",
		Role:   role,
	})
	if err != nil {
		t.Fatalf("MintAccessToken: %v", err)
	}
	return token, userID
}

func TestAuthRejectsMissingToken(t *testing.T) {
	handler := Auth(authTestConfig(), nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run without credentials")
	}))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestAuthSeedsIdentity(t *testing.T) {
	token, userID := mintTestToken(t, enums.RoleDealer)

	var gotUser, gotRole, gotName string
	handler := Auth(authTestConfig(), nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUser = UserIDFromContext(r.Context())
		gotRole = RoleFromContext(r.Context())
		gotName = UserNameFromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if gotUser != userID.String() || gotRole != string(enums.RoleDealer) || gotName != "Asha" {
		t.Fatalf("identity not seeded: user=%s role=%s name=%s", gotUser, gotRole, gotName)
	}
}

func TestAuthRejectsGarbageToken(t *testing.T) {
	handler := Auth(authTestConfig(), nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run with an invalid token")
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer not-a-jwt")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestOptionalAuthPassesAnonymous(t *testing.T) {
	var ran bool
	handler := OptionalAuth(authTestConfig(), nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ran = true
		if UserIDFromContext(r.Context()) != "" {
			t.Fatal("anonymous request must not carry an identity")
		}
	}))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	if !ran {
		t.Fatal("handler must run without credentials")
	}
}

func TestOptionalAuthRejectsInvalidToken(t *testing.T) {
	handler := OptionalAuth(authTestConfig(), nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run with an invalid token")
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer junk")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestRequireReviewer(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})

	for role, want := range map[enums.Role]int{
		enums.RoleUser:   http.StatusForbidden,
		enums.RoleDealer: http.StatusOK,
		enums.RoleAdmin:  http.StatusOK,
	} {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req = req.WithContext(WithIdentity(req.Context(), uuid.NewString(), "Asha", string(role)))
		w := httptest.NewRecorder()
		RequireReviewer(nil)(next).ServeHTTP(w, req)
		if w.Code != want {
			t.Fatalf("role %s: expected %d, got %d", role, want, w.Code)
		}
	}
}
