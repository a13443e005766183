package auth

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	pkgauth "github.com/vahanbazar/vahanbazar-backend/pkg/auth"
	"github.com/vahanbazar/vahanbazar-backend/pkg/config"
	"github.com/vahanbazar/vahanbazar-backend/pkg/db/models"
	"github.com/vahanbazar/vahanbazar-backend/pkg/enums"
	pkgerrors "github.com/vahanbazar/vahanbazar-backend/pkg/errors"
)

type stubUserRepo struct {
	byEmail map[string]*models.User
	byID    map[uuid.UUID]*models.User
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{
		byEmail: make(map[string]*models.User),
		byID:    make(map[uuid.UUID]*models.User),
	}
}

func (s *stubUserRepo) Create(ctx context.Context, user *models.User) (*models.User, error) {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	s.byEmail[user.Email] = user
	s.byID[user.ID] = user
	return user, nil
}

func (s *stubUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	if u, ok := s.byID[id]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubUserRepo) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	if u, ok := s.byEmail[strings.ToLower(email)]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

type stubLimiter struct {
	counts map[string]int64
	fail   bool
}

func newStubLimiter() *stubLimiter {
	return &stubLimiter{counts: make(map[string]int64)}
}

func (s *stubLimiter) FixedWindowAllow(ctx context.Context, scope string, limit int64, window time.Duration) (bool, int64, error) {
	if s.fail {
		return false, 0, context.DeadlineExceeded
	}
	s.counts[scope]++
	return s.counts[scope] <= limit, s.counts[scope], nil
}

func testJWTConfig() config.JWTConfig {
	return config.JWTConfig{Secret: "test-secret", Issuer: "vahanbazar-test", ExpirationMinutes: 60}
}

func testLimitConfig() config.AuthRateLimitConfig {
	return config.AuthRateLimitConfig{
		LoginWindow:     time.Minute,
		LoginEmailLimit: 3,
		LoginIPLimit:    5,
	}
}

func newAuthService(t *testing.T, limiter LoginLimiter) (Service, *stubUserRepo) {
	t.Helper()
	repo := newStubUserRepo()
	svc, err := NewService(ServiceParams{
		UserRepo:        repo,
		Limiter:         limiter,
		JWTConfig:       testJWTConfig(),
		RateLimitConfig: testLimitConfig(),
	})
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}
	return svc, repo
}

func TestRegisterIssuesTokenAndDefaultsRole(t *testing.T) {
	svc, _ := newAuthService(t, nil)

	resp, err := svc.Register(context.Background(), RegisterRequest{
		Name: "Asha", Email: "Asha@Example.com", Password: "secret1",
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if resp.User.Role != enums.RoleUser {
		t.Fatalf("expected role user, got %s", resp.User.Role)
	}
	if resp.User.Email != "asha@example.com" {
		t.Fatalf("expected lowercased email, got %s", resp.User.Email)
	}

	claims, err := pkgauth.ParseAccessToken(testJWTConfig(), resp.AccessToken)
	if err != nil {
		t.Fatalf("ParseAccessToken: %v", err)
	}
	if claims.UserID != resp.User.ID {
		t.Fatal("token subject must match the created user")
	}
}

func TestRegisterDuplicateEmailConflicts(t *testing.T) {
	svc, _ := newAuthService(t, nil)
	ctx := context.Background()

	req := RegisterRequest{Name: "Asha", Email: "asha@example.com", Password: "secret1"}
	if _, err := svc.Register(ctx, req); err != nil {
		t.Fatalf("Register: %v", err)
	}
	_, err := svc.Register(ctx, req)
	if !pkgerrors.IsCode(err, pkgerrors.CodeConflict) {
		t.Fatalf("expected conflict, got %v", err)
	}
}

func TestRegisterValidation(t *testing.T) {
	svc, _ := newAuthService(t, nil)

	cases := []RegisterRequest{
		{Email: "a@example.com", Password: "secret1"},
		{Name: "Asha", Password: "secret1"},
		{Name: "Asha", Email: "a@example.com", Password: "short"},
	}
	for _, req := range cases {
		if _, err := svc.Register(context.Background(), req); !pkgerrors.IsCode(err, pkgerrors.CodeValidation) {
			t.Fatalf("request %+v: expected validation error, got %v", req, err)
		}
	}
}

func TestLoginVerifiesPassword(t *testing.T) {
	svc, _ := newAuthService(t, nil)
	ctx := context.Background()

	if _, err := svc.Register(ctx, RegisterRequest{Name: "Asha", Email: "asha@example.com", Password: "secret1"}); err != nil {
		t.Fatalf("Register: %v", err)
	}

	resp, err := svc.Login(ctx, LoginRequest{Email: "asha@example.com", Password: "secret1"})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if resp.AccessToken == "" {
		t.Fatal("expected access token")
	}

	if _, err := svc.Login(ctx, LoginRequest{Email: "asha@example.com", Password: "wrong"}); !pkgerrors.IsCode(err, pkgerrors.CodeUnauthorized) {
		t.Fatalf("expected unauthorized for bad password, got %v", err)
	}
	if _, err := svc.Login(ctx, LoginRequest{Email: "unknown@example.com", Password: "secret1"}); !pkgerrors.IsCode(err, pkgerrors.CodeUnauthorized) {
		t.Fatalf("expected unauthorized for unknown email, got %v", err)
	}
}

func TestLoginRateLimitByEmail(t *testing.T) {
	limiter := newStubLimiter()
	svc, _ := newAuthService(t, limiter)
	ctx := context.Background()

	req := LoginRequest{Email: "asha@example.com", Password: "wrong"}
	for i := 0; i < 3; i++ {
		if _, err := svc.Login(ctx, req); !pkgerrors.IsCode(err, pkgerrors.CodeUnauthorized) {
			t.Fatalf("attempt %d: expected unauthorized, got %v", i, err)
		}
	}
	if _, err := svc.Login(ctx, req); !pkgerrors.IsCode(err, pkgerrors.CodeRateLimit) {
		t.Fatalf("expected rate limit after window fills, got %v", err)
	}
}

func TestLoginLimiterOutageDoesNotBlock(t *testing.T) {
	limiter := newStubLimiter()
	limiter.fail = true
	svc, _ := newAuthService(t, limiter)
	ctx := context.Background()

	if _, err := svc.Register(ctx, RegisterRequest{Name: "Asha", Email: "asha@example.com", Password: "secret1"}); err != nil {
		t.Fatalf("Register: %v", err)
	}
	if _, err := svc.Login(ctx, LoginRequest{Email: "asha@example.com", Password: "secret1"}); err != nil {
		t.Fatalf("expected login to succeed despite limiter outage, got %v", err)
	}
}

func TestMe(t *testing.T) {
	svc, _ := newAuthService(t, nil)
	ctx := context.Background()

	resp, err := svc.Register(ctx, RegisterRequest{Name: "Asha", Email: "asha@example.com", Password: "secret1"})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	me, err := svc.Me(ctx, resp.User.ID)
	if err != nil {
		t.Fatalf("Me: %v", err)
	}
	if me.Email != "asha@example.com" {
		t.Fatalf("unexpected profile %+v", me)
	}

	if _, err := svc.Me(ctx, uuid.New()); !pkgerrors.IsCode(err, pkgerrors.CodeNotFound) {
		t.Fatalf("expected not found for unknown id, got %v", err)
	}
	if _, err := svc.Me(ctx, uuid.Nil); !pkgerrors.IsCode(err, pkgerrors.CodeUnauthorized) {
		t.Fatalf("expected unauthorized for nil id, got %v", err)
	}
}
