package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/vahanbazar/vahanbazar-backend/internal/users"
	pkgauth "github.com/vahanbazar/vahanbazar-backend/pkg/auth"
	"github.com/vahanbazar/vahanbazar-backend/pkg/config"
	"github.com/vahanbazar/vahanbazar-backend/pkg/db/models"
	"github.com/vahanbazar/vahanbazar-backend/pkg/enums"
	pkgerrors "github.com/vahanbazar/vahanbazar-backend/pkg/errors"
)

const invalidCredentialsMessage = "invalid credentials"

// Service defines the behavior needed by the auth controller.
type Service interface {
	Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error)
	Login(ctx context.Context, req LoginRequest) (*AuthResponse, error)
	Me(ctx context.Context, userID uuid.UUID) (*users.UserDTO, error)
}

// LoginLimiter is the subset of the redis client login throttling uses.
type LoginLimiter interface {
	FixedWindowAllow(ctx context.Context, scope string, limit int64, window time.Duration) (bool, int64, error)
}

type service struct {
	users    users.Repository
	limiter  LoginLimiter
	jwtCfg   config.JWTConfig
	limitCfg config.AuthRateLimitConfig
	now      func() time.Time
}

// ServiceParams bundles the dependencies required to build an auth service.
type ServiceParams struct {
	UserRepo        users.Repository
	Limiter         LoginLimiter
	JWTConfig       config.JWTConfig
	RateLimitConfig config.AuthRateLimitConfig
}

// NewService constructs an auth service with the provided dependencies.
// Limiter may be nil when redis is not configured; login then skips
// rate limiting.
func NewService(params ServiceParams) (Service, error) {
	if params.UserRepo == nil {
		return nil, fmt.Errorf("user repository is required")
	}
	if params.JWTConfig.Secret == "" {
		return nil, fmt.Errorf("jwt secret is required")
	}
	return &service{
		users:    params.UserRepo,
		limiter:  params.Limiter,
		jwtCfg:   params.JWTConfig,
		limitCfg: params.RateLimitConfig,
		now:      time.Now,
	}, nil
}

// Register creates a user account with the default role and returns a
// signed token. A duplicate email is a conflict, not a validation
// failure, so clients can distinguish "try logging in" from bad input.
func (s *service) Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error) {
	name := strings.TrimSpace(req.Name)
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if name == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "name required")
	}
	if email == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "email required")
	}
	if len(req.Password) < 6 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "password must be at least 6 characters")
	}

	if _, err := s.users.FindByEmail(ctx, email); err == nil {
		return nil, pkgerrors.New(pkgerrors.CodeConflict, "email already registered")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "look up email")
	}

	hash, err := pkgauth.HashPassword(req.Password)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "hash password")
	}

	user, err := s.users.Create(ctx, &models.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Role:         enums.RoleUser,
	})
	if err != nil {
		// The unique index still guards against a concurrent register
		// racing the lookup above.
		if dump := pkgerrors.Dump(err); dump.IsUniqueViolation() {
			return nil, pkgerrors.New(pkgerrors.CodeConflict, "email already registered")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create user")
	}
	return s.respond(user)
}

// Login authenticates the credentials under a per-email and per-IP
// fixed-window rate limit.
func (s *service) Login(ctx context.Context, req LoginRequest) (*AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" || req.Password == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "email and password required")
	}

	if err := s.allowLogin(ctx, email, req.ClientIP); err != nil {
		return nil, err
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, invalidCredentialsMessage)
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "look up user")
	}
	if !pkgauth.CheckPassword(user.PasswordHash, req.Password) {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, invalidCredentialsMessage)
	}
	return s.respond(user)
}

// Me returns the sanitized profile for the authenticated user.
func (s *service) Me(ctx context.Context, userID uuid.UUID) (*users.UserDTO, error) {
	if userID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "user identity missing")
	}
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "user not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "look up user")
	}
	return users.FromModel(user), nil
}

// allowLogin applies both limiter scopes. Limiter failures degrade to
// allowing the attempt; a redis outage must not lock everyone out.
func (s *service) allowLogin(ctx context.Context, email, clientIP string) error {
	if s.limiter == nil {
		return nil
	}
	window := s.limitCfg.LoginWindow
	if window <= 0 {
		return nil
	}
	scopes := []struct {
		scope string
		limit int64
	}{
		{"login:email:" + email, int64(s.limitCfg.LoginEmailLimit)},
	}
	if clientIP != "" {
		scopes = append(scopes, struct {
			scope string
			limit int64
		}{"login:ip:" + clientIP, int64(s.limitCfg.LoginIPLimit)})
	}
	for _, sc := range scopes {
		if sc.limit <= 0 {
			continue
		}
		allowed, _, err := s.limiter.FixedWindowAllow(ctx, sc.scope, sc.limit, window)
		if err != nil {
			continue
		}
		if !allowed {
			return pkgerrors.New(pkgerrors.CodeRateLimit, "too many login attempts, try again later")
		}
	}
	return nil
}

func (s *service) respond(user *models.User) (*AuthResponse, error) {
	token, err := pkgauth.MintAccessToken(s.jwtCfg, s.now(), pkgauth.AccessTokenPayload{
		UserID: user.ID,
		Name:   user.Name,
		Email:  user.Email,
		Role:   user.Role,
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "mint jwt")
	}
	return &AuthResponse{AccessToken: token, User: users.FromModel(user)}, nil
}
