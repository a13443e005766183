package recommend

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/vahanbazar/vahanbazar-backend/internal/catalog"
	"github.com/vahanbazar/vahanbazar-backend/pkg/db/models"
	pkgerrors "github.com/vahanbazar/vahanbazar-backend/pkg/errors"
	"github.com/vahanbazar/vahanbazar-backend/pkg/logger"
)

// MaxRecommendations caps how many similar bikes a single call returns.
const MaxRecommendations = 6

// TrendingCount is how many newest bikes the trending endpoint surfaces.
const TrendingCount = 6

const trendingCacheKeyPart = "trending"

// Cache is the subset of the redis client the trending endpoint uses.
type Cache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	CacheKey(parts ...string) string
}

// ScoredBike pairs a catalog bike with its similarity score.
type ScoredBike struct {
	Bike  models.Bike `json:"bike"`
	Score float64     `json:"score"`
}

// Service computes content-based recommendations over the bike catalog.
type Service interface {
	Recommend(ctx context.Context, bikeID uuid.UUID) ([]ScoredBike, error)
	Trending(ctx context.Context) ([]models.Bike, error)
}

type service struct {
	repo     catalog.Repository
	cache    Cache
	cacheTTL time.Duration
	logg     *logger.Logger
}

// NewService builds a recommendation service. The cache is optional;
// without it Trending always hits the database.
func NewService(repo catalog.Repository, c Cache, cacheTTL time.Duration, logg *logger.Logger) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("catalog repository required")
	}
	if logg == nil {
		return nil, fmt.Errorf("logger required")
	}
	return &service{repo: repo, cache: c, cacheTTL: cacheTTL, logg: logg}, nil
}

// Recommend scores every other catalog bike against the reference and
// returns the top matches in descending score order. Ties keep catalog
// creation order.
func (s *service) Recommend(ctx context.Context, bikeID uuid.UUID) ([]ScoredBike, error) {
	if bikeID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "bike id required")
	}

	ref, err := s.repo.FindByID(ctx, bikeID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "bike not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load bike")
	}

	all, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list catalog")
	}

	scored := make([]ScoredBike, 0, len(all))
	for i := range all {
		if all[i].ID == ref.ID {
			continue
		}
		scored = append(scored, ScoredBike{Bike: all[i], Score: Score(ref, &all[i])})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	if len(scored) > MaxRecommendations {
		scored = scored[:MaxRecommendations]
	}
	return scored, nil
}

// Trending returns the newest catalog entries, serving from cache when fresh.
func (s *service) Trending(ctx context.Context) ([]models.Bike, error) {
	if s.cache != nil {
		key := s.cache.CacheKey(trendingCacheKeyPart)
		if raw, err := s.cache.Get(ctx, key); err == nil && raw != "" {
			var cached []models.Bike
			if err := json.Unmarshal([]byte(raw), &cached); err == nil {
				return cached, nil
			}
			s.logg.Warn(ctx, "discarding unreadable trending cache entry")
		}
	}

	bikes, err := s.repo.ListNewest(ctx, TrendingCount)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list newest bikes")
	}

	if s.cache != nil {
		if payload, err := json.Marshal(bikes); err == nil {
			key := s.cache.CacheKey(trendingCacheKeyPart)
			if err := s.cache.Set(ctx, key, string(payload), s.cacheTTL); err != nil {
				s.logg.Warn(ctx, "failed to cache trending bikes")
			}
		}
	}
	return bikes, nil
}
