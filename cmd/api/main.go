package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/vahanbazar/vahanbazar-backend/api/routes"
	"github.com/vahanbazar/vahanbazar-backend/internal/alerts"
	"github.com/vahanbazar/vahanbazar-backend/internal/auth"
	"github.com/vahanbazar/vahanbazar-backend/internal/bookings"
	"github.com/vahanbazar/vahanbazar-backend/internal/catalog"
	"github.com/vahanbazar/vahanbazar-backend/internal/compare"
	"github.com/vahanbazar/vahanbazar-backend/internal/events"
	"github.com/vahanbazar/vahanbazar-backend/internal/launches"
	"github.com/vahanbazar/vahanbazar-backend/internal/notifications"
	"github.com/vahanbazar/vahanbazar-backend/internal/recommend"
	"github.com/vahanbazar/vahanbazar-backend/internal/reviews"
	"github.com/vahanbazar/vahanbazar-backend/internal/showrooms"
	"github.com/vahanbazar/vahanbazar-backend/internal/used"
	"github.com/vahanbazar/vahanbazar-backend/internal/usedorders"
	"github.com/vahanbazar/vahanbazar-backend/internal/users"
	"github.com/vahanbazar/vahanbazar-backend/pkg/config"
	"github.com/vahanbazar/vahanbazar-backend/pkg/db"
	"github.com/vahanbazar/vahanbazar-backend/pkg/logger"
	"github.com/vahanbazar/vahanbazar-backend/pkg/metrics"
	"github.com/vahanbazar/vahanbazar-backend/pkg/migrate"
	"github.com/vahanbazar/vahanbazar-backend/pkg/pubsub"
	"github.com/vahanbazar/vahanbazar-backend/pkg/redis"
)

func main() {
	ctx := context.Background()
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(ctx, ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	requireResource(ctx, logg, "config", err)

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	dbClient, err := db.New(ctx, cfg.DB, logg)
	requireResource(ctx, logg, "database", err)
	defer func() {
		if err := dbClient.Close(); err != nil {
			logg.Error(ctx, "error closing database", err)
		}
	}()

	if err := migrate.MaybeRunDev(ctx, cfg, logg, dbClient); err != nil {
		requireResource(ctx, logg, "dev migrations", err)
	}

	// Redis is optional: without it logins are unthrottled and the
	// trending cache is skipped.
	var redisClient *redis.Client
	if cfg.Redis.URL != "" || cfg.Redis.Address != "" {
		redisClient, err = redis.New(ctx, cfg.Redis)
		requireResource(ctx, logg, "redis", err)
		defer func() {
			if err := redisClient.Close(); err != nil {
				logg.Error(ctx, "error closing redis", err)
			}
		}()
	} else {
		logg.Warn(ctx, "redis not configured, rate limiting and caching disabled")
	}

	eventMetrics := metrics.NewEventMetrics(prometheus.DefaultRegisterer)

	var publisher events.Publisher = events.NopPublisher{}
	if cfg.FeatureFlags.EventingEnabled {
		pubsubClient, err := pubsub.NewClient(ctx, cfg.GCP, cfg.PubSub, logg)
		requireResource(ctx, logg, "pubsub", err)
		defer func() {
			if err := pubsubClient.Close(); err != nil {
				logg.Error(ctx, "error closing pubsub", err)
			}
		}()
		publisher, err = events.NewPubSubPublisher(pubsubClient.OrdersPublisher(), 10*time.Second)
		requireResource(ctx, logg, "order event publisher", err)
	} else {
		logg.Warn(ctx, "eventing disabled, order events will not be published")
	}

	gormDB := dbClient.DB()
	catalogRepo := catalog.NewRepository(gormDB)
	listingsRepo := used.NewRepository(gormDB)

	catalogSvc, err := catalog.NewService(catalogRepo)
	requireResource(ctx, logg, "catalog service", err)

	recommendSvc, err := recommend.NewService(catalogRepo, recommendCache(redisClient), cfg.Recommend.TrendingCacheTTL, logg)
	requireResource(ctx, logg, "recommend service", err)

	compareSvc, err := compare.NewService(catalogRepo)
	requireResource(ctx, logg, "compare service", err)

	listingsSvc, err := used.NewService(listingsRepo)
	requireResource(ctx, logg, "listings service", err)

	ordersSvc, err := usedorders.NewService(usedorders.ServiceParams{
		Repo:      usedorders.NewRepository(gormDB),
		Listings:  listingsRepo,
		Tx:        dbClient,
		Publisher: publisher,
		Logger:    logg,
		Metrics:   eventMetrics,
	})
	requireResource(ctx, logg, "orders service", err)

	bookingsSvc, err := bookings.NewService(bookings.NewRepository(gormDB), catalogRepo)
	requireResource(ctx, logg, "bookings service", err)

	reviewsSvc, err := reviews.NewService(reviews.NewRepository(gormDB), catalogRepo)
	requireResource(ctx, logg, "reviews service", err)

	launchesSvc, err := launches.NewService(launches.NewRepository(gormDB))
	requireResource(ctx, logg, "launches service", err)

	showroomsSvc, err := showrooms.NewService(showrooms.NewRepository(gormDB))
	requireResource(ctx, logg, "showrooms service", err)

	alertsSvc, err := alerts.NewService(alerts.NewRepository(gormDB), catalogRepo)
	requireResource(ctx, logg, "alerts service", err)

	notificationsSvc, err := notifications.NewService(notifications.NewRepository(gormDB))
	requireResource(ctx, logg, "notifications service", err)

	authSvc, err := auth.NewService(auth.ServiceParams{
		UserRepo:        users.NewRepository(gormDB),
		Limiter:         loginLimiter(redisClient),
		JWTConfig:       cfg.JWT,
		RateLimitConfig: cfg.AuthLimit,
	})
	requireResource(ctx, logg, "auth service", err)

	handler := routes.NewRouter(cfg, logg, gormDB, routes.Services{
		Auth:          authSvc,
		Catalog:       catalogSvc,
		Recommend:     recommendSvc,
		Compare:       compareSvc,
		Listings:      listingsSvc,
		Orders:        ordersSvc,
		Bookings:      bookingsSvc,
		Reviews:       reviewsSvc,
		Launches:      launchesSvc,
		Showrooms:     showroomsSvc,
		Alerts:        alertsSvc,
		Notifications: notificationsSvc,
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	runCtx := logg.WithFields(ctx, map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(runCtx, "starting api server")

	server := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(runCtx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}

// recommendCache and loginLimiter keep the typed-nil pitfall out of the
// service constructors: a nil *redis.Client must become a nil interface.
func recommendCache(client *redis.Client) recommend.Cache {
	if client == nil {
		return nil
	}
	return client
}

func loginLimiter(client *redis.Client) auth.LoginLimiter {
	if client == nil {
		return nil
	}
	return client
}

func requireResource(ctx context.Context, logg *logger.Logger, resource string, err error) {
	if err == nil {
		return
	}
	logg.Error(ctx, fmt.Sprintf("resource not working: %s", resource), err)
	os.Exit(1)
}
