package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"

	"github.com/vahanbazar/vahanbazar-backend/api/controllers"
	"github.com/vahanbazar/vahanbazar-backend/api/middleware"
	"github.com/vahanbazar/vahanbazar-backend/internal/alerts"
	"github.com/vahanbazar/vahanbazar-backend/internal/auth"
	"github.com/vahanbazar/vahanbazar-backend/internal/bookings"
	"github.com/vahanbazar/vahanbazar-backend/internal/catalog"
	"github.com/vahanbazar/vahanbazar-backend/internal/compare"
	"github.com/vahanbazar/vahanbazar-backend/internal/launches"
	"github.com/vahanbazar/vahanbazar-backend/internal/notifications"
	"github.com/vahanbazar/vahanbazar-backend/internal/recommend"
	"github.com/vahanbazar/vahanbazar-backend/internal/reviews"
	"github.com/vahanbazar/vahanbazar-backend/internal/showrooms"
	"github.com/vahanbazar/vahanbazar-backend/internal/used"
	"github.com/vahanbazar/vahanbazar-backend/internal/usedorders"
	"github.com/vahanbazar/vahanbazar-backend/pkg/config"
	"github.com/vahanbazar/vahanbazar-backend/pkg/logger"
)

// Services groups everything the HTTP layer depends on.
type Services struct {
	Auth          auth.Service
	Catalog       catalog.Service
	Recommend     recommend.Service
	Compare       compare.Service
	Listings      used.Service
	Orders        usedorders.Service
	Bookings      bookings.Service
	Reviews       reviews.Service
	Launches      launches.Service
	Showrooms     showrooms.Service
	Alerts        alerts.Service
	Notifications notifications.Service
}

func NewRouter(cfg *config.Config, logg *logger.Logger, db *gorm.DB, svcs Services) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(cfg.App.CORSOrigins),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, db, logg))
	})

	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Route("/api/auth", func(r chi.Router) {
		r.Post("/register", controllers.Register(svcs.Auth, logg))
		r.Post("/login", controllers.Login(svcs.Auth, logg))
		r.With(middleware.Auth(cfg.JWT, logg)).Get("/me", controllers.Me(svcs.Auth, logg))
	})

	r.Route("/api/bikes", func(r chi.Router) {
		r.Get("/", controllers.ListBikes(svcs.Catalog, logg))
		r.Get("/brands", controllers.BikeBrands(svcs.Catalog, logg))
		r.Get("/fuel-types", controllers.BikeFuelTypes(svcs.Catalog, logg))
		r.Get("/trending", controllers.TrendingBikes(svcs.Recommend, logg))
		r.Get("/{bikeId}", controllers.GetBike(svcs.Catalog, logg))
		r.Get("/{bikeId}/recommendations", controllers.RecommendBikes(svcs.Recommend, logg))
		r.Get("/{bikeId}/reviews", controllers.ListBikeReviews(svcs.Reviews, logg))

		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(cfg.JWT, logg))
			r.Post("/{bikeId}/reviews", controllers.PostReview(svcs.Reviews, logg))
		})

		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(cfg.JWT, logg), middleware.RequireReviewer(logg))
			r.Post("/", controllers.CreateBike(svcs.Catalog, logg))
			r.Patch("/{bikeId}", controllers.UpdateBike(svcs.Catalog, logg))
			r.Delete("/{bikeId}", controllers.DeleteBike(svcs.Catalog, logg))
		})
	})

	r.Get("/api/compare", controllers.CompareBikes(svcs.Compare, logg))

	r.Route("/api/used", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(middleware.OptionalAuth(cfg.JWT, logg))
			r.Get("/", controllers.BrowseListings(svcs.Listings, logg))
			r.Get("/{listingId}", controllers.GetListing(svcs.Listings, logg))
		})

		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(cfg.JWT, logg))
			r.Post("/", controllers.CreateListing(svcs.Listings, logg))
			r.Get("/mine", controllers.ListMyListings(svcs.Listings, logg))
			r.Patch("/{listingId}", controllers.UpdateListing(svcs.Listings, logg))
			r.Delete("/{listingId}", controllers.DeleteListing(svcs.Listings, logg))
			r.Post("/{listingId}/sold", controllers.MarkListingSold(svcs.Listings, logg))
			r.With(middleware.RequireReviewer(logg)).Post("/{listingId}/approve", controllers.ApproveListing(svcs.Listings, logg))
		})
	})

	r.Route("/api/orders", func(r chi.Router) {
		r.Use(middleware.Auth(cfg.JWT, logg))
		r.Post("/", controllers.CreateUsedOrder(svcs.Orders, logg))
		r.Get("/mine", controllers.ListMyOrders(svcs.Orders, logg))

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireReviewer(logg))
			r.Get("/", controllers.ListOrdersForReview(svcs.Orders, logg))
			r.Patch("/{orderId}/status", controllers.UpdateOrderStatus(svcs.Orders, logg))
		})
	})

	r.Route("/api/bookings", func(r chi.Router) {
		r.Post("/", controllers.CreateBooking(svcs.Bookings, logg))
		r.With(middleware.Auth(cfg.JWT, logg), middleware.RequireReviewer(logg)).
			Get("/", controllers.ListBookings(svcs.Bookings, logg))
	})

	r.With(middleware.Auth(cfg.JWT, logg)).
		Delete("/api/reviews/{reviewId}", controllers.DeleteReview(svcs.Reviews, logg))

	r.Route("/api/launches", func(r chi.Router) {
		r.Get("/", controllers.ListLaunches(svcs.Launches, logg))
		r.Get("/brands", controllers.LaunchBrands(svcs.Launches, logg))
		r.Get("/{launchId}", controllers.GetLaunch(svcs.Launches, logg))

		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(cfg.JWT, logg), middleware.RequireReviewer(logg))
			r.Post("/", controllers.CreateLaunch(svcs.Launches, logg))
			r.Patch("/{launchId}", controllers.UpdateLaunch(svcs.Launches, logg))
			r.Delete("/{launchId}", controllers.DeleteLaunch(svcs.Launches, logg))
		})
	})

	r.Route("/api/showrooms", func(r chi.Router) {
		r.Get("/", controllers.ListShowrooms(svcs.Showrooms, logg))
		r.Get("/{showroomId}", controllers.GetShowroom(svcs.Showrooms, logg))
	})

	r.Route("/api/alerts", func(r chi.Router) {
		r.Use(middleware.Auth(cfg.JWT, logg))
		r.Get("/", controllers.ListAlerts(svcs.Alerts, logg))
		r.Post("/", controllers.SaveAlert(svcs.Alerts, logg))
		r.Delete("/{alertId}", controllers.DeleteAlert(svcs.Alerts, logg))
	})

	r.Route("/api/notifications", func(r chi.Router) {
		r.Use(middleware.Auth(cfg.JWT, logg))
		r.Get("/", controllers.ListNotifications(svcs.Notifications, logg))
		r.Post("/{notificationId}/read", controllers.MarkNotificationRead(svcs.Notifications, logg))
	})

	return r
}
