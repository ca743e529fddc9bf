// api/routes/router.go
package routes

import (
	"net/http"
	"time"

	"cinepass/internal/cart"
	"cinepass/internal/checkout"
	"cinepass/internal/concessions"
	"cinepass/internal/movies"
	"cinepass/internal/shared/config"
	"cinepass/internal/shared/database"
	"cinepass/internal/showtimes"
	"cinepass/pkg/cache"

	"github.com/gin-gonic/gin"
)

// Router holds all route dependencies
type Router struct {
	config       *config.Config
	db           *database.DB
	cacheService cache.Service
	producer     checkout.OrderProducer
	provider     checkout.PaymentProvider

	// Shared state wired across features
	sessions        *cart.Store
	showtimeService showtimes.Service
	movieService    movies.Service
	foodService     concessions.Service
}

// NewRouter creates a new router instance
func NewRouter(cfg *config.Config, db *database.DB) *Router {
	return &Router{
		config:   cfg,
		db:       db,
		provider: checkout.NewSimulatedProvider(),
	}
}

// SetCacheService attaches the Redis cache layer used by catalog reads.
func (r *Router) SetCacheService(cacheService cache.Service) {
	r.cacheService = cacheService
}

// SetOrderProducer attaches the Kafka producer for order confirmations.
func (r *Router) SetOrderProducer(producer checkout.OrderProducer) {
	r.producer = producer
}

// SetPaymentProvider swaps the payment gateway implementation.
func (r *Router) SetPaymentProvider(provider checkout.PaymentProvider) {
	r.provider = provider
}

// SetupRoutes configures all application routes
func (r *Router) SetupRoutes(engine *gin.Engine) {
	r.setupHealthRoutes(engine)

	api := engine.Group(r.config.GetAPIBasePath())
	{
		// Catalog routes first: the cart and checkout routes depend on the
		// services they construct.
		r.setupMovieRoutes(api)
		r.setupConcessionRoutes(api)
		r.setupShowtimeRoutes(api)
		r.setupCartRoutes(api)
		r.setupCheckoutRoutes(api)
	}
}

// setupHealthRoutes sets up health check and system status routes
func (r *Router) setupHealthRoutes(engine *gin.Engine) {
	engine.GET("/health", func(c *gin.Context) {
		if err := r.db.HealthCheck(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":    "unhealthy",
				"error":     err.Error(),
				"timestamp": time.Now(),
				"service":   "cinepass-backend",
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"timestamp": time.Now(),
			"service":   "cinepass-backend",
		})
	})

	engine.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
			"version": r.config.APIVersion,
		})
	})

	engine.GET("/status", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":      "operational",
			"api_version": r.config.APIVersion,
			"timestamp":   time.Now(),
		})
	})
}

// setupMovieRoutes configures movie catalog routes
func (r *Router) setupMovieRoutes(rg *gin.RouterGroup) {
	movieRepo := movies.NewRepository(r.db.GetPostgreSQL())
	movieService := movies.NewService(movieRepo, r.config)
	if r.cacheService != nil {
		movieService.SetCacheService(r.cacheService)
	}
	movieController := movies.NewController(movieService)

	r.movieService = movieService
	movies.SetupMovieRoutes(rg, movieController)
}

// setupConcessionRoutes configures food menu routes
func (r *Router) setupConcessionRoutes(rg *gin.RouterGroup) {
	foodRepo := concessions.NewRepository(r.db.GetPostgreSQL())
	foodService := concessions.NewService(foodRepo, r.config)
	if r.cacheService != nil {
		foodService.SetCacheService(r.cacheService)
	}
	foodController := concessions.NewController(foodService)

	r.foodService = foodService
	concessions.SetupConcessionRoutes(rg, foodController)
}

// setupShowtimeRoutes configures showtime and seat-map routes
func (r *Router) setupShowtimeRoutes(rg *gin.RouterGroup) {
	showtimeRepo := showtimes.NewRepository(r.db.GetPostgreSQL())
	showtimeService := showtimes.NewService(showtimeRepo, r.config)
	if r.cacheService != nil {
		showtimeService.SetCacheService(r.cacheService)
	}

	// The session store needs the showtime service as its booked-seats
	// source, and the showtime controller needs the store back for
	// session-scoped seat maps.
	r.showtimeService = showtimeService
	r.sessions = cart.NewStore(showtimeService)

	showtimeController := showtimes.NewController(showtimeService, r.sessions)
	showtimes.SetupShowtimeRoutes(rg, showtimeController)
}

// setupCartRoutes configures booking cart routes
func (r *Router) setupCartRoutes(rg *gin.RouterGroup) {
	cartService := cart.NewService(r.sessions, r.showtimeService, r.movieService, r.foodService)
	cartController := cart.NewController(cartService)

	cart.SetupCartRoutes(rg, cartController)
}

// setupCheckoutRoutes configures the payment handoff route
func (r *Router) setupCheckoutRoutes(rg *gin.RouterGroup) {
	checkoutService := checkout.NewService(r.sessions, r.showtimeService, r.provider, r.producer, r.config)
	checkoutController := checkout.NewController(checkoutService)

	checkout.SetupCheckoutRoutes(rg, checkoutController)
}
