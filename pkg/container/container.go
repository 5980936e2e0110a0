package container

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/shopspring/decimal"

	"events-backend/internal/config"
	infraCache "events-backend/internal/infrastructure/cache"
	"events-backend/internal/infrastructure/database"
	"events-backend/pkg/cache"
	"events-backend/pkg/jwt"

	"events-backend/internal/domains/category"
	categoryHandler "events-backend/internal/domains/category/handler"
	categoryRepo "events-backend/internal/domains/category/repository"
	categoryService "events-backend/internal/domains/category/service"

	bookingHandler "events-backend/internal/domains/booking/handler"
	bookingRepo "events-backend/internal/domains/booking/repository"
	bookingService "events-backend/internal/domains/booking/service"

	cartHandler "events-backend/internal/domains/cart/handler"
	cartService "events-backend/internal/domains/cart/service"

	eventHandler "events-backend/internal/domains/event/handler"
	eventRepo "events-backend/internal/domains/event/repository"
	eventService "events-backend/internal/domains/event/service"

	"events-backend/internal/domains/payment/gateway"
	"events-backend/internal/domains/payment/gateway/mock"
	"events-backend/internal/domains/payment/gateway/stripe"
	paymentHandler "events-backend/internal/domains/payment/handler"
	paymentService "events-backend/internal/domains/payment/service"

	"events-backend/internal/domains/user"
	userHandler "events-backend/internal/domains/user/handler"
	userRepo "events-backend/internal/domains/user/repository"
	userService "events-backend/internal/domains/user/service"
)

// ========================================
// CONTAINER STRUCT
// ========================================

// Container holds every dependency of the application; it is the root of
// the dependency graph. All members are singletons for the app lifetime.
type Container struct {
	// Infrastructure
	Config     *config.Config
	DB         *database.PostgresDB
	Cache      cache.Cache
	JWTManager *jwt.Manager

	// Repositories
	UserRepo     user.Repository
	BookingRepo  bookingRepo.BookingRepository
	EventRepo    eventRepo.EventRepository
	CategoryRepo category.CategoryRepository

	// Gateways
	StripeGateway gateway.StripeGateway

	// Services
	UserService     user.Service
	CartService     cartService.CartService
	BookingService  bookingService.BookingService
	PaymentService  paymentService.PaymentService
	EventService    eventService.EventService
	CategoryService category.CategoryService

	// Handlers
	UserHandler     *userHandler.UserHandler
	CartHandler     *cartHandler.CartHandler
	BookingHandler  *bookingHandler.BookingHandler
	PaymentHandler  *paymentHandler.PaymentHandler
	EventHandler    *eventHandler.EventHandler
	CategoryHandler *categoryHandler.CategoryHandler
}

// NewContainer builds the whole dependency graph in order:
// config -> infrastructure -> repositories -> services -> handlers.
func NewContainer() (*Container, error) {
	log.Println("🔧 Initializing DI Container...")

	c := &Container{}

	// ========================================
	// STEP 1: LOAD CONFIGURATION
	// ========================================
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg
	log.Printf("✅ Config loaded (Environment: %s)", cfg.App.Environment)

	// ========================================
	// STEP 2: INITIALIZE DATABASE
	// ========================================
	log.Println("🗄️  Connecting to PostgreSQL...")

	dbConfig, err := config.LoadDatabaseConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load database config: %w", err)
	}

	db := database.NewPostgresDB(dbConfig)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := db.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.HealthCheck(context.Background()); err != nil {
		return nil, fmt.Errorf("database health check failed: %w", err)
	}

	c.DB = db
	log.Println("✅ Database connected")

	// ========================================
	// STEP 3: INITIALIZE CACHE
	// ========================================
	log.Println("🔴 Connecting to Redis...")

	redisCache := infraCache.NewRedisCache(
		cfg.Redis.Host,
		cfg.Redis.Password,
		cfg.Redis.DB,
	)

	if rc, ok := redisCache.(*infraCache.RedisCache); ok {
		if err := rc.Connect(context.Background()); err != nil {
			// The cart slot lives here, but a cold start without Redis
			// should still boot the API.
			log.Printf("⚠️  Redis connection failed (non-critical): %v", err)
		} else {
			log.Println("✅ Redis connected")
		}
	}

	c.Cache = redisCache

	c.JWTManager = jwt.NewManager(cfg.JWT.Secret)

	// ========================================
	// STEP 4: INITIALIZE PAYMENT GATEWAY
	// ========================================
	if cfg.Stripe.SecretKey != "" {
		gw, err := stripe.NewClient(&stripe.Config{
			SecretKey: cfg.Stripe.SecretKey,
			APIURL:    cfg.Stripe.APIURL,
			Currency:  cfg.Stripe.Currency,
			Timeout:   time.Duration(cfg.Stripe.TimeoutSeconds) * time.Second,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to init Stripe gateway: %w", err)
		}
		c.StripeGateway = gw
		log.Println("✅ Stripe gateway initialized")
	} else {
		c.StripeGateway = mock.NewMockStripeGateway()
		log.Println("⚠️  No Stripe key set - using mock gateway")
	}

	// ========================================
	// STEP 5: REPOSITORIES
	// ========================================
	c.UserRepo = userRepo.NewPostgresRepository(db.Pool)
	c.BookingRepo = bookingRepo.NewPostgresRepository(db.Pool)
	c.EventRepo = eventRepo.NewPostgresRepository(db.Pool)
	c.CategoryRepo = categoryRepo.NewPostgresRepository(db.Pool, c.Cache)
	log.Println("✅ Repositories initialized")

	// ========================================
	// STEP 6: SERVICES
	// ========================================
	c.UserService = userService.NewUserService(c.UserRepo, c.JWTManager)
	c.CartService = cartService.NewCartService(c.Cache)
	c.BookingService = bookingService.NewBookingService(c.BookingRepo)
	c.PaymentService = paymentService.NewPaymentService(c.BookingRepo, c.StripeGateway, paymentService.Options{
		ChargeBookingPrice: cfg.Stripe.ChargeBookingPrice,
		FixedAmount:        decimal.NewFromFloat(cfg.Stripe.FixedAmount),
		Currency:           cfg.Stripe.Currency,
	})
	c.EventService = eventService.NewEventService(c.EventRepo)
	c.CategoryService = categoryService.NewCategoryService(c.CategoryRepo)
	log.Println("✅ Services initialized")

	// ========================================
	// STEP 7: HANDLERS
	// ========================================
	c.UserHandler = userHandler.NewUserHandler(c.UserService)
	c.CartHandler = cartHandler.NewCartHandler(c.CartService)
	c.BookingHandler = bookingHandler.NewBookingHandler(c.BookingService)
	c.PaymentHandler = paymentHandler.NewPaymentHandler(c.PaymentService, c.BookingService)
	c.EventHandler = eventHandler.NewEventHandler(c.EventService)
	c.CategoryHandler = categoryHandler.NewCategoryHandler(c.CategoryService)
	log.Println("✅ Handlers initialized")

	return c, nil
}

// Cleanup releases infrastructure resources on shutdown.
func (c *Container) Cleanup() {
	if c.DB != nil {
		c.DB.Close()
		log.Println("🗄️  Database connection closed")
	}

	if rc, ok := c.Cache.(*infraCache.RedisCache); ok {
		if err := rc.Close(); err != nil {
			log.Printf("⚠️  Failed to close Redis: %v", err)
		} else {
			log.Println("🔴 Redis connection closed")
		}
	}
}
