package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	"github.com/artfest/gallery-api/internal/db"
	"github.com/artfest/gallery-api/internal/handlers"
	"github.com/artfest/gallery-api/internal/logger"
	"github.com/artfest/gallery-api/internal/middlewares"
	"github.com/artfest/gallery-api/internal/repositories"
	"github.com/artfest/gallery-api/internal/services"
	"github.com/artfest/gallery-api/internal/token"
	"github.com/artfest/gallery-api/internal/uploads"

	_ "github.com/artfest/gallery-api/docs"
	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title Festival Gallery API
// @version 1.0.0
// @description Backend for the festival art gallery: artwork submissions, moderation, voting and comments
// @host localhost:8080
// @BasePath /
// @schemes http
func main() {
	printBuildInfo()
	configPath := parseFlags()

	appHost, appPort,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		redisHost, redisPort, redisDB, redisPassword,
		redisPoolSize, redisMinIdleConns,
		kafkaAddr, kafkaTopic,
		uploadDir, logLevel,
		sessionSecret, sessionExp,
		err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(),
		appHost, appPort,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		redisHost, redisPort, redisDB, redisPassword,
		redisPoolSize, redisMinIdleConns,
		kafkaAddr, kafkaTopic,
		uploadDir, logLevel,
		sessionSecret, sessionExp,
	); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Starting service version %s, commit %s, build %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns all
// application, database, Redis, Kafka, upload, logging, and session
// configuration.
func parseConfig(path string) (
	appHost, appPort string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	redisHost string, redisPort int, redisDB int, redisPassword string,
	redisPoolSize, redisMinIdleConns int,
	kafkaAddr, kafkaTopic string,
	uploadDir, logLevel string,
	sessionSecretKey string, sessionExpSecond int,
	err error,
) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	// Application config
	appHost = getEnv("APP_HOST", "localhost")
	appPort = getEnv("APP_PORT", "8080")
	logLevel = getEnv("APP_LOG_LEVEL", "info")

	// PostgreSQL config
	pgHost = getEnv("POSTGRES_HOST", "localhost")
	pgUser = getEnv("POSTGRES_USER", "user")
	pgPassword = getEnv("POSTGRES_PASSWORD", "password")
	pgDB = getEnv("POSTGRES_DB", "gallery")
	if pgPort, err = strconv.Atoi(getEnv("POSTGRES_PORT", "5432")); err != nil {
		return
	}
	if pgMaxOpenConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_OPEN_CONNS", "16")); err != nil {
		return
	}
	if pgMaxIdleConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_IDLE_CONNS", "8")); err != nil {
		return
	}

	// Redis config
	redisHost = getEnv("REDIS_HOST", "localhost")
	if redisPort, err = strconv.Atoi(getEnv("REDIS_PORT", "6379")); err != nil {
		return
	}
	if redisDB, err = strconv.Atoi(getEnv("REDIS_DB", "0")); err != nil {
		return
	}
	redisPassword = getEnv("REDIS_PASSWORD", "")
	if redisPoolSize, err = strconv.Atoi(getEnv("REDIS_POOL_SIZE", "10")); err != nil {
		return
	}
	if redisMinIdleConns, err = strconv.Atoi(getEnv("REDIS_MIN_IDLE_CONNS", "2")); err != nil {
		return
	}

	// Kafka config; event publishing is disabled when the address is empty
	kafkaAddr = getEnv("KAFKA_ADDR", "")
	kafkaTopic = getEnv("KAFKA_TOPIC", "gallery-events")

	// Upload config
	uploadDir = getEnv("UPLOAD_DIR", "uploads")

	// Session config
	sessionSecretKey = getEnv("SESSION_SECRET_KEY", "festival_secret_key_change_me")
	if sessionExpSecond, err = strconv.Atoi(getEnv("SESSION_EXP_SECOND", "86400")); err != nil {
		return
	}

	return
}

// run initializes the logger, database, Redis, Kafka writer, file store and
// HTTP server. It sets up routes, applies middleware, and handles graceful
// shutdown.
func run(ctx context.Context,
	appHost, appPort string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	redisHost string, redisPort, redisDB int, redisPassword string,
	redisPoolSize, redisMinIdleConns int,
	kafkaAddr, kafkaTopic string,
	uploadDir, logLevel string,
	sessionSecretKey string, sessionExpSecond int,
) error {
	// Initialize logger
	if err := logger.Initialize(logLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	logger.Log.Infof("Logger initialized with level %s", logLevel)

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		pgUser, pgPassword, pgHost, pgPort, pgDB)
	logger.Log.Infof("Connecting to PostgreSQL at %s:%d", pgHost, pgPort)

	database, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		return fmt.Errorf("PostgreSQL connection error: %w", err)
	}
	defer database.Close()
	database.SetMaxOpenConns(pgMaxOpenConns)
	database.SetMaxIdleConns(pgMaxIdleConns)
	if err := database.PingContext(ctx); err != nil {
		return fmt.Errorf("PostgreSQL ping failed: %w", err)
	}
	if err := db.Migrate(ctx, database); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", redisHost, redisPort),
		Password:     redisPassword,
		DB:           redisDB,
		PoolSize:     redisPoolSize,
		MinIdleConns: redisMinIdleConns,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("Redis connection error: %w", err)
	}
	defer rdb.Close()

	// Kafka event writer; nil disables event publishing
	var eventWriter services.KafkaWriter
	if kafkaAddr != "" {
		w := &kafka.Writer{
			Addr:     kafka.TCP(kafkaAddr),
			Topic:    kafkaTopic,
			Balancer: &kafka.LeastBytes{},
		}
		defer w.Close()
		eventWriter = w
		logger.Log.Infof("Kafka event writer connected to %s, topic %s", kafkaAddr, kafkaTopic)
	}

	// Initialize token service and file store
	sessionTTL := time.Duration(sessionExpSecond) * time.Second
	tokens := token.New(sessionSecretKey, sessionTTL)

	fileStore, err := uploads.NewFileStore(uploadDir)
	if err != nil {
		return fmt.Errorf("upload dir init failed: %w", err)
	}

	// Initialize repositories
	userReadRepo := repositories.NewUserReadRepository(database)
	userWriteRepo := repositories.NewUserWriteRepository(database)
	categoryReadRepo := repositories.NewCategoryReadRepository(database)
	categoryWriteRepo := repositories.NewCategoryWriteRepository(database)
	artworkReadRepo := repositories.NewArtworkReadRepository(database)
	artworkWriteRepo := repositories.NewArtworkWriteRepository(database)
	voteReadRepo := repositories.NewVoteReadRepository(database)
	voteWriteRepo := repositories.NewVoteWriteRepository(database)
	commentReadRepo := repositories.NewCommentReadRepository(database)
	commentWriteRepo := repositories.NewCommentWriteRepository(database)
	statsRepo := repositories.NewStatsReadRepository(database)
	sessionRepo := repositories.NewSessionRepository(rdb, sessionTTL)

	// Initialize services
	authService := services.NewAuthService(userReadRepo, userWriteRepo, sessionRepo, tokens)
	catalogService := services.NewCatalogService(artworkReadRepo, artworkWriteRepo, categoryReadRepo, categoryWriteRepo, fileStore, eventWriter)
	engagementService := services.NewEngagementService(artworkReadRepo, voteWriteRepo, voteReadRepo, commentWriteRepo, commentReadRepo, eventWriter)
	moderationService := services.NewModerationService(artworkReadRepo, artworkWriteRepo, fileStore, eventWriter)
	statsService := services.NewStatsService(statsRepo, artworkReadRepo)

	// Initialize handlers
	registerHandler := handlers.NewRegisterHandler(authService)
	loginHandler := handlers.NewLoginHandler(authService)
	logoutHandler := handlers.NewLogoutHandler(authService)
	meHandler := handlers.NewMeHandler(authService)
	listCategoriesHandler := handlers.NewListCategoriesHandler(catalogService)
	createCategoryHandler := handlers.NewCreateCategoryHandler(catalogService)
	listArtworksHandler := handlers.NewListArtworksHandler(catalogService)
	getArtworkHandler := handlers.NewGetArtworkHandler(catalogService)
	createArtworkHandler := handlers.NewCreateArtworkHandler(catalogService)
	castVoteHandler := handlers.NewCastVoteHandler(engagementService)
	retractVoteHandler := handlers.NewRetractVoteHandler(engagementService)
	addCommentHandler := handlers.NewAddCommentHandler(engagementService)
	listCommentsHandler := handlers.NewListCommentsHandler(engagementService)
	statisticsHandler := handlers.NewStatisticsHandler(statsService)
	topVotedHandler := handlers.NewTopVotedHandler(statsService)
	adminListHandler := handlers.NewAdminListArtworksHandler(moderationService)
	approveHandler := handlers.NewApproveArtworkHandler(moderationService)
	featureHandler := handlers.NewToggleFeaturedHandler(moderationService)
	deleteHandler := handlers.NewDeleteArtworkHandler(moderationService)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.Logging(logger.Log))

	// Public routes
	r.Post("/api/auth/register", registerHandler)
	r.Post("/api/auth/login", loginHandler)
	r.Post("/api/auth/logout", logoutHandler)
	r.Get("/api/categories", listCategoriesHandler)
	r.Get("/api/artworks", listArtworksHandler)
	r.Get("/api/artworks/{id}", getArtworkHandler)
	r.Get("/api/artworks/{id}/comments", listCommentsHandler)
	r.Get("/api/statistics", statisticsHandler)
	r.Get("/api/top-voted", topVotedHandler)

	// Authenticated routes
	r.Group(func(r chi.Router) {
		r.Use(middlewares.Auth(authService))
		r.Get("/api/auth/me", meHandler)

		r.Group(func(r chi.Router) {
			r.Use(middlewares.Tx(database))
			r.Post("/api/artworks", createArtworkHandler)
			r.Post("/api/artworks/{id}/vote", castVoteHandler)
			r.Delete("/api/artworks/{id}/vote", retractVoteHandler)
			r.Post("/api/artworks/{id}/comments", addCommentHandler)
		})
	})

	// Admin routes
	r.Group(func(r chi.Router) {
		r.Use(middlewares.Auth(authService))
		r.Use(middlewares.Admin)
		r.Get("/api/admin/artworks", adminListHandler)

		r.Group(func(r chi.Router) {
			r.Use(middlewares.Tx(database))
			r.Post("/api/categories", createCategoryHandler)
			r.Put("/api/admin/artworks/{id}/approve", approveHandler)
			r.Put("/api/admin/artworks/{id}/feature", featureHandler)
			r.Delete("/api/admin/artworks/{id}", deleteHandler)
		})
	})

	// Uploaded images
	uploadsFS := http.StripPrefix("/uploads/", http.FileServer(http.Dir(fileStore.Dir())))
	r.Get("/uploads/*", uploadsFS.ServeHTTP)

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", appHost, appPort)),
	))

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", appHost, appPort),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", appHost, appPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}
