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
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/mytenu/zaktwi/internal/handlers"
	"github.com/mytenu/zaktwi/internal/jwt"
	"github.com/mytenu/zaktwi/internal/logger"
	"github.com/mytenu/zaktwi/internal/middlewares"
	"github.com/mytenu/zaktwi/internal/repositories"
	"github.com/mytenu/zaktwi/internal/services"
	"github.com/mytenu/zaktwi/internal/sheets"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title zaktwi API
// @version 1.0.0
// @description Crowdsourced Twi-English dataset collection service backed by Google Sheets
// @host localhost:8080
// @BasePath /api/v1
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	appHost, appPort, logLevel,
		credentialsFile, spreadsheetID, usersSheet, datasetSheet,
		minIntervalMs, usersTTLSecond, datasetTTLSecond,
		redisHost, redisPort, redisDB, redisPassword,
		redisPoolSize, redisMinIdleConns,
		kafkaAddr, kafkaTopic,
		adminUsername, adminPassword,
		jwtSecret, jwtExpSecond,
		err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(),
		appHost, appPort, logLevel,
		credentialsFile, spreadsheetID, usersSheet, datasetSheet,
		minIntervalMs, usersTTLSecond, datasetTTLSecond,
		redisHost, redisPort, redisDB, redisPassword,
		redisPoolSize, redisMinIdleConns,
		kafkaAddr, kafkaTopic,
		adminUsername, adminPassword,
		jwtSecret, jwtExpSecond,
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
// application, Sheets, cache, Redis, Kafka, admin, and JWT configuration.
func parseConfig(path string) (
	appHost, appPort, logLevel string,
	credentialsFile, spreadsheetID, usersSheet, datasetSheet string,
	minIntervalMs, usersTTLSecond, datasetTTLSecond int,
	redisHost string, redisPort, redisDB int, redisPassword string,
	redisPoolSize, redisMinIdleConns int,
	kafkaAddr, kafkaTopic string,
	adminUsername, adminPassword string,
	jwtSecretKey string, jwtExpSecond int,
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

	// Google Sheets config
	credentialsFile = getEnv("SHEETS_CREDENTIALS_FILE", "credentials.json")
	spreadsheetID = getEnv("SHEETS_SPREADSHEET_ID", "")
	usersSheet = getEnv("SHEETS_USERS_SHEET", "users")
	datasetSheet = getEnv("SHEETS_DATASET_SHEET", "dataset")
	if minIntervalMs, err = strconv.Atoi(getEnv("SHEETS_MIN_INTERVAL_MS", "1500")); err != nil {
		return
	}

	// Snapshot cache TTLs: registrations are rare, the dataset needs a
	// fresher view for duplicate detection.
	if usersTTLSecond, err = strconv.Atoi(getEnv("USERS_CACHE_TTL_SECOND", "300")); err != nil {
		return
	}
	if datasetTTLSecond, err = strconv.Atoi(getEnv("DATASET_CACHE_TTL_SECOND", "60")); err != nil {
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

	// Kafka config; empty address disables audit publishing
	kafkaAddr = getEnv("KAFKA_ADDR", "")
	kafkaTopic = getEnv("KAFKA_TOPIC", "contribution-events")

	// Admin credential bypassing the users worksheet
	adminUsername = getEnv("ADMIN_USERNAME", "admin")
	adminPassword = getEnv("ADMIN_PASSWORD", "1345")

	// JWT config; an unset secret is randomized per boot, which logs
	// everyone out on restart
	jwtSecretKey = getEnv("JWT_SECRET_KEY", "")
	if jwtSecretKey == "" {
		jwtSecretKey = uuid.NewString()
	}
	if jwtExpSecond, err = strconv.Atoi(getEnv("JWT_EXP_SECOND", "3600")); err != nil {
		return
	}

	return
}

// run initializes the logger, Redis, Kafka, the Sheets client, and the HTTP
// server. It sets up routes, applies middleware, and handles graceful
// shutdown.
func run(ctx context.Context,
	appHost, appPort, logLevel string,
	credentialsFile, spreadsheetID, usersSheet, datasetSheet string,
	minIntervalMs, usersTTLSecond, datasetTTLSecond int,
	redisHost string, redisPort, redisDB int, redisPassword string,
	redisPoolSize, redisMinIdleConns int,
	kafkaAddr, kafkaTopic string,
	adminUsername, adminPassword string,
	jwtSecretKey string, jwtExpSecond int,
) error {
	// Initialize logger
	if err := logger.Initialize(logLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	logger.Log.Infof("Logger initialized with level %s", logLevel)

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", redisHost, redisPort),
		Password:     redisPassword,
		DB:           redisDB,
		PoolSize:     redisPoolSize,
		MinIdleConns: redisMinIdleConns,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		logger.Log.Fatal("Redis connection error:", err)
	}
	defer rdb.Close()

	// Kafka writer for contribution audit events
	var kafkaWriter services.KafkaWriter
	if kafkaAddr != "" {
		kw := &kafka.Writer{
			Addr:     kafka.TCP(kafkaAddr),
			Topic:    kafkaTopic,
			Balancer: &kafka.LeastBytes{},
		}
		defer kw.Close()
		kafkaWriter = kw
		logger.Log.Infof("Kafka audit publishing enabled on %s topic %s", kafkaAddr, kafkaTopic)
	} else {
		logger.Log.Warn("KAFKA_ADDR not set, audit publishing disabled")
	}

	// Google Sheets client behind a blocking interval limiter
	limiter := sheets.NewLimiter(time.Duration(minIntervalMs) * time.Millisecond)
	store, err := sheets.NewClient(ctx, credentialsFile, spreadsheetID, limiter)
	if err != nil {
		logger.Log.Fatal("Sheets client error:", err)
	}

	// Initialize JWT service
	jwtSvc := jwt.New(jwtSecretKey, time.Duration(jwtExpSecond)*time.Second)

	// Initialize repositories
	cache := repositories.NewSnapshotCacheRepository(rdb)
	userReadRepo := repositories.NewUserReadRepository(store, cache, usersSheet, time.Duration(usersTTLSecond)*time.Second)
	userWriteRepo := repositories.NewUserWriteRepository(store, cache, usersSheet)
	entryReadRepo := repositories.NewEntryReadRepository(store, cache, datasetSheet, time.Duration(datasetTTLSecond)*time.Second)
	entryWriteRepo := repositories.NewEntryWriteRepository(store, cache, datasetSheet)

	// Initialize services
	authService := services.NewAuthService(userReadRepo, userWriteRepo, jwtSvc, adminUsername, adminPassword)
	datasetService := services.NewDatasetService(entryReadRepo, entryWriteRepo, kafkaWriter)
	adminService := services.NewAdminService(userReadRepo, userWriteRepo, entryReadRepo, entryWriteRepo, kafkaWriter)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))

	authMiddleware := middlewares.AuthMiddleware(jwtSvc)
	adminMiddleware := middlewares.AdminMiddleware()

	r.Route("/api/v1", func(r chi.Router) {
		// Public routes
		r.Post("/register", handlers.NewRegisterHandler(authService))
		r.Post("/login", handlers.NewLoginHandler(authService))

		// Contributor routes
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware)
			r.Post("/entries", handlers.NewSubmitHandler(datasetService))
			r.Post("/entries/import", handlers.NewImportHandler(datasetService))
			r.Get("/entries", handlers.NewMyEntriesHandler(datasetService))
		})

		// Admin routes
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware)
			r.Use(adminMiddleware)
			r.Get("/admin/users", handlers.NewAdminUsersHandler(adminService))
			r.Get("/admin/entries", handlers.NewAdminEntriesHandler(adminService))
			r.Get("/admin/stats", handlers.NewAdminStatsHandler(adminService))
			r.Delete("/admin/users/{username}", handlers.NewDeleteUserHandler(adminService))
			r.Delete("/admin/contributions/{username}", handlers.NewDeleteContributionsHandler(adminService))
		})
	})

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
