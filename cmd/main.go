package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	"github.com/sbilibin2017/gw-book-exchange/internal/handlers"
	"github.com/sbilibin2017/gw-book-exchange/internal/logger"
	"github.com/sbilibin2017/gw-book-exchange/internal/middlewares"
	"github.com/sbilibin2017/gw-book-exchange/internal/migrations"
	"github.com/sbilibin2017/gw-book-exchange/internal/repositories"
	"github.com/sbilibin2017/gw-book-exchange/internal/services"
	"github.com/sbilibin2017/gw-book-exchange/internal/storage"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/sbilibin2017/gw-book-exchange/docs"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// Storage drivers
const (
	driverMemory   = "memory"
	driverPostgres = "postgres"
)

// Image storage backends
const (
	imagesDisk  = "disk"
	imagesMinio = "minio"
)

// config holds everything read from the environment.
type config struct {
	AppHost     string
	AppPort     string
	LogLevel    string
	CORSOrigins []string
	MaxBodyMB   int64

	StorageDriver  string
	PGHost         string
	PGPort         int
	PGUser         string
	PGPassword     string
	PGDB           string
	PGMaxOpenConns int
	PGMaxIdleConns int

	RedisHost         string // empty disables the listing cache
	RedisPort         int
	RedisDB           int
	RedisPassword     string
	RedisPoolSize     int
	RedisMinIdleConns int
	RedisExpSecond    int

	KafkaBrokers []string // empty disables event publishing
	KafkaTopic   string

	ImageStorage   string
	UploadDir      string
	MinioEndpoint  string
	MinioAccessKey string
	MinioSecretKey string
	MinioBucket    string
	MinioUseSSL    bool
}

// @title gw-book-exchange API
// @version 1.0.0
// @description Peer-to-peer book exchange: users, book listings and listing images
// @host localhost:4000
// @BasePath /api
// @schemes http
func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(), cfg); err != nil {
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

// parseConfig loads environment variables from a file and returns the application config.
func parseConfig(path string) (cfg config, err error) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}
	getInt := func(key, defaultValue string) (int, error) {
		v, err := strconv.Atoi(getEnv(key, defaultValue))
		if err != nil {
			return 0, fmt.Errorf("%s: %w", key, err)
		}
		return v, nil
	}

	// Application config
	cfg.AppHost = getEnv("APP_HOST", "localhost")
	cfg.AppPort = getEnv("APP_PORT", "4000")
	cfg.LogLevel = getEnv("APP_LOG_LEVEL", "info")
	cfg.CORSOrigins = splitList(getEnv("APP_CORS_ORIGINS", "http://localhost:3000,http://localhost:5173"))
	maxBody, err := getInt("APP_MAX_BODY_MB", "10")
	if err != nil {
		return
	}
	cfg.MaxBodyMB = int64(maxBody)

	// Repositories
	cfg.StorageDriver = getEnv("STORAGE_DRIVER", driverMemory)
	if cfg.StorageDriver != driverMemory && cfg.StorageDriver != driverPostgres {
		err = fmt.Errorf("STORAGE_DRIVER: unsupported driver %q", cfg.StorageDriver)
		return
	}

	// PostgreSQL config
	cfg.PGHost = getEnv("POSTGRES_HOST", "localhost")
	cfg.PGUser = getEnv("POSTGRES_USER", "user")
	cfg.PGPassword = getEnv("POSTGRES_PASSWORD", "password")
	cfg.PGDB = getEnv("POSTGRES_DB", "database")
	if cfg.PGPort, err = getInt("POSTGRES_PORT", "5432"); err != nil {
		return
	}
	if cfg.PGMaxOpenConns, err = getInt("POSTGRES_MAX_OPEN_CONNS", "16"); err != nil {
		return
	}
	if cfg.PGMaxIdleConns, err = getInt("POSTGRES_MAX_IDLE_CONNS", "8"); err != nil {
		return
	}

	// Redis config
	cfg.RedisHost = getEnv("REDIS_HOST", "")
	cfg.RedisPassword = getEnv("REDIS_PASSWORD", "")
	if cfg.RedisPort, err = getInt("REDIS_PORT", "6379"); err != nil {
		return
	}
	if cfg.RedisDB, err = getInt("REDIS_DB", "0"); err != nil {
		return
	}
	if cfg.RedisPoolSize, err = getInt("REDIS_POOL_SIZE", "10"); err != nil {
		return
	}
	if cfg.RedisMinIdleConns, err = getInt("REDIS_MIN_IDLE_CONNS", "2"); err != nil {
		return
	}
	if cfg.RedisExpSecond, err = getInt("REDIS_EXP_SECOND", "60"); err != nil {
		return
	}

	// Kafka config
	cfg.KafkaBrokers = splitList(getEnv("KAFKA_BROKERS", ""))
	cfg.KafkaTopic = getEnv("KAFKA_TOPIC", "book-events")

	// Image storage config
	cfg.ImageStorage = getEnv("IMAGE_STORAGE", imagesDisk)
	if cfg.ImageStorage != imagesDisk && cfg.ImageStorage != imagesMinio {
		err = fmt.Errorf("IMAGE_STORAGE: unsupported backend %q", cfg.ImageStorage)
		return
	}
	cfg.UploadDir = getEnv("UPLOAD_DIR", "uploads")
	cfg.MinioEndpoint = getEnv("MINIO_ENDPOINT", "localhost:9000")
	cfg.MinioAccessKey = getEnv("MINIO_ACCESS_KEY", "minioadmin")
	cfg.MinioSecretKey = getEnv("MINIO_SECRET_KEY", "minioadmin")
	cfg.MinioBucket = getEnv("MINIO_BUCKET", "book-images")
	if cfg.MinioUseSSL, err = strconv.ParseBool(getEnv("MINIO_USE_SSL", "false")); err != nil {
		err = fmt.Errorf("MINIO_USE_SSL: %w", err)
		return
	}

	return
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// imageStore both stores and serves listing images.
type imageStore interface {
	services.ImageSaver
	handlers.ImageOpener
}

// repos groups the storage backends selected by STORAGE_DRIVER.
// db is nil in memory mode.
type repos struct {
	userReader services.UserReader
	userWriter services.UserWriter
	bookReader services.BookReader
	bookWriter services.BookWriter
	db         *sqlx.DB
}

// dependencies are the components the router is built from.
type dependencies struct {
	repos  repos
	cache  services.BookCache
	kafka  services.KafkaWriter
	images imageStore
}

// run initializes the logger, storage, cache, event writer and HTTP server.
// It sets up routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context, cfg config) error {
	if err := logger.Initialize(cfg.LogLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	log := logger.Log
	defer log.Sync()
	log.Infof("Logger initialized with level %s", cfg.LogLevel)

	var deps dependencies

	// Repositories
	switch cfg.StorageDriver {
	case driverPostgres:
		dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
			cfg.PGUser, cfg.PGPassword, cfg.PGHost, cfg.PGPort, cfg.PGDB)
		log.Infof("Connecting to PostgreSQL at %s:%d/%s", cfg.PGHost, cfg.PGPort, cfg.PGDB)

		db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
		if err != nil {
			return fmt.Errorf("connect to postgres: %w", err)
		}
		defer db.Close()
		db.SetMaxOpenConns(cfg.PGMaxOpenConns)
		db.SetMaxIdleConns(cfg.PGMaxIdleConns)

		if err := migrations.Up(db.DB); err != nil {
			return err
		}
		deps.repos = postgresRepos(db)
	default:
		log.Info("Using in-memory repositories")
		deps.repos = memoryRepos()
	}

	// Listing cache
	if cfg.RedisHost != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:         fmt.Sprintf("%s:%d", cfg.RedisHost, cfg.RedisPort),
			Password:     cfg.RedisPassword,
			DB:           cfg.RedisDB,
			PoolSize:     cfg.RedisPoolSize,
			MinIdleConns: cfg.RedisMinIdleConns,
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			return fmt.Errorf("connect to redis: %w", err)
		}
		defer rdb.Close()
		deps.cache = repositories.NewBookCacheRepository(rdb, time.Duration(cfg.RedisExpSecond)*time.Second)
	}

	// Listing events
	if len(cfg.KafkaBrokers) > 0 {
		writer := &kafka.Writer{
			Addr:                   kafka.TCP(cfg.KafkaBrokers...),
			Topic:                  cfg.KafkaTopic,
			Balancer:               &kafka.LeastBytes{},
			AllowAutoTopicCreation: true,
		}
		defer writer.Close()
		deps.kafka = writer
	}

	// Images
	images, err := newImageStore(cfg)
	if err != nil {
		return err
	}
	deps.images = images

	r := newRouter(cfg, deps)

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", cfg.AppHost, cfg.AppPort)),
	))

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", cfg.AppHost, cfg.AppPort),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		log.Infof("HTTP server listening on %s:%s", cfg.AppHost, cfg.AppPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorw("HTTP server shutdown error", "error", err)
	}

	log.Info("HTTP server stopped gracefully")
	return nil
}

func memoryRepos() repos {
	users := repositories.NewUserMemoryRepository()
	books := repositories.NewBookMemoryRepository()
	return repos{
		userReader: users,
		userWriter: users,
		bookReader: books,
		bookWriter: books,
	}
}

func postgresRepos(db *sqlx.DB) repos {
	return repos{
		userReader: repositories.NewUserReadRepository(db),
		userWriter: repositories.NewUserWriteRepository(db, middlewares.GetTxFromContext),
		bookReader: repositories.NewBookReadRepository(db),
		bookWriter: repositories.NewBookWriteRepository(db, middlewares.GetTxFromContext),
		db:         db,
	}
}

func newImageStore(cfg config) (imageStore, error) {
	if cfg.ImageStorage == imagesMinio {
		logger.Log.Infof("Storing images in MinIO bucket %s at %s", cfg.MinioBucket, cfg.MinioEndpoint)
		return storage.NewMinioImageStore(cfg.MinioEndpoint, cfg.MinioAccessKey, cfg.MinioSecretKey, cfg.MinioBucket, cfg.MinioUseSSL)
	}
	logger.Log.Infof("Storing images in %s", cfg.UploadDir)
	return storage.NewFileImageStore(cfg.UploadDir)
}

// newRouter wires services and handlers. Writes run inside a transaction when a database is configured.
func newRouter(cfg config, deps dependencies) *chi.Mux {
	userService := services.NewUserService(deps.repos.userReader, deps.repos.userWriter)
	bookService := services.NewBookService(
		deps.repos.bookReader,
		deps.repos.bookWriter,
		deps.repos.userReader,
		deps.images,
		deps.cache,
		deps.kafka,
	).WithAfterCommit(middlewares.AfterCommit)

	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware)
	r.Use(middlewares.CORSMiddleware(cfg.CORSOrigins))
	r.Use(chimiddleware.RequestSize(cfg.MaxBodyMB << 20))

	r.Route("/api", func(r chi.Router) {
		// Reads
		r.Post("/login", handlers.NewLoginHandler(userService))
		r.Get("/users", handlers.NewListUsersHandler(userService))
		r.Get("/users/check-email", handlers.NewCheckEmailHandler(userService))
		r.Get("/users/check-name", handlers.NewCheckNameHandler(userService))
		r.Get("/books", handlers.NewListBooksHandler(bookService))
		r.Get("/books/{id}", handlers.NewGetBookHandler(bookService))

		// Writes
		r.Group(func(r chi.Router) {
			if deps.repos.db != nil {
				r.Use(middlewares.TxMiddleware(deps.repos.db))
			}
			r.Post("/register", handlers.NewRegisterHandler(userService))
			r.With(middlewares.IdentifyMiddleware(deps.repos.userReader)).
				Put("/users", handlers.NewUpdateUserHandler(userService))
			r.Post("/books", handlers.NewCreateBookHandler(bookService))
			r.Put("/books/{id}", handlers.NewUpdateBookHandler(bookService))
			r.Delete("/books/{id}", handlers.NewDeleteBookHandler(bookService))
		})
	})

	r.Get(strings.TrimSuffix(services.UploadsPrefix, "/")+"/{name}", handlers.NewUploadHandler(deps.images))

	return r
}
