package main

import (
	"context"
	"flag"
	"fmt"
	"net"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	_ "translation-backend/docs"
	"translation-backend/internal/config"
	"translation-backend/internal/database"
	"translation-backend/internal/gateway"
	"translation-backend/internal/handlers"
	"translation-backend/internal/middleware"
	"translation-backend/internal/repository"
	"translation-backend/internal/routes"
	"translation-backend/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	fiberSwagger "github.com/swaggo/fiber-swagger"
)

// @title Translation Backend API
// @version 1.0
// @description Chadian Arabic / French translation with per-user history and corrections

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:5000
// @BasePath /api
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

func main() {
	loadEnvFile()

	cfg := config.Load()
	log := setupLogger()

	command, args := "serve", os.Args[1:]
	if len(args) > 0 && !strings.HasPrefix(args[0], "-") {
		command, args = args[0], args[1:]
	}

	switch command {
	case "serve":
		serve(cfg, log, args)
	case "migrate":
		migrate(cfg, log)
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\nusage: %s [serve [-host HOST] [-port PORT] | migrate]\n", command, filepath.Base(os.Args[0]))
		os.Exit(2)
	}
}

func migrate(cfg *config.Config, log *logrus.Logger) {
	db, err := database.Connect(cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := db.Migrate(); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	log.Info("Database tables created")
}

func serve(cfg *config.Config, log *logrus.Logger, args []string) {
	fs := flag.NewFlagSet("serve", flag.ExitOnError)
	fs.StringVar(&cfg.Server.Host, "host", cfg.Server.Host, "address to listen on")
	fs.StringVar(&cfg.Server.Port, "port", cfg.Server.Port, "port to listen on")
	_ = fs.Parse(args)

	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	db, err := database.Connect(cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Errorf("Error closing database connection: %v", err)
		}
	}()

	if err := db.Migrate(); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	gw, err := setupGateway(cfg, log)
	if err != nil {
		log.Fatalf("Failed to initialize model gateway: %v", err)
	}
	if cfg.Inference.Warmup {
		go gw.Warmup(context.Background())
	}

	userRepo := repository.NewUserRepository(db)
	translationRepo := repository.NewTranslationRepository(db)

	authService := services.NewAuthService(userRepo, cfg.Auth.JWTSecretKey, cfg.Auth.TokenTTL, log)
	translationService := services.NewTranslationService(gw, userRepo, translationRepo, log)
	correctionService := services.NewCorrectionService(translationRepo, log)

	loginLimiter := middleware.NewLoginLimiter(cfg.Auth.LoginRateBurst, cfg.Auth.LoginRateInterval)
	sweepCtx, stopSweep := context.WithCancel(context.Background())
	defer stopSweep()
	go loginLimiter.Run(sweepCtx, middleware.DefaultSweepInterval)

	app := fiber.New(fiber.Config{
		AppName:               "Translation Backend API",
		ReadTimeout:           cfg.Server.ReadTimeout,
		WriteTimeout:          cfg.Server.WriteTimeout,
		IdleTimeout:           120 * time.Second,
		DisableStartupMessage: false,
		ErrorHandler:          customErrorHandler(log),
	})

	setupMiddleware(app, cfg)

	app.Get("/health", healthCheckHandler(db))

	// Swagger documentation
	app.Get("/swagger/*", fiberSwagger.WrapHandler)

	routes.Setup(app, routes.Handlers{
		Auth:         handlers.NewAuthHandler(authService, log),
		Translations: handlers.NewTranslationHandler(translationService, correctionService, gw, log),
	}, authService, loginLimiter)

	go gracefulShutdown(app, log)

	addr := net.JoinHostPort(cfg.Server.Host, cfg.Server.Port)
	log.Infof("Translation Backend API starting on %s", addr)
	if err := app.Listen(addr); err != nil {
		log.Fatalf("Failed to start HTTP server: %v", err)
	}
}

func setupGateway(cfg *config.Config, log *logrus.Logger) (*gateway.Gateway, error) {
	var store gateway.ArtifactStore
	switch cfg.Artifacts.Backend {
	case config.ArtifactsMinIO:
		minioStore, err := gateway.NewMinIOStore(&cfg.Artifacts.MinIO, log)
		if err != nil {
			return nil, err
		}
		store = minioStore
	default:
		store = gateway.NewDirStore(cfg.Artifacts.Dir)
	}

	generator := gateway.NewHTTPGenerator(cfg.Inference.BaseURL, cfg.Inference.HTTPTimeout)
	loader := gateway.NewArtifactLoader(store, generator)

	log.WithFields(logrus.Fields{
		"artifacts": cfg.Artifacts.Backend,
		"inference": cfg.Inference.BaseURL,
	}).Info("Model gateway configured")

	return gateway.NewGateway(gateway.NewRegistry(gateway.DefaultModels), loader, cfg.Inference.MaxNewTokens, log), nil
}

func setupLogger() *logrus.Logger {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: time.RFC3339,
	})
	log.SetOutput(os.Stdout)
	log.SetLevel(logrus.InfoLevel)

	if os.Getenv("GO_ENV") == "dev" || os.Getenv("GO_ENV") == "development" {
		log.SetLevel(logrus.DebugLevel)
	}

	return log
}

func setupMiddleware(app *fiber.App, cfg *config.Config) {
	app.Use(recover.New(recover.Config{
		EnableStackTrace: true,
	}))

	app.Use(requestid.New(requestid.Config{
		Header:    fiber.HeaderXRequestID,
		Generator: uuid.NewString,
	}))

	// Logger middleware
	app.Use(logger.New(logger.Config{
		Format:     "${time} | ${locals:requestid} | ${status} | ${latency} | ${ip} | ${method} | ${path} | ${error}\n",
		TimeFormat: "15:04:05",
		TimeZone:   "Local",
	}))

	// CORS middleware
	app.Use(cors.New(cors.Config{
		AllowOrigins:     strings.Join(cfg.Origins(), ","),
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization, X-Request-ID",
		AllowMethods:     "GET, POST, OPTIONS",
		AllowCredentials: false,
		MaxAge:           86400, // 24 hours
	}))
}

func healthCheckHandler(db *database.Database) fiber.Handler {
	return func(c *fiber.Ctx) error {
		dbStatus := "healthy"
		if err := db.HealthCheck(); err != nil {
			dbStatus = "unhealthy"
		}

		return c.JSON(fiber.Map{
			"status":    "ok",
			"service":   "translation-backend",
			"version":   "1.0.0",
			"database":  dbStatus,
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	}
}

func customErrorHandler(log *logrus.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError

		if e, ok := err.(*fiber.Error); ok {
			code = e.Code
		}

		log.WithError(err).WithFields(logrus.Fields{
			"method":     c.Method(),
			"path":       c.Path(),
			"status":     code,
			"request_id": c.Locals("requestid"),
		}).Error("Request error")

		return c.Status(code).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
}

func gracefulShutdown(app *fiber.App, log *logrus.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	if err := app.ShutdownWithTimeout(30 * time.Second); err != nil {
		log.Errorf("Error during shutdown: %v", err)
	}

	log.Info("Server shutdown complete")
}

func loadEnvFile() {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{})
	log.SetOutput(os.Stdout)

	env := os.Getenv("GO_ENV")
	if env == "" {
		env = "dev"
	}

	execDir, err := os.Getwd()
	if err != nil {
		log.Warnf("Could not get working directory: %v", err)
		return
	}

	envFile := filepath.Join(execDir, "envs", ".env."+env)
	if err := godotenv.Load(envFile); err != nil {
		log.Warnf("Could not load environment file %s: %v", envFile, err)

		defaultEnvFile := filepath.Join(execDir, "envs", ".env")
		if err := godotenv.Load(defaultEnvFile); err != nil {
			log.Warnf("Could not load default environment file: %v", err)
		} else {
			log.Infof("Environment loaded from default file %s", defaultEnvFile)
		}
	} else {
		log.Infof("Environment loaded from file %s", envFile)
	}
}
