package main

import (
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"

	"github.com/Dinesh9529/ResumeGuru/internal/config"
	"github.com/Dinesh9529/ResumeGuru/internal/handlers"
	"github.com/Dinesh9529/ResumeGuru/internal/services"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("configuration error: %v", err)
	}

	logger := newLogger(cfg.Server.Env)
	defer logger.Sync()
	sugar := logger.Sugar()

	// Initialize services
	reviewService, err := newReviewService(cfg)
	if err != nil {
		sugar.Fatalw("failed to initialize review provider",
			"provider", cfg.LLM.Provider,
			"error", err,
		)
	}

	pdfParser := services.NewPDFParserService()
	paymentService := services.NewPhonePeService(&cfg.PhonePe, sugar)
	entitlementService := services.NewLogEntitlementService(sugar)

	// Initialize handlers
	reviewHandler := handlers.NewReviewHandler(reviewService, pdfParser, cfg.Upload.MaxFileSize, sugar)
	paymentHandler := handlers.NewPaymentHandler(paymentService, entitlementService, sugar)

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "ResumeGuru API",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second,
		BodyLimit:    int(cfg.Upload.MaxFileSize),
		ErrorHandler: customErrorHandler,
	})

	// Middleware
	app.Use(recover.New(recover.Config{
		EnableStackTrace: cfg.Server.Env != "production",
	}))
	app.Use(fiberlogger.New(fiberlogger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	// Routes
	api := app.Group("/api")
	api.Get("/health", reviewHandler.HandleHealth)
	api.Post("/review", reviewHandler.HandleReview)
	api.Post("/review/upload", reviewHandler.HandleReviewUpload)
	api.Post("/create-order", paymentHandler.HandleCreateOrder)

	app.Post("/webhook/phonepe", paymentHandler.HandleWebhook)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		sugar.Info("shutting down server...")
		if err := app.Shutdown(); err != nil {
			sugar.Errorw("server forced to shutdown", "error", err)
		}
	}()

	addr := ":" + cfg.Server.Port
	sugar.Infow("starting resumeguru server",
		"addr", addr,
		"provider", cfg.LLM.Provider,
	)

	if err := app.Listen(addr); err != nil {
		sugar.Fatalw("server error", "error", err)
	}
}

// newReviewService selects the review provider from configuration. A missing
// credential is not fatal; the review endpoint degrades to its fallback text.
func newReviewService(cfg *config.Config) (services.ReviewService, error) {
	if cfg.LLM.Provider == "gemini" {
		return services.NewGeminiReviewService(cfg.LLM.GeminiAPIKey)
	}
	return services.NewOpenRouterService(&cfg.LLM), nil
}

func newLogger(env string) *zap.Logger {
	if env == "production" {
		logger, _ := zap.NewProduction()
		return logger
	}
	logger, _ := zap.NewDevelopment()
	return logger
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	var e *fiber.Error
	if errors.As(err, &e) {
		code = e.Code
	}

	message := err.Error()
	if message == "" {
		message = "Internal Server Error"
	}

	return c.Status(code).JSON(fiber.Map{
		"ok":    false,
		"error": message,
	})
}
