package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"cloud.google.com/go/bigquery"
	"cloud.google.com/go/firestore"
	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/swagger"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/engr401-groot-ai/notification-system-server/docs"
	"github.com/engr401-groot-ai/notification-system-server/internal/config"
	handlers "github.com/engr401-groot-ai/notification-system-server/internal/http/handler"
	"github.com/engr401-groot-ai/notification-system-server/internal/http/middleware"
	"github.com/engr401-groot-ai/notification-system-server/internal/otel"
	bqrepo "github.com/engr401-groot-ai/notification-system-server/internal/repository/bigquery"
	fsrepo "github.com/engr401-groot-ai/notification-system-server/internal/repository/firestore"
	"github.com/engr401-groot-ai/notification-system-server/internal/service"
)

// @title Notification System Server
// @version 1.0.0
// @BasePath /
func main() {
	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()

	ctx := context.Background()

	// Initialize OTLP tracing; degrades to noop when no collector is configured
	shutdownTracing, err := otel.Init(ctx)
	if err != nil {
		log.Fatalf("failed to initialize tracing: %v", err)
	}
	defer shutdownTracing(context.Background())

	// BigQuery holds the mentions archive written by the scraper pipeline
	bqClient, err := bigquery.NewClient(ctx, cfg.GCP.ProjectID)
	if err != nil {
		log.Fatalf("failed to create BigQuery client: %v", err)
	}
	defer bqClient.Close()

	// Firestore holds the single notification-settings document
	fsClient, err := firestore.NewClientWithDatabase(ctx, cfg.GCP.ProjectID, cfg.GCP.FirestoreDatabase)
	if err != nil {
		log.Fatalf("failed to create Firestore client: %v", err)
	}
	defer fsClient.Close()

	// Initialize repositories and services
	mentionRepo := bqrepo.NewMentionBigQuery(bqClient, cfg.GCP.MentionsTableID())
	settingsRepo := fsrepo.NewSettingsFirestore(fsClient, cfg.GCP.SettingsCollection, cfg.GCP.SettingsDoc)
	mentionSvc := service.NewMentionService(mentionRepo)
	settingsSvc := service.NewSettingsService(settingsRepo)

	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.ErrorHandler(),
	})

	// Register global middleware
	app.Use(middleware.RequestID())
	app.Use(middleware.Logger())
	app.Use(otelfiber.Middleware())

	promMW, err := middleware.NewPrometheusMiddleware(prometheus.DefaultRegisterer)
	if err != nil {
		log.Fatalf("failed to register metrics: %v", err)
	}
	app.Use(promMW.Handler())
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	// Readiness: confirm the mentions dataset is reachable
	ready := func(ctx context.Context) error {
		_, err := bqClient.Dataset(cfg.GCP.Dataset).Metadata(ctx)
		return err
	}

	// Register HTTP routes with injected services
	handlers.RegisterRoutes(app, ready, mentionSvc, settingsSvc)

	// Swagger UI with dynamic host and scheme
	app.Get("/swagger/*", func(c *fiber.Ctx) error {
		scheme := c.Protocol()
		if proto := c.Get("X-Forwarded-Proto"); proto != "" {
			scheme = strings.Split(proto, ",")[0]
		}

		docs.SwaggerInfo.Host = c.Get("Host")
		docs.SwaggerInfo.Schemes = []string{scheme}

		return swagger.HandlerDefault(c)
	})

	addr := ":" + cfg.Port

	errCh := make(chan error, 1)
	go func() {
		errCh <- app.Listen(addr)
	}()

	// The server runs as the container's foreground process, so termination
	// signals arrive here directly and the accept loop can drain cleanly.
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			log.Fatalf("failed to start server: %v", err)
		}
	case sig := <-sigCh:
		log.Printf("received signal %v, shutting down", sig)
		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			log.Printf("server shutdown: %v", err)
		}
	}
}
