package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"

	"entidad/internal/config"
	"entidad/internal/database"
	"entidad/internal/handlers"
	"entidad/internal/middleware"
	"entidad/internal/repositories"
	"entidad/internal/services"
	"entidad/pkg/rabbitmq"
)

func main() {
	// --- Configuration ---
	cfg := config.Load()

	// --- Database ---
	// The pool is opened lazily: the server must come up even when the
	// database is not reachable yet. The schema is created via GET /init.
	db, err := database.Connect(cfg.DSN())
	if err != nil {
		log.Fatalf("Failed to configure database connection: %v", err)
	}

	// --- Event publisher (optional) ---
	var publisher services.EventPublisher
	var mqClient *rabbitmq.Client
	if cfg.RabbitMQURL != "" {
		mqClient, err = rabbitmq.NewClient(rabbitmq.Config{URL: cfg.RabbitMQURL})
		if err != nil {
			log.Fatalf("Failed to initialize RabbitMQ client: %v", err)
		}
		defer mqClient.Close()
		publisher = mqClient
	} else {
		log.Println("RABBITMQ_URL not set, producto event publishing disabled")
	}

	// --- Repositories / Services / Handlers ---
	productoRepo := repositories.NewGORMProductoRepository(db)
	productoService := services.NewProductoService(productoRepo, publisher)
	productoHandler := handlers.NewProductoHandler(productoService)
	sistemaHandler := handlers.NewSistemaHandler(db, cfg)

	// --- Fiber app ---
	app := fiber.New()

	// --- Middleware ---
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	app.Use(logger.New())
	app.Use(middleware.CORS())

	// --- Routes ---
	sistemaHandler.RegisterRoutes(app)
	productoHandler.RegisterRoutes(app)

	// --- Start HTTP server ---
	log.Printf("Servidor corriendo en puerto %s", cfg.Port)
	log.Printf("Entorno: %s", cfg.AppEnv)
	if cfg.CodespaceName != "local" {
		log.Printf("Codespace: %s", cfg.CodespaceName)
	}

	// Graceful shutdown handling
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := app.Listen(cfg.ListenAddr()); err != nil {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	<-quit
	log.Println("Shutting down server...")

	if err := app.Shutdown(); err != nil {
		log.Printf("Error during Fiber shutdown: %v", err)
	}

	log.Println("Server gracefully stopped")
}
