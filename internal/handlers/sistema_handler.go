package handlers

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"entidad/internal/config"
	"entidad/internal/database"
)

// SistemaHandler serves the service metadata, health check and schema
// initialization endpoints.
type SistemaHandler struct {
	db  *gorm.DB
	cfg *config.Config
}

// NewSistemaHandler creates a new SistemaHandler.
func NewSistemaHandler(db *gorm.DB, cfg *config.Config) *SistemaHandler {
	return &SistemaHandler{
		db:  db,
		cfg: cfg,
	}
}

// RegisterRoutes registers the system routes with the Fiber app.
func (h *SistemaHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/", h.HandleRoot)
	router.Get("/health", h.HandleHealth)
	router.Get("/init", h.HandleInit)
}

// HandleRoot returns the service metadata and endpoint directory.
func (h *SistemaHandler) HandleRoot(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"mensaje": "🚀 API de Entidad - Funcionando en Codespaces",
		"version": "1.0.0",
		"endpoints": fiber.Map{
			"health": "GET /health",
			"init":   "GET /init",
			"productos": fiber.Map{
				"crear":      "POST /productos",
				"listar":     "GET /productos",
				"obtener":    "GET /productos/:id",
				"actualizar": "PUT /productos/:id",
				"eliminar":   "DELETE /productos/:id",
			},
		},
	})
}

// HandleHealth pings the connection pool and reports the database state.
func (h *SistemaHandler) HandleHealth(c *fiber.Ctx) error {
	sqlDB, err := h.db.DB()
	if err == nil {
		err = sqlDB.PingContext(c.Context())
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"estado":    "ERROR",
			"baseDatos": "Desconectada",
			"error":     err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"estado":    "OK",
		"baseDatos": "Conectada",
		"timestamp": time.Now(),
		"codespace": h.cfg.CodespaceName,
	})
}

// HandleInit ensures the productos table exists. Safe to call repeatedly.
func (h *SistemaHandler) HandleInit(c *fiber.Ctx) error {
	if err := database.Migrate(h.db); err != nil {
		log.Printf("Error initializing schema: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"mensaje": "✅ Tabla productos creada exitosamente",
		"nota":    "Ahora puedes crear productos usando POST /productos",
	})
}
