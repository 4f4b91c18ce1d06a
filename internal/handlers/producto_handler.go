package handlers

import (
	"errors"
	"fmt"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"entidad/internal/models"
	"entidad/internal/repositories"
	"entidad/internal/services"
)

// ProductoHandler handles HTTP requests for productos.
type ProductoHandler struct {
	service  *services.ProductoService
	validate *validator.Validate
}

// NewProductoHandler creates a new ProductoHandler.
func NewProductoHandler(service *services.ProductoService) *ProductoHandler {
	return &ProductoHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the producto routes with the Fiber app.
func (h *ProductoHandler) RegisterRoutes(router fiber.Router) {
	productoRoutes := router.Group("/productos")
	productoRoutes.Post("/", h.HandleCreateProducto)
	productoRoutes.Get("/", h.HandleGetProductos)
	productoRoutes.Get("/:id", h.HandleGetProductoByID)
	productoRoutes.Put("/:id", h.HandleUpdateProducto)
	productoRoutes.Delete("/:id", h.HandleDeleteProducto)
}

// CreateProductoRequest is the request body for creating a producto.
type CreateProductoRequest struct {
	Nombre      string           `json:"nombre" validate:"required"`
	Descripcion *string          `json:"descripcion"`
	Precio      *decimal.Decimal `json:"precio" validate:"required"`
	Stock       *int             `json:"stock"`
}

// UpdateProductoRequest is the request body for a partial update. Every
// field is optional; a field left out (or sent as null) keeps its stored
// value.
type UpdateProductoRequest struct {
	Nombre      *string          `json:"nombre"`
	Descripcion *string          `json:"descripcion"`
	Precio      *decimal.Decimal `json:"precio"`
	Stock       *int             `json:"stock"`
}

// HandleCreateProducto creates a new producto.
func (h *ProductoHandler) HandleCreateProducto(c *fiber.Ctx) error {
	var req CreateProductoRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing create producto body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	// A zero precio counts as missing, same as an empty nombre.
	if err := h.validate.Struct(req); err != nil || req.Precio.IsZero() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Los campos nombre y precio son obligatorios",
		})
	}

	producto := models.Producto{
		Nombre: req.Nombre,
		Precio: *req.Precio,
	}
	// An empty descripcion is stored as NULL, not as an empty string.
	if req.Descripcion != nil && *req.Descripcion != "" {
		producto.Descripcion = req.Descripcion
	}
	if req.Stock != nil {
		producto.Stock = *req.Stock
	}

	if err := h.service.CreateProducto(c.Context(), &producto); err != nil {
		log.Printf("Error creating producto: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"mensaje":  "✅ Producto creado",
		"producto": producto,
	})
}

// HandleGetProductos lists every producto ordered by id.
func (h *ProductoHandler) HandleGetProductos(c *fiber.Ctx) error {
	productos, err := h.service.GetAllProductos(c.Context())
	if err != nil {
		log.Printf("Error listing productos: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"total":     len(productos),
		"productos": productos,
	})
}

// HandleGetProductoByID retrieves a single producto by its id.
func (h *ProductoHandler) HandleGetProductoByID(c *fiber.Ctx) error {
	id := c.Params("id")
	producto, err := h.service.GetProductoByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, repositories.ErrProductoNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": fmt.Sprintf("Producto con ID %s no encontrado", id),
			})
		}
		log.Printf("Error getting producto %s: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(producto)
}

// HandleUpdateProducto applies a coalesce-style partial update.
func (h *ProductoHandler) HandleUpdateProducto(c *fiber.Ctx) error {
	id := c.Params("id")

	var req UpdateProductoRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing update producto body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	cambios := repositories.ProductoUpdate{
		Nombre:      req.Nombre,
		Descripcion: req.Descripcion,
		Precio:      req.Precio,
		Stock:       req.Stock,
	}

	producto, err := h.service.UpdateProducto(c.Context(), id, cambios)
	if err != nil {
		if errors.Is(err, repositories.ErrProductoNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": fmt.Sprintf("Producto con ID %s no encontrado", id),
			})
		}
		log.Printf("Error updating producto %s: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"mensaje":  "✅ Producto actualizado",
		"producto": producto,
	})
}

// HandleDeleteProducto deletes a producto and returns the removed row.
func (h *ProductoHandler) HandleDeleteProducto(c *fiber.Ctx) error {
	id := c.Params("id")

	producto, err := h.service.DeleteProducto(c.Context(), id)
	if err != nil {
		if errors.Is(err, repositories.ErrProductoNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": fmt.Sprintf("Producto con ID %s no encontrado", id),
			})
		}
		log.Printf("Error deleting producto %s: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"mensaje":  "✅ Producto eliminado",
		"producto": producto,
	})
}
