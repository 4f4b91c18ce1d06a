package repositories

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"

	"entidad/internal/models"
)

// ErrProductoNotFound is returned when no row matches the requested id.
var ErrProductoNotFound = errors.New("producto no encontrado")

// ProductoUpdate carries the optional fields of a partial update. A nil
// field means "keep the stored value" — an explicit JSON null in the request
// body decodes to nil as well, so both coalesce to the existing column.
type ProductoUpdate struct {
	Nombre      *string
	Descripcion *string
	Precio      *decimal.Decimal
	Stock       *int
}

// ProductoRepository defines the data access operations for productos.
// The id is passed through as an opaque string: it is bound as a query
// parameter without prior validation, and a malformed value surfaces as a
// storage error.
type ProductoRepository interface {
	GetAll(ctx context.Context) ([]models.Producto, error)
	GetByID(ctx context.Context, id string) (*models.Producto, error)
	Create(ctx context.Context, producto *models.Producto) error
	Update(ctx context.Context, id string, cambios ProductoUpdate) (*models.Producto, error)
	Delete(ctx context.Context, id string) (*models.Producto, error)
}
