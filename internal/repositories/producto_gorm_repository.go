package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"entidad/internal/models"
)

// GORMProductoRepository is a GORM implementation of ProductoRepository.
type GORMProductoRepository struct {
	db *gorm.DB
}

// NewGORMProductoRepository creates a new instance of GORMProductoRepository.
func NewGORMProductoRepository(db *gorm.DB) *GORMProductoRepository {
	return &GORMProductoRepository{
		db: db,
	}
}

// GetAll retrieves every producto ordered by ascending id.
func (r *GORMProductoRepository) GetAll(ctx context.Context) ([]models.Producto, error) {
	productos := make([]models.Producto, 0)
	if err := r.db.WithContext(ctx).Order("id").Find(&productos).Error; err != nil {
		return nil, fmt.Errorf("failed to list productos: %w", err)
	}
	return productos, nil
}

// GetByID retrieves a single producto by its id.
func (r *GORMProductoRepository) GetByID(ctx context.Context, id string) (*models.Producto, error) {
	var producto models.Producto
	if err := r.db.WithContext(ctx).First(&producto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductoNotFound
		}
		return nil, fmt.Errorf("failed to get producto %s: %w", id, err)
	}
	return &producto, nil
}

// Create inserts a new row and fills in the generated id and timestamps.
func (r *GORMProductoRepository) Create(ctx context.Context, producto *models.Producto) error {
	if err := r.db.WithContext(ctx).Create(producto).Error; err != nil {
		return fmt.Errorf("failed to create producto: %w", err)
	}
	return nil
}

// Update applies a coalesce-style partial update: only non-nil fields
// replace the stored values, and updated_at is refreshed regardless of
// which fields changed. A single UPDATE ... RETURNING statement yields the
// exact row state the update produced.
func (r *GORMProductoRepository) Update(ctx context.Context, id string, cambios ProductoUpdate) (*models.Producto, error) {
	valores := map[string]interface{}{
		"updated_at": time.Now(),
	}
	if cambios.Nombre != nil {
		valores["nombre"] = *cambios.Nombre
	}
	if cambios.Descripcion != nil {
		valores["descripcion"] = *cambios.Descripcion
	}
	if cambios.Precio != nil {
		valores["precio"] = *cambios.Precio
	}
	if cambios.Stock != nil {
		valores["stock"] = *cambios.Stock
	}

	var producto models.Producto
	res := r.db.WithContext(ctx).Model(&producto).
		Clauses(clause.Returning{}).
		Where("id = ?", id).
		Updates(valores)
	if res.Error != nil {
		return nil, fmt.Errorf("failed to update producto %s: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, ErrProductoNotFound
	}
	return &producto, nil
}

// Delete removes the matching row with DELETE ... RETURNING, so the row
// handed back is exactly the one taken out.
func (r *GORMProductoRepository) Delete(ctx context.Context, id string) (*models.Producto, error) {
	var producto models.Producto
	res := r.db.WithContext(ctx).
		Clauses(clause.Returning{}).
		Where("id = ?", id).
		Delete(&producto)
	if res.Error != nil {
		return nil, fmt.Errorf("failed to delete producto %s: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, ErrProductoNotFound
	}
	return &producto, nil
}
