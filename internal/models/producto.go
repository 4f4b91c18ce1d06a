package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Producto represents one row of the productos table. Column and JSON names
// are part of the public API contract and must stay as-is.
type Producto struct {
	ID          uint            `json:"id" gorm:"primaryKey"`
	Nombre      string          `json:"nombre" gorm:"type:varchar(100);not null"`
	Descripcion *string         `json:"descripcion" gorm:"type:text"`
	Precio      decimal.Decimal `json:"precio" gorm:"type:decimal(10,2);not null"`
	Stock       int             `json:"stock" gorm:"default:0"`
	CreatedAt   time.Time       `json:"created_at" gorm:"default:CURRENT_TIMESTAMP"`
	UpdatedAt   time.Time       `json:"updated_at" gorm:"default:CURRENT_TIMESTAMP"`
}

// TableName overrides GORM's pluralization with the exact table name.
func (Producto) TableName() string {
	return "productos"
}
