package services

import (
	"context"
	"log"

	"entidad/internal/models"
	"entidad/internal/repositories"
)

// EventPublisher publishes producto lifecycle events to a message broker.
type EventPublisher interface {
	PublishProductoEvent(evento string, data map[string]interface{}) error
}

// ProductoService handles business logic related to productos.
type ProductoService struct {
	repo      repositories.ProductoRepository
	publisher EventPublisher
}

// NewProductoService creates a new ProductoService. The publisher may be nil,
// in which case no events are emitted.
func NewProductoService(repo repositories.ProductoRepository, publisher EventPublisher) *ProductoService {
	return &ProductoService{
		repo:      repo,
		publisher: publisher,
	}
}

// GetAllProductos retrieves every producto ordered by id.
func (s *ProductoService) GetAllProductos(ctx context.Context) ([]models.Producto, error) {
	return s.repo.GetAll(ctx)
}

// GetProductoByID retrieves a single producto by its id.
func (s *ProductoService) GetProductoByID(ctx context.Context, id string) (*models.Producto, error) {
	return s.repo.GetByID(ctx, id)
}

// CreateProducto inserts a new producto and emits a producto.creado event.
func (s *ProductoService) CreateProducto(ctx context.Context, producto *models.Producto) error {
	if err := s.repo.Create(ctx, producto); err != nil {
		return err
	}
	s.publish("producto.creado", producto)
	return nil
}

// UpdateProducto applies a partial update and emits a producto.actualizado
// event with the resulting row.
func (s *ProductoService) UpdateProducto(ctx context.Context, id string, cambios repositories.ProductoUpdate) (*models.Producto, error) {
	producto, err := s.repo.Update(ctx, id, cambios)
	if err != nil {
		return nil, err
	}
	s.publish("producto.actualizado", producto)
	return producto, nil
}

// DeleteProducto removes a producto and emits a producto.eliminado event
// carrying the deleted row.
func (s *ProductoService) DeleteProducto(ctx context.Context, id string) (*models.Producto, error) {
	producto, err := s.repo.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	s.publish("producto.eliminado", producto)
	return producto, nil
}

// publish emits an event for a successful mutation. Broker failures are
// logged and never affect the outcome of the request.
func (s *ProductoService) publish(evento string, producto *models.Producto) {
	if s.publisher == nil {
		return
	}
	data := map[string]interface{}{
		"id":     producto.ID,
		"nombre": producto.Nombre,
		"precio": producto.Precio.String(),
		"stock":  producto.Stock,
	}
	if err := s.publisher.PublishProductoEvent(evento, data); err != nil {
		log.Printf("Error publishing %s event for producto %d: %v", evento, producto.ID, err)
	}
}
