package services_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"entidad/internal/models"
	"entidad/internal/repositories"
	"entidad/internal/services"
)

// MockProductoRepository is a mock implementation of repositories.ProductoRepository
type MockProductoRepository struct {
	mock.Mock
}

func (m *MockProductoRepository) GetAll(ctx context.Context) ([]models.Producto, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Producto), args.Error(1)
}

func (m *MockProductoRepository) GetByID(ctx context.Context, id string) (*models.Producto, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Producto), args.Error(1)
}

func (m *MockProductoRepository) Create(ctx context.Context, producto *models.Producto) error {
	args := m.Called(ctx, producto)
	return args.Error(0)
}

func (m *MockProductoRepository) Update(ctx context.Context, id string, cambios repositories.ProductoUpdate) (*models.Producto, error) {
	args := m.Called(ctx, id, cambios)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Producto), args.Error(1)
}

func (m *MockProductoRepository) Delete(ctx context.Context, id string) (*models.Producto, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Producto), args.Error(1)
}

// MockEventPublisher is a mock implementation of services.EventPublisher
type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) PublishProductoEvent(evento string, data map[string]interface{}) error {
	args := m.Called(evento, data)
	return args.Error(0)
}

func producto(id uint, nombre string, precio float64, stock int) *models.Producto {
	return &models.Producto{
		ID:     id,
		Nombre: nombre,
		Precio: decimal.NewFromFloat(precio),
		Stock:  stock,
	}
}

func TestProductoService_GetAllProductos(t *testing.T) {
	mockRepo := new(MockProductoRepository)
	service := services.NewProductoService(mockRepo, nil)

	expected := []models.Producto{
		*producto(1, "Producto A", 10.0, 100),
		*producto(2, "Producto B", 20.0, 50),
	}
	mockRepo.On("GetAll", mock.Anything).Return(expected, nil).Once()

	productos, err := service.GetAllProductos(context.Background())

	assert.NoError(t, err)
	assert.Len(t, productos, 2)
	assert.Equal(t, expected, productos)
	mockRepo.AssertExpectations(t)
}

func TestProductoService_GetProductoByID(t *testing.T) {
	mockRepo := new(MockProductoRepository)
	service := services.NewProductoService(mockRepo, nil)

	expected := producto(1, "Producto A", 10.0, 100)

	// Successful retrieval
	mockRepo.On("GetByID", mock.Anything, "1").Return(expected, nil).Once()
	p, err := service.GetProductoByID(context.Background(), "1")
	assert.NoError(t, err)
	assert.Equal(t, expected, p)

	// Not found
	mockRepo.On("GetByID", mock.Anything, "99").Return(nil, repositories.ErrProductoNotFound).Once()
	p, err = service.GetProductoByID(context.Background(), "99")
	assert.ErrorIs(t, err, repositories.ErrProductoNotFound)
	assert.Nil(t, p)
	mockRepo.AssertExpectations(t)
}

func TestProductoService_CreateProducto_PublishesEvent(t *testing.T) {
	mockRepo := new(MockProductoRepository)
	mockPublisher := new(MockEventPublisher)
	service := services.NewProductoService(mockRepo, mockPublisher)

	nuevo := producto(1, "Widget", 9.99, 0)
	mockRepo.On("Create", mock.Anything, nuevo).Return(nil).Once()
	mockPublisher.On("PublishProductoEvent", "producto.creado", mock.Anything).Return(nil).Once()

	err := service.CreateProducto(context.Background(), nuevo)

	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
	mockPublisher.AssertExpectations(t)
}

func TestProductoService_CreateProducto_RepoErrorDoesNotPublish(t *testing.T) {
	mockRepo := new(MockProductoRepository)
	mockPublisher := new(MockEventPublisher)
	service := services.NewProductoService(mockRepo, mockPublisher)

	nuevo := producto(0, "Widget", 9.99, 0)
	mockRepo.On("Create", mock.Anything, nuevo).Return(fmt.Errorf("connection refused")).Once()

	err := service.CreateProducto(context.Background(), nuevo)

	assert.Error(t, err)
	mockPublisher.AssertNotCalled(t, "PublishProductoEvent", mock.Anything, mock.Anything)
	mockRepo.AssertExpectations(t)
}

func TestProductoService_CreateProducto_NilPublisher(t *testing.T) {
	mockRepo := new(MockProductoRepository)
	service := services.NewProductoService(mockRepo, nil)

	nuevo := producto(1, "Widget", 9.99, 0)
	mockRepo.On("Create", mock.Anything, nuevo).Return(nil).Once()

	assert.NotPanics(t, func() {
		assert.NoError(t, service.CreateProducto(context.Background(), nuevo))
	})
	mockRepo.AssertExpectations(t)
}

func TestProductoService_CreateProducto_PublishFailureIsIgnored(t *testing.T) {
	mockRepo := new(MockProductoRepository)
	mockPublisher := new(MockEventPublisher)
	service := services.NewProductoService(mockRepo, mockPublisher)

	nuevo := producto(1, "Widget", 9.99, 0)
	mockRepo.On("Create", mock.Anything, nuevo).Return(nil).Once()
	mockPublisher.On("PublishProductoEvent", "producto.creado", mock.Anything).
		Return(fmt.Errorf("broker unavailable")).Once()

	err := service.CreateProducto(context.Background(), nuevo)

	assert.NoError(t, err)
	mockPublisher.AssertExpectations(t)
}

func TestProductoService_UpdateProducto(t *testing.T) {
	mockRepo := new(MockProductoRepository)
	mockPublisher := new(MockEventPublisher)
	service := services.NewProductoService(mockRepo, mockPublisher)

	stock := 5
	cambios := repositories.ProductoUpdate{Stock: &stock}
	actualizado := producto(1, "Widget", 9.99, 5)

	mockRepo.On("Update", mock.Anything, "1", cambios).Return(actualizado, nil).Once()
	mockPublisher.On("PublishProductoEvent", "producto.actualizado", mock.Anything).Return(nil).Once()

	p, err := service.UpdateProducto(context.Background(), "1", cambios)

	assert.NoError(t, err)
	assert.Equal(t, actualizado, p)
	mockRepo.AssertExpectations(t)
	mockPublisher.AssertExpectations(t)
}

func TestProductoService_UpdateProducto_NotFound(t *testing.T) {
	mockRepo := new(MockProductoRepository)
	mockPublisher := new(MockEventPublisher)
	service := services.NewProductoService(mockRepo, mockPublisher)

	mockRepo.On("Update", mock.Anything, "99", mock.Anything).
		Return(nil, repositories.ErrProductoNotFound).Once()

	p, err := service.UpdateProducto(context.Background(), "99", repositories.ProductoUpdate{})

	assert.ErrorIs(t, err, repositories.ErrProductoNotFound)
	assert.Nil(t, p)
	mockPublisher.AssertNotCalled(t, "PublishProductoEvent", mock.Anything, mock.Anything)
}

func TestProductoService_DeleteProducto(t *testing.T) {
	mockRepo := new(MockProductoRepository)
	mockPublisher := new(MockEventPublisher)
	service := services.NewProductoService(mockRepo, mockPublisher)

	eliminado := producto(1, "Widget", 9.99, 0)
	mockRepo.On("Delete", mock.Anything, "1").Return(eliminado, nil).Once()
	mockPublisher.On("PublishProductoEvent", "producto.eliminado", mock.Anything).Return(nil).Once()

	p, err := service.DeleteProducto(context.Background(), "1")

	assert.NoError(t, err)
	assert.Equal(t, eliminado, p)
	mockRepo.AssertExpectations(t)
	mockPublisher.AssertExpectations(t)
}
