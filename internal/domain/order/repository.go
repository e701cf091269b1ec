package order

import (
	"context"
	"errors"

	"github.com/BruksfildServices01/cleaning-booking/internal/dto"
	"github.com/BruksfildServices01/cleaning-booking/internal/models"
)

var (
	ErrOrderNotFound        = errors.New("order not found")
	ErrServiceNotFound      = errors.New("service not found")
	ErrPropertyTypeNotFound = errors.New("property type not found")
)

type Repository interface {
	// -------- Catalog --------
	GetService(
		ctx context.Context,
		id uint,
	) (*models.Service, error)

	GetPropertyType(
		ctx context.Context,
		id uint,
	) (*models.PropertyType, error)

	// -------- Order (create / read) --------
	CreateOrder(
		ctx context.Context,
		o *models.Order,
	) error

	GetOrder(
		ctx context.Context,
		id uint,
	) (*models.Order, error)

	GetOrderForOwner(
		ctx context.Context,
		id uint,
		userID uint,
	) (*dto.OrderDTO, error)

	ListOrdersForOwner(
		ctx context.Context,
		userID uint,
	) ([]dto.OrderDTO, error)

	// -------- Order (conditional state change) --------
	CancelIfPending(
		ctx context.Context,
		id uint,
		userID uint,
	) (bool, error)

	PayIfNotPaid(
		ctx context.Context,
		id uint,
		userID uint,
		method PaymentMethod,
		status PaymentStatus,
	) (bool, error)

	SetEmployee(
		ctx context.Context,
		id uint,
		employeeID uint,
	) (bool, error)

	// -------- Admin --------
	ListAllOrders(
		ctx context.Context,
	) ([]dto.AdminOrderDTO, error)

	ListUnassignedOrders(
		ctx context.Context,
	) ([]dto.AdminOrderDTO, error)

	UpdateOrderFields(
		ctx context.Context,
		id uint,
		fields map[string]any,
	) (bool, error)

	DeleteOrder(
		ctx context.Context,
		id uint,
	) (bool, error)
}
