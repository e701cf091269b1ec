package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/cleaning-booking/internal/domain/order"
	"github.com/BruksfildServices01/cleaning-booking/internal/dto"
	"github.com/BruksfildServices01/cleaning-booking/internal/models"
)

type OrderGormRepository struct {
	db *gorm.DB
}

func NewOrderGormRepository(db *gorm.DB) *OrderGormRepository {
	return &OrderGormRepository{db: db}
}

var _ domain.Repository = (*OrderGormRepository)(nil)

// --------------------------------------------------
// Catalog
// --------------------------------------------------

func (r *OrderGormRepository) GetService(
	ctx context.Context,
	id uint,
) (*models.Service, error) {

	var service models.Service
	if err := conn(ctx, r.db).First(&service, id).Error; err != nil {
		return nil, notFound(err, domain.ErrServiceNotFound)
	}
	return &service, nil
}

func (r *OrderGormRepository) GetPropertyType(
	ctx context.Context,
	id uint,
) (*models.PropertyType, error) {

	var pt models.PropertyType
	if err := conn(ctx, r.db).First(&pt, id).Error; err != nil {
		return nil, notFound(err, domain.ErrPropertyTypeNotFound)
	}
	return &pt, nil
}

// --------------------------------------------------
// Order (create / read)
// --------------------------------------------------

func (r *OrderGormRepository) CreateOrder(
	ctx context.Context,
	o *models.Order,
) error {
	return conn(ctx, r.db).Omit(clause.Associations).Create(o).Error
}

func (r *OrderGormRepository) GetOrder(
	ctx context.Context,
	id uint,
) (*models.Order, error) {

	var o models.Order
	if err := conn(ctx, r.db).First(&o, id).Error; err != nil {
		return nil, notFound(err, domain.ErrOrderNotFound)
	}
	return &o, nil
}

func (r *OrderGormRepository) GetOrderForOwner(
	ctx context.Context,
	id uint,
	userID uint,
) (*dto.OrderDTO, error) {

	var o models.Order
	if err := conn(ctx, r.db).
		Preload("Status").
		Preload("Service").
		Where("id = ? AND user_id = ?", id, userID).
		First(&o).Error; err != nil {
		return nil, notFound(err, domain.ErrOrderNotFound)
	}

	view := toOrderDTO(&o)
	return &view, nil
}

func (r *OrderGormRepository) ListOrdersForOwner(
	ctx context.Context,
	userID uint,
) ([]dto.OrderDTO, error) {

	var orders []models.Order
	if err := conn(ctx, r.db).
		Preload("Status").
		Preload("Service").
		Where("user_id = ?", userID).
		Order("created_at ASC, id ASC").
		Find(&orders).Error; err != nil {
		return nil, err
	}

	out := make([]dto.OrderDTO, 0, len(orders))
	for i := range orders {
		out = append(out, toOrderDTO(&orders[i]))
	}
	return out, nil
}

// --------------------------------------------------
// Order (conditional state change)
// --------------------------------------------------

// CancelIfPending is a single guarded UPDATE; false means no row matched.
func (r *OrderGormRepository) CancelIfPending(
	ctx context.Context,
	id uint,
	userID uint,
) (bool, error) {

	res := conn(ctx, r.db).
		Model(&models.Order{}).
		Where("id = ? AND user_id = ? AND status_id = ?", id, userID, domain.StatusPending.ID()).
		Update("status_id", domain.StatusCancelled.ID())
	return res.RowsAffected > 0, res.Error
}

// PayIfNotPaid writes method and status together, only while the order is
// not yet paid.
func (r *OrderGormRepository) PayIfNotPaid(
	ctx context.Context,
	id uint,
	userID uint,
	method domain.PaymentMethod,
	status domain.PaymentStatus,
) (bool, error) {

	res := conn(ctx, r.db).
		Model(&models.Order{}).
		Where("id = ? AND user_id = ? AND payment_status_id <> ?", id, userID, domain.PaymentPaid.ID()).
		Updates(map[string]any{
			"payment_method_id": method.ID(),
			"payment_status_id": status.ID(),
		})
	return res.RowsAffected > 0, res.Error
}

// SetEmployee overwrites any previous assignment.
func (r *OrderGormRepository) SetEmployee(
	ctx context.Context,
	id uint,
	employeeID uint,
) (bool, error) {

	res := conn(ctx, r.db).
		Model(&models.Order{}).
		Where("id = ?", id).
		Update("employee_id", employeeID)
	return res.RowsAffected > 0, res.Error
}

// --------------------------------------------------
// Admin
// --------------------------------------------------

func (r *OrderGormRepository) ListAllOrders(
	ctx context.Context,
) ([]dto.AdminOrderDTO, error) {
	return r.listAdmin(ctx, nil)
}

func (r *OrderGormRepository) ListUnassignedOrders(
	ctx context.Context,
) ([]dto.AdminOrderDTO, error) {
	return r.listAdmin(ctx, func(q *gorm.DB) *gorm.DB {
		return q.Where("employee_id IS NULL")
	})
}

func (r *OrderGormRepository) listAdmin(
	ctx context.Context,
	scope func(*gorm.DB) *gorm.DB,
) ([]dto.AdminOrderDTO, error) {

	q := conn(ctx, r.db).
		Preload("User").
		Preload("Employee").
		Preload("Status").
		Preload("Service")
	if scope != nil {
		q = q.Scopes(scope)
	}

	var orders []models.Order
	if err := q.Order("created_at DESC, id DESC").Find(&orders).Error; err != nil {
		return nil, err
	}

	out := make([]dto.AdminOrderDTO, 0, len(orders))
	for i := range orders {
		out = append(out, toAdminOrderDTO(&orders[i]))
	}
	return out, nil
}

func (r *OrderGormRepository) UpdateOrderFields(
	ctx context.Context,
	id uint,
	fields map[string]any,
) (bool, error) {

	res := conn(ctx, r.db).
		Model(&models.Order{}).
		Where("id = ?", id).
		Updates(fields)
	return res.RowsAffected > 0, res.Error
}

func (r *OrderGormRepository) DeleteOrder(
	ctx context.Context,
	id uint,
) (bool, error) {

	res := conn(ctx, r.db).Where("id = ?", id).Delete(&models.Order{})
	return res.RowsAffected > 0, res.Error
}

// --------------------------------------------------
// Mapping
// --------------------------------------------------

func toOrderDTO(o *models.Order) dto.OrderDTO {
	return dto.OrderDTO{
		ID:             o.ID,
		UserID:         o.UserID,
		EmployeeID:     o.EmployeeID,
		ServiceID:      o.ServiceID,
		ServiceName:    o.Service.Name,
		PropertyTypeID: o.PropertyTypeID,
		Address:        o.Address,
		Rooms:          o.Rooms,
		Square:         o.Square,
		TotalPrice:     o.TotalPrice,
		Date:           o.Date,
		EndDate:        o.EndDate,
		Comments:       o.Comments,
		Status: dto.LookupDTO{
			ID:          o.StatusID,
			Name:        o.Status.Name,
			Description: o.Status.Description,
		},
		PaymentStatusID: o.PaymentStatusID,
		PaymentStatus:   domain.PaymentStatus(o.PaymentStatusID).Label(),
		PaymentMethodID: o.PaymentMethodID,
		CreatedAt:       o.CreatedAt,
	}
}

func toAdminOrderDTO(o *models.Order) dto.AdminOrderDTO {
	view := dto.AdminOrderDTO{
		ID:                o.ID,
		UserID:            o.UserID,
		UserName:          o.User.Name,
		EmployeeID:        o.EmployeeID,
		ServiceID:         o.ServiceID,
		ServiceName:       o.Service.Name,
		PropertyTypeID:    o.PropertyTypeID,
		Address:           o.Address,
		Rooms:             o.Rooms,
		Square:            o.Square,
		TotalPrice:        o.TotalPrice,
		Date:              o.Date,
		EndDate:           o.EndDate,
		Comments:          o.Comments,
		StatusID:          o.StatusID,
		StatusDescription: o.Status.Description,
		PaymentStatusID:   o.PaymentStatusID,
		PaymentMethodID:   o.PaymentMethodID,
		CreatedAt:         o.CreatedAt,
	}
	if o.Employee != nil {
		name := o.Employee.Name
		view.EmployeeName = &name
	}
	return view
}

func notFound(err, domainErr error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domainErr
	}
	return err
}
