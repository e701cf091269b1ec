package order

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	domain "github.com/BruksfildServices01/cleaning-booking/internal/domain/order"
	"github.com/BruksfildServices01/cleaning-booking/internal/domain/user"
	"github.com/BruksfildServices01/cleaning-booking/internal/dto"
	"github.com/BruksfildServices01/cleaning-booking/internal/httperr"
	"github.com/BruksfildServices01/cleaning-booking/internal/models"
	"github.com/BruksfildServices01/cleaning-booking/internal/timezone"
)

// ======================================================
// LIST
// ======================================================

type ListAdminOrders struct {
	repo domain.Repository
}

func NewListAdminOrders(repo domain.Repository) *ListAdminOrders {
	return &ListAdminOrders{repo: repo}
}

// Execute lists every order, newest first. With unassignedOnly it keeps
// only orders that have no employee yet.
func (uc *ListAdminOrders) Execute(
	ctx context.Context,
	unassignedOnly bool,
) ([]dto.AdminOrderDTO, error) {

	if unassignedOnly {
		return uc.repo.ListUnassignedOrders(ctx)
	}
	return uc.repo.ListAllOrders(ctx)
}

// ======================================================
// CREATE
// ======================================================

type AdminCreateOrderInput struct {
	UserID         uint
	StatusID       uint
	TotalPrice     *decimal.Decimal
	ServiceID      uint
	PropertyTypeID uint
	EmployeeID     *uint
	Address        string
	Date           string
	Comments       string
}

type AdminCreateOrder struct {
	repo  domain.Repository
	users user.Directory
	loc   *time.Location
	now   func() time.Time
}

func NewAdminCreateOrder(
	repo domain.Repository,
	users user.Directory,
	loc *time.Location,
) *AdminCreateOrder {
	return &AdminCreateOrder{
		repo:  repo,
		users: users,
		loc:   loc,
		now:   time.Now,
	}
}

// Execute creates an order on behalf of a customer. Service and property
// type fall back to the first catalog entries and the date to now.
func (uc *AdminCreateOrder) Execute(
	ctx context.Context,
	in AdminCreateOrderInput,
) (*models.Order, error) {

	switch {
	case in.UserID == 0:
		return nil, httperr.ErrMissingField("userId")
	case in.StatusID == 0:
		return nil, httperr.ErrMissingField("statusId")
	case in.TotalPrice == nil:
		return nil, httperr.ErrMissingField("totalPrice")
	case !in.TotalPrice.IsPositive():
		return nil, httperr.ErrBusiness("invalid_total_price")
	}

	status, err := domain.StatusFromID(in.StatusID)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_order_status")
	}

	if _, err := uc.users.GetUser(ctx, in.UserID); errors.Is(err, user.ErrUserNotFound) {
		return nil, httperr.ErrBusiness("user_not_found")
	} else if err != nil {
		return nil, err
	}

	if in.ServiceID == 0 {
		in.ServiceID = 1
	}
	if in.PropertyTypeID == 0 {
		in.PropertyTypeID = 1
	}
	if _, err := uc.repo.GetService(ctx, in.ServiceID); errors.Is(err, domain.ErrServiceNotFound) {
		return nil, httperr.ErrBusiness("invalid_service")
	} else if err != nil {
		return nil, err
	}
	if _, err := uc.repo.GetPropertyType(ctx, in.PropertyTypeID); errors.Is(err, domain.ErrPropertyTypeNotFound) {
		return nil, httperr.ErrBusiness("invalid_property_type")
	} else if err != nil {
		return nil, err
	}

	date := uc.now()
	if strings.TrimSpace(in.Date) != "" {
		if date, err = timezone.ParseDate(in.Date, uc.loc); err != nil {
			return nil, httperr.ErrBusiness("invalid_date")
		}
	}

	o := &models.Order{
		UserID:          in.UserID,
		EmployeeID:      in.EmployeeID,
		ServiceID:       in.ServiceID,
		PropertyTypeID:  in.PropertyTypeID,
		Address:         strings.TrimSpace(in.Address),
		TotalPrice:      *in.TotalPrice,
		Date:            date,
		Comments:        strings.TrimSpace(in.Comments),
		StatusID:        status.ID(),
		PaymentStatusID: domain.PaymentUnpaid.ID(),
	}
	if err := uc.repo.CreateOrder(ctx, o); err != nil {
		return nil, err
	}
	return o, nil
}

// ======================================================
// UPDATE
// ======================================================

// AdminUpdateOrderInput holds the editable columns; nil means unchanged.
// The owner is deliberately absent.
type AdminUpdateOrderInput struct {
	StatusID        *uint
	PaymentStatusID *uint
	TotalPrice      *decimal.Decimal
	Address         *string
	Date            *string
	Comments        *string
}

type AdminUpdateOrder struct {
	repo domain.Repository
	loc  *time.Location
}

func NewAdminUpdateOrder(repo domain.Repository, loc *time.Location) *AdminUpdateOrder {
	return &AdminUpdateOrder{repo: repo, loc: loc}
}

func (uc *AdminUpdateOrder) Execute(
	ctx context.Context,
	orderID uint,
	in AdminUpdateOrderInput,
) (*models.Order, error) {

	if orderID == 0 {
		return nil, httperr.ErrMissingField("id")
	}

	fields := map[string]any{}

	if in.StatusID != nil {
		status, err := domain.StatusFromID(*in.StatusID)
		if err != nil {
			return nil, httperr.ErrBusiness("invalid_order_status")
		}
		fields["status_id"] = status.ID()
	}
	if in.PaymentStatusID != nil {
		ps, err := domain.PaymentStatusFromID(*in.PaymentStatusID)
		if err != nil {
			return nil, httperr.ErrBusiness("invalid_payment_status")
		}
		fields["payment_status_id"] = ps.ID()
	}
	if in.TotalPrice != nil {
		if !in.TotalPrice.IsPositive() {
			return nil, httperr.ErrBusiness("invalid_total_price")
		}
		fields["total_price"] = *in.TotalPrice
	}
	if in.Address != nil {
		fields["address"] = strings.TrimSpace(*in.Address)
	}
	if in.Date != nil {
		date, err := timezone.ParseDate(*in.Date, uc.loc)
		if err != nil {
			return nil, httperr.ErrBusiness("invalid_date")
		}
		fields["date"] = date
	}
	if in.Comments != nil {
		fields["comments"] = strings.TrimSpace(*in.Comments)
	}

	if len(fields) > 0 {
		ok, err := uc.repo.UpdateOrderFields(ctx, orderID, fields)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, httperr.ErrBusiness("order_not_found")
		}
	}

	o, err := uc.repo.GetOrder(ctx, orderID)
	if err != nil {
		return nil, orderErr(err)
	}
	return o, nil
}

// ======================================================
// DELETE
// ======================================================

type AdminDeleteOrder struct {
	repo domain.Repository
}

func NewAdminDeleteOrder(repo domain.Repository) *AdminDeleteOrder {
	return &AdminDeleteOrder{repo: repo}
}

func (uc *AdminDeleteOrder) Execute(ctx context.Context, orderID uint) error {
	if orderID == 0 {
		return httperr.ErrMissingField("id")
	}

	ok, err := uc.repo.DeleteOrder(ctx, orderID)
	if err != nil {
		return err
	}
	if !ok {
		return httperr.ErrBusiness("order_not_found")
	}
	return nil
}
