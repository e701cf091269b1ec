package order

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/cleaning-booking/internal/auth"
	"github.com/BruksfildServices01/cleaning-booking/internal/domain/notification"
	domain "github.com/BruksfildServices01/cleaning-booking/internal/domain/order"
	"github.com/BruksfildServices01/cleaning-booking/internal/domain/user"
	"github.com/BruksfildServices01/cleaning-booking/internal/httperr"
	"github.com/BruksfildServices01/cleaning-booking/internal/models"
	"github.com/BruksfildServices01/cleaning-booking/internal/pricing"
	"github.com/BruksfildServices01/cleaning-booking/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type CreateOrderInput struct {
	ServiceID      uint
	PropertyTypeID uint
	Address        string
	Rooms          *int
	Square         *int
	Date           string
	TotalPrice     *decimal.Decimal
	Comments       string
}

// ======================================================
// USE CASE
// ======================================================

type CreateOrder struct {
	repo   domain.Repository
	notify notification.Notifier
	loc    *time.Location
}

func NewCreateOrder(
	repo domain.Repository,
	notify notification.Notifier,
	loc *time.Location,
) *CreateOrder {
	return &CreateOrder{
		repo:   repo,
		notify: notify,
		loc:    loc,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateOrder) Execute(
	ctx context.Context,
	p *auth.Principal,
	in CreateOrderInput,
) (*models.Order, error) {

	if p == nil {
		return nil, httperr.ErrBusiness("unauthenticated")
	}

	if err := in.validate(); err != nil {
		return nil, err
	}

	date, err := timezone.ParseDate(in.Date, uc.loc)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	service, err := uc.repo.GetService(ctx, in.ServiceID)
	if errors.Is(err, domain.ErrServiceNotFound) {
		return nil, httperr.ErrBusiness("invalid_service")
	}
	if err != nil {
		return nil, err
	}

	if _, err := uc.repo.GetPropertyType(ctx, in.PropertyTypeID); errors.Is(err, domain.ErrPropertyTypeNotFound) {
		return nil, httperr.ErrBusiness("invalid_property_type")
	} else if err != nil {
		return nil, err
	}

	square := 0
	if in.Square != nil && *in.Square > 0 {
		square = *in.Square
	}

	// The submitted total is stored as is; a mismatch is only reported.
	if quote, ok := pricing.Quote(service, square, in.Rooms); ok && !pricing.Matches(quote, *in.TotalPrice) {
		slog.WarnContext(ctx, "order total differs from quote",
			"user_id", p.UserID,
			"service_id", service.ID,
			"quote", quote.StringFixed(2),
			"submitted", in.TotalPrice.StringFixed(2),
		)
	}

	o := &models.Order{
		UserID:          p.UserID,
		ServiceID:       service.ID,
		PropertyTypeID:  in.PropertyTypeID,
		Address:         strings.TrimSpace(in.Address),
		Rooms:           in.Rooms,
		Square:          square,
		TotalPrice:      *in.TotalPrice,
		Date:            date,
		Comments:        strings.TrimSpace(in.Comments),
		StatusID:        domain.InitialStatus().ID(),
		PaymentStatusID: domain.PaymentUnpaid.ID(),
	}
	if service.Duration > 0 {
		end := date.Add(time.Duration(service.Duration) * time.Minute)
		o.EndDate = &end
	}

	if err := uc.repo.CreateOrder(ctx, o); err != nil {
		return nil, err
	}

	uc.notify.NotifyRole(ctx, user.RoleAdmin, notification.Notice{
		Key: "notify.order_created",
		Params: map[string]any{
			"ID":      o.ID,
			"Date":    o.Date.In(uc.loc).Format("02.01.2006 15:04"),
			"Address": o.Address,
		},
		Target: notification.OrderRef{OrderID: o.ID},
	})

	return o, nil
}

func (in CreateOrderInput) validate() error {
	switch {
	case in.ServiceID == 0:
		return httperr.ErrMissingField("serviceId")
	case strings.TrimSpace(in.Address) == "":
		return httperr.ErrMissingField("address")
	case in.PropertyTypeID == 0:
		return httperr.ErrMissingField("propertyType")
	case strings.TrimSpace(in.Date) == "":
		return httperr.ErrMissingField("date")
	case in.TotalPrice == nil:
		return httperr.ErrMissingField("totalPrice")
	case !in.TotalPrice.IsPositive():
		return httperr.ErrBusiness("invalid_total_price")
	}
	return nil
}
