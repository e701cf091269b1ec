package order

import (
	"context"
	"errors"

	"github.com/BruksfildServices01/cleaning-booking/internal/domain/notification"
	domain "github.com/BruksfildServices01/cleaning-booking/internal/domain/order"
	"github.com/BruksfildServices01/cleaning-booking/internal/domain/user"
	"github.com/BruksfildServices01/cleaning-booking/internal/httperr"
)

type AssignEmployee struct {
	repo   domain.Repository
	users  user.Directory
	notify notification.Notifier
}

func NewAssignEmployee(
	repo domain.Repository,
	users user.Directory,
	notify notification.Notifier,
) *AssignEmployee {
	return &AssignEmployee{
		repo:   repo,
		users:  users,
		notify: notify,
	}
}

// Execute overwrites the order's employee. Concurrent assignments are
// last-writer-wins; availability is not checked.
func (uc *AssignEmployee) Execute(
	ctx context.Context,
	orderID uint,
	employeeID uint,
) error {

	if employeeID == 0 {
		return httperr.ErrMissingField("employeeId")
	}

	emp, err := uc.users.GetUser(ctx, employeeID)
	if errors.Is(err, user.ErrUserNotFound) {
		return httperr.ErrBusiness("employee_not_found")
	}
	if err != nil {
		return err
	}
	if user.Role(emp.RoleID) != user.RoleEmployee {
		return httperr.ErrBusiness("invalid_employee")
	}

	ok, err := uc.repo.SetEmployee(ctx, orderID, employeeID)
	if err != nil {
		return err
	}
	if !ok {
		return httperr.ErrBusiness("order_not_found")
	}

	o, err := uc.repo.GetOrder(ctx, orderID)
	if err != nil {
		return orderErr(err)
	}

	uc.notify.Notify(notification.Notice{
		UserID: employeeID,
		Key:    "notify.order_assigned",
		Params: map[string]any{
			"ID":      o.ID,
			"Address": o.Address,
		},
		Target: notification.OrderRef{OrderID: o.ID},
	})

	return nil
}
