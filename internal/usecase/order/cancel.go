package order

import (
	"context"
	"errors"

	"github.com/BruksfildServices01/cleaning-booking/internal/auth"
	domain "github.com/BruksfildServices01/cleaning-booking/internal/domain/order"
	"github.com/BruksfildServices01/cleaning-booking/internal/httperr"
)

type CancelOrder struct {
	repo domain.Repository
}

func NewCancelOrder(repo domain.Repository) *CancelOrder {
	return &CancelOrder{repo: repo}
}

// Execute moves a pending order to cancelled with one guarded update. The
// follow-up read only classifies a failure; it never decides success.
func (uc *CancelOrder) Execute(
	ctx context.Context,
	p *auth.Principal,
	orderID uint,
) error {

	if p == nil {
		return httperr.ErrBusiness("unauthenticated")
	}

	ok, err := uc.repo.CancelIfPending(ctx, orderID, p.UserID)
	if err != nil {
		return err
	}
	if ok {
		return nil
	}

	o, err := uc.repo.GetOrder(ctx, orderID)
	if err != nil {
		return orderErr(err)
	}
	if o.UserID != p.UserID {
		return httperr.ErrBusiness("order_not_found")
	}

	status, err := domain.StatusFromID(o.StatusID)
	if err != nil {
		return err
	}
	if err := domain.CanCancel(status); err != nil {
		return err
	}

	// Pending again by now: someone reverted it between the two statements.
	return httperr.ErrBusiness("invalid_state")
}

func orderErr(err error) error {
	if errors.Is(err, domain.ErrOrderNotFound) {
		return httperr.ErrBusiness("order_not_found")
	}
	return err
}
