package order

import (
	"context"

	"github.com/BruksfildServices01/cleaning-booking/internal/auth"
	domain "github.com/BruksfildServices01/cleaning-booking/internal/domain/order"
	"github.com/BruksfildServices01/cleaning-booking/internal/dto"
	"github.com/BruksfildServices01/cleaning-booking/internal/httperr"
)

type PayOrder struct {
	repo domain.Repository
}

func NewPayOrder(repo domain.Repository) *PayOrder {
	return &PayOrder{repo: repo}
}

// Execute records the payment method and the resulting payment status in a
// single update guarded by "not yet paid", so an order is paid at most once.
func (uc *PayOrder) Execute(
	ctx context.Context,
	p *auth.Principal,
	orderID uint,
	rawMethod string,
) (*dto.OrderDTO, error) {

	if p == nil {
		return nil, httperr.ErrBusiness("unauthenticated")
	}

	method, err := domain.ParseMethod(rawMethod)
	if err != nil {
		return nil, err
	}

	ok, err := uc.repo.PayIfNotPaid(ctx, orderID, p.UserID, method, method.ResultingStatus())
	if err != nil {
		return nil, err
	}

	if !ok {
		o, err := uc.repo.GetOrder(ctx, orderID)
		if err != nil {
			return nil, orderErr(err)
		}
		if o.UserID != p.UserID {
			return nil, httperr.ErrBusiness("order_not_found")
		}
		return nil, httperr.ErrBusiness("already_paid")
	}

	view, err := uc.repo.GetOrderForOwner(ctx, orderID, p.UserID)
	if err != nil {
		return nil, orderErr(err)
	}
	return view, nil
}
