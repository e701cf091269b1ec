package order

import (
	"context"

	"github.com/BruksfildServices01/cleaning-booking/internal/auth"
	domain "github.com/BruksfildServices01/cleaning-booking/internal/domain/order"
	"github.com/BruksfildServices01/cleaning-booking/internal/dto"
	"github.com/BruksfildServices01/cleaning-booking/internal/httperr"
)

// ListOrders is the owner's order history, oldest first.
type ListOrders struct {
	repo domain.Repository
}

func NewListOrders(repo domain.Repository) *ListOrders {
	return &ListOrders{repo: repo}
}

func (uc *ListOrders) Execute(
	ctx context.Context,
	p *auth.Principal,
) ([]dto.OrderDTO, error) {

	if p == nil {
		return nil, httperr.ErrBusiness("unauthenticated")
	}
	return uc.repo.ListOrdersForOwner(ctx, p.UserID)
}

type GetOrder struct {
	repo domain.Repository
}

func NewGetOrder(repo domain.Repository) *GetOrder {
	return &GetOrder{repo: repo}
}

// Execute returns the order only to its owner. Orders of other users are
// reported as missing.
func (uc *GetOrder) Execute(
	ctx context.Context,
	p *auth.Principal,
	orderID uint,
) (*dto.OrderDTO, error) {

	if p == nil {
		return nil, httperr.ErrBusiness("unauthenticated")
	}

	view, err := uc.repo.GetOrderForOwner(ctx, orderID, p.UserID)
	if err != nil {
		return nil, orderErr(err)
	}
	return view, nil
}
