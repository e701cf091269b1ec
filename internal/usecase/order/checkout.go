package order

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/BruksfildServices01/cleaning-booking/internal/auth"
	domain "github.com/BruksfildServices01/cleaning-booking/internal/domain/order"
	"github.com/BruksfildServices01/cleaning-booking/internal/gateway"
	"github.com/BruksfildServices01/cleaning-booking/internal/httperr"
)

// StartCheckout prepares a hosted payment page for an unpaid order. It does
// not touch the payment columns; the customer still confirms with PayOrder.
type StartCheckout struct {
	repo    domain.Repository
	gateway gateway.Gateway
}

func NewStartCheckout(
	repo domain.Repository,
	gw gateway.Gateway,
) *StartCheckout {
	return &StartCheckout{
		repo:    repo,
		gateway: gw,
	}
}

func (uc *StartCheckout) Execute(
	ctx context.Context,
	p *auth.Principal,
	orderID uint,
) (*gateway.Checkout, error) {

	if p == nil {
		return nil, httperr.ErrBusiness("unauthenticated")
	}

	view, err := uc.repo.GetOrderForOwner(ctx, orderID, p.UserID)
	if err != nil {
		return nil, orderErr(err)
	}

	if err := domain.CanPay(domain.PaymentStatus(view.PaymentStatusID)); err != nil {
		return nil, err
	}

	checkout, err := uc.gateway.CreateCheckout(ctx, gateway.CheckoutRequest{
		OrderID:    view.ID,
		Title:      fmt.Sprintf("%s #%d", view.ServiceName, view.ID),
		Amount:     view.TotalPrice,
		PayerEmail: p.Email,
	})
	if errors.Is(err, gateway.ErrNotConfigured) {
		return nil, httperr.ErrBusiness("gateway_unavailable")
	}
	if err != nil {
		slog.ErrorContext(ctx, "checkout failed", "order_id", view.ID, "error", err)
		return nil, httperr.ErrBusiness("gateway_error")
	}
	return checkout, nil
}
