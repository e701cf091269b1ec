// Package gateway talks to the online payment provider.
package gateway

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
)

// ErrNotConfigured is returned when no provider credentials are set.
var ErrNotConfigured = errors.New("payment gateway not configured")

type CheckoutRequest struct {
	OrderID    uint
	Title      string
	Amount     decimal.Decimal
	PayerEmail string
}

// Checkout is a hosted payment page prepared for one order.
type Checkout struct {
	PreferenceID string `json:"preferenceId"`
	CheckoutURL  string `json:"checkoutUrl"`
}

type Gateway interface {
	CreateCheckout(ctx context.Context, req CheckoutRequest) (*Checkout, error)
}

// Disabled is used when no access token is configured.
type Disabled struct{}

func (Disabled) CreateCheckout(context.Context, CheckoutRequest) (*Checkout, error) {
	return nil, ErrNotConfigured
}
