package gateway

import (
	"context"
	"fmt"
	"strconv"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/preference"
)

const currency = "RUB"

type MercadoPago struct {
	client  preference.Client
	backURL string
}

var _ Gateway = (*MercadoPago)(nil)

func NewMercadoPago(accessToken, backURL string) (*MercadoPago, error) {
	cfg, err := config.New(accessToken)
	if err != nil {
		return nil, fmt.Errorf("mercadopago config: %w", err)
	}

	return &MercadoPago{
		client:  preference.NewClient(cfg),
		backURL: backURL,
	}, nil
}

// New returns the MercadoPago gateway, or Disabled when accessToken is empty.
func New(accessToken, backURL string) (Gateway, error) {
	if accessToken == "" {
		return Disabled{}, nil
	}
	return NewMercadoPago(accessToken, backURL)
}

func (g *MercadoPago) CreateCheckout(
	ctx context.Context,
	req CheckoutRequest,
) (*Checkout, error) {

	ref := strconv.FormatUint(uint64(req.OrderID), 10)

	request := preference.Request{
		ExternalReference: ref,
		Items: []preference.ItemRequest{
			{
				ID:         ref,
				Title:      req.Title,
				Quantity:   1,
				UnitPrice:  req.Amount.InexactFloat64(),
				CurrencyID: currency,
			},
		},
	}
	if req.PayerEmail != "" {
		request.Payer = &preference.PayerRequest{Email: req.PayerEmail}
	}
	if g.backURL != "" {
		request.BackURLs = &preference.BackURLsRequest{
			Success: g.backURL + "?order=" + ref + "&result=success",
			Pending: g.backURL + "?order=" + ref + "&result=pending",
			Failure: g.backURL + "?order=" + ref + "&result=failure",
		}
		request.AutoReturn = "approved"
	}

	resource, err := g.client.Create(ctx, request)
	if err != nil {
		return nil, fmt.Errorf("mercadopago preference: %w", err)
	}

	return &Checkout{
		PreferenceID: resource.ID,
		CheckoutURL:  resource.InitPoint,
	}, nil
}
