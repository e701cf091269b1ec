package order

import (
	"fmt"
	"strings"

	"github.com/BruksfildServices01/cleaning-booking/internal/httperr"
)

// ===============================
// Payment Status
// ===============================

type PaymentStatus uint

const (
	PaymentUnpaid   PaymentStatus = 1
	PaymentPaid     PaymentStatus = 2
	PaymentRefunded PaymentStatus = 3
)

var AllPaymentStatuses = []PaymentStatus{PaymentUnpaid, PaymentPaid, PaymentRefunded}

func (p PaymentStatus) ID() uint { return uint(p) }

func (p PaymentStatus) Name() string {
	switch p {
	case PaymentUnpaid:
		return "unpaid"
	case PaymentPaid:
		return "paid"
	case PaymentRefunded:
		return "refunded"
	}
	return "unknown"
}

// Label is the two-valued flag shown to customers: paid or unpaid.
func (p PaymentStatus) Label() string {
	if p == PaymentPaid {
		return "paid"
	}
	return "unpaid"
}

func PaymentStatusFromID(id uint) (PaymentStatus, error) {
	switch p := PaymentStatus(id); p {
	case PaymentUnpaid, PaymentPaid, PaymentRefunded:
		return p, nil
	}
	return 0, fmt.Errorf("unknown payment status id %d", id)
}

// CanPay rejects a second payment of the same order.
func CanPay(current PaymentStatus) error {
	if current == PaymentPaid {
		return httperr.ErrBusiness("already_paid")
	}
	return nil
}

// ===============================
// Payment Method
// ===============================

type PaymentMethod uint

const (
	MethodCash   PaymentMethod = 1
	MethodCard   PaymentMethod = 2
	MethodOnline PaymentMethod = 3
)

var AllPaymentMethods = []PaymentMethod{MethodCash, MethodCard, MethodOnline}

func ParseMethod(raw string) (PaymentMethod, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "cash":
		return MethodCash, nil
	case "card":
		return MethodCard, nil
	case "online":
		return MethodOnline, nil
	}
	return 0, httperr.ErrBusiness("invalid_payment_method")
}

func (m PaymentMethod) ID() uint { return uint(m) }

func (m PaymentMethod) Name() string {
	switch m {
	case MethodCash:
		return "cash"
	case MethodCard:
		return "card"
	case MethodOnline:
		return "online"
	}
	return "unknown"
}

// ResultingStatus is the payment status written together with the method.
// Cash is collected in person, so the order stays unpaid.
func (m PaymentMethod) ResultingStatus() PaymentStatus {
	if m == MethodCard || m == MethodOnline {
		return PaymentPaid
	}
	return PaymentUnpaid
}
