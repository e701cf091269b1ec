package order

import (
	"fmt"

	"github.com/BruksfildServices01/cleaning-booking/internal/httperr"
)

// ===============================
// Order Status
// ===============================

// Status is the closed set of order states. Ids match the order_statuses rows.
type Status uint

const (
	StatusPending    Status = 1
	StatusAssigned   Status = 2
	StatusInProgress Status = 3
	StatusCompleted  Status = 4
	StatusCancelled  Status = 5
)

var AllStatuses = []Status{
	StatusPending,
	StatusAssigned,
	StatusInProgress,
	StatusCompleted,
	StatusCancelled,
}

func (s Status) ID() uint { return uint(s) }

func (s Status) Name() string {
	switch s {
	case StatusPending:
		return "pending"
	case StatusAssigned:
		return "assigned"
	case StatusInProgress:
		return "in_progress"
	case StatusCompleted:
		return "completed"
	case StatusCancelled:
		return "cancelled"
	}
	return "unknown"
}

func StatusFromID(id uint) (Status, error) {
	switch s := Status(id); s {
	case StatusPending, StatusAssigned, StatusInProgress, StatusCompleted, StatusCancelled:
		return s, nil
	}
	return 0, fmt.Errorf("unknown order status id %d", id)
}

// ===============================
// Validations
// ===============================

func InitialStatus() Status {
	return StatusPending
}

// CanCancel allows cancellation only while the order is still pending.
func CanCancel(current Status) error {
	if current != StatusPending {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}
