package notification

import (
	"context"
	"fmt"

	"github.com/BruksfildServices01/cleaning-booking/internal/domain/user"
)

// Notification type ids, matching the notification_types rows.
const (
	TypeOrder   uint = 1
	TypeSupport uint = 2
	TypeSystem  uint = 3
)

// Target is what a notification points at. Only the three variants below
// implement it, so a support notice can never carry an order id.
type Target interface {
	Kind() string
	row() (uint, *uint)
}

type OrderRef struct {
	OrderID uint
}

type TicketRef struct {
	TicketID uint
}

type SystemRef struct{}

func (OrderRef) Kind() string  { return "order" }
func (TicketRef) Kind() string { return "support" }
func (SystemRef) Kind() string { return "system" }

func (r OrderRef) row() (uint, *uint) {
	id := r.OrderID
	return TypeOrder, &id
}

func (r TicketRef) row() (uint, *uint) {
	id := r.TicketID
	return TypeSupport, &id
}

func (SystemRef) row() (uint, *uint) {
	return TypeSystem, nil
}

// Row converts a target into the stored (typeId, relatedId) pair.
func Row(t Target) (typeID uint, relatedID *uint) {
	return t.row()
}

// RelatedID returns the referenced entity id, if the target has one.
func RelatedID(t Target) (uint, bool) {
	_, id := t.row()
	if id == nil {
		return 0, false
	}
	return *id, true
}

// TargetFromRow resolves a stored pair. Order and support rows must carry a
// related id; a system row ignores it.
func TargetFromRow(typeID uint, relatedID *uint) (Target, error) {
	switch typeID {
	case TypeOrder:
		if relatedID == nil {
			return nil, fmt.Errorf("order notification without related id")
		}
		return OrderRef{OrderID: *relatedID}, nil
	case TypeSupport:
		if relatedID == nil {
			return nil, fmt.Errorf("support notification without related id")
		}
		return TicketRef{TicketID: *relatedID}, nil
	case TypeSystem:
		return SystemRef{}, nil
	}
	return nil, fmt.Errorf("unknown notification type %d", typeID)
}

// Notice is a notification waiting to be written. When Key is set, title and
// message are rendered from the "<Key>.title" and "<Key>.message" catalog
// entries with Params; otherwise Title and Message are stored as given.
type Notice struct {
	UserID  uint
	Title   string
	Message string
	Key     string
	Params  map[string]any
	Target  Target
}

// Notifier records notices without blocking the caller. Losing a notice is
// acceptable; implementations never report failures back.
type Notifier interface {
	Notify(n Notice)
	NotifyRole(ctx context.Context, role user.Role, n Notice)
}
