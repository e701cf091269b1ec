package ticket

import (
	"context"
	"errors"

	"github.com/BruksfildServices01/cleaning-booking/internal/models"
)

var (
	ErrTicketNotFound = errors.New("ticket not found")
	ErrStatusNotFound = errors.New("ticket status not found")
)

type Repository interface {
	// -------- Reference data --------
	FindStatusByName(
		ctx context.Context,
		name Status,
	) (*models.TicketStatus, error)

	// -------- Tickets --------
	CreateTicket(
		ctx context.Context,
		t *models.SupportTicket,
	) error

	GetTicket(
		ctx context.Context,
		id uint,
	) (*models.SupportTicket, error)

	GetTicketForUser(
		ctx context.Context,
		id uint,
		userID uint,
	) (*models.SupportTicket, error)

	ListTicketsForUser(
		ctx context.Context,
		userID uint,
	) ([]models.SupportTicket, error)

	ListAllTickets(
		ctx context.Context,
	) ([]models.SupportTicket, error)

	// -------- Status (state change) --------
	SetStatus(
		ctx context.Context,
		ticketID uint,
		statusID uint,
	) (bool, error)

	TransitionStatus(
		ctx context.Context,
		ticketID uint,
		fromStatusID uint,
		toStatusID uint,
	) (bool, error)

	// -------- Messages --------
	CreateMessage(
		ctx context.Context,
		m *models.SupportMessage,
	) error

	ListMessages(
		ctx context.Context,
		ticketID uint,
	) ([]models.SupportMessage, error)

	MarkAllRead(
		ctx context.Context,
		ticketID uint,
	) (int64, error)

	MarkReadNotSentBy(
		ctx context.Context,
		ticketID uint,
		readerID uint,
	) (int64, error)

	CountUnreadFor(
		ctx context.Context,
		ticketIDs []uint,
		viewerID *uint,
	) (map[uint]int64, error)
}

// UnitOfWork runs fn in one transaction; repositories called with the
// context fn receives take part in it.
type UnitOfWork interface {
	WithTransaction(
		ctx context.Context,
		fn func(ctx context.Context) error,
	) error
}
