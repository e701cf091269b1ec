package ticket

import (
	"context"
	"errors"

	"github.com/BruksfildServices01/cleaning-booking/internal/auth"
	domain "github.com/BruksfildServices01/cleaning-booking/internal/domain/ticket"
	"github.com/BruksfildServices01/cleaning-booking/internal/httperr"
	"github.com/BruksfildServices01/cleaning-booking/internal/models"
)

// Surface selects the side of the support desk a call comes from. Both
// sides work on the same tables; only scoping differs.
type Surface int

const (
	// Customer sees only tickets owned by the caller.
	Customer Surface = iota
	// Admin sees every ticket.
	Admin
)

func (s Surface) String() string {
	if s == Admin {
		return "admin"
	}
	return "customer"
}

// authorize checks the caller against the surface.
func (s Surface) authorize(p *auth.Principal) error {
	if p == nil {
		return httperr.ErrBusiness("unauthenticated")
	}
	if s == Admin && !p.IsAdmin() {
		return httperr.ErrBusiness("forbidden")
	}
	return nil
}

// load fetches a ticket visible to p on this surface. Tickets owned by
// someone else are reported as missing.
func (s Surface) load(
	ctx context.Context,
	repo domain.Repository,
	p *auth.Principal,
	ticketID uint,
) (*models.SupportTicket, error) {

	if err := s.authorize(p); err != nil {
		return nil, err
	}

	var (
		t   *models.SupportTicket
		err error
	)
	if s == Admin {
		t, err = repo.GetTicket(ctx, ticketID)
	} else {
		t, err = repo.GetTicketForUser(ctx, ticketID, p.UserID)
	}
	if err != nil {
		return nil, ticketErr(err)
	}
	return t, nil
}

func ticketErr(err error) error {
	switch {
	case errors.Is(err, domain.ErrTicketNotFound):
		return httperr.ErrBusiness("ticket_not_found")
	case errors.Is(err, domain.ErrStatusNotFound):
		return httperr.ErrBusiness("status_not_configured")
	}
	return err
}
