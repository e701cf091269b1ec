package ticket

import (
	"context"

	"github.com/BruksfildServices01/cleaning-booking/internal/auth"
	domain "github.com/BruksfildServices01/cleaning-booking/internal/domain/ticket"
	"github.com/BruksfildServices01/cleaning-booking/internal/dto"
	"github.com/BruksfildServices01/cleaning-booking/internal/models"
)

type ListTickets struct {
	repo domain.Repository
}

func NewListTickets(repo domain.Repository) *ListTickets {
	return &ListTickets{repo: repo}
}

// Execute lists tickets most recently updated first. Customers get their
// own tickets; admins get all of them with the owner attached.
func (uc *ListTickets) Execute(
	ctx context.Context,
	s Surface,
	p *auth.Principal,
) ([]dto.TicketDTO, error) {

	if err := s.authorize(p); err != nil {
		return nil, err
	}

	var (
		tickets []models.SupportTicket
		err     error
	)
	if s == Admin {
		tickets, err = uc.repo.ListAllTickets(ctx)
	} else {
		tickets, err = uc.repo.ListTicketsForUser(ctx, p.UserID)
	}
	if err != nil {
		return nil, err
	}

	ids := make([]uint, 0, len(tickets))
	for _, t := range tickets {
		ids = append(ids, t.ID)
	}
	unread, err := uc.repo.CountUnreadFor(ctx, ids, p.ID())
	if err != nil {
		return nil, err
	}

	out := make([]dto.TicketDTO, 0, len(tickets))
	for i := range tickets {
		out = append(out, toTicketDTO(&tickets[i], unread[tickets[i].ID], s == Admin))
	}
	return out, nil
}
