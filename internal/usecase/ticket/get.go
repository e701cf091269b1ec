package ticket

import (
	"context"

	"github.com/BruksfildServices01/cleaning-booking/internal/auth"
	domain "github.com/BruksfildServices01/cleaning-booking/internal/domain/ticket"
	"github.com/BruksfildServices01/cleaning-booking/internal/dto"
	"github.com/BruksfildServices01/cleaning-booking/internal/httperr"
)

type GetTicket struct {
	repo domain.Repository
}

func NewGetTicket(repo domain.Repository) *GetTicket {
	return &GetTicket{repo: repo}
}

// Execute returns the ticket with its thread, newest message first.
func (uc *GetTicket) Execute(
	ctx context.Context,
	s Surface,
	p *auth.Principal,
	ticketID uint,
) (*dto.TicketDTO, error) {

	t, err := s.load(ctx, uc.repo, p, ticketID)
	if err != nil {
		return nil, err
	}

	messages, err := uc.repo.ListMessages(ctx, t.ID)
	if err != nil {
		return nil, err
	}
	unread, err := uc.repo.CountUnreadFor(ctx, []uint{t.ID}, p.ID())
	if err != nil {
		return nil, err
	}

	view := toTicketDTO(t, unread[t.ID], s == Admin)
	view.Messages = make([]dto.MessageDTO, 0, len(messages))
	for i := range messages {
		view.Messages = append(view.Messages, toMessageDTO(&messages[i]))
	}
	return &view, nil
}

type CountUnread struct {
	repo domain.Repository
}

func NewCountUnread(repo domain.Repository) *CountUnread {
	return &CountUnread{repo: repo}
}

// Execute counts unread messages on a ticket that the caller did not write.
// Guests may only ask about guest tickets; signed-in customers about their
// own; admins about any.
func (uc *CountUnread) Execute(
	ctx context.Context,
	p *auth.Principal,
	ticketID uint,
) (int64, error) {

	t, err := uc.repo.GetTicket(ctx, ticketID)
	if err != nil {
		return 0, ticketErr(err)
	}
	if !visibleTo(t.UserID, p) {
		return 0, httperr.ErrBusiness("ticket_not_found")
	}

	unread, err := uc.repo.CountUnreadFor(ctx, []uint{t.ID}, p.ID())
	if err != nil {
		return 0, err
	}
	return unread[t.ID], nil
}

// visibleTo reports whether a caller outside the admin surface may touch a
// ticket found by id alone.
func visibleTo(owner *uint, p *auth.Principal) bool {
	switch {
	case p.IsAdmin():
		return true
	case owner == nil:
		return true
	case p == nil:
		return false
	}
	return *owner == p.UserID
}
