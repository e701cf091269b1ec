package ticket

import (
	"context"
	"errors"

	"github.com/BruksfildServices01/cleaning-booking/internal/auth"
	domain "github.com/BruksfildServices01/cleaning-booking/internal/domain/ticket"
	"github.com/BruksfildServices01/cleaning-booking/internal/dto"
	"github.com/BruksfildServices01/cleaning-booking/internal/httperr"
)

type UpdateStatus struct {
	repo domain.Repository
}

func NewUpdateStatus(repo domain.Repository) *UpdateStatus {
	return &UpdateStatus{repo: repo}
}

// Execute sets the ticket status by name. Any status may follow any other,
// so a closed ticket can be reopened.
func (uc *UpdateStatus) Execute(
	ctx context.Context,
	s Surface,
	p *auth.Principal,
	ticketID uint,
	name string,
) (*dto.TicketDTO, error) {

	if name == "" {
		return nil, httperr.ErrMissingField("status")
	}
	target, err := domain.ParseStatus(name)
	if err != nil {
		return nil, err
	}

	t, err := s.load(ctx, uc.repo, p, ticketID)
	if err != nil {
		return nil, err
	}

	status, err := uc.repo.FindStatusByName(ctx, target)
	if errors.Is(err, domain.ErrStatusNotFound) {
		return nil, httperr.ErrBusiness("invalid_status")
	}
	if err != nil {
		return nil, err
	}

	ok, err := uc.repo.SetStatus(ctx, t.ID, status.ID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, httperr.ErrBusiness("ticket_not_found")
	}

	updated, err := s.load(ctx, uc.repo, p, t.ID)
	if err != nil {
		return nil, err
	}
	view := toTicketDTO(updated, 0, s == Admin)
	return &view, nil
}
