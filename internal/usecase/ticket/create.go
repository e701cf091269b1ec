package ticket

import (
	"context"
	"strings"

	"github.com/BruksfildServices01/cleaning-booking/internal/auth"
	"github.com/BruksfildServices01/cleaning-booking/internal/domain/notification"
	domain "github.com/BruksfildServices01/cleaning-booking/internal/domain/ticket"
	"github.com/BruksfildServices01/cleaning-booking/internal/domain/user"
	"github.com/BruksfildServices01/cleaning-booking/internal/dto"
	"github.com/BruksfildServices01/cleaning-booking/internal/httperr"
	"github.com/BruksfildServices01/cleaning-booking/internal/models"
)

type CreateTicketInput struct {
	Subject string
	Message string
}

type CreateTicket struct {
	repo   domain.Repository
	uow    domain.UnitOfWork
	notify notification.Notifier
}

func NewCreateTicket(
	repo domain.Repository,
	uow domain.UnitOfWork,
	notify notification.Notifier,
) *CreateTicket {
	return &CreateTicket{
		repo:   repo,
		uow:    uow,
		notify: notify,
	}
}

// Execute opens a ticket for p, or for a guest when p is nil. The ticket and
// its first message are written in one transaction.
func (uc *CreateTicket) Execute(
	ctx context.Context,
	p *auth.Principal,
	in CreateTicketInput,
) (*dto.TicketDTO, error) {

	subject := strings.TrimSpace(in.Subject)
	if subject == "" {
		return nil, httperr.ErrMissingField("subject")
	}
	text := strings.TrimSpace(in.Message)

	t := &models.SupportTicket{
		UserID:  p.ID(),
		Subject: subject,
	}

	err := uc.uow.WithTransaction(ctx, func(ctx context.Context) error {
		status, err := uc.repo.FindStatusByName(ctx, domain.InitialStatus())
		if err != nil {
			return ticketErr(err)
		}
		t.StatusID = status.ID
		t.Status = *status

		if err := uc.repo.CreateTicket(ctx, t); err != nil {
			return err
		}

		if text == "" {
			return nil
		}
		return uc.repo.CreateMessage(ctx, &models.SupportMessage{
			TicketID: t.ID,
			SenderID: p.ID(),
			Message:  text,
		})
	})
	if err != nil {
		return nil, err
	}

	uc.notify.NotifyRole(ctx, user.RoleAdmin, notification.Notice{
		Key: "notify.ticket_created",
		Params: map[string]any{
			"ID":      t.ID,
			"Subject": t.Subject,
		},
		Target: notification.TicketRef{TicketID: t.ID},
	})

	view := toTicketDTO(t, 0, false)
	return &view, nil
}
