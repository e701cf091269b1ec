package ticket

import (
	"context"
	"strings"

	"github.com/BruksfildServices01/cleaning-booking/internal/auth"
	"github.com/BruksfildServices01/cleaning-booking/internal/domain/notification"
	domain "github.com/BruksfildServices01/cleaning-booking/internal/domain/ticket"
	"github.com/BruksfildServices01/cleaning-booking/internal/dto"
	"github.com/BruksfildServices01/cleaning-booking/internal/httperr"
	"github.com/BruksfildServices01/cleaning-booking/internal/models"
)

type PostMessage struct {
	repo   domain.Repository
	uow    domain.UnitOfWork
	notify notification.Notifier
}

func NewPostMessage(
	repo domain.Repository,
	uow domain.UnitOfWork,
	notify notification.Notifier,
) *PostMessage {
	return &PostMessage{
		repo:   repo,
		uow:    uow,
		notify: notify,
	}
}

// Execute appends a message from p. Closed tickets still accept messages.
// An admin reply on an open ticket moves it to in_progress in the same
// transaction and notifies the owner.
func (uc *PostMessage) Execute(
	ctx context.Context,
	s Surface,
	p *auth.Principal,
	ticketID uint,
	text string,
) (*dto.MessageDTO, error) {

	text = strings.TrimSpace(text)
	if text == "" {
		return nil, httperr.ErrMissingField("message")
	}

	var (
		t *models.SupportTicket
		m *models.SupportMessage
	)
	err := uc.uow.WithTransaction(ctx, func(ctx context.Context) error {
		var err error
		if t, err = s.load(ctx, uc.repo, p, ticketID); err != nil {
			return err
		}

		m = &models.SupportMessage{
			TicketID: t.ID,
			SenderID: p.ID(),
			Message:  text,
		}
		if err := uc.repo.CreateMessage(ctx, m); err != nil {
			return err
		}

		if s != Admin || t.Status.Name != domain.StatusOpen.String() {
			return nil
		}
		next, err := uc.repo.FindStatusByName(ctx, domain.StatusInProgress)
		if err != nil {
			return ticketErr(err)
		}
		_, err = uc.repo.TransitionStatus(ctx, t.ID, t.StatusID, next.ID)
		return err
	})
	if err != nil {
		return nil, err
	}

	if s == Admin && t.UserID != nil && *t.UserID != p.UserID {
		uc.notify.Notify(notification.Notice{
			UserID: *t.UserID,
			Key:    "notify.ticket_reply",
			Params: map[string]any{
				"ID":      t.ID,
				"Subject": t.Subject,
			},
			Target: notification.TicketRef{TicketID: t.ID},
		})
	}

	m.Sender = &models.User{ID: p.UserID, Name: p.Name, Email: p.Email}
	view := toMessageDTO(m)
	return &view, nil
}

type GuestMessageInput struct {
	TicketID uint
	Message  string
}

// PostGuestMessage serves the contact form. The sender is the signed-in
// caller, or nobody for a guest.
type PostGuestMessage struct {
	repo domain.Repository
}

func NewPostGuestMessage(repo domain.Repository) *PostGuestMessage {
	return &PostGuestMessage{repo: repo}
}

func (uc *PostGuestMessage) Execute(
	ctx context.Context,
	p *auth.Principal,
	in GuestMessageInput,
) (*dto.MessageDTO, error) {

	if in.TicketID == 0 {
		return nil, httperr.ErrMissingField("ticketId")
	}
	text := strings.TrimSpace(in.Message)
	if text == "" {
		return nil, httperr.ErrMissingField("message")
	}

	t, err := uc.repo.GetTicket(ctx, in.TicketID)
	if err != nil {
		return nil, ticketErr(err)
	}
	if !visibleTo(t.UserID, p) {
		return nil, httperr.ErrBusiness("ticket_not_found")
	}

	m := &models.SupportMessage{
		TicketID: t.ID,
		SenderID: p.ID(),
		Message:  text,
	}
	if err := uc.repo.CreateMessage(ctx, m); err != nil {
		return nil, err
	}

	if p != nil {
		m.Sender = &models.User{ID: p.UserID, Name: p.Name, Email: p.Email}
	}
	view := toMessageDTO(m)
	return &view, nil
}
