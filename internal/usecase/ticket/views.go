package ticket

import (
	"github.com/BruksfildServices01/cleaning-booking/internal/dto"
	"github.com/BruksfildServices01/cleaning-booking/internal/models"
)

func toTicketDTO(t *models.SupportTicket, unread int64, withUser bool) dto.TicketDTO {
	view := dto.TicketDTO{
		ID:      t.ID,
		Subject: t.Subject,
		Status: dto.LookupDTO{
			ID:          t.Status.ID,
			Name:        t.Status.Name,
			Description: t.Status.Description,
		},
		UnreadCount: unread,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
	if withUser && t.User != nil {
		view.User = toUserSummary(t.User)
	}
	return view
}

func toMessageDTO(m *models.SupportMessage) dto.MessageDTO {
	view := dto.MessageDTO{
		ID:        m.ID,
		TicketID:  m.TicketID,
		Message:   m.Message,
		IsRead:    m.IsRead,
		CreatedAt: m.CreatedAt,
	}
	if m.Sender != nil {
		view.Sender = toUserSummary(m.Sender)
	}
	return view
}

func toUserSummary(u *models.User) *dto.UserSummaryDTO {
	return &dto.UserSummaryDTO{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
	}
}
