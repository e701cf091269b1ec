package notification

import (
	"context"
	"log/slog"

	"github.com/BruksfildServices01/cleaning-booking/internal/auth"
	domain "github.com/BruksfildServices01/cleaning-booking/internal/domain/notification"
	"github.com/BruksfildServices01/cleaning-booking/internal/dto"
	"github.com/BruksfildServices01/cleaning-booking/internal/httperr"
	"github.com/BruksfildServices01/cleaning-booking/internal/models"
)

// InboxSize is how many notifications the inbox returns.
const InboxSize = 20

// Inbox is the polled notification list of the caller.
type Inbox struct {
	repo domain.Repository
}

func NewInbox(repo domain.Repository) *Inbox {
	return &Inbox{repo: repo}
}

func (uc *Inbox) List(
	ctx context.Context,
	p *auth.Principal,
) ([]dto.NotificationDTO, error) {

	if p == nil {
		return nil, httperr.ErrBusiness("unauthenticated")
	}

	rows, err := uc.repo.ListLatest(ctx, p.UserID, InboxSize)
	if err != nil {
		return nil, err
	}

	out := make([]dto.NotificationDTO, 0, len(rows))
	for i := range rows {
		out = append(out, toNotificationDTO(ctx, &rows[i]))
	}
	return out, nil
}

func (uc *Inbox) UnreadCount(
	ctx context.Context,
	p *auth.Principal,
) (int64, error) {

	if p == nil {
		return 0, httperr.ErrBusiness("unauthenticated")
	}
	return uc.repo.CountUnread(ctx, p.UserID)
}

// MarkRead flags one notification of the caller. Someone else's
// notification is reported as missing.
func (uc *Inbox) MarkRead(
	ctx context.Context,
	p *auth.Principal,
	id uint,
) error {

	if p == nil {
		return httperr.ErrBusiness("unauthenticated")
	}

	ok, err := uc.repo.MarkRead(ctx, id, p.UserID)
	if err != nil {
		return err
	}
	if !ok {
		return httperr.ErrBusiness("notification_not_found")
	}
	return nil
}

func (uc *Inbox) MarkAllRead(
	ctx context.Context,
	p *auth.Principal,
) (int64, error) {

	if p == nil {
		return 0, httperr.ErrBusiness("unauthenticated")
	}
	return uc.repo.MarkAllRead(ctx, p.UserID)
}

func toNotificationDTO(ctx context.Context, n *models.Notification) dto.NotificationDTO {
	target, err := domain.TargetFromRow(n.TypeID, n.RelatedID)
	if err != nil {
		slog.WarnContext(ctx, "notification with unresolvable target",
			"notification_id", n.ID,
			"type_id", n.TypeID,
			"error", err,
		)
		target = domain.SystemRef{}
	}

	view := dto.NotificationDTO{
		ID:        n.ID,
		Title:     n.Title,
		Message:   n.Message,
		IsRead:    n.IsRead,
		TypeID:    n.TypeID,
		RelatedID: n.RelatedID,
		Target:    dto.TargetDTO{Kind: target.Kind()},
		CreatedAt: n.CreatedAt,
	}
	if id, ok := domain.RelatedID(target); ok {
		view.Target.ID = &id
	}
	return view
}
