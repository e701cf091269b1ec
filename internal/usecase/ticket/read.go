package ticket

import (
	"context"

	"github.com/BruksfildServices01/cleaning-booking/internal/auth"
	domain "github.com/BruksfildServices01/cleaning-booking/internal/domain/ticket"
)

type MarkRead struct {
	repo domain.Repository
}

func NewMarkRead(repo domain.Repository) *MarkRead {
	return &MarkRead{repo: repo}
}

// Execute flags messages as read and returns how many changed. Admins
// clear every unread message; customers only those they did not write.
func (uc *MarkRead) Execute(
	ctx context.Context,
	s Surface,
	p *auth.Principal,
	ticketID uint,
) (int64, error) {

	t, err := s.load(ctx, uc.repo, p, ticketID)
	if err != nil {
		return 0, err
	}

	if s == Admin {
		return uc.repo.MarkAllRead(ctx, t.ID)
	}
	return uc.repo.MarkReadNotSentBy(ctx, t.ID, p.UserID)
}
