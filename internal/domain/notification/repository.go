package notification

import (
	"context"

	"github.com/BruksfildServices01/cleaning-booking/internal/models"
)

type Repository interface {
	Create(
		ctx context.Context,
		n *models.Notification,
	) error

	ListLatest(
		ctx context.Context,
		userID uint,
		limit int,
	) ([]models.Notification, error)

	CountUnread(
		ctx context.Context,
		userID uint,
	) (int64, error)

	MarkRead(
		ctx context.Context,
		id uint,
		userID uint,
	) (bool, error)

	MarkAllRead(
		ctx context.Context,
		userID uint,
	) (int64, error)
}
