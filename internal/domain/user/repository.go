package user

import (
	"context"
	"errors"

	"github.com/BruksfildServices01/cleaning-booking/internal/models"
)

var ErrUserNotFound = errors.New("user not found")

// Directory answers "who" questions for use cases that fan out to users.
type Directory interface {
	GetUser(
		ctx context.Context,
		id uint,
	) (*models.User, error)

	ListUserIDsByRole(
		ctx context.Context,
		role Role,
	) ([]uint, error)
}
