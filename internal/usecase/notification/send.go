package notification

import (
	"context"
	"errors"
	"strings"

	domain "github.com/BruksfildServices01/cleaning-booking/internal/domain/notification"
	"github.com/BruksfildServices01/cleaning-booking/internal/domain/user"
	"github.com/BruksfildServices01/cleaning-booking/internal/dto"
	"github.com/BruksfildServices01/cleaning-booking/internal/httperr"
	"github.com/BruksfildServices01/cleaning-booking/internal/models"
)

// Writer stores a notice right away.
type Writer interface {
	Write(ctx context.Context, n domain.Notice) (*models.Notification, error)
}

type SendInput struct {
	UserID    uint
	Title     string
	Message   string
	TypeID    *uint
	RelatedID *uint
}

// Send lets an admin write a notification for any user. Unlike the
// side-channel it is synchronous and reports failures.
type Send struct {
	writer Writer
	users  user.Directory
}

func NewSend(writer Writer, users user.Directory) *Send {
	return &Send{writer: writer, users: users}
}

func (uc *Send) Execute(
	ctx context.Context,
	in SendInput,
) (*dto.NotificationDTO, error) {

	title := strings.TrimSpace(in.Title)
	message := strings.TrimSpace(in.Message)
	switch {
	case in.UserID == 0:
		return nil, httperr.ErrMissingField("userId")
	case title == "":
		return nil, httperr.ErrMissingField("title")
	case message == "":
		return nil, httperr.ErrMissingField("message")
	}

	typeID := domain.TypeSystem
	if in.TypeID != nil {
		typeID = *in.TypeID
	}
	target, err := domain.TargetFromRow(typeID, in.RelatedID)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_notification_target")
	}

	if _, err := uc.users.GetUser(ctx, in.UserID); errors.Is(err, user.ErrUserNotFound) {
		return nil, httperr.ErrBusiness("user_not_found")
	} else if err != nil {
		return nil, err
	}

	row, err := uc.writer.Write(ctx, domain.Notice{
		UserID:  in.UserID,
		Title:   title,
		Message: message,
		Target:  target,
	})
	if err != nil {
		return nil, err
	}

	view := toNotificationDTO(ctx, row)
	return &view, nil
}
