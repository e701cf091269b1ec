package notify

import (
	"context"

	"github.com/BruksfildServices01/cleaning-booking/internal/domain/notification"
	"github.com/BruksfildServices01/cleaning-booking/internal/i18n"
	"github.com/BruksfildServices01/cleaning-booking/internal/models"
)

// Writer turns a notice into a stored notification row.
type Writer struct {
	repo notification.Repository
	text *i18n.Service
}

func NewWriter(repo notification.Repository, text *i18n.Service) *Writer {
	return &Writer{repo: repo, text: text}
}

func (w *Writer) Write(ctx context.Context, n notification.Notice) (*models.Notification, error) {
	target := n.Target
	if target == nil {
		target = notification.SystemRef{}
	}
	typeID, relatedID := notification.Row(target)

	title, message := n.Title, n.Message
	if n.Key != "" && w.text != nil {
		lang := w.text.DefaultLanguage()
		title = w.text.T(lang, n.Key+".title", n.Params)
		message = w.text.T(lang, n.Key+".message", n.Params)
	}

	row := &models.Notification{
		UserID:    n.UserID,
		Title:     title,
		Message:   message,
		TypeID:    typeID,
		RelatedID: relatedID,
	}
	if err := w.repo.Create(ctx, row); err != nil {
		return nil, err
	}
	return row, nil
}
