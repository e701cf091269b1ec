package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/cleaning-booking/internal/domain/ticket"
	"github.com/BruksfildServices01/cleaning-booking/internal/models"
)

type TicketGormRepository struct {
	db  *gorm.DB
	now func() time.Time
}

func NewTicketGormRepository(db *gorm.DB) *TicketGormRepository {
	return &TicketGormRepository{db: db, now: time.Now}
}

var _ domain.Repository = (*TicketGormRepository)(nil)

// --------------------------------------------------
// Reference data
// --------------------------------------------------

func (r *TicketGormRepository) FindStatusByName(
	ctx context.Context,
	name domain.Status,
) (*models.TicketStatus, error) {

	var status models.TicketStatus
	if err := conn(ctx, r.db).
		Where("name = ?", name.String()).
		First(&status).Error; err != nil {
		return nil, notFound(err, domain.ErrStatusNotFound)
	}
	return &status, nil
}

// --------------------------------------------------
// Tickets
// --------------------------------------------------

func (r *TicketGormRepository) CreateTicket(
	ctx context.Context,
	t *models.SupportTicket,
) error {
	return conn(ctx, r.db).Omit(clause.Associations).Create(t).Error
}

func (r *TicketGormRepository) GetTicket(
	ctx context.Context,
	id uint,
) (*models.SupportTicket, error) {

	var t models.SupportTicket
	if err := conn(ctx, r.db).
		Preload("Status").
		Preload("User").
		First(&t, id).Error; err != nil {
		return nil, notFound(err, domain.ErrTicketNotFound)
	}
	return &t, nil
}

func (r *TicketGormRepository) GetTicketForUser(
	ctx context.Context,
	id uint,
	userID uint,
) (*models.SupportTicket, error) {

	var t models.SupportTicket
	if err := conn(ctx, r.db).
		Preload("Status").
		Where("id = ? AND user_id = ?", id, userID).
		First(&t).Error; err != nil {
		return nil, notFound(err, domain.ErrTicketNotFound)
	}
	return &t, nil
}

func (r *TicketGormRepository) ListTicketsForUser(
	ctx context.Context,
	userID uint,
) ([]models.SupportTicket, error) {

	var tickets []models.SupportTicket
	err := conn(ctx, r.db).
		Preload("Status").
		Where("user_id = ?", userID).
		Order("updated_at DESC, id DESC").
		Find(&tickets).Error
	return tickets, err
}

func (r *TicketGormRepository) ListAllTickets(
	ctx context.Context,
) ([]models.SupportTicket, error) {

	var tickets []models.SupportTicket
	err := conn(ctx, r.db).
		Preload("Status").
		Preload("User").
		Order("updated_at DESC, id DESC").
		Find(&tickets).Error
	return tickets, err
}

// --------------------------------------------------
// Status (state change)
// --------------------------------------------------

func (r *TicketGormRepository) SetStatus(
	ctx context.Context,
	ticketID uint,
	statusID uint,
) (bool, error) {

	res := conn(ctx, r.db).
		Model(&models.SupportTicket{}).
		Where("id = ?", ticketID).
		Updates(map[string]any{
			"status_id":  statusID,
			"updated_at": r.now(),
		})
	return res.RowsAffected > 0, res.Error
}

// TransitionStatus moves the ticket only if it is still in fromStatusID.
func (r *TicketGormRepository) TransitionStatus(
	ctx context.Context,
	ticketID uint,
	fromStatusID uint,
	toStatusID uint,
) (bool, error) {

	res := conn(ctx, r.db).
		Model(&models.SupportTicket{}).
		Where("id = ? AND status_id = ?", ticketID, fromStatusID).
		Updates(map[string]any{
			"status_id":  toStatusID,
			"updated_at": r.now(),
		})
	return res.RowsAffected > 0, res.Error
}

// --------------------------------------------------
// Messages
// --------------------------------------------------

func (r *TicketGormRepository) CreateMessage(
	ctx context.Context,
	m *models.SupportMessage,
) error {
	return conn(ctx, r.db).Omit(clause.Associations).Create(m).Error
}

func (r *TicketGormRepository) ListMessages(
	ctx context.Context,
	ticketID uint,
) ([]models.SupportMessage, error) {

	var messages []models.SupportMessage
	err := conn(ctx, r.db).
		Preload("Sender").
		Where("ticket_id = ?", ticketID).
		Order("created_at DESC, id DESC").
		Find(&messages).Error
	return messages, err
}

func (r *TicketGormRepository) MarkAllRead(
	ctx context.Context,
	ticketID uint,
) (int64, error) {

	res := conn(ctx, r.db).
		Model(&models.SupportMessage{}).
		Where("ticket_id = ? AND is_read = ?", ticketID, false).
		Update("is_read", true)
	return res.RowsAffected, res.Error
}

// MarkReadNotSentBy leaves the reader's own messages untouched. Guest
// messages (no sender) count as written by someone else.
func (r *TicketGormRepository) MarkReadNotSentBy(
	ctx context.Context,
	ticketID uint,
	readerID uint,
) (int64, error) {

	res := conn(ctx, r.db).
		Model(&models.SupportMessage{}).
		Where("ticket_id = ? AND is_read = ?", ticketID, false).
		Where("(sender_id IS NULL OR sender_id <> ?)", readerID).
		Update("is_read", true)
	return res.RowsAffected, res.Error
}

// CountUnreadFor counts, per ticket, unread messages the viewer did not
// write. A nil viewer is a guest, whose own messages carry no sender.
func (r *TicketGormRepository) CountUnreadFor(
	ctx context.Context,
	ticketIDs []uint,
	viewerID *uint,
) (map[uint]int64, error) {

	counts := make(map[uint]int64, len(ticketIDs))
	if len(ticketIDs) == 0 {
		return counts, nil
	}

	q := conn(ctx, r.db).
		Model(&models.SupportMessage{}).
		Select("ticket_id, COUNT(*) AS unread").
		Where("ticket_id IN ? AND is_read = ?", ticketIDs, false)
	if viewerID == nil {
		q = q.Where("sender_id IS NOT NULL")
	} else {
		q = q.Where("(sender_id IS NULL OR sender_id <> ?)", *viewerID)
	}

	var rows []struct {
		TicketID uint
		Unread   int64
	}
	if err := q.Group("ticket_id").Scan(&rows).Error; err != nil {
		return nil, err
	}

	for _, row := range rows {
		counts[row.TicketID] = row.Unread
	}
	return counts, nil
}
