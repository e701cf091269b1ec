package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/cleaning-booking/internal/domain/notification"
	"github.com/BruksfildServices01/cleaning-booking/internal/models"
)

type NotificationGormRepository struct {
	db *gorm.DB
}

func NewNotificationGormRepository(db *gorm.DB) *NotificationGormRepository {
	return &NotificationGormRepository{db: db}
}

var _ domain.Repository = (*NotificationGormRepository)(nil)

func (r *NotificationGormRepository) Create(
	ctx context.Context,
	n *models.Notification,
) error {
	return conn(ctx, r.db).Omit(clause.Associations).Create(n).Error
}

func (r *NotificationGormRepository) ListLatest(
	ctx context.Context,
	userID uint,
	limit int,
) ([]models.Notification, error) {

	var list []models.Notification
	err := conn(ctx, r.db).
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&list).Error
	return list, err
}

func (r *NotificationGormRepository) CountUnread(
	ctx context.Context,
	userID uint,
) (int64, error) {

	var count int64
	err := conn(ctx, r.db).
		Model(&models.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Count(&count).Error
	return count, err
}

func (r *NotificationGormRepository) MarkRead(
	ctx context.Context,
	id uint,
	userID uint,
) (bool, error) {

	res := conn(ctx, r.db).
		Model(&models.Notification{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("is_read", true)
	return res.RowsAffected > 0, res.Error
}

func (r *NotificationGormRepository) MarkAllRead(
	ctx context.Context,
	userID uint,
) (int64, error) {

	res := conn(ctx, r.db).
		Model(&models.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Update("is_read", true)
	return res.RowsAffected, res.Error
}
