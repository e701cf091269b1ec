package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/cleaning-booking/internal/domain/user"
	"github.com/BruksfildServices01/cleaning-booking/internal/models"
)

type UserGormRepository struct {
	db *gorm.DB
}

func NewUserGormRepository(db *gorm.DB) *UserGormRepository {
	return &UserGormRepository{db: db}
}

var _ user.Directory = (*UserGormRepository)(nil)

func (r *UserGormRepository) GetUser(
	ctx context.Context,
	id uint,
) (*models.User, error) {

	var u models.User
	if err := conn(ctx, r.db).First(&u, id).Error; err != nil {
		return nil, notFound(err, user.ErrUserNotFound)
	}
	return &u, nil
}

func (r *UserGormRepository) ListUserIDsByRole(
	ctx context.Context,
	role user.Role,
) ([]uint, error) {

	var ids []uint
	if err := conn(ctx, r.db).
		Model(&models.User{}).
		Where("role_id = ?", role.ID()).
		Order("id").
		Pluck("id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}
