package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/delacruzclinic/clinic-booking/internal/middleware"
	"github.com/delacruzclinic/clinic-booking/internal/models"
)

type UserGormRepository struct {
	db *gorm.DB
}

func NewUserGormRepository(db *gorm.DB) *UserGormRepository {
	return &UserGormRepository{db: db}
}

// FindByIDAndUsername returns the user only when both fields match exactly;
// a stale or tampered session claim finds nothing.
func (r *UserGormRepository) FindByIDAndUsername(
	ctx context.Context,
	id string,
	username string,
) (*models.User, error) {

	var user models.User
	err := r.db.WithContext(ctx).
		Where("id = ? AND username = ?", id, username).
		First(&user).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &user, nil
}

// Compile-time check
var _ middleware.UserStore = (*UserGormRepository)(nil)
