package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/delacruzclinic/clinic-booking/internal/domain/booking"
	"github.com/delacruzclinic/clinic-booking/internal/httperr"
	"github.com/delacruzclinic/clinic-booking/internal/models"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

// --------------------------------------------------
// Slot / create
// --------------------------------------------------

func (r *BookingGormRepository) SlotTaken(
	ctx context.Context,
	date string,
	timeOfDay string,
) (bool, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Where("date = ? AND time = ?", date, timeOfDay).
		Count(&count).Error; err != nil {
		return false, err
	}

	return count > 0, nil
}

// CreateBooking inserts the row. The unique index on (date,time) is the real
// double-booking guard; a violation is mapped to the same slot_taken code the
// pre-check produces, so racing requests and sequential ones fail alike.
func (r *BookingGormRepository) CreateBooking(
	ctx context.Context,
	b *models.Booking,
) error {

	if err := r.db.WithContext(ctx).Create(b).Error; err != nil {
		if httperr.IsUniqueViolation(err) {
			return httperr.ErrBusiness("slot_taken")
		}
		return err
	}

	return nil
}

func (r *BookingGormRepository) BookedTimes(
	ctx context.Context,
	date string,
) ([]string, error) {

	var times []string
	if err := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Where("date = ?", date).
		Order("time ASC").
		Pluck("time", &times).Error; err != nil {
		return nil, err
	}

	return times, nil
}

// --------------------------------------------------
// Admin listing
// --------------------------------------------------

func (r *BookingGormRepository) filtered(
	ctx context.Context,
	filter domain.ListFilter,
) *gorm.DB {

	q := r.db.WithContext(ctx).Model(&models.Booking{})

	if filter.Date != "" {
		q = q.Where("date = ?", filter.Date)
	} else if filter.StartDate != "" && filter.EndDate != "" {
		q = q.Where("date >= ? AND date <= ?", filter.StartDate, filter.EndDate)
	}

	return q
}

func (r *BookingGormRepository) CountBookings(
	ctx context.Context,
	filter domain.ListFilter,
) (int64, error) {

	var count int64
	if err := r.filtered(ctx, filter).Count(&count).Error; err != nil {
		return 0, err
	}

	return count, nil
}

func (r *BookingGormRepository) ListBookings(
	ctx context.Context,
	filter domain.ListFilter,
	limit int,
	offset int,
) ([]models.Booking, error) {

	var rows []models.Booking
	if err := r.filtered(ctx, filter).
		Order("date ASC, time ASC").
		Limit(limit).
		Offset(offset).
		Find(&rows).Error; err != nil {
		return nil, err
	}

	return rows, nil
}

// --------------------------------------------------
// Admin deletion
// --------------------------------------------------

// DeleteBookingsByIDs removes the matching rows and returns the ones that
// actually existed, so the caller can report deleted ids and invalidate the
// affected dates.
func (r *BookingGormRepository) DeleteBookingsByIDs(
	ctx context.Context,
	ids []string,
) ([]models.Booking, error) {

	var deleted []models.Booking

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("id IN ?", ids).
			Find(&deleted).Error; err != nil {
			return err
		}

		if len(deleted) == 0 {
			return nil
		}

		return tx.
			Where("id IN ?", ids).
			Delete(&models.Booking{}).Error
	})

	if err != nil {
		return nil, err
	}

	return deleted, nil
}

// Compile-time check
var _ domain.Repository = (*BookingGormRepository)(nil)
