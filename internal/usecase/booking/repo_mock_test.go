package booking

import (
	"context"

	domain "github.com/delacruzclinic/clinic-booking/internal/domain/booking"
	"github.com/delacruzclinic/clinic-booking/internal/models"
)

// repoMock implements domain.Repository with overridable funcs. Unset funcs
// return zero values.
type repoMock struct {
	slotTaken   func(ctx context.Context, date, timeOfDay string) (bool, error)
	create      func(ctx context.Context, b *models.Booking) error
	bookedTimes func(ctx context.Context, date string) ([]string, error)
	count       func(ctx context.Context, filter domain.ListFilter) (int64, error)
	list        func(ctx context.Context, filter domain.ListFilter, limit, offset int) ([]models.Booking, error)
	deleteByIDs func(ctx context.Context, ids []string) ([]models.Booking, error)
}

var _ domain.Repository = (*repoMock)(nil)

func (m *repoMock) SlotTaken(ctx context.Context, date, timeOfDay string) (bool, error) {
	if m.slotTaken == nil {
		return false, nil
	}
	return m.slotTaken(ctx, date, timeOfDay)
}

func (m *repoMock) CreateBooking(ctx context.Context, b *models.Booking) error {
	if m.create == nil {
		return nil
	}
	return m.create(ctx, b)
}

func (m *repoMock) BookedTimes(ctx context.Context, date string) ([]string, error) {
	if m.bookedTimes == nil {
		return nil, nil
	}
	return m.bookedTimes(ctx, date)
}

func (m *repoMock) CountBookings(ctx context.Context, filter domain.ListFilter) (int64, error) {
	if m.count == nil {
		return 0, nil
	}
	return m.count(ctx, filter)
}

func (m *repoMock) ListBookings(ctx context.Context, filter domain.ListFilter, limit, offset int) ([]models.Booking, error) {
	if m.list == nil {
		return nil, nil
	}
	return m.list(ctx, filter, limit, offset)
}

func (m *repoMock) DeleteBookingsByIDs(ctx context.Context, ids []string) ([]models.Booking, error) {
	if m.deleteByIDs == nil {
		return nil, nil
	}
	return m.deleteByIDs(ctx, ids)
}
