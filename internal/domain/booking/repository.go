package booking

import (
	"context"

	"github.com/delacruzclinic/clinic-booking/internal/models"
)

// ListFilter narrows an admin listing to an exact date or an inclusive
// date range. Zero value means no filter.
type ListFilter struct {
	Date      string
	StartDate string
	EndDate   string
}

type Repository interface {
	// -------- Slot / create --------
	SlotTaken(
		ctx context.Context,
		date string,
		timeOfDay string,
	) (bool, error)

	CreateBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	BookedTimes(
		ctx context.Context,
		date string,
	) ([]string, error)

	// -------- Admin listing --------
	CountBookings(
		ctx context.Context,
		filter ListFilter,
	) (int64, error)

	ListBookings(
		ctx context.Context,
		filter ListFilter,
		limit int,
		offset int,
	) ([]models.Booking, error)

	// -------- Admin deletion --------
	DeleteBookingsByIDs(
		ctx context.Context,
		ids []string,
	) ([]models.Booking, error)
}
