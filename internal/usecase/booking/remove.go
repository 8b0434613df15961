package booking

import (
	"context"

	"github.com/delacruzclinic/clinic-booking/internal/audit"
	"github.com/delacruzclinic/clinic-booking/internal/cache"
	domain "github.com/delacruzclinic/clinic-booking/internal/domain/booking"
	"github.com/delacruzclinic/clinic-booking/internal/httperr"
)

type RemoveBookingsOutput struct {
	DeletedCount int      `json:"deletedCount"`
	DeletedIDs   []string `json:"deletedIds"`
}

type RemoveBookings struct {
	repo  domain.Repository
	cache *cache.BookedSlots
	audit *audit.Dispatcher
}

func NewRemoveBookings(
	repo domain.Repository,
	slots *cache.BookedSlots,
	audit *audit.Dispatcher,
) *RemoveBookings {
	return &RemoveBookings{
		repo:  repo,
		cache: slots,
		audit: audit,
	}
}

// Execute deletes the requested bookings. Unknown ids are skipped; the
// returned ids are the ones that actually existed.
func (uc *RemoveBookings) Execute(
	ctx context.Context,
	userID string,
	ids []string,
) (*RemoveBookingsOutput, error) {

	if len(ids) == 0 {
		return nil, httperr.ErrBusiness("empty_ids")
	}

	deleted, err := uc.repo.DeleteBookingsByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	deletedIDs := make([]string, 0, len(deleted))
	dates := make(map[string]struct{}, len(deleted))
	for _, b := range deleted {
		deletedIDs = append(deletedIDs, b.ID)
		dates[b.Date] = struct{}{}
	}

	affected := make([]string, 0, len(dates))
	for d := range dates {
		affected = append(affected, d)
	}
	uc.cache.Invalidate(ctx, affected...)

	if len(deletedIDs) > 0 {
		uc.audit.Dispatch(audit.Event{
			UserID: &userID,
			Action: "bookings_deleted",
			Entity: "booking",
			Metadata: map[string]any{
				"count": len(deletedIDs),
				"ids":   deletedIDs,
			},
		})
	}

	return &RemoveBookingsOutput{
		DeletedCount: len(deletedIDs),
		DeletedIDs:   deletedIDs,
	}, nil
}
