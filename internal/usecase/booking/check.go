package booking

import (
	"context"

	"github.com/delacruzclinic/clinic-booking/internal/cache"
	domain "github.com/delacruzclinic/clinic-booking/internal/domain/booking"
)

type CheckSlots struct {
	repo  domain.Repository
	cache *cache.BookedSlots
}

func NewCheckSlots(repo domain.Repository, slots *cache.BookedSlots) *CheckSlots {
	return &CheckSlots{repo: repo, cache: slots}
}

// Execute returns the booked time strings for a date, cache-aside.
func (uc *CheckSlots) Execute(ctx context.Context, date string) ([]string, error) {
	if times, ok := uc.cache.Get(ctx, date); ok {
		return times, nil
	}

	times, err := uc.repo.BookedTimes(ctx, date)
	if err != nil {
		return nil, err
	}
	if times == nil {
		times = []string{}
	}

	uc.cache.Set(ctx, date, times)

	return times, nil
}
