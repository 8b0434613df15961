package booking

import (
	"context"

	"github.com/delacruzclinic/clinic-booking/internal/audit"
	"github.com/delacruzclinic/clinic-booking/internal/cache"
	domain "github.com/delacruzclinic/clinic-booking/internal/domain/booking"
	"github.com/delacruzclinic/clinic-booking/internal/httperr"
	"github.com/delacruzclinic/clinic-booking/internal/models"
	"github.com/delacruzclinic/clinic-booking/internal/timezone"
	"github.com/delacruzclinic/clinic-booking/internal/validators"
)

// ======================================================
// INPUT
// ======================================================

type CreateBookingInput struct {
	Service string

	Date string
	Time string

	FirstName  string
	MiddleName string
	LastName   string

	Email       string
	PhoneNumber string

	AddressLine1 string
	AddressLine2 string

	Info string
}

// ======================================================
// USE CASE
// ======================================================

type CreateBooking struct {
	repo  domain.Repository
	cache *cache.BookedSlots
	audit *audit.Dispatcher
}

func NewCreateBooking(
	repo domain.Repository,
	slots *cache.BookedSlots,
	audit *audit.Dispatcher,
) *CreateBooking {
	return &CreateBooking{
		repo:  repo,
		cache: slots,
		audit: audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateBooking) Execute(
	ctx context.Context,
	in CreateBookingInput,
) (*models.Booking, error) {

	// --------------------------------------------------
	// 1. Field validation
	// --------------------------------------------------
	if err := validate(in); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 2. Slot must parse as Manila local time and be offerable
	// --------------------------------------------------
	if _, err := timezone.ParseSlot(in.Date, in.Time); err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}

	if !offerableTime(in.Time) {
		return nil, httperr.ErrBusiness("invalid_time_slot")
	}

	if timezone.IsBookingPast(in.Date, in.Time) {
		return nil, httperr.ErrBusiness("slot_in_the_past")
	}

	// --------------------------------------------------
	// 3. Existence pre-check (fast path for a clear message)
	// --------------------------------------------------
	taken, err := uc.repo.SlotTaken(ctx, in.Date, in.Time)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, httperr.ErrBusiness("slot_taken")
	}

	// --------------------------------------------------
	// 4. Insert. The (date,time) unique index settles any race the
	//    pre-check missed; the repository maps that to slot_taken too.
	// --------------------------------------------------
	b := &models.Booking{
		Service:      in.Service,
		Date:         in.Date,
		Time:         in.Time,
		FirstName:    in.FirstName,
		MiddleName:   in.MiddleName,
		LastName:     in.LastName,
		Email:        in.Email,
		PhoneNumber:  in.PhoneNumber,
		AddressLine1: in.AddressLine1,
		AddressLine2: in.AddressLine2,
		Info:         in.Info,
	}

	if err := uc.repo.CreateBooking(ctx, b); err != nil {
		return nil, err
	}

	uc.cache.Invalidate(ctx, b.Date)

	uc.audit.Dispatch(audit.Event{
		Action:   "booking_created",
		Entity:   "booking",
		EntityID: &b.ID,
		Metadata: map[string]any{
			"date": b.Date,
			"time": b.Time,
		},
	})

	return b, nil
}

// ======================================================
// VALIDATION
// ======================================================

func validate(in CreateBookingInput) error {
	if in.Service == "" {
		return httperr.ErrBusiness("missing_service")
	}

	if !validators.IsValidName(in.FirstName) ||
		!validators.IsValidName(in.MiddleName) ||
		!validators.IsValidName(in.LastName) {
		return httperr.ErrBusiness("invalid_name")
	}

	if !validators.IsValidEmail(in.Email) {
		return httperr.ErrBusiness("invalid_email")
	}

	if !validators.IsValidPHPhone(in.PhoneNumber) {
		return httperr.ErrBusiness("invalid_phone")
	}

	if !validators.IsValidAddress(in.AddressLine1, false) {
		return httperr.ErrBusiness("invalid_address")
	}
	if !validators.IsValidAddress(in.AddressLine2, true) {
		return httperr.ErrBusiness("invalid_address")
	}

	if !validators.IsSafeText(in.Info) {
		return httperr.ErrBusiness("unsafe_info")
	}

	return nil
}

func offerableTime(timeOfDay string) bool {
	for _, opt := range domain.DefaultTimeOptions() {
		if opt.Value == timeOfDay {
			return true
		}
	}
	return false
}
