package booking

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/delacruzclinic/clinic-booking/internal/httperr"
	"github.com/delacruzclinic/clinic-booking/internal/models"
)

func validInput() CreateBookingInput {
	return CreateBookingInput{
		Service:      "General Consultation",
		Date:         "2099-01-05",
		Time:         "09:00",
		FirstName:    "Maria",
		MiddleName:   "Santos",
		LastName:     "Dela Cruz",
		Email:        "maria@example.com",
		PhoneNumber:  "09171234567",
		AddressLine1: "123 Mabini St",
		AddressLine2: "",
		Info:         "First visit.",
	}
}

func TestCreateBooking_Success(t *testing.T) {
	var inserted *models.Booking

	repo := &repoMock{
		create: func(ctx context.Context, b *models.Booking) error {
			b.ID = "b1"
			inserted = b
			return nil
		},
	}

	uc := NewCreateBooking(repo, nil, nil)

	b, err := uc.Execute(context.Background(), validInput())
	require.NoError(t, err)
	require.NotNil(t, b)

	assert.Equal(t, "b1", b.ID)
	assert.Equal(t, "2099-01-05", b.Date)
	assert.Equal(t, "09:00", b.Time)
	assert.Same(t, inserted, b)
}

func TestCreateBooking_ValidationCodes(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(in *CreateBookingInput)
		wantCode string
	}{
		{
			name:     "missing service",
			mutate:   func(in *CreateBookingInput) { in.Service = "" },
			wantCode: "missing_service",
		},
		{
			name:     "single-letter first name",
			mutate:   func(in *CreateBookingInput) { in.FirstName = "M" },
			wantCode: "invalid_name",
		},
		{
			name:     "digits in last name",
			mutate:   func(in *CreateBookingInput) { in.LastName = "Cruz99" },
			wantCode: "invalid_name",
		},
		{
			name:     "malformed email",
			mutate:   func(in *CreateBookingInput) { in.Email = "maria@" },
			wantCode: "invalid_email",
		},
		{
			name:     "short phone",
			mutate:   func(in *CreateBookingInput) { in.PhoneNumber = "12345" },
			wantCode: "invalid_phone",
		},
		{
			name:     "empty address line 1",
			mutate:   func(in *CreateBookingInput) { in.AddressLine1 = "" },
			wantCode: "invalid_address",
		},
		{
			name:     "html in info",
			mutate:   func(in *CreateBookingInput) { in.Info = "<script>alert(1)</script>" },
			wantCode: "unsafe_info",
		},
		{
			name:     "unparseable date",
			mutate:   func(in *CreateBookingInput) { in.Date = "2099-13-40" },
			wantCode: "invalid_date_or_time",
		},
		{
			name:     "time off the offered grid",
			mutate:   func(in *CreateBookingInput) { in.Time = "09:30" },
			wantCode: "invalid_time_slot",
		},
		{
			name:     "slot in the past",
			mutate:   func(in *CreateBookingInput) { in.Date = "2020-01-06" },
			wantCode: "slot_in_the_past",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			repo := &repoMock{
				create: func(ctx context.Context, b *models.Booking) error {
					t.Fatal("CreateBooking must not be reached")
					return nil
				},
			}
			uc := NewCreateBooking(repo, nil, nil)

			in := validInput()
			tc.mutate(&in)

			_, err := uc.Execute(context.Background(), in)
			assert.True(t, httperr.IsBusiness(err, tc.wantCode),
				"want business code %q, got %v", tc.wantCode, err)
		})
	}
}

func TestCreateBooking_SlotTakenPreCheck(t *testing.T) {
	repo := &repoMock{
		slotTaken: func(ctx context.Context, date, timeOfDay string) (bool, error) {
			return true, nil
		},
		create: func(ctx context.Context, b *models.Booking) error {
			t.Fatal("insert must not run when the pre-check hits")
			return nil
		},
	}

	uc := NewCreateBooking(repo, nil, nil)

	_, err := uc.Execute(context.Background(), validInput())
	assert.True(t, httperr.IsBusiness(err, "slot_taken"))
}

func TestCreateBooking_SlotTakenOnInsertRace(t *testing.T) {
	// Pre-check sees a free slot; the insert loses the race and the
	// repository surfaces slot_taken from the unique index.
	repo := &repoMock{
		create: func(ctx context.Context, b *models.Booking) error {
			return httperr.ErrBusiness("slot_taken")
		},
	}

	uc := NewCreateBooking(repo, nil, nil)

	_, err := uc.Execute(context.Background(), validInput())
	assert.True(t, httperr.IsBusiness(err, "slot_taken"))
}

func TestCreateBooking_RepositoryError(t *testing.T) {
	boom := errors.New("connection reset")

	repo := &repoMock{
		create: func(ctx context.Context, b *models.Booking) error {
			return boom
		},
	}

	uc := NewCreateBooking(repo, nil, nil)

	_, err := uc.Execute(context.Background(), validInput())
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)

	_, isBusiness := httperr.AsBusiness(err)
	assert.False(t, isBusiness)
}
