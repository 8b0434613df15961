package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	domain "github.com/delacruzclinic/clinic-booking/internal/domain/booking"
	"github.com/delacruzclinic/clinic-booking/internal/models"
	ucBooking "github.com/delacruzclinic/clinic-booking/internal/usecase/booking"
)

type bookingRepoMock struct {
	slotTaken   func(ctx context.Context, date, timeOfDay string) (bool, error)
	create      func(ctx context.Context, b *models.Booking) error
	bookedTimes func(ctx context.Context, date string) ([]string, error)
}

var _ domain.Repository = (*bookingRepoMock)(nil)

func (m *bookingRepoMock) SlotTaken(ctx context.Context, date, timeOfDay string) (bool, error) {
	if m.slotTaken == nil {
		return false, nil
	}
	return m.slotTaken(ctx, date, timeOfDay)
}

func (m *bookingRepoMock) CreateBooking(ctx context.Context, b *models.Booking) error {
	if m.create == nil {
		return nil
	}
	return m.create(ctx, b)
}

func (m *bookingRepoMock) BookedTimes(ctx context.Context, date string) ([]string, error) {
	if m.bookedTimes == nil {
		return nil, nil
	}
	return m.bookedTimes(ctx, date)
}

func (m *bookingRepoMock) CountBookings(ctx context.Context, filter domain.ListFilter) (int64, error) {
	return 0, nil
}

func (m *bookingRepoMock) ListBookings(ctx context.Context, filter domain.ListFilter, limit, offset int) ([]models.Booking, error) {
	return nil, nil
}

func (m *bookingRepoMock) DeleteBookingsByIDs(ctx context.Context, ids []string) ([]models.Booking, error) {
	return nil, nil
}

func newBookingRouter(repo domain.Repository) *gin.Engine {
	gin.SetMode(gin.TestMode)

	createUC := ucBooking.NewCreateBooking(repo, nil, nil)
	checkUC := ucBooking.NewCheckSlots(repo, nil)
	h := NewBookingHandler(createUC, checkUC)

	r := gin.New()
	r.GET("/api/bookings/check", h.Check)
	r.GET("/api/bookings/slots", h.Slots)
	r.POST("/api/bookings", h.Create)
	return r
}

const validBookingJSON = `{
	"service": "General Consultation",
	"date": "2099-01-05",
	"time": "09:00",
	"firstName": "Maria",
	"middleName": "Santos",
	"lastName": "Dela Cruz",
	"email": "maria@example.com",
	"phoneNumber": "09171234567",
	"addressLine1": "123 Mabini St",
	"info": "First visit."
}`

func postBooking(r *gin.Engine, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestBookingCreate_Created(t *testing.T) {
	repo := &bookingRepoMock{
		create: func(ctx context.Context, b *models.Booking) error {
			b.ID = "b1"
			return nil
		},
	}

	w := postBooking(newBookingRouter(repo), validBookingJSON)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"success":true`)
	assert.Contains(t, w.Body.String(), `"id":"b1"`)
}

func TestBookingCreate_SlotTakenIsConflict(t *testing.T) {
	repo := &bookingRepoMock{
		slotTaken: func(ctx context.Context, date, timeOfDay string) (bool, error) {
			return true, nil
		},
	}

	w := postBooking(newBookingRouter(repo), validBookingJSON)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "slot_taken")
	assert.Contains(t, w.Body.String(), "already booked")
}

func TestBookingCreate_BusinessCodeIsBadRequest(t *testing.T) {
	bad := strings.Replace(validBookingJSON, "09171234567", "12345", 1)

	w := postBooking(newBookingRouter(&bookingRepoMock{}), bad)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid_phone")
}

func TestBookingCreate_MissingFieldIsBadRequest(t *testing.T) {
	bad := strings.Replace(validBookingJSON, `"service": "General Consultation",`, "", 1)

	w := postBooking(newBookingRouter(&bookingRepoMock{}), bad)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid_request")
}

func TestBookingCheck(t *testing.T) {
	repo := &bookingRepoMock{
		bookedTimes: func(ctx context.Context, date string) ([]string, error) {
			return []string{"09:00"}, nil
		},
	}
	r := newBookingRouter(repo)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/bookings/check?date=2026-09-01", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `["09:00"]`, w.Body.String())
}

func TestBookingCheck_MissingDate(t *testing.T) {
	r := newBookingRouter(&bookingRepoMock{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/bookings/check", nil))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "missing_date")
}

func TestBookingSlots_MarksBookedDisabled(t *testing.T) {
	repo := &bookingRepoMock{
		bookedTimes: func(ctx context.Context, date string) ([]string, error) {
			return []string{"09:00"}, nil
		},
	}
	r := newBookingRouter(repo)

	// A far-future date so no slot is expired regardless of wall clock.
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/bookings/slots?date=2099-01-05", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `{"value":"09:00","label":"9:00 AM","disabled":true}`)
	assert.Contains(t, w.Body.String(), `{"value":"10:00","label":"10:00 AM","disabled":false}`)
}

func TestMapCreateError_Unknown(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	mapCreateError(c, context.DeadlineExceeded)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "failed_to_create_booking")
}
