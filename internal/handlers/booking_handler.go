package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	domain "github.com/delacruzclinic/clinic-booking/internal/domain/booking"
	"github.com/delacruzclinic/clinic-booking/internal/dto"
	"github.com/delacruzclinic/clinic-booking/internal/httperr"
	"github.com/delacruzclinic/clinic-booking/internal/httpresp"
	"github.com/delacruzclinic/clinic-booking/internal/timezone"
	ucBooking "github.com/delacruzclinic/clinic-booking/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type BookingHandler struct {
	createUC *ucBooking.CreateBooking
	checkUC  *ucBooking.CheckSlots
}

func NewBookingHandler(
	createUC *ucBooking.CreateBooking,
	checkUC *ucBooking.CheckSlots,
) *BookingHandler {
	return &BookingHandler{
		createUC: createUC,
		checkUC:  checkUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateBookingRequest struct {
	Service string `json:"service" binding:"required"`
	Date    string `json:"date" binding:"required"` // YYYY-MM-DD
	Time    string `json:"time" binding:"required"` // HH:mm

	FirstName  string `json:"firstName" binding:"required"`
	MiddleName string `json:"middleName" binding:"required"`
	LastName   string `json:"lastName" binding:"required"`

	Email       string `json:"email" binding:"required"`
	PhoneNumber string `json:"phoneNumber" binding:"required"`

	AddressLine1 string `json:"addressLine1" binding:"required"`
	AddressLine2 string `json:"addressLine2"`

	Info string `json:"info"`
}

// ======================================================
// CHECK — booked times for a date
// ======================================================

func (h *BookingHandler) Check(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		httperr.BadRequest(c, "missing_date", "Date parameter is required.")
		return
	}

	times, err := h.checkUC.Execute(c.Request.Context(), date)
	if err != nil {
		httperr.Internal(c, "check_failed", "Error checking availability.")
		return
	}

	httpresp.OK(c, times)
}

// ======================================================
// SLOTS — the offerable grid with booked/expired disabled
// ======================================================

func (h *BookingHandler) Slots(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		httperr.BadRequest(c, "missing_date", "Date parameter is required.")
		return
	}

	booked, err := h.checkUC.Execute(c.Request.Context(), date)
	if err != nil {
		httperr.Internal(c, "slots_failed", "Error loading time slots.")
		return
	}

	bookedSet := make(map[string]struct{}, len(booked))
	for _, t := range booked {
		bookedSet[t] = struct{}{}
	}

	options := domain.DefaultTimeOptions()

	now := timezone.Now()
	expiredSet := map[string]struct{}{}
	if date == now.Format(timezone.DateLayout) {
		for _, t := range domain.ExpiredTimes(options, now) {
			expiredSet[t] = struct{}{}
		}
	}

	for i := range options {
		_, isBooked := bookedSet[options[i].Value]
		_, isExpired := expiredSet[options[i].Value]
		options[i].Disabled = isBooked || isExpired
	}

	c.JSON(http.StatusOK, gin.H{
		"date":  date,
		"slots": options,
	})
}

// ======================================================
// SCHEDULE WINDOW — Manila calendar facts for the booking page
// ======================================================

func (h *BookingHandler) ScheduleWindow(c *gin.Context) {
	weekStart, weekEnd := timezone.CurrentWeekRange()

	httpresp.OK(c, dto.ScheduleWindowDTO{
		WeekStart:    weekStart,
		WeekEnd:      weekEnd,
		Tomorrow:     timezone.Tomorrow().Format(timezone.DateLayout),
		ComingMonday: timezone.ComingMonday().Format(timezone.DateLayout),
		IsFriday:     timezone.IsFriday(),
		PastFivePM:   timezone.IsPastFivePM(),
	})
}

// ======================================================
// CREATE
// ======================================================

func (h *BookingHandler) Create(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid booking data.")
		return
	}

	b, err := h.createUC.Execute(
		c.Request.Context(),
		ucBooking.CreateBookingInput{
			Service:      req.Service,
			Date:         req.Date,
			Time:         req.Time,
			FirstName:    req.FirstName,
			MiddleName:   req.MiddleName,
			LastName:     req.LastName,
			Email:        req.Email,
			PhoneNumber:  req.PhoneNumber,
			AddressLine1: req.AddressLine1,
			AddressLine2: req.AddressLine2,
			Info:         req.Info,
		},
	)

	if err != nil {
		mapCreateError(c, err)
		return
	}

	httpresp.Created(c, b)
}

func mapCreateError(c *gin.Context, err error) {
	if httperr.IsBusiness(err, "slot_taken") {
		httperr.Conflict(c, "slot_taken",
			"This date and time slot is already booked. Please choose another schedule.")
		return
	}

	if be, ok := httperr.AsBusiness(err); ok {
		httperr.BadRequest(c, be.Code, "Invalid booking data.")
		return
	}

	httperr.Internal(c, "failed_to_create_booking", "Failed to create booking.")
}
