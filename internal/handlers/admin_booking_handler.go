package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/delacruzclinic/clinic-booking/internal/httperr"
	"github.com/delacruzclinic/clinic-booking/internal/middleware"
	ucBooking "github.com/delacruzclinic/clinic-booking/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type AdminBookingHandler struct {
	listUC   *ucBooking.ListBookings
	removeUC *ucBooking.RemoveBookings
}

func NewAdminBookingHandler(
	listUC *ucBooking.ListBookings,
	removeUC *ucBooking.RemoveBookings,
) *AdminBookingHandler {
	return &AdminBookingHandler{
		listUC:   listUC,
		removeUC: removeUC,
	}
}

// ======================================================
// LIST
// ======================================================

func (h *AdminBookingHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("perPage", "50"))

	out, err := h.listUC.Execute(
		c.Request.Context(),
		ucBooking.ListBookingsInput{
			Page:      page,
			PerPage:   perPage,
			Date:      c.Query("date"),
			StartDate: c.Query("startDate"),
			EndDate:   c.Query("endDate"),
		},
	)
	if err != nil {
		httperr.Internal(c, "failed_to_list_bookings", "Failed to list bookings.")
		return
	}

	c.JSON(http.StatusOK, out)
}

// ======================================================
// BULK DELETE
// ======================================================

type DeleteBookingsRequest struct {
	IDs []string `json:"ids"`
}

func (h *AdminBookingHandler) Delete(c *gin.Context) {
	var req DeleteBookingsRequest
	if err := c.ShouldBindJSON(&req); err != nil || len(req.IDs) == 0 {
		httperr.BadRequest(c, "empty_ids", "ids must be a non-empty array.")
		return
	}

	userID := c.MustGet(middleware.ContextUserID).(string)

	out, err := h.removeUC.Execute(c.Request.Context(), userID, req.IDs)
	if err != nil {
		if httperr.IsBusiness(err, "empty_ids") {
			httperr.BadRequest(c, "empty_ids", "ids must be a non-empty array.")
			return
		}
		httperr.Internal(c, "failed_to_delete_bookings", "Failed to delete bookings.")
		return
	}

	c.JSON(http.StatusOK, out)
}
