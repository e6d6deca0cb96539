package transport

import (
	"net/http"
	"strconv"

	"github.com/ds124wfegd/eventease/internal/entity"
	"github.com/gin-gonic/gin"
)

func (h *BookingHandler) GetBookings(c *gin.Context) {
	bookings, err := h.service.GetAllBookings(c.Request.Context())
	if err != nil {
		errorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, bookings)
}

func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var req entity.CreateBookingRequest
	if !bindJSON(c, &req) {
		// unreadable body is validated as an empty object
		req = entity.CreateBookingRequest{}
	}

	booking, err := h.service.CreateBooking(c.Request.Context(), &req)
	if err != nil {
		errorResponse(c, err)
		return
	}

	c.JSON(http.StatusCreated, booking)
}

// parseID accepts unsigned decimal ids only: "+1", "-1" and " 1" are not ids.
func parseID(raw string) (int, bool) {
	if raw == "" {
		return 0, false
	}
	for _, r := range raw {
		if r < '0' || r > '9' {
			return 0, false
		}
	}

	id, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return id, true
}

func (h *BookingHandler) DeleteBooking(c *gin.Context) {
	id, ok := parseID(c.Param("id"))
	if !ok {
		notFound(c)
		return
	}

	if err := h.service.DeleteBooking(c.Request.Context(), id); err != nil {
		errorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}
