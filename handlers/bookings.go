package handlers

import (
	"net/http"

	"findmylocal/middleware"
	"findmylocal/models"
	"findmylocal/services/booking"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type BookingHandler struct {
	Bookings booking.BookingService
	Logger   *zap.Logger
}

func NewBookingHandler(bookings booking.BookingService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Bookings: bookings, Logger: logger}
}

// List handles GET /api/bookings.
func (h *BookingHandler) List(c *gin.Context) {
	list, err := h.Bookings.ListBookings(c.Request.Context(), middleware.GetClientID(c))
	if err != nil {
		respondError(c, h.Logger, "ListBookings", err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// Create handles POST /api/bookings.
func (h *BookingHandler) Create(c *gin.Context) {
	var input models.BookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, h.Logger, "CreateBooking", err)
		return
	}
	b, err := h.Bookings.AddBooking(c.Request.Context(), middleware.GetClientID(c), input)
	if err != nil {
		respondError(c, h.Logger, "CreateBooking", err)
		return
	}
	c.JSON(http.StatusCreated, b)
}

// Cancel handles DELETE /api/bookings/:id.
func (h *BookingHandler) Cancel(c *gin.Context) {
	id := c.Param("id")
	cancelled, err := h.Bookings.CancelBooking(c.Request.Context(), middleware.GetClientID(c), id)
	if err != nil {
		respondError(c, h.Logger, "CancelBooking", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id, "cancelled": cancelled})
}
