package handlers

import (
	"net/http"

	"findmylocal/middleware"
	"findmylocal/models"
	"findmylocal/services/provider"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ProviderHandler serves the signed-in provider's dashboard. The provider is
// identified by the email in its token.
type ProviderHandler struct {
	Providers provider.ProviderService
	Logger    *zap.Logger
}

func NewProviderHandler(providers provider.ProviderService, logger *zap.Logger) *ProviderHandler {
	return &ProviderHandler{Providers: providers, Logger: logger}
}

// Dashboard handles GET /api/provider/bookings.
func (h *ProviderHandler) Dashboard(c *gin.Context) {
	dash, err := h.Providers.Dashboard(c.Request.Context(), middleware.GetEmail(c))
	if err != nil {
		respondError(c, h.Logger, "ProviderDashboard", err)
		return
	}
	c.JSON(http.StatusOK, dash)
}

// UpdateStatus handles PATCH /api/provider/bookings/:id/status.
func (h *ProviderHandler) UpdateStatus(c *gin.Context) {
	var input models.StatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, h.Logger, "UpdateProviderBooking", err)
		return
	}
	b, changed, err := h.Providers.UpdateBookingStatus(c.Request.Context(), middleware.GetEmail(c), c.Param("id"), input.Status)
	if err != nil {
		respondError(c, h.Logger, "UpdateProviderBooking", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": b, "updated": changed})
}

// Slots handles GET /api/provider/slots.
func (h *ProviderHandler) Slots(c *gin.Context) {
	slots, err := h.Providers.Slots(c.Request.Context(), middleware.GetEmail(c))
	if err != nil {
		respondError(c, h.Logger, "ProviderSlots", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"slots": slots})
}

// AddSlot handles POST /api/provider/slots.
func (h *ProviderHandler) AddSlot(c *gin.Context) {
	var input models.ProviderSlotInput
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, h.Logger, "AddProviderSlot", err)
		return
	}
	slots, err := h.Providers.AddSlot(c.Request.Context(), middleware.GetEmail(c), input.Time)
	if err != nil {
		respondError(c, h.Logger, "AddProviderSlot", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"slots": slots})
}

// RemoveSlot handles DELETE /api/provider/slots/:time.
func (h *ProviderHandler) RemoveSlot(c *gin.Context) {
	slots, err := h.Providers.RemoveSlot(c.Request.Context(), middleware.GetEmail(c), c.Param("time"))
	if err != nil {
		respondError(c, h.Logger, "RemoveProviderSlot", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"slots": slots})
}

// BlockedDates handles GET /api/provider/blocked-dates.
func (h *ProviderHandler) BlockedDates(c *gin.Context) {
	dates, err := h.Providers.BlockedDates(c.Request.Context(), middleware.GetEmail(c))
	if err != nil {
		respondError(c, h.Logger, "ProviderBlockedDates", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"blockedDates": dates})
}

// AddBlockedDate handles POST /api/provider/blocked-dates.
func (h *ProviderHandler) AddBlockedDate(c *gin.Context) {
	var input models.ProviderBlockedDateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, h.Logger, "AddProviderBlockedDate", err)
		return
	}
	dates, err := h.Providers.AddBlockedDate(c.Request.Context(), middleware.GetEmail(c), input.Date)
	if err != nil {
		respondError(c, h.Logger, "AddProviderBlockedDate", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"blockedDates": dates})
}

// RemoveBlockedDate handles DELETE /api/provider/blocked-dates/:date.
func (h *ProviderHandler) RemoveBlockedDate(c *gin.Context) {
	dates, err := h.Providers.RemoveBlockedDate(c.Request.Context(), middleware.GetEmail(c), c.Param("date"))
	if err != nil {
		respondError(c, h.Logger, "RemoveProviderBlockedDate", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"blockedDates": dates})
}
