package handlers

import (
	"errors"
	"net/http"

	"findmylocal/middleware"
	"findmylocal/models"
	"findmylocal/services/catalog"
	"findmylocal/services/comparison"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ComparisonHandler manages each client's comparison set.
type ComparisonHandler struct {
	Catalog    catalog.CatalogService
	Comparison *comparison.Manager
	Logger     *zap.Logger
}

func NewComparisonHandler(catalogSvc catalog.CatalogService, comparisons *comparison.Manager, logger *zap.Logger) *ComparisonHandler {
	return &ComparisonHandler{Catalog: catalogSvc, Comparison: comparisons, Logger: logger}
}

// current re-reads each compared service from the catalog so moderation and
// edits show up. Services deleted since they were added are dropped.
func (h *ComparisonHandler) current(c *gin.Context, clientID string) []models.Service {
	stored := h.Comparison.Items(clientID)
	items := make([]models.Service, 0, len(stored))
	for _, s := range stored {
		svc, err := h.Catalog.GetService(c.Request.Context(), s.ID)
		switch {
		case errors.Is(err, catalog.ErrServiceNotFound):
			h.Comparison.Remove(clientID, s.ID)
		case err != nil:
			h.Logger.Warn("ComparisonHandler: using stored copy", zap.String("serviceId", s.ID), zap.Error(err))
			items = append(items, s)
		default:
			h.Comparison.Replace(clientID, *svc)
			items = append(items, *svc)
		}
	}
	return items
}

func (h *ComparisonHandler) reply(c *gin.Context, clientID string, extra gin.H) {
	items := h.current(c, clientID)
	body := gin.H{
		"items":  items,
		"count":  len(items),
		"isFull": len(items) >= comparison.MaxItems,
	}
	for k, v := range extra {
		body[k] = v
	}
	c.JSON(http.StatusOK, body)
}

// List handles GET /api/comparison.
func (h *ComparisonHandler) List(c *gin.Context) {
	h.reply(c, middleware.GetClientID(c), nil)
}

// Add handles POST /api/comparison. A full set or a duplicate is a no-op.
func (h *ComparisonHandler) Add(c *gin.Context) {
	var input models.ComparisonInput
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, h.Logger, "AddComparison", err)
		return
	}
	svc, err := h.Catalog.GetService(c.Request.Context(), input.ServiceID)
	if err != nil {
		respondError(c, h.Logger, "AddComparison", err)
		return
	}
	clientID := middleware.GetClientID(c)
	added := h.Comparison.Add(clientID, *svc)
	h.reply(c, clientID, gin.H{"added": added})
}

// Remove handles DELETE /api/comparison/:id.
func (h *ComparisonHandler) Remove(c *gin.Context) {
	clientID := middleware.GetClientID(c)
	removed := h.Comparison.Remove(clientID, c.Param("id"))
	h.reply(c, clientID, gin.H{"removed": removed})
}

// Clear handles DELETE /api/comparison.
func (h *ComparisonHandler) Clear(c *gin.Context) {
	clientID := middleware.GetClientID(c)
	h.Comparison.Clear(clientID)
	h.reply(c, clientID, nil)
}
