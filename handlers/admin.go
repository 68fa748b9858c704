package handlers

import (
	"net/http"

	"findmylocal/models"
	"findmylocal/services/catalog"
	"findmylocal/services/comparison"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AdminHandler serves the moderation panel.
type AdminHandler struct {
	Catalog    catalog.CatalogService
	Comparison *comparison.Manager
	Logger     *zap.Logger
}

func NewAdminHandler(catalogSvc catalog.CatalogService, comparisons *comparison.Manager, logger *zap.Logger) *AdminHandler {
	return &AdminHandler{Catalog: catalogSvc, Comparison: comparisons, Logger: logger}
}

// ListServices handles GET /api/admin/services; the status filter applies here.
func (h *AdminHandler) ListServices(c *gin.Context) {
	var filters models.Filters
	if err := c.ShouldBindQuery(&filters); err != nil {
		badRequest(c, h.Logger, "AdminListServices", err)
		return
	}
	services, err := h.Catalog.AdminListServices(c.Request.Context(), filters)
	if err != nil {
		respondError(c, h.Logger, "AdminListServices", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"services": services, "count": len(services)})
}

// UpdateStatus handles PATCH /api/admin/services/:id/status.
func (h *AdminHandler) UpdateStatus(c *gin.Context) {
	var input models.StatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, h.Logger, "UpdateStatus", err)
		return
	}
	id := c.Param("id")
	updated, err := h.Catalog.UpdateServiceStatus(c.Request.Context(), id, input.Status)
	if err != nil {
		respondError(c, h.Logger, "UpdateStatus", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id, "status": input.Status, "updated": updated})
}

// VerifyService handles POST /api/admin/services/:id/verify.
func (h *AdminHandler) VerifyService(c *gin.Context) {
	id := c.Param("id")
	verified, err := h.Catalog.VerifyService(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.Logger, "VerifyService", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id, "verified": verified})
}

// DeleteService handles DELETE /api/admin/services/:id. A deleted service is
// also dropped from every comparison set.
func (h *AdminHandler) DeleteService(c *gin.Context) {
	id := c.Param("id")
	deleted, err := h.Catalog.DeleteService(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.Logger, "DeleteService", err)
		return
	}
	if deleted && h.Comparison != nil {
		h.Comparison.RemoveEverywhere(id)
	}
	c.JSON(http.StatusOK, gin.H{"id": id, "deleted": deleted})
}
