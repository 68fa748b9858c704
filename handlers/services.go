package handlers

import (
	"net/http"
	"strings"

	"findmylocal/middleware"
	"findmylocal/models"
	"findmylocal/services/catalog"
	"findmylocal/services/user"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ServiceHandler serves the public catalog.
type ServiceHandler struct {
	Catalog catalog.CatalogService
	Users   user.UserService
	Logger  *zap.Logger
}

func NewServiceHandler(catalogSvc catalog.CatalogService, users user.UserService, logger *zap.Logger) *ServiceHandler {
	return &ServiceHandler{Catalog: catalogSvc, Users: users, Logger: logger}
}

// ListServices handles GET /api/services.
func (h *ServiceHandler) ListServices(c *gin.Context) {
	var filters models.Filters
	if err := c.ShouldBindQuery(&filters); err != nil {
		badRequest(c, h.Logger, "ListServices", err)
		return
	}
	filters.Query = strings.TrimSpace(filters.Query)

	services, err := h.Catalog.ListServices(c.Request.Context(), filters)
	if err != nil {
		respondError(c, h.Logger, "ListServices", err)
		return
	}

	// Search history is a convenience; failing to record it never fails the listing.
	if clientID := middleware.GetClientID(c); clientID != "" && filters.Query != "" && h.Users != nil {
		if err := h.Users.RecordSearch(c.Request.Context(), clientID, filters.Query); err != nil {
			h.Logger.Warn("ListServices: failed to record search", zap.String("clientID", clientID), zap.Error(err))
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"services":         services,
		"count":            len(services),
		"hasActiveFilters": filters.HasActiveFilters(),
	})
}

// GetFacets handles GET /api/services/facets.
func (h *ServiceHandler) GetFacets(c *gin.Context) {
	c.JSON(http.StatusOK, h.Catalog.Facets())
}

// GetService handles GET /api/services/:id.
func (h *ServiceHandler) GetService(c *gin.Context) {
	svc, err := h.Catalog.GetService(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.Logger, "GetService", err)
		return
	}
	c.JSON(http.StatusOK, svc)
}
