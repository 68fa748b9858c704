package handlers

import (
	"net/http"
	"strconv"

	"findmylocal/middleware"
	"findmylocal/models"
	"findmylocal/services/user"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UserHandler serves the per-client profile: favorites, preferences, recent searches.
type UserHandler struct {
	Users  user.UserService
	Logger *zap.Logger
}

func NewUserHandler(users user.UserService, logger *zap.Logger) *UserHandler {
	return &UserHandler{Users: users, Logger: logger}
}

// ListFavorites handles GET /api/favorites.
func (h *UserHandler) ListFavorites(c *gin.Context) {
	favorites, err := h.Users.Favorites(c.Request.Context(), middleware.GetClientID(c))
	if err != nil {
		respondError(c, h.Logger, "ListFavorites", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"favorites": favorites})
}

// AddFavorite handles POST /api/favorites.
func (h *UserHandler) AddFavorite(c *gin.Context) {
	var input models.FavoriteInput
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, h.Logger, "AddFavorite", err)
		return
	}
	added, err := h.Users.AddFavorite(c.Request.Context(), middleware.GetClientID(c), input.ServiceID)
	if err != nil {
		respondError(c, h.Logger, "AddFavorite", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"serviceId": input.ServiceID, "added": added})
}

// RemoveFavorite handles DELETE /api/favorites/:id.
func (h *UserHandler) RemoveFavorite(c *gin.Context) {
	id := c.Param("id")
	removed, err := h.Users.RemoveFavorite(c.Request.Context(), middleware.GetClientID(c), id)
	if err != nil {
		respondError(c, h.Logger, "RemoveFavorite", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"serviceId": id, "removed": removed})
}

// GetPreferences handles GET /api/preferences.
func (h *UserHandler) GetPreferences(c *gin.Context) {
	prefs, err := h.Users.Preferences(c.Request.Context(), middleware.GetClientID(c))
	if err != nil {
		respondError(c, h.Logger, "GetPreferences", err)
		return
	}
	c.JSON(http.StatusOK, prefs)
}

// UpdatePreferences handles PUT /api/preferences. Absent fields are left as they are.
func (h *UserHandler) UpdatePreferences(c *gin.Context) {
	var update models.PreferencesUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		badRequest(c, h.Logger, "UpdatePreferences", err)
		return
	}
	prefs, err := h.Users.UpdatePreferences(c.Request.Context(), middleware.GetClientID(c), update)
	if err != nil {
		respondError(c, h.Logger, "UpdatePreferences", err)
		return
	}
	c.JSON(http.StatusOK, prefs)
}

// RecentSearches handles GET /api/searches/recent?limit=N.
func (h *UserHandler) RecentSearches(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit", "message": "limit must be a non-negative integer"})
			return
		}
		limit = n
	}
	searches, err := h.Users.RecentSearches(c.Request.Context(), middleware.GetClientID(c), limit)
	if err != nil {
		respondError(c, h.Logger, "RecentSearches", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"searches": searches})
}

// ClearRecentSearches handles DELETE /api/searches/recent.
func (h *UserHandler) ClearRecentSearches(c *gin.Context) {
	if err := h.Users.ClearRecentSearches(c.Request.Context(), middleware.GetClientID(c)); err != nil {
		respondError(c, h.Logger, "ClearRecentSearches", err)
		return
	}
	c.Status(http.StatusNoContent)
}
