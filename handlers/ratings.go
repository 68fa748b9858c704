package handlers

import (
	"net/http"

	"findmylocal/middleware"
	"findmylocal/models"
	"findmylocal/services/rating"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type RatingHandler struct {
	Ratings rating.RatingService
	Logger  *zap.Logger
}

func NewRatingHandler(ratings rating.RatingService, logger *zap.Logger) *RatingHandler {
	return &RatingHandler{Ratings: ratings, Logger: logger}
}

// List handles GET /api/ratings.
func (h *RatingHandler) List(c *gin.Context) {
	ratings, err := h.Ratings.Ratings(c.Request.Context(), middleware.GetClientID(c))
	if err != nil {
		respondError(c, h.Logger, "ListRatings", err)
		return
	}
	c.JSON(http.StatusOK, ratings)
}

// Submit handles POST /api/ratings and returns the updated map.
func (h *RatingHandler) Submit(c *gin.Context) {
	var input models.RatingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, h.Logger, "SubmitRating", err)
		return
	}
	clientID := middleware.GetClientID(c)
	if err := h.Ratings.SubmitRating(c.Request.Context(), clientID, input.ServiceID, input.Rating); err != nil {
		respondError(c, h.Logger, "SubmitRating", err)
		return
	}
	ratings, err := h.Ratings.Ratings(c.Request.Context(), clientID)
	if err != nil {
		respondError(c, h.Logger, "SubmitRating", err)
		return
	}
	c.JSON(http.StatusOK, ratings)
}
