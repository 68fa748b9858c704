package rating

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	storageRepo "findmylocal/database/repository/storage"
	"findmylocal/models"
	"findmylocal/services/events"
	"findmylocal/utils"

	"go.uber.org/zap"
)

var ErrInvalidRating = errors.New("invalid rating")

type RatingService interface {
	SubmitRating(ctx context.Context, clientID, serviceID string, rating int) error
	Ratings(ctx context.Context, clientID string) (models.Ratings, error)
}

// DefaultRatingService merges ratings into the client's "serviceRatings" map.
// Ratings are not aggregated into the catalog.
type DefaultRatingService struct {
	Store   storageRepo.Store
	Events  events.Publisher
	Metrics *utils.MetricsManager
	Logger  *zap.Logger
}

func NewRatingService(store storageRepo.Store, publisher events.Publisher, metrics *utils.MetricsManager, logger *zap.Logger) *DefaultRatingService {
	return &DefaultRatingService{Store: store, Events: publisher, Metrics: metrics, Logger: logger}
}

// SubmitRating sets or overwrites the client's rating of serviceID.
func (s *DefaultRatingService) SubmitRating(ctx context.Context, clientID, serviceID string, rating int) error {
	if strings.TrimSpace(serviceID) == "" {
		return fmt.Errorf("%w: serviceId is required", ErrInvalidRating)
	}
	if rating < models.MinRating || rating > models.MaxRating {
		return fmt.Errorf("%w: %d is outside %d..%d", ErrInvalidRating, rating, models.MinRating, models.MaxRating)
	}

	err := storageRepo.UpdateJSON(ctx, s.Store, clientID, storageRepo.KeyServiceRatings, func(m *models.Ratings) (bool, error) {
		if *m == nil {
			*m = models.Ratings{}
		}
		(*m)[serviceID] = rating
		return true, nil
	})
	if err != nil {
		s.Metrics.StoreErrorsTotal.WithLabelValues("submit_rating").Inc()
		return fmt.Errorf("failed to save rating: %w", err)
	}

	s.Metrics.RatingsSubmittedTotal.Inc()
	if err := s.Events.Publish(ctx, events.SubjectRatingSubmitted, events.ClientEvent{
		ClientID:  clientID,
		ServiceID: serviceID,
		Rating:    rating,
		At:        time.Now().UTC(),
	}); err != nil {
		s.Logger.Warn("Failed to publish event", zap.String("subject", events.SubjectRatingSubmitted), zap.Error(err))
	}
	return nil
}

func (s *DefaultRatingService) Ratings(ctx context.Context, clientID string) (models.Ratings, error) {
	ratings := models.Ratings{}
	if _, err := storageRepo.GetJSON(ctx, s.Store, clientID, storageRepo.KeyServiceRatings, &ratings); err != nil {
		s.Metrics.StoreErrorsTotal.WithLabelValues("list_ratings").Inc()
		return nil, fmt.Errorf("failed to load ratings: %w", err)
	}
	if ratings == nil {
		ratings = models.Ratings{}
	}
	return ratings, nil
}
