package booking

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	storageRepo "findmylocal/database/repository/storage"
	"findmylocal/models"
	"findmylocal/services/events"
	"findmylocal/services/tasks"
	"findmylocal/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

var ErrInvalidBooking = errors.New("invalid booking")

type BookingService interface {
	AddBooking(ctx context.Context, clientID string, input models.BookingInput) (*models.Booking, error)
	CancelBooking(ctx context.Context, clientID, bookingID string) (bool, error)
	ListBookings(ctx context.Context, clientID string) (*models.BookingList, error)
}

// DefaultBookingService appends bookings to the client's "bookings" list. It
// does not check the service exists, the slot is free, or the date is ahead.
type DefaultBookingService struct {
	Store   storageRepo.Store
	Events  events.Publisher
	Metrics *utils.MetricsManager
	Logger  *zap.Logger
	Now     func() time.Time
	NewID   func() string

	// Location decides which calendar day is "today"; nil means time.Local.
	Location *time.Location

	// Reminders is optional; nil disables reminder scheduling.
	Reminders tasks.Scheduler
}

func NewBookingService(store storageRepo.Store, publisher events.Publisher, metrics *utils.MetricsManager, logger *zap.Logger) *DefaultBookingService {
	return &DefaultBookingService{
		Store:   store,
		Events:  publisher,
		Metrics: metrics,
		Logger:  logger,
		Now:     time.Now,
		NewID:   uuid.NewString,
	}
}

func validateInput(input models.BookingInput) error {
	if strings.TrimSpace(input.ServiceID) == "" {
		return fmt.Errorf("%w: serviceId is required", ErrInvalidBooking)
	}
	if _, err := time.Parse(DateLayout, input.Date); err != nil {
		return fmt.Errorf("%w: date must be YYYY-MM-DD", ErrInvalidBooking)
	}
	if _, err := time.Parse(TimeLayout, input.Time); err != nil {
		return fmt.Errorf("%w: time must be HH:MM", ErrInvalidBooking)
	}
	return nil
}

func (s *DefaultBookingService) AddBooking(ctx context.Context, clientID string, input models.BookingInput) (*models.Booking, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	booking := models.Booking{
		ID:        s.NewID(),
		ServiceID: input.ServiceID,
		Date:      input.Date,
		Time:      input.Time,
		CreatedAt: s.Now().UTC(),
	}
	err := storageRepo.UpdateJSON(ctx, s.Store, clientID, storageRepo.KeyBookings, func(list *[]models.Booking) (bool, error) {
		*list = append(*list, booking)
		return true, nil
	})
	if err != nil {
		s.Metrics.StoreErrorsTotal.WithLabelValues("add_booking").Inc()
		return nil, fmt.Errorf("failed to save booking: %w", err)
	}

	s.Metrics.BookingsCreatedTotal.Inc()
	s.Logger.Info("Booking recorded", zap.String("bookingId", booking.ID), zap.String("serviceId", booking.ServiceID))
	s.publish(ctx, events.SubjectBookingCreated, events.ClientEvent{
		ClientID:  clientID,
		ServiceID: booking.ServiceID,
		BookingID: booking.ID,
		At:        booking.CreatedAt,
	})
	if s.Reminders != nil {
		if err := s.Reminders.Schedule(ctx, clientID, booking); err != nil {
			s.Logger.Warn("Failed to schedule booking reminder", zap.String("bookingId", booking.ID), zap.Error(err))
		}
	}
	return &booking, nil
}

// CancelBooking removes the booking with bookingID. An unknown id is a no-op.
func (s *DefaultBookingService) CancelBooking(ctx context.Context, clientID, bookingID string) (bool, error) {
	removed := false
	err := storageRepo.UpdateJSON(ctx, s.Store, clientID, storageRepo.KeyBookings, func(list *[]models.Booking) (bool, error) {
		// Update may re-run fn against a fresher value.
		removed = false
		kept := make([]models.Booking, 0, len(*list))
		for _, b := range *list {
			if b.ID == bookingID {
				removed = true
				continue
			}
			kept = append(kept, b)
		}
		*list = kept
		return removed, nil
	})
	if err != nil {
		s.Metrics.StoreErrorsTotal.WithLabelValues("cancel_booking").Inc()
		return false, fmt.Errorf("failed to cancel booking: %w", err)
	}
	if !removed {
		return false, nil
	}

	s.Metrics.BookingsCancelled.Inc()
	if s.Reminders != nil {
		if err := s.Reminders.Cancel(ctx, bookingID); err != nil {
			s.Logger.Warn("Failed to cancel booking reminder", zap.String("bookingId", bookingID), zap.Error(err))
		}
	}
	s.publish(ctx, events.SubjectBookingCancelled, events.ClientEvent{
		ClientID:  clientID,
		BookingID: bookingID,
		At:        s.Now().UTC(),
	})
	return true, nil
}

// ListBookings returns every booking in insertion order plus an upcoming/past
// split; a booking dated today counts as upcoming.
func (s *DefaultBookingService) ListBookings(ctx context.Context, clientID string) (*models.BookingList, error) {
	var all []models.Booking
	if _, err := storageRepo.GetJSON(ctx, s.Store, clientID, storageRepo.KeyBookings, &all); err != nil {
		s.Metrics.StoreErrorsTotal.WithLabelValues("list_bookings").Inc()
		return nil, fmt.Errorf("failed to load bookings: %w", err)
	}

	loc := s.Location
	if loc == nil {
		loc = time.Local
	}
	today := s.Now().In(loc).Format(DateLayout)
	list := &models.BookingList{
		All:      make([]models.Booking, 0, len(all)),
		Upcoming: make([]models.Booking, 0),
		Past:     make([]models.Booking, 0),
	}
	for _, b := range all {
		list.All = append(list.All, b)
		// Layout is fixed-width, so string order is date order.
		if b.Date >= today {
			list.Upcoming = append(list.Upcoming, b)
		} else {
			list.Past = append(list.Past, b)
		}
	}
	return list, nil
}

func (s *DefaultBookingService) publish(ctx context.Context, subject string, payload interface{}) {
	if err := s.Events.Publish(ctx, subject, payload); err != nil {
		s.Logger.Warn("Failed to publish event", zap.String("subject", subject), zap.Error(err))
	}
}
