package provider

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	storageRepo "findmylocal/database/repository/storage"
	"findmylocal/models"
	"findmylocal/services/events"
	"findmylocal/utils"

	"go.uber.org/zap"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

var (
	ErrBookingNotFound   = errors.New("provider booking not found")
	ErrInvalidStatus     = errors.New("invalid booking status")
	ErrInvalidTransition = errors.New("booking status cannot change that way")
	ErrInvalidSlot       = errors.New("invalid slot")
	ErrInvalidDate       = errors.New("invalid date")
)

// DefaultSlots are offered until the provider edits the list.
var DefaultSlots = []string{"09:00", "10:00", "11:00", "14:00", "15:00", "16:00", "17:00"}

// transitions lists the statuses each status may move to. Completed, rejected
// and cancelled bookings are final.
var transitions = map[models.ProviderBookingStatus][]models.ProviderBookingStatus{
	models.ProviderBookingPending:   {models.ProviderBookingConfirmed, models.ProviderBookingRejected, models.ProviderBookingCancelled},
	models.ProviderBookingConfirmed: {models.ProviderBookingCompleted, models.ProviderBookingCancelled},
}

func canMove(from, to models.ProviderBookingStatus) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

type ProviderService interface {
	Dashboard(ctx context.Context, email string) (*models.ProviderDashboard, error)
	UpdateBookingStatus(ctx context.Context, email, bookingID, status string) (*models.ProviderBooking, bool, error)
	Slots(ctx context.Context, email string) ([]string, error)
	AddSlot(ctx context.Context, email, slot string) ([]string, error)
	RemoveSlot(ctx context.Context, email, slot string) ([]string, error)
	BlockedDates(ctx context.Context, email string) ([]string, error)
	AddBlockedDate(ctx context.Context, email, date string) ([]string, error)
	RemoveBlockedDate(ctx context.Context, email, date string) ([]string, error)
}

// DefaultProviderService keeps each provider's bookings, slots and blocked
// dates in the client store under storageRepo.ProviderScope(email).
type DefaultProviderService struct {
	Store    storageRepo.Store
	Events   events.Publisher
	Metrics  *utils.MetricsManager
	Logger   *zap.Logger
	Now      func() time.Time
	Location *time.Location

	// Samples, when set, fills an empty dashboard on first read.
	Samples func(now time.Time) []models.ProviderBooking
}

func NewProviderService(store storageRepo.Store, publisher events.Publisher, metrics *utils.MetricsManager, logger *zap.Logger) *DefaultProviderService {
	return &DefaultProviderService{
		Store:   store,
		Events:  publisher,
		Metrics: metrics,
		Logger:  logger,
		Now:     time.Now,
	}
}

func (s *DefaultProviderService) today() string {
	loc := s.Location
	if loc == nil {
		loc = time.Local
	}
	return s.Now().In(loc).Format(dateLayout)
}

func (s *DefaultProviderService) storeError(op string, err error) error {
	s.Metrics.StoreErrorsTotal.WithLabelValues(op).Inc()
	return fmt.Errorf("failed to %s: %w", strings.ReplaceAll(op, "_", " "), err)
}

func (s *DefaultProviderService) bookings(ctx context.Context, email string) ([]models.ProviderBooking, error) {
	scope := storageRepo.ProviderScope(email)
	if s.Samples == nil {
		var list []models.ProviderBooking
		if _, err := storageRepo.GetJSON(ctx, s.Store, scope, storageRepo.KeyProviderBookings, &list); err != nil {
			return nil, err
		}
		return list, nil
	}

	var list []models.ProviderBooking
	err := storageRepo.UpdateJSON(ctx, s.Store, scope, storageRepo.KeyProviderBookings, func(current *[]models.ProviderBooking) (bool, error) {
		if *current != nil {
			list = *current
			return false, nil
		}
		*current = s.Samples(s.Now())
		list = *current
		return true, nil
	})
	return list, err
}

// Dashboard returns the provider's bookings in stored order with the counters.
func (s *DefaultProviderService) Dashboard(ctx context.Context, email string) (*models.ProviderDashboard, error) {
	list, err := s.bookings(ctx, email)
	if err != nil {
		return nil, s.storeError("load_provider_bookings", err)
	}

	today := s.today()
	dash := &models.ProviderDashboard{Bookings: make([]models.ProviderBooking, 0, len(list))}
	for _, b := range list {
		dash.Bookings = append(dash.Bookings, b)
		switch b.Status {
		case models.ProviderBookingPending:
			dash.Stats.Pending++
		case models.ProviderBookingConfirmed:
			dash.Stats.Confirmed++
		case models.ProviderBookingCompleted:
			dash.Stats.Completed++
		}
		if (b.Status == models.ProviderBookingPending || b.Status == models.ProviderBookingConfirmed) && b.Date >= today {
			dash.Stats.Upcoming++
		}
	}
	return dash, nil
}

// UpdateBookingStatus moves one booking to status. Setting the current status
// again reports changed=false.
func (s *DefaultProviderService) UpdateBookingStatus(ctx context.Context, email, bookingID, status string) (*models.ProviderBooking, bool, error) {
	next, err := models.ParseProviderBookingStatus(status)
	if err != nil {
		return nil, false, fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}

	var (
		updated models.ProviderBooking
		found   bool
		changed bool
	)
	err = storageRepo.UpdateJSON(ctx, s.Store, storageRepo.ProviderScope(email), storageRepo.KeyProviderBookings, func(list *[]models.ProviderBooking) (bool, error) {
		found, changed = false, false
		for i := range *list {
			b := &(*list)[i]
			if b.ID != bookingID {
				continue
			}
			found = true
			if b.Status == next {
				updated = *b
				return false, nil
			}
			if !canMove(b.Status, next) {
				return false, fmt.Errorf("%w: %s to %s", ErrInvalidTransition, b.Status, next)
			}
			b.Status = next
			updated = *b
			changed = true
			return true, nil
		}
		return false, nil
	})
	if errors.Is(err, ErrInvalidTransition) {
		return nil, false, err
	}
	if err != nil {
		return nil, false, s.storeError("update_provider_booking", err)
	}
	if !found {
		return nil, false, fmt.Errorf("%w: %s", ErrBookingNotFound, bookingID)
	}

	if changed {
		s.Logger.Info("Provider booking status changed", zap.String("bookingId", bookingID), zap.String("status", string(next)))
		if err := s.Events.Publish(ctx, events.SubjectProviderBookingStatus, events.ProviderEvent{
			Provider:  email,
			BookingID: bookingID,
			Status:    string(next),
			At:        s.Now().UTC(),
		}); err != nil {
			s.Logger.Warn("Failed to publish event", zap.String("subject", events.SubjectProviderBookingStatus), zap.Error(err))
		}
	}
	return &updated, changed, nil
}

// Slots returns the bookable times, sorted. A provider that never edited the
// list gets DefaultSlots.
func (s *DefaultProviderService) Slots(ctx context.Context, email string) ([]string, error) {
	var slots []string
	found, err := storageRepo.GetJSON(ctx, s.Store, storageRepo.ProviderScope(email), storageRepo.KeyProviderSlots, &slots)
	if err != nil {
		return nil, s.storeError("load_provider_slots", err)
	}
	if !found || slots == nil {
		return append([]string{}, DefaultSlots...), nil
	}
	return slots, nil
}

func (s *DefaultProviderService) AddSlot(ctx context.Context, email, slot string) ([]string, error) {
	slot = strings.TrimSpace(slot)
	if _, err := time.Parse(timeLayout, slot); err != nil || len(slot) != len(timeLayout) {
		return nil, fmt.Errorf("%w: %q must be HH:MM", ErrInvalidSlot, slot)
	}
	return s.editSlots(ctx, email, "add_provider_slot", func(slots []string) ([]string, bool) {
		for _, existing := range slots {
			if existing == slot {
				return slots, false
			}
		}
		slots = append(slots, slot)
		sort.Strings(slots)
		return slots, true
	})
}

func (s *DefaultProviderService) RemoveSlot(ctx context.Context, email, slot string) ([]string, error) {
	return s.editSlots(ctx, email, "remove_provider_slot", func(slots []string) ([]string, bool) {
		return without(slots, slot)
	})
}

// editSlots applies edit to the stored list, starting from DefaultSlots when
// nothing is stored yet.
func (s *DefaultProviderService) editSlots(ctx context.Context, email, op string, edit func([]string) ([]string, bool)) ([]string, error) {
	var result []string
	err := storageRepo.UpdateJSON(ctx, s.Store, storageRepo.ProviderScope(email), storageRepo.KeyProviderSlots, func(slots *[]string) (bool, error) {
		current := *slots
		if current == nil {
			current = append([]string{}, DefaultSlots...)
		}
		next, changed := edit(current)
		result = next
		if changed {
			*slots = next
		}
		return changed, nil
	})
	if err != nil {
		return nil, s.storeError(op, err)
	}
	return result, nil
}

// BlockedDates returns the days the provider is unavailable, in the order added.
func (s *DefaultProviderService) BlockedDates(ctx context.Context, email string) ([]string, error) {
	dates := []string{}
	if _, err := storageRepo.GetJSON(ctx, s.Store, storageRepo.ProviderScope(email), storageRepo.KeyProviderBlockedDates, &dates); err != nil {
		return nil, s.storeError("load_provider_blocked_dates", err)
	}
	if dates == nil {
		dates = []string{}
	}
	return dates, nil
}

func (s *DefaultProviderService) AddBlockedDate(ctx context.Context, email, date string) ([]string, error) {
	date = strings.TrimSpace(date)
	if _, err := time.Parse(dateLayout, date); err != nil {
		return nil, fmt.Errorf("%w: %q must be YYYY-MM-DD", ErrInvalidDate, date)
	}
	return s.editBlocked(ctx, email, "add_provider_blocked_date", func(dates []string) ([]string, bool) {
		for _, existing := range dates {
			if existing == date {
				return dates, false
			}
		}
		return append(dates, date), true
	})
}

func (s *DefaultProviderService) RemoveBlockedDate(ctx context.Context, email, date string) ([]string, error) {
	return s.editBlocked(ctx, email, "remove_provider_blocked_date", func(dates []string) ([]string, bool) {
		return without(dates, date)
	})
}

func (s *DefaultProviderService) editBlocked(ctx context.Context, email, op string, edit func([]string) ([]string, bool)) ([]string, error) {
	var result []string
	err := storageRepo.UpdateJSON(ctx, s.Store, storageRepo.ProviderScope(email), storageRepo.KeyProviderBlockedDates, func(dates *[]string) (bool, error) {
		next, changed := edit(append([]string{}, *dates...))
		result = next
		if changed {
			*dates = next
		}
		return changed, nil
	})
	if err != nil {
		return nil, s.storeError(op, err)
	}
	return result, nil
}

func without(list []string, v string) ([]string, bool) {
	kept := make([]string, 0, len(list))
	for _, item := range list {
		if item != v {
			kept = append(kept, item)
		}
	}
	return kept, len(kept) != len(list)
}
