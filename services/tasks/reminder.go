package tasks

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"findmylocal/models"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

const (
	TypeBookingReminder = "booking:reminder"
	ReminderQueue       = "default"
	reminderMaxRetry    = 3
)

// Scheduler arranges a reminder ahead of each booking.
type Scheduler interface {
	Schedule(ctx context.Context, clientID string, booking models.Booking) error
	Cancel(ctx context.Context, bookingID string) error
}

// ReminderTime is the booking's local start time minus lead.
func ReminderTime(b models.Booking, lead time.Duration, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	start, err := time.ParseInLocation("2006-01-02 15:04", b.Date+" "+b.Time, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid booking start %q %q: %w", b.Date, b.Time, err)
	}
	return start.Add(-lead), nil
}

// NewReminderTask builds the task for payload. The booking id doubles as task id
// so a reminder can be cancelled and is never enqueued twice.
func NewReminderTask(payload models.ReminderPayload, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeBookingReminder, b)
	opts := []asynq.Option{
		asynq.ProcessAt(fireAt),
		asynq.TaskID(payload.BookingID),
		asynq.Queue(ReminderQueue),
		asynq.MaxRetry(reminderMaxRetry),
	}
	return task, opts, nil
}

// AsynqScheduler enqueues reminders on the Redis-backed asynq queue.
type AsynqScheduler struct {
	Client    *asynq.Client
	Inspector *asynq.Inspector
	Lead      time.Duration
	Location  *time.Location
	Logger    *zap.Logger
	Now       func() time.Time
}

func NewAsynqScheduler(redisOpt asynq.RedisConnOpt, lead time.Duration, loc *time.Location, logger *zap.Logger) *AsynqScheduler {
	return &AsynqScheduler{
		Client:    asynq.NewClient(redisOpt),
		Inspector: asynq.NewInspector(redisOpt),
		Lead:      lead,
		Location:  loc,
		Logger:    logger,
		Now:       time.Now,
	}
}

// Schedule skips bookings whose reminder time has already passed.
func (s *AsynqScheduler) Schedule(ctx context.Context, clientID string, b models.Booking) error {
	fireAt, err := ReminderTime(b, s.Lead, s.Location)
	if err != nil {
		return err
	}
	if !fireAt.After(s.Now()) {
		s.Logger.Debug("Reminder time already passed", zap.String("bookingId", b.ID))
		return nil
	}

	task, opts, err := NewReminderTask(models.ReminderPayload{
		ClientID:  clientID,
		BookingID: b.ID,
		ServiceID: b.ServiceID,
		Date:      b.Date,
		Time:      b.Time,
	}, fireAt)
	if err != nil {
		return err
	}
	if _, err := s.Client.EnqueueContext(ctx, task, opts...); err != nil {
		if errors.Is(err, asynq.ErrTaskIDConflict) {
			return nil
		}
		return fmt.Errorf("failed to enqueue reminder: %w", err)
	}
	s.Logger.Info("Reminder scheduled", zap.String("bookingId", b.ID), zap.Time("fireAt", fireAt))
	return nil
}

func (s *AsynqScheduler) Cancel(ctx context.Context, bookingID string) error {
	err := s.Inspector.DeleteTask(ReminderQueue, bookingID)
	if err != nil && !errors.Is(err, asynq.ErrTaskNotFound) && !errors.Is(err, asynq.ErrQueueNotFound) {
		return fmt.Errorf("failed to cancel reminder: %w", err)
	}
	return nil
}

func (s *AsynqScheduler) Close() error {
	if err := s.Inspector.Close(); err != nil {
		return err
	}
	return s.Client.Close()
}
