package cron

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"findmylocal/models"
	"findmylocal/services/events"
	"findmylocal/services/tasks"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

const workerStartAttempts = 5

// ReminderWorker consumes booking reminder tasks and republishes them as events.
type ReminderWorker struct {
	server *asynq.Server
	mux    *asynq.ServeMux
	logger *zap.Logger
}

func NewReminderWorker(redisOpt asynq.RedisConnOpt, publisher events.Publisher, logger *zap.Logger) *ReminderWorker {
	srv := asynq.NewServer(
		redisOpt,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				tasks.ReminderQueue: 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeBookingReminder, HandleReminderTask(publisher, logger))

	return &ReminderWorker{server: srv, mux: mux, logger: logger}
}

// Start runs the worker in the background, retrying startup with backoff.
func (w *ReminderWorker) Start() {
	go func() {
		for attempt := 1; attempt <= workerStartAttempts; attempt++ {
			err := w.server.Start(w.mux)
			if err == nil {
				w.logger.Info("Reminder worker started")
				return
			}
			w.logger.Warn("Reminder worker failed to start",
				zap.Int("attempt", attempt),
				zap.Int("maxAttempts", workerStartAttempts),
				zap.Error(err))
			time.Sleep(time.Duration(attempt*2) * time.Second)
		}
		w.logger.Error("Reminder worker gave up; reminders will not be delivered")
	}()
}

func (w *ReminderWorker) Shutdown() {
	w.server.Shutdown()
}

// HandleReminderTask publishes a booking reminder event for each due task.
// A malformed payload is dropped rather than retried.
func HandleReminderTask(publisher events.Publisher, logger *zap.Logger) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p models.ReminderPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			logger.Error("Invalid reminder payload", zap.Error(err))
			return fmt.Errorf("%w: %v", asynq.SkipRetry, err)
		}

		logger.Info("Booking reminder due",
			zap.String("clientId", p.ClientID),
			zap.String("bookingId", p.BookingID),
			zap.String("serviceId", p.ServiceID))

		return publisher.Publish(ctx, events.SubjectBookingReminder, events.ClientEvent{
			ClientID:  p.ClientID,
			ServiceID: p.ServiceID,
			BookingID: p.BookingID,
			At:        time.Now().UTC(),
		})
	}
}
