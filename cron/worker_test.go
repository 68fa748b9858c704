package cron

import (
	"context"
	"errors"
	"testing"
	"time"

	"findmylocal/models"
	"findmylocal/services/events"
	"findmylocal/services/tasks"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestHandleReminderTaskPublishes(t *testing.T) {
	recorder := &events.Recorder{}
	handler := HandleReminderTask(recorder, zap.NewNop())

	task, _, err := tasks.NewReminderTask(models.ReminderPayload{ClientID: "c1", BookingID: "b1", ServiceID: "5"}, fixedFireAt)
	require.NoError(t, err)
	require.NoError(t, handler(context.Background(), task))

	require.Equal(t, []string{events.SubjectBookingReminder}, recorder.Subjects())
	ev, ok := recorder.Events()[0].Payload.(events.ClientEvent)
	require.True(t, ok)
	assert.Equal(t, "c1", ev.ClientID)
	assert.Equal(t, "b1", ev.BookingID)
	assert.Equal(t, "5", ev.ServiceID)
}

func TestHandleReminderTaskSkipsMalformedPayload(t *testing.T) {
	recorder := &events.Recorder{}
	handler := HandleReminderTask(recorder, zap.NewNop())

	err := handler(context.Background(), asynq.NewTask(tasks.TypeBookingReminder, []byte("{")))
	assert.True(t, errors.Is(err, asynq.SkipRetry))
	assert.Empty(t, recorder.Subjects())
}

var fixedFireAt = time.Date(2030, 1, 2, 9, 30, 0, 0, time.UTC)
