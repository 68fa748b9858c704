package tasks

import (
	"encoding/json"
	"testing"
	"time"

	"findmylocal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReminderTime(t *testing.T) {
	loc := time.FixedZone("IST", 5*3600+1800)
	b := models.Booking{ID: "b1", Date: "2030-01-02", Time: "10:30"}

	at, err := ReminderTime(b, time.Hour, loc)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2030, 1, 2, 9, 30, 0, 0, loc), at)

	_, err = ReminderTime(models.Booking{Date: "02/01/2030", Time: "10:30"}, time.Hour, loc)
	assert.Error(t, err)
}

func TestNewReminderTask(t *testing.T) {
	payload := models.ReminderPayload{ClientID: "c1", BookingID: "b1", ServiceID: "5", Date: "2030-01-02", Time: "10:30"}
	task, opts, err := NewReminderTask(payload, time.Now().Add(time.Hour))
	require.NoError(t, err)

	assert.Equal(t, TypeBookingReminder, task.Type())
	assert.Len(t, opts, 4)

	var decoded models.ReminderPayload
	require.NoError(t, json.Unmarshal(task.Payload(), &decoded))
	assert.Equal(t, payload, decoded)
}
