package booking

import (
	"context"
	"errors"
	"testing"

	storageRepo "findmylocal/database/repository/storage"
	"findmylocal/models"
	"findmylocal/services/events"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockScheduler struct {
	mock.Mock
}

func (m *mockScheduler) Schedule(ctx context.Context, clientID string, b models.Booking) error {
	return m.Called(clientID, b.ID).Error(0)
}

func (m *mockScheduler) Cancel(ctx context.Context, bookingID string) error {
	return m.Called(bookingID).Error(0)
}

func TestBookingSchedulesAndCancelsReminder(t *testing.T) {
	s, _ := newTestService(storageRepo.NewMemoryStore())
	reminders := &mockScheduler{}
	s.Reminders = reminders
	ctx := context.Background()

	reminders.On("Schedule", "c1", "b1").Return(nil).Once()
	reminders.On("Cancel", "b1").Return(nil).Once()

	b, err := s.AddBooking(ctx, "c1", models.BookingInput{ServiceID: "2", Date: "2025-02-01", Time: "10:00"})
	require.NoError(t, err)

	ok, err := s.CancelBooking(ctx, "c1", b.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	// Unknown ids never reach the scheduler.
	ok, err = s.CancelBooking(ctx, "c1", "missing")
	require.NoError(t, err)
	assert.False(t, ok)

	reminders.AssertExpectations(t)
}

func TestReminderFailureDoesNotFailBooking(t *testing.T) {
	s, _ := newTestService(storageRepo.NewMemoryStore())
	reminders := &mockScheduler{}
	s.Reminders = reminders
	reminders.On("Schedule", "c1", "b1").Return(errors.New("queue down"))

	_, err := s.AddBooking(context.Background(), "c1", models.BookingInput{ServiceID: "2", Date: "2025-02-01", Time: "10:00"})
	require.NoError(t, err)

	list, err := s.ListBookings(context.Background(), "c1")
	require.NoError(t, err)
	assert.Len(t, list.All, 1)
}

// conflictStore feeds fn a stale snapshot first, then lets another writer
// land before the real update runs, like a WATCH conflict on Redis.
type conflictStore struct {
	storageRepo.Store
	stale []byte
	other func()
}

func (s *conflictStore) Update(ctx context.Context, clientID, key string, fn storageRepo.UpdateFunc) error {
	if s.stale != nil {
		stale := s.stale
		s.stale = nil
		if _, _, err := fn(stale); err != nil {
			return err
		}
		s.other()
	}
	return s.Store.Update(ctx, clientID, key, fn)
}

func TestCancelBooking_RetryAfterConcurrentRemoval(t *testing.T) {
	base := storageRepo.NewMemoryStore()
	s, recorder := newTestService(base)
	reminders := &mockScheduler{}
	reminders.On("Schedule", "c1", "b1").Return(nil).Once()
	s.Reminders = reminders
	ctx := context.Background()

	_, err := s.AddBooking(ctx, "c1", models.BookingInput{ServiceID: "2", Date: "2025-02-01", Time: "10:00"})
	require.NoError(t, err)
	snapshot, err := base.Get(ctx, "c1", storageRepo.KeyBookings)
	require.NoError(t, err)

	s.Store = &conflictStore{
		Store: base,
		stale: snapshot,
		other: func() {
			require.NoError(t, base.Set(ctx, "c1", storageRepo.KeyBookings, []byte("[]")))
		},
	}

	ok, err := s.CancelBooking(ctx, "c1", "b1")
	require.NoError(t, err)
	assert.False(t, ok)

	assert.Equal(t, []string{events.SubjectBookingCreated}, recorder.Subjects())
	reminders.AssertNotCalled(t, "Cancel", "b1")
	reminders.AssertExpectations(t)
}
