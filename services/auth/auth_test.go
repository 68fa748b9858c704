package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	storageRepo "findmylocal/database/repository/storage"
	"findmylocal/models"
	"findmylocal/services/user"
	"findmylocal/utils"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type mockMailer struct {
	mock.Mock
}

func (m *mockMailer) SendOTP(ctx context.Context, email, name, code string) error {
	args := m.Called(email, name, code)
	return args.Error(0)
}

type fixture struct {
	svc    *DefaultAuthService
	mailer *mockMailer
	users  *user.DefaultUserService
	mr     *miniredis.Miniredis
	now    time.Time
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() {
		client.Close()
		mr.Close()
	})

	store := storageRepo.NewMemoryStore()
	users := user.NewUserService(store, zap.NewNop())
	mailer := &mockMailer{}
	f := &fixture{mailer: mailer, users: users, mr: mr, now: time.Date(2025, 1, 10, 9, 0, 0, 0, time.UTC)}

	svc := NewAuthService(NewRedisOTPCache(client), mailer, store, users, zap.NewNop())
	svc.Now = func() time.Time { return f.now }
	svc.GenerateCode = func() (string, error) { return "123456", nil }
	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.MinCost)
	require.NoError(t, err)
	svc.AdminPasswordHash = hash
	f.svc = svc
	return f
}

func TestOTPFlow_NewUser(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.mailer.On("SendOTP", "asha@example.com", "Asha", "123456").Return(nil).Once()

	require.NoError(t, f.svc.SendOTP(ctx, models.SendOTPRequest{Email: "Asha@Example.com", Name: "Asha"}))
	assert.True(t, f.mr.Exists("otp:asha@example.com"))

	resp, err := f.svc.VerifyOTP(ctx, "c1", models.VerifyOTPRequest{Email: "asha@example.com", EnteredOTP: "123456", Role: "provider"})
	require.NoError(t, err)
	assert.True(t, resp.IsNewUser)
	assert.Equal(t, "provider", resp.Role)
	assert.False(t, f.mr.Exists("otp:asha@example.com"))

	claims, err := utils.ParseToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, "asha@example.com", claims.Email)
	assert.Equal(t, "provider", claims.Role)

	session, err := f.users.Session(ctx, "c1")
	require.NoError(t, err)
	assert.Equal(t, &models.UserSession{Email: "asha@example.com", Role: "provider"}, session)

	// Second login: existing user keeps the registered role.
	f.mailer.On("SendOTP", "asha@example.com", "", "123456").Return(nil).Once()
	require.NoError(t, f.svc.SendOTP(ctx, models.SendOTPRequest{Email: "asha@example.com"}))
	resp, err = f.svc.VerifyOTP(ctx, "c2", models.VerifyOTPRequest{Email: "asha@example.com", EnteredOTP: "123456", Role: "user"})
	require.NoError(t, err)
	assert.False(t, resp.IsNewUser)
	assert.Equal(t, "provider", resp.Role)
	f.mailer.AssertExpectations(t)
}

func TestVerifyOTP_MismatchThenLockout(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.mailer.On("SendOTP", mock.Anything, mock.Anything, mock.Anything).Return(nil)
	require.NoError(t, f.svc.SendOTP(ctx, models.SendOTPRequest{Email: "a@b.co"}))

	for i := 1; i < maxOTPAttempts; i++ {
		_, err := f.svc.VerifyOTP(ctx, "c1", models.VerifyOTPRequest{Email: "a@b.co", EnteredOTP: "000000"})
		assert.ErrorIs(t, err, ErrOTPMismatch)
	}
	_, err := f.svc.VerifyOTP(ctx, "c1", models.VerifyOTPRequest{Email: "a@b.co", EnteredOTP: "000000"})
	assert.ErrorIs(t, err, ErrTooManyAttempts)

	// The correct code no longer works once the flow has failed.
	_, err = f.svc.VerifyOTP(ctx, "c1", models.VerifyOTPRequest{Email: "a@b.co", EnteredOTP: "123456"})
	assert.ErrorIs(t, err, ErrOTPExpired)

	// A resend restarts the flow.
	require.NoError(t, f.svc.SendOTP(ctx, models.SendOTPRequest{Email: "a@b.co"}))
	_, err = f.svc.VerifyOTP(ctx, "c1", models.VerifyOTPRequest{Email: "a@b.co", EnteredOTP: "123456"})
	assert.NoError(t, err)
}

func TestVerifyOTP_Expired(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.mailer.On("SendOTP", mock.Anything, mock.Anything, mock.Anything).Return(nil)

	_, err := f.svc.VerifyOTP(ctx, "c1", models.VerifyOTPRequest{Email: "a@b.co", EnteredOTP: "123456"})
	assert.ErrorIs(t, err, ErrOTPExpired)

	require.NoError(t, f.svc.SendOTP(ctx, models.SendOTPRequest{Email: "a@b.co"}))
	f.now = f.now.Add(defaultOTPTTL + time.Second)
	_, err = f.svc.VerifyOTP(ctx, "c1", models.VerifyOTPRequest{Email: "a@b.co", EnteredOTP: "123456"})
	assert.ErrorIs(t, err, ErrOTPExpired)
}

func TestSendOTP_DeliveryFailure(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.mailer.On("SendOTP", mock.Anything, mock.Anything, mock.Anything).Return(errors.New("smtp down"))

	err := f.svc.SendOTP(ctx, models.SendOTPRequest{Email: "a@b.co"})
	assert.ErrorIs(t, err, ErrOTPDelivery)

	_, err = f.svc.VerifyOTP(ctx, "c1", models.VerifyOTPRequest{Email: "a@b.co", EnteredOTP: "123456"})
	assert.ErrorIs(t, err, ErrOTPExpired)
}

func TestAdminLogin(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.svc.AdminLogin(ctx, "c1", models.AdminLoginRequest{Email: defaultAdminMail, Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, err = f.svc.AdminLogin(ctx, "c1", models.AdminLoginRequest{Email: "someone@else.com", Password: "admin123"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	resp, err := f.svc.AdminLogin(ctx, "c1", models.AdminLoginRequest{Email: defaultAdminMail, Password: "admin123"})
	require.NoError(t, err)
	assert.Equal(t, "admin", resp.Role)

	session, err := f.users.Session(ctx, "c1")
	require.NoError(t, err)
	assert.Equal(t, "admin", session.Role)
}

func TestTransitions(t *testing.T) {
	assert.True(t, CanTransition(StateIdle, StateSending))
	assert.True(t, CanTransition(StateSending, StateAwaitingVerification))
	assert.True(t, CanTransition(StateAwaitingVerification, StateVerified))
	assert.False(t, CanTransition(StateIdle, StateVerified))
	assert.False(t, CanTransition(StateFailed, StateVerified))

	entry := &OTPEntry{}
	assert.ErrorIs(t, entry.transition(StateVerified), ErrInvalidTransition)
}

func TestMemoryOTPCache_Expires(t *testing.T) {
	c := NewMemoryOTPCache()
	now := time.Now()
	c.now = func() time.Time { return now }
	ctx := context.Background()

	require.NoError(t, c.Save(ctx, "A@b.co", OTPEntry{Code: "1"}, time.Minute))
	got, err := c.Load(ctx, "a@b.co")
	require.NoError(t, err)
	require.NotNil(t, got)

	now = now.Add(time.Minute)
	got, err = c.Load(ctx, "a@b.co")
	require.NoError(t, err)
	assert.Nil(t, got)
}
