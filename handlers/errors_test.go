package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	storageRepo "findmylocal/database/repository/storage"
	"findmylocal/services/auth"
	"findmylocal/services/booking"
	"findmylocal/services/catalog"
	"findmylocal/services/payment"
	"findmylocal/services/provider"
	"findmylocal/services/rating"
	"findmylocal/services/user"

	"github.com/stretchr/testify/assert"
)

func TestStatusFor(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{fmt.Errorf("failed to add booking: %w", storageRepo.ErrPersistenceUnavailable), http.StatusServiceUnavailable},
		{catalog.ErrServiceNotFound, http.StatusNotFound},
		{user.ErrNoSession, http.StatusNotFound},
		{fmt.Errorf("%w: \"Archived\"", catalog.ErrInvalidStatus), http.StatusBadRequest},
		{booking.ErrInvalidBooking, http.StatusBadRequest},
		{rating.ErrInvalidRating, http.StatusBadRequest},
		{user.ErrInvalidTheme, http.StatusBadRequest},
		{payment.ErrInvalidAmount, http.StatusBadRequest},
		{auth.ErrOTPMismatch, http.StatusUnauthorized},
		{auth.ErrInvalidCredentials, http.StatusUnauthorized},
		{auth.ErrTooManyAttempts, http.StatusTooManyRequests},
		{auth.ErrInvalidTransition, http.StatusConflict},
		{payment.ErrGatewayUnavailable, http.StatusBadGateway},
		{fmt.Errorf("%w: b9", provider.ErrBookingNotFound), http.StatusNotFound},
		{provider.ErrInvalidSlot, http.StatusBadRequest},
		{provider.ErrInvalidDate, http.StatusBadRequest},
		{provider.ErrInvalidStatus, http.StatusBadRequest},
		{provider.ErrInvalidTransition, http.StatusConflict},
		{errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.code, statusFor(tc.err), tc.err.Error())
	}
}
