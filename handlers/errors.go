package handlers

import (
	"errors"
	"net/http"

	storageRepo "findmylocal/database/repository/storage"
	"findmylocal/services/auth"
	"findmylocal/services/booking"
	"findmylocal/services/catalog"
	"findmylocal/services/payment"
	"findmylocal/services/provider"
	"findmylocal/services/rating"
	"findmylocal/services/user"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// statusFor maps domain errors onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, storageRepo.ErrPersistenceUnavailable):
		return http.StatusServiceUnavailable
	case errors.Is(err, catalog.ErrServiceNotFound),
		errors.Is(err, user.ErrNoSession),
		errors.Is(err, provider.ErrBookingNotFound):
		return http.StatusNotFound
	case errors.Is(err, catalog.ErrInvalidStatus),
		errors.Is(err, booking.ErrInvalidBooking),
		errors.Is(err, rating.ErrInvalidRating),
		errors.Is(err, user.ErrInvalidTheme),
		errors.Is(err, payment.ErrInvalidAmount),
		errors.Is(err, provider.ErrInvalidStatus),
		errors.Is(err, provider.ErrInvalidSlot),
		errors.Is(err, provider.ErrInvalidDate):
		return http.StatusBadRequest
	case errors.Is(err, auth.ErrOTPExpired), errors.Is(err, auth.ErrOTPMismatch), errors.Is(err, auth.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, auth.ErrTooManyAttempts):
		return http.StatusTooManyRequests
	case errors.Is(err, auth.ErrInvalidTransition), errors.Is(err, provider.ErrInvalidTransition):
		return http.StatusConflict
	case errors.Is(err, auth.ErrOTPDelivery), errors.Is(err, payment.ErrGatewayUnavailable):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// respondError logs err under op and writes the mapped status.
func respondError(c *gin.Context, logger *zap.Logger, op string, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		logger.Error(op+": request failed", zap.Int("status", status), zap.Error(err))
	} else {
		logger.Debug(op+": request rejected", zap.Int("status", status), zap.Error(err))
	}
	c.JSON(status, gin.H{
		"error":   http.StatusText(status),
		"message": err.Error(),
	})
}

func badRequest(c *gin.Context, logger *zap.Logger, op string, err error) {
	logger.Debug(op+": invalid request body", zap.Error(err))
	c.JSON(http.StatusBadRequest, gin.H{
		"error":   "invalid request body",
		"message": err.Error(),
	})
}
