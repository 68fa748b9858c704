package events

import (
	"context"
	"time"
)

// Subjects published by the catalog, booking, rating and provider services.
const (
	SubjectServiceStatusChanged  = "findmylocal.service.status_changed"
	SubjectServiceVerified       = "findmylocal.service.verified"
	SubjectServiceDeleted        = "findmylocal.service.deleted"
	SubjectBookingCreated        = "findmylocal.booking.created"
	SubjectBookingCancelled      = "findmylocal.booking.cancelled"
	SubjectBookingReminder       = "findmylocal.booking.reminder"
	SubjectRatingSubmitted       = "findmylocal.rating.submitted"
	SubjectProviderBookingStatus = "findmylocal.provider.booking_status"
)

// Publisher emits domain events. Publishing is best-effort: callers log
// failures and carry on.
type Publisher interface {
	Publish(ctx context.Context, subject string, payload interface{}) error
	Close()
}

// ServiceEvent describes an admin action on a catalog entry.
type ServiceEvent struct {
	ServiceID string    `json:"serviceId"`
	Status    string    `json:"status,omitempty"`
	At        time.Time `json:"at"`
}

// ProviderEvent describes a provider acting on one of its bookings.
type ProviderEvent struct {
	Provider  string    `json:"provider"`
	BookingID string    `json:"bookingId"`
	Status    string    `json:"status"`
	At        time.Time `json:"at"`
}

// ClientEvent describes a change a client made to its own data.
type ClientEvent struct {
	ClientID  string    `json:"clientId"`
	ServiceID string    `json:"serviceId,omitempty"`
	BookingID string    `json:"bookingId,omitempty"`
	Rating    int       `json:"rating,omitempty"`
	At        time.Time `json:"at"`
}
