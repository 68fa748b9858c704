package models

import (
	"fmt"
	"time"
)

// ProviderBookingStatus is the provider-side state of an incoming request.
type ProviderBookingStatus string

const (
	ProviderBookingPending   ProviderBookingStatus = "pending"
	ProviderBookingConfirmed ProviderBookingStatus = "confirmed"
	ProviderBookingCompleted ProviderBookingStatus = "completed"
	ProviderBookingRejected  ProviderBookingStatus = "rejected"
	ProviderBookingCancelled ProviderBookingStatus = "cancelled"
)

// ParseProviderBookingStatus validates a raw provider booking status.
func ParseProviderBookingStatus(s string) (ProviderBookingStatus, error) {
	switch ProviderBookingStatus(s) {
	case ProviderBookingPending, ProviderBookingConfirmed, ProviderBookingCompleted,
		ProviderBookingRejected, ProviderBookingCancelled:
		return ProviderBookingStatus(s), nil
	default:
		return "", fmt.Errorf("unknown booking status: %q", s)
	}
}

// ProviderBooking is a customer request as shown on the provider dashboard.
type ProviderBooking struct {
	ID            string                `json:"id"`
	CustomerName  string                `json:"customerName"`
	CustomerPhone string                `json:"customerPhone"`
	CustomerEmail string                `json:"customerEmail"`
	ServiceName   string                `json:"serviceName"`
	Date          string                `json:"date"` // "YYYY-MM-DD"
	Time          string                `json:"time"` // "HH:MM"
	Status        ProviderBookingStatus `json:"status"`
	Notes         string                `json:"notes,omitempty"`
	Address       string                `json:"address,omitempty"`
	CreatedAt     time.Time             `json:"createdAt"`
}

// ProviderStats are the counters at the top of the dashboard. Upcoming counts
// pending and confirmed requests dated today or later.
type ProviderStats struct {
	Pending   int `json:"pending"`
	Confirmed int `json:"confirmed"`
	Completed int `json:"completed"`
	Upcoming  int `json:"upcoming"`
}

type ProviderDashboard struct {
	Bookings []ProviderBooking `json:"bookings"`
	Stats    ProviderStats     `json:"stats"`
}

type ProviderSlotInput struct {
	Time string `json:"time" binding:"required"`
}

type ProviderBlockedDateInput struct {
	Date string `json:"date" binding:"required"`
}
