package models

import "time"

// Booking is a client's request to engage a service at a date and time.
type Booking struct {
	ID        string    `json:"id"`        // UUID assigned at creation
	ServiceID string    `json:"serviceId"` // references Service.ID, not checked for existence
	Date      string    `json:"date"`      // "YYYY-MM-DD"
	Time      string    `json:"time"`      // "HH:MM"
	CreatedAt time.Time `json:"createdAt"`
}

// BookingInput is the payload of a new booking.
type BookingInput struct {
	ServiceID string `json:"serviceId" binding:"required"`
	Date      string `json:"date" binding:"required"`
	Time      string `json:"time" binding:"required"`
}

// BookingList is every booking of a client, plus the split used by the bookings screen.
type BookingList struct {
	All      []Booking `json:"all"`
	Upcoming []Booking `json:"upcoming"`
	Past     []Booking `json:"past"`
}
