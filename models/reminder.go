package models

// ReminderPayload is the body of a scheduled booking reminder task.
type ReminderPayload struct {
	ClientID  string `json:"clientId"`
	BookingID string `json:"bookingId"`
	ServiceID string `json:"serviceId"`
	Date      string `json:"date"`
	Time      string `json:"time"`
}
