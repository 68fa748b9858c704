package provider

import (
	"time"

	"findmylocal/models"
)

// SampleBookings is the demo dashboard a new provider starts with outside
// production: one pending request, one confirmed and one completed job.
func SampleBookings(now time.Time) []models.ProviderBooking {
	day := 24 * time.Hour
	date := func(offset time.Duration) string { return now.Add(offset).Format(dateLayout) }
	return []models.ProviderBooking{
		{
			ID:            "1",
			CustomerName:  "John Doe",
			CustomerPhone: "+91 98765 43210",
			CustomerEmail: "john@example.com",
			ServiceName:   "Professional Plumbing & Leak Repair",
			Date:          date(2 * day),
			Time:          "10:00",
			Status:        models.ProviderBookingPending,
			Notes:         "Need urgent leak repair in kitchen",
			Address:       "123 Main St, Mumbai",
			CreatedAt:     now.UTC(),
		},
		{
			ID:            "2",
			CustomerName:  "Sarah Smith",
			CustomerPhone: "+91 98765 43211",
			CustomerEmail: "sarah@example.com",
			ServiceName:   "Professional Plumbing & Leak Repair",
			Date:          date(5 * day),
			Time:          "14:00",
			Status:        models.ProviderBookingConfirmed,
			Notes:         "Bathroom renovation consultation",
			Address:       "456 Park Ave, Mumbai",
			CreatedAt:     now.Add(-day).UTC(),
		},
		{
			ID:            "3",
			CustomerName:  "Mike Johnson",
			CustomerPhone: "+91 98765 43212",
			CustomerEmail: "mike@example.com",
			ServiceName:   "Professional Plumbing & Leak Repair",
			Date:          date(-3 * day),
			Time:          "11:00",
			Status:        models.ProviderBookingCompleted,
			Notes:         "Pipe installation completed successfully",
			Address:       "789 Oak St, Mumbai",
			CreatedAt:     now.Add(-7 * day).UTC(),
		},
	}
}
