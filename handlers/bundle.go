package handlers

// HandlerBundle groups every endpoint handler for route registration.
type HandlerBundle struct {
	Services      *ServiceHandler
	Admin         *AdminHandler
	Comparison    *ComparisonHandler
	Bookings      *BookingHandler
	Ratings       *RatingHandler
	Users         *UserHandler
	Auth          *AuthHandler
	Payments      *PaymentHandler
	StorageEvents *StorageEventsHandler
	Provider      *ProviderHandler
}
