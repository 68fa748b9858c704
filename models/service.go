package models

import "fmt"

// Category is one of the fixed listing categories.
type Category string

const (
	CategoryPlumber     Category = "Plumber"
	CategoryElectrician Category = "Electrician"
	CategoryTutor       Category = "Tutor"
	CategoryMechanic    Category = "Mechanic"
	CategoryCarpenter   Category = "Carpenter"
	CategoryCleaner     Category = "Cleaner"
	CategoryPainter     Category = "Painter"
	CategoryGardener    Category = "Gardener"
)

// Categories lists every category in display order.
var Categories = []Category{
	CategoryPlumber,
	CategoryElectrician,
	CategoryTutor,
	CategoryMechanic,
	CategoryCarpenter,
	CategoryCleaner,
	CategoryPainter,
	CategoryGardener,
}

// Availability is the provider-controlled capacity state.
type Availability string

const (
	AvailabilityAvailable Availability = "Available"
	AvailabilityBusy      Availability = "Busy"
	AvailabilityOffline   Availability = "Offline"
)

var Availabilities = []Availability{AvailabilityAvailable, AvailabilityBusy, AvailabilityOffline}

// ServiceStatus is the admin-controlled moderation state. It is independent of Availability.
type ServiceStatus string

const (
	StatusPending  ServiceStatus = "Pending"
	StatusApproved ServiceStatus = "Approved"
	StatusRejected ServiceStatus = "Rejected"
)

var Statuses = []ServiceStatus{StatusPending, StatusApproved, StatusRejected}

// ParseServiceStatus validates a raw moderation status.
func ParseServiceStatus(s string) (ServiceStatus, error) {
	switch ServiceStatus(s) {
	case StatusPending, StatusApproved, StatusRejected:
		return ServiceStatus(s), nil
	default:
		return "", fmt.Errorf("unknown service status: %q", s)
	}
}

// ProviderInfo describes the person or business behind a listing.
type ProviderInfo struct {
	Name          string   `bson:"name" json:"name"`
	Experience    int      `bson:"experience" json:"experience"` // years
	CompletedJobs int      `bson:"completedJobs" json:"completedJobs"`
	Verified      bool     `bson:"verified" json:"verified"`
	Languages     []string `bson:"languages" json:"languages"`
	Phone         string   `bson:"phone" json:"phone"`
	WhatsApp      string   `bson:"whatsapp" json:"whatsapp"`
}

// Service is one offered listing in the catalog.
type Service struct {
	ID           string        `bson:"id" json:"id"`
	Name         string        `bson:"name" json:"name"`
	Category     Category      `bson:"category" json:"category"`
	Location     string        `bson:"location" json:"location"`
	Availability Availability  `bson:"availability" json:"availability"`
	Status       ServiceStatus `bson:"status" json:"status"`
	Rating       float64       `bson:"rating" json:"rating"`     // precomputed average
	Distance     float64       `bson:"distance" json:"distance"` // km from the implicit user location
	Tags         []string      `bson:"tags" json:"tags"`
	Description  string        `bson:"description" json:"description"`
	Images       []string      `bson:"images" json:"images"`
	Pricing      Pricing       `bson:"pricing" json:"pricing"`
	Provider     ProviderInfo  `bson:"provider" json:"provider"`
	Inclusions   []string      `bson:"inclusions" json:"inclusions"`
}

// Clone returns a deep copy so callers cannot alias repository state.
func (s Service) Clone() Service {
	out := s
	out.Tags = cloneStrings(s.Tags)
	out.Images = cloneStrings(s.Images)
	out.Inclusions = cloneStrings(s.Inclusions)
	out.Provider.Languages = cloneStrings(s.Provider.Languages)
	return out
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}

// Facets are the option lists offered by the filter controls.
type Facets struct {
	Categories   []Category      `json:"categories"`
	Locations    []string        `json:"locations"`
	Availability []Availability  `json:"availability"`
	Statuses     []ServiceStatus `json:"statuses"`
}

// FilterLocations are the neighbourhoods offered by the location filter.
var FilterLocations = []string{
	"Andheri",
	"Bandra",
	"Borivali",
	"Malad",
	"Goregaon",
	"Powai",
	"Kandivali",
	"Kurla",
	"Jogeshwari",
	"Dadar",
	"Thane",
	"Santa Cruz",
}

// DefaultFacets returns fresh copies of the built-in option lists.
func DefaultFacets() Facets {
	return Facets{
		Categories:   append([]Category(nil), Categories...),
		Locations:    cloneStrings(FilterLocations),
		Availability: append([]Availability(nil), Availabilities...),
		Statuses:     append([]ServiceStatus(nil), Statuses...),
	}
}
