package models

const (
	MinRating = 1
	MaxRating = 5
)

type RatingInput struct {
	ServiceID string `json:"serviceId" binding:"required"`
	Rating    int    `json:"rating" binding:"required"`
}

// Ratings maps a service id to the client's latest 1..5 rating.
type Ratings map[string]int
