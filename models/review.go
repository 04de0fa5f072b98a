package models

// Review is a ledger entry for a catalog subject, keyed by subject id.
type Review struct {
	ID              string   `json:"id"`
	SubjectID       string   `json:"subject_id"`
	UserID          string   `json:"user_id"`
	UserName        string   `json:"user_name"`
	Rating          float64  `json:"rating"`
	Comment         string   `json:"comment"`
	ServiceType     string   `json:"service_type"`
	BookingDate     string   `json:"booking_date"`
	HelpfulVotes    int      `json:"helpful_votes"`
	VerifiedBooking bool     `json:"verified_booking"`
	CreatedAt       string   `json:"created_at"`
	Images          []string `json:"images"`
}

// ReviewSummary aggregates a subject's reviews.
type ReviewSummary struct {
	Reviews            []Review    `json:"reviews"`
	TotalReviews       int         `json:"total_reviews"`
	AverageRating      float64     `json:"average_rating"`
	RatingDistribution map[int]int `json:"rating_distribution"`
}
