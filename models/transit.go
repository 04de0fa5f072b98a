package models

// LiveStatus is the seeded real-time view of one transport option.
type LiveStatus struct {
	TransportID    string `json:"transport_id"`
	Name           string `json:"name"`
	CurrentStatus  string `json:"current_status"`
	NextDeparture  string `json:"next_departure"`
	DelayMinutes   int    `json:"delay_minutes"`
	AvailableSeats int    `json:"available_seats"`
	LastUpdated    string `json:"last_updated"`
}

// RouteUpdate is a service announcement for a route.
type RouteUpdate struct {
	ID            string `json:"id"`
	Route         string `json:"route"`
	TransportType string `json:"transport_type"`
	Status        string `json:"status"`
	Message       string `json:"message"`
	UpdatedAt     string `json:"updated_at"`
}
