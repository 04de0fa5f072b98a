package models

// Booking statuses.
const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCancelled = "cancelled"
)

// GuideSnapshot captures the booked guide's identity and pricing at creation
// time. It is never re-read from the catalog afterwards.
type GuideSnapshot struct {
	ID      interface{} `json:"id"`
	Name    *string     `json:"name"`
	Contact *string     `json:"contact"`
	Rating  *float64    `json:"rating"`
}

// TransportSnapshot captures the booked transport option at creation time.
type TransportSnapshot struct {
	ID            interface{} `json:"id"`
	Name          *string     `json:"name"`
	Route         *string     `json:"route"`
	DepartureTime *string     `json:"departure_time"`
	TravelDate    string      `json:"travel_date"`
}

// ServiceDetails describes the booked guide engagement.
type ServiceDetails struct {
	ServiceType  string  `json:"service_type"`
	Date         string  `json:"date"`
	Duration     *string `json:"duration"`
	MeetingPoint *string `json:"meeting_point"`
}

// Booking is a ledger entry for either catalog domain. The snapshot field
// matching the domain is set; the other stays empty and is omitted.
type Booking struct {
	BookingID           string             `json:"booking_id"`
	BookingReference    string             `json:"booking_reference"`
	Status              string             `json:"status"`
	GuideDetails        *GuideSnapshot     `json:"guide_details,omitempty"`
	ServiceDetails      *ServiceDetails    `json:"service_details,omitempty"`
	TransportDetails    *TransportSnapshot `json:"transport_details,omitempty"`
	Passengers          []interface{}      `json:"passengers,omitempty"`
	TotalAmount         float64            `json:"total_amount"`
	PaymentStatus       string             `json:"payment_status"`
	ConfirmationDetails interface{}        `json:"confirmation_details,omitempty"`
	GuideID             interface{}        `json:"guide_id,omitempty"`
	ContactEmail        string             `json:"contact_email,omitempty"`
	ContactPhone        *string            `json:"contact_phone,omitempty"`
	CreatedAt           string             `json:"created_at"`
	UpdatedAt           string             `json:"updated_at,omitempty"`
}

// Date returns the service date the booking refers to, wherever the domain
// stores it. Used by date-range filters.
func (b *Booking) Date() string {
	if b.ServiceDetails != nil {
		return b.ServiceDetails.Date
	}
	if b.TransportDetails != nil {
		return b.TransportDetails.TravelDate
	}
	return ""
}
