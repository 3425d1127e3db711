package domain

import "time"

type BookingStatus string

const (
	BookingStatusProcessing BookingStatus = "Processing"
	BookingStatusCancelled  BookingStatus = "Cancelled"
	BookingStatusCompleted  BookingStatus = "Completed"
)

type Booking struct {
	ID         int32 `json:"id"`
	CustomerID int32 `json:"customer_id"`
	// LicensePlate is a denormalized natural-key reference to the vehicle.
	LicensePlate string        `json:"license_plate"`
	BookingStart time.Time     `json:"booking_start"`
	BookingEnd   time.Time     `json:"booking_end"`
	Status       BookingStatus `json:"booking_status"`
	TotalPrice   int64         `json:"total_price"` // fixed at creation, never recomputed
	HasDriver    bool          `json:"has_driver"`
	CreatedOn    time.Time     `json:"created_on"`
	UpdatedOn    time.Time     `json:"updated_on"`
}

// BookingDetail is an optional one-to-one customer-contact record attached to
// a booking.
type BookingDetail struct {
	ID            int32  `json:"id"`
	BookingID     int32  `json:"booking_id"`
	CustomerName  string `json:"customer_name"`
	CustomerEmail string `json:"customer_email"`
	CustomerPhone string `json:"customer_phone"`
	Address       string `json:"address"`
	LicensePlate  string `json:"license_plate"`
	IsPaid        bool   `json:"is_paid"`
	CreatedOn     string `json:"created_on"`
}
