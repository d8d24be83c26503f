package models

import "time"

// BookingDetails is the confirmation payload produced by a successful
// reservation and consumed by the confirmation mail template.
type BookingDetails struct {
	Room      string  `json:"room" bson:"room"`
	Price     float64 `json:"price" bson:"price"`
	Nights    int     `json:"nights" bson:"nights"`
	Total     float64 `json:"total" bson:"total"`
	BookingID string  `json:"bookingId" bson:"bookingId"`
}

// Booking is the persisted reservation record.
type Booking struct {
	ID        string    `json:"id" bson:"id"`
	RoomID    int       `json:"roomId" bson:"roomId"`
	RoomType  string    `json:"roomType" bson:"roomType"`
	FullName  string    `json:"fullName" bson:"fullName"`
	Email     string    `json:"email" bson:"email"`
	Nights    int       `json:"nights" bson:"nights"`
	Total     float64   `json:"total" bson:"total"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
}
