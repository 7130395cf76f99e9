package models

import "time"

// NATS Event Types
const (
	EventUserRegistered = "user.registered"
	EventTourCreated    = "tour.created"
	EventBookingCreated = "booking.created"
)

// UserRegisteredEvent represents a completed registration
type UserRegisteredEvent struct {
	UserID    int64     `json:"user_id"`
	Email     string    `json:"email"`
	TourType  string    `json:"tour_type"`
	Timestamp time.Time `json:"timestamp"`
}

// TourCreatedEvent represents a new tour, explicit or auto-created during registration
type TourCreatedEvent struct {
	TourID    int64     `json:"tour_id"`
	Name      string    `json:"name"`
	Price     float64   `json:"price"`
	Implicit  bool      `json:"implicit"`
	Timestamp time.Time `json:"timestamp"`
}

// BookingCreatedEvent represents a booking creation event
type BookingCreatedEvent struct {
	BookingID    int64     `json:"booking_id"`
	UserID       int64     `json:"user_id"`
	TourID       int64     `json:"tour_id"`
	Participants int       `json:"participants"`
	TotalPrice   float64   `json:"total_price"`
	Timestamp    time.Time `json:"timestamp"`
}
