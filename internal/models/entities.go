package models

import (
	"time"
)

// Статусы и значения по умолчанию, унаследованные от исходного сайта.
const (
	DefaultTourType        = "single-day"
	BookingStatusConfirmed = "подтверждено"
	UnknownTourName        = "Неизвестный тур"
)

// User represents a registered customer
type User struct {
	ID            int64     `json:"id" db:"id"`
	Name          string    `json:"name" db:"name"`
	Email         string    `json:"email" db:"email"`
	Phone         string    `json:"phone" db:"phone"`
	Password      string    `json:"-" db:"password"`
	TourType      string    `json:"tour_type" db:"tour_type"`
	Participants  int       `json:"participants" db:"participants"`
	PreferredDate *string   `json:"preferred_date" db:"preferred_date"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
}

// Tour represents a bookable tour offering
type Tour struct {
	ID          int64     `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Description string    `json:"description" db:"description"`
	Price       float64   `json:"price" db:"price"`
	Duration    string    `json:"duration" db:"duration"`
	Available   bool      `json:"available" db:"available"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

// Booking links a user to a tour with a price frozen at creation time
type Booking struct {
	ID           int64     `json:"id" db:"id"`
	UserID       int64     `json:"user_id" db:"user_id"`
	TourID       int64     `json:"tour_id" db:"tour_id"`
	Participants int       `json:"participants" db:"participants"`
	TotalPrice   float64   `json:"total_price" db:"total_price"`
	Status       string    `json:"status" db:"status"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

// BookingDetails is a booking joined with its user and tour, as produced
// by the bookings report query. Not a table row.
type BookingDetails struct {
	ID           int64     `db:"id"`
	UserName     string    `db:"user_name"`
	UserEmail    string    `db:"user_email"`
	TourName     string    `db:"tour_name"`
	Participants int       `db:"participants"`
	TotalPrice   float64   `db:"total_price"`
	Status       string    `db:"status"`
	CreatedAt    time.Time `db:"created_at"`
}
