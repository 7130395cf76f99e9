package repository

import (
	"context"

	"chernotour/internal/database"
	"chernotour/internal/models"
)

type BookingRepository struct {
	db *database.DB
}

func NewBookingRepository(db *database.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

func (r *BookingRepository) Create(ctx context.Context, booking *models.Booking) error {
	query := `
		INSERT INTO bookings (user_id, tour_id, participants, total_price, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at`

	err := r.db.QueryRowContext(ctx, query,
		booking.UserID,
		booking.TourID,
		booking.Participants,
		booking.TotalPrice,
		booking.Status,
	).Scan(&booking.ID, &booking.CreatedAt)

	return err
}

func (r *BookingRepository) GetByUserID(ctx context.Context, userID int64) ([]models.Booking, error) {
	var bookings []models.Booking
	query := `
		SELECT id, user_id, tour_id, participants, total_price, status, created_at
		FROM bookings
		WHERE user_id = $1
		ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var booking models.Booking
		err := rows.Scan(
			&booking.ID,
			&booking.UserID,
			&booking.TourID,
			&booking.Participants,
			&booking.TotalPrice,
			&booking.Status,
			&booking.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, booking)
	}

	return bookings, rows.Err()
}

// ListDetailed joins bookings with their owning user and tour. INNER JOIN:
// бронь без пользователя или тура в отчет не попадает, хотя FK и NOT NULL
// такую строку и не пропустят.
func (r *BookingRepository) ListDetailed(ctx context.Context) ([]models.BookingDetails, error) {
	var details []models.BookingDetails
	query := `
		SELECT b.id, u.name AS user_name, u.email AS user_email, t.name AS tour_name,
		       b.participants, b.total_price, b.status, b.created_at
		FROM bookings b
		JOIN users u ON u.id = b.user_id
		JOIN tours t ON t.id = b.tour_id
		ORDER BY b.id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var d models.BookingDetails
		err := rows.Scan(
			&d.ID,
			&d.UserName,
			&d.UserEmail,
			&d.TourName,
			&d.Participants,
			&d.TotalPrice,
			&d.Status,
			&d.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		details = append(details, d)
	}

	return details, rows.Err()
}
