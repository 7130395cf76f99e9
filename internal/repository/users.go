package repository

import (
	"context"
	"database/sql"

	"chernotour/internal/database"
	"chernotour/internal/models"
)

type UserRepository struct {
	db *database.DB
}

func NewUserRepository(db *database.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	user := &models.User{}
	query := `
		SELECT id, name, email, phone, password, tour_type, participants, preferred_date, created_at
		FROM users
		WHERE email = $1`

	err := r.db.QueryRowContext(ctx, query, email).Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.Phone,
		&user.Password,
		&user.TourType,
		&user.Participants,
		&user.PreferredDate,
		&user.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}

	return user, err
}

func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (name, email, phone, password, tour_type, participants, preferred_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at`

	err := r.db.QueryRowContext(ctx, query,
		user.Name,
		user.Email,
		user.Phone,
		user.Password,
		user.TourType,
		user.Participants,
		user.PreferredDate,
	).Scan(&user.ID, &user.CreatedAt)

	return err
}

func (r *UserRepository) List(ctx context.Context) ([]models.User, error) {
	var users []models.User
	query := `
		SELECT id, name, email, phone, password, tour_type, participants, preferred_date, created_at
		FROM users
		ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var user models.User
		err := rows.Scan(
			&user.ID,
			&user.Name,
			&user.Email,
			&user.Phone,
			&user.Password,
			&user.TourType,
			&user.Participants,
			&user.PreferredDate,
			&user.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}

	return users, rows.Err()
}
