package repository

import (
	"context"
	"database/sql"

	"chernotour/internal/database"
	"chernotour/internal/models"
)

type TourRepository struct {
	db *database.DB
}

func NewTourRepository(db *database.DB) *TourRepository {
	return &TourRepository{db: db}
}

func (r *TourRepository) GetByID(ctx context.Context, id int64) (*models.Tour, error) {
	tour := &models.Tour{}
	query := `
		SELECT id, name, description, price, duration, available, created_at
		FROM tours
		WHERE id = $1`

	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&tour.ID,
		&tour.Name,
		&tour.Description,
		&tour.Price,
		&tour.Duration,
		&tour.Available,
		&tour.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}

	return tour, err
}

func (r *TourRepository) GetByName(ctx context.Context, name string) (*models.Tour, error) {
	tour := &models.Tour{}
	query := `
		SELECT id, name, description, price, duration, available, created_at
		FROM tours
		WHERE name = $1`

	err := r.db.QueryRowContext(ctx, query, name).Scan(
		&tour.ID,
		&tour.Name,
		&tour.Description,
		&tour.Price,
		&tour.Duration,
		&tour.Available,
		&tour.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}

	return tour, err
}

func (r *TourRepository) Create(ctx context.Context, tour *models.Tour) error {
	query := `
		INSERT INTO tours (name, description, price, duration, available)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at`

	err := r.db.QueryRowContext(ctx, query,
		tour.Name,
		tour.Description,
		tour.Price,
		tour.Duration,
		tour.Available,
	).Scan(&tour.ID, &tour.CreatedAt)

	return err
}

func (r *TourRepository) List(ctx context.Context) ([]models.Tour, error) {
	var tours []models.Tour
	query := `
		SELECT id, name, description, price, duration, available, created_at
		FROM tours
		ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var tour models.Tour
		err := rows.Scan(
			&tour.ID,
			&tour.Name,
			&tour.Description,
			&tour.Price,
			&tour.Duration,
			&tour.Available,
			&tour.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		tours = append(tours, tour)
	}

	return tours, rows.Err()
}
