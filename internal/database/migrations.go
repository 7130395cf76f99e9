package database

import (
	"fmt"
	"log/slog"
)

func (db *DB) RunMigrations() error {
	slog.Info("Running database migrations...")

	migrations := []string{
		createUsersTable,
		createToursTable,
		createBookingsTable,
		createBookingsUserIndex,
	}

	for i, migration := range migrations {
		slog.Info("Running migration", "step", i+1)
		if _, err := db.Exec(migration); err != nil {
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
	}

	slog.Info("All migrations completed successfully")
	return nil
}

const createUsersTable = `
CREATE TABLE IF NOT EXISTS users (
    id SERIAL PRIMARY KEY,
    name VARCHAR(255) NOT NULL,
    email VARCHAR(255) UNIQUE NOT NULL,
    phone VARCHAR(50) NOT NULL,
    password VARCHAR(255) NOT NULL,
    tour_type VARCHAR(255) NOT NULL DEFAULT 'single-day',
    participants INTEGER NOT NULL DEFAULT 1,
    preferred_date VARCHAR(255),
    created_at TIMESTAMP NOT NULL DEFAULT NOW()
);`

const createToursTable = `
CREATE TABLE IF NOT EXISTS tours (
    id SERIAL PRIMARY KEY,
    name VARCHAR(255) UNIQUE NOT NULL,
    description TEXT NOT NULL DEFAULT '',
    price DOUBLE PRECISION NOT NULL,
    duration VARCHAR(255) NOT NULL DEFAULT '',
    available BOOLEAN NOT NULL DEFAULT TRUE,
    created_at TIMESTAMP NOT NULL DEFAULT NOW(),

    CHECK (price >= 0)
);`

const createBookingsTable = `
CREATE TABLE IF NOT EXISTS bookings (
    id SERIAL PRIMARY KEY,
    user_id INTEGER NOT NULL REFERENCES users(id),
    tour_id INTEGER NOT NULL REFERENCES tours(id),
    participants INTEGER NOT NULL DEFAULT 1,
    total_price DOUBLE PRECISION NOT NULL,
    status VARCHAR(50) NOT NULL DEFAULT 'подтверждено',
    created_at TIMESTAMP NOT NULL DEFAULT NOW()
);`

const createBookingsUserIndex = `
CREATE INDEX IF NOT EXISTS bookings_user_id_idx
ON bookings (user_id);`
